package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return NewValidationError(err.(validator.ValidationErrors))
	}
	return nil
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

// ValidationError represents a validation error with user-friendly messages
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	var messages []string
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	errors := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()

		switch tag {
		case "required":
			errors[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errors[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "license_number":
			errors[field] = "license number must contain only letters, numbers and hyphens"
		case "review_priority":
			errors[field] = "priority must be one of: low, medium, high"
		default:
			errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: errors}
}

// registerCustomValidators registers custom validation rules
func registerCustomValidators(validate *validator.Validate) {
	// License number: letters, numbers, hyphens (e.g. "LPC-12345", "ADMIN-001")
	validate.RegisterValidation("license_number", func(fl validator.FieldLevel) bool {
		number := fl.Field().String()
		matched, _ := regexp.MatchString(`^[a-zA-Z0-9-]+$`, number)
		return matched && len(number) >= 1 && len(number) <= 64
	})

	// Review priority for areas-for-review entries
	validate.RegisterValidation("review_priority", func(fl validator.FieldLevel) bool {
		priority := fl.Field().String()
		for _, valid := range []string{"low", "medium", "high"} {
			if priority == valid {
				return true
			}
		}
		return false
	})

	// Role validation: valid user roles
	validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		for _, valid := range []string{"clinician", "admin"} {
			if role == valid {
				return true
			}
		}
		return false
	})
}

// Helper validation functions

// IsValidEmail checks if an email is valid
func IsValidEmail(email string) bool {
	v := New()
	return v.ValidateVar(email, "required,email") == nil
}

// IsValidLicenseNumber checks if a license number is well formed
func IsValidLicenseNumber(number string) bool {
	v := New()
	return v.ValidateVar(number, "required,license_number") == nil
}

// Common validation tags constants
const (
	TagRequired       = "required"
	TagEmail          = "email"
	TagLicenseNumber  = "license_number"
	TagReviewPriority = "review_priority"
	TagUserRole       = "user_role"
)
