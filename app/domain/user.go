package domain

import (
	"fmt"
	"net/mail"
	"time"
)

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleClinician UserRole = "clinician"
	UserRoleAdmin     UserRole = "admin"
)

// User represents a clinician account in the system. The ID is the subject
// identifier issued by the identity provider and never changes.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	LicenseType   string     `json:"licenseType"`
	LicenseNumber string     `json:"licenseNumber"`
	Role          UserRole   `json:"role"`
	IsVerified    bool       `json:"isVerified"`
	IsApproved    bool       `json:"isApproved"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	ApprovedAt    *time.Time `json:"approvedAt,omitempty"`
}

// UserProfile is the public shape returned after login. It never carries
// approval flags or timestamps.
type UserProfile struct {
	UID           string   `json:"uid"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Role          UserRole `json:"role"`
	LicenseType   string   `json:"licenseType"`
	LicenseNumber string   `json:"licenseNumber"`
}

// RegisterRequest carries the fields required to register a clinician.
type RegisterRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	Name          string `json:"name" validate:"required"`
	LicenseType   string `json:"licenseType" validate:"required"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
}

// NewUser creates an unapproved clinician record with validation
func NewUser(subjectID, email, name, licenseType, licenseNumber string) (*User, error) {
	if subjectID == "" {
		return nil, fmt.Errorf("subject ID is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if licenseType == "" {
		return nil, fmt.Errorf("license type is required")
	}
	if licenseNumber == "" {
		return nil, fmt.Errorf("license number is required")
	}

	return &User{
		ID:            subjectID,
		Email:         email,
		Name:          name,
		LicenseType:   licenseType,
		LicenseNumber: licenseNumber,
		Role:          UserRoleClinician,
		IsVerified:    false,
		IsApproved:    false,
		CreatedAt:     time.Now(),
	}, nil
}

// Approve marks the user as approved and verified. Approving an already
// approved user is a no-op; the original approval timestamp is kept.
func (u *User) Approve(at time.Time) {
	if u.IsApproved {
		return
	}
	u.IsApproved = true
	u.IsVerified = true
	u.ApprovedAt = &at
}

// RecordLogin records the last login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLogin = &at
}

// IsAdmin returns true if the user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Profile returns the public profile shape for this user
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		UID:           u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		LicenseType:   u.LicenseType,
		LicenseNumber: u.LicenseNumber,
	}
}

// Identity is the verified identity returned by the identity provider.
type Identity struct {
	ID    string
	Email string
	Name  string
}
