package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"thinksync/app/domain"
	"thinksync/app/port"
	"thinksync/app/utils/validator"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	userUsecase port.UserUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUsecase port.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userUsecase: userUsecase,
		validator:   validator.New(),
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(domain.RegisterRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
	}

	userID, err := h.userUsecase.Register(ctx, req)
	if err != nil {
		h.logger.Error("registration failed", "email", req.Email, "error", err)

		// Provider rejections (duplicate email, weak password) carry the
		// provider's message and go back verbatim. Only here.
		var providerErr *domain.IdentityProviderError
		if errors.As(err, &providerErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: providerErr.Message})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, registerResponse{
		Success: true,
		Message: "Registration successful. Awaiting admin approval.",
		UserID:  userID,
	})
}

type loginRequest struct {
	IDToken string `json:"idToken"`
}

type loginResponse struct {
	Success bool                `json:"success"`
	User    *domain.UserProfile `json:"user"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(loginRequest)
	if err := c.Bind(req); err != nil || req.IDToken == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ID token required"})
	}

	profile, err := h.userUsecase.Login(ctx, req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		case errors.Is(err, domain.ErrPendingApproval):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Account pending admin approval"})
		default:
			h.logger.Warn("login failed", "error", err)
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid token"})
		}
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		User:    profile,
	})
}
