package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"thinksync/app/port"
)

const subjectIDKey = "subject_id"

type errorBody struct {
	Error string `json:"error"`
}

// AuthMiddleware provides authentication and role middleware
type AuthMiddleware struct {
	userUsecase port.UserUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(userUsecase port.UserUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		userUsecase: userUsecase,
		logger:      logger.With("component", "auth_middleware"),
	}
}

// RequireAuth verifies the bearer credential exactly once per request and
// stores the resolved subject id on the context. The header must use the
// Bearer scheme; any other shape is rejected before the provider is asked.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := extractBearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, errorBody{Error: "No authorization header"})
			}

			subjectID, err := m.userUsecase.VerifySubject(ctx, token)
			if err != nil {
				m.logger.Warn("credential rejected", "path", c.Request().URL.Path, "error", err)
				return c.JSON(http.StatusUnauthorized, errorBody{Error: "Invalid token"})
			}

			c.Set(subjectIDKey, subjectID)
			return next(c)
		}
	}
}

// RequireAdmin loads the caller's record and rejects non-admins. Must run
// after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			subjectID := SubjectID(c)
			if subjectID == "" {
				return c.JSON(http.StatusUnauthorized, errorBody{Error: "No authorization header"})
			}

			user, err := m.userUsecase.GetUser(ctx, subjectID)
			if err != nil || !user.IsAdmin() {
				m.logger.Warn("admin access denied", "user_id", subjectID)
				return c.JSON(http.StatusForbidden, errorBody{Error: "Admin access required"})
			}

			return next(c)
		}
	}
}

// SubjectID returns the verified subject id set by RequireAuth, or ""
func SubjectID(c echo.Context) string {
	if id, ok := c.Get(subjectIDKey).(string); ok {
		return id
	}
	return ""
}

func extractBearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
