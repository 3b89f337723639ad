package handlers

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"thinksync/app/config"
	"thinksync/app/domain"
	"thinksync/app/port"
)

const bootstrapTokenHeader = "X-Bootstrap-Token"

// AdminHandler handles admin-only HTTP requests. The admin role check
// itself lives in middleware; handlers assume callers are admins, except
// Bootstrap which has its own token guard.
type AdminHandler struct {
	adminUsecase port.AdminUsecase
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase port.AdminUsecase, cfg *config.Config, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		cfg:          cfg,
		logger:       logger.With("component", "admin_handler"),
	}
}

type listUsersResponse struct {
	Users []*domain.User `json:"users"`
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.adminUsecase.ListUsers(ctx)
	if err != nil {
		h.logger.Error("user listing failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve users"})
	}

	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}

// ApproveUser handles POST /api/admin/users/:userId/approve
func (h *AdminHandler) ApproveUser(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("userId")

	if err := h.adminUsecase.ApproveUser(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		}
		h.logger.Error("user approval failed", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to approve user"})
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "User approved successfully",
	})
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.adminUsecase.Stats(ctx)
	if err != nil {
		h.logger.Error("stats aggregation failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve stats"})
	}

	return c.JSON(http.StatusOK, stats)
}

type bootstrapResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// Bootstrap handles POST /api/admin/bootstrap. It is guarded by a
// deployment-time token instead of the admin role, since it exists to
// create the first admin. Disabled entirely unless both the token and the
// admin password are configured.
func (h *AdminHandler) Bootstrap(c echo.Context) error {
	ctx := c.Request().Context()

	if !h.cfg.BootstrapEnabled() {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	}

	token := c.Request().Header.Get(bootstrapTokenHeader)
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.cfg.BootstrapToken)) != 1 {
		h.logger.Warn("bootstrap rejected, bad token", "ip", c.RealIP())
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
	}

	userID, created, err := h.adminUsecase.BootstrapAdmin(ctx)
	if err != nil {
		h.logger.Error("admin bootstrap failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize admin user"})
	}

	message := "Admin user already exists"
	if created {
		message = "Admin user created successfully"
	}

	return c.JSON(http.StatusOK, bootstrapResponse{
		Success: true,
		Message: message,
		UserID:  userID,
	})
}
