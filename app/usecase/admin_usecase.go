package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"thinksync/app/config"
	"thinksync/app/domain"
	"thinksync/app/port"
)

// AdminUseCase implements admin-only business logic. Callers are already
// role-checked by the time these run.
type AdminUseCase struct {
	userRepo        port.UserRepository
	sessionRepo     port.SessionRepository
	identityGateway port.IdentityGateway
	cfg             *config.Config
	logger          *slog.Logger
}

// NewAdminUseCase creates a new AdminUseCase instance
func NewAdminUseCase(
	userRepo port.UserRepository,
	sessionRepo port.SessionRepository,
	identityGateway port.IdentityGateway,
	cfg *config.Config,
	logger *slog.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		identityGateway: identityGateway,
		cfg:             cfg,
		logger:          logger.With("component", "admin_usecase"),
	}
}

// ListUsers returns every registered user, newest first
func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.List(ctx)
}

// ApproveUser approves and verifies a pending user. Re-approving an
// already approved user succeeds and keeps the original timestamp.
func (uc *AdminUseCase) ApproveUser(ctx context.Context, subjectID string) error {
	if err := uc.userRepo.Approve(ctx, subjectID); err != nil {
		return err
	}

	uc.logger.Info("user approved by admin", "user_id", subjectID)
	return nil
}

// Stats aggregates system-wide counts for the admin dashboard
func (uc *AdminUseCase) Stats(ctx context.Context) (*port.AdminStats, error) {
	total, pending, active, err := uc.userRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := uc.sessionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &port.AdminStats{
		TotalUsers:       total,
		TotalSessions:    sessions,
		PendingApprovals: pending,
		ActiveUsers:      active,
	}, nil
}

// BootstrapAdmin creates the configured admin account if it does not
// exist yet. Returns the admin's subject id and whether it was created
// on this call.
func (uc *AdminUseCase) BootstrapAdmin(ctx context.Context) (string, bool, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, uc.cfg.AdminEmail)
	if err == nil {
		uc.logger.Info("admin account already exists", "user_id", existing.ID)
		return existing.ID, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", false, err
	}

	subjectID, err := uc.identityGateway.CreateAccount(ctx, uc.cfg.AdminEmail, uc.cfg.AdminPassword, uc.cfg.AdminName)
	if err != nil {
		return "", false, err
	}

	admin, err := domain.NewUser(subjectID, uc.cfg.AdminEmail, uc.cfg.AdminName, "N/A", "N/A")
	if err != nil {
		return "", false, err
	}
	admin.Role = domain.UserRoleAdmin
	admin.Approve(time.Now())

	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return "", false, err
	}

	uc.logger.Info("admin account bootstrapped", "user_id", subjectID, "email", uc.cfg.AdminEmail)
	return subjectID, true, nil
}
