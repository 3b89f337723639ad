package usecase

import (
	"context"
	"log/slog"

	"thinksync/app/domain"
	"thinksync/app/port"
)

// UserUseCase implements user directory business logic
type UserUseCase struct {
	userRepo        port.UserRepository
	identityGateway port.IdentityGateway
	logger          *slog.Logger
}

// NewUserUseCase creates a new UserUseCase instance
func NewUserUseCase(userRepo port.UserRepository, identityGateway port.IdentityGateway, logger *slog.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo:        userRepo,
		identityGateway: identityGateway,
		logger:          logger.With("component", "user_usecase"),
	}
}

// Register creates an identity-provider account plus an unapproved
// clinician record. The provider account is the source of truth for the
// subject id.
func (uc *UserUseCase) Register(ctx context.Context, req *domain.RegisterRequest) (string, error) {
	subjectID, err := uc.identityGateway.CreateAccount(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return "", err
	}

	user, err := domain.NewUser(subjectID, req.Email, req.Name, req.LicenseType, req.LicenseNumber)
	if err != nil {
		return "", err
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	uc.logger.Info("clinician registered, pending approval", "user_id", subjectID, "email", req.Email)
	return subjectID, nil
}

// Login verifies the credential, enforces the approval gate, stamps last
// login and returns the public profile. Unapproved accounts fail with
// domain.ErrPendingApproval even when the credential is valid.
func (uc *UserUseCase) Login(ctx context.Context, idToken string) (*domain.UserProfile, error) {
	subjectID, err := uc.identityGateway.VerifyCredential(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	if !user.IsApproved {
		uc.logger.Info("login blocked, account pending approval", "user_id", subjectID)
		return nil, domain.ErrPendingApproval
	}

	if err := uc.userRepo.RecordLogin(ctx, subjectID); err != nil {
		// The credential checked out; a failed stamp must not block login.
		uc.logger.Warn("failed to record login time", "user_id", subjectID, "error", err)
	}

	uc.logger.Info("login succeeded", "user_id", subjectID, "role", user.Role)
	return user.Profile(), nil
}

// VerifySubject resolves a bearer credential to a subject id
func (uc *UserUseCase) VerifySubject(ctx context.Context, token string) (string, error) {
	return uc.identityGateway.VerifyCredential(ctx, token)
}

// GetUser loads a user record by subject id
func (uc *UserUseCase) GetUser(ctx context.Context, subjectID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, subjectID)
}
