package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go

import (
	"context"

	"thinksync/app/domain"
)

// UserUsecase defines user directory business logic interface
type UserUsecase interface {
	// Register creates an identity-provider account plus an unapproved
	// clinician record and returns the new subject id.
	Register(ctx context.Context, req *domain.RegisterRequest) (string, error)

	// Login verifies the credential, enforces the approval gate, stamps
	// last login and returns the public profile.
	Login(ctx context.Context, idToken string) (*domain.UserProfile, error)

	// VerifySubject resolves a bearer credential to a subject id
	VerifySubject(ctx context.Context, token string) (string, error)

	// GetUser loads a user record by subject id
	GetUser(ctx context.Context, subjectID string) (*domain.User, error)
}

// UserRepository defines user data access interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, subjectID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	RecordLogin(ctx context.Context, subjectID string) error
	Approve(ctx context.Context, subjectID string) error
	List(ctx context.Context) ([]*domain.User, error)

	// Counts returns (total, pendingApprovals, activeUsers) where active
	// means the user has logged in at least once.
	Counts(ctx context.Context) (total, pending, active int, err error)
}
