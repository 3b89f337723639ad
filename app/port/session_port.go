package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go

import (
	"context"

	"github.com/google/uuid"

	"thinksync/app/domain"
)

// SessionUsecase defines therapy-session business logic interface
type SessionUsecase interface {
	// Create generates the analysis bundle and persists a new session
	// owned by the given subject id.
	Create(ctx context.Context, ownerID string, req *domain.CreateSessionRequest) (*domain.TherapySession, error)

	// ListByOwner returns the caller's sessions, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.TherapySession, error)

	// Update overwrites analysis text and status on a session the caller
	// owns. Fails with domain.ErrForbidden when the record is absent or
	// owned by someone else.
	Update(ctx context.Context, ownerID string, sessionID uuid.UUID, analysis, status string) error

	// Preview generates an analysis bundle without persisting anything
	Preview(clientName, therapyType, summaryFormat string) *domain.SessionAnalysis
}

// SessionRepository defines therapy-session data access interface
type SessionRepository interface {
	Create(ctx context.Context, session *domain.TherapySession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TherapySession, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.TherapySession, error)
	UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis, status string) error
	Count(ctx context.Context) (int, error)
}
