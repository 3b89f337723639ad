package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"thinksync/app/analysis"
	"thinksync/app/domain"
	"thinksync/app/port"
)

// SessionUseCase implements therapy-session business logic
type SessionUseCase struct {
	sessionRepo port.SessionRepository
	generator   *analysis.Generator
	logger      *slog.Logger
}

// NewSessionUseCase creates a new SessionUseCase instance
func NewSessionUseCase(sessionRepo port.SessionRepository, generator *analysis.Generator, logger *slog.Logger) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo: sessionRepo,
		generator:   generator,
		logger:      logger.With("component", "session_usecase"),
	}
}

// Create generates the analysis bundle and persists a new session owned
// by the given subject id
func (uc *SessionUseCase) Create(ctx context.Context, ownerID string, req *domain.CreateSessionRequest) (*domain.TherapySession, error) {
	bundle := uc.generator.Generate(req.ClientName, req.TherapyType, req.SummaryFormat)

	session, err := domain.NewTherapySession(ownerID, req.ClientName, req.TherapyType, req.SummaryFormat, bundle)
	if err != nil {
		return nil, err
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	uc.logger.Info("therapy session created", "session_id", session.ID, "user_id", ownerID)
	return session, nil
}

// ListByOwner returns the caller's sessions, newest first
func (uc *SessionUseCase) ListByOwner(ctx context.Context, ownerID string) ([]*domain.TherapySession, error) {
	return uc.sessionRepo.ListByUser(ctx, ownerID)
}

// Update overwrites analysis text and status on a session the caller
// owns. A missing record and a record owned by someone else both fail
// with domain.ErrForbidden so callers cannot probe for foreign session
// ids.
func (uc *SessionUseCase) Update(ctx context.Context, ownerID string, sessionID uuid.UUID, analysisText, status string) error {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.ErrForbidden
		}
		return err
	}

	if !session.OwnedBy(ownerID) {
		uc.logger.Warn("session update rejected, ownership mismatch",
			"session_id", sessionID, "caller_id", ownerID)
		return domain.ErrForbidden
	}

	session.ApplyEdit(analysisText, status)

	if err := uc.sessionRepo.UpdateAnalysis(ctx, sessionID, session.Analysis, session.Status); err != nil {
		return err
	}

	uc.logger.Info("therapy session updated", "session_id", sessionID, "status", session.Status)
	return nil
}

// Preview generates an analysis bundle without persisting anything
func (uc *SessionUseCase) Preview(clientName, therapyType, summaryFormat string) *domain.SessionAnalysis {
	return uc.generator.Generate(clientName, therapyType, summaryFormat)
}
