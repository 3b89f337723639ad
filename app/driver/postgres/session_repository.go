package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"thinksync/app/domain"
	"thinksync/app/port"
	apperrors "thinksync/app/utils/errors"
)

// SessionRepository implements port.SessionRepository for PostgreSQL.
// Sentiment and review-area payloads are stored as jsonb.
type SessionRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db DatabaseIface, logger *slog.Logger) port.SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger.With("component", "session_repository"),
	}
}

const sessionColumns = `
	id, user_id, client_name, therapy_type, summary_format,
	analysis, sentiment_analysis, validation_analysis,
	confidence_score, areas_for_review, status, created_at, updated_at`

// Create inserts a new therapy session. Timestamps come from the
// database clock.
func (r *SessionRepository) Create(ctx context.Context, session *domain.TherapySession) error {
	query := `
		INSERT INTO therapy_sessions (
			id, user_id, client_name, therapy_type, summary_format,
			analysis, sentiment_analysis, validation_analysis,
			confidence_score, areas_for_review, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	sentiment, err := json.Marshal(session.SentimentAnalysis)
	if err != nil {
		return fmt.Errorf("failed to encode sentiment analysis: %w", err)
	}
	areas, err := json.Marshal(session.AreasForReview)
	if err != nil {
		return fmt.Errorf("failed to encode review areas: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.ClientName,
		session.TherapyType,
		session.SummaryFormat,
		session.Analysis,
		sentiment,
		session.ValidationAnalysis,
		session.ConfidenceScore,
		areas,
		session.Status,
	)
	if err != nil {
		r.logger.Error("failed to create therapy session", "session_id", session.ID, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to create therapy session", err)
	}

	r.logger.Info("therapy session created", "session_id", session.ID, "user_id", session.UserID)
	return nil
}

// GetByID retrieves a therapy session by id
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TherapySession, error) {
	query := `SELECT` + sessionColumns + ` FROM therapy_sessions WHERE id = $1`

	session, err := r.scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		r.logger.Error("failed to get therapy session", "session_id", id, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to get therapy session", err)
	}

	return session, nil
}

// ListByUser returns the user's sessions, newest first
func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.TherapySession, error) {
	query := `SELECT` + sessionColumns + `
		FROM therapy_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to list therapy sessions", "user_id", userID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to list therapy sessions", err)
	}
	defer rows.Close()

	sessions := make([]*domain.TherapySession, 0)
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan therapy session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate therapy sessions: %w", err)
	}

	return sessions, nil
}

// UpdateAnalysis overwrites the analysis text and status and refreshes
// updated_at. Ownership is checked by the usecase before this runs.
func (r *SessionRepository) UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis, status string) error {
	query := `
		UPDATE therapy_sessions
		SET analysis = $2,
		    status = $3,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, analysis, status)
	if err != nil {
		r.logger.Error("failed to update therapy session", "session_id", id, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to update therapy session", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	r.logger.Info("therapy session updated", "session_id", id, "status", status)
	return nil
}

// Count returns the total number of therapy sessions
func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM therapy_sessions`).Scan(&count); err != nil {
		r.logger.Error("failed to count therapy sessions", "error", err)
		return 0, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to count therapy sessions", err)
	}

	return count, nil
}

func (r *SessionRepository) scanSession(row pgx.Row) (*domain.TherapySession, error) {
	session := &domain.TherapySession{}
	var sentiment, areas []byte

	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.ClientName,
		&session.TherapyType,
		&session.SummaryFormat,
		&session.Analysis,
		&sentiment,
		&session.ValidationAnalysis,
		&session.ConfidenceScore,
		&areas,
		&session.Status,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(sentiment, &session.SentimentAnalysis); err != nil {
		return nil, fmt.Errorf("failed to decode sentiment analysis: %w", err)
	}
	if err := json.Unmarshal(areas, &session.AreasForReview); err != nil {
		return nil, fmt.Errorf("failed to decode review areas: %w", err)
	}

	return session, nil
}
