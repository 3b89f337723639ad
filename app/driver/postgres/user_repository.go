package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"thinksync/app/domain"
	"thinksync/app/port"
	apperrors "thinksync/app/utils/errors"
)

// UserRepository implements port.UserRepository for PostgreSQL
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

const userColumns = `
	id, email, name, license_type, license_number, role,
	is_verified, is_approved, created_at, last_login, approved_at`

// Create inserts a new user record. The id is the identity-provider
// subject id; created_at is assigned by the database.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			id, email, name, license_type, license_number, role,
			is_verified, is_approved, approved_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.LicenseType,
		user.LicenseNumber,
		string(user.Role),
		user.IsVerified,
		user.IsApproved,
		user.ApprovedAt,
	)
	if err != nil {
		r.logger.Error("failed to create user", "user_id", user.ID, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to create user", err)
	}

	r.logger.Info("user created", "user_id", user.ID, "email", user.Email)
	return nil
}

// GetByID retrieves a user by subject id
func (r *UserRepository) GetByID(ctx context.Context, subjectID string) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, subjectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to get user", "user_id", subjectID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to get user", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to get user by email", "email", email, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to get user by email", err)
	}

	return user, nil
}

// RecordLogin stamps last_login with the database clock
func (r *UserRepository) RecordLogin(ctx context.Context, subjectID string) error {
	query := `UPDATE users SET last_login = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, subjectID)
	if err != nil {
		r.logger.Error("failed to record login", "user_id", subjectID, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to record login", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// Approve marks a user approved and verified. Idempotent: re-approving
// keeps the original approval timestamp.
func (r *UserRepository) Approve(ctx context.Context, subjectID string) error {
	query := `
		UPDATE users
		SET is_approved = TRUE,
		    is_verified = TRUE,
		    approved_at = COALESCE(approved_at, now())
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, subjectID)
	if err != nil {
		r.logger.Error("failed to approve user", "user_id", subjectID, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to approve user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	r.logger.Info("user approved", "user_id", subjectID)
	return nil
}

// List returns all users, newest registration first
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to list users", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Counts returns aggregate user counts in a single round trip
func (r *UserRepository) Counts(ctx context.Context) (total, pending, active int, err error) {
	query := `
		SELECT
			count(*),
			count(*) FILTER (WHERE NOT is_approved),
			count(*) FILTER (WHERE last_login IS NOT NULL)
		FROM users`

	if err = r.db.QueryRow(ctx, query).Scan(&total, &pending, &active); err != nil {
		r.logger.Error("failed to count users", "error", err)
		return 0, 0, 0, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to count users", err)
	}

	return total, pending, active, nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	var role string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.LicenseType,
		&user.LicenseNumber,
		&role,
		&user.IsVerified,
		&user.IsApproved,
		&user.CreatedAt,
		&user.LastLogin,
		&user.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = domain.UserRole(role)
	return user, nil
}
