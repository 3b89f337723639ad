package integration

import (
	"context"
	"testing"
	"time"

	"thinksync/app/analysis"
	"thinksync/app/domain"
	"thinksync/app/driver/postgres"
	"thinksync/app/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	require.NoError(t, pool.Ping(ctx), "Should ping database successfully")

	var result int
	err = pool.QueryRow(ctx, "SELECT 1").Scan(&result)
	require.NoError(t, err, "Should execute simple query")
	assert.Equal(t, 1, result, "Query result should be 1")
}

func TestUserRepositoryIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	userRepo := postgres.NewUserRepository(pool, testLogger)

	t.Run("clinician lifecycle", func(t *testing.T) {
		subjectID := "it-subject-" + uuid.New().String()
		email := subjectID + "@example.com"

		user, err := domain.NewUser(subjectID, email, "Integration Clinician", "LPC", "LPC-99001")
		require.NoError(t, err, "Should create user domain object")

		require.NoError(t, userRepo.Create(ctx, user), "Should store user")

		stored, err := userRepo.GetByID(ctx, subjectID)
		require.NoError(t, err, "Should load user by id")
		assert.Equal(t, email, stored.Email)
		assert.False(t, stored.IsApproved, "New clinicians start unapproved")
		assert.Nil(t, stored.LastLogin)

		byEmail, err := userRepo.GetByEmail(ctx, email)
		require.NoError(t, err, "Should load user by email")
		assert.Equal(t, subjectID, byEmail.ID)

		require.NoError(t, userRepo.Approve(ctx, subjectID), "Should approve user")

		approved, err := userRepo.GetByID(ctx, subjectID)
		require.NoError(t, err)
		assert.True(t, approved.IsApproved)
		require.NotNil(t, approved.ApprovedAt)
		firstApproval := *approved.ApprovedAt

		// Approving again must not move the original timestamp
		require.NoError(t, userRepo.Approve(ctx, subjectID))
		again, err := userRepo.GetByID(ctx, subjectID)
		require.NoError(t, err)
		require.NotNil(t, again.ApprovedAt)
		assert.WithinDuration(t, firstApproval, *again.ApprovedAt, time.Millisecond)

		require.NoError(t, userRepo.RecordLogin(ctx, subjectID), "Should stamp last login")
		active, err := userRepo.GetByID(ctx, subjectID)
		require.NoError(t, err)
		assert.NotNil(t, active.LastLogin)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := userRepo.GetByID(ctx, "no-such-subject")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		err = userRepo.Approve(ctx, "no-such-subject")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("directory counts", func(t *testing.T) {
		total, pending, active, err := userRepo.Counts(ctx)
		require.NoError(t, err, "Should compute directory counts")
		assert.GreaterOrEqual(t, total, pending)
		assert.GreaterOrEqual(t, total, active)
	})
}

func TestSessionRepositoryIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	userRepo := postgres.NewUserRepository(pool, testLogger)
	sessionRepo := postgres.NewSessionRepository(pool, testLogger)

	subjectID := "it-subject-" + uuid.New().String()
	owner, err := domain.NewUser(subjectID, subjectID+"@example.com", "Session Owner", "PhD", "PSY-12345")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(ctx, owner))

	generator := analysis.NewGenerator()

	t.Run("session lifecycle", func(t *testing.T) {
		bundle := generator.Generate("Integration Client", "CBT", "SOAP")
		session, err := domain.NewTherapySession(subjectID, "Integration Client", "CBT", "SOAP", bundle)
		require.NoError(t, err, "Should create session domain object")

		require.NoError(t, sessionRepo.Create(ctx, session), "Should store session")

		stored, err := sessionRepo.GetByID(ctx, session.ID)
		require.NoError(t, err, "Should load session by id")
		assert.Equal(t, subjectID, stored.UserID)
		assert.Equal(t, bundle.Analysis, stored.Analysis)
		assert.Equal(t, bundle.SentimentAnalysis, stored.SentimentAnalysis)
		assert.Equal(t, bundle.AreasForReview, stored.AreasForReview)
		assert.Equal(t, "completed", stored.Status)

		require.NoError(t, sessionRepo.UpdateAnalysis(ctx, session.ID, "Amended clinical note", "edited"))
		edited, err := sessionRepo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, "Amended clinical note", edited.Analysis)
		assert.Equal(t, "edited", edited.Status)
		assert.True(t, edited.UpdatedAt.After(edited.CreatedAt) || edited.UpdatedAt.Equal(edited.CreatedAt))

		listed, err := sessionRepo.ListByUser(ctx, subjectID)
		require.NoError(t, err, "Should list owner sessions")
		require.NotEmpty(t, listed)
		assert.Equal(t, session.ID, listed[0].ID, "Newest session should come first")

		count, err := sessionRepo.Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := sessionRepo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		err = sessionRepo.UpdateAnalysis(ctx, uuid.New(), "note", "edited")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}
