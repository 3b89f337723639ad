package postgres

import (
	"context"
	"testing"
	"time"

	"thinksync/app/domain"
	"thinksync/app/utils/logger"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test user repository with mocked database
func createTestUserRepository(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewUserRepository(mockDB, testLogger).(*UserRepository)

	return repo, mockDB
}

// Helper function to create a test clinician
func createTestUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUser("subject-123", "dr.smith@clinic.example", "Dr. Smith", "LCSW", "LIC-4821")
	require.NoError(t, err)

	return user
}

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "email", "name", "license_type", "license_number", "role",
		"is_verified", "is_approved", "created_at", "last_login", "approved_at",
	})
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface, *domain.User)
		wantErr bool
	}{
		{
			name: "successful user creation",
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(
						user.ID,
						user.Email,
						user.Name,
						user.LicenseType,
						user.LicenseNumber,
						string(user.Role),
						user.IsVerified,
						user.IsApproved,
						user.ApprovedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(
						user.ID,
						user.Email,
						user.Name,
						user.LicenseType,
						user.LicenseNumber,
						string(user.Role),
						user.IsVerified,
						user.IsApproved,
						user.ApprovedAt,
					).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			user := createTestUser(t)
			tt.setupDB(mockDB, user)

			err := repo.Create(context.Background(), user)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	createdAt := time.Now().Add(-time.Hour)
	lastLogin := time.Now().Add(-time.Minute)

	mockDB.ExpectQuery("FROM users WHERE id").
		WithArgs("subject-123").
		WillReturnRows(userRows().AddRow(
			"subject-123", "dr.smith@clinic.example", "Dr. Smith", "LCSW", "LIC-4821",
			"clinician", true, true, createdAt, &lastLogin, &createdAt,
		))

	user, err := repo.GetByID(context.Background(), "subject-123")

	require.NoError(t, err)
	assert.Equal(t, "subject-123", user.ID)
	assert.Equal(t, domain.UserRoleClinician, user.Role)
	assert.True(t, user.IsApproved)
	require.NotNil(t, user.LastLogin)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM users WHERE id").
		WithArgs("missing").
		WillReturnRows(userRows())

	user, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	createdAt := time.Now()

	mockDB.ExpectQuery("FROM users WHERE email").
		WithArgs("admin@thinksync.com").
		WillReturnRows(userRows().AddRow(
			"subject-admin", "admin@thinksync.com", "System Administrator", "N/A", "N/A",
			"admin", true, true, createdAt, nil, &createdAt,
		))

	user, err := repo.GetByEmail(context.Background(), "admin@thinksync.com")

	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
	assert.Nil(t, user.LastLogin)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_Approve(t *testing.T) {
	tests := []struct {
		name      string
		subjectID string
		setupDB   func(pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name:      "pending user approved",
			subjectID: "subject-123",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE users").
					WithArgs("subject-123").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:      "unknown user",
			subjectID: "missing",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE users").
					WithArgs("missing").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			err := repo.Approve(context.Background(), tt.subjectID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_RecordLogin(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectExec("UPDATE users SET last_login").
		WithArgs("subject-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.RecordLogin(context.Background(), "subject-123")

	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	createdAt := time.Now()

	mockDB.ExpectQuery("FROM users ORDER BY created_at DESC").
		WillReturnRows(userRows().
			AddRow("subject-2", "b@clinic.example", "Dr. B", "PhD", "LIC-2", "clinician", false, false, createdAt, nil, nil).
			AddRow("subject-1", "a@clinic.example", "Dr. A", "LCSW", "LIC-1", "clinician", true, true, createdAt.Add(-time.Hour), nil, &createdAt))

	users, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "subject-2", users[0].ID)
	assert.False(t, users[0].IsApproved)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_Counts(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM users").
		WillReturnRows(pgxmock.NewRows([]string{"count", "count", "count"}).AddRow(7, 2, 4))

	total, pending, active, err := repo.Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Equal(t, 2, pending)
	assert.Equal(t, 4, active)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
