package usecase

import (
	"context"
	"log/slog"
	"testing"

	"thinksync/app/analysis"
	"thinksync/app/domain"
	mock_port "thinksync/app/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSessionUseCaseUnderTest(t *testing.T) (*SessionUseCase, *mock_port.MockSessionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mock_port.NewMockSessionRepository(ctrl)

	uc := NewSessionUseCase(mockRepo, analysis.NewGenerator(), slog.Default())
	return uc, mockRepo
}

func TestSessionUseCase_Create(t *testing.T) {
	req := &domain.CreateSessionRequest{
		ClientName:    "CLIENT-001",
		TherapyType:   "Cognitive Behavioral Therapy",
		SummaryFormat: "SOAP",
	}

	t.Run("creates session with generated bundle", func(t *testing.T) {
		uc, mockRepo := newSessionUseCaseUnderTest(t)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, session *domain.TherapySession) error {
				assert.Equal(t, "subject-123", session.UserID)
				assert.Equal(t, domain.SessionStatusCompleted, session.Status)
				assert.Contains(t, session.Analysis, "CLIENT-001")
				assert.Contains(t, session.Analysis, "SOAP THERAPY SESSION SUMMARY")
				assert.Equal(t, analysis.ConfidenceScore, session.ConfidenceScore)
				assert.Len(t, session.AreasForReview, 2)
				return nil
			})

		session, err := uc.Create(context.Background(), "subject-123", req)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, session.ID)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		uc, mockRepo := newSessionUseCaseUnderTest(t)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		session, err := uc.Create(context.Background(), "subject-123", req)

		assert.Error(t, err)
		assert.Nil(t, session)
	})
}

func TestSessionUseCase_Update(t *testing.T) {
	ownedSession := func(t *testing.T, ownerID string) *domain.TherapySession {
		t.Helper()
		bundle := analysis.NewGenerator().Generate("CLIENT-001", "CBT", "SOAP")
		session, err := domain.NewTherapySession(ownerID, "CLIENT-001", "CBT", "SOAP", bundle)
		require.NoError(t, err)
		return session
	}

	t.Run("owner updates analysis and status", func(t *testing.T) {
		uc, mockRepo := newSessionUseCaseUnderTest(t)

		session := ownedSession(t, "subject-123")
		mockRepo.EXPECT().
			GetByID(gomock.Any(), session.ID).
			Return(session, nil)
		mockRepo.EXPECT().
			UpdateAnalysis(gomock.Any(), session.ID, "revised note", "reviewed").
			Return(nil)

		err := uc.Update(context.Background(), "subject-123", session.ID, "revised note", "reviewed")

		assert.NoError(t, err)
	})

	t.Run("empty status defaults to edited", func(t *testing.T) {
		uc, mockRepo := newSessionUseCaseUnderTest(t)

		session := ownedSession(t, "subject-123")
		mockRepo.EXPECT().
			GetByID(gomock.Any(), session.ID).
			Return(session, nil)
		mockRepo.EXPECT().
			UpdateAnalysis(gomock.Any(), session.ID, "revised note", domain.SessionStatusEdited).
			Return(nil)

		err := uc.Update(context.Background(), "subject-123", session.ID, "revised note", "")

		assert.NoError(t, err)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		uc, mockRepo := newSessionUseCaseUnderTest(t)

		session := ownedSession(t, "someone-else")
		mockRepo.EXPECT().
			GetByID(gomock.Any(), session.ID).
			Return(session, nil)

		err := uc.Update(context.Background(), "subject-123", session.ID, "revised note", "")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("absent session is forbidden, not not-found", func(t *testing.T) {
		uc, mockRepo := newSessionUseCaseUnderTest(t)

		missing := uuid.New()
		mockRepo.EXPECT().
			GetByID(gomock.Any(), missing).
			Return(nil, domain.ErrSessionNotFound)

		err := uc.Update(context.Background(), "subject-123", missing, "revised note", "")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestSessionUseCase_Preview(t *testing.T) {
	uc, _ := newSessionUseCaseUnderTest(t)

	bundle := uc.Preview("DEMO-FIREBASE-001", "Cognitive Behavioral Protocol", "SOAP")

	require.NotNil(t, bundle)
	assert.Contains(t, bundle.Analysis, "DEMO-FIREBASE-001")
	assert.Equal(t, analysis.ConfidenceScore, bundle.ConfidenceScore)
}

func TestSessionUseCase_ListByOwner(t *testing.T) {
	uc, mockRepo := newSessionUseCaseUnderTest(t)

	mockRepo.EXPECT().
		ListByUser(gomock.Any(), "subject-123").
		Return([]*domain.TherapySession{}, nil)

	sessions, err := uc.ListByOwner(context.Background(), "subject-123")

	require.NoError(t, err)
	assert.Empty(t, sessions)
}
