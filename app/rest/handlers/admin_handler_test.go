package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"thinksync/app/config"
	"thinksync/app/domain"
	mock_port "thinksync/app/mocks"
	"thinksync/app/port"
)

func newAdminHandlerUnderTest(t *testing.T, cfg *config.Config) (*AdminHandler, *mock_port.MockAdminUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockUsecase := mock_port.NewMockAdminUsecase(ctrl)

	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewAdminHandler(mockUsecase, cfg, slog.Default()), mockUsecase
}

func TestAdminHandler_ListUsers(t *testing.T) {
	handler, mockUsecase := newAdminHandlerUnderTest(t, nil)

	pending, err := domain.NewUser("subject-1", "a@clinic.example", "Dr. A", "LCSW", "LIC-1")
	require.NoError(t, err)
	approved, err := domain.NewUser("subject-2", "b@clinic.example", "Dr. B", "PhD", "LIC-2")
	require.NoError(t, err)
	approved.Approve(time.Now())

	mockUsecase.EXPECT().
		ListUsers(gomock.Any()).
		Return([]*domain.User{pending, approved}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.ListUsers(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]*domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp["users"], 2)
	assert.False(t, resp["users"][0].IsApproved)
	assert.True(t, resp["users"][1].IsApproved)
}

func TestAdminHandler_ApproveUser(t *testing.T) {
	approveContext := func(userID string) (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("userId")
		c.SetParamValues(userID)
		return c, rec
	}

	t.Run("approves pending user", func(t *testing.T) {
		handler, mockUsecase := newAdminHandlerUnderTest(t, nil)

		mockUsecase.EXPECT().
			ApproveUser(gomock.Any(), "subject-123").
			Return(nil)

		c, rec := approveContext("subject-123")
		require.NoError(t, handler.ApproveUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "User approved successfully", resp.Message)
	})

	t.Run("unknown user answers 404", func(t *testing.T) {
		handler, mockUsecase := newAdminHandlerUnderTest(t, nil)

		mockUsecase.EXPECT().
			ApproveUser(gomock.Any(), "missing").
			Return(domain.ErrUserNotFound)

		c, rec := approveContext("missing")
		require.NoError(t, handler.ApproveUser(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminHandler_Stats(t *testing.T) {
	handler, mockUsecase := newAdminHandlerUnderTest(t, nil)

	mockUsecase.EXPECT().
		Stats(gomock.Any()).
		Return(&port.AdminStats{
			TotalUsers:       7,
			TotalSessions:    12,
			PendingApprovals: 2,
			ActiveUsers:      4,
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.Stats(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats port.AdminStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 7, stats.TotalUsers)
	assert.Equal(t, 12, stats.TotalSessions)
	assert.Equal(t, 2, stats.PendingApprovals)
	assert.Equal(t, 4, stats.ActiveUsers)
}

func TestAdminHandler_Bootstrap(t *testing.T) {
	enabledConfig := &config.Config{
		BootstrapToken: "deploy-token",
		AdminPassword:  "bootstrap-secret",
	}

	bootstrapContext := func(token string) (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/bootstrap", strings.NewReader("{}"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if token != "" {
			req.Header.Set(bootstrapTokenHeader, token)
		}
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("creates admin with valid token", func(t *testing.T) {
		handler, mockUsecase := newAdminHandlerUnderTest(t, enabledConfig)

		mockUsecase.EXPECT().
			BootstrapAdmin(gomock.Any()).
			Return("subject-admin", true, nil)

		c, rec := bootstrapContext("deploy-token")
		require.NoError(t, handler.Bootstrap(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp bootstrapResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Admin user created successfully", resp.Message)
		assert.Equal(t, "subject-admin", resp.UserID)
	})

	t.Run("reports existing admin", func(t *testing.T) {
		handler, mockUsecase := newAdminHandlerUnderTest(t, enabledConfig)

		mockUsecase.EXPECT().
			BootstrapAdmin(gomock.Any()).
			Return("subject-admin", false, nil)

		c, rec := bootstrapContext("deploy-token")
		require.NoError(t, handler.Bootstrap(c))

		var resp bootstrapResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Admin user already exists", resp.Message)
	})

	t.Run("bad token answers 403", func(t *testing.T) {
		handler, _ := newAdminHandlerUnderTest(t, enabledConfig)

		c, rec := bootstrapContext("wrong-token")
		require.NoError(t, handler.Bootstrap(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("disabled without configuration", func(t *testing.T) {
		handler, _ := newAdminHandlerUnderTest(t, &config.Config{})

		c, rec := bootstrapContext("deploy-token")
		require.NoError(t, handler.Bootstrap(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
