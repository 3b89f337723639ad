package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"thinksync/app/domain"
	"thinksync/app/port"
	"thinksync/app/rest/middleware"
	"thinksync/app/utils/validator"
)

// Demo defaults used when the caller omits fields
const (
	demoClientName    = "DEMO-FIREBASE-001"
	demoTherapyType   = "Cognitive Behavioral Protocol"
	demoSummaryFormat = "SOAP"
)

// SessionHandler handles therapy-session HTTP requests
type SessionHandler struct {
	sessionUsecase port.SessionUsecase
	validator      *validator.Validator
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionUsecase port.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator.New(),
		logger:         logger.With("component", "session_handler"),
	}
}

type createSessionResponse struct {
	Success   bool      `json:"success"`
	SessionID uuid.UUID `json:"sessionId"`
	Message   string    `json:"message"`
	domain.SessionAnalysis
}

// Create handles POST /api/therapy/sessions
func (h *SessionHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID := middleware.SubjectID(c)

	req := new(domain.CreateSessionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
	}

	session, err := h.sessionUsecase.Create(ctx, ownerID, req)
	if err != nil {
		h.logger.Error("session creation failed", "user_id", ownerID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Session processing failed"})
	}

	return c.JSON(http.StatusOK, createSessionResponse{
		Success:   true,
		SessionID: session.ID,
		Message:   "Session processed successfully",
		SessionAnalysis: domain.SessionAnalysis{
			Analysis:           session.Analysis,
			SentimentAnalysis:  session.SentimentAnalysis,
			ValidationAnalysis: session.ValidationAnalysis,
			ConfidenceScore:    session.ConfidenceScore,
			AreasForReview:     session.AreasForReview,
		},
	})
}

type listSessionsResponse struct {
	Sessions []*domain.TherapySession `json:"sessions"`
	Total    int                      `json:"total"`
}

// List handles GET /api/therapy/sessions
func (h *SessionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID := middleware.SubjectID(c)

	sessions, err := h.sessionUsecase.ListByOwner(ctx, ownerID)
	if err != nil {
		h.logger.Error("session listing failed", "user_id", ownerID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve sessions"})
	}

	return c.JSON(http.StatusOK, listSessionsResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
}

type updateSessionRequest struct {
	Analysis string `json:"analysis"`
	Status   string `json:"status"`
}

// Update handles PUT /api/therapy/sessions/:sessionId. An unknown id and
// a foreign id answer identically.
func (h *SessionHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID := middleware.SubjectID(c)

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Session not found or access denied"})
	}

	req := new(updateSessionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
	}

	if err := h.sessionUsecase.Update(ctx, ownerID, sessionID, req.Analysis, req.Status); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Session not found or access denied"})
		}
		h.logger.Error("session update failed", "session_id", sessionID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update session"})
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Session updated successfully",
	})
}

type demoRequest struct {
	ClientName    string `json:"clientName"`
	TherapyType   string `json:"therapyType"`
	SummaryFormat string `json:"summaryFormat"`
}

type demoResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Platform string `json:"platform"`
	domain.SessionAnalysis
}

// Demo handles POST /api/therapy/demo. Unauthenticated; nothing is
// persisted. Missing fields fall back to demo defaults.
func (h *SessionHandler) Demo(c echo.Context) error {
	req := new(demoRequest)
	if err := c.Bind(req); err != nil {
		req = &demoRequest{}
	}
	if req.ClientName == "" {
		req.ClientName = demoClientName
	}
	if req.TherapyType == "" {
		req.TherapyType = demoTherapyType
	}
	if req.SummaryFormat == "" {
		req.SummaryFormat = demoSummaryFormat
	}

	bundle := h.sessionUsecase.Preview(req.ClientName, req.TherapyType, req.SummaryFormat)

	return c.JSON(http.StatusOK, demoResponse{
		Success:         true,
		Message:         "Neural simulation completed successfully",
		Platform:        "ThinkSync Enhanced",
		SessionAnalysis: *bundle,
	})
}
