package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session status values. The status column is deliberately a free string:
// callers may supply their own value on update and it is stored as-is.
const (
	SessionStatusCompleted = "completed"
	SessionStatusEdited    = "edited"
)

// SentimentAnalysis is the structured sentiment payload attached to every
// session. Its content is constant regardless of session input.
type SentimentAnalysis struct {
	OverallEmotionalTone       string   `json:"overallEmotionalTone"`
	EmotionalProgression       string   `json:"emotionalProgression"`
	KeyEmotionalIndicators     []string `json:"keyEmotionalIndicators"`
	TherapeuticEngagementLevel string   `json:"therapeuticEngagementLevel"`
	RiskAssessment             string   `json:"riskAssessment"`
	ProgressIndicators         []string `json:"progressIndicators"`
}

// ReviewArea flags a part of the generated note for clinician review.
type ReviewArea struct {
	Area        string `json:"area"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

// SessionAnalysis bundles everything the note generator produces for one
// session.
type SessionAnalysis struct {
	Analysis           string            `json:"analysis"`
	SentimentAnalysis  SentimentAnalysis `json:"sentimentAnalysis"`
	ValidationAnalysis string            `json:"validationAnalysis"`
	ConfidenceScore    float64           `json:"confidenceScore"`
	AreasForReview     []ReviewArea      `json:"areasForReview"`
}

// TherapySession is a persisted session record. UserID is set once at
// creation and is never reassigned; every read and update must compare it
// against the caller's verified subject id.
type TherapySession struct {
	ID                 uuid.UUID         `json:"id"`
	UserID             string            `json:"userId"`
	ClientName         string            `json:"clientName"`
	TherapyType        string            `json:"therapyType"`
	SummaryFormat      string            `json:"summaryFormat"`
	Analysis           string            `json:"analysis"`
	SentimentAnalysis  SentimentAnalysis `json:"sentimentAnalysis"`
	ValidationAnalysis string            `json:"validationAnalysis"`
	ConfidenceScore    float64           `json:"confidenceScore"`
	AreasForReview     []ReviewArea      `json:"areasForReview"`
	Status             string            `json:"status"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// CreateSessionRequest carries the caller-supplied fields for a new session.
type CreateSessionRequest struct {
	ClientName    string `json:"clientName" validate:"required"`
	TherapyType   string `json:"therapyType" validate:"required"`
	SummaryFormat string `json:"summaryFormat" validate:"required"`
}

// NewTherapySession creates a session record owned by the given user,
// carrying the generated analysis bundle. Status starts as completed.
func NewTherapySession(userID, clientName, therapyType, summaryFormat string, bundle *SessionAnalysis) (*TherapySession, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if clientName == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if therapyType == "" {
		return nil, fmt.Errorf("therapy type is required")
	}
	if summaryFormat == "" {
		return nil, fmt.Errorf("summary format is required")
	}
	if bundle == nil {
		return nil, fmt.Errorf("analysis bundle is required")
	}

	return &TherapySession{
		ID:                 uuid.New(),
		UserID:             userID,
		ClientName:         clientName,
		TherapyType:        therapyType,
		SummaryFormat:      summaryFormat,
		Analysis:           bundle.Analysis,
		SentimentAnalysis:  bundle.SentimentAnalysis,
		ValidationAnalysis: bundle.ValidationAnalysis,
		ConfidenceScore:    bundle.ConfidenceScore,
		AreasForReview:     bundle.AreasForReview,
		Status:             SessionStatusCompleted,
	}, nil
}

// OwnedBy reports whether the session belongs to the given subject id
func (s *TherapySession) OwnedBy(subjectID string) bool {
	return s.UserID == subjectID
}

// ApplyEdit overwrites the analysis text and status. An empty status
// defaults to edited.
func (s *TherapySession) ApplyEdit(analysis, status string) {
	s.Analysis = analysis
	if status == "" {
		status = SessionStatusEdited
	}
	s.Status = status
}
