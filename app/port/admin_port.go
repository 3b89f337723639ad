package port

//go:generate mockgen -source=admin_port.go -destination=../mocks/mock_admin_port.go

import (
	"context"

	"thinksync/app/domain"
)

// AdminStats aggregates system-wide counts for the admin dashboard
type AdminStats struct {
	TotalUsers       int `json:"totalUsers"`
	TotalSessions    int `json:"totalSessions"`
	PendingApprovals int `json:"pendingApprovals"`
	ActiveUsers      int `json:"activeUsers"`
}

// AdminUsecase defines admin-only business logic interface. Role checks
// happen in the gateway layer before any of these run.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// ApproveUser approves and verifies a pending user. Idempotent:
	// re-approving an already approved user succeeds without change.
	ApproveUser(ctx context.Context, subjectID string) error

	Stats(ctx context.Context) (*AdminStats, error)

	// BootstrapAdmin creates the fixed admin account if it does not exist
	// yet. Returns the admin's subject id and whether it was created now.
	BootstrapAdmin(ctx context.Context) (string, bool, error)
}
