package gateway

import (
	"context"
	"log/slog"

	"thinksync/app/domain"
	"thinksync/app/port"
)

// IdentityGateway implements port.IdentityGateway.
// It acts as an anti-corruption layer between the domain and the external
// identity provider.
type IdentityGateway struct {
	kratosClient port.KratosClient
	logger       *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(kratosClient port.KratosClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		kratosClient: kratosClient,
		logger:       logger.With("component", "identity_gateway"),
	}
}

// VerifyCredential exchanges a bearer credential for a verified subject id.
// Every rejection collapses to domain.ErrInvalidToken so callers cannot
// distinguish expired, malformed, and revoked credentials.
func (g *IdentityGateway) VerifyCredential(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrInvalidToken
	}

	identity, err := g.kratosClient.ToSession(ctx, token)
	if err != nil {
		g.logger.Warn("credential verification failed", "error", err)
		return "", domain.ErrInvalidToken
	}

	return identity.ID, nil
}

// CreateAccount creates an identity-provider account and returns the new
// subject id. Provider failures keep the provider's own message so
// registration callers can surface it verbatim.
func (g *IdentityGateway) CreateAccount(ctx context.Context, email, password, name string) (string, error) {
	g.logger.Info("creating identity-provider account", "email", email)

	identity, err := g.kratosClient.CreateIdentity(ctx, email, password, name)
	if err != nil {
		g.logger.Error("failed to create identity-provider account", "email", email, "error", err)
		return "", domain.NewIdentityProviderError("create account", err.Error(), err)
	}

	g.logger.Info("identity-provider account created", "subject_id", identity.ID)
	return identity.ID, nil
}
