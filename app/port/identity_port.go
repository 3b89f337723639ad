package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"thinksync/app/domain"
)

// IdentityGateway defines the identity-provider contract the rest of the
// system depends on. Verification happens exactly once per authenticated
// request and results are never cached across requests.
type IdentityGateway interface {
	// VerifyCredential exchanges a bearer credential for a verified
	// subject id. Fails with domain.ErrInvalidToken when the provider
	// rejects the credential.
	VerifyCredential(ctx context.Context, token string) (string, error)

	// CreateAccount creates an identity-provider account and returns the
	// new subject id. Provider errors (e.g. duplicate email) carry the
	// provider's own message.
	CreateAccount(ctx context.Context, email, password, name string) (string, error)
}

// KratosClient defines the raw Kratos operations the gateway builds on
type KratosClient interface {
	ToSession(ctx context.Context, sessionToken string) (*domain.Identity, error)
	CreateIdentity(ctx context.Context, email, password, name string) (*domain.Identity, error)
	HealthCheck(ctx context.Context) error
}
