package kratos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kratosclient "github.com/ory/kratos-client-go"

	"thinksync/app/domain"
)

const identitySchemaID = "default"

// Adapter implements port.KratosClient over the raw Kratos API clients.
type Adapter struct {
	client *Client
}

// NewAdapter creates a new Kratos adapter
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// ToSession exchanges a session token for the identity it belongs to.
// Any provider rejection surfaces as an error; callers decide how to map it.
func (a *Adapter) ToSession(ctx context.Context, sessionToken string) (*domain.Identity, error) {
	session, _, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("session verification failed: %s", providerMessage(err))
	}
	if session.Identity == nil {
		return nil, errors.New("session has no identity")
	}

	return identityFromKratos(session.Identity), nil
}

// CreateIdentity provisions a password-credentialed identity through the
// admin API and returns its subject id.
func (a *Adapter) CreateIdentity(ctx context.Context, email, password, name string) (*domain.Identity, error) {
	body := kratosclient.CreateIdentityBody{
		SchemaId: identitySchemaID,
		Traits: map[string]interface{}{
			"email": email,
			"name":  name,
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}

	identity, _, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("identity creation failed: %s", providerMessage(err))
	}

	return identityFromKratos(identity), nil
}

// HealthCheck checks if Kratos is healthy
func (a *Adapter) HealthCheck(ctx context.Context) error {
	return a.client.HealthCheck(ctx)
}

func identityFromKratos(identity *kratosclient.Identity) *domain.Identity {
	out := &domain.Identity{ID: identity.Id}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return out
	}
	if email, ok := traits["email"].(string); ok {
		out.Email = email
	}
	if name, ok := traits["name"].(string); ok {
		out.Name = name
	}

	return out
}

// providerMessage extracts the human-readable message Kratos returned,
// falling back to the raw error text. Duplicate-email conflicts arrive
// this way and the message is surfaced to registration callers verbatim.
func providerMessage(err error) string {
	var apiErr *kratosclient.GenericOpenAPIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	var body struct {
		Error struct {
			Message string `json:"message"`
			Reason  string `json:"reason"`
		} `json:"error"`
	}
	if jsonErr := json.Unmarshal(apiErr.Body(), &body); jsonErr == nil {
		if body.Error.Reason != "" {
			return body.Error.Reason
		}
		if body.Error.Message != "" {
			return body.Error.Message
		}
	}

	return apiErr.Error()
}
