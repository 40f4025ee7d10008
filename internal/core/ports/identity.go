package ports

import (
	"context"

	"storefront/internal/core/domain/model/actor"
)

type credentialKey struct{}

// WithCredential attaches the raw bearer token to the context so outbound
// adapters can forward it to the remote API.
func WithCredential(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, credentialKey{}, token)
}

// CredentialFromContext returns the bearer token attached by WithCredential.
// The second return is false when no credential is present.
func CredentialFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(credentialKey{}).(string)
	return token, ok && token != ""
}

// IdentityProvider resolves a raw credential into an acting party. An empty
// credential resolves to the anonymous actor; a malformed or expired one is
// an error, not anonymity.
type IdentityProvider interface {
	Resolve(ctx context.Context, credential string) (actor.Actor, error)
}
