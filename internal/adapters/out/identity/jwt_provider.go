// Package identity resolves bearer credentials into actors. Tokens are the
// remote API's HS256 JWTs; this side only verifies and reads them, it never
// issues one.
package identity

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredential is returned for a credential that is present but
// cannot be verified: bad signature, expired, or missing claims. A missing
// credential is not an error, it resolves to the anonymous actor.
var ErrInvalidCredential = errors.New("credential is invalid or expired")

// JWTProvider implements ports.IdentityProvider over shared-secret JWTs.
type JWTProvider struct {
	secret []byte
}

// NewJWTProvider creates a provider verifying against the shared secret.
func NewJWTProvider(secret []byte) *JWTProvider {
	return &JWTProvider{secret: secret}
}

// Resolve verifies the credential and builds the acting party from its
// claims: "sub" (user id), "name", and "role".
func (p *JWTProvider) Resolve(_ context.Context, credential string) (actor.Actor, error) {
	if credential == "" {
		return actor.AnonymousActor(), nil
	}

	token, err := jwt.Parse(credential, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return actor.Actor{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return actor.Actor{}, fmt.Errorf("%w: unreadable claims", ErrInvalidCredential)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return actor.Actor{}, fmt.Errorf("%w: missing subject", ErrInvalidCredential)
	}

	roleClaim, ok := claims["role"].(string)
	if !ok {
		return actor.Actor{}, fmt.Errorf("%w: missing role", ErrInvalidCredential)
	}

	role, err := actor.ParseRole(roleClaim)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	id, err := kernel.IDFromString(subject)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	name, _ := claims["name"].(string)

	return actor.NewActor(id, name, role)
}
