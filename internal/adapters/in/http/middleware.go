package http

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	actorContextKey  = "storefront.actor"
	sessionKeyHeader = "X-Session-Key"
)

// ActorMiddleware resolves the acting party once per request. The credential
// comes from the Authorization bearer header or, failing that, from a stored
// session named by X-Session-Key. The raw credential is attached to the
// request context so outbound gateways can forward it; the resolved Actor is
// stashed on the echo context for the handlers.
//
// No credential means the anonymous actor, which still passes through:
// public endpoints work, gated ones fail their capability check.
func ActorMiddleware(provider ports.IdentityProvider, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credential, err := extractCredential(c, sessions)
			if err != nil {
				return respondError(c, err)
			}

			ctx := ports.WithCredential(c.Request().Context(), credential)
			c.SetRequest(c.Request().WithContext(ctx))

			a, err := provider.Resolve(ctx, credential)
			if err != nil {
				return respondError(c, err)
			}
			c.Set(actorContextKey, a)

			return next(c)
		}
	}
}

func extractCredential(c echo.Context, sessions ports.SessionStore) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		return token, nil
	}

	sessionKey := c.Request().Header.Get(sessionKeyHeader)
	if sessionKey == "" {
		return "", nil
	}

	credential, err := sessions.Get(c.Request().Context(), sessionKey)
	if err != nil {
		// An unknown session key behaves like no credential at all; the
		// client just has to sign in again.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", nil
		}
		return "", err
	}

	return credential, nil
}

// actorFrom returns the Actor resolved by ActorMiddleware, anonymous when
// the middleware did not run.
func actorFrom(c echo.Context) actor.Actor {
	if a, ok := c.Get(actorContextKey).(actor.Actor); ok {
		return a
	}
	return actor.AnonymousActor()
}
