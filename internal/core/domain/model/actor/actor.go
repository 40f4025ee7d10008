// Package actor models the authenticated party performing storefront
// operations. An Actor is resolved once per request from the persisted
// credential and passed explicitly to every use case; there is no ambient
// current-user singleton.
package actor

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// NewActor or AnonymousActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or AnonymousActor")

// Actor is the identity attempting an operation. Anonymous actors have no id
// or name; authenticated actors carry the server-issued user id, the display
// name, and exactly one role.
type Actor struct {
	id   kernel.ID
	name string
	role Role

	isConstructed bool
}

// NewActor creates an authenticated actor. The id must be a valid
// server-issued identifier and the role must not be Anonymous; use
// AnonymousActor for unauthenticated parties.
func NewActor(id kernel.ID, name string, role Role) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	if role == Anonymous {
		return Actor{}, errors.New("authenticated actor cannot have the anonymous role")
	}

	return Actor{
		id:            id,
		name:          name,
		role:          role,
		isConstructed: true,
	}, nil
}

// AnonymousActor creates the unauthenticated actor. It is valid but carries
// no identity and fails every capability check that requires authentication.
func AnonymousActor() Actor {
	return Actor{
		role:          Anonymous,
		isConstructed: true,
	}
}

// Validate ensures the Actor was created through a constructor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's server-issued identifier. Zero value for Anonymous.
func (a Actor) ID() kernel.ID {
	return a.id
}

// Name returns the actor's display name.
func (a Actor) Name() string {
	return a.name
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAnonymous reports whether the actor carries no credential.
func (a Actor) IsAnonymous() bool {
	return a.role == Anonymous
}

// IsCustomer reports whether the actor is an authenticated customer.
func (a Actor) IsCustomer() bool {
	return a.role == Customer
}

// IsAdmin reports whether the actor is a back-office admin.
func (a Actor) IsAdmin() bool {
	return a.role == Admin
}

// IsRider reports whether the actor is a delivery rider.
func (a Actor) IsRider() bool {
	return a.role == Rider
}
