package kernel

import (
	"fulfillment/internal/pkg/errs"
)

// ErrActorIsNotConstructed indicates an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor")

// Actor is an opaque reference to the staff member performing an operation.
// Authentication and authorization live in an external identity collaborator;
// the workflow only records who did what for the transition audit trail.
//
// Actor is a value object: immutable, compared by ID.
type Actor struct {
	id   string
	name string
}

// NewActor creates an actor reference from an external identity.
// The ID must be non-empty; the display name is optional and falls back
// to the ID when blank.
func NewActor(id, name string) (Actor, error) {
	if id == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor id")
	}
	if name == "" {
		name = id
	}
	return Actor{id: id, name: name}, nil
}

// ID returns the opaque identifier supplied by the identity collaborator.
func (a Actor) ID() string {
	return a.id
}

// Name returns the display name recorded in the audit trail.
func (a Actor) Name() string {
	return a.name
}

// IsEqual compares two actors by their identifiers.
func (a Actor) IsEqual(other Actor) bool {
	return a.id == other.id
}

// Validate returns ErrActorIsNotConstructed for the zero-value Actor.
func (a Actor) Validate() error {
	if a.id == "" {
		return ErrActorIsNotConstructed
	}
	return nil
}
