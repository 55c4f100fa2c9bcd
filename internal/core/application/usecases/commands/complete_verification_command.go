package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCompleteVerificationCommandIsNotConstructed = errors.New(
		"CompleteVerificationCommand must be created via NewCompleteVerificationCommand constructor",
	)
	ErrStorageLocationIsRequired = errors.New("storage location is required")
)

// CompleteVerificationCommand closes storage verification, freezing the
// storage notes and location and making the order assignable.
type CompleteVerificationCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	notes     string
	location  string
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewCompleteVerificationCommand creates a command to close verification.
func NewCompleteVerificationCommand(
	orderID kernel.UUID,
	notes, location, actorID, actorName string,
) (CompleteVerificationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteVerificationCommand{}, err
	}
	if location == "" {
		return CompleteVerificationCommand{}, ErrStorageLocationIsRequired
	}
	if actorID == "" {
		return CompleteVerificationCommand{}, ErrActorIDIsRequired
	}

	return CompleteVerificationCommand{
		orderID:   orderID,
		notes:     notes,
		location:  location,
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteVerificationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteVerificationCommandIsNotConstructed)
}

// OrderID returns the order to close verification on.
func (c CompleteVerificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the storage notes to freeze on the order.
func (c CompleteVerificationCommand) Notes() string {
	return c.notes
}

// Location returns where the parcels wait for dispatch.
func (c CompleteVerificationCommand) Location() string {
	return c.location
}

// ActorID returns the id of the storage officer.
func (c CompleteVerificationCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the storage officer.
func (c CompleteVerificationCommand) ActorName() string {
	return c.actorName
}
