package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartVerificationCommandIsNotConstructed = errors.New(
	"StartVerificationCommand must be created via NewStartVerificationCommand constructor",
)

// StartVerificationCommand opens storage verification on a packed order.
type StartVerificationCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewStartVerificationCommand creates a command to begin storage verification.
func NewStartVerificationCommand(orderID kernel.UUID, actorID, actorName string) (StartVerificationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartVerificationCommand{}, err
	}
	if actorID == "" {
		return StartVerificationCommand{}, ErrActorIDIsRequired
	}

	return StartVerificationCommand{
		orderID:   orderID,
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartVerificationCommand) Validate() error {
	return c.guard.Validate(ErrStartVerificationCommandIsNotConstructed)
}

// OrderID returns the order to verify.
func (c StartVerificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the id of the storage officer.
func (c StartVerificationCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the storage officer.
func (c StartVerificationCommand) ActorName() string {
	return c.actorName
}
