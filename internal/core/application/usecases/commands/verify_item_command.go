package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrVerifyItemCommandIsNotConstructed = errors.New(
	"VerifyItemCommand must be created via NewVerifyItemCommand constructor",
)

// VerifyItemCommand marks one item verified during storage verification.
type VerifyItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemIndex int
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewVerifyItemCommand creates a command to verify one item.
func NewVerifyItemCommand(orderID kernel.UUID, itemIndex int, actorID, actorName string) (VerifyItemCommand, error) {
	if err := orderID.Validate(); err != nil {
		return VerifyItemCommand{}, err
	}
	if itemIndex < 0 {
		return VerifyItemCommand{}, ErrItemIndexIsInvalid
	}
	if actorID == "" {
		return VerifyItemCommand{}, ErrActorIDIsRequired
	}

	return VerifyItemCommand{
		orderID:   orderID,
		itemIndex: itemIndex,
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyItemCommand) Validate() error {
	return c.guard.Validate(ErrVerifyItemCommandIsNotConstructed)
}

// OrderID returns the order holding the item.
func (c VerifyItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemIndex returns the zero-based item position.
func (c VerifyItemCommand) ItemIndex() int {
	return c.itemIndex
}

// ActorID returns the id of the storage officer.
func (c VerifyItemCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the storage officer.
func (c VerifyItemCommand) ActorName() string {
	return c.actorName
}
