package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrMarkItemPackedCommandIsNotConstructed = errors.New(
		"MarkItemPackedCommand must be created via NewMarkItemPackedCommand constructor",
	)
	ErrItemIndexIsInvalid = errors.New("item index must not be negative")
)

// MarkItemPackedCommand sets one item's packing sub-status during picking.
// Unavailable toggles between "packed" and "unavailable".
type MarkItemPackedCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	itemIndex   int
	unavailable bool
	actorID     string
	actorName   string

	guard guard.ConstructorGuard
}

// NewMarkItemPackedCommand creates a command to mark an item packed or
// unavailable.
func NewMarkItemPackedCommand(
	orderID kernel.UUID,
	itemIndex int,
	unavailable bool,
	actorID, actorName string,
) (MarkItemPackedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkItemPackedCommand{}, err
	}
	if itemIndex < 0 {
		return MarkItemPackedCommand{}, ErrItemIndexIsInvalid
	}
	if actorID == "" {
		return MarkItemPackedCommand{}, ErrActorIDIsRequired
	}

	return MarkItemPackedCommand{
		orderID:     orderID,
		itemIndex:   itemIndex,
		unavailable: unavailable,
		actorID:     actorID,
		actorName:   actorName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemPackedCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemPackedCommandIsNotConstructed)
}

// OrderID returns the order holding the item.
func (c MarkItemPackedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemIndex returns the zero-based item position.
func (c MarkItemPackedCommand) ItemIndex() int {
	return c.itemIndex
}

// Unavailable reports whether the item is marked unavailable instead of packed.
func (c MarkItemPackedCommand) Unavailable() bool {
	return c.unavailable
}

// ActorID returns the id of the packing officer.
func (c MarkItemPackedCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the packing officer.
func (c MarkItemPackedCommand) ActorName() string {
	return c.actorName
}
