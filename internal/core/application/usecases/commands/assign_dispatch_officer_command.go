package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDispatchOfficerCommandIsNotConstructed = errors.New(
	"AssignDispatchOfficerCommand must be created via NewAssignDispatchOfficerCommand constructor",
)

// AssignDispatchOfficerCommand records the second dispatch officer taking
// over the parcel hand-over to the allocated driver.
type AssignDispatchOfficerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	officerID kernel.UUID
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewAssignDispatchOfficerCommand creates a command for the hand-over step.
func NewAssignDispatchOfficerCommand(
	orderID, officerID kernel.UUID,
	actorID, actorName string,
) (AssignDispatchOfficerCommand, error) {
	if err := errors.Join(orderID.Validate(), officerID.Validate()); err != nil {
		return AssignDispatchOfficerCommand{}, err
	}
	if actorID == "" {
		return AssignDispatchOfficerCommand{}, ErrActorIDIsRequired
	}

	return AssignDispatchOfficerCommand{
		orderID:   orderID,
		officerID: officerID,
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDispatchOfficerCommand) Validate() error {
	return c.guard.Validate(ErrAssignDispatchOfficerCommandIsNotConstructed)
}

// OrderID returns the order being handed over.
func (c AssignDispatchOfficerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OfficerID returns the second dispatch officer taking over.
func (c AssignDispatchOfficerCommand) OfficerID() kernel.UUID {
	return c.officerID
}

// ActorID returns the id of the acting user.
func (c AssignDispatchOfficerCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the acting user.
func (c AssignDispatchOfficerCommand) ActorName() string {
	return c.actorName
}
