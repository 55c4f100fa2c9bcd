package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrBranchOrderCommandIsNotConstructed = errors.New(
		"BranchOrderCommand must be created via NewBranchOrderCommand constructor",
	)
	ErrBranchKindIsInvalid = errors.New("branch kind is invalid")
)

// BranchKind names the exceptional track an order is diverted onto.
type BranchKind int

const (
	BranchKindUnknown BranchKind = iota
	// BranchKindRefund diverts the order onto the refund track.
	BranchKindRefund
	// BranchKindComplaint diverts the order onto the complaint track.
	BranchKindComplaint
	// BranchKindDriverIssue diverts the order onto the driver-issue track.
	BranchKindDriverIssue
	// BranchKindReturn marks the parcel as returned to the warehouse.
	BranchKindReturn
)

func branchKindStrings() map[BranchKind]string {
	return map[BranchKind]string{
		BranchKindRefund:      "refund",
		BranchKindComplaint:   "complaint",
		BranchKindDriverIssue: "driver-issue",
		BranchKindReturn:      "return",
	}
}

// BranchKindFromString parses the wire form of a branch kind.
func BranchKindFromString(value string) (BranchKind, error) {
	for kind, str := range branchKindStrings() {
		if str == value {
			return kind, nil
		}
	}
	return BranchKindUnknown, ErrBranchKindIsInvalid
}

// Validate checks the kind is one of the named constants.
func (k BranchKind) Validate() error {
	if k <= BranchKindUnknown || k > BranchKindReturn {
		return ErrBranchKindIsInvalid
	}
	return nil
}

// String returns the wire form of the kind.
func (k BranchKind) String() string {
	return branchKindStrings()[k]
}

// BranchOrderCommand diverts an order off the forward path onto one of the
// exceptional tracks: refund, complaint, driver issue, or return.
type BranchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    BranchKind
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewBranchOrderCommand creates a command to branch an order.
func NewBranchOrderCommand(orderID kernel.UUID, kind BranchKind, actor kernel.Actor) (BranchOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return BranchOrderCommand{}, err
	}
	if err := kind.Validate(); err != nil {
		return BranchOrderCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return BranchOrderCommand{}, ErrActorIDIsRequired
	}

	return BranchOrderCommand{
		orderID: orderID,
		kind:    kind,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BranchOrderCommand) Validate() error {
	return c.guard.Validate(ErrBranchOrderCommandIsNotConstructed)
}

// OrderID returns the order to divert.
func (c BranchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns the exceptional track to divert onto.
func (c BranchOrderCommand) Kind() BranchKind {
	return c.kind
}

// Actor returns who ordered the diversion.
func (c BranchOrderCommand) Actor() kernel.Actor {
	return c.actor
}
