package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrFileItemComplaintCommandIsNotConstructed = errors.New(
		"FileItemComplaintCommand must be created via NewFileItemComplaintCommand constructor",
	)
	ErrDetailIsRequired = errors.New("complaint detail is required")
)

// FileItemComplaintCommand files a complaint against an order, optionally
// pinned to one line item. Complaints filed at the packing or storage stage
// park the item, taking it out of the stage gate.
type FileItemComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	orderID     kernel.UUID
	itemIndex   *int
	stage       complaint.Stage
	category    string
	detail      string
	priority    complaint.Priority
	actorID     string
	actorName   string

	guard guard.ConstructorGuard
}

// NewFileItemComplaintCommand creates a command to file a complaint.
// itemIndex may be nil for order-level complaints (delivery and
// post-delivery stages).
func NewFileItemComplaintCommand(
	complaintID kernel.UUID,
	orderID kernel.UUID,
	itemIndex *int,
	stage complaint.Stage,
	category string,
	detail string,
	priority complaint.Priority,
	actorID, actorName string,
) (FileItemComplaintCommand, error) {
	if err := errors.Join(
		complaintID.Validate(),
		orderID.Validate(),
		stage.Validate(),
		priority.Validate(),
	); err != nil {
		return FileItemComplaintCommand{}, err
	}
	if detail == "" {
		return FileItemComplaintCommand{}, ErrDetailIsRequired
	}
	if itemIndex != nil && *itemIndex < 0 {
		return FileItemComplaintCommand{}, ErrItemIndexIsInvalid
	}
	if actorID == "" {
		return FileItemComplaintCommand{}, ErrActorIDIsRequired
	}

	return FileItemComplaintCommand{
		complaintID: complaintID,
		orderID:     orderID,
		itemIndex:   itemIndex,
		stage:       stage,
		category:    category,
		detail:      detail,
		priority:    priority,
		actorID:     actorID,
		actorName:   actorName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FileItemComplaintCommand) Validate() error {
	return c.guard.Validate(ErrFileItemComplaintCommandIsNotConstructed)
}

// ComplaintID returns the identifier for the new complaint.
func (c FileItemComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// OrderID returns the order the complaint targets.
func (c FileItemComplaintCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemIndex returns the pinned item position, nil for order-level complaints.
func (c FileItemComplaintCommand) ItemIndex() *int {
	return c.itemIndex
}

// Stage returns the workflow stage the complaint is filed at.
func (c FileItemComplaintCommand) Stage() complaint.Stage {
	return c.stage
}

// Category returns the complaint kind.
func (c FileItemComplaintCommand) Category() string {
	return c.category
}

// Detail returns the reporter's description.
func (c FileItemComplaintCommand) Detail() string {
	return c.detail
}

// Priority returns the initial queue rank.
func (c FileItemComplaintCommand) Priority() complaint.Priority {
	return c.priority
}

// ActorID returns the id of the reporter.
func (c FileItemComplaintCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the reporter.
func (c FileItemComplaintCommand) ActorName() string {
	return c.actorName
}
