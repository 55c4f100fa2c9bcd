package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateComplaintCommandIsNotConstructed = errors.New(
		"UpdateComplaintCommand must be created via NewUpdateComplaintCommand constructor",
	)
	ErrNothingToUpdate = errors.New("update must carry begin, a priority, or a note")
)

// UpdateComplaintCommand edits an open complaint: begin handling, re-rank
// its priority, append an internal note, or any combination. At least one
// of the three must be present.
type UpdateComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	begin       bool
	priority    *complaint.Priority
	note        string

	guard guard.ConstructorGuard
}

// NewUpdateComplaintCommand creates a command to edit a complaint.
func NewUpdateComplaintCommand(
	complaintID kernel.UUID,
	begin bool,
	priority *complaint.Priority,
	note string,
) (UpdateComplaintCommand, error) {
	if err := complaintID.Validate(); err != nil {
		return UpdateComplaintCommand{}, err
	}
	if priority != nil {
		if err := priority.Validate(); err != nil {
			return UpdateComplaintCommand{}, err
		}
	}
	if !begin && priority == nil && note == "" {
		return UpdateComplaintCommand{}, ErrNothingToUpdate
	}

	return UpdateComplaintCommand{
		complaintID: complaintID,
		begin:       begin,
		priority:    priority,
		note:        note,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateComplaintCommand) Validate() error {
	return c.guard.Validate(ErrUpdateComplaintCommandIsNotConstructed)
}

// ComplaintID returns the complaint to edit.
func (c UpdateComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// Begin reports whether handling should start.
func (c UpdateComplaintCommand) Begin() bool {
	return c.begin
}

// Priority returns the new rank, nil to keep the current one.
func (c UpdateComplaintCommand) Priority() *complaint.Priority {
	return c.priority
}

// Note returns the internal note to append, empty for none.
func (c UpdateComplaintCommand) Note() string {
	return c.note
}
