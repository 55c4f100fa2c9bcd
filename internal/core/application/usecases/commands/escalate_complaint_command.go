package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrEscalateComplaintCommandIsNotConstructed = errors.New(
	"EscalateComplaintCommand must be created via NewEscalateComplaintCommand constructor",
)

// EscalateComplaintCommand hands a complaint off to the external escalation
// track.
type EscalateComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewEscalateComplaintCommand creates a command to escalate a complaint.
// The reason may be empty: escalation hands ownership to the external track,
// which collects its own context.
func NewEscalateComplaintCommand(complaintID kernel.UUID, reason string) (EscalateComplaintCommand, error) {
	if err := complaintID.Validate(); err != nil {
		return EscalateComplaintCommand{}, err
	}

	return EscalateComplaintCommand{
		complaintID: complaintID,
		reason:      reason,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateComplaintCommand) Validate() error {
	return c.guard.Validate(ErrEscalateComplaintCommandIsNotConstructed)
}

// ComplaintID returns the complaint to escalate.
func (c EscalateComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// Reason returns why the complaint leaves local handling.
func (c EscalateComplaintCommand) Reason() string {
	return c.reason
}
