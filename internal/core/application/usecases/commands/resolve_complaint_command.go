package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrResolveComplaintCommandIsNotConstructed = errors.New(
		"ResolveComplaintCommand must be created via NewResolveComplaintCommand constructor",
	)
	ErrResolutionIsRequired = errors.New("resolution text is required")
)

// ResolveComplaintCommand closes a complaint with a resolution text.
type ResolveComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	resolution  string

	guard guard.ConstructorGuard
}

// NewResolveComplaintCommand creates a command to resolve a complaint.
func NewResolveComplaintCommand(complaintID kernel.UUID, resolution string) (ResolveComplaintCommand, error) {
	if err := complaintID.Validate(); err != nil {
		return ResolveComplaintCommand{}, err
	}
	if resolution == "" {
		return ResolveComplaintCommand{}, ErrResolutionIsRequired
	}

	return ResolveComplaintCommand{
		complaintID: complaintID,
		resolution:  resolution,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveComplaintCommand) Validate() error {
	return c.guard.Validate(ErrResolveComplaintCommandIsNotConstructed)
}

// ComplaintID returns the complaint to resolve.
func (c ResolveComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// Resolution returns the closing text.
func (c ResolveComplaintCommand) Resolution() string {
	return c.resolution
}
