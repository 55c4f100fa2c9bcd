package commands

import (
	"context"
	"time"
)

// ResolveComplaintCommandHandler closes complaints with a resolution.
type ResolveComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
}

// NewResolveComplaintCommandHandler creates a handler for resolving complaints.
func NewResolveComplaintCommandHandler(uowFactory ComplaintUoWFactory) ResolveComplaintCommandHandler {
	return ResolveComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the complaint, applies Resolve, and persists the result.
func (h ResolveComplaintCommandHandler) Handle(ctx context.Context, command ResolveComplaintCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	complaintsRepo := uow.ComplaintRepository()

	aggregate, err := complaintsRepo.Get(ctx, command.ComplaintID())
	if err != nil {
		return err
	}

	if err = aggregate.Resolve(command.Resolution(), time.Now().UTC()); err != nil {
		return err
	}

	if err = complaintsRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
