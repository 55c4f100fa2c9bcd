package commands

import (
	"context"
	"time"
)

// EscalateComplaintCommandHandler moves complaints to the escalated track.
type EscalateComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
}

// NewEscalateComplaintCommandHandler creates a handler for escalating complaints.
func NewEscalateComplaintCommandHandler(uowFactory ComplaintUoWFactory) EscalateComplaintCommandHandler {
	return EscalateComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the complaint, applies Escalate, and persists the result.
func (h EscalateComplaintCommandHandler) Handle(ctx context.Context, command EscalateComplaintCommand) error {
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

	if err = aggregate.Escalate(command.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = complaintsRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
