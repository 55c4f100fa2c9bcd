package commands

import (
	"context"
	"time"
)

// UpdateComplaintCommandHandler applies manager edits to open complaints.
type UpdateComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
}

// NewUpdateComplaintCommandHandler creates a handler for complaint edits.
func NewUpdateComplaintCommandHandler(uowFactory ComplaintUoWFactory) UpdateComplaintCommandHandler {
	return UpdateComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the requested edits in order: begin, priority, note.
// Terminal complaints reject every edit.
func (h UpdateComplaintCommandHandler) Handle(ctx context.Context, command UpdateComplaintCommand) error {
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

	now := time.Now().UTC()
	if command.Begin() {
		if err = aggregate.Begin(now); err != nil {
			return err
		}
	}
	if command.Priority() != nil {
		if err = aggregate.UpdatePriority(*command.Priority(), now); err != nil {
			return err
		}
	}
	if command.Note() != "" {
		if err = aggregate.AddNote(command.Note(), now); err != nil {
			return err
		}
	}

	if err = complaintsRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
