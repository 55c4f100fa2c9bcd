package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// MarkItemPackedCommandHandler records packing progress on single items.
type MarkItemPackedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkItemPackedCommandHandler creates a handler for item packing marks.
func NewMarkItemPackedCommandHandler(uowFactory OrderUoWFactory) MarkItemPackedCommandHandler {
	return MarkItemPackedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and flips one item's packing sub-status.
func (h MarkItemPackedCommandHandler) Handle(ctx context.Context, command MarkItemPackedCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor, err := kernel.NewActor(command.ActorID(), command.ActorName())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if command.Unavailable() {
		err = aggregate.MarkItemUnavailable(command.ItemIndex(), actor, now)
	} else {
		err = aggregate.MarkItemPacked(command.ItemIndex(), actor, now)
	}
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
