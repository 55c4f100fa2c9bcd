package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// CompleteVerificationCommandHandler closes storage verification on one order.
// This is the hand-off point to dispatch: afterwards the verification state
// is read-only and the order joins the assignable pool.
type CompleteVerificationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteVerificationCommandHandler creates a handler for closing verification.
func NewCompleteVerificationCommandHandler(uowFactory OrderUoWFactory) CompleteVerificationCommandHandler {
	return CompleteVerificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies CompleteVerification, and persists the result.
func (h CompleteVerificationCommandHandler) Handle(ctx context.Context, command CompleteVerificationCommand) error {
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

	if err = aggregate.CompleteVerification(
		command.Notes(), command.Location(), actor, time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
