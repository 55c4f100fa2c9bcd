package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StartVerificationCommandHandler opens storage verification on one order.
type StartVerificationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartVerificationCommandHandler creates a handler for starting verification.
func NewStartVerificationCommandHandler(uowFactory OrderUoWFactory) StartVerificationCommandHandler {
	return StartVerificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies StartVerification, and persists the result.
func (h StartVerificationCommandHandler) Handle(ctx context.Context, command StartVerificationCommand) error {
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

	if err = aggregate.StartVerification(actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
