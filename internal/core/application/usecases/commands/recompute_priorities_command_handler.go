package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// RecomputePrioritiesCommandHandler sweeps active orders and persists every
// order whose derived priority has drifted. Each order gets its own
// transaction so one stale write never rolls back the rest of the sweep.
type RecomputePrioritiesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecomputePrioritiesCommandHandler creates a handler for priority sweeps.
func NewRecomputePrioritiesCommandHandler(uowFactory OrderUoWFactory) RecomputePrioritiesCommandHandler {
	return RecomputePrioritiesCommandHandler{uowFactory: uowFactory}
}

// Handle lists active orders once, then re-derives each priority in its own
// transaction. Returns the number of orders whose priority changed; the
// error return covers only listing the pool.
func (h RecomputePrioritiesCommandHandler) Handle(ctx context.Context, command RecomputePrioritiesCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	pool, err := h.listActive(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, orderID := range pool {
		didChange, recomputeErr := h.recomputeOne(ctx, orderID, time.Now().UTC())
		if recomputeErr != nil {
			continue
		}
		if didChange {
			changed++
		}
	}
	return changed, nil
}

// listActive snapshots the IDs of all non-terminal orders in a read-only
// transaction.
func (h RecomputePrioritiesCommandHandler) listActive(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pool, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(pool))
	for _, aggregate := range pool {
		ids = append(ids, aggregate.ID())
	}
	return ids, uow.Commit(ctx)
}

// recomputeOne reloads a single order and persists it only when the derived
// priority actually moved.
func (h RecomputePrioritiesCommandHandler) recomputeOne(ctx context.Context, orderID kernel.UUID, now time.Time) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, orderID)
	if err != nil {
		return false, err
	}

	if !aggregate.RecomputePriority(now) {
		return false, uow.Commit(ctx)
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}
	return true, uow.Commit(ctx)
}
