package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrdersByStageQueryIsNotConstructed = errors.New(
		"GetOrdersByStageQuery must be created via NewGetOrdersByStageQuery constructor",
	)
)

// GetOrdersByStageQuery lists the orders sitting at one workflow stage,
// most urgent first. This is the work queue a packing or dispatch screen
// renders.
//
// Example:
//
//	query, err := NewGetOrdersByStageQuery(order.Picking)
//	if err != nil {
//	    return err
//	}
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list picking queue: %w", err)
//	}
//
//	fmt.Printf("%d orders waiting to be packed\n", len(queue))
type GetOrdersByStageQuery struct { //nolint:recvcheck //using for validation
	stage order.Stage

	guard guard.ConstructorGuard
}

// NewGetOrdersByStageQuery creates a query for one stage's work queue.
func NewGetOrdersByStageQuery(stage order.Stage) (GetOrdersByStageQuery, error) {
	if err := stage.Validate(); err != nil {
		return GetOrdersByStageQuery{}, err
	}

	return GetOrdersByStageQuery{
		stage: stage,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStageQueryIsNotConstructed)
}

// Stage returns the stage to list.
func (q GetOrdersByStageQuery) Stage() order.Stage {
	return q.stage
}

// GetOrdersByStageQueryResponse is one row of a stage's work queue.
type GetOrdersByStageQueryResponse struct {
	ID          kernel.UUID
	CustomerRef string
	Address     string
	DeliveryAt  time.Time
	TimeSlot    string
	TotalCents  int64
	Priority    string
	ItemCount   int
}
