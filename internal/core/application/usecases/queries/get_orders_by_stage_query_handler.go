package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStageQueryHandler lists one stage's work queue from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern; the item
// count comes from a correlated subquery instead of loading the line items.
type GetOrdersByStageQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStageQueryHandler creates a handler for stage queue queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStageQueryHandler(db *gorm.DB) GetOrdersByStageQueryHandler {
	return GetOrdersByStageQueryHandler{db: db}
}

// Handle executes the query for one stage.
// Returns the queue ranked by priority, earliest delivery slot first within
// the same priority.
func (h GetOrdersByStageQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStageQuery,
) ([]GetOrdersByStageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStageQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_ref,
			o.address,
			o.delivery_at,
			o.time_slot,
			o.total_cents,
			o.priority,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
		WHERE o.stage = ?
		ORDER BY o.priority DESC, o.delivery_at ASC
	`, int(query.Stage())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersByStageQueryResponse
		var id uuid.UUID
		var priority int

		err = rows.Scan(
			&id,
			&orderResp.CustomerRef,
			&orderResp.Address,
			&orderResp.DeliveryAt,
			&orderResp.TimeSlot,
			&orderResp.TotalCents,
			&priority,
			&orderResp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		orderResp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		orderResp.Priority = order.Priority(priority).String()

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
