package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetComplaintsByQueueQueryHandler lists a routing queue from the database.
// The listing includes resolved complaints so a manager can review history;
// the status tally over the same rows shows how much is still open.
type GetComplaintsByQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetComplaintsByQueueQueryHandler creates a handler for complaint queue
// queries. Requires a GORM database connection for query execution.
func NewGetComplaintsByQueueQueryHandler(db *gorm.DB) GetComplaintsByQueueQueryHandler {
	return GetComplaintsByQueueQueryHandler{db: db}
}

// Handle executes the query for one routing queue.
// Complaints come back ranked by priority, oldest first within the same
// priority, matching the order managers work them in.
func (h GetComplaintsByQueueQueryHandler) Handle(
	ctx context.Context,
	query GetComplaintsByQueueQuery,
) (*GetComplaintsByQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	complaints, err := h.loadComplaints(ctx, query.Queue())
	if err != nil {
		return nil, err
	}

	counts, err := h.loadStatusCounts(ctx, query.Queue())
	if err != nil {
		return nil, err
	}

	return &GetComplaintsByQueueQueryResponse{
		Complaints:   complaints,
		StatusCounts: counts,
	}, nil
}

func (h GetComplaintsByQueueQueryHandler) loadComplaints(
	ctx context.Context,
	queue complaint.Queue,
) ([]ComplaintSummary, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			item_index,
			stage,
			category,
			detail,
			reporter_name,
			status,
			priority,
			created_at,
			updated_at
		FROM complaints
		WHERE queue = ?
		ORDER BY priority DESC, created_at ASC
	`, int(queue)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := make([]ComplaintSummary, 0)
	for rows.Next() {
		var summary ComplaintSummary
		var id, orderID uuid.UUID
		var itemIndex sql.NullInt64
		var stage, status, priority int

		err = rows.Scan(
			&id,
			&orderID,
			&itemIndex,
			&stage,
			&summary.Category,
			&summary.Detail,
			&summary.Reporter,
			&status,
			&priority,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		summary.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}
		if itemIndex.Valid {
			idx := int(itemIndex.Int64)
			summary.ItemIndex = &idx
		}
		summary.Stage = complaint.Stage(stage).String()
		summary.Status = complaint.Status(status).String()
		summary.Priority = complaint.Priority(priority).String()

		complaints = append(complaints, summary)
	}

	return complaints, rows.Err()
}

func (h GetComplaintsByQueueQueryHandler) loadStatusCounts(
	ctx context.Context,
	queue complaint.Queue,
) (map[string]int64, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM complaints
		WHERE queue = ?
		GROUP BY status
	`, int(queue)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status int
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[complaint.Status(status).String()] = count
	}

	return counts, rows.Err()
}
