package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStageStatsQueryHandler counts orders per stage with a single aggregate
// query. Stages with no orders are absent from the result.
type GetStageStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStageStatsQueryHandler creates a handler for stage statistic queries.
// Requires a GORM database connection for query execution.
func NewGetStageStatsQueryHandler(db *gorm.DB) GetStageStatsQueryHandler {
	return GetStageStatsQueryHandler{db: db}
}

// Handle executes the per-stage count.
// Results follow the workflow's stage order, not the count.
func (h GetStageStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStageStatsQuery,
) ([]GetStageStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]GetStageStatsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			stage,
			COUNT(*)
		FROM orders
		GROUP BY stage
		ORDER BY stage
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat GetStageStatsQueryResponse
		var stage int

		err = rows.Scan(&stage, &stat.Count)
		if err != nil {
			return nil, err
		}

		stat.Stage = order.Stage(stage).String()
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
