package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetStageStatsQueryIsNotConstructed = errors.New(
		"GetStageStatsQuery must be created via NewGetStageStatsQuery constructor",
	)
)

// GetStageStatsQuery counts orders per workflow stage. This is the dashboard
// overview: how much work is sitting where.
//
// Example:
//
//	query := NewGetStageStatsQuery()
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get stage stats: %w", err)
//	}
//
//	for _, stat := range stats {
//	    fmt.Printf("%s: %d orders\n", stat.Stage, stat.Count)
//	}
type GetStageStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStageStatsQuery creates a query counting orders per stage.
// This is a parameterless query covering every stage with at least one order.
func NewGetStageStatsQuery() GetStageStatsQuery {
	return GetStageStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStageStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStageStatsQueryIsNotConstructed)
}

// GetStageStatsQueryResponse is one stage's order count.
type GetStageStatsQueryResponse struct {
	Stage string
	Count int64
}
