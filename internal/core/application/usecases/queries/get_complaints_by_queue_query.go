package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetComplaintsByQueueQueryIsNotConstructed = errors.New(
		"GetComplaintsByQueueQuery must be created via NewGetComplaintsByQueueQuery constructor",
	)
)

// GetComplaintsByQueueQuery lists one routing queue's complaints together
// with per-status counts. Pre-delivery and post-delivery complaints never
// mix; each manager screen asks for its own queue.
//
// Example:
//
//	query, err := NewGetComplaintsByQueueQuery(complaint.QueuePre)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list complaint queue: %w", err)
//	}
//
//	fmt.Printf("%d open complaints\n", result.StatusCounts["open"])
type GetComplaintsByQueueQuery struct { //nolint:recvcheck //using for validation
	queue complaint.Queue

	guard guard.ConstructorGuard
}

// NewGetComplaintsByQueueQuery creates a query for one routing queue.
func NewGetComplaintsByQueueQuery(queue complaint.Queue) (GetComplaintsByQueueQuery, error) {
	if err := queue.Validate(); err != nil {
		return GetComplaintsByQueueQuery{}, err
	}

	return GetComplaintsByQueueQuery{
		queue: queue,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetComplaintsByQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetComplaintsByQueueQueryIsNotConstructed)
}

// Queue returns the routing queue to list.
func (q GetComplaintsByQueueQuery) Queue() complaint.Queue {
	return q.queue
}

// GetComplaintsByQueueQueryResponse carries the queue listing and the
// per-status tally over the same rows.
type GetComplaintsByQueueQueryResponse struct {
	Complaints   []ComplaintSummary
	StatusCounts map[string]int64
}

// ComplaintSummary is one row of the queue listing.
type ComplaintSummary struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	ItemIndex *int
	Stage     string
	Category  string
	Detail    string
	Reporter  string
	Status    string
	Priority  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
