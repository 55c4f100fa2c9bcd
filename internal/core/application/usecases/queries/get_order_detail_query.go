package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery retrieves one order with everything persisted for it:
// the line items, the audit trail, and the proof bundle when one exists.
//
// Example:
//
//	query, err := NewGetOrderDetailQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order detail: %w", err)
//	}
//
//	fmt.Printf("Order %s is at stage %s\n", detail.ID, detail.Stage)
type GetOrderDetailQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a query for a single order's read model.
func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// OrderID returns the order to load.
func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailQueryResponse is the full order read model. Enum columns are
// rendered in their wire form so the payload is self-describing.
type GetOrderDetailQueryResponse struct {
	ID                    kernel.UUID
	CustomerRef           string
	Address               string
	DeliveryAt            time.Time
	TimeSlot              string
	TotalCents            int64
	Priority              string
	Stage                 string
	Version               int64
	UpdatedAt             time.Time
	PackingNotes          string
	StorageNotes          string
	StorageLocation       string
	VerificationStarted   bool
	VerificationFinalized bool
	ReqPackages           int
	ReqWeightKg           float64
	ReqVolumeM3           float64
	VehicleID             *kernel.UUID
	OfficerID             *kernel.UUID
	DriverID              *kernel.UUID
	RejectionReason       string
	Proof                 *OrderProofDetail
	Items                 []OrderItemDetail
	Transitions           []OrderTransitionDetail
}

// OrderProofDetail is the proof-of-delivery part of the order read model.
// Present only after the driver has marked arrival.
type OrderProofDetail struct {
	OpenedAt          time.Time
	FilledSlots       []string
	ComplaintFlagged  bool
	CustomerConfirmed bool
	Satisfaction      int
	Notes             string
	Finalized         bool
}

// OrderItemDetail is one line item of the order read model.
type OrderItemDetail struct {
	ProductRef        string
	Quantity          int
	UnitWeightKg      float64
	PackingStatus     string
	StorageStatus     string
	PackingComplaints []kernel.UUID
	StorageComplaints []kernel.UUID
}

// OrderTransitionDetail is one entry of the order's audit trail.
type OrderTransitionDetail struct {
	From       string
	To         string
	ActorID    string
	ActorName  string
	OccurredAt time.Time
}
