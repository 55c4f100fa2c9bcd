package http

import "time"

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	CustomerRef string             `json:"customer_ref" validate:"required"`
	Address     string             `json:"address"      validate:"required"`
	DeliveryAt  time.Time          `json:"delivery_at"  validate:"required"`
	TimeSlot    string             `json:"time_slot"`
	TotalCents  int64              `json:"total_cents"  validate:"gte=0"`
	VolumeM3    float64            `json:"volume_m3"    validate:"gte=0"`
	Items       []OrderItemRequest `json:"items"        validate:"required,min=1,dive"`
}

// OrderItemRequest is one line item of a new order.
type OrderItemRequest struct {
	ProductRef   string  `json:"product_ref"    validate:"required"`
	Quantity     int     `json:"quantity"       validate:"gt=0"`
	UnitWeightKg float64 `json:"unit_weight_kg" validate:"gt=0"`
}

// ActorRequest identifies who performs a workflow step. Most stage operations
// embed it; the audit trail records it verbatim.
type ActorRequest struct {
	ActorID   string `json:"actor_id"   validate:"required"`
	ActorName string `json:"actor_name"`
}

// MarkItemPackedRequest is the payload for marking one line item.
// Unavailable flips the outcome from packed to unavailable.
type MarkItemPackedRequest struct {
	ActorRequest
	Unavailable bool `json:"unavailable"`
}

// CompletePackingRequest closes the packing stage.
type CompletePackingRequest struct {
	ActorRequest
	Notes string `json:"notes"`
}

// CompleteVerificationRequest closes the storage verification stage.
type CompleteVerificationRequest struct {
	ActorRequest
	Notes    string `json:"notes"`
	Location string `json:"location" validate:"required"`
}

// AssignDispatchOfficerRequest hands the order to a second dispatch officer.
type AssignDispatchOfficerRequest struct {
	ActorRequest
	OfficerID string `json:"officer_id" validate:"required,uuid"`
}

// AcceptOrderRequest is the driver's acceptance of an offered order.
type AcceptOrderRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

// RejectOrderRequest is the driver's rejection; the reason lands on the order.
type RejectOrderRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
	Reason   string `json:"reason"    validate:"required"`
}

// FillProofSlotRequest marks one proof-of-delivery slot as uploaded.
// Only the slot name travels here; media bytes move out of band.
type FillProofSlotRequest struct {
	Slot string `json:"slot" validate:"required"`
}

// ConfirmDeliveryRequest records the customer's confirmation.
type ConfirmDeliveryRequest struct {
	Satisfaction  int    `json:"satisfaction" validate:"gte=1,lte=5"`
	Notes         string `json:"notes"`
	FlagComplaint bool   `json:"flag_complaint"`
}

// BranchOrderRequest diverts the order onto a branch track:
// refund, complaint, driver-issue, or return.
type BranchOrderRequest struct {
	ActorRequest
	Kind string `json:"kind" validate:"required"`
}

// FileComplaintRequest opens a complaint against an order, optionally pinned
// to one line item.
type FileComplaintRequest struct {
	ActorRequest
	OrderID   string `json:"order_id" validate:"required,uuid"`
	ItemIndex *int   `json:"item_index" validate:"omitempty,gte=0"`
	Stage     string `json:"stage"    validate:"required"`
	Category  string `json:"category"`
	Detail    string `json:"detail"   validate:"required"`
	Priority  string `json:"priority" validate:"required"`
}

// UpdateComplaintRequest edits an open complaint: begin work, bump priority,
// append a note. Fields left empty are untouched.
type UpdateComplaintRequest struct {
	Begin    bool    `json:"begin"`
	Priority *string `json:"priority"`
	Note     string  `json:"note"`
}

// ResolveComplaintRequest closes a complaint with a resolution text.
type ResolveComplaintRequest struct {
	Resolution string `json:"resolution" validate:"required"`
}

// EscalateComplaintRequest pushes a complaint to the escalated status.
// The reason is optional; the escalation target collects its own context.
type EscalateComplaintRequest struct {
	Reason string `json:"reason"`
}
