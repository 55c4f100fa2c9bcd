// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate spans three tables: the order row
// itself (with the proof-bundle columns inlined), its line items, and its
// append-only transition trail.
package orderrepo

import (
	"sort"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The proof bundle lives in the proof_* columns; a NULL proof_opened_at means
// the driver has not marked arrival and no bundle exists yet.
type OrderDTO struct {
	ID                    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerRef           string      `gorm:"type:varchar(255);not null"`
	Address               string      `gorm:"type:varchar(512);not null"`
	DeliveryAt            time.Time   `gorm:"not null"`
	TimeSlot              string      `gorm:"type:varchar(32)"`
	TotalCents            int64       `gorm:"not null"`
	Priority              int         `gorm:"type:int;not null;index"`
	Stage                 int         `gorm:"type:int;not null;index"`
	Version               int64       `gorm:"not null"`
	UpdatedAt             time.Time   `gorm:"not null"`
	PackingNotes          string      `gorm:"type:text"`
	StorageNotes          string      `gorm:"type:text"`
	StorageLocation       string      `gorm:"type:varchar(255)"`
	VerificationStarted   bool        `gorm:"not null"`
	VerificationFinalized bool        `gorm:"not null;index"`
	Requirement           CapacityDTO `gorm:"embedded;embeddedPrefix:req_"`
	VehicleID             *uuid.UUID  `gorm:"type:uuid;index"`
	OfficerID             *uuid.UUID  `gorm:"type:uuid"`
	DriverID              *uuid.UUID  `gorm:"type:uuid;index"`
	RejectionReason       string      `gorm:"type:text"`

	ProofOpenedAt          *time.Time
	ProofFilledSlots       string `gorm:"type:text"`
	ProofComplaintFlagged  bool   `gorm:"not null"`
	ProofCustomerConfirmed bool   `gorm:"not null"`
	ProofSatisfaction      int    `gorm:"type:int;not null"`
	ProofNotes             string `gorm:"type:text"`
	ProofFinalized         bool   `gorm:"not null"`

	Items       []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Transitions []TransitionDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CapacityDTO represents the embedded capacity triple within the order table:
// the packages, weight, and volume the order demands from a vehicle.
type CapacityDTO struct {
	Packages int     `gorm:"type:int;not null"`
	WeightKg float64 `gorm:"not null"`
	VolumeM3 float64 `gorm:"not null"`
}

// ItemDTO represents the database structure for persisting order line items.
// Items carry no identity of their own; they are keyed by order and position.
// Complaint references are stored as a comma-joined UUID list.
type ItemDTO struct {
	OrderID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Idx               int       `gorm:"primaryKey"`
	ProductRef        string    `gorm:"type:varchar(255);not null"`
	Quantity          int       `gorm:"type:int;not null"`
	UnitWeightKg      float64   `gorm:"not null"`
	PackingStatus     int       `gorm:"type:int;not null"`
	StorageStatus     int       `gorm:"type:int;not null"`
	PackingComplaints string    `gorm:"type:text"`
	StorageComplaints string    `gorm:"type:text"`
}

// TableName specifies the database table name for line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// TransitionDTO represents one entry of the order's audit trail.
// Rows are append-only, ordered by Seq.
type TransitionDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	FromStage  int       `gorm:"type:int;not null"`
	ToStage    int       `gorm:"type:int;not null"`
	ActorID    string    `gorm:"type:varchar(255);not null"`
	ActorName  string    `gorm:"type:varchar(255)"`
	OccurredAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for audit-trail entries.
func (TransitionDTO) TableName() string {
	return "order_transitions"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:           orderID,
			Idx:               i,
			ProductRef:        item.ProductRef(),
			Quantity:          item.Quantity(),
			UnitWeightKg:      item.UnitWeightKg(),
			PackingStatus:     int(item.PackingStatus()),
			StorageStatus:     int(item.StorageStatus()),
			PackingComplaints: joinUUIDs(item.PackingComplaints()),
			StorageComplaints: joinUUIDs(item.StorageComplaints()),
		})
	}

	transitions := make([]TransitionDTO, 0, len(aggregate.Transitions()))
	for seq, tr := range aggregate.Transitions() {
		transitions = append(transitions, TransitionDTO{
			OrderID:    orderID,
			Seq:        seq,
			FromStage:  int(tr.From()),
			ToStage:    int(tr.To()),
			ActorID:    tr.Actor().ID(),
			ActorName:  tr.Actor().Name(),
			OccurredAt: tr.OccurredAt(),
		})
	}

	dto := OrderDTO{
		ID:                    orderID,
		CustomerRef:           aggregate.CustomerRef(),
		Address:               aggregate.Address(),
		DeliveryAt:            aggregate.DeliveryAt(),
		TimeSlot:              aggregate.TimeSlot(),
		TotalCents:            aggregate.TotalCents(),
		Priority:              int(aggregate.Priority()),
		Stage:                 int(aggregate.Stage()),
		Version:               aggregate.Version(),
		UpdatedAt:             aggregate.UpdatedAt(),
		PackingNotes:          aggregate.PackingNotes(),
		StorageNotes:          aggregate.StorageNotes(),
		StorageLocation:       aggregate.StorageLocation(),
		VerificationStarted:   aggregate.VerificationStarted(),
		VerificationFinalized: aggregate.VerificationFinalized(),
		Requirement: CapacityDTO{
			Packages: aggregate.Requirement().Packages(),
			WeightKg: aggregate.Requirement().WeightKg(),
			VolumeM3: aggregate.Requirement().VolumeM3(),
		},
		VehicleID:       uuidPtr(aggregate.Vehicle()),
		OfficerID:       uuidPtr(aggregate.Officer()),
		DriverID:        uuidPtr(aggregate.Driver()),
		RejectionReason: aggregate.RejectionReason(),
		Items:           items,
		Transitions:     transitions,
	}

	if proof := aggregate.Proof(); proof != nil {
		openedAt := proof.OpenedAt()
		dto.ProofOpenedAt = &openedAt
		dto.ProofFilledSlots = joinSlots(proof.FilledSlots())
		dto.ProofComplaintFlagged = proof.ComplaintFlagged()
		dto.ProofCustomerConfirmed = proof.CustomerConfirmed()
		dto.ProofSatisfaction = proof.Satisfaction()
		dto.ProofNotes = proof.Notes()
		dto.ProofFinalized = proof.IsFinalized()
	}

	return dto
}

// columns flattens the order row for an explicit UPDATE. Associations are
// written separately, so they must not appear here.
func (dto OrderDTO) columns() map[string]any {
	return map[string]any{
		"customer_ref":             dto.CustomerRef,
		"address":                  dto.Address,
		"delivery_at":              dto.DeliveryAt,
		"time_slot":                dto.TimeSlot,
		"total_cents":              dto.TotalCents,
		"priority":                 dto.Priority,
		"stage":                    dto.Stage,
		"version":                  dto.Version,
		"updated_at":               dto.UpdatedAt,
		"packing_notes":            dto.PackingNotes,
		"storage_notes":            dto.StorageNotes,
		"storage_location":         dto.StorageLocation,
		"verification_started":     dto.VerificationStarted,
		"verification_finalized":   dto.VerificationFinalized,
		"req_packages":             dto.Requirement.Packages,
		"req_weight_kg":            dto.Requirement.WeightKg,
		"req_volume_m3":            dto.Requirement.VolumeM3,
		"vehicle_id":               dto.VehicleID,
		"officer_id":               dto.OfficerID,
		"driver_id":                dto.DriverID,
		"rejection_reason":         dto.RejectionReason,
		"proof_opened_at":          dto.ProofOpenedAt,
		"proof_filled_slots":       dto.ProofFilledSlots,
		"proof_complaint_flagged":  dto.ProofComplaintFlagged,
		"proof_customer_confirmed": dto.ProofCustomerConfirmed,
		"proof_satisfaction":       dto.ProofSatisfaction,
		"proof_notes":              dto.ProofNotes,
		"proof_finalized":          dto.ProofFinalized,
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate including items, transitions, and the
// proof bundle using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requirement, err := kernel.NewCapacity(
		dto.Requirement.Packages, dto.Requirement.WeightKg, dto.Requirement.VolumeM3)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool { return dto.Items[i].Idx < dto.Items[j].Idx })
	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	sort.Slice(dto.Transitions, func(i, j int) bool { return dto.Transitions[i].Seq < dto.Transitions[j].Seq })
	transitions := make([]order.Transition, 0, len(dto.Transitions))
	for _, trDto := range dto.Transitions {
		actor, actorErr := kernel.NewActor(trDto.ActorID, trDto.ActorName)
		if actorErr != nil {
			return nil, actorErr
		}
		transitions = append(transitions,
			order.NewTransition(order.Stage(trDto.FromStage), order.Stage(trDto.ToStage), actor, trDto.OccurredAt))
	}

	var proof *order.ProofBundle
	if dto.ProofOpenedAt != nil {
		filled, slotsErr := parseSlots(dto.ProofFilledSlots)
		if slotsErr != nil {
			return nil, slotsErr
		}
		proof, err = order.RestoreProofBundle(
			filled,
			dto.ProofComplaintFlagged,
			dto.ProofCustomerConfirmed,
			dto.ProofSatisfaction,
			dto.ProofNotes,
			*dto.ProofOpenedAt,
			dto.ProofFinalized,
		)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		dto.CustomerRef,
		items,
		dto.Address,
		dto.DeliveryAt,
		dto.TimeSlot,
		dto.TotalCents,
		order.Priority(dto.Priority),
		order.Stage(dto.Stage),
		dto.Version,
		dto.UpdatedAt,
		dto.PackingNotes,
		dto.StorageNotes,
		dto.StorageLocation,
		dto.VerificationStarted,
		dto.VerificationFinalized,
		requirement,
		kernelPtr(dto.VehicleID),
		kernelPtr(dto.OfficerID),
		kernelPtr(dto.DriverID),
		dto.RejectionReason,
		proof,
		transitions,
	)
}

// itemToDomain converts a line-item DTO to its domain entity.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	packingComplaints, err := splitUUIDs(dto.PackingComplaints)
	if err != nil {
		return nil, err
	}
	storageComplaints, err := splitUUIDs(dto.StorageComplaints)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		dto.ProductRef,
		dto.Quantity,
		dto.UnitWeightKg,
		order.PackingStatus(dto.PackingStatus),
		order.StorageStatus(dto.StorageStatus),
		packingComplaints,
		storageComplaints,
	)
}

// uuidPtr maps an optional domain UUID to its database form.
func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// kernelPtr maps an optional database UUID back to the domain.
// A malformed stored value would already have failed the uuid scan, so the
// conversion cannot fail here.
func kernelPtr(raw *uuid.UUID) *kernel.UUID {
	if raw == nil {
		return nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil
	}
	return &id
}

// joinUUIDs serializes a complaint reference list into a comma-joined string.
func joinUUIDs(ids []kernel.UUID) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, ",")
}

// splitUUIDs parses a comma-joined complaint reference list.
func splitUUIDs(s string) ([]kernel.UUID, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]kernel.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := kernel.UUIDFromString(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// joinSlots serializes the filled proof slots, sorted for a stable column value.
func joinSlots(filled map[order.ProofSlot]bool) string {
	parts := make([]string, 0, len(filled))
	for slot, isFilled := range filled {
		if isFilled {
			parts = append(parts, slot.String())
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// parseSlots parses a comma-joined proof slot list.
func parseSlots(s string) (map[order.ProofSlot]bool, error) {
	filled := make(map[order.ProofSlot]bool)
	if s == "" {
		return filled, nil
	}
	for _, part := range strings.Split(s, ",") {
		slot, err := order.ProofSlotFromString(part)
		if err != nil {
			return nil, err
		}
		filled[slot] = true
	}
	return filled, nil
}
