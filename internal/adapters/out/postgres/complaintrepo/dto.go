// Package complaintrepo provides data transfer objects and mapping functions
// for complaint persistence. A complaint row carries the routing queue as a
// denormalized column so queue listings never need to re-derive it from the
// stage.
package complaintrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ComplaintDTO represents the database structure for persisting complaint
// aggregates.
type ComplaintDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemIndex    *int      `gorm:"type:int"`
	Stage        int       `gorm:"type:int;not null"`
	Queue        int       `gorm:"type:int;not null;index"`
	Category     string    `gorm:"type:varchar(255)"`
	Detail       string    `gorm:"type:text;not null"`
	ReporterID   string    `gorm:"type:varchar(255);not null"`
	ReporterName string    `gorm:"type:varchar(255)"`
	Status       int       `gorm:"type:int;not null;index"`
	Priority     int       `gorm:"type:int;not null"`
	Resolution   string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	Notes []ComplaintNoteDTO `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for complaint entities.
func (ComplaintDTO) TableName() string {
	return "complaints"
}

// ComplaintNoteDTO represents one manager remark. Notes are append-only and
// ordered by Seq.
type ComplaintNoteDTO struct {
	ComplaintID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int       `gorm:"primaryKey"`
	Note        string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for complaint notes.
func (ComplaintNoteDTO) TableName() string {
	return "complaint_notes"
}

// fromDomain converts a complaint aggregate to its database representation.
func fromDomain(aggregate *complaint.Complaint) ComplaintDTO {
	complaintID := aggregate.ID().Bytes()

	notes := make([]ComplaintNoteDTO, 0, len(aggregate.Notes()))
	for seq, note := range aggregate.Notes() {
		notes = append(notes, ComplaintNoteDTO{
			ComplaintID: complaintID,
			Seq:         seq,
			Note:        note,
		})
	}

	return ComplaintDTO{
		ID:           complaintID,
		OrderID:      aggregate.OrderID().Bytes(),
		ItemIndex:    aggregate.ItemIndex(),
		Stage:        int(aggregate.Stage()),
		Queue:        int(aggregate.Queue()),
		Category:     aggregate.Category(),
		Detail:       aggregate.Detail(),
		ReporterID:   aggregate.Reporter().ID(),
		ReporterName: aggregate.Reporter().Name(),
		Status:       int(aggregate.Status()),
		Priority:     int(aggregate.Priority()),
		Resolution:   aggregate.Resolution(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Notes:        notes,
	}
}

// columns flattens the complaint row for an explicit UPDATE. Notes are
// written separately.
func (dto ComplaintDTO) columns() map[string]any {
	return map[string]any{
		"order_id":      dto.OrderID,
		"item_index":    dto.ItemIndex,
		"stage":         dto.Stage,
		"queue":         dto.Queue,
		"category":      dto.Category,
		"detail":        dto.Detail,
		"reporter_id":   dto.ReporterID,
		"reporter_name": dto.ReporterName,
		"status":        dto.Status,
		"priority":      dto.Priority,
		"resolution":    dto.Resolution,
		"created_at":    dto.CreatedAt,
		"updated_at":    dto.UpdatedAt,
	}
}

// toDomain converts a database DTO to a complaint aggregate.
func toDomain(dto ComplaintDTO) (*complaint.Complaint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	reporter, err := kernel.NewActor(dto.ReporterID, dto.ReporterName)
	if err != nil {
		return nil, err
	}

	notes := make([]string, len(dto.Notes))
	for _, noteDto := range dto.Notes {
		if noteDto.Seq >= 0 && noteDto.Seq < len(notes) {
			notes[noteDto.Seq] = noteDto.Note
		}
	}

	return complaint.RestoreComplaint(
		id,
		orderID,
		dto.ItemIndex,
		complaint.Stage(dto.Stage),
		dto.Category,
		dto.Detail,
		reporter,
		complaint.Status(dto.Status),
		complaint.Priority(dto.Priority),
		notes,
		dto.Resolution,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
