// Package officerrepo provides data transfer objects and mapping functions
// for officer persistence. The assignment counter is denormalized onto the
// officer row so the repository can enforce the concurrent-assignment cap
// with a conditional write.
package officerrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"

	"github.com/google/uuid"
)

// OfficerDTO represents the database structure for persisting officer
// aggregates.
type OfficerDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Role               int       `gorm:"type:int;not null;index"`
	Rating             float64   `gorm:"not null"`
	MaxAssignments     int       `gorm:"type:int;not null"`
	CurrentAssignments int       `gorm:"type:int;not null"`

	Assignments []OfficerAssignmentDTO `gorm:"foreignKey:OfficerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for officer entities.
func (OfficerDTO) TableName() string {
	return "officers"
}

// OfficerAssignmentDTO represents one order currently held by an officer.
type OfficerAssignmentDTO struct {
	OfficerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for officer assignments.
func (OfficerAssignmentDTO) TableName() string {
	return "officer_assignments"
}

// fromDomain converts an officer aggregate to its database representation.
func fromDomain(aggregate *officer.Officer) OfficerDTO {
	officerID := aggregate.ID().Bytes()

	assignments := make([]OfficerAssignmentDTO, 0, aggregate.CurrentAssignments())
	for _, orderID := range aggregate.AssignedOrders() {
		assignments = append(assignments, OfficerAssignmentDTO{
			OfficerID: officerID,
			OrderID:   orderID.Bytes(),
		})
	}

	return OfficerDTO{
		ID:                 officerID,
		Name:               aggregate.Name(),
		Role:               int(aggregate.Role()),
		Rating:             aggregate.Rating(),
		MaxAssignments:     aggregate.MaxAssignments(),
		CurrentAssignments: aggregate.CurrentAssignments(),
		Assignments:        assignments,
	}
}

// columns flattens the officer row for an explicit UPDATE. Assignments are
// written separately.
func (dto OfficerDTO) columns() map[string]any {
	return map[string]any{
		"name":                dto.Name,
		"role":                dto.Role,
		"rating":              dto.Rating,
		"max_assignments":     dto.MaxAssignments,
		"current_assignments": dto.CurrentAssignments,
	}
}

// toDomain converts a database DTO to an officer aggregate.
func toDomain(dto OfficerDTO) (*officer.Officer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assigned := make([]kernel.UUID, 0, len(dto.Assignments))
	for _, assignmentDto := range dto.Assignments {
		orderID, assignErr := kernel.UUIDFromBytes(assignmentDto.OrderID[:])
		if assignErr != nil {
			return nil, assignErr
		}
		assigned = append(assigned, orderID)
	}

	return officer.RestoreOfficer(id, dto.Name, officer.Role(dto.Role), dto.Rating, dto.MaxAssignments, assigned)
}
