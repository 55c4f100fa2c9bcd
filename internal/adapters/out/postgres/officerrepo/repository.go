package officerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfficerRepository implements OfficerRepository using GORM.
type GormOfficerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfficerRepository creates a new GORM officer repository.
func NewGormOfficerRepository(db *gorm.DB, tracker aggregateTracker) *GormOfficerRepository {
	return &GormOfficerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new officer to the database.
func (r *GormOfficerRepository) Add(ctx context.Context, aggregate *officer.Officer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkStored()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing officer to the database.
//
// The counter column is written with a compare-and-swap: the UPDATE only
// lands while the stored current_assignments still equals the count the
// aggregate was loaded with, and the new count stays within the row's
// max_assignments. Two transactions racing for an officer's last slot
// cannot both land; the loser matches zero rows and gets the officer's
// capacity-exceeded error when the slot is gone, or a version conflict when
// capacity remains and the sweep may simply retry.
func (r *GormOfficerRepository) Update(ctx context.Context, aggregate *officer.Officer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OfficerDTO{}).
		Where("id = ? AND current_assignments = ? AND ? <= max_assignments",
			dto.ID, aggregate.LoadedAssignments(), dto.CurrentAssignments).
		Updates(dto.columns())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var stored OfficerDTO
		if err := r.db.WithContext(ctx).
			First(&stored, "id = ?", dto.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("officer", aggregate.ID().String())
			}
			return err
		}
		if dto.CurrentAssignments > stored.MaxAssignments ||
			stored.CurrentAssignments >= stored.MaxAssignments {
			return officer.ErrCapacityExceeded
		}
		return errs.NewVersionConflictError("officer", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).Where("officer_id = ?", dto.ID).Delete(&OfficerAssignmentDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Assignments) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Assignments).Error; err != nil {
			return err
		}
	}

	aggregate.MarkStored()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an officer by ID with the orders currently held.
func (r *GormOfficerRepository) Get(ctx context.Context, id kernel.UUID) (*officer.Officer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfficerDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("officer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRole retrieves every officer with the given role.
func (r *GormOfficerRepository) GetAllByRole(ctx context.Context, role officer.Role) ([]*officer.Officer, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfficerDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Where("role = ?", int(role)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllWithCapacity retrieves officers of a role still below their
// concurrent-assignment cap. Candidates for the assignment scheduler.
func (r *GormOfficerRepository) GetAllWithCapacity(ctx context.Context, role officer.Role) ([]*officer.Officer, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfficerDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Where("role = ? AND current_assignments < max_assignments", int(role)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// toDomainAll maps a result set into aggregates.
func toDomainAll(dtos []OfficerDTO) ([]*officer.Officer, error) {
	officers := make([]*officer.Officer, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		officers = append(officers, aggregate)
	}
	return officers, nil
}
