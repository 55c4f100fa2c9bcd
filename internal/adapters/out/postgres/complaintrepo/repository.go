package complaintrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormComplaintRepository implements ComplaintRepository using GORM.
type GormComplaintRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormComplaintRepository creates a new GORM complaint repository.
func NewGormComplaintRepository(db *gorm.DB, tracker aggregateTracker) *GormComplaintRepository {
	return &GormComplaintRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new complaint to the database.
func (r *GormComplaintRepository) Add(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing complaint to the database.
func (r *GormComplaintRepository) Update(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&ComplaintDTO{}).
		Where("id = ?", dto.ID).
		Updates(dto.columns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("complaint", aggregate.ID().String())
	}

	// Notes are append-only but tiny; the rewrite keeps the mapping simple.
	if err := r.db.WithContext(ctx).Where("complaint_id = ?", dto.ID).Delete(&ComplaintNoteDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Notes) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Notes).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a complaint by ID.
func (r *GormComplaintRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ComplaintDTO
	if err := r.db.WithContext(ctx).
		Preload("Notes").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("complaint", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every complaint filed against one order, oldest
// first.
func (r *GormComplaintRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*complaint.Complaint, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ComplaintDTO
	if err := r.db.WithContext(ctx).
		Preload("Notes").
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInQueue retrieves the open and in-progress complaints of one manager
// queue, most urgent first, ties broken by filing time.
func (r *GormComplaintRepository) GetAllInQueue(ctx context.Context, queue complaint.Queue) ([]*complaint.Complaint, error) {
	if err := queue.Validate(); err != nil {
		return nil, err
	}

	active := []int{int(complaint.Open), int(complaint.InProgress)}

	var dtos []ComplaintDTO
	if err := r.db.WithContext(ctx).
		Preload("Notes").
		Where("queue = ? AND status IN ?", int(queue), active).
		Order("priority DESC, created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// toDomainAll maps a result set into aggregates.
func toDomainAll(dtos []ComplaintDTO) ([]*complaint.Complaint, error) {
	complaints := make([]*complaint.Complaint, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, aggregate)
	}
	return complaints, nil
}
