package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, including its line items and the
// initial transition trail.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database.
//
// The order row is written with a compare-and-swap on the version column:
// the UPDATE only lands while the stored version still equals the one the
// aggregate was loaded with. Comparing against the loaded version, not the
// bumped one, keeps the swap sound for operations that stack several
// mutations in memory before writing. When a concurrent transaction moved
// the order first, zero rows match and the caller gets a version conflict
// instead of silently overwriting the other decision.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.LoadedVersion()).
		Updates(dto.columns())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("order", aggregate.ID().String())
	}

	// Line items and transitions are rewritten wholesale. Both sets are
	// small and the rewrite happens inside the caller's transaction.
	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}
	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&TransitionDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Transitions) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Transitions).Error; err != nil {
			return err
		}
	}

	aggregate.MarkStored()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its complete state.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Transitions").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStage retrieves all orders at one lifecycle stage.
func (r *GormOrderRepository) GetAllInStage(ctx context.Context, stage order.Stage) ([]*order.Order, error) {
	if err := stage.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Transitions").
		Where("stage = ?", int(stage)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllAssignable retrieves the orders waiting in the assignable pool:
// ready for pickup with storage verification completed. Most urgent first,
// so the bulk-assign sweep drains the pool in priority order.
func (r *GormOrderRepository) GetAllAssignable(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Transitions").
		Where("stage = ? AND verification_finalized = ?", int(order.ReadyToPickup), true).
		Order("priority DESC, delivery_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllActive retrieves all orders not in a terminal stage.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	terminal := []int{int(order.Completed), int(order.Refunded), int(order.Returned)}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Transitions").
		Where("stage NOT IN ?", terminal).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// toDomainAll maps a result set into aggregates.
func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
