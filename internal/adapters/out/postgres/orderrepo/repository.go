package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
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

// Add saves a new order with its item rows to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves changes to an existing order. Item rows are immutable after
// staging, so only the order row is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("driver_id", "status", "discount", "final_total", "finalized").
		Updates(map[string]any{
			"driver_id":   dto.DriverID,
			"status":      dto.Status,
			"discount":    dto.Discount,
			"final_total": dto.FinalTotal,
			"finalized":   dto.Finalized,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "orders.id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all orders not yet in a final status, oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status NOT IN ?", []string{order.Delivered.String(), order.Cancelled.String()}).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAdvanceable retrieves, FOR UPDATE, the active orders whose status
// should move forward at the given instant. Locking the order rows
// serializes the sweep against concurrent checkouts finalizing the same
// orders.
func (r *GormOrderRepository) GetAdvanceable(
	ctx context.Context,
	now time.Time,
	outForDeliveryAfter, deliveredAfter time.Duration,
) ([]*order.Order, error) {
	outCutoff := now.UTC().Add(-outForDeliveryAfter)
	deliveredCutoff := now.UTC().Add(-deliveredAfter)

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where(
			"(status IN ? AND created_at <= ?) OR (status = ? AND created_at <= ?)",
			[]string{order.Pending.String(), order.InProgress.String()}, outCutoff,
			order.OutForDelivery.String(), deliveredCutoff,
		).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	// items are loaded outside the locking query to keep the lock on order
	// rows only
	for i := range dtos {
		if err = r.db.WithContext(ctx).Find(&dtos[i].Items, "order_id = ?", dtos[i].ID).Error; err != nil {
			return nil, err
		}
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
