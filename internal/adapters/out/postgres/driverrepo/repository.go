package driverrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/staff"
	"pizzeria/internal/pkg/errs"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver and its person record to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *staff.Driver) error {
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

// Update saves changes to an existing driver. Select lists the mutable
// columns explicitly so a false availability flag is not skipped as a zero
// value.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *staff.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("is_available", "last_delivery_time", "assigned_postal_code").
		Updates(map[string]any{
			"is_available":         dto.IsAvailable,
			"last_delivery_time":   dto.LastDeliveryTime,
			"assigned_postal_code": dto.AssignedPostalCode,
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

// Get retrieves a driver by ID with its person record.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).Preload("Person").First(&dto, "drivers.id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every driver with its person record, oldest first.
func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*staff.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Preload("Person").
		Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*staff.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// GetFirstEligible retrieves the first driver for the postal code that can
// deliver at the given instant. The row is locked FOR UPDATE and drivers
// are ordered by creation time then ID, so two concurrent checkouts
// contend on the same row and only one dispatches the driver.
func (r *GormDriverRepository) GetFirstEligible(
	ctx context.Context,
	postalCode string,
	now time.Time,
	cooldown time.Duration,
) (*staff.Driver, error) {
	cutoff := now.UTC().Add(-cooldown)

	var dto DriverDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("assigned_postal_code = ? AND is_available = ?", postalCode, true).
		Where("last_delivery_time IS NULL OR last_delivery_time <= ?", cutoff).
		Order("created_at, id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", postalCode)
		}
		return nil, err
	}

	// Person is loaded outside the locking query; preloading with a row
	// lock would lock the person row too.
	if err = r.db.WithContext(ctx).First(&dto.Person, "id = ?", dto.PersonID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
