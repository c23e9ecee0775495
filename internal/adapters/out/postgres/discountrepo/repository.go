package discountrepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// GormDiscountCodeRepository implements DiscountCodeRepository using GORM.
type GormDiscountCodeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDiscountCodeRepository creates a new GORM discount code repository.
func NewGormDiscountCodeRepository(db *gorm.DB, tracker aggregateTracker) *GormDiscountCodeRepository {
	return &GormDiscountCodeRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByNameForUpdate retrieves a code by name, locking the row so two
// concurrent checkouts cannot both redeem a single-use code. Lookup is
// case-insensitive on the trimmed name.
func (r *GormDiscountCodeRepository) GetByNameForUpdate(ctx context.Context, name string) (*discount.Code, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewObjectNotFoundError("discount code", name)
	}

	var dto CodeDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "lower(name) = lower(?)", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("discount code", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists changes to an existing code.
func (r *GormDiscountCodeRepository) Update(ctx context.Context, aggregate *discount.Code) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CodeDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"is_used": dto.IsUsed,
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
