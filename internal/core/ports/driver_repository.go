package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/staff"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate with its person record.
	Add(ctx context.Context, aggregate *staff.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *staff.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Driver, error)

	// GetAll retrieves every driver, oldest first. Used by the delivery
	// board listing.
	GetAll(ctx context.Context) ([]*staff.Driver, error)

	// GetFirstEligible retrieves, with a row lock, the first driver for the
	// postal code that can deliver at the given instant honoring the
	// cooldown. Drivers are ordered by creation time then ID so concurrent
	// checkouts contend on the same row. Returns ObjectNotFoundError when
	// no driver qualifies.
	GetFirstEligible(ctx context.Context, postalCode string, now time.Time, cooldown time.Duration) (*staff.Driver, error)
}
