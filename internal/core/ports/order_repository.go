package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that are not yet in a final status,
	// oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAdvanceable retrieves, with row locks, active orders whose status
	// should move forward at the given instant: Pending/InProgress orders
	// created at least outForDeliveryAfter ago and OutForDelivery orders
	// created at least deliveredAfter ago.
	GetAdvanceable(ctx context.Context, now time.Time, outForDeliveryAfter, deliveredAfter time.Duration) ([]*order.Order, error)
}
