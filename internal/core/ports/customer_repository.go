// Package ports defines repository interfaces between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate with its person record.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetForUpdate retrieves a customer by ID with a row lock on the
	// customer record, so concurrent checkouts serialize on the loyalty
	// counter.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
