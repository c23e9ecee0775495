package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/discount"
)

// DiscountCodeRepository defines the persistence contract for discount codes.
type DiscountCodeRepository interface {
	// GetByNameForUpdate retrieves a code by its redeemable name with a row
	// lock, so two concurrent checkouts cannot both redeem it. Returns
	// ObjectNotFoundError when the name is unknown.
	GetByNameForUpdate(ctx context.Context, name string) (*discount.Code, error)

	// Update persists changes to an existing code, in particular the used flag.
	Update(ctx context.Context, aggregate *discount.Code) error
}
