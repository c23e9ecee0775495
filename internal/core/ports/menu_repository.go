package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
)

// MenuRepository defines the read contract for the product catalog.
// Catalog writes happen through seeding and administration flows outside
// the order core, so the port only reads.
type MenuRepository interface {
	// GetPizza retrieves a pizza with its ingredients by ID.
	GetPizza(ctx context.Context, id kernel.UUID) (*menu.Pizza, error)

	// GetDrink retrieves a drink by ID.
	GetDrink(ctx context.Context, id kernel.UUID) (*menu.Drink, error)

	// GetDessert retrieves a dessert by ID.
	GetDessert(ctx context.Context, id kernel.UUID) (*menu.Dessert, error)

	// GetAllPizzas retrieves the full pizza catalog with ingredients.
	GetAllPizzas(ctx context.Context) ([]*menu.Pizza, error)

	// GetAllDrinks retrieves the full drink catalog.
	GetAllDrinks(ctx context.Context) ([]*menu.Drink, error)

	// GetAllDesserts retrieves the full dessert catalog.
	GetAllDesserts(ctx context.Context) ([]*menu.Dessert, error)
}
