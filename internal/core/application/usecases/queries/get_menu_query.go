// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the full product catalog: pizzas with derived
// prices and dietary flags, plus drinks and desserts.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the catalog. This is a
// parameterless query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuPizzaResponse represents a pizza in the catalog read model. Price is
// the selling price derived from ingredient costs, never a stored value.
type MenuPizzaResponse struct {
	ID           kernel.UUID
	Name         string
	Description  string
	Price        kernel.Money
	IsVegetarian bool
	IsVegan      bool
	Ingredients  []string
}

// MenuDrinkResponse represents a drink in the catalog read model.
type MenuDrinkResponse struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}

// MenuDessertResponse represents a dessert in the catalog read model.
type MenuDessertResponse struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}

// GetMenuQueryResponse bundles the three catalog sections, each sorted by
// name.
type GetMenuQueryResponse struct {
	Pizzas   []MenuPizzaResponse
	Drinks   []MenuDrinkResponse
	Desserts []MenuDessertResponse
}
