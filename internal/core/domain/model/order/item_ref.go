package order

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// ItemKind discriminates what catalog product a line item points at.
type ItemKind int

const (
	// UnknownItemKind represents an invalid or undefined kind.
	UnknownItemKind ItemKind = iota

	// ItemKindPizza marks a reference to a catalog pizza.
	ItemKindPizza

	// ItemKindDrink marks a reference to a catalog drink.
	ItemKindDrink

	// ItemKindDessert marks a reference to a catalog dessert.
	ItemKindDessert
)

func getItemKindStrings() map[ItemKind]string {
	return map[ItemKind]string{
		UnknownItemKind: "Unknown",
		ItemKindPizza:   "Pizza",
		ItemKindDrink:   "Drink",
		ItemKindDessert: "Dessert",
	}
}

// Validate checks if the ItemKind is one of the named product kinds.
func (k ItemKind) Validate() error {
	if k == UnknownItemKind {
		return errs.NewValueIsInvalidErrorWithCause(
			"item kind is invalid", fmt.Errorf("%d is not a valid item kind", k))
	}
	if _, ok := getItemKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"item kind is invalid", fmt.Errorf("%d is not a valid item kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k ItemKind) String() string {
	if str, ok := getItemKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// ItemKindFromString parses a stored kind name back to its ItemKind value.
func ItemKindFromString(s string) (ItemKind, error) {
	for k, str := range getItemKindStrings() {
		if k != UnknownItemKind && str == s {
			return k, nil
		}
	}
	return UnknownItemKind, errs.NewValueIsInvalidErrorWithCause(
		"item kind is invalid", fmt.Errorf("%s is not a valid item kind", s))
}

// ItemRef is a tagged reference to exactly one catalog product. The kind
// says which catalog the ID belongs to, so a line item can never point at
// two products or none.
type ItemRef struct {
	kind      ItemKind
	productID kernel.UUID
}

// NewPizzaRef creates a reference to a catalog pizza.
func NewPizzaRef(pizzaID kernel.UUID) (ItemRef, error) {
	return newItemRef(ItemKindPizza, pizzaID)
}

// NewDrinkRef creates a reference to a catalog drink.
func NewDrinkRef(drinkID kernel.UUID) (ItemRef, error) {
	return newItemRef(ItemKindDrink, drinkID)
}

// NewDessertRef creates a reference to a catalog dessert.
func NewDessertRef(dessertID kernel.UUID) (ItemRef, error) {
	return newItemRef(ItemKindDessert, dessertID)
}

// RestoreItemRef rebuilds a reference from its stored kind and product ID.
func RestoreItemRef(kind ItemKind, productID kernel.UUID) (ItemRef, error) {
	return newItemRef(kind, productID)
}

func newItemRef(kind ItemKind, productID kernel.UUID) (ItemRef, error) {
	if err := kind.Validate(); err != nil {
		return ItemRef{}, err
	}
	if err := productID.Validate(); err != nil {
		return ItemRef{}, err
	}
	return ItemRef{kind: kind, productID: productID}, nil
}

// Kind returns which catalog the reference points into.
func (r ItemRef) Kind() ItemKind {
	return r.kind
}

// ProductID returns the referenced product's identifier.
func (r ItemRef) ProductID() kernel.UUID {
	return r.productID
}

// IsPizza reports whether the reference points at a pizza.
func (r ItemRef) IsPizza() bool {
	return r.kind == ItemKindPizza
}

// IsDrink reports whether the reference points at a drink.
func (r ItemRef) IsDrink() bool {
	return r.kind == ItemKindDrink
}

// IsDessert reports whether the reference points at a dessert.
func (r ItemRef) IsDessert() bool {
	return r.kind == ItemKindDessert
}

// IsEqual compares two references by kind and product ID.
func (r ItemRef) IsEqual(other ItemRef) bool {
	return r.kind == other.kind && r.productID.IsEqual(other.productID)
}

// Validate checks that the reference carries a valid kind and product ID.
func (r ItemRef) Validate() error {
	if err := r.kind.Validate(); err != nil {
		return err
	}
	return r.productID.Validate()
}
