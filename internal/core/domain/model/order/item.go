package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a priced order line. It snapshots the product name and unit price
// that applied at checkout, so the line keeps its value even if the catalog
// changes afterwards.
type Item struct {
	id        kernel.UUID
	ref       ItemRef
	name      string
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line. Quantity must be positive and the unit
// price must not be negative.
func NewItem(id kernel.UUID, ref ItemRef, name string, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setRef(ref),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds an order line from persistence.
func RestoreItem(id kernel.UUID, ref ItemRef, name string, quantity int, unitPrice kernel.Money) (*Item, error) {
	return NewItem(id, ref, name, quantity, unitPrice)
}

// Validate checks that the Item was built via the constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Ref returns the tagged product reference.
func (i *Item) Ref() ItemRef {
	return i.ref
}

// Name returns the product name snapshot taken at checkout.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price snapshot taken at checkout.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unit price times quantity.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setRef(ref ItemRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	i.ref = ref
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid", fmt.Errorf("%s is negative", unitPrice.String()))
	}
	i.unitPrice = unitPrice
	return nil
}
