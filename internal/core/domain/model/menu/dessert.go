package menu

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// Errors for dessert construction.
var (
	// ErrDessertNameIsRequired is returned when creating a dessert without a name.
	ErrDessertNameIsRequired = errs.NewValueIsRequiredError("dessert name")
	// ErrDessertPriceIsInvalid is returned when the dessert price is not positive.
	ErrDessertPriceIsInvalid = errs.NewValueIsInvalidError("dessert price")
	// ErrDessertIsNotConstructed is returned when using an improperly initialized Dessert.
	ErrDessertIsNotConstructed = errors.New("Dessert must be created via NewDessert constructor")
)

// Dessert is a catalog dessert with a stored price.
type Dessert struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewDessert creates a dessert. The price must be positive.
func NewDessert(id kernel.UUID, name string, price kernel.Money) (*Dessert, error) {
	d := &Dessert{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that the Dessert was built via the constructor.
func (d *Dessert) Validate() error {
	if d == nil {
		return ErrDessertIsNotConstructed
	}
	return d.guard.Validate(ErrDessertIsNotConstructed)
}

// ID returns the dessert's unique identifier.
func (d *Dessert) ID() kernel.UUID {
	return d.id
}

// Name returns the dessert's display name.
func (d *Dessert) Name() string {
	return d.name
}

// Price returns the dessert's stored selling price.
func (d *Dessert) Price() kernel.Money {
	return d.price
}

func (d *Dessert) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dessert) setName(name string) error {
	if name == "" {
		return ErrDessertNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Dessert) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrDessertPriceIsInvalid
	}
	d.price = price
	return nil
}
