package menu

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// Errors for drink construction.
var (
	// ErrDrinkNameIsRequired is returned when creating a drink without a name.
	ErrDrinkNameIsRequired = errs.NewValueIsRequiredError("drink name")
	// ErrDrinkPriceIsInvalid is returned when the drink price is not positive.
	ErrDrinkPriceIsInvalid = errs.NewValueIsInvalidError("drink price")
	// ErrDrinkIsNotConstructed is returned when using an improperly initialized Drink.
	ErrDrinkIsNotConstructed = errors.New("Drink must be created via NewDrink constructor")
)

// Drink is a catalog drink with a stored price. Unlike pizzas the price is
// set directly, not derived.
type Drink struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewDrink creates a drink. The price must be positive.
func NewDrink(id kernel.UUID, name string, price kernel.Money) (*Drink, error) {
	d := &Drink{
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

// Validate checks that the Drink was built via the constructor.
func (d *Drink) Validate() error {
	if d == nil {
		return ErrDrinkIsNotConstructed
	}
	return d.guard.Validate(ErrDrinkIsNotConstructed)
}

// ID returns the drink's unique identifier.
func (d *Drink) ID() kernel.UUID {
	return d.id
}

// Name returns the drink's display name.
func (d *Drink) Name() string {
	return d.name
}

// Price returns the drink's stored selling price.
func (d *Drink) Price() kernel.Money {
	return d.price
}

func (d *Drink) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drink) setName(name string) error {
	if name == "" {
		return ErrDrinkNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Drink) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrDrinkPriceIsInvalid
	}
	d.price = price
	return nil
}
