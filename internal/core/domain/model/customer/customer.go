package customer

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/person"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// loyaltyThreshold is the lifetime pizza count at which the loyalty
// discount becomes available.
const loyaltyThreshold = 10

// Domain errors for customer operations.
var (
	// ErrPersonIsRequired is returned when creating a customer without a person.
	ErrPersonIsRequired = errs.NewValueIsRequiredError("person")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrLoyaltyCounterNegative signals a broken loyalty counter invariant.
	// Any transaction observing it must abort: the counter may never go below zero.
	ErrLoyaltyCounterNegative = errors.New("customer pizza counter must not be negative")
	// ErrPizzaCountIsInvalid is returned when recording a negative pizza count.
	ErrPizzaCountIsInvalid = errors.New("pizza count must not be negative")
)

// Customer is the aggregate root for ordering customers.
//
// Business rules:
//   - A customer always belongs to exactly one person
//   - totalPizzasOrdered counts lifetime pizzas and may never be negative
//   - A customer with ten or more lifetime pizzas is loyal; redeeming the
//     loyalty discount consumes the whole streak, so the counter returns to
//     zero even though the current order's pizzas were added first
type Customer struct {
	id                 kernel.UUID
	person             *person.Person
	totalPizzasOrdered int

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer for the given person with a zero pizza counter.
func NewCustomer(id kernel.UUID, p *person.Person) (*Customer, error) {
	return RestoreCustomer(id, p, 0)
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id kernel.UUID, p *person.Person, totalPizzasOrdered int) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setPerson(p),
		c.setTotalPizzasOrdered(totalPizzasOrdered),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the Customer was built via a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Person returns the identity behind the customer.
func (c *Customer) Person() *person.Person {
	return c.person
}

// TotalPizzasOrdered returns the lifetime pizza count.
func (c *Customer) TotalPizzasOrdered() int {
	return c.totalPizzasOrdered
}

// IsLoyal reports whether the customer qualifies for the loyalty discount
// (ten or more lifetime pizzas).
func (c *Customer) IsLoyal() bool {
	return c.totalPizzasOrdered >= loyaltyThreshold
}

// ApplyOrder folds a finalized order into the loyalty counter: the order's
// pizzas are added first, then the counter resets to zero if the loyalty
// discount was redeemed by that order. The add-then-reset order matters:
// redeeming loyalty consumes the streak including the current order.
//
// Returns ErrPizzaCountIsInvalid for a negative count and
// ErrLoyaltyCounterNegative if the resulting counter would break the
// invariant; the caller must abort its transaction on either.
func (c *Customer) ApplyOrder(pizzaCount int, loyaltyRedeemed bool) error {
	if pizzaCount < 0 {
		return ErrPizzaCountIsInvalid
	}

	updated := c.totalPizzasOrdered + pizzaCount
	if loyaltyRedeemed {
		updated = 0
	}

	if updated < 0 {
		return ErrLoyaltyCounterNegative
	}

	c.totalPizzasOrdered = updated
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setPerson(p *person.Person) error {
	if p == nil {
		return ErrPersonIsRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}
	c.person = p
	return nil
}

func (c *Customer) setTotalPizzasOrdered(total int) error {
	if total < 0 {
		return ErrLoyaltyCounterNegative
	}
	c.totalPizzasOrdered = total
	return nil
}
