package commands

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)

	// ErrCustomerRequired is returned when the cart carries no customer.
	ErrCustomerRequired = errors.New("customer is required")

	// ErrEmptyCart is returned when no line has a positive quantity.
	ErrEmptyCart = errors.New("cart must contain at least one item")
)

// CheckoutLine is one cart entry: a catalog product reference and the
// requested quantity. Zero quantities are allowed on input and dropped.
type CheckoutLine struct {
	Kind      order.ItemKind
	ProductID kernel.UUID
	Quantity  int
}

// CheckoutCommand represents a cart submission to be turned into a
// committed order. Carries the pre-generated order ID so the caller can
// correlate the result, the customer, the cart lines and an optional
// discount code string.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	lines        []CheckoutLine
	discountCode string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command from a raw cart. Lines with
// zero quantity are dropped; negative quantities are invalid. The cart must
// keep at least one line after dropping.
func NewCheckoutCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	lines []CheckoutLine,
	discountCode string,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		discountCode: discountCode,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will get.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the cart lines with positive quantities.
func (c CheckoutCommand) Lines() []CheckoutLine {
	out := make([]CheckoutLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// DiscountCode returns the raw discount code string, empty when none was
// supplied.
func (c CheckoutCommand) DiscountCode() string {
	return c.discountCode
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return ErrCustomerRequired
	}
	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setLines(lines []CheckoutLine) error {
	kept := make([]CheckoutLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity == 0 {
			continue
		}
		if line.Quantity < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid", fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
		if err := line.Kind.Validate(); err != nil {
			return err
		}
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		kept = append(kept, line)
	}

	if len(kept) == 0 {
		return ErrEmptyCart
	}

	c.lines = kept
	return nil
}
