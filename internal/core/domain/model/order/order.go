package order

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when finalizing an order with no lines.
	ErrOrderHasNoItems = errors.New("order must have at least one item")

	// ErrOrderAlreadyFinalized is returned when writing totals to an order
	// whose totals were already written. Totals are write-once.
	ErrOrderAlreadyFinalized = errors.New("order totals are already finalized")

	// ErrOrderNotFinalized is returned when reading totals from an order
	// that has not been finalized yet.
	ErrOrderNotFinalized = errors.New("order totals are not finalized yet")
)

// Order is the aggregate root for a customer order. It owns its line items
// and walks the delivery status machine. The discount and final total are
// written exactly once, during checkout finalization, and never change
// afterwards.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	driverID   *kernel.UUID
	status     Status
	items      []*Item
	discount   kernel.Money
	finalTotal kernel.Money
	finalized  bool
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an empty pending order for a customer.
func NewOrder(id kernel.UUID, customerID kernel.UUID, now time.Time) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence with its full state.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	items []*Item,
	discount kernel.Money,
	finalTotal kernel.Money,
	finalized bool,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		id := *driverID
		o.driverID = &id
	}

	for _, item := range items {
		if err := o.AddItem(item); err != nil {
			return nil, err
		}
	}

	if finalized {
		o.discount = discount
		o.finalTotal = finalTotal
		o.finalized = true
	}

	return o, nil
}

// Validate checks that the Order was built via a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DriverID returns the assigned driver's identifier, nil when unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's lines.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// CreatedAt returns when the order was placed, in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsFinalized reports whether totals have been written.
func (o *Order) IsFinalized() bool {
	return o.finalized
}

// Discount returns the total discount written at finalization.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// FinalTotal returns the amount due written at finalization.
func (o *Order) FinalTotal() kernel.Money {
	return o.finalTotal
}

// Subtotal sums the line totals of all items before any discount.
func (o *Order) Subtotal() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// PizzaCount sums the quantities of all pizza lines. Used for the loyalty
// counter.
func (o *Order) PizzaCount() int {
	count := 0
	for _, item := range o.items {
		if item.Ref().IsPizza() {
			count += item.Quantity()
		}
	}
	return count
}

// AddItem appends a line to the order. Lines can only be added before the
// totals are finalized.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if o.finalized {
		return ErrOrderAlreadyFinalized
	}
	o.items = append(o.items, item)
	return nil
}

// AssignDriver attaches a driver and moves the order to InProgress.
// Only pending orders can receive a driver.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AssignDriver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// Finalize writes the order's totals exactly once. The discount is capped
// at the subtotal so the final total never goes negative.
func (o *Order) Finalize(discount kernel.Money) error {
	if o.finalized {
		return ErrOrderAlreadyFinalized
	}
	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}
	if discount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount is invalid", fmt.Errorf("%s is negative", discount.String()))
	}

	subtotal := o.Subtotal()
	o.discount = discount.Min(subtotal)
	o.finalTotal = subtotal.Sub(o.discount)
	o.finalized = true
	return nil
}

// StartDelivery moves the order out for delivery. Idempotent callers must
// check the status first; repeating the transition is an error.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete marks the order as delivered.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel cancels the order from any non-final state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}
