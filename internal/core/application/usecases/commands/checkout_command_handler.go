package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/staff"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// CheckoutResult reports the committed order back to the caller: the
// totals written at finalization and the ordered explanations produced
// along the way (discount grants, driver notes).
type CheckoutResult struct {
	OrderID    kernel.UUID
	Status     order.Status
	Subtotal   kernel.Money
	Discount   kernel.Money
	FinalTotal kernel.Money
	Messages   []string
}

// CheckoutCommandHandler turns a cart submission into a committed order.
//
// The whole sequence runs in one transaction: price the cart from the
// catalog, stage the order, evaluate and apply discounts, bump or reset the
// loyalty counter, resolve a driver and finalize the totals. Soft failures
// (bad discount code, no driver) leave a note and the order still commits;
// everything else rolls the whole request back.
type CheckoutCommandHandler struct {
	uowFactory  CheckoutUoWFactory
	policy      services.DiscountPolicy
	provisioner services.DriverProvisioner
	cooldown    time.Duration
	now         func() time.Time
}

// NewCheckoutCommandHandler creates a handler for order checkout.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	policy services.DiscountPolicy,
	provisioner services.DriverProvisioner,
	cooldown time.Duration,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:  uowFactory,
		policy:      policy,
		provisioner: provisioner,
		cooldown:    cooldown,
		now:         time.Now,
	}
}

// WithClock replaces the handler's time source. Used by tests.
func (h CheckoutCommandHandler) WithClock(now func() time.Time) CheckoutCommandHandler {
	h.now = now
	return h
}

// Handle processes the checkout command and returns the committed result.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	now := h.now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().GetForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return CheckoutResult{}, err
	}

	newOrder, err := h.priceCart(ctx, uow.MenuRepository(), cmd, now)
	if err != nil {
		return CheckoutResult{}, err
	}

	// stage the order inside the open transaction so item rows exist
	// before discounts are evaluated against them
	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CheckoutResult{}, err
	}

	subtotal := newOrder.Subtotal()

	grants, err := h.applyDiscounts(ctx, uow.DiscountCodeRepository(), newOrder, subtotal, cust, cmd.DiscountCode(), now)
	if err != nil {
		return CheckoutResult{}, err
	}

	messages := make([]string, 0, len(grants)+1)
	loyaltyRedeemed := false
	for _, grant := range grants {
		messages = append(messages, grant.Note)
		if grant.Kind == services.GrantLoyalty && grant.Applied {
			loyaltyRedeemed = true
		}
	}

	if err = cust.ApplyOrder(newOrder.PizzaCount(), loyaltyRedeemed); err != nil {
		return CheckoutResult{}, err
	}
	if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
		return CheckoutResult{}, err
	}

	driverNote, err := h.resolveDriver(ctx, uow, newOrder, cust.Person().PostalCode(), now)
	if err != nil {
		return CheckoutResult{}, err
	}
	messages = append(messages, driverNote)

	if err = newOrder.Finalize(h.policy.TotalDiscount(grants, subtotal)); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, newOrder); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		OrderID:    newOrder.ID(),
		Status:     newOrder.Status(),
		Subtotal:   subtotal,
		Discount:   newOrder.Discount(),
		FinalTotal: newOrder.FinalTotal(),
		Messages:   messages,
	}, nil
}

// priceCart resolves every cart line against the catalog and builds the
// order with name and unit price snapshots.
func (h *CheckoutCommandHandler) priceCart(
	ctx context.Context,
	catalog ports.MenuRepository,
	cmd CheckoutCommand,
	now time.Time,
) (*order.Order, error) {
	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), now)
	if err != nil {
		return nil, err
	}

	for _, line := range cmd.Lines() {
		name, unitPrice, priceErr := h.priceLine(ctx, catalog, line)
		if priceErr != nil {
			return nil, priceErr
		}

		ref, refErr := order.RestoreItemRef(line.Kind, line.ProductID)
		if refErr != nil {
			return nil, refErr
		}

		item, itemErr := order.NewItem(kernel.NewUUID(), ref, name, line.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		if err = newOrder.AddItem(item); err != nil {
			return nil, err
		}
	}

	return newOrder, nil
}

func (h *CheckoutCommandHandler) priceLine(
	ctx context.Context,
	catalog ports.MenuRepository,
	line CheckoutLine,
) (string, kernel.Money, error) {
	switch line.Kind {
	case order.ItemKindPizza:
		pizza, err := catalog.GetPizza(ctx, line.ProductID)
		if err != nil {
			return "", 0, err
		}
		return pizza.Name(), pizza.Price(), nil
	case order.ItemKindDrink:
		drink, err := catalog.GetDrink(ctx, line.ProductID)
		if err != nil {
			return "", 0, err
		}
		return drink.Name(), drink.Price(), nil
	case order.ItemKindDessert:
		dessert, err := catalog.GetDessert(ctx, line.ProductID)
		if err != nil {
			return "", 0, err
		}
		return dessert.Name(), dessert.Price(), nil
	default:
		return "", 0, errs.NewValueIsInvalidError("item kind")
	}
}

// applyDiscounts looks up the code row-locked, evaluates the policy and
// redeems the code when its grant came back applied. An unknown code is a
// soft failure handled by the policy, never an abort.
func (h *CheckoutCommandHandler) applyDiscounts(
	ctx context.Context,
	codes ports.DiscountCodeRepository,
	newOrder *order.Order,
	subtotal kernel.Money,
	cust *customer.Customer,
	codeInput string,
	now time.Time,
) ([]services.Grant, error) {
	var code *discount.Code
	if codeInput != "" {
		found, err := codes.GetByNameForUpdate(ctx, codeInput)
		switch {
		case err == nil:
			code = found
		case errors.Is(err, errs.ErrObjectNotFound):
			// unknown code, the policy records the rejection
		default:
			return nil, err
		}
	}

	grants, err := h.policy.Evaluate(newOrder.Items(), subtotal, cust, cust.Person(), code, codeInput, now)
	if err != nil {
		return nil, err
	}

	for _, grant := range grants {
		if grant.Kind != services.GrantDiscountCode || !grant.Applied {
			continue
		}
		if err = code.Redeem(now); err != nil {
			return nil, err
		}
		if err = codes.Update(ctx, code); err != nil {
			return nil, err
		}
	}

	return grants, nil
}

// driverSavepoint guards the driver writes. A failed driver statement puts
// the Postgres transaction in the aborted state, so recovery needs a
// rollback to this savepoint before the order can still commit.
const driverSavepoint = "driver_resolution"

// resolveDriver dispatches the first eligible driver for the postal code or
// provisions an emergency one. Every failure here is soft: the driver
// writes run under a savepoint, and on any error the transaction rolls
// back to it so the order commits unassigned with a pending note.
func (h *CheckoutCommandHandler) resolveDriver(
	ctx context.Context,
	uow CheckoutUoW,
	newOrder *order.Order,
	postalCode string,
	now time.Time,
) (string, error) {
	if err := uow.SavePoint(ctx, driverSavepoint); err != nil {
		return "", err
	}

	if note, ok := h.tryAssignDriver(ctx, uow.DriverRepository(), newOrder, postalCode, now); ok {
		return note, nil
	}

	if err := uow.RollbackTo(ctx, driverSavepoint); err != nil {
		return "", err
	}

	return "Driver assignment pending", nil
}

func (h *CheckoutCommandHandler) tryAssignDriver(
	ctx context.Context,
	drivers ports.DriverRepository,
	newOrder *order.Order,
	postalCode string,
	now time.Time,
) (string, bool) {
	driver, err := drivers.GetFirstEligible(ctx, postalCode, now, h.cooldown)
	switch {
	case err == nil:
		return h.dispatchDriver(ctx, drivers, newOrder, driver, now, false)
	case errors.Is(err, errs.ErrObjectNotFound):
		return h.provisionDriver(ctx, drivers, newOrder, postalCode, now)
	}

	return "", false
}

func (h *CheckoutCommandHandler) dispatchDriver(
	ctx context.Context,
	drivers ports.DriverRepository,
	newOrder *order.Order,
	driver *staff.Driver,
	now time.Time,
	provisioned bool,
) (string, bool) {
	if !provisioned {
		if err := driver.Dispatch(now, h.cooldown); err != nil {
			return "", false
		}
		if err := drivers.Update(ctx, driver); err != nil {
			return "", false
		}
	}

	if err := newOrder.AssignDriver(driver.ID()); err != nil {
		return "", false
	}

	return fmt.Sprintf("Driver assigned: %s", driver.Person().FullName()), true
}

func (h *CheckoutCommandHandler) provisionDriver(
	ctx context.Context,
	drivers ports.DriverRepository,
	newOrder *order.Order,
	postalCode string,
	now time.Time,
) (string, bool) {
	_, driver, err := h.provisioner.Provision(postalCode, now)
	if err != nil {
		return "", false
	}

	// the provisioner returns the driver already dispatched
	if err = drivers.Add(ctx, driver); err != nil {
		return "", false
	}

	return h.dispatchDriver(ctx, drivers, newOrder, driver, now, true)
}
