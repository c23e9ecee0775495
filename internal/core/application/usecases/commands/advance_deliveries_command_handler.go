package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// AdvanceDeliveriesCommandHandler walks every advanceable order one status
// forward. Pending and InProgress orders whose age reached the
// out-for-delivery threshold leave the kitchen; OutForDelivery orders whose
// age reached the delivered threshold complete, releasing their driver back
// into the cooldown. The sweep is idempotent: an order that already moved
// is simply not advanceable on the next run.
type AdvanceDeliveriesCommandHandler struct {
	uowFactory          DeliveryUoWFactory
	outForDeliveryAfter time.Duration
	deliveredAfter      time.Duration
	now                 func() time.Time
}

// NewAdvanceDeliveriesCommandHandler creates a handler for the delivery
// status sweep with the given age thresholds.
func NewAdvanceDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
	outForDeliveryAfter, deliveredAfter time.Duration,
) AdvanceDeliveriesCommandHandler {
	return AdvanceDeliveriesCommandHandler{
		uowFactory:          uowFactory,
		outForDeliveryAfter: outForDeliveryAfter,
		deliveredAfter:      deliveredAfter,
		now:                 time.Now,
	}
}

// WithClock replaces the handler's time source. Used by tests.
func (h AdvanceDeliveriesCommandHandler) WithClock(now func() time.Time) AdvanceDeliveriesCommandHandler {
	h.now = now
	return h
}

// Handle processes one sweep. All transitions of a sweep commit in a
// single transaction.
func (h *AdvanceDeliveriesCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	orders, err := orderRepo.GetAdvanceable(ctx, now, h.outForDeliveryAfter, h.deliveredAfter)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if err = h.advanceOrder(ctx, driverRepo, o, now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// advanceOrder moves a single order one status forward based on its age.
func (h *AdvanceDeliveriesCommandHandler) advanceOrder(
	ctx context.Context,
	driverRepo ports.DriverRepository,
	o *order.Order,
	now time.Time,
) error {
	age := now.Sub(o.CreatedAt())

	switch o.Status() {
	case order.Pending, order.InProgress:
		if age < h.outForDeliveryAfter {
			return nil
		}
		return o.StartDelivery()

	case order.OutForDelivery:
		if age < h.deliveredAfter {
			return nil
		}
		if err := o.Complete(); err != nil {
			return err
		}
		return h.releaseDriver(ctx, driverRepo, o, now)

	default:
		return nil
	}
}

func (h *AdvanceDeliveriesCommandHandler) releaseDriver(
	ctx context.Context,
	driverRepo ports.DriverRepository,
	o *order.Order,
	now time.Time,
) error {
	if o.DriverID() == nil {
		return nil
	}

	driver, err := driverRepo.Get(ctx, *o.DriverID())
	if err != nil {
		return err
	}

	driver.Release(now)
	return driverRepo.Update(ctx, driver)
}
