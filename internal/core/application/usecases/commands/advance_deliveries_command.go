package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrAdvanceDeliveriesCommandIsNotConstructed = errors.New(
		"AdvanceDeliveriesCommand must be created via NewAdvanceDeliveriesCommand constructor",
	)
)

// AdvanceDeliveriesCommand triggers one sweep of the delivery status
// machine: orders old enough go out for delivery, orders out long enough
// are delivered and their drivers released.
//
// Example:
//
//	cmd := NewAdvanceDeliveriesCommand()
//	handler := NewAdvanceDeliveriesCommandHandler(uowFactory, 30*time.Second, 120*time.Second)
//
//	// run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("delivery sweep failed: %v", err)
//	}
type AdvanceDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceDeliveriesCommand creates a command to trigger a delivery
// status sweep. This is a parameterless command that processes all active
// orders.
func NewAdvanceDeliveriesCommand() AdvanceDeliveriesCommand {
	return AdvanceDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AdvanceDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveriesCommandIsNotConstructed)
}
