package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/person"
	"pizzeria/internal/core/domain/model/staff"
)

// RegisterDriverCommandHandler handles driver registration. Creates the
// person record with the staff role and the driver bound to its postal
// code area, available and with no delivery history.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command and returns the new
// driver's ID.
func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	pers, err := person.NewPerson(
		kernel.NewUUID(),
		cmd.FirstName(), cmd.LastName(), cmd.Email(),
		cmd.BirthDate(),
		cmd.PostalCode(),
		person.RoleStaff,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	driver, err := staff.NewDriver(kernel.NewUUID(), pers, cmd.PostalCode())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, driver); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return driver.ID(), nil
}
