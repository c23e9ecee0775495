package cmd

import (
	"gorm.io/gorm"

	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/services"
)

// CompositionRoot wires the application's dependencies. Handlers are
// created per call; they share the database connection through the unit
// of work factory.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root around the database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateCheckoutCommandHandler builds the checkout handler with the
// discount policy and the emergency driver provisioner.
func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(
		f,
		services.NewDiscountPolicy(),
		services.NewDriverProvisioner(),
		c.config.DriverCooldown,
	)
}

// CreateRegisterDriverCommandHandler builds the driver registration handler.
func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

// CreateAdvanceDeliveriesCommandHandler builds the status sweep handler
// with the configured age thresholds.
func (c *CompositionRoot) CreateAdvanceDeliveriesCommandHandler() commands.AdvanceDeliveriesCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveriesCommandHandler(
		f,
		c.config.StatusOutForDeliveryAfter,
		c.config.StatusDeliveredAfter,
	)
}

// CreateGetMenuQueryHandler builds the catalog read handler.
func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

// CreateGetActiveOrdersQueryHandler builds the active orders read handler.
func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateGetDeliveryBoardQueryHandler builds the delivery board read handler.
func (c *CompositionRoot) CreateGetDeliveryBoardQueryHandler() queries.GetDeliveryBoardQueryHandler {
	return queries.NewGetDeliveryBoardQueryHandler(c.gormDB, c.config.DriverCooldown)
}

// FuncCheckoutUoWFactory adapts a closure to the checkout factory interface.
type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

// FuncDeliveryUoWFactory adapts a closure to the delivery factory interface.
type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

// FuncDriverUoWFactory adapts a closure to the driver factory interface.
type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
