// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SavepointManager marks savepoints inside an open transaction so a
	// failed statement can be discarded without aborting the whole unit.
	SavepointManager interface {
		SavePoint(ctx context.Context, name string) error
		RollbackTo(ctx context.Context, name string) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// MenuRepoFactory provides access to the catalog repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// DiscountCodeRepoFactory provides access to the discount code repository within a transaction.
	DiscountCodeRepoFactory interface {
		DiscountCodeRepository() ports.DiscountCodeRepository
	}

	// CheckoutUoW manages the single transaction a checkout runs in. Every
	// write of the checkout sequence goes through this unit so the order,
	// its items, the loyalty counter, the code redemption and the driver
	// state commit or roll back together.
	CheckoutUoW interface {
		TxManager
		SavepointManager
		OrderRepoFactory
		CustomerRepoFactory
		DriverRepoFactory
		MenuRepoFactory
		DiscountCodeRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// DeliveryUoW manages transactions for the delivery status sweep,
	// which touches orders and the drivers they release.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}
)
