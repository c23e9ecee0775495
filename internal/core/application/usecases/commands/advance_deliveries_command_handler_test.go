package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/staff"
)

const (
	outForDeliveryAfter = 30 * time.Second
	deliveredAfter      = 120 * time.Second
)

var sweepNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func sweepFixture(t *testing.T) (*MockOrderRepository, *MockDriverRepository, *MockDeliveryUoW, commands.AdvanceDeliveriesCommandHandler) {
	t.Helper()

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDeliveryUoW)
	factory := new(MockDeliveryUoWFactory)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DriverRepository").Return(driverRepo)
	factory.On("Create").Return(uow)

	handler := commands.NewAdvanceDeliveriesCommandHandler(factory, outForDeliveryAfter, deliveredAfter).
		WithClock(func() time.Time { return sweepNow })

	return orderRepo, driverRepo, uow, handler
}

func orderWithAge(t *testing.T, status order.Status, age time.Duration, driverID *kernel.UUID) *order.Order {
	t.Helper()

	items := []*order.Item{pizzaItem(t)}
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), driverID, status, items,
		kernel.Money(0), kernel.MoneyFromCents(850), true, sweepNow.Add(-age),
	)
	require.NoError(t, err)
	return o
}

func pizzaItem(t *testing.T) *order.Item {
	t.Helper()
	ref, err := order.NewPizzaRef(kernel.NewUUID())
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), ref, "Margherita", 1, kernel.MoneyFromCents(850))
	require.NoError(t, err)
	return item
}

func TestAdvanceDeliveriesCommandHandler_Handle_StartsDelivery(t *testing.T) {
	ctx := t.Context()
	orderRepo, _, uow, handler := sweepFixture(t)

	pending := orderWithAge(t, order.Pending, 45*time.Second, nil)
	driverID := kernel.NewUUID()
	inProgress := orderWithAge(t, order.InProgress, 31*time.Second, &driverID)

	orderRepo.On("GetAdvanceable", mock.Anything, sweepNow, outForDeliveryAfter, deliveredAfter).
		Return([]*order.Order{pending, inProgress}, nil).Once()
	orderRepo.On("Update", mock.Anything, pending).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, inProgress).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	cmd := commands.NewAdvanceDeliveriesCommand()
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.OutForDelivery, pending.Status())
	assert.Equal(t, order.OutForDelivery, inProgress.Status())
	orderRepo.AssertExpectations(t)
}

func TestAdvanceDeliveriesCommandHandler_Handle_CompletesAndReleasesDriver(t *testing.T) {
	ctx := t.Context()
	orderRepo, driverRepo, uow, handler := sweepFixture(t)

	driver := eligibleDriver(t)
	require.NoError(t, driver.Dispatch(sweepNow.Add(-3*time.Minute), staff.DefaultCooldown))
	driverID := driver.ID()

	outForDelivery := orderWithAge(t, order.OutForDelivery, 150*time.Second, &driverID)

	orderRepo.On("GetAdvanceable", mock.Anything, sweepNow, outForDeliveryAfter, deliveredAfter).
		Return([]*order.Order{outForDelivery}, nil).Once()
	driverRepo.On("Get", mock.Anything, driverID).Return(driver, nil).Once()
	driverRepo.On("Update", mock.Anything, driver).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, outForDelivery).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	cmd := commands.NewAdvanceDeliveriesCommand()
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Delivered, outForDelivery.Status())
	assert.True(t, driver.IsAvailable())
	require.NotNil(t, driver.LastDeliveryTime())
	// release stamps the cooldown start
	assert.Equal(t, sweepNow, driver.LastDeliveryTime().UTC())
	driverRepo.AssertExpectations(t)
}

func TestAdvanceDeliveriesCommandHandler_Handle_CompletesUnassignedOrder(t *testing.T) {
	ctx := t.Context()
	orderRepo, driverRepo, uow, handler := sweepFixture(t)

	outForDelivery := orderWithAge(t, order.OutForDelivery, 150*time.Second, nil)

	orderRepo.On("GetAdvanceable", mock.Anything, sweepNow, outForDeliveryAfter, deliveredAfter).
		Return([]*order.Order{outForDelivery}, nil).Once()
	orderRepo.On("Update", mock.Anything, outForDelivery).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	cmd := commands.NewAdvanceDeliveriesCommand()
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Delivered, outForDelivery.Status())
	driverRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAdvanceDeliveriesCommandHandler_Handle_EmptySweep(t *testing.T) {
	ctx := t.Context()
	orderRepo, _, uow, handler := sweepFixture(t)

	orderRepo.On("GetAdvanceable", mock.Anything, sweepNow, outForDeliveryAfter, deliveredAfter).
		Return([]*order.Order{}, nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	cmd := commands.NewAdvanceDeliveriesCommand()
	require.NoError(t, handler.Handle(ctx, cmd))
}

func TestAdvanceDeliveriesCommandHandler_Handle_UpdateErrorAborts(t *testing.T) {
	ctx := t.Context()
	orderRepo, _, uow, handler := sweepFixture(t)

	pending := orderWithAge(t, order.Pending, 45*time.Second, nil)

	orderRepo.On("GetAdvanceable", mock.Anything, sweepNow, outForDeliveryAfter, deliveredAfter).
		Return([]*order.Order{pending}, nil).Once()
	orderRepo.On("Update", mock.Anything, pending).Return(errors.New("update failed")).Once()

	cmd := commands.NewAdvanceDeliveriesCommand()
	require.Error(t, handler.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
