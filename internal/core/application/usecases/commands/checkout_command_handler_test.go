package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/person"
	"pizzeria/internal/core/domain/model/staff"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"
)

var checkoutNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type checkoutFixture struct {
	orderRepo    *MockOrderRepository
	customerRepo *MockCustomerRepository
	driverRepo   *MockDriverRepository
	menuRepo     *MockMenuRepository
	codeRepo     *MockDiscountCodeRepository
	uow          *MockCheckoutUoW
	factory      *MockCheckoutUoWFactory
	handler      commands.CheckoutCommandHandler

	customer *customer.Customer
	pizza    *menu.Pizza
	drink    *menu.Drink
}

func newCheckoutFixture(t *testing.T, pizzasOrdered int, birthDate time.Time) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		orderRepo:    new(MockOrderRepository),
		customerRepo: new(MockCustomerRepository),
		driverRepo:   new(MockDriverRepository),
		menuRepo:     new(MockMenuRepository),
		codeRepo:     new(MockDiscountCodeRepository),
		uow:          new(MockCheckoutUoW),
		factory:      new(MockCheckoutUoWFactory),
	}

	pers, err := person.NewPerson(
		kernel.NewUUID(), "Mario", "Rossi", "mario@example.com",
		birthDate, "1012AB", person.RoleCustomer,
	)
	require.NoError(t, err)
	f.customer, err = customer.RestoreCustomer(kernel.NewUUID(), pers, pizzasOrdered)
	require.NoError(t, err)

	tomato, err := menu.NewIngredient(kernel.NewUUID(), "tomato sauce", kernel.MoneyFromCents(150), menu.CategoryVegetable)
	require.NoError(t, err)
	mozzarella, err := menu.NewIngredient(kernel.NewUUID(), "mozzarella", kernel.MoneyFromCents(250), menu.CategoryDairy)
	require.NoError(t, err)
	f.pizza, err = menu.NewPizza(kernel.NewUUID(), "Margherita", "classic", []*menu.Ingredient{tomato, mozzarella})
	require.NoError(t, err)
	f.drink, err = menu.NewDrink(kernel.NewUUID(), "Cola", kernel.MoneyFromCents(250))
	require.NoError(t, err)

	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.uow.On("SavePoint", mock.Anything, mock.Anything).Return(nil)
	f.uow.On("RollbackTo", mock.Anything, mock.Anything).Return(nil)
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("CustomerRepository").Return(f.customerRepo)
	f.uow.On("DriverRepository").Return(f.driverRepo)
	f.uow.On("MenuRepository").Return(f.menuRepo)
	f.uow.On("DiscountCodeRepository").Return(f.codeRepo)
	f.factory.On("Create").Return(f.uow)

	provisioner := services.NewDriverProvisionerWithNames(func() (string, string) {
		return "Alex", "Janssen"
	})
	f.handler = commands.NewCheckoutCommandHandler(
		f.factory, services.NewDiscountPolicy(), provisioner, staff.DefaultCooldown,
	).WithClock(func() time.Time { return checkoutNow })

	return f
}

func (f *checkoutFixture) cart(t *testing.T, discountCode string) commands.CheckoutCommand {
	t.Helper()
	cmd, err := commands.NewCheckoutCommand(
		kernel.NewUUID(), f.customer.ID(),
		[]commands.CheckoutLine{
			{Kind: order.ItemKindPizza, ProductID: f.pizza.ID(), Quantity: 2},
			{Kind: order.ItemKindDrink, ProductID: f.drink.ID(), Quantity: 1},
		},
		discountCode,
	)
	require.NoError(t, err)
	return cmd
}

func eligibleDriver(t *testing.T) *staff.Driver {
	t.Helper()
	pers, err := person.NewPerson(
		kernel.NewUUID(), "Luca", "Visser", "luca@pizzeria.example",
		time.Date(1995, time.November, 2, 0, 0, 0, 0, time.UTC),
		"1012AB", person.RoleStaff,
	)
	require.NoError(t, err)
	driver, err := staff.NewDriver(kernel.NewUUID(), pers, "1012AB")
	require.NoError(t, err)
	return driver
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t, 3, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	cmd := f.cart(t, "")
	driver := eligibleDriver(t)

	f.customerRepo.On("GetForUpdate", mock.Anything, f.customer.ID()).Return(f.customer, nil).Once()
	f.menuRepo.On("GetPizza", mock.Anything, f.pizza.ID()).Return(f.pizza, nil).Once()
	f.menuRepo.On("GetDrink", mock.Anything, f.drink.ID()).Return(f.drink, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.customerRepo.On("Update", mock.Anything, f.customer).Return(nil).Once()
	f.driverRepo.On("GetFirstEligible", mock.Anything, "1012AB", checkoutNow, staff.DefaultCooldown).
		Return(driver, nil).Once()
	f.driverRepo.On("Update", mock.Anything, driver).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	// 2 × €5.45 pizza (€4.00 base × 1.40 × 1.09 = €6.10... derived) + €2.50 drink
	pizzaPrice := f.pizza.Price()
	wantSubtotal := pizzaPrice.MulInt(2).Add(kernel.MoneyFromCents(250))
	assert.Equal(t, wantSubtotal, result.Subtotal)
	assert.Equal(t, int64(0), result.Discount.Cents())
	assert.Equal(t, wantSubtotal, result.FinalTotal)
	assert.Equal(t, order.InProgress, result.Status)
	assert.Equal(t, []string{"Driver assigned: Luca Visser"}, result.Messages)

	assert.False(t, driver.IsAvailable())
	assert.Equal(t, 5, f.customer.TotalPizzasOrdered())

	f.uow.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
	f.customerRepo.AssertExpectations(t)
	f.driverRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_LoyaltyAndCode(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t, 12, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	cmd := f.cart(t, "WELCOME5")
	driver := eligibleDriver(t)

	code, err := discount.NewCode(kernel.NewUUID(), "WELCOME5", kernel.MoneyFromCents(500), checkoutNow.Add(time.Hour))
	require.NoError(t, err)

	f.customerRepo.On("GetForUpdate", mock.Anything, f.customer.ID()).Return(f.customer, nil).Once()
	f.menuRepo.On("GetPizza", mock.Anything, f.pizza.ID()).Return(f.pizza, nil).Once()
	f.menuRepo.On("GetDrink", mock.Anything, f.drink.ID()).Return(f.drink, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.codeRepo.On("GetByNameForUpdate", mock.Anything, "WELCOME5").Return(code, nil).Once()
	f.codeRepo.On("Update", mock.Anything, code).Return(nil).Once()
	f.customerRepo.On("Update", mock.Anything, f.customer).Return(nil).Once()
	f.driverRepo.On("GetFirstEligible", mock.Anything, "1012AB", checkoutNow, staff.DefaultCooldown).
		Return(driver, nil).Once()
	f.driverRepo.On("Update", mock.Anything, driver).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	subtotal := f.pizza.Price().MulInt(2).Add(kernel.MoneyFromCents(250))
	wantDiscount := subtotal.Percent(10).Add(kernel.MoneyFromCents(500))
	assert.Equal(t, wantDiscount, result.Discount)
	assert.Equal(t, subtotal.Sub(wantDiscount), result.FinalTotal)
	require.Len(t, result.Messages, 3)
	assert.Contains(t, result.Messages[0], "Loyalty discount")
	assert.Contains(t, result.Messages[1], `Discount code "WELCOME5"`)

	// code consumed, counter reset after adding this order's pizzas
	assert.True(t, code.IsUsed())
	assert.Equal(t, 0, f.customer.TotalPizzasOrdered())

	f.codeRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_UnknownCodeIsSoft(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t, 0, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	cmd := f.cart(t, "NOPE")
	driver := eligibleDriver(t)

	f.customerRepo.On("GetForUpdate", mock.Anything, f.customer.ID()).Return(f.customer, nil).Once()
	f.menuRepo.On("GetPizza", mock.Anything, f.pizza.ID()).Return(f.pizza, nil).Once()
	f.menuRepo.On("GetDrink", mock.Anything, f.drink.ID()).Return(f.drink, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.codeRepo.On("GetByNameForUpdate", mock.Anything, "NOPE").
		Return(nil, errs.NewObjectNotFoundError("discount code", "NOPE")).Once()
	f.customerRepo.On("Update", mock.Anything, f.customer).Return(nil).Once()
	f.driverRepo.On("GetFirstEligible", mock.Anything, "1012AB", checkoutNow, staff.DefaultCooldown).
		Return(driver, nil).Once()
	f.driverRepo.On("Update", mock.Anything, driver).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Discount.Cents())
	assert.Contains(t, result.Messages, "Invalid or expired discount code: NOPE")
}

func TestCheckoutCommandHandler_Handle_ProvisionsDriverWhenNoneEligible(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t, 0, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	cmd := f.cart(t, "")

	f.customerRepo.On("GetForUpdate", mock.Anything, f.customer.ID()).Return(f.customer, nil).Once()
	f.menuRepo.On("GetPizza", mock.Anything, f.pizza.ID()).Return(f.pizza, nil).Once()
	f.menuRepo.On("GetDrink", mock.Anything, f.drink.ID()).Return(f.drink, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.customerRepo.On("Update", mock.Anything, f.customer).Return(nil).Once()
	f.driverRepo.On("GetFirstEligible", mock.Anything, "1012AB", checkoutNow, staff.DefaultCooldown).
		Return(nil, errs.NewObjectNotFoundError("driver", "1012AB")).Once()
	f.driverRepo.On("Add", mock.Anything, mock.AnythingOfType("*staff.Driver")).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.InProgress, result.Status)
	assert.Contains(t, result.Messages, "Driver assigned: Alex Janssen")
	f.driverRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ProvisioningFailureIsSoft(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t, 0, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	cmd := f.cart(t, "")

	f.customerRepo.On("GetForUpdate", mock.Anything, f.customer.ID()).Return(f.customer, nil).Once()
	f.menuRepo.On("GetPizza", mock.Anything, f.pizza.ID()).Return(f.pizza, nil).Once()
	f.menuRepo.On("GetDrink", mock.Anything, f.drink.ID()).Return(f.drink, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.customerRepo.On("Update", mock.Anything, f.customer).Return(nil).Once()
	f.driverRepo.On("GetFirstEligible", mock.Anything, "1012AB", checkoutNow, staff.DefaultCooldown).
		Return(nil, errs.NewObjectNotFoundError("driver", "1012AB")).Once()
	f.driverRepo.On("Add", mock.Anything, mock.AnythingOfType("*staff.Driver")).
		Return(errors.New("insert failed")).Once()
	f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	// order still commits, unassigned; the failed insert is discarded by
	// rolling back to the driver savepoint
	assert.Equal(t, order.Pending, result.Status)
	assert.Contains(t, result.Messages, "Driver assignment pending")
	f.uow.AssertCalled(t, "SavePoint", mock.Anything, "driver_resolution")
	f.uow.AssertCalled(t, "RollbackTo", mock.Anything, "driver_resolution")
}

func TestCheckoutCommandHandler_Handle_DriverDispatchFailureIsSoft(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t, 0, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	cmd := f.cart(t, "")
	driver := eligibleDriver(t)

	f.customerRepo.On("GetForUpdate", mock.Anything, f.customer.ID()).Return(f.customer, nil).Once()
	f.menuRepo.On("GetPizza", mock.Anything, f.pizza.ID()).Return(f.pizza, nil).Once()
	f.menuRepo.On("GetDrink", mock.Anything, f.drink.ID()).Return(f.drink, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.customerRepo.On("Update", mock.Anything, f.customer).Return(nil).Once()
	f.driverRepo.On("GetFirstEligible", mock.Anything, "1012AB", checkoutNow, staff.DefaultCooldown).
		Return(driver, nil).Once()
	f.driverRepo.On("Update", mock.Anything, driver).Return(errors.New("update failed")).Once()
	f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Pending, result.Status)
	assert.Contains(t, result.Messages, "Driver assignment pending")
	f.uow.AssertCalled(t, "RollbackTo", mock.Anything, "driver_resolution")
	f.driverRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_BirthdayDiscount(t *testing.T) {
	ctx := t.Context()
	// birth date matches the clock's month and day
	f := newCheckoutFixture(t, 0, time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC))
	cmd := f.cart(t, "")
	driver := eligibleDriver(t)

	f.customerRepo.On("GetForUpdate", mock.Anything, f.customer.ID()).Return(f.customer, nil).Once()
	f.menuRepo.On("GetPizza", mock.Anything, f.pizza.ID()).Return(f.pizza, nil).Once()
	f.menuRepo.On("GetDrink", mock.Anything, f.drink.ID()).Return(f.drink, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.customerRepo.On("Update", mock.Anything, f.customer).Return(nil).Once()
	f.driverRepo.On("GetFirstEligible", mock.Anything, "1012AB", checkoutNow, staff.DefaultCooldown).
		Return(driver, nil).Once()
	f.driverRepo.On("Update", mock.Anything, driver).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	// cheapest pizza unit + cheapest drink unit
	wantDiscount := f.pizza.Price().Add(kernel.MoneyFromCents(250))
	assert.Equal(t, wantDiscount, result.Discount)
	assert.Contains(t, result.Messages[0], "Happy Birthday Mario!")
}

func TestCheckoutCommandHandler_Handle_CustomerFetchErrorAborts(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t, 0, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	cmd := f.cart(t, "")

	f.customerRepo.On("GetForUpdate", mock.Anything, f.customer.ID()).
		Return(nil, errs.NewObjectNotFoundError("customer", f.customer.ID())).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.Error(t, err)

	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertCalled(t, "Rollback", mock.Anything)
}

func TestCheckoutCommandHandler_Handle_PricingErrorAborts(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t, 0, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	cmd := f.cart(t, "")

	f.customerRepo.On("GetForUpdate", mock.Anything, f.customer.ID()).Return(f.customer, nil).Once()
	f.menuRepo.On("GetPizza", mock.Anything, f.pizza.ID()).
		Return(nil, errs.NewObjectNotFoundError("pizza", f.pizza.ID())).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t, 0, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))

	cmd := commands.CheckoutCommand{} // not constructed properly
	_, err := f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestNewCheckoutCommand_Validation(t *testing.T) {
	customerID := kernel.NewUUID()
	pizzaID := kernel.NewUUID()

	t.Run("empty cart", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID, nil, "")
		assert.ErrorIs(t, err, commands.ErrEmptyCart)
	})

	t.Run("all zero quantities", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID,
			[]commands.CheckoutLine{{Kind: order.ItemKindPizza, ProductID: pizzaID, Quantity: 0}}, "")
		assert.ErrorIs(t, err, commands.ErrEmptyCart)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID,
			[]commands.CheckoutLine{{Kind: order.ItemKindPizza, ProductID: pizzaID, Quantity: -1}}, "")
		assert.Error(t, err)
	})

	t.Run("missing customer", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), kernel.UUID{},
			[]commands.CheckoutLine{{Kind: order.ItemKindPizza, ProductID: pizzaID, Quantity: 1}}, "")
		assert.ErrorIs(t, err, commands.ErrCustomerRequired)
	})

	t.Run("zero lines dropped", func(t *testing.T) {
		cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID,
			[]commands.CheckoutLine{
				{Kind: order.ItemKindPizza, ProductID: pizzaID, Quantity: 2},
				{Kind: order.ItemKindDrink, ProductID: kernel.NewUUID(), Quantity: 0},
			}, "")
		require.NoError(t, err)
		assert.Len(t, cmd.Lines(), 1)
	})
}
