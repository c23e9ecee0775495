package customer_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/person"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPerson(t *testing.T) *person.Person {
	t.Helper()
	p, err := person.NewPerson(
		kernel.NewUUID(),
		"Anna", "Bianchi", "anna@example.com",
		time.Date(1985, time.March, 3, 0, 0, 0, 0, time.UTC),
		"1012AB",
		person.RoleCustomer,
	)
	require.NoError(t, err)
	return p
}

func TestNewCustomer(t *testing.T) {
	t.Run("valid_customer", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), testPerson(t))

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, 0, c.TotalPizzasOrdered())
		assert.False(t, c.IsLoyal())
	})

	t.Run("nil_person", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), nil)
		require.ErrorIs(t, err, customer.ErrPersonIsRequired)
	})

	t.Run("restore_rejects_negative_counter", func(t *testing.T) {
		_, err := customer.RestoreCustomer(kernel.NewUUID(), testPerson(t), -1)
		require.ErrorIs(t, err, customer.ErrLoyaltyCounterNegative)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var c customer.Customer
		require.Error(t, c.Validate())
	})
}

func TestCustomer_IsLoyal(t *testing.T) {
	tests := []struct {
		name  string
		total int
		loyal bool
	}{
		{"below_threshold", 9, false},
		{"at_threshold", 10, true},
		{"above_threshold", 25, true},
		{"zero", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := customer.RestoreCustomer(kernel.NewUUID(), testPerson(t), tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.loyal, c.IsLoyal())
		})
	}
}

func TestCustomer_ApplyOrder(t *testing.T) {
	t.Run("adds_pizzas_without_loyalty", func(t *testing.T) {
		c, _ := customer.RestoreCustomer(kernel.NewUUID(), testPerson(t), 7)

		require.NoError(t, c.ApplyOrder(2, false))

		assert.Equal(t, 9, c.TotalPizzasOrdered())
	})

	t.Run("loyalty_redemption_resets_after_adding", func(t *testing.T) {
		// The streak that earned the discount is consumed entirely:
		// 10 + 3 pizzas, then reset to zero.
		c, _ := customer.RestoreCustomer(kernel.NewUUID(), testPerson(t), 10)

		require.NoError(t, c.ApplyOrder(3, true))

		assert.Equal(t, 0, c.TotalPizzasOrdered())
	})

	t.Run("rejects_negative_pizza_count", func(t *testing.T) {
		c, _ := customer.NewCustomer(kernel.NewUUID(), testPerson(t))
		require.ErrorIs(t, c.ApplyOrder(-1, false), customer.ErrPizzaCountIsInvalid)
	})

	t.Run("order_without_pizzas_is_a_noop", func(t *testing.T) {
		c, _ := customer.RestoreCustomer(kernel.NewUUID(), testPerson(t), 4)

		require.NoError(t, c.ApplyOrder(0, false))

		assert.Equal(t, 4, c.TotalPizzasOrdered())
	})
}
