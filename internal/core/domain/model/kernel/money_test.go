package kernel_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFromFloat(t *testing.T) {
	tests := []struct {
		name  string
		euros float64
		cents int64
	}{
		{"whole_euros", 12.00, 1200},
		{"exact_cents", 8.55, 855},
		{"rounds_up", 10.675, 1068},
		{"rounds_down", 10.674, 1067},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, kernel.MoneyFromCents(tt.cents), kernel.MoneyFromFloat(tt.euros))
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := kernel.MoneyFromCents(850)
	b := kernel.MoneyFromCents(300)

	assert.Equal(t, kernel.MoneyFromCents(1150), a.Add(b))
	assert.Equal(t, kernel.MoneyFromCents(550), a.Sub(b))
	assert.Equal(t, kernel.MoneyFromCents(2550), a.MulInt(3))
	assert.Equal(t, kernel.MoneyFromCents(300), a.Min(b))
	assert.Equal(t, kernel.MoneyFromCents(850), a.Min(kernel.MoneyFromCents(900)))
}

func TestMoney_Percent(t *testing.T) {
	// 10% of €25.50 is €2.55
	assert.Equal(t, kernel.MoneyFromCents(255), kernel.MoneyFromCents(2550).Percent(10))
	// 10% of €0.05 rounds to one cent
	assert.Equal(t, kernel.MoneyFromCents(1), kernel.MoneyFromCents(5).Percent(10))
	// 10% of €0.04 rounds to zero
	assert.Equal(t, kernel.MoneyFromCents(0), kernel.MoneyFromCents(4).Percent(10))
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, kernel.MoneyFromCents(-1).IsNegative())
	assert.True(t, kernel.MoneyFromCents(1).IsPositive())
	assert.True(t, kernel.Money(0).IsZero())
	assert.False(t, kernel.MoneyFromCents(1).IsZero())
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "€8.50", kernel.MoneyFromCents(850).String())
	assert.Equal(t, "€0.00", kernel.Money(0).String())
}
