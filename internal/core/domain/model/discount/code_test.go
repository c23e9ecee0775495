package discount_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
)

func validCode(t *testing.T, expiresAt time.Time) *discount.Code {
	t.Helper()
	code, err := discount.NewCode(kernel.NewUUID(), "WELCOME5", kernel.MoneyFromCents(500), expiresAt)
	require.NoError(t, err)
	return code
}

func Test_NewCode(t *testing.T) {
	expiresAt := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	code := validCode(t, expiresAt)

	assert.Equal(t, "WELCOME5", code.Name())
	assert.Equal(t, int64(500), code.Value().Cents())
	assert.False(t, code.IsUsed())
}

func Test_NewCode_Validation(t *testing.T) {
	expiresAt := time.Now().Add(24 * time.Hour)

	_, err := discount.NewCode(kernel.NewUUID(), "", kernel.MoneyFromCents(500), expiresAt)
	assert.ErrorIs(t, err, discount.ErrCodeNameIsRequired)

	_, err = discount.NewCode(kernel.NewUUID(), "WELCOME5", kernel.Money(0), expiresAt)
	assert.ErrorIs(t, err, discount.ErrCodeValueIsInvalid)
}

func Test_Code_IsValidAt_HonorsFullExpiryDay(t *testing.T) {
	expiresAt := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	code := validCode(t, expiresAt)

	assert.True(t, code.IsValidAt(expiresAt.Add(-time.Second)))
	assert.True(t, code.IsValidAt(expiresAt))
	assert.True(t, code.IsValidAt(expiresAt.Add(23*time.Hour+59*time.Minute)))
	assert.False(t, code.IsValidAt(expiresAt.AddDate(0, 0, 1)))
	assert.False(t, code.IsValidAt(expiresAt.AddDate(0, 0, 2)))
}

func Test_Code_Redeem_IsSingleUse(t *testing.T) {
	now := time.Now()
	code := validCode(t, now.Add(time.Hour))

	require.NoError(t, code.Redeem(now))
	assert.True(t, code.IsUsed())
	assert.ErrorIs(t, code.Redeem(now), discount.ErrCodeNotRedeemable)
}

func Test_Code_Redeem_ExpiredFails(t *testing.T) {
	now := time.Now()
	code := validCode(t, now.AddDate(0, 0, -2))

	assert.ErrorIs(t, code.Redeem(now), discount.ErrCodeNotRedeemable)
	assert.False(t, code.IsUsed())
}

func Test_RestoreCode_KeepsUsedFlag(t *testing.T) {
	now := time.Now()
	code, err := discount.RestoreCode(kernel.NewUUID(), "WELCOME5", kernel.MoneyFromCents(500), now.Add(time.Hour), true)
	require.NoError(t, err)

	assert.True(t, code.IsUsed())
	assert.False(t, code.IsValidAt(now))
}

func Test_Code_Validate_ZeroValueFails(t *testing.T) {
	var code discount.Code
	assert.ErrorIs(t, code.Validate(), discount.ErrCodeIsNotConstructed)
}
