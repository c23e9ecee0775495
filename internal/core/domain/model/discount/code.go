package discount

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrCodeNameIsRequired is returned when creating a code without a name.
	ErrCodeNameIsRequired = errs.NewValueIsRequiredError("code name")
	// ErrCodeValueIsInvalid is returned when the code's value is not positive.
	ErrCodeValueIsInvalid = errs.NewValueIsInvalidError("code value")
	// ErrCodeIsNotConstructed is returned when using an improperly initialized Code.
	ErrCodeIsNotConstructed = errors.New("Code must be created via NewCode constructor")
	// ErrCodeNotRedeemable is returned when redeeming a used or expired code.
	ErrCodeNotRedeemable = errors.New("discount code is used or expired")
)

// Code is a single-use discount voucher with a fixed money value and an
// expiry date. Expiry is day-granular: the code works through the whole
// of its expiry day in UTC.
type Code struct {
	id        kernel.UUID
	name      string
	value     kernel.Money
	expiresAt time.Time
	isUsed    bool

	guard guard.ConstructorGuard
}

// NewCode creates an unused discount code.
func NewCode(id kernel.UUID, name string, value kernel.Money, expiresAt time.Time) (*Code, error) {
	return RestoreCode(id, name, value, expiresAt, false)
}

// RestoreCode rebuilds a discount code from persistence.
func RestoreCode(id kernel.UUID, name string, value kernel.Money, expiresAt time.Time, isUsed bool) (*Code, error) {
	c := &Code{
		expiresAt: expiresAt.UTC(),
		isUsed:    isUsed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setValue(value),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the Code was built via a constructor.
func (c *Code) Validate() error {
	if c == nil {
		return ErrCodeIsNotConstructed
	}
	return c.guard.Validate(ErrCodeIsNotConstructed)
}

// ID returns the code's unique identifier.
func (c *Code) ID() kernel.UUID {
	return c.id
}

// Name returns the code's redeemable name.
func (c *Code) Name() string {
	return c.name
}

// Value returns the code's fixed discount value.
func (c *Code) Value() kernel.Money {
	return c.value
}

// ExpiresAt returns the last day the code works.
func (c *Code) ExpiresAt() time.Time {
	return c.expiresAt
}

// IsUsed reports whether the code was already redeemed.
func (c *Code) IsUsed() bool {
	return c.isUsed
}

// IsValidAt reports whether the code can be redeemed at the given instant.
// The expiry day itself still counts.
func (c *Code) IsValidAt(at time.Time) bool {
	if c.isUsed {
		return false
	}

	endOfExpiryDay := time.Date(
		c.expiresAt.Year(), c.expiresAt.Month(), c.expiresAt.Day(),
		0, 0, 0, 0, time.UTC,
	).AddDate(0, 0, 1)
	return at.UTC().Before(endOfExpiryDay)
}

// Redeem marks the code as used. A code can be redeemed exactly once, up
// through its expiry day.
func (c *Code) Redeem(at time.Time) error {
	if !c.IsValidAt(at) {
		return ErrCodeNotRedeemable
	}
	c.isUsed = true
	return nil
}

func (c *Code) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Code) setName(name string) error {
	if name == "" {
		return ErrCodeNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Code) setValue(value kernel.Money) error {
	if !value.IsPositive() {
		return ErrCodeValueIsInvalid
	}
	c.value = value
	return nil
}
