package staff

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/person"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// DefaultCooldown is the mandatory rest window after a driver starts or
// completes a delivery. Overridable through configuration; the business
// default is 30 minutes.
const DefaultCooldown = 30 * time.Minute

// Domain errors for driver operations.
var (
	// ErrPersonIsRequired is returned when creating a driver without a person.
	ErrPersonIsRequired = errs.NewValueIsRequiredError("person")
	// ErrPostalCodeIsRequired is returned when creating a driver without a delivery area.
	ErrPostalCodeIsRequired = errs.NewValueIsRequiredError("assigned postal code")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverNotEligible is returned when dispatching a driver that is
	// unavailable or still inside the cooldown window.
	ErrDriverNotEligible = errors.New("driver is not eligible to deliver now")
)

// Driver is the aggregate root for delivery staff.
//
// Business rules:
//   - A driver always belongs to exactly one person and one postal area
//   - A driver is eligible for new work only while available AND either has
//     never delivered or the cooldown has fully elapsed since the last
//     delivery timestamp (at exactly the cooldown boundary the driver is
//     eligible again)
//   - Dispatch flips the driver to unavailable and stamps the delivery time;
//     Release makes the driver available again and restarts the cooldown
//
// Dispatch happens inside the order-creation transaction and Release inside
// the status-sweep transaction; the repositories serialize both with row
// locks so the same driver can never be double-booked.
type Driver struct {
	id                 kernel.UUID
	person             *person.Person
	isAvailable        bool
	lastDeliveryTime   *time.Time
	assignedPostalCode string
	createdAt          time.Time

	guard guard.ConstructorGuard
}

// NewDriver creates an available driver for the given postal area with no
// delivery history.
func NewDriver(id kernel.UUID, p *person.Person, postalCode string) (*Driver, error) {
	return RestoreDriver(id, p, true, nil, postalCode, time.Now().UTC())
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(
	id kernel.UUID,
	p *person.Person,
	isAvailable bool,
	lastDeliveryTime *time.Time,
	postalCode string,
	createdAt time.Time,
) (*Driver, error) {
	d := &Driver{
		isAvailable: isAvailable,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}
	if lastDeliveryTime != nil {
		t := lastDeliveryTime.UTC()
		d.lastDeliveryTime = &t
	}

	if err := errors.Join(
		d.setID(id),
		d.setPerson(p),
		d.setPostalCode(postalCode),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that the Driver was built via a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Person returns the identity behind the driver.
func (d *Driver) Person() *person.Person {
	return d.person
}

// IsAvailable reports the stored availability flag. Eligibility for new work
// additionally requires the cooldown to have elapsed; see CanDeliverAt.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// LastDeliveryTime returns when the driver last started or completed a
// delivery, or nil for a driver with no history.
func (d *Driver) LastDeliveryTime() *time.Time {
	if d.lastDeliveryTime == nil {
		return nil
	}
	t := *d.lastDeliveryTime
	return &t
}

// AssignedPostalCode returns the postal area the driver serves.
func (d *Driver) AssignedPostalCode() string {
	return d.assignedPostalCode
}

// CreatedAt returns when the driver record was created.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// CanDeliverAt reports whether the driver may accept new work at the given
// instant: available, and either no prior delivery or at least cooldown
// elapsed since the last one. The boundary is inclusive: exactly cooldown
// after the last delivery the driver is eligible.
func (d *Driver) CanDeliverAt(now time.Time, cooldown time.Duration) bool {
	if !d.isAvailable {
		return false
	}
	if d.lastDeliveryTime == nil {
		return true
	}
	return now.Sub(*d.lastDeliveryTime) >= cooldown
}

// Dispatch sends the driver out for a delivery: the driver becomes
// unavailable and the delivery timestamp is stamped. Returns
// ErrDriverNotEligible if the driver cannot deliver at the given instant.
func (d *Driver) Dispatch(now time.Time, cooldown time.Duration) error {
	if !d.CanDeliverAt(now, cooldown) {
		return ErrDriverNotEligible
	}

	t := now.UTC()
	d.isAvailable = false
	d.lastDeliveryTime = &t
	return nil
}

// Release returns the driver from a delivery: available again, with the
// delivery timestamp stamped so the cooldown restarts.
func (d *Driver) Release(now time.Time) {
	t := now.UTC()
	d.isAvailable = true
	d.lastDeliveryTime = &t
}

// CooldownRemaining returns how long until the cooldown elapses, or zero if
// the driver has no pending cooldown. Used by the delivery board listing.
func (d *Driver) CooldownRemaining(now time.Time, cooldown time.Duration) time.Duration {
	if d.lastDeliveryTime == nil {
		return 0
	}
	remaining := cooldown - now.Sub(*d.lastDeliveryTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setPerson(p *person.Person) error {
	if p == nil {
		return ErrPersonIsRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}
	d.person = p
	return nil
}

func (d *Driver) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return ErrPostalCodeIsRequired
	}
	d.assignedPostalCode = postalCode
	return nil
}
