package person

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// Domain errors for person operations.
var (
	// ErrFirstNameIsRequired is returned when creating a person without a first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("first name")
	// ErrLastNameIsRequired is returned when creating a person without a last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("last name")
	// ErrEmailIsRequired is returned when creating a person without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrBirthDateIsRequired is returned when creating a person without a date of birth.
	ErrBirthDateIsRequired = errs.NewValueIsRequiredError("birth date")
	// ErrPersonIsNotConstructed is returned when using an improperly initialized Person.
	ErrPersonIsNotConstructed = errors.New("Person must be created via NewPerson constructor")
)

// Person is the identity entity behind both customers and delivery staff.
//
// Business rules:
//   - First name, last name, email, and birth date are mandatory
//   - The role must be one of Customer, Staff, or Admin
//   - The birthday predicate matches on month and day only, so it fires once
//     a year regardless of the birth year
//
// Phone, address, and postal code are optional contact details; the postal
// code is what the driver-assignment rules match drivers against.
type Person struct {
	id         kernel.UUID
	firstName  string
	lastName   string
	email      string
	phone      string
	birthDate  time.Time
	address    string
	postalCode string
	role       Role
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewPerson creates a new Person with the given identity details.
// The creation timestamp is set to now; use RestorePerson when loading
// from persistence.
func NewPerson(
	id kernel.UUID,
	firstName, lastName, email string,
	birthDate time.Time,
	postalCode string,
	role Role,
) (*Person, error) {
	return RestorePerson(id, firstName, lastName, email, "", birthDate, "", postalCode, role, time.Now().UTC())
}

// RestorePerson reconstructs a Person from persistent storage, including the
// optional contact fields and the original creation timestamp.
func RestorePerson(
	id kernel.UUID,
	firstName, lastName, email, phone string,
	birthDate time.Time,
	address, postalCode string,
	role Role,
	createdAt time.Time,
) (*Person, error) {
	p := &Person{
		phone:     phone,
		address:   address,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setFirstName(firstName),
		p.setLastName(lastName),
		p.setEmail(email),
		p.setBirthDate(birthDate),
		p.setPostalCode(postalCode),
		p.setRole(role),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks that the Person was built via a constructor.
func (p *Person) Validate() error {
	if p == nil {
		return ErrPersonIsNotConstructed
	}
	return p.guard.Validate(ErrPersonIsNotConstructed)
}

// IsEqual compares two persons by identifier.
func (p *Person) IsEqual(other *Person) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// ID returns the person's unique identifier.
func (p *Person) ID() kernel.UUID {
	return p.id
}

// FirstName returns the person's first name.
func (p *Person) FirstName() string {
	return p.firstName
}

// LastName returns the person's last name.
func (p *Person) LastName() string {
	return p.lastName
}

// FullName returns "First Last" for customer-facing messages.
func (p *Person) FullName() string {
	return fmt.Sprintf("%s %s", p.firstName, p.lastName)
}

// Email returns the person's email address.
func (p *Person) Email() string {
	return p.email
}

// Phone returns the person's phone number, possibly empty.
func (p *Person) Phone() string {
	return p.phone
}

// BirthDate returns the person's date of birth.
func (p *Person) BirthDate() time.Time {
	return p.birthDate
}

// Address returns the person's street address, possibly empty.
func (p *Person) Address() string {
	return p.address
}

// PostalCode returns the postal area the person lives in. Driver assignment
// matches this against drivers' assigned postal codes.
func (p *Person) PostalCode() string {
	return p.postalCode
}

// Role returns the person's role.
func (p *Person) Role() Role {
	return p.role
}

// CreatedAt returns when the person was registered.
func (p *Person) CreatedAt() time.Time {
	return p.createdAt
}

// IsBirthday reports whether the given instant falls on the person's
// birthday: month and day match, the year is ignored.
func (p *Person) IsBirthday(at time.Time) bool {
	return p.birthDate.Month() == at.Month() && p.birthDate.Day() == at.Day()
}

func (p *Person) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Person) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}
	p.firstName = firstName
	return nil
}

func (p *Person) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}
	p.lastName = lastName
	return nil
}

func (p *Person) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	p.email = email
	return nil
}

func (p *Person) setBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return ErrBirthDateIsRequired
	}
	p.birthDate = birthDate
	return nil
}

func (p *Person) setPostalCode(postalCode string) error {
	p.postalCode = postalCode
	return nil
}

func (p *Person) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
