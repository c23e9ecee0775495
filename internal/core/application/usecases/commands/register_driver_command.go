package commands

import (
	"errors"
	"time"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrDriverFirstNameIsRequired  = errors.New("first name is required")
	ErrDriverLastNameIsRequired   = errors.New("last name is required")
	ErrDriverEmailIsRequired      = errors.New("email is required")
	ErrDriverBirthDateIsRequired  = errors.New("birth date is required")
	ErrDriverPostalCodeIsRequired = errors.New("postal code is required")
)

// RegisterDriverCommand represents a request to register a new delivery
// driver for a postal code area.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	firstName  string
	lastName   string
	email      string
	birthDate  time.Time
	postalCode string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
// All identity fields and the postal code are required.
func NewRegisterDriverCommand(
	firstName, lastName, email string,
	birthDate time.Time,
	postalCode string,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
		cmd.setEmail(email),
		cmd.setBirthDate(birthDate),
		cmd.setPostalCode(postalCode),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// FirstName returns the driver's first name.
func (c RegisterDriverCommand) FirstName() string {
	return c.firstName
}

// LastName returns the driver's last name.
func (c RegisterDriverCommand) LastName() string {
	return c.lastName
}

// Email returns the driver's email address.
func (c RegisterDriverCommand) Email() string {
	return c.email
}

// BirthDate returns the driver's date of birth.
func (c RegisterDriverCommand) BirthDate() time.Time {
	return c.birthDate
}

// PostalCode returns the area the driver will serve.
func (c RegisterDriverCommand) PostalCode() string {
	return c.postalCode
}

func (c *RegisterDriverCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrDriverFirstNameIsRequired
	}
	c.firstName = firstName
	return nil
}

func (c *RegisterDriverCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrDriverLastNameIsRequired
	}
	c.lastName = lastName
	return nil
}

func (c *RegisterDriverCommand) setEmail(email string) error {
	if email == "" {
		return ErrDriverEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *RegisterDriverCommand) setBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return ErrDriverBirthDateIsRequired
	}
	c.birthDate = birthDate
	return nil
}

func (c *RegisterDriverCommand) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return ErrDriverPostalCodeIsRequired
	}
	c.postalCode = postalCode
	return nil
}
