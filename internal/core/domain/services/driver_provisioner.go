package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/person"
	"pizzeria/internal/core/domain/model/staff"
)

var emergencyFirstNames = []string{
	"Alex", "Sam", "Robin", "Charlie", "Luca", "Nico", "Kim", "Jamie",
}

var emergencyLastNames = []string{
	"Janssen", "Visser", "Smit", "Bakker", "Meyer", "Dekker", "Bos", "Mulder",
}

// NamePicker supplies a first and last name for an emergency driver.
// Injectable so tests get deterministic names.
type NamePicker func() (first, last string)

func randomName() (string, string) {
	return emergencyFirstNames[rand.Intn(len(emergencyFirstNames))],
		emergencyLastNames[rand.Intn(len(emergencyLastNames))]
}

// DriverProvisioner creates an emergency driver when no existing driver is
// eligible for a postal code. The new driver starts dispatched: unavailable
// and stamped as delivering, since it is created to take the order at hand.
type DriverProvisioner struct {
	pickName NamePicker
}

// NewDriverProvisioner creates a provisioner with random emergency names.
func NewDriverProvisioner() DriverProvisioner {
	return DriverProvisioner{pickName: randomName}
}

// NewDriverProvisionerWithNames creates a provisioner with a custom name
// source.
func NewDriverProvisionerWithNames(pick NamePicker) DriverProvisioner {
	return DriverProvisioner{pickName: pick}
}

// Provision creates a person and driver pair for the postal code and
// dispatches the driver immediately.
func (p DriverProvisioner) Provision(postalCode string, now time.Time) (*person.Person, *staff.Driver, error) {
	first, last := p.pickName()
	personID := kernel.NewUUID()

	email := fmt.Sprintf("%s.%s.%s@pizzeria.example",
		strings.ToLower(first), strings.ToLower(last), personID.String()[:8])

	// emergency drivers carry a placeholder birth date
	pers, err := person.RestorePerson(
		personID, first, last, email, "",
		time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
		"", postalCode, person.RoleStaff, now.UTC(),
	)
	if err != nil {
		return nil, nil, err
	}

	driver, err := staff.NewDriver(kernel.NewUUID(), pers, postalCode)
	if err != nil {
		return nil, nil, err
	}

	if err := driver.Dispatch(now, staff.DefaultCooldown); err != nil {
		return nil, nil, err
	}

	return pers, driver, nil
}
