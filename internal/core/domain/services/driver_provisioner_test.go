package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/person"
	"pizzeria/internal/core/domain/model/staff"
	"pizzeria/internal/core/domain/services"
)

func Test_DriverProvisioner_Provision(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	provisioner := services.NewDriverProvisionerWithNames(func() (string, string) {
		return "Alex", "Janssen"
	})

	pers, driver, err := provisioner.Provision("1012AB", now)
	require.NoError(t, err)

	assert.Equal(t, "Alex Janssen", pers.FullName())
	assert.Equal(t, person.RoleStaff, pers.Role())
	assert.Equal(t, "1012AB", pers.PostalCode())

	assert.Equal(t, "1012AB", driver.AssignedPostalCode())
	assert.True(t, pers.IsEqual(driver.Person()))

	// provisioned drivers start dispatched for the order at hand
	assert.False(t, driver.IsAvailable())
	require.NotNil(t, driver.LastDeliveryTime())
	assert.Equal(t, now, driver.LastDeliveryTime().UTC())
	assert.False(t, driver.CanDeliverAt(now.Add(29*time.Minute), staff.DefaultCooldown))
}

func Test_DriverProvisioner_UniqueEmails(t *testing.T) {
	now := time.Now()
	provisioner := services.NewDriverProvisionerWithNames(func() (string, string) {
		return "Alex", "Janssen"
	})

	first, _, err := provisioner.Provision("1012AB", now)
	require.NoError(t, err)
	second, _, err := provisioner.Provision("1012AB", now)
	require.NoError(t, err)

	assert.NotEqual(t, first.Email(), second.Email())
}

func Test_DriverProvisioner_RandomNamesAreValid(t *testing.T) {
	provisioner := services.NewDriverProvisioner()

	pers, driver, err := provisioner.Provision("2000XY", time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, pers.FirstName())
	assert.NotEmpty(t, pers.LastName())
	require.NoError(t, driver.Validate())
}
