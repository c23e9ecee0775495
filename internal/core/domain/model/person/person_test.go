package person_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/person"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPerson(t *testing.T) *person.Person {
	t.Helper()
	p, err := person.NewPerson(
		kernel.NewUUID(),
		"Mario", "Rossi", "mario@example.com",
		time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
		"1012AB",
		person.RoleCustomer,
	)
	require.NoError(t, err)
	return p
}

func TestNewPerson(t *testing.T) {
	t.Run("valid_person", func(t *testing.T) {
		p := validPerson(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, "Mario Rossi", p.FullName())
		assert.Equal(t, "1012AB", p.PostalCode())
		assert.Equal(t, person.RoleCustomer, p.Role())
	})

	t.Run("missing_required_fields", func(t *testing.T) {
		_, err := person.NewPerson(
			kernel.NewUUID(), "", "", "",
			time.Time{}, "", person.RoleCustomer,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, person.ErrFirstNameIsRequired)
		require.ErrorIs(t, err, person.ErrLastNameIsRequired)
		require.ErrorIs(t, err, person.ErrEmailIsRequired)
		require.ErrorIs(t, err, person.ErrBirthDateIsRequired)
	})

	t.Run("invalid_role", func(t *testing.T) {
		_, err := person.NewPerson(
			kernel.NewUUID(), "Mario", "Rossi", "mario@example.com",
			time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
			"1012AB", person.UnknownRole,
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p person.Person
		require.Error(t, p.Validate())
	})
}

func TestPerson_IsBirthday(t *testing.T) {
	p := validPerson(t) // born June 15

	assert.True(t, p.IsBirthday(time.Date(2025, time.June, 15, 18, 30, 0, 0, time.UTC)))
	assert.False(t, p.IsBirthday(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.IsBirthday(time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)))
}

func TestRole(t *testing.T) {
	t.Run("string_round_trip", func(t *testing.T) {
		for _, r := range []person.Role{person.RoleCustomer, person.RoleStaff, person.RoleAdmin} {
			parsed, err := person.RoleFromString(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		require.Error(t, person.UnknownRole.Validate())
		_, err := person.RoleFromString("Chef")
		require.Error(t, err)
	})
}
