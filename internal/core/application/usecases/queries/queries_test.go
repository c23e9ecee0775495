package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/queries"
)

func TestNewGetMenuQuery_Valid(t *testing.T) {
	query := queries.NewGetMenuQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetMenuQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMenuQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}

func TestNewGetActiveOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetActiveOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetActiveOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetDeliveryBoardQuery_Valid(t *testing.T) {
	query := queries.NewGetDeliveryBoardQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetDeliveryBoardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveryBoardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveryBoardQueryIsNotConstructed)
}
