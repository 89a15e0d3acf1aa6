package queries_test

import (
	"testing"

	"bistro/internal/core/application/usecases/queries"
	"bistro/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCourierPayoutsQuery_Valid(t *testing.T) {
	courierID := kernel.NewUUID()

	query, err := queries.NewGetCourierPayoutsQuery(courierID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, courierID, query.CourierID())
}

func TestNewGetCourierPayoutsQuery_EmptyCourierID(t *testing.T) {
	_, err := queries.NewGetCourierPayoutsQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetCourierPayoutsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCourierPayoutsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCourierPayoutsQueryIsNotConstructed)
}

func TestNewGetActiveZonesQuery_Valid(t *testing.T) {
	query := queries.NewGetActiveZonesQuery()
	require.NoError(t, query.Validate())
}

func TestGetActiveZonesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveZonesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveZonesQueryIsNotConstructed)
}

func TestNewGetAllCouriersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllCouriersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllCouriersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllCouriersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllCouriersQueryIsNotConstructed)
}
