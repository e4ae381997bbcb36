package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

func TestNewGetShipmentsQuery(t *testing.T) {
	t.Run("should create unfiltered query", func(t *testing.T) {
		query := queries.NewGetShipmentsQuery()

		require.NoError(t, query.Validate())
		_, ok := query.Status()
		assert.False(t, ok)
	})

	t.Run("should create filtered query", func(t *testing.T) {
		query, err := queries.NewGetShipmentsQueryWithStatus(int(shipment.InTransit))

		require.NoError(t, err)
		status, ok := query.Status()
		assert.True(t, ok)
		assert.Equal(t, shipment.InTransit, status)
	})

	t.Run("should reject unknown status filter", func(t *testing.T) {
		_, err := queries.NewGetShipmentsQueryWithStatus(9)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		query := queries.GetShipmentsQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrGetShipmentsQueryIsNotConstructed)
	})
}

func TestNewGetUserShipmentsQuery(t *testing.T) {
	t.Run("should create query for valid user", func(t *testing.T) {
		query, err := queries.NewGetUserShipmentsQuery(7)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, int64(7), query.UserID().Int64())
	})

	t.Run("should reject missing user id", func(t *testing.T) {
		_, err := queries.NewGetUserShipmentsQuery(0)

		require.Error(t, err)
	})
}

func TestNewGetShipmentHistoryQuery(t *testing.T) {
	t.Run("should create query for valid shipment", func(t *testing.T) {
		query, err := queries.NewGetShipmentHistoryQuery(100)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("should reject missing shipment id", func(t *testing.T) {
		_, err := queries.NewGetShipmentHistoryQuery(-1)

		require.Error(t, err)
	})
}

func TestParameterlessQueries(t *testing.T) {
	t.Run("should validate constructed queries", func(t *testing.T) {
		require.NoError(t, queries.NewGetAvailableCarriersQuery().Validate())
		require.NoError(t, queries.NewGetPlannedRoutesQuery().Validate())
	})

	t.Run("should reject zero values", func(t *testing.T) {
		carriersQuery := queries.GetAvailableCarriersQuery{}
		routesQuery := queries.GetPlannedRoutesQuery{}

		require.ErrorIs(t, carriersQuery.Validate(), queries.ErrGetAvailableCarriersQueryIsNotConstructed)
		require.ErrorIs(t, routesQuery.Validate(), queries.ErrGetPlannedRoutesQueryIsNotConstructed)
	})
}
