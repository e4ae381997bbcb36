package carrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func validVehicle(t *testing.T) *Vehicle {
	t.Helper()
	vehicle, err := NewVehicle("ABC-123", VehicleKindVan, 1200)
	require.NoError(t, err)
	return vehicle
}

func Test_NewVehicle(t *testing.T) {
	t.Run("should create vehicle when params are valid", func(t *testing.T) {
		vehicle, err := NewVehicle("ABC-123", VehicleKindTruck, 3500)

		require.NoError(t, err)
		assert.Equal(t, "ABC-123", vehicle.Plate())
		assert.Equal(t, VehicleKindTruck, vehicle.Kind())
		assert.Equal(t, 3500.0, vehicle.CapacityKg())
		assert.NoError(t, vehicle.Validate())
	})

	t.Run("should return error when plate is empty", func(t *testing.T) {
		_, err := NewVehicle("", VehicleKindVan, 1200)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when capacity is not positive", func(t *testing.T) {
		_, err := NewVehicle("ABC-123", VehicleKindVan, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when validating zero value", func(t *testing.T) {
		var vehicle Vehicle

		assert.ErrorIs(t, vehicle.Validate(), ErrVehicleIsNotConstructed)
	})
}

func Test_NewCarrier(t *testing.T) {
	t.Run("should create available carrier when params are valid", func(t *testing.T) {
		carrier, err := NewCarrier("Andes Cargo", validVehicle(t))

		require.NoError(t, err)
		assert.Equal(t, "Andes Cargo", carrier.Name())
		assert.True(t, carrier.IsAvailable())
		assert.NotNil(t, carrier.Vehicle())
		assert.NoError(t, carrier.Validate())
	})

	t.Run("should return error when name is empty", func(t *testing.T) {
		_, err := NewCarrier("", validVehicle(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when vehicle is nil", func(t *testing.T) {
		_, err := NewCarrier("Andes Cargo", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when vehicle is not constructed", func(t *testing.T) {
		_, err := NewCarrier("Andes Cargo", &Vehicle{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVehicleIsNotConstructed)
	})

	t.Run("should return error when validating zero value", func(t *testing.T) {
		var carrier Carrier

		assert.ErrorIs(t, carrier.Validate(), ErrCarrierIsNotConstructed)
	})
}

func Test_RestoreCarrier(t *testing.T) {
	t.Run("should restore carrier with stored availability", func(t *testing.T) {
		vehicle, err := RestoreVehicle(mustID(t, 7), "XYZ-987", VehicleKindMotorcycle, 40)
		require.NoError(t, err)

		carrier, err := RestoreCarrier(mustID(t, 3), "City Couriers", false, vehicle)

		require.NoError(t, err)
		assert.Equal(t, mustID(t, 3), carrier.ID())
		assert.False(t, carrier.IsAvailable())
		assert.Equal(t, mustID(t, 7), carrier.Vehicle().ID())
	})

	t.Run("should return error when id is invalid", func(t *testing.T) {
		_, err := RestoreCarrier(kernel.ID{}, "City Couriers", true, validVehicle(t))

		require.Error(t, err)
	})
}

func Test_Carrier_Identify(t *testing.T) {
	t.Run("should assign identifier once", func(t *testing.T) {
		carrier, err := NewCarrier("Andes Cargo", validVehicle(t))
		require.NoError(t, err)

		require.NoError(t, carrier.Identify(mustID(t, 11)))
		assert.Equal(t, mustID(t, 11), carrier.ID())

		err = carrier.Identify(mustID(t, 12))
		require.Error(t, err)
		assert.Equal(t, mustID(t, 11), carrier.ID())
	})
}

func Test_Carrier_CanCarry(t *testing.T) {
	tests := map[string]struct {
		capacityKg float64
		weightKg   float64
		want       bool
	}{
		"weight below capacity":  {capacityKg: 1200, weightKg: 800, want: true},
		"weight equals capacity": {capacityKg: 1200, weightKg: 1200, want: true},
		"weight above capacity":  {capacityKg: 1200, weightKg: 1200.5, want: false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			vehicle, err := NewVehicle("ABC-123", VehicleKindVan, test.capacityKg)
			require.NoError(t, err)
			carrier, err := NewCarrier("Andes Cargo", vehicle)
			require.NoError(t, err)

			weight, err := kernel.NewWeight(test.weightKg)
			require.NoError(t, err)

			assert.Equal(t, test.want, carrier.CanCarry(weight))
		})
	}
}

func Test_Carrier_SetAvailability(t *testing.T) {
	t.Run("should toggle availability", func(t *testing.T) {
		carrier, err := NewCarrier("Andes Cargo", validVehicle(t))
		require.NoError(t, err)

		carrier.SetAvailability(false)
		assert.False(t, carrier.IsAvailable())

		carrier.SetAvailability(true)
		assert.True(t, carrier.IsAvailable())
	})
}
