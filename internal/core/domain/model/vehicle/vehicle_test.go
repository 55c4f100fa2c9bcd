package vehicle_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCapacity(t *testing.T, packages int, weightKg, volumeM3 float64) kernel.Capacity {
	t.Helper()
	c, err := kernel.NewCapacity(packages, weightKg, volumeM3)
	require.NoError(t, err)
	return c
}

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "Van 12", "van",
		mustCapacity(t, 10, 100, 2.0))
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("should create an empty available vehicle", func(t *testing.T) {
		v := newTestVehicle(t)

		require.NoError(t, v.Validate())
		assert.True(t, v.IsAvailable())
		assert.True(t, v.Load().IsZero())
		assert.Equal(t, v.Capacity(), v.SpareCapacity())
		assert.Empty(t, v.LoadedOrders())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), "", "van",
			mustCapacity(t, 10, 100, 2.0))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with zero capacity", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), "Van 12", "van", kernel.Capacity{})

		require.Error(t, err)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := vehicle.NewVehicle(invalidID, "Van 12", "van",
			mustCapacity(t, 10, 100, 2.0))

		require.Error(t, err)
	})
}

func TestVehicleCanCarry(t *testing.T) {
	t.Run("should accept a requirement within every dimension", func(t *testing.T) {
		v := newTestVehicle(t)

		assert.True(t, v.CanCarry(mustCapacity(t, 5, 40, 1.0)))
	})

	t.Run("should reject when any single dimension overflows", func(t *testing.T) {
		v := newTestVehicle(t)

		assert.False(t, v.CanCarry(mustCapacity(t, 11, 40, 1.0)))
		assert.False(t, v.CanCarry(mustCapacity(t, 5, 101, 1.0)))
		assert.False(t, v.CanCarry(mustCapacity(t, 5, 40, 2.1)))
	})

	t.Run("should reject everything while parked", func(t *testing.T) {
		v := newTestVehicle(t)
		v.SetAvailable(false)

		assert.False(t, v.CanCarry(mustCapacity(t, 1, 1, 0.1)))
	})
}

func TestVehicleLoadOrder(t *testing.T) {
	t.Run("should consume spare capacity", func(t *testing.T) {
		v := newTestVehicle(t)
		orderID := kernel.NewUUID()

		err := v.LoadOrder(orderID, mustCapacity(t, 4, 30, 0.5))

		require.NoError(t, err)
		assert.Equal(t, mustCapacity(t, 6, 70, 1.5), v.SpareCapacity())
		assert.Len(t, v.LoadedOrders(), 1)
	})

	t.Run("should reject a load past the spare capacity", func(t *testing.T) {
		v := newTestVehicle(t)
		require.NoError(t, v.LoadOrder(kernel.NewUUID(), mustCapacity(t, 8, 30, 0.5)))

		err := v.LoadOrder(kernel.NewUUID(), mustCapacity(t, 3, 10, 0.5))

		require.Error(t, err)
		assert.ErrorIs(t, err, vehicle.ErrCapacityExceeded)
	})

	t.Run("should reject loading the same order twice", func(t *testing.T) {
		v := newTestVehicle(t)
		orderID := kernel.NewUUID()
		require.NoError(t, v.LoadOrder(orderID, mustCapacity(t, 1, 1, 0.1)))

		err := v.LoadOrder(orderID, mustCapacity(t, 1, 1, 0.1))

		require.Error(t, err)
		assert.ErrorIs(t, err, vehicle.ErrOrderAlreadyLoaded)
	})
}

func TestVehicleReleaseOrder(t *testing.T) {
	t.Run("should return the requirement to the spare capacity", func(t *testing.T) {
		v := newTestVehicle(t)
		orderID := kernel.NewUUID()
		require.NoError(t, v.LoadOrder(orderID, mustCapacity(t, 4, 30, 0.5)))

		err := v.ReleaseOrder(orderID)

		require.NoError(t, err)
		assert.Equal(t, v.Capacity(), v.SpareCapacity())
		assert.Empty(t, v.LoadedOrders())
	})

	t.Run("should fail for an order the vehicle does not carry", func(t *testing.T) {
		v := newTestVehicle(t)

		err := v.ReleaseOrder(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, vehicle.ErrOrderNotLoaded)
	})
}

func TestRestoreVehicle(t *testing.T) {
	t.Run("should rebuild the running load from the stored map", func(t *testing.T) {
		orderID := kernel.NewUUID()
		loads := map[kernel.UUID]kernel.Capacity{
			orderID: mustCapacity(t, 4, 30, 0.5),
		}

		v, err := vehicle.RestoreVehicle(kernel.NewUUID(), "Van 12", "van",
			mustCapacity(t, 10, 100, 2.0), true, loads)

		require.NoError(t, err)
		assert.Equal(t, mustCapacity(t, 4, 30, 0.5), v.Load())
		assert.Equal(t, mustCapacity(t, 6, 70, 1.5), v.SpareCapacity())
		require.NoError(t, v.ReleaseOrder(orderID))
	})
}
