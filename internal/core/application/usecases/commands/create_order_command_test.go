package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemSpecs() []commands.OrderItemSpec {
	return []commands.OrderItemSpec{
		{ProductRef: "SKU-100", Quantity: 2, UnitWeightKg: 1.5},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	deliveryAt := time.Now().UTC().Add(48 * time.Hour)

	cmd, err := commands.NewCreateOrderCommand(
		id, "customer-7", validItemSpecs(), "12 Harbor Lane", deliveryAt, "14:00-16:00", 4_500, 0.4)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "customer-7", cmd.CustomerRef())
	assert.Equal(t, "12 Harbor Lane", cmd.Address())
	assert.Equal(t, deliveryAt, cmd.DeliveryAt())
	assert.Equal(t, "14:00-16:00", cmd.TimeSlot())
	assert.Equal(t, int64(4_500), cmd.TotalCents())
	assert.InDelta(t, 0.4, cmd.VolumeM3(), 0.0001)
	assert.Len(t, cmd.Items(), 1)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(
		invalidID, "customer-7", validItemSpecs(), "12 Harbor Lane",
		time.Now().Add(48*time.Hour), "", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyCustomerRef(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "", validItemSpecs(), "12 Harbor Lane",
		time.Now().Add(48*time.Hour), "", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerRefIsRequired)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "customer-7", nil, "12 Harbor Lane",
		time.Now().Add(48*time.Hour), "", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "customer-7", validItemSpecs(), "",
		time.Now().Add(48*time.Hour), "", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddressIsRequired)
}

func TestNewCreateOrderCommand_ZeroDeliveryAt(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "customer-7", validItemSpecs(), "12 Harbor Lane",
		time.Time{}, "", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryAtIsRequired)
}
