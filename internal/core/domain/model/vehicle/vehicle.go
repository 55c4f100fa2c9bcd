package vehicle

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrNameIsRequired is returned when attempting to create a vehicle without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrOrderNotLoaded is returned when releasing an order the vehicle does not carry.
	ErrOrderNotLoaded = errors.New("order is not loaded on vehicle")
	// ErrOrderAlreadyLoaded is returned when loading an order twice.
	ErrOrderAlreadyLoaded = errors.New("order is already loaded on vehicle")
	// ErrCapacityExceeded is returned when a load would not fit the spare capacity.
	ErrCapacityExceeded = errors.New("vehicle capacity exceeded")
)

// Vehicle represents a delivery vehicle of the fleet.
// It is an aggregate root that manages the vehicle's capacity triple and the
// orders currently loaded on it.
//
// Key responsibilities:
//   - Managing vehicle identity (ID, name, class)
//   - Tracking the running load against the capacity triple
//   - Admitting orders only while every capacity dimension holds
//
// Business rules:
//   - A vehicle must have a valid UUID, a non-empty name, and a valid capacity
//   - An order fits only if the spare capacity dominates its requirement in
//     packages, weight, and volume simultaneously
//   - Releasing an order returns its requirement to the spare capacity
//
// Vehicle can only be created through NewVehicle or RestoreVehicle.
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// name is the human-readable fleet name, e.g. "Van 12"
	name string
	// class is the fleet class, e.g. "van" or "truck"
	class string
	// capacity is the total capacity triple
	capacity kernel.Capacity
	// available marks the vehicle as dispatchable
	available bool
	// loads keeps the requirement of every order currently on the vehicle
	loads map[kernel.UUID]kernel.Capacity
	// load is the running sum of the loaded requirements
	load kernel.Capacity
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates an empty, available vehicle with the given capacity.
func NewVehicle(id kernel.UUID, name, class string, capacity kernel.Capacity) (*Vehicle, error) {
	v := &Vehicle{
		available: true,
		loads:     make(map[kernel.UUID]kernel.Capacity),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	v.class = class
	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistent storage, including
// its availability and the orders currently loaded on it.
func RestoreVehicle(
	id kernel.UUID,
	name, class string,
	capacity kernel.Capacity,
	available bool,
	loads map[kernel.UUID]kernel.Capacity,
) (*Vehicle, error) {
	v, err := NewVehicle(id, name, class, capacity)
	if err != nil {
		return nil, err
	}

	v.available = available
	for orderID, req := range loads {
		if err = errors.Join(orderID.Validate(), req.Validate()); err != nil {
			return nil, err
		}
		v.loads[orderID] = req
		v.load = v.load.Add(req)
	}
	return v, nil
}

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Name returns the human-readable fleet name.
func (v *Vehicle) Name() string {
	return v.name
}

// Class returns the fleet class.
func (v *Vehicle) Class() string {
	return v.class
}

// Capacity returns the total capacity triple.
func (v *Vehicle) Capacity() kernel.Capacity {
	return v.capacity
}

// IsAvailable reports whether the vehicle is dispatchable.
func (v *Vehicle) IsAvailable() bool {
	return v.available
}

// SetAvailable marks the vehicle dispatchable or parked.
func (v *Vehicle) SetAvailable(available bool) {
	v.available = available
}

// Load returns the running sum of the loaded requirements.
func (v *Vehicle) Load() kernel.Capacity {
	return v.load
}

// SpareCapacity returns what is left of the capacity triple.
func (v *Vehicle) SpareCapacity() kernel.Capacity {
	return v.capacity.Sub(v.load)
}

// LoadedOrders returns the IDs of the orders currently on the vehicle.
func (v *Vehicle) LoadedOrders() []kernel.UUID {
	out := make([]kernel.UUID, 0, len(v.loads))
	for orderID := range v.loads {
		out = append(out, orderID)
	}
	return out
}

// Loads returns a copy of the per-order requirements currently on the vehicle.
func (v *Vehicle) Loads() map[kernel.UUID]kernel.Capacity {
	out := make(map[kernel.UUID]kernel.Capacity, len(v.loads))
	for orderID, req := range v.loads {
		out[orderID] = req
	}
	return out
}

// CanCarry reports whether the requirement fits the spare capacity in every
// dimension while the vehicle is available.
func (v *Vehicle) CanCarry(req kernel.Capacity) bool {
	return v.available && v.SpareCapacity().Dominates(req)
}

// LoadOrder admits an order onto the vehicle, consuming its requirement
// from the spare capacity.
func (v *Vehicle) LoadOrder(orderID kernel.UUID, req kernel.Capacity) error {
	if err := errors.Join(orderID.Validate(), req.Validate()); err != nil {
		return err
	}
	if _, exists := v.loads[orderID]; exists {
		return ErrOrderAlreadyLoaded
	}
	if !v.CanCarry(req) {
		return ErrCapacityExceeded
	}

	v.loads[orderID] = req
	v.load = v.load.Add(req)
	return nil
}

// ReleaseOrder removes an order from the vehicle, returning its requirement
// to the spare capacity.
func (v *Vehicle) ReleaseOrder(orderID kernel.UUID) error {
	req, exists := v.loads[orderID]
	if !exists {
		return ErrOrderNotLoaded
	}

	delete(v.loads, orderID)
	v.load = v.load.Sub(req)
	return nil
}

// setID validates and sets the identifier.
func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

// setName validates and sets the fleet name.
func (v *Vehicle) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	v.name = name
	return nil
}

// setCapacity validates and sets the capacity triple.
func (v *Vehicle) setCapacity(capacity kernel.Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	if capacity.IsZero() {
		return errs.NewValueIsRequiredError("capacity")
	}
	v.capacity = capacity
	return nil
}
