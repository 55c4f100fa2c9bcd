// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. The running load is not stored: it is rebuilt from
// the per-order load rows on restore, so the sum can never drift from its
// parts.
package vehiclerepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates.
type VehicleDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name      string      `gorm:"type:varchar(255);not null"`
	Class     string      `gorm:"type:varchar(64)"`
	Capacity  CapacityDTO `gorm:"embedded;embeddedPrefix:capacity_"`
	Available bool        `gorm:"not null;index"`

	Loads []VehicleLoadDTO `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// CapacityDTO represents an embedded capacity triple.
type CapacityDTO struct {
	Packages int     `gorm:"type:int;not null"`
	WeightKg float64 `gorm:"not null"`
	VolumeM3 float64 `gorm:"not null"`
}

// VehicleLoadDTO represents one order currently loaded on a vehicle together
// with the requirement it consumes.
type VehicleLoadDTO struct {
	VehicleID   uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Requirement CapacityDTO `gorm:"embedded;embeddedPrefix:req_"`
}

// TableName specifies the database table name for vehicle loads.
func (VehicleLoadDTO) TableName() string {
	return "vehicle_loads"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	vehicleID := aggregate.ID().Bytes()

	domainLoads := aggregate.Loads()
	loads := make([]VehicleLoadDTO, 0, len(domainLoads))
	for orderID, req := range domainLoads {
		loads = append(loads, VehicleLoadDTO{
			VehicleID: vehicleID,
			OrderID:   orderID.Bytes(),
			Requirement: CapacityDTO{
				Packages: req.Packages(),
				WeightKg: req.WeightKg(),
				VolumeM3: req.VolumeM3(),
			},
		})
	}

	return VehicleDTO{
		ID:    vehicleID,
		Name:  aggregate.Name(),
		Class: aggregate.Class(),
		Capacity: CapacityDTO{
			Packages: aggregate.Capacity().Packages(),
			WeightKg: aggregate.Capacity().WeightKg(),
			VolumeM3: aggregate.Capacity().VolumeM3(),
		},
		Available: aggregate.IsAvailable(),
		Loads:     loads,
	}
}

// columns flattens the vehicle row for an explicit UPDATE. Loads are written
// separately.
func (dto VehicleDTO) columns() map[string]any {
	return map[string]any{
		"name":               dto.Name,
		"class":              dto.Class,
		"capacity_packages":  dto.Capacity.Packages,
		"capacity_weight_kg": dto.Capacity.WeightKg,
		"capacity_volume_m3": dto.Capacity.VolumeM3,
		"available":          dto.Available,
	}
}

// toDomain converts a database DTO to a vehicle aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.NewCapacity(dto.Capacity.Packages, dto.Capacity.WeightKg, dto.Capacity.VolumeM3)
	if err != nil {
		return nil, err
	}

	loads := make(map[kernel.UUID]kernel.Capacity, len(dto.Loads))
	for _, loadDto := range dto.Loads {
		orderID, loadErr := kernel.UUIDFromBytes(loadDto.OrderID[:])
		if loadErr != nil {
			return nil, loadErr
		}
		req, loadErr := kernel.NewCapacity(
			loadDto.Requirement.Packages, loadDto.Requirement.WeightKg, loadDto.Requirement.VolumeM3)
		if loadErr != nil {
			return nil, loadErr
		}
		loads[orderID] = req
	}

	return vehicle.RestoreVehicle(id, dto.Name, dto.Class, capacity, dto.Available, loads)
}
