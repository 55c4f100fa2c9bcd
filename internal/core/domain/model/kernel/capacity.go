package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Capacity is the (packages, weight, volume) triple used both for an order's
// aggregate requirement and for a vehicle's carrying limits.
//
// Capacity is a value object. All arithmetic returns new values; the zero
// value is a valid "empty" capacity.
//
// Weight is in kilograms, volume in cubic meters.
type Capacity struct {
	packages int
	weightKg float64
	volumeM3 float64
}

// NewCapacity creates a capacity triple. All components must be non-negative.
func NewCapacity(packages int, weightKg, volumeM3 float64) (Capacity, error) {
	c := Capacity{packages: packages, weightKg: weightKg, volumeM3: volumeM3}
	if err := c.Validate(); err != nil {
		return Capacity{}, err
	}
	return c, nil
}

// Packages returns the package count component.
func (c Capacity) Packages() int {
	return c.packages
}

// WeightKg returns the weight component in kilograms.
func (c Capacity) WeightKg() float64 {
	return c.weightKg
}

// VolumeM3 returns the volume component in cubic meters.
func (c Capacity) VolumeM3() float64 {
	return c.volumeM3
}

// Validate checks that every component is non-negative.
func (c Capacity) Validate() error {
	if c.packages < 0 {
		return errs.NewValueIsInvalidErrorWithCause("packages",
			fmt.Errorf("%d is negative", c.packages))
	}
	if c.weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%g is negative", c.weightKg))
	}
	if c.volumeM3 < 0 {
		return errs.NewValueIsInvalidErrorWithCause("volumeM3",
			fmt.Errorf("%g is negative", c.volumeM3))
	}
	return nil
}

// IsZero reports whether all components are zero.
func (c Capacity) IsZero() bool {
	return c.packages == 0 && c.weightKg == 0 && c.volumeM3 == 0
}

// Dominates reports whether this capacity can satisfy the requirement:
// every component must be greater than or equal to the requirement's.
func (c Capacity) Dominates(req Capacity) bool {
	return c.packages >= req.packages &&
		c.weightKg >= req.weightKg &&
		c.volumeM3 >= req.volumeM3
}

// Add returns the component-wise sum of two capacities.
func (c Capacity) Add(other Capacity) Capacity {
	return Capacity{
		packages: c.packages + other.packages,
		weightKg: c.weightKg + other.weightKg,
		volumeM3: c.volumeM3 + other.volumeM3,
	}
}

// Sub returns the component-wise difference, clamped at zero.
// Used when releasing an order's load from a vehicle.
func (c Capacity) Sub(other Capacity) Capacity {
	out := Capacity{
		packages: c.packages - other.packages,
		weightKg: c.weightKg - other.weightKg,
		volumeM3: c.volumeM3 - other.volumeM3,
	}
	if out.packages < 0 {
		out.packages = 0
	}
	if out.weightKg < 0 {
		out.weightKg = 0
	}
	if out.volumeM3 < 0 {
		out.volumeM3 = 0
	}
	return out
}

// Excess measures the slack this capacity leaves over a requirement.
// It is a scalar used to prefer the tightest-fitting vehicle: package slack
// counts whole units, weight and volume are normalized against the
// requirement so that no single dimension dominates the comparison.
func (c Capacity) Excess(req Capacity) float64 {
	excess := float64(c.packages - req.packages)
	if req.weightKg > 0 {
		excess += (c.weightKg - req.weightKg) / req.weightKg
	} else {
		excess += c.weightKg
	}
	if req.volumeM3 > 0 {
		excess += (c.volumeM3 - req.volumeM3) / req.volumeM3
	} else {
		excess += c.volumeM3
	}
	return excess
}

// String renders the triple for logs and error messages.
func (c Capacity) String() string {
	return fmt.Sprintf("packages=%d weight=%gkg volume=%gm3", c.packages, c.weightKg, c.volumeM3)
}
