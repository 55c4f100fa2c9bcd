package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PackingStatus is the per-item sub-state tracked by the packing stage.
type PackingStatus int

const (
	// PackingUnset means packing staff have not touched the item yet.
	PackingUnset PackingStatus = iota

	// Packed means the item went into a parcel.
	Packed

	// Unavailable means the item could not be fulfilled from stock.
	Unavailable
)

func packingStatusStrings() map[PackingStatus]string {
	return map[PackingStatus]string{
		PackingUnset: "unset",
		Packed:       "packed",
		Unavailable:  "unavailable",
	}
}

// PackingStatusFromString parses the persisted wire form.
func PackingStatusFromString(s string) (PackingStatus, error) {
	for status, str := range packingStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PackingUnset, errs.NewValueIsInvalidErrorWithCause("packingStatus",
		fmt.Errorf("%q is not a known packing status", s))
}

// String returns the wire representation. Round-trips unchanged.
func (s PackingStatus) String() string {
	if str, ok := packingStatusStrings()[s]; ok {
		return str
	}
	return "unset"
}

// Validate checks the value is one of the defined packing statuses.
func (s PackingStatus) Validate() error {
	if _, ok := packingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packingStatus",
			fmt.Errorf("%d is not a valid packing status", s))
	}
	return nil
}

// StorageStatus is the per-item sub-state tracked by storage verification.
type StorageStatus int

const (
	// StorageUnset means the storage officer has not verified the item yet.
	StorageUnset StorageStatus = iota

	// Verified means the storage officer confirmed the item in the parcel.
	Verified
)

func storageStatusStrings() map[StorageStatus]string {
	return map[StorageStatus]string{
		StorageUnset: "unset",
		Verified:     "verified",
	}
}

// StorageStatusFromString parses the persisted wire form.
func StorageStatusFromString(s string) (StorageStatus, error) {
	for status, str := range storageStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StorageUnset, errs.NewValueIsInvalidErrorWithCause("storageStatus",
		fmt.Errorf("%q is not a known storage status", s))
}

// String returns the wire representation. Round-trips unchanged.
func (s StorageStatus) String() string {
	if str, ok := storageStatusStrings()[s]; ok {
		return str
	}
	return "unset"
}

// Validate checks the value is one of the defined storage statuses.
func (s StorageStatus) Validate() error {
	if _, ok := storageStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("storageStatus",
			fmt.Errorf("%d is not a valid storage status", s))
	}
	return nil
}

// Priority ranks an order for dispatch. Derived, never set directly: the
// closer the delivery slot and the larger the total, the higher the rank.
type Priority int

const (
	// PriorityLow is the default for far-out, low-value orders.
	PriorityLow Priority = iota

	// PriorityMedium is for orders due within three days.
	PriorityMedium

	// PriorityHigh is for orders due within a day or above the value threshold.
	PriorityHigh

	// PriorityUrgent is for orders due within four hours.
	PriorityUrgent
)

func priorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityLow:    "low",
		PriorityMedium: "medium",
		PriorityHigh:   "high",
		PriorityUrgent: "urgent",
	}
}

// PriorityFromString parses the persisted wire form.
func PriorityFromString(s string) (Priority, error) {
	for p, str := range priorityStrings() {
		if str == s {
			return p, nil
		}
	}
	return PriorityLow, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a known priority", s))
}

// String returns the wire representation. Round-trips unchanged.
func (p Priority) String() string {
	if str, ok := priorityStrings()[p]; ok {
		return str
	}
	return "low"
}

// Validate checks the value is one of the defined priorities.
func (p Priority) Validate() error {
	if _, ok := priorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}
