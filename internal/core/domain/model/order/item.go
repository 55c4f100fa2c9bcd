package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order. It carries two independent sub-statuses,
// one per fulfillment stage, plus the complaints filed against it at each
// stage. A sub-status is mutually exclusive with an open complaint of the
// same stage: a complaint parks the item instead of packing or verifying it.
//
// Item is an entity owned by the Order aggregate; it is only mutated through
// the aggregate's stage operations.
type Item struct {
	// productRef identifies the product in the external catalog
	productRef string
	// quantity is the ordered unit count
	quantity int
	// unitWeightKg is the weight of a single unit in kilograms
	unitWeightKg float64
	// packingStatus is the packing-stage sub-state
	packingStatus PackingStatus
	// storageStatus is the storage-verification sub-state
	storageStatus StorageStatus
	// packingComplaints are complaints filed during packing
	packingComplaints []kernel.UUID
	// storageComplaints are complaints filed during storage verification
	storageComplaints []kernel.UUID
	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// NewItem creates a line item in its initial, untouched state.
//
// The product reference must be non-empty, quantity positive, and unit
// weight non-negative.
func NewItem(productRef string, quantity int, unitWeightKg float64) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductRef(productRef),
		item.setQuantity(quantity),
		item.setUnitWeight(unitWeightKg),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistent storage, including
// its sub-statuses and attached complaints.
func RestoreItem(
	productRef string,
	quantity int,
	unitWeightKg float64,
	packingStatus PackingStatus,
	storageStatus StorageStatus,
	packingComplaints []kernel.UUID,
	storageComplaints []kernel.UUID,
) (*Item, error) {
	item, err := NewItem(productRef, quantity, unitWeightKg)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(packingStatus.Validate(), storageStatus.Validate()); err != nil {
		return nil, err
	}

	item.packingStatus = packingStatus
	item.storageStatus = storageStatus
	item.packingComplaints = append([]kernel.UUID(nil), packingComplaints...)
	item.storageComplaints = append([]kernel.UUID(nil), storageComplaints...)
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductRef returns the external catalog reference.
func (i *Item) ProductRef() string {
	return i.productRef
}

// Quantity returns the ordered unit count.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitWeightKg returns the weight of a single unit in kilograms.
func (i *Item) UnitWeightKg() float64 {
	return i.unitWeightKg
}

// TotalWeightKg returns the weight of the full line.
func (i *Item) TotalWeightKg() float64 {
	return i.unitWeightKg * float64(i.quantity)
}

// PackingStatus returns the packing-stage sub-state.
func (i *Item) PackingStatus() PackingStatus {
	return i.packingStatus
}

// StorageStatus returns the storage-verification sub-state.
func (i *Item) StorageStatus() StorageStatus {
	return i.storageStatus
}

// PackingComplaints returns the complaints filed during packing.
// The returned slice is a copy.
func (i *Item) PackingComplaints() []kernel.UUID {
	return append([]kernel.UUID(nil), i.packingComplaints...)
}

// StorageComplaints returns the complaints filed during storage verification.
// The returned slice is a copy.
func (i *Item) StorageComplaints() []kernel.UUID {
	return append([]kernel.UUID(nil), i.storageComplaints...)
}

// markPacked sets packingStatus to Packed.
// Rejected while the item carries a packing complaint: the complaint parked
// the item and the sub-status stays unset until a manager resolves it.
func (i *Item) markPacked() error {
	if len(i.packingComplaints) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("packingStatus",
			fmt.Errorf("item %q has an open packing complaint", i.productRef))
	}
	i.packingStatus = Packed
	return nil
}

// markUnavailable sets packingStatus to Unavailable.
func (i *Item) markUnavailable() error {
	if len(i.packingComplaints) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("packingStatus",
			fmt.Errorf("item %q has an open packing complaint", i.productRef))
	}
	i.packingStatus = Unavailable
	return nil
}

// markVerified sets storageStatus to Verified.
// Rejected while the item carries a storage complaint.
func (i *Item) markVerified() error {
	if len(i.storageComplaints) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("storageStatus",
			fmt.Errorf("item %q has an open storage complaint", i.productRef))
	}
	i.storageStatus = Verified
	return nil
}

// attachPackingComplaint parks the item under a packing complaint.
// The sub-status resets to unset: complaint and packed state are exclusive.
func (i *Item) attachPackingComplaint(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	i.packingStatus = PackingUnset
	i.packingComplaints = append(i.packingComplaints, complaintID)
	return nil
}

// attachStorageComplaint parks the item under a storage complaint.
func (i *Item) attachStorageComplaint(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	i.storageStatus = StorageUnset
	i.storageComplaints = append(i.storageComplaints, complaintID)
	return nil
}

// resolvedForPacking reports whether the item no longer blocks the packing
// gate: packed, unavailable, or parked under a packing complaint.
func (i *Item) resolvedForPacking() bool {
	return i.packingStatus == Packed ||
		i.packingStatus == Unavailable ||
		len(i.packingComplaints) > 0
}

// resolvedForStorage reports whether the item no longer blocks the
// verification gate: verified or parked under a storage complaint.
func (i *Item) resolvedForStorage() bool {
	return i.storageStatus == Verified || len(i.storageComplaints) > 0
}

// setProductRef validates and sets the catalog reference.
func (i *Item) setProductRef(productRef string) error {
	if productRef == "" {
		return errs.NewValueIsRequiredError("productRef")
	}
	i.productRef = productRef
	return nil
}

// setQuantity validates and sets the unit count.
func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// setUnitWeight validates and sets the per-unit weight.
func (i *Item) setUnitWeight(unitWeightKg float64) error {
	if unitWeightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitWeightKg",
			fmt.Errorf("%g is negative", unitWeightKg))
	}
	i.unitWeightKg = unitWeightKg
	return nil
}
