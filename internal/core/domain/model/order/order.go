package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// highValueThresholdCents marks the order value above which priority is
// raised to high regardless of the delivery slot.
const highValueThresholdCents = 100_000

// Order is the aggregate root of the fulfillment workflow. It owns the line
// items, the stage pointer, the transition audit trail, and the delivery
// proof bundle, and it is the only place where stage gates are enforced.
//
// Invariants:
//   - The stage pointer is monotonic on the happy path; no transition is
//     replayed once the order moved past it. The driver reject/re-offer
//     path is the single sanctioned backward move.
//   - Every forward transition requires the gate of the stage it leaves.
//   - Every mutation bumps the version, so observers can detect change
//     with a single integer comparison.
//   - Once verification is completed, the verification state is read-only.
//   - Once the order completes, the proof bundle is frozen.
//
// Order can only be created through NewOrder or RestoreOrder.
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID
	// customerRef identifies the customer at the external profile service
	customerRef string
	// items are the ordered lines
	items []*Item
	// address is the delivery address
	address string
	// deliveryAt is the promised delivery date
	deliveryAt time.Time
	// timeSlot is the promised delivery window, e.g. "14:00-16:00"
	timeSlot string
	// totalCents is the monetary total in minor units
	totalCents int64
	// priority is derived from time-to-delivery and value
	priority Priority
	// stage is the canonical lifecycle state
	stage Stage
	// version increases on every mutation (optimistic concurrency token)
	version int64
	// loadedVersion is the version the aggregate carried at construction;
	// storage compares-and-swaps against it on write
	loadedVersion int64
	// updatedAt is the time of the last mutation
	updatedAt time.Time
	// packingNotes are frozen when packing completes
	packingNotes string
	// storageNotes are frozen when verification completes
	storageNotes string
	// storageLocation is where the parcels wait for dispatch
	storageLocation string
	// verificationStarted marks that the storage officer began verification
	verificationStarted bool
	// verificationFinalized makes the verification state read-only
	verificationFinalized bool
	// requirement is the aggregate (packages, weight, volume) the order needs
	requirement kernel.Capacity
	// vehicleID is the committed vehicle (nil before assignment)
	vehicleID *kernel.UUID
	// officerID is the second dispatch officer (nil before hand-over)
	officerID *kernel.UUID
	// driverID is the allocated driver (nil before allocation)
	driverID *kernel.UUID
	// rejectionReason keeps the last driver rejection reason
	rejectionReason string
	// proof is the delivery-proof checklist, opened at arrival
	proof *ProofBundle
	// transitions is the append-only audit trail
	transitions []Transition
	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a confirmed order ready for packing.
//
// The aggregate requirement is computed from the items (package count and
// weight) plus the measured volume supplied by the catalog collaborator.
// Priority is derived immediately from the delivery date and total.
func NewOrder(
	id kernel.UUID,
	customerRef string,
	items []*Item,
	address string,
	deliveryAt time.Time,
	timeSlot string,
	totalCents int64,
	volumeM3 float64,
	now time.Time,
) (*Order, error) {
	o := &Order{
		stage:         Confirmed,
		version:       1,
		loadedVersion: 1,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerRef(customerRef),
		o.setItems(items),
		o.setAddress(address),
		o.setDeliveryAt(deliveryAt),
		o.setTotal(totalCents),
	); err != nil {
		return nil, err
	}

	requirement, err := o.computeRequirement(volumeM3)
	if err != nil {
		return nil, err
	}
	o.requirement = requirement
	o.timeSlot = timeSlot
	o.updatedAt = now
	o.priority = derivePriority(deliveryAt, totalCents, now)
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage with
// its complete state, including sub-statuses, audit trail, and proof bundle.
func RestoreOrder(
	id kernel.UUID,
	customerRef string,
	items []*Item,
	address string,
	deliveryAt time.Time,
	timeSlot string,
	totalCents int64,
	priority Priority,
	stage Stage,
	version int64,
	updatedAt time.Time,
	packingNotes string,
	storageNotes string,
	storageLocation string,
	verificationStarted bool,
	verificationFinalized bool,
	requirement kernel.Capacity,
	vehicleID *kernel.UUID,
	officerID *kernel.UUID,
	driverID *kernel.UUID,
	rejectionReason string,
	proof *ProofBundle,
	transitions []Transition,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerRef(customerRef),
		o.setItems(items),
		o.setAddress(address),
		o.setDeliveryAt(deliveryAt),
		o.setTotal(totalCents),
		stage.Validate(),
		priority.Validate(),
		requirement.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}

	o.timeSlot = timeSlot
	o.priority = priority
	o.stage = stage
	o.version = version
	o.loadedVersion = version
	o.updatedAt = updatedAt
	o.packingNotes = packingNotes
	o.storageNotes = storageNotes
	o.storageLocation = storageLocation
	o.verificationStarted = verificationStarted
	o.verificationFinalized = verificationFinalized
	o.requirement = requirement
	o.vehicleID = vehicleID
	o.officerID = officerID
	o.driverID = driverID
	o.rejectionReason = rejectionReason
	o.proof = proof
	o.transitions = append([]Transition(nil), transitions...)
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerRef returns the external customer reference.
func (o *Order) CustomerRef() string {
	return o.customerRef
}

// Items returns the line items. The slice is a copy; items themselves are
// only mutated through the aggregate's operations.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// DeliveryAt returns the promised delivery date.
func (o *Order) DeliveryAt() time.Time {
	return o.deliveryAt
}

// TimeSlot returns the promised delivery window.
func (o *Order) TimeSlot() string {
	return o.timeSlot
}

// TotalCents returns the monetary total in minor units.
func (o *Order) TotalCents() int64 {
	return o.totalCents
}

// Priority returns the derived dispatch priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Stage returns the canonical lifecycle state.
func (o *Order) Stage() Stage {
	return o.stage
}

// Version returns the optimistic-concurrency token. Observers compare it
// against a previously seen value to detect change cheaply.
func (o *Order) Version() int64 {
	return o.version
}

// LoadedVersion returns the version the aggregate carried when it was
// constructed or restored. Storage uses it as the compare-and-swap token:
// a write only lands while the stored row still holds this version, no
// matter how many mutations the operation stacked in memory.
func (o *Order) LoadedVersion() int64 {
	return o.loadedVersion
}

// MarkStored records that the current state has been persisted, advancing
// the compare-and-swap token so a follow-up write by the same holder lands.
func (o *Order) MarkStored() {
	o.loadedVersion = o.version
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// PackingNotes returns the notes frozen at packing completion.
func (o *Order) PackingNotes() string {
	return o.packingNotes
}

// StorageNotes returns the notes frozen at verification completion.
func (o *Order) StorageNotes() string {
	return o.storageNotes
}

// StorageLocation returns where the parcels wait for dispatch.
func (o *Order) StorageLocation() string {
	return o.storageLocation
}

// VerificationStarted reports whether the storage officer began verification.
func (o *Order) VerificationStarted() bool {
	return o.verificationStarted
}

// VerificationFinalized reports whether the verification state is read-only.
func (o *Order) VerificationFinalized() bool {
	return o.verificationFinalized
}

// Requirement returns the aggregate capacity the order needs from a vehicle.
func (o *Order) Requirement() kernel.Capacity {
	return o.requirement
}

// Vehicle returns the committed vehicle's ID, nil before assignment.
func (o *Order) Vehicle() *kernel.UUID {
	return o.vehicleID
}

// Officer returns the second dispatch officer's ID, nil before hand-over.
func (o *Order) Officer() *kernel.UUID {
	return o.officerID
}

// Driver returns the allocated driver's ID, nil before allocation.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// RejectionReason returns the last driver rejection reason, empty if none.
func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

// Proof returns the delivery-proof bundle, nil before arrival.
func (o *Order) Proof() *ProofBundle {
	return o.proof
}

// Transitions returns a copy of the audit trail.
func (o *Order) Transitions() []Transition {
	return append([]Transition(nil), o.transitions...)
}

// Confirm moves a pre-confirmation order into the workflow.
func (o *Order) Confirm(actor kernel.Actor, now time.Time) error {
	next, err := o.stage.Confirm()
	if err != nil {
		return err
	}
	o.move(next, actor, now)
	return nil
}

// StartPacking moves the order into the picking stage and records the actor.
//
// The operation is idempotent: calling it again while the order is already
// picking is a no-op. Calling it after the packing stage passed fails with
// ErrAlreadyPacked.
func (o *Order) StartPacking(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	switch {
	case o.stage == Picking:
		return nil // resuming packing is a no-op
	case o.stage == Confirmed:
		next, err := o.stage.Advance(Picking)
		if err != nil {
			return err
		}
		o.move(next, actor, now)
		return nil
	case o.stage.IsAfter(Picking):
		return ErrAlreadyPacked
	default:
		return NewInvalidTransitionError(o.stage, Picking)
	}
}

// MarkItemPacked sets an item's packing status to packed.
// Only legal during the picking stage and while the item carries no open
// packing complaint.
func (o *Order) MarkItemPacked(itemIndex int, actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.requirePickingStage(); err != nil {
		return err
	}
	item, err := o.itemAt(itemIndex)
	if err != nil {
		return err
	}
	if err = item.markPacked(); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// MarkItemUnavailable sets an item's packing status to unavailable.
func (o *Order) MarkItemUnavailable(itemIndex int, actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.requirePickingStage(); err != nil {
		return err
	}
	item, err := o.itemAt(itemIndex)
	if err != nil {
		return err
	}
	if err = item.markUnavailable(); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// AttachPackingComplaint parks an item under a packing complaint instead of
// packing it. The item stops blocking the packing gate but stays visible
// downstream.
func (o *Order) AttachPackingComplaint(itemIndex int, complaintID kernel.UUID, now time.Time) error {
	if err := o.requirePickingStage(); err != nil {
		return err
	}
	item, err := o.itemAt(itemIndex)
	if err != nil {
		return err
	}
	if err = item.attachPackingComplaint(complaintID); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// CompletePacking closes the packing stage and hands the order to storage.
//
// Gate: every item must be packed, unavailable, or parked under a packing
// complaint; otherwise the call fails with an IncompleteStageError naming
// the pending item indices. On success the packing notes are frozen.
func (o *Order) CompletePacking(notes string, actor kernel.Actor, now time.Time) error {
	if err := o.requirePickingStage(); err != nil {
		return err
	}

	var pending []int
	for i, item := range o.items {
		if !item.resolvedForPacking() {
			pending = append(pending, i)
		}
	}
	if len(pending) > 0 {
		return NewIncompletePackingError(pending)
	}

	next, err := o.stage.Advance(ReadyToPickup)
	if err != nil {
		return err
	}
	o.packingNotes = notes
	o.move(next, actor, now)
	return nil
}

// StartVerification records that the storage officer began checking items.
//
// Idempotent: repeating the call while verification is underway is a no-op.
// Fails with an ObjectFinalizedError once verification completed.
func (o *Order) StartVerification(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.requireVerificationStage(); err != nil {
		return err
	}
	if o.verificationStarted {
		return nil // resuming verification is a no-op
	}
	o.verificationStarted = true
	o.touch(now)
	return nil
}

// VerifyItem sets an item's storage status to verified.
func (o *Order) VerifyItem(itemIndex int, actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.requireVerificationStage(); err != nil {
		return err
	}
	item, err := o.itemAt(itemIndex)
	if err != nil {
		return err
	}
	if err = item.markVerified(); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// AttachStorageComplaint parks an item under a storage complaint. A storage
// complaint annotates the verification gate rather than blocking it.
func (o *Order) AttachStorageComplaint(itemIndex int, complaintID kernel.UUID, now time.Time) error {
	if err := o.requireVerificationStage(); err != nil {
		return err
	}
	item, err := o.itemAt(itemIndex)
	if err != nil {
		return err
	}
	if err = item.attachStorageComplaint(complaintID); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// CompleteVerification closes storage verification and hands the order to
// dispatch. This is the hand-off point: afterwards the verification state
// is read-only and the order becomes assignable.
//
// Gate: every item must be verified or parked under a storage complaint.
func (o *Order) CompleteVerification(notes, location string, actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.requireVerificationStage(); err != nil {
		return err
	}

	var pending []int
	for i, item := range o.items {
		if !item.resolvedForStorage() {
			pending = append(pending, i)
		}
	}
	if len(pending) > 0 {
		return NewIncompleteVerificationError(pending)
	}

	o.storageNotes = notes
	o.storageLocation = location
	o.verificationStarted = true
	o.verificationFinalized = true
	o.touch(now)
	return nil
}

// Assign commits a vehicle and driver chosen by the scheduler.
//
// Only legal from the assignable stage (ready for pickup with verification
// completed). An order that already left the assignable stage fails with
// ErrAlreadyAssigned so concurrent dispatchers lose cleanly.
func (o *Order) Assign(vehicleID, driverID kernel.UUID, actor kernel.Actor, now time.Time) error {
	if err := errors.Join(vehicleID.Validate(), driverID.Validate(), actor.Validate()); err != nil {
		return err
	}

	if o.stage.IsAfter(ReadyToPickup) {
		return ErrAlreadyAssigned
	}
	if o.stage != ReadyToPickup {
		return NewInvalidTransitionError(o.stage, DriverAllocated)
	}
	if !o.verificationFinalized {
		return NewInvalidTransitionError(o.stage, DriverAllocated)
	}

	next, err := o.stage.Advance(DriverAllocated)
	if err != nil {
		return err
	}
	o.vehicleID = &vehicleID
	o.driverID = &driverID
	o.rejectionReason = ""
	o.move(next, actor, now)
	return nil
}

// AssignDispatchOfficer records the second dispatch officer taking over the
// parcel hand-over to the allocated driver.
func (o *Order) AssignDispatchOfficer(officerID kernel.UUID, actor kernel.Actor, now time.Time) error {
	if err := errors.Join(officerID.Validate(), actor.Validate()); err != nil {
		return err
	}
	next, err := o.stage.Advance(DispatchOfficerAssigned)
	if err != nil {
		return err
	}
	o.officerID = &officerID
	o.move(next, actor, now)
	return nil
}

// AcceptByDriver records the allocated driver accepting and collecting the
// parcels. The accepting driver must be the one the scheduler allocated.
func (o *Order) AcceptByDriver(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("driver %s is not allocated to order %s", driverID, o.id))
	}

	next, err := o.stage.Advance(PickedUp)
	if err != nil {
		return err
	}
	actor, _ := kernel.NewActor(driverID.String(), "")
	o.move(next, actor, now)
	return nil
}

// RejectByDriver returns the order to the assignable pool.
//
// This is the single sanctioned backward move of the state machine: the
// order drops back to ready-for-pickup with vehicle, officer, and driver
// references cleared, so the scheduler can re-offer it without manual
// intervention. The caller is responsible for releasing the driver's and
// vehicle's load in the same transaction.
func (o *Order) RejectByDriver(driverID kernel.UUID, reason string, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.stage != DriverAllocated && o.stage != DispatchOfficerAssigned {
		return NewInvalidTransitionError(o.stage, ReadyToPickup)
	}
	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("driver %s is not allocated to order %s", driverID, o.id))
	}

	actor, _ := kernel.NewActor(driverID.String(), "")
	o.vehicleID = nil
	o.officerID = nil
	o.driverID = nil
	o.rejectionReason = reason
	o.record(o.stage, ReadyToPickup, actor, now)
	o.stage = ReadyToPickup
	o.touch(now)
	return nil
}

// MarkOnWay records the driver leaving for the customer.
func (o *Order) MarkOnWay(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	next, err := o.stage.Advance(OnWay)
	if err != nil {
		return err
	}
	o.move(next, actor, now)
	return nil
}

// MarkArrived records arrival at the customer and opens the proof bundle.
//
// Idempotent: repeating the call while already arrived is a no-op.
func (o *Order) MarkArrived(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if o.stage == DriverConfirmed && o.proof != nil {
		return nil // already arrived
	}

	next, err := o.stage.Advance(DriverConfirmed)
	if err != nil {
		return err
	}
	proof, err := NewProofBundle(now)
	if err != nil {
		return err
	}
	o.proof = proof
	o.move(next, actor, now)
	return nil
}

// FillProofSlot marks one evidence slot of the proof bundle as uploaded.
func (o *Order) FillProofSlot(slot ProofSlot, now time.Time) error {
	if err := o.requireProofStage(); err != nil {
		return err
	}
	if err := o.proof.Fill(slot); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// FlagDeliveryComplaint raises the delivery complaint flag, making the
// complaint-video slot a required part of the proof checklist.
func (o *Order) FlagDeliveryComplaint(now time.Time) error {
	if err := o.requireProofStage(); err != nil {
		return err
	}
	if err := o.proof.FlagComplaint(); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// ConfirmByCustomer records the customer acknowledging the handover with a
// satisfaction score.
func (o *Order) ConfirmByCustomer(satisfaction int, notes string, now time.Time) error {
	if err := o.requireProofStage(); err != nil {
		return err
	}
	if err := o.proof.Confirm(satisfaction, notes); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// CompleteDelivery closes the order.
//
// Gate: every required proof slot filled and the customer confirmation set;
// failures name the missing requirement. Completion freezes the proof
// bundle and is terminal.
func (o *Order) CompleteDelivery(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.requireProofStage(); err != nil {
		return err
	}

	if err := o.proof.Finalize(); err != nil {
		return err
	}

	next, err := o.stage.Advance(Completed)
	if err != nil {
		return err
	}
	o.move(next, actor, now)
	return nil
}

// Refund branches the order into the refunded terminal state.
func (o *Order) Refund(actor kernel.Actor, now time.Time) error {
	return o.branch(Refunded, actor, now)
}

// FlagComplaint pulls the order out of the flow under a blocking complaint.
func (o *Order) FlagComplaint(actor kernel.Actor, now time.Time) error {
	return o.branch(Complained, actor, now)
}

// FlagDriverIssue parks the order on a driver problem.
func (o *Order) FlagDriverIssue(actor kernel.Actor, now time.Time) error {
	return o.branch(DriverIssue, actor, now)
}

// MarkReturned branches the order into the returned terminal state.
func (o *Order) MarkReturned(actor kernel.Actor, now time.Time) error {
	return o.branch(Returned, actor, now)
}

// RecomputePriority re-derives the dispatch priority as the delivery slot
// approaches. Returns true when the priority changed.
func (o *Order) RecomputePriority(now time.Time) bool {
	if o.stage.IsTerminal() {
		return false
	}
	next := derivePriority(o.deliveryAt, o.totalCents, now)
	if next == o.priority {
		return false
	}
	o.priority = next
	o.touch(now)
	return true
}

// IsAssignable reports whether the scheduler may commit an assignment:
// the order waits in the ready-for-pickup pool with verification completed.
func (o *Order) IsAssignable() bool {
	return o.stage == ReadyToPickup && o.verificationFinalized
}

// branch moves the order to a branch state from any non-terminal stage.
func (o *Order) branch(target Stage, actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	next, err := o.stage.Branch(target)
	if err != nil {
		return err
	}
	o.move(next, actor, now)
	return nil
}

// requirePickingStage guards item-level packing operations.
func (o *Order) requirePickingStage() error {
	if o.stage != Picking {
		return NewInvalidTransitionError(o.stage, Picking)
	}
	return nil
}

// requireVerificationStage guards item-level verification operations.
// Finalized verification stays readable but rejects writes.
func (o *Order) requireVerificationStage() error {
	if o.verificationFinalized {
		return errs.NewObjectFinalizedError("verification", o.id.String())
	}
	if o.stage != ReadyToPickup {
		return NewInvalidTransitionError(o.stage, ReadyToPickup)
	}
	return nil
}

// requireProofStage guards proof-bundle operations.
func (o *Order) requireProofStage() error {
	if o.stage != DriverConfirmed || o.proof == nil {
		return NewInvalidTransitionError(o.stage, DriverConfirmed)
	}
	return nil
}

// itemAt returns the item at index or an InvalidItemIndexError.
func (o *Order) itemAt(index int) (*Item, error) {
	if index < 0 || index >= len(o.items) {
		return nil, NewInvalidItemIndexError(index, len(o.items))
	}
	return o.items[index], nil
}

// move applies a stage change with its audit record and version bump.
func (o *Order) move(next Stage, actor kernel.Actor, now time.Time) {
	o.record(o.stage, next, actor, now)
	o.stage = next
	o.touch(now)
}

// record appends an audit-trail entry.
func (o *Order) record(from, to Stage, actor kernel.Actor, now time.Time) {
	o.transitions = append(o.transitions, NewTransition(from, to, actor, now))
}

// touch bumps the version and the update timestamp.
func (o *Order) touch(now time.Time) {
	o.version++
	o.updatedAt = now
}

// computeRequirement derives the capacity triple from the items plus the
// measured volume.
func (o *Order) computeRequirement(volumeM3 float64) (kernel.Capacity, error) {
	packages := 0
	weight := 0.0
	for _, item := range o.items {
		packages += item.Quantity()
		weight += item.TotalWeightKg()
	}
	return kernel.NewCapacity(packages, weight, volumeM3)
}

// derivePriority ranks the order by urgency and value.
func derivePriority(deliveryAt time.Time, totalCents int64, now time.Time) Priority {
	untilDelivery := deliveryAt.Sub(now)
	switch {
	case untilDelivery <= 4*time.Hour:
		return PriorityUrgent
	case untilDelivery <= 24*time.Hour || totalCents >= highValueThresholdCents:
		return PriorityHigh
	case untilDelivery <= 72*time.Hour:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// setID validates and sets the identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerRef validates and sets the customer reference.
func (o *Order) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return errs.NewValueIsRequiredError("customerRef")
	}
	o.customerRef = customerRef
	return nil
}

// setItems validates and sets the line items.
func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}

// setAddress validates and sets the delivery address.
func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

// setDeliveryAt validates and sets the promised delivery date.
func (o *Order) setDeliveryAt(deliveryAt time.Time) error {
	if deliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveryAt")
	}
	o.deliveryAt = deliveryAt
	return nil
}

// setTotal validates and sets the monetary total.
func (o *Order) setTotal(totalCents int64) error {
	if totalCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCents",
			fmt.Errorf("%d is negative", totalCents))
	}
	o.totalCents = totalCents
	return nil
}
