package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Stage represents the canonical lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the fulfillment workflow stage by stage.
//
// Happy path:
//
//	order-confirmed -> picking-order -> ready-to-pickup -> allocated-driver
//	  -> assigned-dispatch-officer-2 -> order-picked-up -> on-way
//	  -> driver-confirmed -> order-complete
//
// Branch states (order-refunded, complain-order, issue-driver,
// parcel-returned) are reachable from any non-terminal stage.
// CartNotPaid and OrderMadeNotPaid exist only before confirmation.
//
// The stage pointer is monotonic: once an order moves past a stage, the
// transition cannot be replayed.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// CartNotPaid is a pre-confirmation state: the cart exists but payment
	// has not happened.
	CartNotPaid

	// OrderMadeNotPaid is a pre-confirmation state: the order was placed
	// but payment has not cleared.
	OrderMadeNotPaid

	// Confirmed is the entry point of the fulfillment workflow.
	Confirmed

	// Picking indicates packing staff are working through the item list.
	Picking

	// ReadyToPickup indicates packing finished and the order was handed to
	// storage for verification and then to dispatch.
	ReadyToPickup

	// DriverAllocated indicates the scheduler committed a vehicle and driver.
	DriverAllocated

	// DispatchOfficerAssigned indicates the second dispatch officer took over
	// the handover of the parcels to the driver.
	DispatchOfficerAssigned

	// PickedUp indicates the driver accepted and collected the parcels.
	PickedUp

	// OnWay indicates the driver is en route to the customer.
	OnWay

	// DriverConfirmed indicates the driver confirmed arrival and is
	// collecting delivery proof.
	DriverConfirmed

	// Completed is the final state of a successful delivery.
	Completed

	// Refunded is a terminal branch state for refunded orders.
	Refunded

	// Complained is a branch state for orders pulled out of the flow by a
	// blocking complaint.
	Complained

	// DriverIssue is a branch state for orders stuck on a driver problem.
	DriverIssue

	// Returned is a terminal branch state for parcels sent back.
	Returned
)

// stageStrings maps stages to the wire strings persisted and exposed over
// the API. These strings round-trip unchanged.
func stageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:                 "unknown",
		CartNotPaid:             "cart-not-paid",
		OrderMadeNotPaid:        "order-made-not-paid",
		Confirmed:               "order-confirmed",
		Picking:                 "picking-order",
		ReadyToPickup:           "ready-to-pickup",
		DriverAllocated:         "allocated-driver",
		DispatchOfficerAssigned: "assigned-dispatch-officer-2",
		PickedUp:                "order-picked-up",
		OnWay:                   "on-way",
		DriverConfirmed:         "driver-confirmed",
		Completed:               "order-complete",
		Refunded:                "order-refunded",
		Complained:              "complain-order",
		DriverIssue:             "issue-driver",
		Returned:                "parcel-returned",
	}
}

// StageFromString parses a wire string back into a Stage.
// Returns an error for unrecognized strings so unknown statuses never fall
// through silently.
func StageFromString(s string) (Stage, error) {
	for stage, str := range stageStrings() {
		if stage == Unknown {
			continue
		}
		if str == s {
			return stage, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("stage",
		fmt.Errorf("%q is not a known stage", s))
}

// String returns the wire representation of the stage.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Stage) String() string {
	if str, ok := stageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Stage holds one of the defined lifecycle values.
func (s Stage) Validate() error {
	if s <= Unknown || s > Returned {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// IsTerminal reports whether the stage accepts no further transitions.
func (s Stage) IsTerminal() bool {
	return s == Completed || s == Refunded || s == Returned
}

// IsBranch reports whether the stage is one of the out-of-band branch states.
func (s Stage) IsBranch() bool {
	return s == Refunded || s == Complained || s == DriverIssue || s == Returned
}

// forwardOrder assigns a rank to each happy-path stage. The rank enforces the
// monotonic stage pointer: a forward transition is only legal from the stage
// directly before it, and a stage already passed can never be re-entered.
func forwardOrder() map[Stage]int {
	return map[Stage]int{
		CartNotPaid:             0,
		OrderMadeNotPaid:        0,
		Confirmed:               1,
		Picking:                 2,
		ReadyToPickup:           3,
		DriverAllocated:         4,
		DispatchOfficerAssigned: 5,
		PickedUp:                6,
		OnWay:                   7,
		DriverConfirmed:         8,
		Completed:               9,
	}
}

// IsAfter reports whether the stage sits past another stage on the happy path.
// Branch states are not ordered and always compare false.
func (s Stage) IsAfter(other Stage) bool {
	order := forwardOrder()
	sRank, ok1 := order[s]
	oRank, ok2 := order[other]
	return ok1 && ok2 && sRank > oRank
}

// Advance transitions to the next happy-path stage.
// The only legal call is from the stage directly preceding next; everything
// else is an InvalidTransitionError.
func (s Stage) Advance(next Stage) (Stage, error) {
	order := forwardOrder()
	fromRank, okFrom := order[s]
	toRank, okTo := order[next]

	if !okFrom || !okTo || toRank != fromRank+1 {
		return Unknown, NewInvalidTransitionError(s, next)
	}
	return next, nil
}

// Branch transitions to one of the branch states.
// Legal from any non-terminal stage; target must be a branch state.
func (s Stage) Branch(target Stage) (Stage, error) {
	if !target.IsBranch() {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	if s.IsTerminal() {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// Confirm transitions a pre-confirmation stage to Confirmed.
func (s Stage) Confirm() (Stage, error) {
	if s != CartNotPaid && s != OrderMadeNotPaid {
		return Unknown, NewInvalidTransitionError(s, Confirmed)
	}
	return Confirmed, nil
}
