package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order workflow. Specialized error types below
// unwrap to these so callers can classify failures with errors.Is.
var (
	// ErrInvalidTransition indicates a stage transition whose gate is not
	// satisfied or that does not exist in the state machine.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrAlreadyPacked indicates a packing start on an order whose packing
	// stage already passed.
	ErrAlreadyPacked = errors.New("order is already packed")

	// ErrAlreadyAssigned indicates an assignment commit on an order that
	// already left the assignable stage.
	ErrAlreadyAssigned = errors.New("order is already assigned")

	// ErrIncompletePacking indicates a packing completion while items are
	// still neither packed, unavailable, nor under complaint.
	ErrIncompletePacking = errors.New("packing is incomplete")

	// ErrIncompleteVerification indicates a verification completion while
	// items are still neither verified nor under complaint.
	ErrIncompleteVerification = errors.New("verification is incomplete")

	// ErrInvalidItemIndex indicates an item operation outside the item list.
	ErrInvalidItemIndex = errors.New("item index is out of range")

	// ErrIncompleteProof indicates a delivery completion with required proof
	// slots still unfilled.
	ErrIncompleteProof = errors.New("delivery proof is incomplete")

	// ErrNotConfirmed indicates a delivery completion without the customer
	// confirmation flag.
	ErrNotConfirmed = errors.New("delivery is not confirmed by customer")

	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// InvalidTransitionError names the exact transition that was rejected.
type InvalidTransitionError struct {
	From Stage
	To   Stage
}

// NewInvalidTransitionError creates an error for a rejected stage transition.
func NewInvalidTransitionError(from, to Stage) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.From, e.To)
}

// Unwrap returns ErrInvalidTransition for errors.Is classification.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidItemIndexError names the out-of-range index and the list size.
type InvalidItemIndexError struct {
	Index int
	Count int
}

// NewInvalidItemIndexError creates an error for an item index outside [0, count).
func NewInvalidItemIndexError(index, count int) *InvalidItemIndexError {
	return &InvalidItemIndexError{Index: index, Count: count}
}

func (e *InvalidItemIndexError) Error() string {
	return fmt.Sprintf("item index is out of range: %d of %d items", e.Index, e.Count)
}

// Unwrap returns ErrInvalidItemIndex for errors.Is classification.
func (e *InvalidItemIndexError) Unwrap() error {
	return ErrInvalidItemIndex
}

// IncompleteStageError lists the item indices that block a stage gate.
type IncompleteStageError struct {
	sentinel error
	Pending  []int
}

// NewIncompletePackingError creates a gate failure naming the unpacked items.
func NewIncompletePackingError(pending []int) *IncompleteStageError {
	return &IncompleteStageError{sentinel: ErrIncompletePacking, Pending: pending}
}

// NewIncompleteVerificationError creates a gate failure naming the unverified items.
func NewIncompleteVerificationError(pending []int) *IncompleteStageError {
	return &IncompleteStageError{sentinel: ErrIncompleteVerification, Pending: pending}
}

func (e *IncompleteStageError) Error() string {
	return fmt.Sprintf("%s: pending items %v", e.sentinel, e.Pending)
}

// Unwrap returns the stage-specific sentinel for errors.Is classification.
func (e *IncompleteStageError) Unwrap() error {
	return e.sentinel
}

// IncompleteProofError lists the required proof slots that are still empty.
type IncompleteProofError struct {
	Missing []ProofSlot
}

// NewIncompleteProofError creates a gate failure naming the missing slots.
func NewIncompleteProofError(missing []ProofSlot) *IncompleteProofError {
	return &IncompleteProofError{Missing: missing}
}

func (e *IncompleteProofError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, slot := range e.Missing {
		names = append(names, slot.String())
	}
	return fmt.Sprintf("delivery proof is incomplete: missing %v", names)
}

// Unwrap returns ErrIncompleteProof for errors.Is classification.
func (e *IncompleteProofError) Unwrap() error {
	return ErrIncompleteProof
}
