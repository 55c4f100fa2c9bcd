package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrProofBundleIsNotConstructed is returned when a ProofBundle was not
// created through NewProofBundle or RestoreProofBundle.
var ErrProofBundleIsNotConstructed = errors.New("ProofBundle must be created via NewProofBundle constructor")

// ProofSlot names one required evidence artifact of the delivery proof
// checklist. The media bytes live with the external object-storage
// collaborator; the workflow tracks only whether each slot was filled.
type ProofSlot int

const (
	// SlotDeliveryVideo is the video of the handover.
	SlotDeliveryVideo ProofSlot = iota

	// SlotEntrancePhoto is the photo of the building entrance.
	SlotEntrancePhoto

	// SlotReceiptPhoto1 is the first of three receipt photos.
	SlotReceiptPhoto1

	// SlotReceiptPhoto2 is the second receipt photo.
	SlotReceiptPhoto2

	// SlotReceiptPhoto3 is the third receipt photo.
	SlotReceiptPhoto3

	// SlotComplaintVideo is required only when a complaint was flagged
	// during the delivery stage.
	SlotComplaintVideo
)

func proofSlotStrings() map[ProofSlot]string {
	return map[ProofSlot]string{
		SlotDeliveryVideo:  "delivery-video",
		SlotEntrancePhoto:  "entrance-photo",
		SlotReceiptPhoto1:  "receipt-photo-1",
		SlotReceiptPhoto2:  "receipt-photo-2",
		SlotReceiptPhoto3:  "receipt-photo-3",
		SlotComplaintVideo: "complaint-video",
	}
}

// ProofSlotFromString parses the persisted wire form.
func ProofSlotFromString(s string) (ProofSlot, error) {
	for slot, str := range proofSlotStrings() {
		if str == s {
			return slot, nil
		}
	}
	return SlotDeliveryVideo, errs.NewValueIsInvalidErrorWithCause("proofSlot",
		fmt.Errorf("%q is not a known proof slot", s))
}

// String returns the wire representation. Round-trips unchanged.
func (s ProofSlot) String() string {
	if str, ok := proofSlotStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the value is one of the defined slots.
func (s ProofSlot) Validate() error {
	if _, ok := proofSlotStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("proofSlot",
			fmt.Errorf("%d is not a valid proof slot", s))
	}
	return nil
}

// satisfaction score bounds
const (
	satisfactionMin = 1
	satisfactionMax = 5
)

// ProofBundle is the delivery-proof checklist of one order. It is created
// when the driver marks arrival and finalized when the order completes;
// a finalized bundle rejects every mutation.
//
// The complaint-video slot is required only while the complaint flag is
// raised; the other five slots are always required.
type ProofBundle struct {
	// filled records which slots hold uploaded evidence
	filled map[ProofSlot]bool
	// complaintFlagged marks that a complaint was raised during delivery,
	// which makes the complaint-video slot required
	complaintFlagged bool
	// customerConfirmed is set when the customer acknowledges the handover
	customerConfirmed bool
	// satisfaction is the customer's 1..5 score, 0 until confirmed
	satisfaction int
	// notes is the driver's free-text remark
	notes string
	// openedAt is when the driver marked arrival
	openedAt time.Time
	// finalized freezes the bundle once the order completes
	finalized bool
	// guard ensures the bundle was created via a constructor
	guard guard.ConstructorGuard
}

// NewProofBundle opens an empty checklist at the moment of arrival.
func NewProofBundle(openedAt time.Time) (*ProofBundle, error) {
	if openedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("openedAt")
	}
	return &ProofBundle{
		filled:   make(map[ProofSlot]bool),
		openedAt: openedAt,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreProofBundle reconstructs a bundle from persistent storage.
func RestoreProofBundle(
	filled map[ProofSlot]bool,
	complaintFlagged bool,
	customerConfirmed bool,
	satisfaction int,
	notes string,
	openedAt time.Time,
	finalized bool,
) (*ProofBundle, error) {
	bundle, err := NewProofBundle(openedAt)
	if err != nil {
		return nil, err
	}

	for slot, isFilled := range filled {
		if err = slot.Validate(); err != nil {
			return nil, err
		}
		bundle.filled[slot] = isFilled
	}

	bundle.complaintFlagged = complaintFlagged
	bundle.customerConfirmed = customerConfirmed
	bundle.satisfaction = satisfaction
	bundle.notes = notes
	bundle.finalized = finalized
	return bundle, nil
}

// Validate ensures the bundle was created through a constructor.
func (b *ProofBundle) Validate() error {
	if b == nil {
		return ErrProofBundleIsNotConstructed
	}
	return b.guard.Validate(ErrProofBundleIsNotConstructed)
}

// RequiredSlots returns the slots that must be filled right now.
// The complaint video joins the list only while the complaint flag is up.
func (b *ProofBundle) RequiredSlots() []ProofSlot {
	required := []ProofSlot{
		SlotDeliveryVideo,
		SlotEntrancePhoto,
		SlotReceiptPhoto1,
		SlotReceiptPhoto2,
		SlotReceiptPhoto3,
	}
	if b.complaintFlagged {
		required = append(required, SlotComplaintVideo)
	}
	return required
}

// MissingSlots returns the currently-required slots that are still empty.
func (b *ProofBundle) MissingSlots() []ProofSlot {
	var missing []ProofSlot
	for _, slot := range b.RequiredSlots() {
		if !b.filled[slot] {
			missing = append(missing, slot)
		}
	}
	return missing
}

// AllRequiredUploaded reports whether every currently-required slot is filled.
// Pure function of the bundle state.
func (b *ProofBundle) AllRequiredUploaded() bool {
	return len(b.MissingSlots()) == 0
}

// IsFilled reports whether a single slot holds evidence.
func (b *ProofBundle) IsFilled(slot ProofSlot) bool {
	return b.filled[slot]
}

// ComplaintFlagged reports whether a delivery complaint was raised.
func (b *ProofBundle) ComplaintFlagged() bool {
	return b.complaintFlagged
}

// CustomerConfirmed reports whether the customer acknowledged the handover.
func (b *ProofBundle) CustomerConfirmed() bool {
	return b.customerConfirmed
}

// Satisfaction returns the customer's score, 0 until confirmed.
func (b *ProofBundle) Satisfaction() int {
	return b.satisfaction
}

// Notes returns the driver's free-text remark.
func (b *ProofBundle) Notes() string {
	return b.notes
}

// OpenedAt returns when the driver marked arrival.
func (b *ProofBundle) OpenedAt() time.Time {
	return b.openedAt
}

// IsFinalized reports whether the bundle is frozen.
func (b *ProofBundle) IsFinalized() bool {
	return b.finalized
}

// Fill marks a slot as holding uploaded evidence. The upload itself happens
// at the object-storage collaborator; only the boolean lands here.
func (b *ProofBundle) Fill(slot ProofSlot) error {
	if b.finalized {
		return errs.NewObjectFinalizedError("proofBundle", slot.String())
	}
	if err := slot.Validate(); err != nil {
		return err
	}
	b.filled[slot] = true
	return nil
}

// FlagComplaint raises the delivery-complaint flag, making the
// complaint-video slot required.
func (b *ProofBundle) FlagComplaint() error {
	if b.finalized {
		return errs.NewObjectFinalizedError("proofBundle", "complaint flag")
	}
	b.complaintFlagged = true
	return nil
}

// Confirm records the customer's acknowledgement and satisfaction score.
func (b *ProofBundle) Confirm(satisfaction int, notes string) error {
	if b.finalized {
		return errs.NewObjectFinalizedError("proofBundle", "confirmation")
	}
	if satisfaction < satisfactionMin || satisfaction > satisfactionMax {
		return errs.NewValueIsOutOfRangeError("satisfaction", satisfaction, satisfactionMin, satisfactionMax)
	}
	b.customerConfirmed = true
	b.satisfaction = satisfaction
	b.notes = notes
	return nil
}

// Finalize freezes the bundle. Only legal when every required slot is
// filled and the customer confirmed; afterwards all writes fail with
// an ObjectFinalizedError.
func (b *ProofBundle) Finalize() error {
	if b.finalized {
		return errs.NewObjectFinalizedError("proofBundle", "finalize")
	}
	if missing := b.MissingSlots(); len(missing) > 0 {
		return NewIncompleteProofError(missing)
	}
	if !b.customerConfirmed {
		return ErrNotConfirmed
	}
	b.finalized = true
	return nil
}

// FilledSlots returns a copy of the slot flags for persistence.
func (b *ProofBundle) FilledSlots() map[ProofSlot]bool {
	out := make(map[ProofSlot]bool, len(b.filled))
	for slot, isFilled := range b.filled {
		out[slot] = isFilled
	}
	return out
}
