package officer

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// rating bounds
const (
	ratingMin = 0.0
	ratingMax = 5.0
)

// Domain errors for officer operations.
var (
	// ErrNameIsRequired is returned when attempting to create an officer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrOfficerIsNotConstructed is returned when using an improperly initialized Officer.
	ErrOfficerIsNotConstructed = errors.New("Officer must be created via NewOfficer constructor")
	// ErrCapacityExceeded is returned when taking an order would push the
	// officer past the concurrent-assignment cap.
	ErrCapacityExceeded = errors.New("officer capacity exceeded")
	// ErrOrderNotAssigned is returned when releasing an order the officer does not hold.
	ErrOrderNotAssigned = errors.New("order is not assigned to officer")
	// ErrOrderAlreadyAssigned is returned when taking the same order twice.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to officer")
)

// Role splits the staff pool between dispatch officers and drivers.
type Role int

const (
	// RoleDispatch marks second dispatch officers handing parcels to drivers.
	RoleDispatch Role = iota

	// RoleDriver marks drivers carrying parcels to customers.
	RoleDriver
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleDispatch: "dispatch",
		RoleDriver:   "driver",
	}
}

// RoleFromString parses the persisted wire form.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleDispatch, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

// String returns the wire representation. Round-trips unchanged.
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "dispatch"
}

// Validate checks the value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Officer represents one member of the fulfillment staff: a second dispatch
// officer or a driver, split by Role. Both share the same shape: a rating
// and a bounded set of concurrent assignments.
//
// Invariant: currentAssignments never exceeds maxAssignments. The domain
// enforces it in TakeOrder; the SQL layer re-enforces it by compare-and-swapping
// the counter column against loadedAssignments so concurrent transactions
// cannot overshoot.
//
// Officer can only be created through NewOfficer or RestoreOfficer.
type Officer struct {
	// id uniquely identifies the officer
	id kernel.UUID
	// name is the human-readable name
	name string
	// role splits dispatch officers from drivers
	role Role
	// rating is the 0..5 performance score
	rating float64
	// maxAssignments caps the concurrent assignments
	maxAssignments int
	// assigned is the set of orders currently held
	assigned map[kernel.UUID]struct{}
	// loadedAssignments is the assignment count at construction; storage
	// compares-and-swaps against it on write
	loadedAssignments int
	// guard ensures the officer was properly constructed
	guard guard.ConstructorGuard
}

// NewOfficer creates an officer with no assignments.
func NewOfficer(id kernel.UUID, name string, role Role, rating float64, maxAssignments int) (*Officer, error) {
	o := &Officer{
		assigned: make(map[kernel.UUID]struct{}),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setRole(role),
		o.setRating(rating),
		o.setMaxAssignments(maxAssignments),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOfficer reconstructs an officer from persistent storage together
// with the orders currently assigned.
func RestoreOfficer(
	id kernel.UUID,
	name string,
	role Role,
	rating float64,
	maxAssignments int,
	assigned []kernel.UUID,
) (*Officer, error) {
	o, err := NewOfficer(id, name, role, rating, maxAssignments)
	if err != nil {
		return nil, err
	}

	if len(assigned) > maxAssignments {
		return nil, errs.NewValueIsOutOfRangeError("assigned", len(assigned), 0, maxAssignments)
	}
	for _, orderID := range assigned {
		if err = orderID.Validate(); err != nil {
			return nil, err
		}
		o.assigned[orderID] = struct{}{}
	}
	o.loadedAssignments = len(o.assigned)
	return o, nil
}

// Validate ensures the Officer was created through a constructor.
func (o *Officer) Validate() error {
	if o == nil {
		return ErrOfficerIsNotConstructed
	}
	return o.guard.Validate(ErrOfficerIsNotConstructed)
}

// IsEqual compares two officers by their unique identifiers.
func (o *Officer) IsEqual(other *Officer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the officer's unique identifier.
func (o *Officer) ID() kernel.UUID {
	return o.id
}

// Name returns the human-readable name.
func (o *Officer) Name() string {
	return o.name
}

// Role returns whether the officer dispatches or drives.
func (o *Officer) Role() Role {
	return o.role
}

// Rating returns the 0..5 performance score.
func (o *Officer) Rating() float64 {
	return o.rating
}

// CurrentAssignments returns the number of orders currently held.
func (o *Officer) CurrentAssignments() int {
	return len(o.assigned)
}

// LoadedAssignments returns the assignment count the officer carried when it
// was constructed or restored. Storage uses it as the compare-and-swap token
// on the counter column, so two transactions racing for an officer's last
// slot cannot both land.
func (o *Officer) LoadedAssignments() int {
	return o.loadedAssignments
}

// MarkStored records that the current assignment count has been persisted,
// advancing the compare-and-swap token so a follow-up write by the same
// holder lands.
func (o *Officer) MarkStored() {
	o.loadedAssignments = len(o.assigned)
}

// MaxAssignments returns the concurrent-assignment cap.
func (o *Officer) MaxAssignments() int {
	return o.maxAssignments
}

// AssignedOrders returns the IDs of the orders currently held.
func (o *Officer) AssignedOrders() []kernel.UUID {
	out := make([]kernel.UUID, 0, len(o.assigned))
	for orderID := range o.assigned {
		out = append(out, orderID)
	}
	return out
}

// HasCapacity reports whether the officer can take one more order.
func (o *Officer) HasCapacity() bool {
	return len(o.assigned) < o.maxAssignments
}

// LoadRatio returns current over max assignments, the scheduler's primary
// ranking key.
func (o *Officer) LoadRatio() float64 {
	if o.maxAssignments == 0 {
		return 1
	}
	return float64(len(o.assigned)) / float64(o.maxAssignments)
}

// TakeOrder adds an order to the officer's set.
// Fails with ErrCapacityExceeded at the concurrent-assignment cap.
func (o *Officer) TakeOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if _, exists := o.assigned[orderID]; exists {
		return ErrOrderAlreadyAssigned
	}
	if !o.HasCapacity() {
		return ErrCapacityExceeded
	}

	o.assigned[orderID] = struct{}{}
	return nil
}

// ReleaseOrder removes an order from the officer's set.
func (o *Officer) ReleaseOrder(orderID kernel.UUID) error {
	if _, exists := o.assigned[orderID]; !exists {
		return ErrOrderNotAssigned
	}
	delete(o.assigned, orderID)
	return nil
}

// UpdateRating replaces the performance score.
func (o *Officer) UpdateRating(rating float64) error {
	return o.setRating(rating)
}

// setID validates and sets the identifier.
func (o *Officer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setName validates and sets the name.
func (o *Officer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	o.name = name
	return nil
}

// setRole validates and sets the role.
func (o *Officer) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	o.role = role
	return nil
}

// setRating validates and sets the 0..5 score.
func (o *Officer) setRating(rating float64) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	o.rating = rating
	return nil
}

// setMaxAssignments validates and sets the concurrent-assignment cap.
func (o *Officer) setMaxAssignments(maxAssignments int) error {
	if maxAssignments <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxAssignments",
			fmt.Errorf("%d is not greater than 0", maxAssignments))
	}
	o.maxAssignments = maxAssignments
	return nil
}
