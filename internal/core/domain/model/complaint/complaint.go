package complaint

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrComplaintIsNotConstructed is returned when a Complaint was not created
// through NewComplaint or RestoreComplaint.
var ErrComplaintIsNotConstructed = errors.New("Complaint must be created via NewComplaint constructor")

// Complaint is the aggregate root of the complaint sub-workflow. A complaint
// is filed against an order, optionally pinned to one of its items, and
// routed to a manager queue derived from the stage it was filed at.
//
// Resolved and escalated complaints are immutable; any further edit fails
// with an ObjectFinalizedError.
//
// Complaint can only be created through NewComplaint or RestoreComplaint.
type Complaint struct {
	// id is the unique identifier of the complaint
	id kernel.UUID
	// orderID is the order the complaint was filed against
	orderID kernel.UUID
	// itemIndex pins the complaint to one line item, nil for order-level
	itemIndex *int
	// stage is the workflow stage the complaint was filed at
	stage Stage
	// category is the free-form kind, e.g. "damaged" or "missing"
	category string
	// detail is the reporter's description
	detail string
	// reporter is who filed the complaint
	reporter kernel.Actor
	// status is the handling state
	status Status
	// priority ranks the complaint inside its queue
	priority Priority
	// notes are the managers' internal remarks, append-only
	notes []string
	// resolution is the closing text, set on resolve or escalate
	resolution string
	// createdAt is when the complaint was filed
	createdAt time.Time
	// updatedAt is the time of the last mutation
	updatedAt time.Time
	// guard ensures the complaint was created via a constructor
	guard guard.ConstructorGuard
}

// NewComplaint files a complaint in the open state.
func NewComplaint(
	id kernel.UUID,
	orderID kernel.UUID,
	itemIndex *int,
	stage Stage,
	category string,
	detail string,
	reporter kernel.Actor,
	priority Priority,
	now time.Time,
) (*Complaint, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		stage.Validate(),
		priority.Validate(),
		reporter.Validate(),
	); err != nil {
		return nil, err
	}
	if detail == "" {
		return nil, errs.NewValueIsRequiredError("detail")
	}
	if itemIndex != nil && *itemIndex < 0 {
		return nil, errs.NewValueIsRequiredError("itemIndex")
	}

	return &Complaint{
		id:        id,
		orderID:   orderID,
		itemIndex: itemIndex,
		stage:     stage,
		category:  category,
		detail:    detail,
		reporter:  reporter,
		status:    Open,
		priority:  priority,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreComplaint reconstructs a complaint from persistent storage.
func RestoreComplaint(
	id kernel.UUID,
	orderID kernel.UUID,
	itemIndex *int,
	stage Stage,
	category string,
	detail string,
	reporter kernel.Actor,
	status Status,
	priority Priority,
	notes []string,
	resolution string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Complaint, error) {
	c, err := NewComplaint(id, orderID, itemIndex, stage, category, detail, reporter, priority, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	c.status = status
	c.notes = append([]string(nil), notes...)
	c.resolution = resolution
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Complaint was created through a constructor.
func (c *Complaint) Validate() error {
	if c == nil {
		return ErrComplaintIsNotConstructed
	}
	return c.guard.Validate(ErrComplaintIsNotConstructed)
}

// IsEqual compares two complaints by their unique identifiers.
func (c *Complaint) IsEqual(other *Complaint) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the complaint's unique identifier.
func (c *Complaint) ID() kernel.UUID {
	return c.id
}

// OrderID returns the order the complaint was filed against.
func (c *Complaint) OrderID() kernel.UUID {
	return c.orderID
}

// ItemIndex returns the pinned line item index, nil for order-level complaints.
func (c *Complaint) ItemIndex() *int {
	return c.itemIndex
}

// Stage returns the workflow stage the complaint was filed at.
func (c *Complaint) Stage() Stage {
	return c.stage
}

// Queue returns the manager queue the complaint routes to.
func (c *Complaint) Queue() Queue {
	return c.stage.Queue()
}

// Category returns the complaint kind.
func (c *Complaint) Category() string {
	return c.category
}

// Detail returns the reporter's description.
func (c *Complaint) Detail() string {
	return c.detail
}

// Reporter returns who filed the complaint.
func (c *Complaint) Reporter() kernel.Actor {
	return c.reporter
}

// Status returns the handling state.
func (c *Complaint) Status() Status {
	return c.status
}

// Priority returns the queue rank.
func (c *Complaint) Priority() Priority {
	return c.priority
}

// Notes returns a copy of the managers' internal remarks.
func (c *Complaint) Notes() []string {
	return append([]string(nil), c.notes...)
}

// Resolution returns the closing text, empty while the complaint is open.
func (c *Complaint) Resolution() string {
	return c.resolution
}

// CreatedAt returns when the complaint was filed.
func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (c *Complaint) UpdatedAt() time.Time {
	return c.updatedAt
}

// Begin moves an open complaint into handling.
// Idempotent while already in progress.
func (c *Complaint) Begin(now time.Time) error {
	if err := c.requireMutable(); err != nil {
		return err
	}
	if c.status == InProgress {
		return nil
	}
	c.status = InProgress
	c.updatedAt = now
	return nil
}

// UpdatePriority re-ranks the complaint inside its queue.
func (c *Complaint) UpdatePriority(priority Priority, now time.Time) error {
	if err := c.requireMutable(); err != nil {
		return err
	}
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	c.updatedAt = now
	return nil
}

// AddNote appends an internal remark.
func (c *Complaint) AddNote(note string, now time.Time) error {
	if err := c.requireMutable(); err != nil {
		return err
	}
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}
	c.notes = append(c.notes, note)
	c.updatedAt = now
	return nil
}

// Resolve closes the complaint with a non-empty resolution text.
// Afterwards the complaint is immutable.
func (c *Complaint) Resolve(resolution string, now time.Time) error {
	if err := c.requireMutable(); err != nil {
		return err
	}
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}
	c.status = Resolved
	c.resolution = resolution
	c.updatedAt = now
	return nil
}

// Escalate hands the complaint off to the external escalation track.
// Unlike Resolve, no text is required: the escalation target owns the
// follow-up, so the reason is a courtesy note. Afterwards the complaint is
// immutable.
func (c *Complaint) Escalate(reason string, now time.Time) error {
	if err := c.requireMutable(); err != nil {
		return err
	}
	c.status = Escalated
	c.resolution = reason
	c.updatedAt = now
	return nil
}

// requireMutable rejects edits to resolved or escalated complaints.
func (c *Complaint) requireMutable() error {
	if c.status.IsTerminal() {
		return errs.NewObjectFinalizedError("complaint", c.id.String())
	}
	return nil
}
