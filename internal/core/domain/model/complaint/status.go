package complaint

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the handling state of a complaint.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Open means the complaint was filed and waits for a manager.
	Open

	// InProgress means a manager picked the complaint up.
	InProgress

	// Resolved is the terminal state of a handled complaint.
	Resolved

	// Escalated is the terminal state of a complaint handed off to an
	// external escalation track.
	Escalated
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Open:          "open",
		InProgress:    "in-progress",
		Resolved:      "resolved",
		Escalated:     "escalated",
	}
}

// StatusFromString parses the persisted wire form.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status == StatusUnknown {
			continue
		}
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known complaint status", s))
}

// String returns the wire representation. Round-trips unchanged.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the value is one of the defined statuses.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Escalated {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid complaint status", s))
	}
	return nil
}

// IsTerminal reports whether the status accepts no further edits.
func (s Status) IsTerminal() bool {
	return s == Resolved || s == Escalated
}

// Priority ranks a complaint inside its queue.
type Priority int

const (
	// PriorityLow is the default for cosmetic issues.
	PriorityLow Priority = iota

	// PriorityMedium is for issues that delay but do not block an order.
	PriorityMedium

	// PriorityHigh is for issues blocking a stage gate.
	PriorityHigh

	// PriorityUrgent is for issues needing immediate attention.
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
		fmt.Errorf("%q is not a known complaint priority", s))
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
			fmt.Errorf("%d is not a valid complaint priority", p))
	}
	return nil
}

// Stage names the workflow stage a complaint was filed at.
type Stage int

const (
	// StagePacking covers complaints filed while picking items.
	StagePacking Stage = iota

	// StageStorage covers complaints filed during storage verification.
	StageStorage

	// StageDelivery covers complaints filed at the customer's door.
	StageDelivery

	// StagePostDelivery covers complaints filed after completion.
	StagePostDelivery
)

func stageStrings() map[Stage]string {
	return map[Stage]string{
		StagePacking:      "packing",
		StageStorage:      "storage",
		StageDelivery:     "delivery",
		StagePostDelivery: "post-delivery",
	}
}

// StageFromString parses the persisted wire form.
func StageFromString(s string) (Stage, error) {
	for stage, str := range stageStrings() {
		if str == s {
			return stage, nil
		}
	}
	return StagePacking, errs.NewValueIsInvalidErrorWithCause("stage",
		fmt.Errorf("%q is not a known complaint stage", s))
}

// String returns the wire representation. Round-trips unchanged.
func (s Stage) String() string {
	if str, ok := stageStrings()[s]; ok {
		return str
	}
	return "packing"
}

// Validate checks the value is one of the defined stages.
func (s Stage) Validate() error {
	if _, ok := stageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid complaint stage", s))
	}
	return nil
}

// Queue returns the manager queue the stage routes to. Complaints filed
// after completion land in the post-delivery queue; everything filed while
// the order is still in flight lands in the pre-delivery queue.
func (s Stage) Queue() Queue {
	if s == StagePostDelivery {
		return QueuePost
	}
	return QueuePre
}

// Queue partitions complaints between the two manager teams.
type Queue int

const (
	// QueuePre holds complaints on orders still in flight.
	QueuePre Queue = iota

	// QueuePost holds complaints on delivered orders.
	QueuePost
)

func queueStrings() map[Queue]string {
	return map[Queue]string{
		QueuePre:  "pre-delivery",
		QueuePost: "post-delivery",
	}
}

// QueueFromString parses the persisted wire form.
func QueueFromString(s string) (Queue, error) {
	for q, str := range queueStrings() {
		if str == s {
			return q, nil
		}
	}
	return QueuePre, errs.NewValueIsInvalidErrorWithCause("queue",
		fmt.Errorf("%q is not a known complaint queue", s))
}

// String returns the wire representation. Round-trips unchanged.
func (q Queue) String() string {
	if str, ok := queueStrings()[q]; ok {
		return str
	}
	return "pre-delivery"
}

// Validate checks the value is one of the defined queues.
func (q Queue) Validate() error {
	if _, ok := queueStrings()[q]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("queue",
			fmt.Errorf("%d is not a valid complaint queue", q))
	}
	return nil
}
