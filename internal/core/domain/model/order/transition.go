package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Transition is one entry of the order's audit trail: who moved the order
// from which stage to which, and when. Transitions are append-only and
// retained indefinitely.
type Transition struct {
	from       Stage
	to         Stage
	actor      kernel.Actor
	occurredAt time.Time
}

// NewTransition records a stage change for the audit trail.
func NewTransition(from, to Stage, actor kernel.Actor, occurredAt time.Time) Transition {
	return Transition{from: from, to: to, actor: actor, occurredAt: occurredAt}
}

// From returns the stage the order left.
func (t Transition) From() Stage {
	return t.from
}

// To returns the stage the order entered.
func (t Transition) To() Stage {
	return t.to
}

// Actor returns who performed the transition.
func (t Transition) Actor() kernel.Actor {
	return t.actor
}

// OccurredAt returns when the transition happened.
func (t Transition) OccurredAt() time.Time {
	return t.occurredAt
}
