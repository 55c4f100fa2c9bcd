// Package order provides domain entities and business logic for the order
// fulfillment workflow. It implements the Order aggregate root with its
// lifecycle state machine, per-item stage trackers, audit trail, and
// delivery-proof checklist.
//
// The package includes:
//   - Order: The aggregate root owning items, stage pointer, and proof bundle
//   - Stage: A state machine of kebab-case lifecycle states with a monotonic
//     happy path and out-of-band branch states
//   - Item: A line item with independent packing and storage sub-statuses
//   - ProofBundle: The delivery-proof checklist opened at arrival
//   - Transition: An append-only audit record of every stage change
//
// Key business rules:
//   - Forward transitions step exactly one stage and require the gate of the
//     stage they leave (all items resolved, all proof slots filled, ...)
//   - Driver rejection is the single sanctioned backward move
//   - Every mutation bumps the order's version for optimistic concurrency
//   - Completed verification and finalized proof bundles are read-only
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
