// Package kernel provides core domain primitives for the fulfillment workflow.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Actor: an opaque reference to the staff member performing an operation
//   - Capacity: the (packages, weight, volume) triple used for vehicle matching
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
