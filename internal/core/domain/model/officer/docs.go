// Package officer models the fulfillment staff: second dispatch officers and
// drivers, split by role but sharing one shape. Each officer holds a bounded
// set of concurrent assignments; the current count never exceeds the cap.
package officer
