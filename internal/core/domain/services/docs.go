// Package services contains domain services that coordinate multiple
// aggregates. The assignment scheduler matches assignable orders with
// vehicles by tightest capacity fit and with drivers by lowest load.
package services
