// Package vehicle provides the fleet side of the fulfillment domain.
// A vehicle carries a capacity triple (packages, weight, volume) and admits
// orders only while every dimension of its spare capacity holds.
package vehicle
