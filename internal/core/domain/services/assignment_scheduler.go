package services

import (
	"errors"
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/vehicle"
)

// ErrNoSuitableVehicle is returned when no vehicle in the candidate set can
// carry the order: either the set is empty or no available vehicle's spare
// capacity dominates the requirement in every dimension.
var ErrNoSuitableVehicle = errors.New("no suitable vehicle")

// ErrNoAvailableDriver is returned when every candidate driver is at the
// concurrent-assignment cap.
var ErrNoAvailableDriver = errors.New("no available driver")

// AssignmentScheduler is the domain service that matches assignable orders
// with vehicles and drivers.
//
// Selection rules:
//   - Vehicle: among available vehicles whose spare capacity dominates the
//     order's requirement, the one with the smallest excess; ties broken by
//     lowest vehicle ID so repeated runs pick deterministically.
//   - Driver: candidates at capacity are excluded; the rest rank by
//     ascending load ratio, then descending rating.
//   - Dispatch commits vehicle load, driver assignment, and the order's
//     stage change together; the caller wraps them in one transaction.
type AssignmentScheduler struct{}

// NewAssignmentScheduler creates a new AssignmentScheduler instance.
func NewAssignmentScheduler() AssignmentScheduler {
	return AssignmentScheduler{}
}

// SuggestVehicle picks the tightest-fitting available vehicle for the
// requirement. Returns ErrNoSuitableVehicle when none dominates it.
func (s AssignmentScheduler) SuggestVehicle(req kernel.Capacity, vehicles []*vehicle.Vehicle) (*vehicle.Vehicle, error) {
	var best *vehicle.Vehicle
	bestExcess := 0.0

	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if !v.CanCarry(req) {
			continue
		}

		excess := v.SpareCapacity().Excess(req)
		switch {
		case best == nil,
			excess < bestExcess,
			excess == bestExcess && v.ID().String() < best.ID().String():
			best = v
			bestExcess = excess
		}
	}

	if best == nil {
		return nil, ErrNoSuitableVehicle
	}
	return best, nil
}

// RankOfficers orders the candidates for the next assignment: ascending load
// ratio first, then descending rating. Officers at capacity are excluded.
func (s AssignmentScheduler) RankOfficers(officers []*officer.Officer) []*officer.Officer {
	ranked := make([]*officer.Officer, 0, len(officers))
	for _, o := range officers {
		if o.HasCapacity() {
			ranked = append(ranked, o)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].LoadRatio() != ranked[j].LoadRatio() {
			return ranked[i].LoadRatio() < ranked[j].LoadRatio()
		}
		if ranked[i].Rating() != ranked[j].Rating() {
			return ranked[i].Rating() > ranked[j].Rating()
		}
		return ranked[i].ID().String() < ranked[j].ID().String()
	})
	return ranked
}

// Dispatch matches one assignable order with the best vehicle and driver and
// commits the assignment on all three aggregates.
func (s AssignmentScheduler) Dispatch(
	o *order.Order,
	vehicles []*vehicle.Vehicle,
	drivers []*officer.Officer,
	actor kernel.Actor,
	now time.Time,
) (*vehicle.Vehicle, *officer.Officer, error) {
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}
	if o.Stage().IsAfter(order.ReadyToPickup) {
		return nil, nil, order.ErrAlreadyAssigned
	}

	bestVehicle, err := s.SuggestVehicle(o.Requirement(), vehicles)
	if err != nil {
		return nil, nil, err
	}

	ranked := s.RankOfficers(drivers)
	if len(ranked) == 0 {
		return nil, nil, ErrNoAvailableDriver
	}
	bestDriver := ranked[0]

	if err = bestVehicle.LoadOrder(o.ID(), o.Requirement()); err != nil {
		return nil, nil, err
	}
	if err = bestDriver.TakeOrder(o.ID()); err != nil {
		return nil, nil, err
	}
	if err = o.Assign(bestVehicle.ID(), bestDriver.ID(), actor, now); err != nil {
		return nil, nil, err
	}

	return bestVehicle, bestDriver, nil
}
