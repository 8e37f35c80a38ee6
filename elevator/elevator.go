// SPDX-License-Identifier: MIT

package elevator

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// New constructs an empty Elevator parked on GroundFloor.
// speed is in floors per second; maxWeight in kilograms.
func New(floors int, maxWeight, speed float64, opts ...Option) (*Elevator, error) {
	if floors < MinFloors {
		return nil, fmt.Errorf("%w: got %d", ErrFloorCount, floors)
	}
	if !positive(maxWeight) {
		return nil, fmt.Errorf("%w: got %g", ErrMaxWeight, maxWeight)
	}
	if !positive(speed) {
		return nil, fmt.Errorf("%w: got %g", ErrSpeed, speed)
	}

	e := &Elevator{
		floors:    floors,
		maxWeight: maxWeight,
		speed:     speed,
		floor:     GroundFloor,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// LoadCargo adds weight to the car standing on floor.
// It returns false once the load reaches capacity but never refuses the
// cargo; the overload is enforced by MoveToFloor.
func (e *Elevator) LoadCargo(floor int, weight float64) (bool, error) {
	if err := e.checkFloor(floor); err != nil {
		return false, err
	}
	if !nonNegative(weight) {
		return false, fmt.Errorf("%w: got %g", ErrWeight, weight)
	}
	e.load += weight
	e.log.Debug("cargo loaded",
		zap.Int("floor", floor),
		zap.Float64("weight", weight),
		zap.Float64("load", e.load))

	return e.underCapacity(), nil
}

// UnloadCargo removes weight from the car standing on floor and reports
// whether the car is under capacity afterwards.
func (e *Elevator) UnloadCargo(floor int, weight float64) (bool, error) {
	if err := e.checkFloor(floor); err != nil {
		return false, err
	}
	if !nonNegative(weight) {
		return false, fmt.Errorf("%w: got %g", ErrWeight, weight)
	}
	if weight > e.load {
		return false, fmt.Errorf("%w: unload %g, load %g", ErrUnloadTooMuch, weight, e.load)
	}
	e.load -= weight
	e.log.Debug("cargo unloaded",
		zap.Int("floor", floor),
		zap.Float64("weight", weight),
		zap.Float64("load", e.load))

	return e.underCapacity(), nil
}

// MoveToFloor sends the car to target and returns the travel time in
// seconds. The car arrives immediately; the returned time is what the
// trip would take at the configured speed.
func (e *Elevator) MoveToFloor(target int) (float64, error) {
	if target < GroundFloor || target > e.floors {
		return 0, fmt.Errorf("%w: floor %d, elevator serves %d..%d",
			ErrFloorOutOfRange, target, GroundFloor, e.floors)
	}
	if e.Overloaded() {
		return 0, fmt.Errorf("%w: load %g > %g", ErrOverloaded, e.load, e.maxWeight)
	}

	distance := e.floor - target
	if distance < 0 {
		distance = -distance
	}
	elapsed := float64(distance) / e.speed
	e.log.Debug("moved",
		zap.Int("from", e.floor),
		zap.Int("to", target),
		zap.Float64("seconds", elapsed))
	e.floor = target

	return elapsed, nil
}

// Floors returns the number of floors served.
func (e *Elevator) Floors() int { return e.floors }

// MaxWeight returns the rated capacity in kilograms.
func (e *Elevator) MaxWeight() float64 { return e.maxWeight }

// Speed returns the travel speed in floors per second.
func (e *Elevator) Speed() float64 { return e.speed }

// CurrentFloor returns the floor the car is on.
func (e *Elevator) CurrentFloor() int { return e.floor }

// Load returns the current cargo weight in kilograms.
func (e *Elevator) Load() float64 { return e.load }

// Overloaded reports whether the load strictly exceeds capacity.
func (e *Elevator) Overloaded() bool { return e.load > e.maxWeight }

func (e *Elevator) underCapacity() bool { return e.load < e.maxWeight }

func (e *Elevator) checkFloor(floor int) error {
	if floor != e.floor {
		return fmt.Errorf("%w: requested %d, car on %d", ErrWrongFloor, floor, e.floor)
	}

	return nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
