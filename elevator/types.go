// SPDX-License-Identifier: MIT

package elevator

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/labkit/simerr"
)

// Sentinel errors for elevator operations.
var (
	// ErrFloorCount indicates fewer than MinFloors floors.
	ErrFloorCount = simerr.Kind("elevator", simerr.ErrValidation, "floor count must be at least 2")
	// ErrMaxWeight indicates a capacity that is not a positive finite number.
	ErrMaxWeight = simerr.Kind("elevator", simerr.ErrValidation, "max weight must be a positive number")
	// ErrSpeed indicates a speed that is not a positive finite number.
	ErrSpeed = simerr.Kind("elevator", simerr.ErrValidation, "speed must be a positive number")
	// ErrWeight indicates a cargo weight that is negative or not finite.
	ErrWeight = simerr.Kind("elevator", simerr.ErrValidation, "cargo weight must be a non-negative number")
	// ErrUnloadTooMuch indicates an unload larger than the current load.
	ErrUnloadTooMuch = simerr.Kind("elevator", simerr.ErrValidation, "cannot unload more than the current load")
	// ErrFloorOutOfRange indicates a target floor outside [1, Floors()].
	ErrFloorOutOfRange = simerr.Kind("elevator", simerr.ErrValidation, "floor out of range")
	// ErrWrongFloor indicates cargo handling on a floor the car is not on.
	ErrWrongFloor = simerr.Kind("elevator", simerr.ErrState, "elevator is on another floor")
	// ErrOverloaded indicates a move attempt while load exceeds capacity.
	ErrOverloaded = simerr.Kind("elevator", simerr.ErrState, "overloaded")
)

// MinFloors is the smallest building an elevator makes sense in.
const MinFloors = 2

// GroundFloor is where every elevator starts.
const GroundFloor = 1

// Elevator is a single car. Floors, capacity and speed are fixed at
// construction; floor and load change through the cargo and move
// operations only.
type Elevator struct {
	floors    int
	maxWeight float64 // kg
	speed     float64 // floors per second

	floor int     // always in [GroundFloor, floors]
	load  float64 // kg, may exceed maxWeight

	log *zap.Logger
}
