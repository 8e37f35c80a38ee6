// Package elevator models a single cargo elevator: a fixed number of
// floors, a rated capacity and a constant travel speed.
//
// What:
//
//   - New validates the configuration and parks the car on floor 1, empty.
//   - LoadCargo / UnloadCargo change the load on the current floor and
//     report whether the car is still under capacity. Overloading is
//     reported, never refused.
//   - MoveToFloor returns the travel time |from − to| / speed in seconds
//     and moves the car immediately. An overloaded car refuses to move.
//
// The overload check is intentionally two-step: LoadCargo returns false
// when the load reaches capacity, and only a later MoveToFloor fails with
// ErrOverloaded (when load strictly exceeds capacity).
//
// Errors:
//
//   - ErrFloorCount, ErrMaxWeight, ErrSpeed, ErrWeight, ErrFloorOutOfRange,
//     ErrUnloadTooMuch: validation errors.
//   - ErrWrongFloor, ErrOverloaded: state errors.
package elevator
