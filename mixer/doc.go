// Package mixer models a two-valve water mixer blending a hot and a cold
// stream.
//
// What:
//
//   - WaterMixer is configured with a temperature (°C, 0..100) and a flow
//     speed (>0) for each stream; hot must not be colder than cold.
//   - SetController opens each valve by a percentage (0..100), stored as a
//     ratio in [0,1]. Each call replaces both ratios.
//   - WaterSpeed is the linear blend hotSpeed·hotRatio + coldSpeed·coldRatio.
//   - WaterTemperature is the flow-weighted average temperature:
//
//     (hr·ht·hs + cr·ct·cs) / (hr·hs + cr·cs)
//
//     and is undefined (ErrClosed) while both valves are shut.
//
// Complexity:
//
//   - Every operation is O(1) time and memory.
//
// Errors:
//
//   - ErrSpeed, ErrTemperature, ErrTemperatureOrder, ErrControllerRange:
//     validation errors (errors.Is(err, simerr.ErrValidation)).
//   - ErrClosed: state error (errors.Is(err, simerr.ErrState)).
//
// A WaterMixer is not safe for concurrent mutation; it is meant to have a
// single owner.
package mixer
