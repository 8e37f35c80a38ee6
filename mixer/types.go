// SPDX-License-Identifier: MIT

package mixer

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/labkit/simerr"
)

// Sentinel errors for mixer operations.
var (
	// ErrSpeed indicates a stream flow speed that is not a positive finite number.
	ErrSpeed = simerr.Kind("mixer", simerr.ErrValidation, "water speed must be a positive number")
	// ErrTemperature indicates a stream temperature outside [MinTemperature, MaxTemperature].
	ErrTemperature = simerr.Kind("mixer", simerr.ErrValidation, "liquid water temperature must be within [0,100]")
	// ErrTemperatureOrder indicates the hot stream is colder than the cold one.
	ErrTemperatureOrder = simerr.Kind("mixer", simerr.ErrValidation, "hot water must not be colder than cold water")
	// ErrControllerRange indicates a valve opening outside [0,100] percent.
	ErrControllerRange = simerr.Kind("mixer", simerr.ErrValidation, "valve opening must be within [0,100] percent")
	// ErrClosed indicates the temperature was requested while both valves are shut.
	ErrClosed = simerr.Kind("mixer", simerr.ErrState, "mixer is closed")
)

// Bounds for temperatures (°C) and valve openings (%).
const (
	MinTemperature = 0.0
	MaxTemperature = 100.0
	MinOpening     = 0.0
	MaxOpening     = 100.0
)

// Stream identifies one of the two inlets; used in error context and logs.
type Stream string

const (
	Hot  Stream = "hot"
	Cold Stream = "cold"
)

// WaterMixer blends a hot and a cold stream. Configuration is fixed at
// construction; only the two controller ratios change afterwards.
type WaterMixer struct {
	hotTemp, coldTemp   float64
	hotSpeed, coldSpeed float64
	hotRatio, coldRatio float64 // in [0,1]

	log *zap.Logger
}
