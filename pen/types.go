// SPDX-License-Identifier: MIT

package pen

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/labkit/simerr"
)

// Sentinel errors for pen operations.
var (
	// ErrThickness indicates a thickness below MinThickness.
	ErrThickness = simerr.Kind("pen", simerr.ErrValidation, "thickness must be positive")
	// ErrCoordinate indicates a point with a NaN or infinite coordinate.
	ErrCoordinate = simerr.Kind("pen", simerr.ErrValidation, "coordinates must be finite")
	// ErrRadius indicates an arc radius that is not a positive number.
	ErrRadius = simerr.Kind("pen", simerr.ErrValidation, "radius must be positive")
	// ErrAngle indicates an arc angle outside [MinAngle, MaxAngle].
	ErrAngle = simerr.Kind("pen", simerr.ErrValidation, "angles must be within [-pi, pi]")
)

// MinThickness is the thinnest pen, in canvas units.
const MinThickness = 1

// Angle bounds for arcs, in radians.
const (
	MinAngle = -math.Pi
	MaxAngle = math.Pi
)

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

// finite reports whether both coordinates are real numbers.
func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Pen is an immutable brush description plus a stroke counter.
type Pen struct {
	thickness int
	color     string
	strokes   int

	log *zap.Logger
}
