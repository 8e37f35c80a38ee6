// Package pen describes a drawing pen for a flat canvas.
//
// A Pen has an integer thickness (≥1) and an opaque color label. Its
// drawing operations validate their geometry and accept the stroke, but
// nothing is rendered: a stroke only shows up in the debug log and in the
// Strokes counter.
//
// Errors (all wrap simerr.ErrValidation):
//
//   - ErrThickness: thickness below MinThickness.
//   - ErrCoordinate: a NaN or infinite coordinate.
//   - ErrRadius: an arc radius that is not positive.
//   - ErrAngle: an arc angle outside [-π, π].
package pen
