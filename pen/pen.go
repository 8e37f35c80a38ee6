// SPDX-License-Identifier: MIT

package pen

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// New constructs a Pen. The color is an arbitrary label and is not checked.
func New(thickness int, color string, opts ...Option) (*Pen, error) {
	if thickness < MinThickness {
		return nil, fmt.Errorf("%w: got %d", ErrThickness, thickness)
	}
	p := &Pen{
		thickness: thickness,
		color:     color,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// DrawStraightLine draws a segment from begin to end.
// Nothing is rendered; the stroke is validated and counted.
func (p *Pen) DrawStraightLine(begin, end Point) error {
	if !begin.finite() {
		return fmt.Errorf("%w: begin %v", ErrCoordinate, begin)
	}
	if !end.finite() {
		return fmt.Errorf("%w: end %v", ErrCoordinate, end)
	}
	p.stroke("line",
		zap.Float64s("begin", []float64{begin.X, begin.Y}),
		zap.Float64s("end", []float64{end.X, end.Y}))

	return nil
}

// DrawArc draws the arc of the circle (center, radius) from startAngle to
// endAngle, both in radians within [-π, π].
// Nothing is rendered; the stroke is validated and counted.
func (p *Pen) DrawArc(center Point, radius, startAngle, endAngle float64) error {
	if !center.finite() {
		return fmt.Errorf("%w: center %v", ErrCoordinate, center)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return fmt.Errorf("%w: got %g", ErrRadius, radius)
	}
	if !inAngleRange(startAngle) || !inAngleRange(endAngle) {
		return fmt.Errorf("%w: got %g..%g", ErrAngle, startAngle, endAngle)
	}
	p.stroke("arc",
		zap.Float64s("center", []float64{center.X, center.Y}),
		zap.Float64("radius", radius),
		zap.Float64("start", startAngle),
		zap.Float64("end", endAngle))

	return nil
}

// Thickness returns the pen thickness in canvas units.
func (p *Pen) Thickness() int { return p.thickness }

// Color returns the color label.
func (p *Pen) Color() string { return p.color }

// Strokes returns how many strokes were accepted.
func (p *Pen) Strokes() int { return p.strokes }

func (p *Pen) stroke(kind string, fields ...zap.Field) {
	p.strokes++
	p.log.Debug(kind,
		append([]zap.Field{zap.Int("thickness", p.thickness), zap.String("color", p.color)}, fields...)...)
}

func inAngleRange(a float64) bool {
	return !math.IsNaN(a) && a >= MinAngle && a <= MaxAngle
}
