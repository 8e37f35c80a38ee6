package pen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/labkit/pen"
	"github.com/katalvlaran/labkit/simerr"
)

func TestNew(t *testing.T) {
	p, err := pen.New(20, "dark green")
	require.NoError(t, err)
	assert.Equal(t, 20, p.Thickness())
	assert.Equal(t, "dark green", p.Color())
	assert.Zero(t, p.Strokes())

	// the color is an opaque label
	_, err = pen.New(1, "")
	require.NoError(t, err)

	for _, th := range []int{0, -4} {
		p, err := pen.New(th, "orange")
		require.Nil(t, p)
		require.ErrorIs(t, err, pen.ErrThickness)
		require.True(t, simerr.IsValidation(err))
	}
}

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { pen.WithLogger(nil) })
}

// TestDrawStraightLine draws a skyscraper outline and rejects bad points.
func TestDrawStraightLine(t *testing.T) {
	p, err := pen.New(7, "neon blue")
	require.NoError(t, err)

	require.NoError(t, p.DrawStraightLine(pen.Point{X: 0, Y: 0}, pen.Point{X: 0, Y: 100}))
	require.NoError(t, p.DrawStraightLine(pen.Point{X: 0, Y: 100}, pen.Point{X: 20, Y: 100}))
	require.NoError(t, p.DrawStraightLine(pen.Point{X: 20, Y: 100}, pen.Point{X: 20, Y: 0}))
	require.Equal(t, 3, p.Strokes())

	err = p.DrawStraightLine(pen.Point{X: math.NaN()}, pen.Point{})
	require.ErrorIs(t, err, pen.ErrCoordinate)
	err = p.DrawStraightLine(pen.Point{}, pen.Point{Y: math.Inf(-1)})
	require.ErrorIs(t, err, pen.ErrCoordinate)
	require.Equal(t, 3, p.Strokes(), "rejected strokes are not counted")
}

// TestDrawArc covers radius and angle guards, including the closed bounds.
func TestDrawArc(t *testing.T) {
	p, err := pen.New(5, "red")
	require.NoError(t, err)

	// unit circle
	require.NoError(t, p.DrawArc(pen.Point{}, 1, -math.Pi, math.Pi))

	cases := []struct {
		name       string
		center     pen.Point
		radius     float64
		start, end float64
		err        error
	}{
		{"ZeroRadius", pen.Point{}, 0, 0, 1, pen.ErrRadius},
		{"NegativeRadius", pen.Point{}, -2, 0, 1, pen.ErrRadius},
		{"NaNRadius", pen.Point{}, math.NaN(), 0, 1, pen.ErrRadius},
		{"StartTooSmall", pen.Point{}, 1, -4, 0, pen.ErrAngle},
		{"EndTooLarge", pen.Point{}, 1, 0, 3.5, pen.ErrAngle},
		{"NaNAngle", pen.Point{}, 1, math.NaN(), 0, pen.ErrAngle},
		{"BadCenter", pen.Point{X: math.Inf(1)}, 1, 0, 1, pen.ErrCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := p.DrawArc(tc.center, tc.radius, tc.start, tc.end)
			require.ErrorIs(t, err, tc.err)
			require.True(t, simerr.IsValidation(err))
		})
	}
	require.Equal(t, 1, p.Strokes())
}

func TestStrokeLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p, err := pen.New(3, "light blue", pen.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.NoError(t, p.DrawStraightLine(pen.Point{X: 0, Y: -50}, pen.Point{X: 0, Y: 50}))

	entries := logs.FilterMessage("line").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "light blue", entries[0].ContextMap()["color"])
	assert.EqualValues(t, 3, entries[0].ContextMap()["thickness"])
}
