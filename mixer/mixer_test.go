package mixer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/labkit/mixer"
	"github.com/katalvlaran/labkit/simerr"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies every construction guard and its error kind.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name                 string
		hotT, hotS, coldT, cs float64
		err                  error
	}{
		{"ZeroHotSpeed", 60, 0, 20, 1, mixer.ErrSpeed},
		{"NegativeColdSpeed", 60, 1, 20, -1, mixer.ErrSpeed},
		{"InfHotSpeed", 60, math.Inf(1), 20, 1, mixer.ErrSpeed},
		{"NaNColdSpeed", 60, 1, 20, math.NaN(), mixer.ErrSpeed},
		{"HotAboveBoiling", 101, 1, 20, 1, mixer.ErrTemperature},
		{"ColdBelowFreezing", 60, 1, -1, 1, mixer.ErrTemperature},
		{"NaNTemperature", math.NaN(), 1, 20, 1, mixer.ErrTemperature},
		{"HotColderThanCold", 10, 1, 20, 1, mixer.ErrTemperatureOrder},
		// speeds are checked before temperatures
		{"SpeedBeforeTemperature", 200, 0, 20, 1, mixer.ErrSpeed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mixer.New(tc.hotT, tc.hotS, tc.coldT, tc.cs)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.err)
			require.True(t, errors.Is(err, simerr.ErrValidation))
		})
	}
}

// TestNew_Bounds accepts the closed temperature interval and equal temperatures.
func TestNew_Bounds(t *testing.T) {
	m, err := mixer.New(100, 0.5, 0, 2)
	require.NoError(t, err)
	require.False(t, m.IsOpen())
	require.Equal(t, 100.0, m.HotTemperature())
	require.Equal(t, 0.0, m.ColdTemperature())
	require.Equal(t, 0.5, m.HotSpeed())
	require.Equal(t, 2.0, m.ColdSpeed())

	_, err = mixer.New(40, 1, 40, 1)
	require.NoError(t, err)
}

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { mixer.WithLogger(nil) })
}

//----------------------------------------------------------------------------//
// Behaviour
//----------------------------------------------------------------------------//

// MixerSuite exercises controller, speed and temperature on a 60/20 mixer.
type MixerSuite struct {
	suite.Suite
	m *mixer.WaterMixer
}

func (s *MixerSuite) SetupTest() {
	m, err := mixer.New(60, 1, 20, 1)
	s.Require().NoError(err)
	s.m = m
}

// TestClosedTemperature verifies that a never-opened mixer has no temperature.
func (s *MixerSuite) TestClosedTemperature() {
	_, err := s.m.WaterTemperature()
	s.Require().ErrorIs(err, mixer.ErrClosed)
	s.Require().True(simerr.IsState(err))
	s.Require().Equal(0.0, s.m.WaterSpeed())
}

// TestFullyOpenSpeed checks the 100/100 example: speed 1+1.
func (s *MixerSuite) TestFullyOpenSpeed() {
	s.Require().NoError(s.m.SetController(100, 100))
	s.Require().Equal(2.0, s.m.WaterSpeed())
}

// TestHalfOpenTemperature checks the 50/50 example on equal speeds.
func (s *MixerSuite) TestHalfOpenTemperature() {
	s.Require().NoError(s.m.SetController(50, 50))
	s.Require().True(s.m.IsOpen())
	temp, err := s.m.WaterTemperature()
	s.Require().NoError(err)
	s.Require().Equal(40.0, temp)
}

// TestSingleValve yields the temperature of the only open stream.
func (s *MixerSuite) TestSingleValve() {
	s.Require().NoError(s.m.SetController(0, 30))
	temp, err := s.m.WaterTemperature()
	s.Require().NoError(err)
	s.Require().InDelta(20.0, temp, 1e-12)

	s.Require().NoError(s.m.SetController(70, 0))
	temp, err = s.m.WaterTemperature()
	s.Require().NoError(err)
	s.Require().InDelta(60.0, temp, 1e-12)
}

// TestControllerOverwrites ensures ratios are replaced, not added, and that
// closing both valves makes the temperature undefined again.
func (s *MixerSuite) TestControllerOverwrites() {
	s.Require().NoError(s.m.SetController(80, 10))
	s.Require().NoError(s.m.SetController(20, 40))
	s.Require().InDelta(0.2, s.m.HotRatio(), 1e-12)
	s.Require().InDelta(0.4, s.m.ColdRatio(), 1e-12)

	s.Require().NoError(s.m.SetController(0, 0))
	s.Require().False(s.m.IsOpen())
	_, err := s.m.WaterTemperature()
	s.Require().ErrorIs(err, mixer.ErrClosed)
}

// TestControllerRangeNoMutation rejects out-of-range openings and leaves
// the previous ratios in place.
func (s *MixerSuite) TestControllerRangeNoMutation() {
	s.Require().NoError(s.m.SetController(50, 25))
	for _, pair := range [][2]float64{{101, 0}, {-1, 0}, {0, 100.5}, {0, -0.1}, {math.NaN(), 0}} {
		err := s.m.SetController(pair[0], pair[1])
		s.Require().ErrorIs(err, mixer.ErrControllerRange, "pair %v", pair)
		s.Require().True(simerr.IsValidation(err))
	}
	s.Require().Equal(0.5, s.m.HotRatio())
	s.Require().Equal(0.25, s.m.ColdRatio())
}

func TestMixerSuite(t *testing.T) {
	suite.Run(t, new(MixerSuite))
}

// TestUnequalSpeeds reproduces the 20°C/2 + 0°C/1 example.
func TestUnequalSpeeds(t *testing.T) {
	m, err := mixer.New(20, 2, 0, 1)
	require.NoError(t, err)
	require.NoError(t, m.SetController(50, 50))
	temp, err := m.WaterTemperature()
	require.NoError(t, err)
	require.InDelta(t, 13.333333333333334, temp, 1e-12)
}

// TestWaterSpeed_Monotonic sweeps both valves and checks that opening
// either one further never reduces the outlet speed.
func TestWaterSpeed_Monotonic(t *testing.T) {
	m, err := mixer.New(90, 1.5, 5, 0.25)
	require.NoError(t, err)

	for cold := 0.0; cold <= 100; cold += 10 {
		prev := -1.0
		for hot := 0.0; hot <= 100; hot += 5 {
			require.NoError(t, m.SetController(hot, cold))
			got := m.WaterSpeed()
			require.GreaterOrEqual(t, got, prev, "hot=%g cold=%g", hot, cold)
			prev = got
		}
	}
	for hot := 0.0; hot <= 100; hot += 10 {
		prev := -1.0
		for cold := 0.0; cold <= 100; cold += 5 {
			require.NoError(t, m.SetController(hot, cold))
			got := m.WaterSpeed()
			require.GreaterOrEqual(t, got, prev, "hot=%g cold=%g", hot, cold)
			prev = got
		}
	}
}

// TestTemperature_WithinInletRange checks the blend stays between inlets.
func TestTemperature_WithinInletRange(t *testing.T) {
	m, err := mixer.New(75, 3, 12, 0.7)
	require.NoError(t, err)
	for hot := 0.0; hot <= 100; hot += 25 {
		for cold := 0.0; cold <= 100; cold += 25 {
			require.NoError(t, m.SetController(hot, cold))
			if !m.IsOpen() {
				continue
			}
			temp, err := m.WaterTemperature()
			require.NoError(t, err)
			require.GreaterOrEqual(t, temp, 12.0-1e-9)
			require.LessOrEqual(t, temp, 75.0+1e-9)
		}
	}
}

// TestLogging verifies controller changes are logged at debug level.
func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m, err := mixer.New(60, 1, 20, 1, mixer.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.NoError(t, m.SetController(10, 90))

	entries := logs.FilterMessage("controller set").All()
	require.Len(t, entries, 1)
	require.Equal(t, "mixer", entries[0].LoggerName)
	require.InDelta(t, 0.9, entries[0].ContextMap()["cold_ratio"], 1e-12)
}
