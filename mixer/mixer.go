// SPDX-License-Identifier: MIT

package mixer

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// New constructs a closed WaterMixer.
// Validation order: hot speed, cold speed, hot temperature, cold
// temperature, then hotTemp ≥ coldTemp. The first failure is returned.
func New(hotTemp, hotSpeed, coldTemp, coldSpeed float64, opts ...Option) (*WaterMixer, error) {
	if err := validateSpeed(Hot, hotSpeed); err != nil {
		return nil, err
	}
	if err := validateSpeed(Cold, coldSpeed); err != nil {
		return nil, err
	}
	if err := validateTemperature(Hot, hotTemp); err != nil {
		return nil, err
	}
	if err := validateTemperature(Cold, coldTemp); err != nil {
		return nil, err
	}
	if hotTemp < coldTemp {
		return nil, fmt.Errorf("%w: hot %g°C < cold %g°C", ErrTemperatureOrder, hotTemp, coldTemp)
	}

	m := &WaterMixer{
		hotTemp:   hotTemp,
		coldTemp:  coldTemp,
		hotSpeed:  hotSpeed,
		coldSpeed: coldSpeed,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// SetController opens the hot and cold valves by the given percentages.
// Both values are checked before either ratio changes; on success the
// previous ratios are replaced, not accumulated.
func (m *WaterMixer) SetController(hotPercent, coldPercent float64) error {
	if err := validateOpening(Hot, hotPercent); err != nil {
		return err
	}
	if err := validateOpening(Cold, coldPercent); err != nil {
		return err
	}
	m.hotRatio = hotPercent / MaxOpening
	m.coldRatio = coldPercent / MaxOpening
	m.log.Debug("controller set",
		zap.Float64("hot_ratio", m.hotRatio),
		zap.Float64("cold_ratio", m.coldRatio))

	return nil
}

// WaterSpeed returns the outlet flow speed.
func (m *WaterMixer) WaterSpeed() float64 {
	return m.hotSpeed*m.hotRatio + m.coldSpeed*m.coldRatio
}

// IsOpen reports whether at least one valve is open.
func (m *WaterMixer) IsOpen() bool {
	return m.hotRatio != 0 || m.coldRatio != 0
}

// WaterTemperature returns the flow-weighted outlet temperature.
// Returns ErrClosed while both valves are shut.
func (m *WaterMixer) WaterTemperature() (float64, error) {
	if !m.IsOpen() {
		return 0, ErrClosed
	}
	heat := m.hotRatio*m.hotTemp*m.hotSpeed + m.coldRatio*m.coldTemp*m.coldSpeed
	flow := m.coldRatio*m.coldSpeed + m.hotRatio*m.hotSpeed

	return heat / flow, nil
}

// HotTemperature returns the hot stream temperature in °C.
func (m *WaterMixer) HotTemperature() float64 { return m.hotTemp }

// ColdTemperature returns the cold stream temperature in °C.
func (m *WaterMixer) ColdTemperature() float64 { return m.coldTemp }

// HotSpeed returns the hot stream flow speed at a fully open valve.
func (m *WaterMixer) HotSpeed() float64 { return m.hotSpeed }

// ColdSpeed returns the cold stream flow speed at a fully open valve.
func (m *WaterMixer) ColdSpeed() float64 { return m.coldSpeed }

// HotRatio returns the hot valve opening in [0,1].
func (m *WaterMixer) HotRatio() float64 { return m.hotRatio }

// ColdRatio returns the cold valve opening in [0,1].
func (m *WaterMixer) ColdRatio() float64 { return m.coldRatio }

func validateSpeed(s Stream, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s speed %g", ErrSpeed, s, v)
	}

	return nil
}

func validateTemperature(s Stream, v float64) error {
	// NaN fails both comparisons, so test it explicitly.
	if math.IsNaN(v) || v < MinTemperature || v > MaxTemperature {
		return fmt.Errorf("%w: %s temperature %g", ErrTemperature, s, v)
	}

	return nil
}

func validateOpening(s Stream, v float64) error {
	if math.IsNaN(v) || v < MinOpening || v > MaxOpening {
		return fmt.Errorf("%w: %s valve %g%%", ErrControllerRange, s, v)
	}

	return nil
}
