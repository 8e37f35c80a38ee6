// SPDX-License-Identifier: MIT

package mixer

import "go.uber.org/zap"

// Option customizes a WaterMixer before it is returned by New.
type Option func(*WaterMixer)

// WithLogger routes debug logs of valve changes to l.
// Panics on nil; pass zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("mixer: WithLogger(nil)")
	}
	return func(m *WaterMixer) {
		m.log = l.Named("mixer")
	}
}
