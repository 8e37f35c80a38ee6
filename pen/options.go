// SPDX-License-Identifier: MIT

package pen

import "go.uber.org/zap"

// Option customizes a Pen before it is returned by New.
type Option func(*Pen)

// WithLogger routes debug logs of accepted strokes to l.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("pen: WithLogger(nil)")
	}
	return func(p *Pen) {
		p.log = l.Named("pen")
	}
}
