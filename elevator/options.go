// SPDX-License-Identifier: MIT

package elevator

import "go.uber.org/zap"

// Option customizes an Elevator before it is returned by New.
type Option func(*Elevator)

// WithLogger routes debug logs of cargo and moves to l.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("elevator: WithLogger(nil)")
	}
	return func(e *Elevator) {
		e.log = l.Named("elevator")
	}
}
