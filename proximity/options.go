// SPDX-License-Identifier: MIT

package proximity

import "fmt"

// DefaultGridCutoff is the point count at which Auto switches to Grid.
const DefaultGridCutoff = 256

// Option configures BuildEdges. An invalid value is recorded and surfaced
// as ErrInvalidArgument when BuildEdges runs.
type Option func(*Options)

// Options holds BuildEdges parameters.
type Options struct {
	// Strategy selects the enumeration algorithm. Default Auto.
	Strategy Strategy

	// GridCutoff is the minimum point count for which Auto uses Grid.
	GridCutoff int

	err error
}

// DefaultOptions returns Auto with DefaultGridCutoff.
func DefaultOptions() Options {
	return Options{Strategy: Auto, GridCutoff: DefaultGridCutoff}
}

// WithStrategy forces a strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < Auto || s > Grid {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrInvalidArgument, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithGridCutoff sets the Auto switch-over point; n must be ≥ 2.
func WithGridCutoff(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: grid cutoff must be >= 2, got %d", ErrInvalidArgument, n)
			return
		}
		o.GridCutoff = n
	}
}
