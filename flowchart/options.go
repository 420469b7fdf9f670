// SPDX-License-Identifier: MIT

package flowchart

// Option configures the load-time checks New and Decode run.
type Option func(*config)

// config holds chart construction knobs. The zero value runs only the
// structural checks (unique IDs, single start, resolvable targets).
type config struct {
	acyclic   bool // reject directed cycles
	reachable bool // reject nodes unreachable from start
}

// WithAcyclic makes New fail with ErrCycleDetected if any branch chain loops.
func WithAcyclic() Option {
	return func(c *config) { c.acyclic = true }
}

// WithReachable makes New fail with ErrUnreachable if any node cannot be
// reached from the Start node.
func WithReachable() Option {
	return func(c *config) { c.reachable = true }
}

// WithStrict enables every optional check.
func WithStrict() Option {
	return func(c *config) {
		c.acyclic = true
		c.reachable = true
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
