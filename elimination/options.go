// SPDX-License-Identifier: MIT

// Package elimination: functional configuration.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).

package elimination

// ---------- Defaults (single source of truth) ----------
const (
	// DefaultInPlace: false ⇒ every pass works on a clone and the caller's
	// matrix is left untouched.
	DefaultInPlace = false

	// DefaultVerify enables the post-substitution row-echelon check in Backward.
	DefaultVerify = true
)

const panicNilLogger = "elimination: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved configuration of one elimination call.
// Fields are unexported; build it through DefaultOptions and Option values.
type Options struct {
	inPlace bool
	verify  bool
	logger  *Logger
}

// DefaultOptions returns the documented defaults with a discarding logger.
func DefaultOptions() Options {
	return Options{
		inPlace: DefaultInPlace,
		verify:  DefaultVerify,
		logger:  NoopLogger(),
	}
}

// WithInPlace makes the pass mutate and return the caller's matrix.
func WithInPlace() Option {
	return func(o *Options) { o.inPlace = true }
}

// WithVerify toggles the Backward precondition check. With verify off a
// malformed input yields an unspecified (but terminating) result instead of a panic.
func WithVerify(on bool) Option {
	return func(o *Options) { o.verify = on }
}

// WithLogger routes per-step debug records to l. Panics if l is nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
