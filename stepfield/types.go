package stepfield

import (
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors returned by Compute.
var (
	// ErrUnknownDestination indicates the destination is not a present point.
	ErrUnknownDestination = errors.New("stepfield: destination not present in terrain")
	// ErrBadIterations indicates a negative relaxation pass count.
	ErrBadIterations = errors.New("stepfield: iterations must be non-negative")
)

// Unreachable is the step value of a cell with no finite route to the destination.
const Unreachable = math.MaxInt

// DefaultIterations is the relaxation pass count used when none is given.
const DefaultIterations = 4

// Options configures Compute.
//
// Iterations – number of relaxation passes (N). Must be ≥ 0.
// Logger     – receives debug diagnostics; defaults to a discarding logger.
type Options struct {
	Iterations int
	Logger     *slog.Logger
}

// Option is a functional option for Compute.
type Option func(*Options)

// WithIterations sets the relaxation pass count.
// Negative values make Compute fail with ErrBadIterations.
func WithIterations(n int) Option {
	return func(o *Options) {
		o.Iterations = n
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with DefaultIterations passes and a discard logger.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Logger:     slog.New(slog.DiscardHandler),
	}
}
