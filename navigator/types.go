package navigator

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/stepnav/stepfield"
)

// Sentinel errors for navigator operations.
var (
	// ErrNoRoute indicates no route from source to destination could be produced.
	ErrNoRoute = errors.New("navigator: no route")
	// ErrClosed indicates a request was submitted after Close.
	ErrClosed = errors.New("navigator: request queue closed")
)

// Options configures a Navigator.
//
// Iterations – default relaxation pass count for queries that do not set one.
// Logger     – structured diagnostics; defaults to a discarding logger.
type Options struct {
	Iterations int
	Logger     *slog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithIterations sets the default relaxation pass count.
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

// DefaultOptions returns Options with stepfield.DefaultIterations and a discard logger.
func DefaultOptions() Options {
	return Options{
		Iterations: stepfield.DefaultIterations,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// Query holds per-call settings.
//
// Slant      – cut corners with route.Simplify.
// Iterations – relaxation pass count for a freshly computed field.
// UseCache   – read a cached field when one exists for the destination.
type Query struct {
	Slant      bool
	Iterations int
	UseCache   bool
}

// QueryOption is a functional option for a single query.
type QueryOption func(*Query)

// Slant enables diagonal simplification of the route.
func Slant() QueryOption {
	return func(q *Query) { q.Slant = true }
}

// Iterations overrides the relaxation pass count for this query.
func Iterations(n int) QueryOption {
	return func(q *Query) { q.Iterations = n }
}

// NoCache forces a fresh computation. The fresh field still replaces the
// cached entry for its destination.
func NoCache() QueryOption {
	return func(q *Query) { q.UseCache = false }
}

func (n *Navigator) query(opts []QueryOption) Query {
	q := Query{Iterations: n.opts.Iterations, UseCache: true}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// Stats reports cache activity.
type Stats struct {
	Entries int
	Hits    int
	Misses  int
}
