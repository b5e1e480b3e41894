// Package bfs provides tunable options and error definitions
// for breadth-first search over the pitcher state graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pitchers/pitcher"
)

// NoSolution is the step count reported when no reachable state holds the target.
const NoSolution = -1

// Sentinel errors for BFS execution.
var (
	// ErrNilCapacities is returned if no pitchers are supplied.
	ErrNilCapacities = errors.New("bfs: capacities are empty")

	// ErrNegativeTarget is returned for a target below zero.
	ErrNegativeTarget = errors.New("bfs: target must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStateSpaceTooLarge is returned when the bounded state space cannot
	// be indexed by a uint64.
	ErrStateSpaceTooLarge = errors.New("bfs: state space too large to index")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Shortest is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when a state is dequeued. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(s pitcher.State, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// SkipIdle drops zero-amount transfers during expansion.
	SkipIdle bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit, idle pours
// enabled and a no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:  func(pitcher.State, int) error { return nil },
		MaxDepth: 0,
		SkipIdle: false,
		err:      nil,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(s pitcher.State, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithoutIdlePours skips zero-amount transfers during expansion.
func WithoutIdlePours() Option {
	return func(o *BFSOptions) {
		o.SkipIdle = true
	}
}

// BFSResult holds the outcome of a search:
//   - Steps:   fewest actions to the target, or NoSolution.
//   - Found:   whether a goal state was reached.
//   - Goal:    the first goal state dequeued (nil if not found).
//   - Visited: number of distinct states discovered.
type BFSResult struct {
	Steps   int
	Found   bool
	Goal    pitcher.State
	Visited uint64
}
