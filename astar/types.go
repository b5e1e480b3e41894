// Package astar defines configuration options, results and sentinel errors
// for the A* search over the water pitcher state graph.
//
// Options:
//
//	– ReturnPath:   if true, record predecessors and return the winning Move path.
//	– MaxStates:    optional cap on distinct states stored in the cost map (0 = unlimited).
//	– SkipIdle:     do not generate zero-amount transfers (self-loops).
//	– OnExpand:     hook called every time a state is popped and expanded.
//
// Errors (sentinel):
//
//	– ErrNilCapacities   if the capacity vector is nil or empty.
//	– ErrNegativeTarget  if target < 0.
//	– ErrOptionViolation if an invalid Option was supplied.
//	– ErrStateLimit      if MaxStates is set and the cost map would exceed it.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pitchers/pitcher"
)

// NoSolution is the step count reported when the target cannot be measured.
const NoSolution = -1

// Sentinel errors returned by Search.
var (
	// ErrNilCapacities indicates that no pitchers were supplied.
	ErrNilCapacities = errors.New("astar: capacities are empty")

	// ErrNegativeTarget indicates a target quantity below zero.
	ErrNegativeTarget = errors.New("astar: target must be non-negative")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrStateLimit indicates that the search stored more states than MaxStates allows.
	ErrStateLimit = errors.New("astar: visited-state limit exceeded")
)

// Options configures Search.
type Options struct {
	ReturnPath bool                                 // Whether to reconstruct the Move path
	MaxStates  int                                  // Cost map size cap; 0 disables it
	SkipIdle   bool                                 // Whether to drop zero-amount transfers
	OnExpand   func(state pitcher.State, cost int) // Called before a state is expanded

	err error // recorded option violation
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithReturnPath enables predecessor tracking and path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxStates caps the number of distinct states the search may store.
//
//	n > 0: fail with ErrStateLimit once more than n states are known
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithoutIdlePours skips zero-amount transfers when generating successors.
// The returned step count is unchanged; only redundant work is avoided.
func WithoutIdlePours() Option {
	return func(o *Options) {
		o.SkipIdle = true
	}
}

// WithOnExpand registers a hook called with each popped state and its cost.
func WithOnExpand(fn func(state pitcher.State, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns Options with no path tracking, no state cap,
// idle pours enabled and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		MaxStates:  0,
		SkipIdle:   false,
		OnExpand:   func(pitcher.State, int) {},
	}
}

// Result holds the outcome of a Search.
//   - Steps:    minimum number of actions, or NoSolution.
//   - Found:    true iff a goal state was popped.
//   - Goal:     the goal state reached (nil if not found).
//   - Path:     the actions leading to Goal (only with WithReturnPath).
//   - Expanded: number of pops that were expanded, stale ones included.
//   - Pushed:   number of queue insertions.
//   - States:   number of distinct states in the cost map.
type Result struct {
	Steps    int
	Found    bool
	Goal     pitcher.State
	Path     []pitcher.Move
	Expanded int
	Pushed   int
	States   int
}
