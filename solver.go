package pitchers

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pitchers/astar"
	"github.com/katalvlaran/pitchers/bfs"
	"github.com/katalvlaran/pitchers/pitcher"
)

// NoSolution is the step count reported when the target cannot be measured,
// whether the GCD filter rejected it or the search ran dry.
const NoSolution = -1

// Sentinel errors returned by the Solver.
var (
	// ErrOptionViolation indicates an invalid Solver option.
	ErrOptionViolation = errors.New("pitchers: invalid option supplied")

	// ErrUnknownStrategy indicates a Strategy value with no implementation.
	ErrUnknownStrategy = errors.New("pitchers: unknown strategy")
)

// Strategy selects the search that runs after the feasibility filter.
type Strategy int

const (
	// StrategyAStar runs the informed A* search. It is the default.
	StrategyAStar Strategy = iota

	// StrategyBFS runs the exhaustive breadth-first oracle. It needs memory
	// proportional to ∏(capacity+1)·(target+1) and suits small instances.
	StrategyBFS
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAStar:
		return "astar"
	case StrategyBFS:
		return "bfs"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Options configures a Solver.
type Options struct {
	Logger     *Logger
	Strategy   Strategy
	MaxStates  int  // A* cost map cap; 0 disables it
	SkipIdle   bool // drop zero-amount transfers
	ReturnPath bool // A* only

	err error
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxStates caps the number of states the A* search may store.
// n == 0 disables the cap; n < 0 is an option violation, and so is a
// positive cap combined with StrategyBFS.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithoutIdlePours skips zero-amount transfers during expansion.
func WithoutIdlePours() Option {
	return func(o *Options) {
		o.SkipIdle = true
	}
}

// WithReturnPath asks the A* strategy to return the winning moves.
// Combined with StrategyBFS it is an option violation.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns the A* strategy with a silent logger and no caps.
func DefaultOptions() Options {
	return Options{
		Logger:   NoopLogger(),
		Strategy: StrategyAStar,
	}
}

// Solution is the detailed outcome of one Solve call.
type Solution struct {
	Steps    int            // minimum action count, or NoSolution
	Found    bool           // a goal state was reached
	Rejected bool           // the GCD filter rejected the target; no search ran
	GCD      int            // greatest common divisor of the capacities
	States   int            // distinct states the search stored
	Path     []pitcher.Move // winning moves; A* with WithReturnPath only
}

// Solver composes the feasibility filter with a search strategy.
// A Solver holds no per-call state and may be reused.
type Solver struct {
	opts Options
	log  *Logger
}

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{
		opts: o,
		log:  o.Logger.WithStrategy(o.Strategy),
	}
}

// Solve returns the minimum number of actions that measure target into the
// reservoir, or NoSolution. Errors are reserved for invalid input and options.
func (s *Solver) Solve(capacities []int, target int) (int, error) {
	sol, err := s.SolveDetailed(capacities, target)
	if err != nil {
		return NoSolution, err
	}

	return sol.Steps, nil
}

// SolveDetailed is Solve with search statistics and, on request, the path.
//
// Order of work:
//  1. validate options, capacities and target;
//  2. reject targets that are not a multiple of GCD(capacities);
//  3. run the configured strategy.
func (s *Solver) SolveDetailed(capacities []int, target int) (*Solution, error) {
	if err := s.opts.validate(); err != nil {
		return nil, err
	}
	caps, err := pitcher.NewCapacities(capacities...)
	if err != nil {
		return nil, err
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", pitcher.ErrNegativeTarget, target)
	}

	gcd := caps.GCD()
	if target%gcd != 0 {
		s.log.LogReject(capacities, target, gcd)
		return &Solution{Steps: NoSolution, Rejected: true, GCD: gcd}, nil
	}

	sol, err := s.search(caps, target)
	if err != nil {
		return nil, err
	}
	sol.GCD = gcd
	s.log.LogSolve(sol)

	return sol, nil
}

// validate reports recorded option errors and A*-only options used with BFS.
func (o Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.Strategy == StrategyBFS {
		if o.MaxStates > 0 {
			return fmt.Errorf("%w: MaxStates applies to the astar strategy only", ErrOptionViolation)
		}
		if o.ReturnPath {
			return fmt.Errorf("%w: ReturnPath applies to the astar strategy only", ErrOptionViolation)
		}
	}

	return nil
}

func (s *Solver) search(caps pitcher.Capacities, target int) (*Solution, error) {
	switch s.opts.Strategy {
	case StrategyAStar:
		var opts []astar.Option
		if s.opts.MaxStates > 0 {
			opts = append(opts, astar.WithMaxStates(s.opts.MaxStates))
		}
		if s.opts.SkipIdle {
			opts = append(opts, astar.WithoutIdlePours())
		}
		if s.opts.ReturnPath {
			opts = append(opts, astar.WithReturnPath())
		}
		res, err := astar.Search(caps, target, opts...)
		if err != nil {
			return nil, err
		}
		return &Solution{Steps: res.Steps, Found: res.Found, States: res.States, Path: res.Path}, nil

	case StrategyBFS:
		var opts []bfs.Option
		if s.opts.SkipIdle {
			opts = append(opts, bfs.WithoutIdlePours())
		}
		res, err := bfs.Shortest(caps, target, opts...)
		if err != nil {
			return nil, err
		}
		return &Solution{Steps: res.Steps, Found: res.Found, States: int(res.Visited)}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s.opts.Strategy)
	}
}
