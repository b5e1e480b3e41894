// Package astar implements an informed shortest-path search (A*) over the
// implicit state graph of the water pitcher puzzle.
//
// Nodes are pitcher.State vectors, edges are single pouring actions of
// uniform cost 1, and the goal is any state whose reservoir holds exactly
// the target quantity. The frontier is a min-heap ordered by
// cost + Heuristic, with ties broken by lexicographic state order.
//
// Complexity:
//
//   - Time:  O(S · n² · log Q) where S is the number of expansions, n the pitcher
//     count (each expansion yields O(n²) successors) and Q the heap size.
//   - Space: O(S) for the cost map and O(Q) for the heap.
//
// Notes on implementation choices:
//
//   - The initial entry is pushed with priority 0 (its raw cost), not 0 + h.
//     It is the only entry in the heap, so it is popped first either way.
//   - There is no closed set. A state can be popped and expanded more than
//     once if it was pushed with several priorities; the cost guard
//     (newCost < cost[next]) keeps relaxations correct.
//   - We use a "lazy" decrease-key strategy: improved states are pushed again
//     and old heap entries are left in place.
//   - The reservoir never decreases, so successors whose reservoir already
//     exceeds the target are dropped. That bounds the graph to
//     ∏(capacity[i]+1) · (target+1) states, so an unreachable target ends
//     with an exhausted heap and NoSolution. A multiple of the GCD is not
//     always reachable: {4, 9} cannot measure 1, 2 or 6.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pitchers/pitcher"
)

// Search returns the minimum number of actions that leave exactly target
// units in the reservoir, starting from all pitchers empty. It terminates
// for every input; no GCD pre-filter is required.
//
// Returns:
//
//   - res.Steps: the minimum step count, or NoSolution if the heap is exhausted.
//   - res.Path:  the winning actions when WithReturnPath is given.
//   - err:       ErrOptionViolation, ErrNilCapacities, a wrapped pitcher
//     validation error, ErrNegativeTarget or ErrStateLimit.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. caps must be non-empty (ErrNilCapacities).
//  3. every capacity must be positive (pitcher.ErrNonPositiveCapacity).
//  4. target must be ≥ 0 (ErrNegativeTarget).
func Search(caps pitcher.Capacities, target int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the capacity vector and the target
	if len(caps) == 0 {
		return nil, ErrNilCapacities
	}
	if err := caps.Validate(); err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}

	// 3) Prepare the runner
	r := &runner{
		caps:    caps,
		target:  target,
		maxCap:  caps.Max(),
		options: cfg,
		cost:    make(map[string]int),
		pq:      make(stateQueue, 0, 64),
		res:     &Result{Steps: NoSolution},
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]edge)
	}
	if cfg.SkipIdle {
		r.expand = []pitcher.ExpandOption{pitcher.WithoutIdlePours()}
	}

	// 4) Seed and run
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	r.res.States = len(r.cost)

	return r.res, nil
}

// edge remembers how a state was reached on its cheapest known path.
type edge struct {
	parent pitcher.State
	move   pitcher.Move
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	caps    pitcher.Capacities     // Read-only capacity vector.
	target  int                    // Goal reservoir amount.
	maxCap  int                    // Largest capacity, heuristic divisor.
	options Options                // Configuration options.
	expand  []pitcher.ExpandOption // Options forwarded to the successor generator.
	cost    map[string]int         // State key → cheapest known cost.
	prev    map[string]edge        // State key → incoming edge; nil unless ReturnPath.
	pq      stateQueue             // Min-heap of (priority, state).
	res     *Result
}

// init records the initial state with cost 0 and pushes it with priority 0.
func (r *runner) init() {
	start := pitcher.Initial(r.caps.Len())
	r.cost[start.Key()] = 0
	heap.Init(&r.pq)
	r.push(0, start)
}

// process pops the lowest-priority entry until a goal state is found or
// the heap runs dry.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (priority, state) item.
		item := heap.Pop(&r.pq).(queueItem)
		current := item.state
		key := current.Key()
		g := r.cost[key]

		// 2) Goal test on the popped state.
		if current.Reservoir() == r.target {
			r.res.Steps = g
			r.res.Found = true
			r.res.Goal = current
			if r.prev != nil {
				r.res.Path = r.path(current)
			}
			return nil
		}

		// 3) Expand. Stale entries are expanded again with the current best cost.
		r.options.OnExpand(current, g)
		r.res.Expanded++
		if err := r.relax(current, g); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes every successor of current whose cost improves.
func (r *runner) relax(current pitcher.State, g int) error {
	newCost := g + 1
	for _, m := range r.caps.Expand(current, r.expand...) {
		if m.Next.Reservoir() > r.target {
			continue // overshoot can never come back down
		}
		key := m.Next.Key()
		known, seen := r.cost[key]
		if seen && newCost >= known {
			continue
		}
		if !seen && r.options.MaxStates > 0 && len(r.cost) >= r.options.MaxStates {
			return fmt.Errorf("%w: %d states stored", ErrStateLimit, len(r.cost))
		}

		r.cost[key] = newCost
		if r.prev != nil {
			r.prev[key] = edge{parent: current, move: m}
		}
		r.push(newCost+Heuristic(m.Next, r.target, r.maxCap), m.Next)
	}

	return nil
}

func (r *runner) push(priority int, s pitcher.State) {
	heap.Push(&r.pq, queueItem{priority: priority, state: s})
	r.res.Pushed++
}

// path walks predecessor links back from goal to the initial state.
func (r *runner) path(goal pitcher.State) []pitcher.Move {
	var moves []pitcher.Move
	for cur := goal; ; {
		e, ok := r.prev[cur.Key()]
		if !ok {
			break
		}
		moves = append(moves, e.move)
		cur = e.parent
	}
	// reverse to get start → goal
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}
