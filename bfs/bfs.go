// Package bfs provides an exhaustive breadth-first search over the pitcher
// state graph. It serves as a reference oracle for the informed search and
// as an alternate solving strategy on small instances.
//
// The reservoir only ever grows, so no state whose reservoir exceeds the
// target can lead to the goal. Pruning those states bounds the explored
// space to ∏(capacity[i]+1) · (target+1) states, which makes the search
// finite and lets it prove unreachability on its own.
//
// Visited states are tracked in a roaring64 bitmap keyed by the mixed-radix
// index of each state.
package bfs

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/katalvlaran/pitchers/pitcher"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state pitcher.State
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	caps    pitcher.Capacities
	target  int
	opts    BFSOptions
	expand  []pitcher.ExpandOption
	strides []uint64
	queue   []queueItem
	visited *roaring64.Bitmap
	res     *BFSResult
}

// Shortest runs breadth-first search from the all-empty state and returns
// the fewest actions that leave exactly target units in the reservoir.
// Returns ErrOptionViolation for bad options, ErrNilCapacities,
// a pitcher validation error, ErrNegativeTarget, ErrStateSpaceTooLarge,
// or any user-supplied hook error.
func Shortest(caps pitcher.Capacities, target int, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(caps) == 0 {
		return nil, ErrNilCapacities
	}
	if err := caps.Validate(); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}

	strides, err := mixedRadix(caps, target)
	if err != nil {
		return nil, err
	}

	w := &walker{
		caps:    caps,
		target:  target,
		opts:    o,
		strides: strides,
		queue:   make([]queueItem, 0, 64),
		visited: roaring64.New(),
		res:     &BFSResult{Steps: NoSolution},
	}
	if o.SkipIdle {
		w.expand = []pitcher.ExpandOption{pitcher.WithoutIdlePours()}
	}

	// Seed queue with the initial state
	w.enqueue(pitcher.Initial(caps.Len()), 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.res.Visited = w.visited.GetCardinality()

	return w.res, nil
}

// mixedRadix returns the stride of every state slot. Slot i has radix
// caps[i]+1 and the reservoir slot has radix target+1.
func mixedRadix(caps pitcher.Capacities, target int) ([]uint64, error) {
	strides := make([]uint64, len(caps)+1)
	stride := uint64(1)
	radix := func(i int) uint64 {
		if i == len(caps) {
			return uint64(target) + 1
		}
		return uint64(caps[i]) + 1
	}
	for i := range strides {
		strides[i] = stride
		hi, lo := bits.Mul64(stride, radix(i))
		if hi != 0 {
			return nil, fmt.Errorf("%w: %d pitchers, target %d", ErrStateSpaceTooLarge, len(caps), target)
		}
		stride = lo
	}

	return strides, nil
}

// index maps a pruned state to its position in the mixed-radix space.
func (w *walker) index(s pitcher.State) uint64 {
	var idx uint64
	for i, v := range s {
		idx += uint64(v) * w.strides[i]
	}

	return idx
}

// enqueue marks s visited and appends it to the queue.
func (w *walker) enqueue(s pitcher.State, depth int) {
	w.visited.Add(w.index(s))
	w.queue = append(w.queue, queueItem{state: s, depth: depth})
}

// loop processes the queue until empty, goal or error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue[0] = queueItem{}
		w.queue = w.queue[1:]

		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.state, err)
		}
		if item.state.Reservoir() == w.target {
			w.res.Steps = item.depth
			w.res.Found = true
			w.res.Goal = item.state

			return nil
		}
		w.enqueueSuccessors(item)
	}

	return nil
}

// enqueueSuccessors applies pruning and MaxDepth and enqueues each unseen successor.
func (w *walker) enqueueSuccessors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, next := range w.caps.Successors(item.state, w.expand...) {
		if next.Reservoir() > w.target {
			continue
		}
		if w.visited.Contains(w.index(next)) {
			continue
		}
		w.enqueue(next, nextDepth)
	}
}
