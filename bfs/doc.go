// Package bfs provides an exhaustive breadth-first search over the water
// pitcher state graph, returning the fewest actions needed to leave an exact
// target quantity in the reservoir.
//
// What
//
//   - Explore states in non-decreasing action count from the all-empty state.
//   - Drop every successor whose reservoir already exceeds the target.
//   - Return a BFSResult with Steps, Found, Goal and the number of Visited states.
//   - Hook OnVisit runs as each state is dequeued and may abort the search.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - A small, obviously-correct oracle for cross-checking the A* search.
//   - Unlike A*, it proves unreachability by exhausting a finite space, so it
//     needs no GCD pre-filter.
//
// Determinism
//
//	Successors are enqueued in pitcher.Capacities.Expand order, so the visit
//	sequence is fully reproducible.
//
// Complexity (S = ∏(capacity[i]+1) · (target+1), n = pitchers)
//
//   - Time:   O(S · n²)
//   - Memory: O(S) for the queue; the roaring64 visited set is usually far smaller.
//
// Usage
//
//	res, err := bfs.Shortest(caps, 4)
//	if err != nil {
//	    // ErrNilCapacities, ErrNegativeTarget, ErrOptionViolation,
//	    // ErrStateSpaceTooLarge, pitcher validation errors or hook errors
//	}
//
//	res, err = bfs.Shortest(
//	    caps, 4,
//	    bfs.WithMaxDepth(10),
//	    bfs.WithoutIdlePours(),
//	    bfs.WithOnVisit(func(s pitcher.State, depth int) error { return nil }),
//	)
package bfs
