// Package pitchers solves the water pitcher measuring puzzle: given pitchers
// of fixed integer capacities and one unbounded reservoir, find the fewest
// fill, empty and pour actions that leave an exact target quantity in the
// reservoir.
//
// What's inside:
//
//	• pitcher/ — Capacities and State types, GCD feasibility filter,
//	             successor generator (fill, empty into reservoir, pour)
//	• astar/   — informed shortest-path search with an admissible heuristic
//	• bfs/     — exhaustive breadth-first oracle over the bounded state space
//	• input/   — parser for the two-line text form ("3,5" then "4")
//	• cmd/pitchers — command-line front end printing a single integer
//
// The root Solver wires them together:
//
//	Filter ─(feasible)→ Search ─→ steps | -1
//
// A target that is not a multiple of GCD(capacities) is rejected without
// searching. Both that case and an exhausted search report -1; errors are
// reserved for invalid input.
//
// Quick example:
//
//	s := pitchers.New()
//	steps, err := s.Solve([]int{3, 5}, 4) // 7
//
//	A state is written (l0,l1|r): pitcher levels, then the reservoir.
//
//	    (0,0|0) ─fill 0→ (3,0|0) ─empty 0→ (0,0|3) ─fill 0→ (3,0|3) ...
package pitchers
