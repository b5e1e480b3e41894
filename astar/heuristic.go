package astar

import "github.com/katalvlaran/pitchers/pitcher"

// Heuristic estimates the remaining number of actions from s:
//
//	ceil(|target − reservoir| / maxCapacity)
//
// No single action moves more than maxCapacity into the reservoir, so the
// estimate never overestimates. It is 0 exactly at the goal. maxCapacity
// must be positive.
func Heuristic(s pitcher.State, target, maxCapacity int) int {
	remain := target - s.Reservoir()
	if remain < 0 {
		remain = -remain
	}
	if remain == 0 {
		return 0
	}

	steps := remain / maxCapacity
	if remain%maxCapacity != 0 {
		steps++
	}

	return steps
}
