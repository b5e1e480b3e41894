package astar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pitchers/astar"
	"github.com/katalvlaran/pitchers/pitcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation: invalid inputs and options are rejected before any search.
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	_, err := astar.Search(nil, 3)
	assert.ErrorIs(t, err, astar.ErrNilCapacities)

	_, err = astar.Search(pitcher.Capacities{3, 0}, 3)
	assert.ErrorIs(t, err, pitcher.ErrNonPositiveCapacity)

	_, err = astar.Search(pitcher.Capacities{3}, -1)
	assert.ErrorIs(t, err, astar.ErrNegativeTarget)

	_, err = astar.Search(pitcher.Capacities{3}, 3, astar.WithMaxStates(-5))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Known answers, cross-checked against an exhaustive breadth-first search.
// ------------------------------------------------------------------------

func TestSearch_KnownInstances(t *testing.T) {
	cases := []struct {
		name   string
		caps   pitcher.Capacities
		target int
		want   int
	}{
		{"three-five-four", pitcher.Capacities{3, 5}, 4, 7},
		{"five-three-four", pitcher.Capacities{5, 3}, 4, 7},
		{"three-five-one", pitcher.Capacities{3, 5}, 1, 5},
		{"three-five-two", pitcher.Capacities{3, 5}, 2, 3},
		{"three-five-eight", pitcher.Capacities{3, 5}, 8, 4},
		{"six-ten-fifteen", pitcher.Capacities{6, 10, 15}, 1, 5},
		{"ten-fifteen-six", pitcher.Capacities{10, 15, 6}, 1, 5},
		{"single-one", pitcher.Capacities{1}, 5, 10},
		{"single-seven", pitcher.Capacities{7}, 21, 6},
		{"three-seven", pitcher.Capacities{3, 7}, 10, 4},
		{"eight-three", pitcher.Capacities{8, 3}, 13, 5},
		{"four-six", pitcher.Capacities{4, 6}, 10, 4},
		{"two-three", pitcher.Capacities{2, 3}, 7, 6},
		{"two-four", pitcher.Capacities{2, 4}, 6, 4},
		{"four-pitchers", pitcher.Capacities{2, 5, 6, 72}, 143, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.Search(tc.caps, tc.target)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, tc.want, res.Steps)
			assert.Equal(t, tc.target, res.Goal.Reservoir())
		})
	}
}

func TestSearch_ZeroTarget(t *testing.T) {
	res, err := astar.Search(pitcher.Capacities{4}, 0, astar.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Steps)
	assert.True(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, 0, res.Expanded)
	assert.Equal(t, 1, res.Pushed)
}

// ------------------------------------------------------------------------
// 3. Behavioral properties.
// ------------------------------------------------------------------------

func TestSearch_InitialPoppedFirst(t *testing.T) {
	var first pitcher.State
	firstCost := -1
	_, err := astar.Search(pitcher.Capacities{3, 5}, 4, astar.WithOnExpand(func(s pitcher.State, cost int) {
		if first == nil {
			first = s.Clone()
			firstCost = cost
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, pitcher.Initial(2), first)
	assert.Equal(t, 0, firstCost)
}

func TestSearch_PathReplays(t *testing.T) {
	caps := pitcher.Capacities{3, 5}
	res, err := astar.Search(caps, 4, astar.WithReturnPath())
	require.NoError(t, err)
	require.Len(t, res.Path, res.Steps)

	// Replaying every move from the initial state must land on the goal.
	cur := pitcher.Initial(caps.Len())
	for _, m := range res.Path {
		var matched bool
		for _, cand := range caps.Expand(cur) {
			if cand.Action == m.Action && cand.From == m.From && cand.To == m.To && cand.Next.Equal(m.Next) {
				matched = true
				break
			}
		}
		require.True(t, matched, "move %s is not legal from %s", m, cur)
		cur = m.Next
	}
	assert.Equal(t, res.Goal, cur)
	assert.Equal(t, 4, cur.Reservoir())
}

func TestSearch_Idempotent(t *testing.T) {
	caps := pitcher.Capacities{6, 10, 15}
	a, err := astar.Search(caps, 1, astar.WithReturnPath())
	require.NoError(t, err)
	b, err := astar.Search(caps, 1, astar.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSearch_PermutationInvariant(t *testing.T) {
	perms := []pitcher.Capacities{
		{6, 10, 15}, {6, 15, 10}, {10, 6, 15},
		{10, 15, 6}, {15, 6, 10}, {15, 10, 6},
	}
	for _, target := range []int{1, 4, 7} {
		want := -2
		for _, caps := range perms {
			res, err := astar.Search(caps, target)
			require.NoError(t, err)
			if want == -2 {
				want = res.Steps
			}
			assert.Equal(t, want, res.Steps, "caps=%v target=%d", caps, target)
		}
	}
}

func TestSearch_WithoutIdlePoursSameAnswer(t *testing.T) {
	caps := pitcher.Capacities{3, 5}
	with, err := astar.Search(caps, 4)
	require.NoError(t, err)
	without, err := astar.Search(caps, 4, astar.WithoutIdlePours())
	require.NoError(t, err)

	assert.Equal(t, with.Steps, without.Steps)
}

// TestSearch_Exhausted covers targets that pass the GCD filter yet cannot be
// isolated: with {4, 9} every way to discard water adds it to the reservoir.
// The search must drain the bounded heap and report NoSolution, not hang.
func TestSearch_Exhausted(t *testing.T) {
	for _, caps := range []pitcher.Capacities{{4, 9}, {9, 4}} {
		for _, target := range []int{1, 2, 6} {
			res, err := astar.Search(caps, target, astar.WithReturnPath())
			require.NoError(t, err)
			assert.False(t, res.Found, "caps=%v target=%d", caps, target)
			assert.Equal(t, astar.NoSolution, res.Steps)
			assert.Nil(t, res.Goal)
			assert.Empty(t, res.Path)
			assert.Positive(t, res.Expanded)
		}
	}

	// Targets that are not a multiple of the GCD end the same way without a filter.
	res, err := astar.Search(pitcher.Capacities{2}, 3)
	require.NoError(t, err)
	assert.Equal(t, astar.NoSolution, res.Steps)
	assert.Equal(t, 4, res.States) // (0|0) (2|0) (0|2) (2|2)
}

func TestSearch_NeighboursOfUnreachable(t *testing.T) {
	cases := []struct {
		caps   pitcher.Capacities
		target int
		want   int
	}{
		{pitcher.Capacities{4, 9}, 3, 7},
		{pitcher.Capacities{4, 9}, 7, 9},
		{pitcher.Capacities{4, 9}, 11, 11},
		{pitcher.Capacities{5, 7}, 1, astar.NoSolution},
		{pitcher.Capacities{5, 7}, 6, 11},
		{pitcher.Capacities{3, 8}, 2, astar.NoSolution},
		{pitcher.Capacities{3, 8}, 7, 11},
	}
	for _, tc := range cases {
		res, err := astar.Search(tc.caps, tc.target)
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Steps, "caps=%v target=%d", tc.caps, tc.target)
	}
}

func TestSearch_StateLimit(t *testing.T) {
	// A distant target needs far more than 50 stored states.
	_, err := astar.Search(pitcher.Capacities{3, 5}, 1000, astar.WithMaxStates(50))
	assert.ErrorIs(t, err, astar.ErrStateLimit)

	// A generous cap does not interfere with a solvable instance.
	res, err := astar.Search(pitcher.Capacities{3, 5}, 4, astar.WithMaxStates(100000))
	require.NoError(t, err)
	assert.Equal(t, 7, res.Steps)
	assert.LessOrEqual(t, res.States, 100000)
}

func TestHeuristic(t *testing.T) {
	assert.Equal(t, 0, astar.Heuristic(pitcher.State{0, 0, 4}, 4, 5))
	assert.Equal(t, 1, astar.Heuristic(pitcher.State{0, 0, 0}, 4, 5))
	assert.Equal(t, 1, astar.Heuristic(pitcher.State{0, 0, 0}, 5, 5))
	assert.Equal(t, 2, astar.Heuristic(pitcher.State{0, 0, 0}, 6, 5))
	assert.Equal(t, 1, astar.Heuristic(pitcher.State{0, 0, 8}, 4, 5)) // overshoot

	// no overflow near the top of the int range
	assert.Equal(t, math.MaxInt, astar.Heuristic(pitcher.State{0, 0}, math.MaxInt, 1))
	assert.Equal(t, math.MaxInt/2+1, astar.Heuristic(pitcher.State{0, 0}, math.MaxInt, 2))
	assert.Equal(t, 1, astar.Heuristic(pitcher.State{0, 0}, math.MaxInt, math.MaxInt))
}
