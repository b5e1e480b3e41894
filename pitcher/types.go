// Package pitcher defines the Capacities and State types of the water pitcher
// puzzle, the GCD feasibility filter, and the successor generator.
//
// A puzzle has n real pitchers with fixed positive capacities plus one
// unbounded reservoir. A State is a vector of length n+1: entries 0..n-1 are
// the current fill levels of the real pitchers, entry n is the total amount
// ever emptied into the reservoir.
//
// Errors:
//
//	ErrNoPitchers          - the capacity vector is empty.
//	ErrNonPositiveCapacity - a capacity is zero or negative.
//	ErrNegativeTarget      - the target quantity is negative.
//	ErrStateShape          - a State does not have n+1 entries.
//	ErrStateRange          - a level is outside [0, capacity] or the reservoir is negative.
package pitcher

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for pitcher validation.
var (
	// ErrNoPitchers indicates that the capacity vector has no entries.
	ErrNoPitchers = errors.New("pitcher: at least one pitcher is required")

	// ErrNonPositiveCapacity indicates a capacity ≤ 0.
	ErrNonPositiveCapacity = errors.New("pitcher: capacity must be positive")

	// ErrNegativeTarget indicates a target quantity < 0.
	ErrNegativeTarget = errors.New("pitcher: target must be non-negative")

	// ErrStateShape indicates a State whose length does not match the capacities.
	ErrStateShape = errors.New("pitcher: state length mismatch")

	// ErrStateRange indicates a State entry outside its legal range.
	ErrStateRange = errors.New("pitcher: state entry out of range")
)

// Capacities is the immutable vector of real pitcher capacities.
type Capacities []int

// NewCapacities validates values and returns them as a Capacities vector.
// The input slice is copied, so later mutation by the caller has no effect.
func NewCapacities(values ...int) (Capacities, error) {
	if len(values) == 0 {
		return nil, ErrNoPitchers
	}
	caps := make(Capacities, len(values))
	for i, v := range values {
		if v <= 0 {
			return nil, fmt.Errorf("%w: pitcher %d has capacity %d", ErrNonPositiveCapacity, i, v)
		}
		caps[i] = v
	}

	return caps, nil
}

// Len returns the number of real pitchers.
func (c Capacities) Len() int { return len(c) }

// Max returns the largest capacity, or 0 for an empty vector.
func (c Capacities) Max() int {
	m := 0
	for _, v := range c {
		if v > m {
			m = v
		}
	}

	return m
}

// Validate checks that every capacity is positive.
func (c Capacities) Validate() error {
	if len(c) == 0 {
		return ErrNoPitchers
	}
	for i, v := range c {
		if v <= 0 {
			return fmt.Errorf("%w: pitcher %d has capacity %d", ErrNonPositiveCapacity, i, v)
		}
	}

	return nil
}

// ValidateState reports whether s is a legal State for these capacities.
func (c Capacities) ValidateState(s State) error {
	if len(s) != len(c)+1 {
		return fmt.Errorf("%w: got %d entries, want %d", ErrStateShape, len(s), len(c)+1)
	}
	for i, capacity := range c {
		if s[i] < 0 || s[i] > capacity {
			return fmt.Errorf("%w: pitcher %d level %d not in [0,%d]", ErrStateRange, i, s[i], capacity)
		}
	}
	if s.Reservoir() < 0 {
		return fmt.Errorf("%w: reservoir %d is negative", ErrStateRange, s.Reservoir())
	}

	return nil
}

// State is a full snapshot: real pitcher levels followed by the reservoir total.
// States compare by value; use Key for map lookups.
type State []int

// Initial returns the all-zero State for n real pitchers.
func Initial(n int) State {
	return make(State, n+1)
}

// Reservoir returns the amount accumulated in the reservoir.
func (s State) Reservoir() int { return s[len(s)-1] }

// Level returns the fill level of real pitcher i.
func (s State) Level(i int) int { return s[i] }

// Clone returns an independent copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)

	return out
}

// Equal reports whether s and other hold the same values.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Less orders states lexicographically. Shorter states sort first on a
// common prefix. It is a strict total order over equal-length states.
func (s State) Less(other State) bool {
	n := len(s)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}

	return len(s) < len(other)
}

// Key encodes s as a compact string usable as a map key.
// Two states share a key iff they are Equal.
func (s State) Key() string {
	buf := make([]byte, 0, len(s)*2)
	for _, v := range s {
		buf = binary.AppendVarint(buf, int64(v))
	}

	return string(buf)
}

// String renders s as "(l0,l1,...|r)".
func (s State) String() string {
	if len(s) == 0 {
		return "()"
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range s[:len(s)-1] {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(s.Reservoir()))
	b.WriteByte(')')

	return b.String()
}
