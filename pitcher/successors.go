package pitcher

import "fmt"

// Action identifies one kind of pouring step.
type Action int

const (
	// Fill tops a real pitcher up to its capacity from the tap.
	Fill Action = iota

	// Empty pours a real pitcher's whole content into the reservoir.
	Empty

	// Pour transfers water from one real pitcher to another until the
	// source is empty or the destination is full.
	Pour
)

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case Fill:
		return "fill"
	case Empty:
		return "empty"
	case Pour:
		return "pour"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Move is one labelled edge of the state graph.
//
// From is always a real pitcher index. To is -1 for Fill, n (the reservoir
// slot) for Empty, and the destination pitcher for Pour.
type Move struct {
	Action Action
	From   int
	To     int
	Amount int   // water moved by this step; 0 for an idle pour
	Next   State // resulting state
}

// String renders m as e.g. "pour 0->1 (3)".
func (m Move) String() string {
	switch m.Action {
	case Fill:
		return fmt.Sprintf("fill %d (%d)", m.From, m.Amount)
	case Empty:
		return fmt.Sprintf("empty %d (%d)", m.From, m.Amount)
	default:
		return fmt.Sprintf("%s %d->%d (%d)", m.Action, m.From, m.To, m.Amount)
	}
}

// ExpandOption tunes successor generation.
type ExpandOption func(*expandOptions)

type expandOptions struct {
	skipIdle bool
}

// WithoutIdlePours drops zero-amount transfers, which would otherwise
// produce a successor identical to the current state.
func WithoutIdlePours() ExpandOption {
	return func(o *expandOptions) { o.skipIdle = true }
}

// Expand enumerates every Move legal from s, in the order
// Fill(i), Empty(i), then Pour(i->j) for each j != i, for i = 0..n-1.
//
// Idle pours (amount 0) are emitted unless WithoutIdlePours is given. The
// reservoir is never a source and has no ceiling. s must be a valid State
// for c; Expand does not re-validate it.
func (c Capacities) Expand(s State, opts ...ExpandOption) []Move {
	var o expandOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := len(c)
	moves := make([]Move, 0, n*(n+1))
	for i := 0; i < n; i++ {
		if s[i] < c[i] {
			next := s.Clone()
			next[i] = c[i]
			moves = append(moves, Move{Action: Fill, From: i, To: -1, Amount: c[i] - s[i], Next: next})
		}
		if s[i] > 0 {
			next := s.Clone()
			next[n] += s[i]
			next[i] = 0
			moves = append(moves, Move{Action: Empty, From: i, To: n, Amount: s[i], Next: next})
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			amount := min(s[i], c[j]-s[j])
			if amount == 0 && o.skipIdle {
				continue
			}
			next := s.Clone()
			next[i] -= amount
			next[j] += amount
			moves = append(moves, Move{Action: Pour, From: i, To: j, Amount: amount, Next: next})
		}
	}

	return moves
}

// Successors returns the states reachable from s in exactly one action,
// in Expand order.
func (c Capacities) Successors(s State, opts ...ExpandOption) []State {
	moves := c.Expand(s, opts...)
	out := make([]State, len(moves))
	for k, m := range moves {
		out[k] = m.Next
	}

	return out
}
