package pitcher

// GCD returns the greatest common divisor of values using the iterative
// Euclidean algorithm reduced across the sequence. GCD() == 0 and
// negative inputs are taken by absolute value.
func GCD(values ...int) int {
	g := 0
	for _, v := range values {
		g = gcd2(g, v)
		if g == 1 {
			break // nothing divides further
		}
	}

	return g
}

func gcd2(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// GCD returns the greatest common divisor of all capacities.
func (c Capacities) GCD() int { return GCD(c...) }

// Feasible is the fast-reject filter: it reports false when target is not a
// multiple of GCD(c), in which case no sequence of actions can measure it.
// A true result does not prove reachability; the search stays the authority.
//
// Returns ErrNegativeTarget for target < 0 and the Validate error for an
// invalid vector.
func (c Capacities) Feasible(target int) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if target < 0 {
		return false, ErrNegativeTarget
	}

	return target%c.GCD() == 0, nil
}
