// Package input reads a pitcher puzzle from its two-line text form:
//
//	3,5
//	4
//
// Line 1 is a comma-separated list of positive pitcher capacities, line 2
// the non-negative target quantity. Whitespace around each token is ignored.
// Anything after line 2 is ignored.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pitchers/pitcher"
)

// Sentinel errors for malformed input.
var (
	// ErrMissingCapacities indicates that the capacity line is absent.
	ErrMissingCapacities = errors.New("input: missing capacity line")

	// ErrMissingTarget indicates that the target line is absent.
	ErrMissingTarget = errors.New("input: missing target line")

	// ErrBadToken indicates a token that is not a base-10 integer.
	ErrBadToken = errors.New("input: not an integer")
)

// Puzzle is one parsed problem instance.
type Puzzle struct {
	Capacities pitcher.Capacities
	Target     int
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string) (Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return Puzzle{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse reads a Puzzle from r. Validation of capacities and target happens
// here, so a returned Puzzle is always safe to solve.
func Parse(r io.Reader) (Puzzle, error) {
	sc := bufio.NewScanner(r)

	capLine, ok, err := nextLine(sc)
	if err != nil {
		return Puzzle{}, err
	}
	if !ok {
		return Puzzle{}, ErrMissingCapacities
	}
	values, err := parseList(capLine, 1)
	if err != nil {
		return Puzzle{}, err
	}
	caps, err := pitcher.NewCapacities(values...)
	if err != nil {
		return Puzzle{}, fmt.Errorf("input: line 1: %w", err)
	}

	targetLine, ok, err := nextLine(sc)
	if err != nil {
		return Puzzle{}, err
	}
	if !ok {
		return Puzzle{}, ErrMissingTarget
	}
	target, err := parseInt(strings.TrimSpace(targetLine), 2, 1)
	if err != nil {
		return Puzzle{}, err
	}
	if target < 0 {
		return Puzzle{}, fmt.Errorf("input: line 2: %w: %d", pitcher.ErrNegativeTarget, target)
	}

	return Puzzle{Capacities: caps, Target: target}, nil
}

func nextLine(sc *bufio.Scanner) (string, bool, error) {
	if sc.Scan() {
		return sc.Text(), true, nil
	}
	if err := sc.Err(); err != nil {
		return "", false, fmt.Errorf("input: %w", err)
	}

	return "", false, nil
}

// parseList splits a comma-separated line into integers.
func parseList(line string, lineNo int) ([]int, error) {
	fields := strings.Split(line, ",")
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := parseInt(strings.TrimSpace(f), lineNo, i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func parseInt(tok string, lineNo, field int) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d field %d: %q", ErrBadToken, lineNo, field, tok)
	}

	return v, nil
}
