// Command pitchers reads a two-line puzzle file and prints the minimum
// number of actions needed to measure the target, or -1.
//
//	$ cat input1.txt
//	3,5
//	4
//	$ pitchers input1.txt
//	7
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/pitchers"
	"github.com/katalvlaran/pitchers/input"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer) int {
	logger := pitchers.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: pitchers <input-file>")
		return 2
	}

	puzzle, err := input.ReadFile(args[0])
	if err != nil {
		logger.Error("invalid input", "error", err)
		return 1
	}

	steps, err := pitchers.New(pitchers.WithLogger(logger)).Solve(puzzle.Capacities, puzzle.Target)
	if err != nil {
		logger.Error("solve failed", "error", err)
		return 1
	}

	fmt.Fprintln(stdout, steps)
	return 0
}
