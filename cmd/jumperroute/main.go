// Command jumperroute generates a pad-lattice footprint, places a
// crossing-seeded connection set on its perimeter, and runs the
// A*-with-rip-up-and-reroute engine to solve it, printing a per-iteration
// metrics table and a final summary report.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"

	"github.com/jumperroute/router/generator"
	"github.com/jumperroute/router/policy"
	"github.com/jumperroute/router/router"
)

func main() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	cols := flag.Int("cols", 4, "pad lattice columns")
	rows := flag.Int("rows", 4, "pad lattice rows")
	crossings := flag.Int("crossings", 2, "target same-perimeter crossing count for the generated problem")
	seed := flag.Int64("seed", 1, "seed for the problem generator's LCG")
	verbose := flag.Bool("verbose", false, "print a row to the iteration table for every engine Step")
	flag.Parse()

	report := table.NewWriter()
	report.SetTitle("jumperroute iteration trace")
	report.AppendHeader(table.Row{"iter", "state", "current conn", "candidates", "rips"})
	atexit.Register(func() {
		fmt.Println(report.Render())
	})

	exitCode := run(*cols, *rows, *crossings, *seed, *verbose, report)
	atexit.Exit(exitCode)
}

func run(cols, rows, crossings int, seed int64, verbose bool, report table.Writer) int {
	grid, err := generator.GenerateGrid(gridOptions(cols, rows))
	if err != nil {
		slog.Error("grid generation failed", "error", err)
		return 1
	}

	connections, err := generator.CreateProblem(grid, crossings, seed, generator.DefaultProblemOptions())
	if err != nil {
		slog.Error("problem generation failed", "error", err)
		return 1
	}
	slog.Info("problem generated", "connections", len(connections), "target_crossings", crossings)

	params := policy.DefaultSolverParameters()
	eng, err := router.New(grid.Graph, connections, params, policy.NewJumperPolicy(params), crossings)
	if err != nil {
		slog.Error("engine construction failed", "error", err)
		return 1
	}

	for eng.State() != router.StateDone && eng.State() != router.StateFailed {
		eng.Step()
		if verbose {
			appendIterationRow(report, eng)
		}
	}
	appendIterationRow(report, eng)

	if eng.Failed() {
		slog.Error("solve failed", "kind", eng.FailureKind().String(), "error", eng.Error())
		return 1
	}

	slog.Info("solve complete", "routes", len(eng.SolvedRoutes()), "iterations", eng.Iterations())
	return 0
}

func gridOptions(cols, rows int) generator.GridOptions {
	opts := generator.DefaultGridOptions()
	opts.Cols, opts.Rows = cols, rows
	return opts
}

func appendIterationRow(report table.Writer, eng *router.Engine) {
	var connLabel string
	if c := eng.CurrentConnection(); c != nil {
		connLabel = fmt.Sprintf("%d", c.ID)
	} else {
		connLabel = "-"
	}
	report.AppendRow(table.Row{
		eng.Iterations(),
		eng.State().String(),
		connLabel,
		len(eng.PeekCandidates(1)),
		ripTotal(eng),
	})
}

func ripTotal(eng *router.Engine) int {
	total := 0
	for _, r := range eng.SolvedRoutes() {
		if r.RequiredRip {
			total++
		}
	}
	return total
}

