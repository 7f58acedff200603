package router

import (
	"github.com/jumperroute/router/hypergraph"
	"github.com/jumperroute/router/policy"
)

// FallbackVariant is one parameter perturbation the outer fallback control
// flow retries against a fresh graph clone if the primary attempt fails.
type FallbackVariant struct {
	Label             string
	Parameters        policy.SolverParameters
	Policy            policy.SolverPolicy
	ExpectedCrossings int
}

// RunWithFallback runs New/Solve with the primary parameters and policy
// first; if that solve fails, it retries each variant in order against a
// fresh clone of graph (so a failed attempt's partial installs never leak
// into the next try), adopting the first successful engine's final state.
// If every attempt fails, the last attempted Engine is returned so its
// failure detail remains inspectable.
//
// Disabled by default: spec §9 notes the source's whole-solver fallback as
// an optional outer control flow — callers opt in by building
// FallbackVariants and calling this instead of New+Solve directly.
func RunWithFallback(
	graph *hypergraph.Graph,
	connections []hypergraph.Connection,
	primaryParams policy.SolverParameters,
	primaryPolicy policy.SolverPolicy,
	primaryExpectedCrossings int,
	variants []FallbackVariant,
) (*Engine, error) {
	pristine := graph.Clone()
	eng, err := New(graph, connections, primaryParams, primaryPolicy, primaryExpectedCrossings)
	if err != nil {
		return nil, err
	}
	eng.Solve()
	if eng.Solved() {
		return eng, nil
	}

	for _, v := range variants {
		clone := pristine.Clone()
		attempt, err := New(clone, connections, v.Parameters, v.Policy, v.ExpectedCrossings)
		if err != nil {
			return nil, err
		}
		attempt.Solve()
		if attempt.Solved() {
			return attempt, nil
		}
		eng = attempt
	}

	return eng, nil
}
