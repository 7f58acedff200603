package policy

// UnitOfCost selects whether the heuristic term is expressed in hop count
// or Euclidean distance.
type UnitOfCost int

const (
	// UnitHops uses the precomputed BFS hop distance as the heuristic.
	UnitHops UnitOfCost = iota
	// UnitDistance uses Euclidean distance to the destination region's
	// center as the heuristic.
	UnitDistance
)

// ConnectionOrder selects the order connections are drained from the work
// queue on the first pass (rips always push to the tail regardless of
// this setting).
type ConnectionOrder int

const (
	// OrderInput preserves the order connections were supplied in.
	OrderInput ConnectionOrder = iota
	// OrderNearFirst sorts by ascending start-to-end Euclidean distance.
	OrderNearFirst
	// OrderFarFirst sorts by descending start-to-end Euclidean distance.
	OrderFarFirst
)

// SolverParameters is the tunable policy surface (spec §4.7). Zero-value
// SolverParameters is not meaningful; use DefaultSolverParameters.
type SolverParameters struct {
	// PortUsagePenalty multiplies a port's rip count, discouraging reuse
	// of congested ports. Must be ≥ 0.
	PortUsagePenalty float64

	// CrossingPenalty multiplies the count of different-net crossings a
	// candidate pair would introduce into a region. Must be ≥ 0.
	CrossingPenalty float64

	// RipCost is the additive cost of entering a port that already
	// carries a different-net assignment. Must be ≥ 0.
	RipCost float64

	// GreedyMultiplier scales the heuristic term in f = g + GreedyMultiplier·h.
	// Values > 1 bias the search toward the goal at the cost of
	// admissibility; 1 keeps the search admissible.
	GreedyMultiplier float64

	// BaseMaxIterations, AdditionalMaxIterationsPerConnection, and
	// AdditionalMaxIterationsPerCrossing compose the engine's absolute
	// step budget: Base + PerConnection·|connections| + PerCrossing·crossings.
	BaseMaxIterations                    int
	AdditionalMaxIterationsPerConnection int
	AdditionalMaxIterationsPerCrossing   int

	// RippingEnabled gates whether expansion may enter a port that
	// already carries a different-net assignment at all.
	RippingEnabled bool

	// UnitOfCost selects the heuristic's units.
	UnitOfCost UnitOfCost

	// ConnectionOrder selects the initial queue order.
	ConnectionOrder ConnectionOrder

	// MaxRipsPerConnection caps how many times a single connection may be
	// re-queued by rip-up before the engine gives up on it as a local
	// failure. 0 means unbounded (the base engine behavior; spec §9 notes
	// the absence of a cap as an open hardening question, not changed by
	// default).
	MaxRipsPerConnection int
}

// DefaultSolverParameters returns the documented default tuning: modest
// port-reuse and crossing penalties, a flat rip cost, an admissible
// heuristic (GreedyMultiplier 1), hop-count units, input connection
// order, ripping enabled, and an unbounded rip counter.
func DefaultSolverParameters() SolverParameters {
	return SolverParameters{
		PortUsagePenalty:                     1.0,
		CrossingPenalty:                      4.0,
		RipCost:                              2.0,
		GreedyMultiplier:                     1.0,
		BaseMaxIterations:                    2000,
		AdditionalMaxIterationsPerConnection: 500,
		AdditionalMaxIterationsPerCrossing:   100,
		RippingEnabled:                       true,
		UnitOfCost:                           UnitHops,
		ConnectionOrder:                      OrderInput,
		MaxRipsPerConnection:                 0,
	}
}
