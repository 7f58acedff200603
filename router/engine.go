package router

import (
	"fmt"

	"github.com/jumperroute/router/heuristic"
	"github.com/jumperroute/router/hypergraph"
	"github.com/jumperroute/router/policy"
	"github.com/jumperroute/router/pqueue"
)

// noPort is the sentinel LastPort value on a root candidate, which has no
// predecessor port.
const noPort = hypergraph.PortID(-1)

// ConstructorParams is a serializable record of the inputs an Engine was
// built from, returned by GetConstructorParams so a caller can replay a
// solve byte-for-byte (determinism testing, the fallback control flow, or
// a CLI/JSON harness).
type ConstructorParams struct {
	Graph             *hypergraph.SerializedGraph       `json:"graph"`
	Connections       []hypergraph.SerializedConnection `json:"connections"`
	Parameters        policy.SolverParameters           `json:"parameters"`
	ExpectedCrossings int                                `json:"expectedCrossings"`
}

// Engine is the A*-with-RRR search engine. Construct with New, advance
// with Step or Solve, and inspect progress through its observable fields
// and accessor methods.
type Engine struct {
	graph  *hypergraph.Graph
	policy policy.SolverPolicy
	params policy.SolverParameters

	originalConnections []hypergraph.Connection
	expectedCrossings   int
	connByID            map[hypergraph.ConnectionID]hypergraph.Connection
	pending             []hypergraph.Connection

	queue   *pqueue.Queue
	visited map[hypergraph.PortID]float64

	ripCounts map[hypergraph.ConnectionID]int

	solvedRoutes []*hypergraph.SolvedRoute

	maxIterations int
	iterations    int

	state       State
	solved      bool
	failed      bool
	failureKind FailureKind
	errMessage  string

	currentConnection *hypergraph.Connection
	lastCandidate     *hypergraph.Candidate
}

// New constructs an Engine: precomputes per-destination heuristic tables,
// orders the connection queue per params.ConnectionOrder, and composes the
// iteration budget from params and expectedCrossings (the crossing count
// the caller expects to resolve, e.g. the target the problem generator was
// seeded for; 0 if unknown).
//
// Returns ErrMalformedGraph-wrapping errors if any connection references a
// region absent from g.
func New(
	g *hypergraph.Graph,
	connections []hypergraph.Connection,
	params policy.SolverParameters,
	pol policy.SolverPolicy,
	expectedCrossings int,
) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrMalformedGraph)
	}

	connByID := make(map[hypergraph.ConnectionID]hypergraph.Connection, len(connections))
	destinations := make([]hypergraph.RegionID, 0, len(connections))
	seenDest := make(map[hypergraph.RegionID]bool)
	for _, c := range connections {
		if !g.HasRegion(c.StartRegion) {
			return nil, fmt.Errorf("%w: connection %d start region %d", ErrMalformedGraph, c.ID, c.StartRegion)
		}
		if !g.HasRegion(c.EndRegion) {
			return nil, fmt.Errorf("%w: connection %d end region %d", ErrMalformedGraph, c.ID, c.EndRegion)
		}
		connByID[c.ID] = c
		if !seenDest[c.EndRegion] {
			seenDest[c.EndRegion] = true
			destinations = append(destinations, c.EndRegion)
		}
	}

	if err := heuristic.Precompute(g, destinations); err != nil {
		return nil, fmt.Errorf("router: precompute heuristic: %w", err)
	}

	ordered, err := policy.OrderConnections(g, connections, params.ConnectionOrder)
	if err != nil {
		return nil, fmt.Errorf("router: order connections: %w", err)
	}

	budget := params.BaseMaxIterations +
		params.AdditionalMaxIterationsPerConnection*len(connections) +
		params.AdditionalMaxIterationsPerCrossing*expectedCrossings

	orig := make([]hypergraph.Connection, len(connections))
	copy(orig, connections)

	return &Engine{
		graph:               g,
		policy:              pol,
		params:              params,
		originalConnections: orig,
		expectedCrossings:   expectedCrossings,
		connByID:            connByID,
		pending:             ordered,
		queue:               pqueue.New(),
		ripCounts:           make(map[hypergraph.ConnectionID]int),
		maxIterations:       budget,
		state:               StateIdle,
	}, nil
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() State { return e.state }

// Solved reports whether every connection has been successfully routed.
func (e *Engine) Solved() bool { return e.solved }

// Failed reports whether the solve has terminated unsuccessfully.
func (e *Engine) Failed() bool { return e.failed }

// FailureKind classifies a failed solve's termination; FailureNone if not failed.
func (e *Engine) FailureKind() FailureKind { return e.failureKind }

// Error returns the terminal error if the engine has failed, nil otherwise.
func (e *Engine) Error() error {
	if !e.failed {
		return nil
	}

	switch e.failureKind {
	case FailureMalformedGraph:
		return fmt.Errorf("%w: %s", ErrMalformedGraph, e.errMessage)
	case FailureNoRouteFound:
		return fmt.Errorf("%w: %s", ErrNoRouteFound, e.errMessage)
	case FailureBudgetExhausted:
		return fmt.Errorf("%w: %s", ErrBudgetExhausted, e.errMessage)
	}

	return fmt.Errorf("router: %s: %s", e.failureKind, e.errMessage)
}

// Iterations returns the number of search steps taken on connections so
// far. Each such step pops at most one candidate; the step that exhausts
// the budget or finds the queue drained is counted too, and starting a
// connection is not.
func (e *Engine) Iterations() int { return e.iterations }

// SolvedRoutes returns the routes installed so far, in installation order.
// Safe to read even after a failed solve: no partial results are hidden.
func (e *Engine) SolvedRoutes() []*hypergraph.SolvedRoute {
	out := make([]*hypergraph.SolvedRoute, len(e.solvedRoutes))
	copy(out, e.solvedRoutes)

	return out
}

// CurrentConnection returns the connection currently being searched, or
// nil before the first connection starts, between connections, and after
// success. After a failure it still returns the connection that failed.
func (e *Engine) CurrentConnection() *hypergraph.Connection { return e.currentConnection }

// LastCandidate returns the most recently popped candidate, or nil until
// the first candidate is popped.
func (e *Engine) LastCandidate() *hypergraph.Candidate { return e.lastCandidate }

// PeekCandidates returns up to k queued candidates in ascending-f order,
// for debugging and visualization; does not mutate the queue.
func (e *Engine) PeekCandidates(k int) []*hypergraph.Candidate {
	items := e.queue.PeekK(k)
	out := make([]*hypergraph.Candidate, len(items))
	for i, it := range items {
		out[i] = it.(*hypergraph.Candidate)
	}

	return out
}

// GetConstructorParams returns a record sufficient to reconstruct an
// equivalent engine (the original, unmutated connection order and inputs),
// in serialized (JSON-marshalable) form.
func (e *Engine) GetConstructorParams() ConstructorParams {
	conns := make([]hypergraph.SerializedConnection, len(e.originalConnections))
	for i, c := range e.originalConnections {
		conns[i] = hypergraph.ToSerializedConnection(c)
	}

	return ConstructorParams{
		Graph:             hypergraph.ToSerialized(e.graph),
		Connections:       conns,
		Parameters:        e.params,
		ExpectedCrossings: e.expectedCrossings,
	}
}

func (e *Engine) networkOf(id hypergraph.ConnectionID) hypergraph.NetworkID {
	return e.connByID[id].NetworkID
}

// Solve repeats Step until the engine reaches StateDone or StateFailed.
func (e *Engine) Solve() {
	for e.state != StateDone && e.state != StateFailed {
		e.Step()
	}
}

// Step advances the engine by exactly one search step: starting the next
// connection, popping and skipping a stale candidate, expanding a
// candidate, or finalizing and installing a completed route. A no-op once
// the engine has reached a terminal state.
func (e *Engine) Step() {
	if e.state == StateDone || e.state == StateFailed {
		return
	}

	if e.currentConnection == nil {
		if len(e.pending) == 0 {
			e.state = StateDone
			e.solved = true

			return
		}
		e.startConnection()

		return
	}

	e.iterations++
	if e.iterations > e.maxIterations {
		e.fail(FailureBudgetExhausted, fmt.Sprintf("exceeded %d iterations", e.maxIterations))

		return
	}

	item, ok := e.queue.Pop()
	if !ok {
		e.fail(FailureNoRouteFound, fmt.Sprintf("connection %d: candidate queue drained", e.currentConnection.ID))

		return
	}

	cand := item.(*hypergraph.Candidate)
	e.lastCandidate = cand

	if bestG, seen := e.visited[cand.Port]; seen && bestG <= cand.G {
		return // stale entry from lazy decrease-key; skip without counting as expansion.
	}
	e.visited[cand.Port] = cand.G

	if cand.NextRegion == e.currentConnection.EndRegion {
		e.finalize(cand)

		return
	}

	e.expand(cand)
}

// startConnection pops the head of the pending queue, resets per-connection
// search state, and seeds the frontier with a root candidate for every port
// of the start region.
func (e *Engine) startConnection() {
	conn := e.pending[0]
	e.pending = e.pending[1:]
	e.currentConnection = &conn
	e.state = StateSearching

	e.queue.Reset()
	e.visited = make(map[hypergraph.PortID]float64)

	region, err := e.graph.Region(conn.StartRegion)
	if err != nil {
		e.fail(FailureMalformedGraph, err.Error())

		return
	}

	for _, portID := range region.Ports {
		port, err := e.graph.Port(portID)
		if err != nil {
			e.fail(FailureMalformedGraph, err.Error())

			return
		}

		e.queue.Push(&hypergraph.Candidate{
			Port:       portID,
			Parent:     nil,
			LastRegion: conn.StartRegion,
			LastPort:   noPort,
			NextRegion: port.OtherRegion(conn.StartRegion),
			Hops:       0,
			G:          0,
			H:          0,
			F:          0,
		})
	}
}

// expand enumerates every port of cand.NextRegion other than cand's own
// port, in the region's construction order, and pushes a successor
// candidate for each survivor.
func (e *Engine) expand(cand *hypergraph.Candidate) {
	region, err := e.graph.Region(cand.NextRegion)
	if err != nil {
		e.fail(FailureMalformedGraph, err.Error())

		return
	}

	conn := *e.currentConnection

	for _, portID := range region.Ports {
		if portID == cand.Port {
			continue
		}

		port, err := e.graph.Port(portID)
		if err != nil {
			e.fail(FailureMalformedGraph, err.Error())

			return
		}

		ripRequired := port.Assignment != nil && e.networkOf(port.Assignment.Connection) != conn.NetworkID
		if ripRequired && !e.params.RippingEnabled {
			continue
		}

		crossingCost, err := e.policy.IncreasedRegionCost(e.graph, cand.NextRegion, cand.Port, portID, conn.NetworkID, e.networkOf)
		if err != nil {
			e.fail(FailureMalformedGraph, err.Error())

			return
		}

		usage, err := e.policy.PortUsagePenalty(e.graph, portID)
		if err != nil {
			e.fail(FailureMalformedGraph, err.Error())

			return
		}

		ripCost := 0.0
		if ripRequired {
			ripCost = e.params.RipCost
		}

		g := cand.G + crossingCost + ripCost + usage

		h, err := e.policy.EstimateCostToEnd(e.graph, portID, conn.EndRegion)
		if err != nil {
			e.fail(FailureMalformedGraph, err.Error())

			return
		}

		f := g + e.params.GreedyMultiplier*h

		e.queue.Push(&hypergraph.Candidate{
			Port:        portID,
			Parent:      cand,
			LastRegion:  cand.NextRegion,
			LastPort:    cand.Port,
			NextRegion:  port.OtherRegion(cand.NextRegion),
			Hops:        cand.Hops + 1,
			G:           g,
			H:           h,
			F:           f,
			RipRequired: ripRequired,
		})
	}
}

// finalize walks cand's parent chain into a path, rips any conflicting
// prior routes it collides with, installs the new route, and advances the
// state machine.
func (e *Engine) finalize(cand *hypergraph.Candidate) {
	e.state = StateInstalling
	conn := *e.currentConnection

	path := []*hypergraph.Candidate{cand}
	for p := cand.Parent; p != nil; p = p.Parent {
		path = append([]*hypergraph.Candidate{p}, path...)
	}

	// toRip preserves first-seen order (path-port scan, then per-segment
	// crossing scan) so that a multi-rip finalize ripples through the
	// pending queue in a deterministic order, matching the engine's
	// determinism guarantee.
	seen := make(map[*hypergraph.Assignment]bool)
	var toRip []*hypergraph.Assignment
	addRip := func(a *hypergraph.Assignment) {
		if !seen[a] {
			seen[a] = true
			toRip = append(toRip, a)
		}
	}

	for _, c := range path {
		port, err := e.graph.Port(c.Port)
		if err != nil {
			e.fail(FailureMalformedGraph, err.Error())

			return
		}
		if port.Assignment != nil && e.networkOf(port.Assignment.Connection) != conn.NetworkID {
			addRip(port.Assignment)
		}
	}

	for i := 1; i < len(path); i++ {
		c := path[i]
		offending, err := e.policy.RipsRequiredFor(e.graph, c.LastRegion, c.LastPort, c.Port, conn.NetworkID, e.networkOf)
		if err != nil {
			e.fail(FailureMalformedGraph, err.Error())

			return
		}
		for _, a := range offending {
			addRip(a)
		}
	}

	for _, a := range toRip {
		if err := e.graph.RemoveAssignment(a); err != nil {
			e.fail(FailureMalformedGraph, err.Error())

			return
		}
		e.dropSolvedRoute(a.Connection)
		e.pending = append(e.pending, e.connByID[a.Connection])

		e.ripCounts[a.Connection]++
		if e.params.MaxRipsPerConnection > 0 && e.ripCounts[a.Connection] > e.params.MaxRipsPerConnection {
			e.fail(FailureRipLimitExceeded, fmt.Sprintf("connection %d ripped more than %d times", a.Connection, e.params.MaxRipsPerConnection))

			return
		}
	}

	for i := 1; i < len(path); i++ {
		c := path[i]
		if err := e.graph.InstallAssignment(&hypergraph.Assignment{
			Region:     c.LastRegion,
			PortA:      c.LastPort,
			PortB:      c.Port,
			Connection: conn.ID,
		}); err != nil {
			e.fail(FailureMalformedGraph, err.Error())

			return
		}
	}

	e.solvedRoutes = append(e.solvedRoutes, &hypergraph.SolvedRoute{
		Connection:  conn.ID,
		Candidates:  path,
		RequiredRip: len(toRip) > 0,
	})

	e.currentConnection = nil
	if len(e.pending) == 0 {
		e.state = StateDone
		e.solved = true

		return
	}
	e.state = StateSearching
}

// dropSolvedRoute removes the solved route for connID, if present.
func (e *Engine) dropSolvedRoute(connID hypergraph.ConnectionID) {
	for i, r := range e.solvedRoutes {
		if r.Connection == connID {
			e.solvedRoutes = append(e.solvedRoutes[:i], e.solvedRoutes[i+1:]...)

			return
		}
	}
}

func (e *Engine) fail(kind FailureKind, message string) {
	e.state = StateFailed
	e.failed = true
	e.failureKind = kind
	e.errMessage = message
}
