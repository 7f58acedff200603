// Package router is the core A*-with-rip-up-and-reroute search engine. An
// Engine drains a connection queue one connection at a time, searching the
// region hypergraph with an injected policy.SolverPolicy cost model;
// conflicting prior routes are ripped and their connections requeued.
//
// The engine is single-threaded and synchronous: Step advances exactly one
// search step (one candidate pop, either a skip, an expansion, or a
// finalize-and-install), and Solve repeats Step until a terminal state.
// There is no internal concurrency; independent solves need independent
// *hypergraph.Graph clones (see hypergraph.Graph.Clone).
package router
