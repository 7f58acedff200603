// Package heuristic precomputes, for each destination region appearing in
// a connection set, the unweighted BFS hop distance from every other
// region over the port-adjacency graph (two regions are adjacent iff a
// port straddles them), then stores per-port the minimum of its two
// adjacent regions' distances, keyed by destination. This table backs the
// engine's admissible A* heuristic (spec §4.5).
package heuristic
