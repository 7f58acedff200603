// Package hypergraph defines the region-hypergraph data model for the
// jumper-array router: Region, Port, Connection, Assignment, SolvedRoute,
// and Candidate, plus a Graph arena that owns regions and ports and the
// live/serialized conversion between them.
//
// Regions and ports are created once at construction and never mutated
// structurally afterward; only their assignment and rip-count fields
// change during a solve. Cross-references (port → region, region → port)
// are expressed as small integer ids rather than live pointers, so the
// serialized form matches the in-memory arena directly.
package hypergraph
