// Package pqueue implements the binary min-heap priority queue the router
// uses to order search candidates by ascending f-score, with stable FIFO
// tie-breaking among equal keys (an insertion sequence number augments the
// key, following the lazy-decrease-key heap used by the teacher's
// dijkstra package).
package pqueue
