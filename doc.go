// Package vatican implements an optimal-sharing evaluator for untyped
// lambda calculus, using bottom-up beta reduction with uplinks (the
// "Bologna"/"Vatican" technique).
//
// A term is a graph of *Node values linked downward by structural edges
// (an application's left/right children, a lambda's body and bound
// variable) and upward by uplinks — back-edges naming every parent that
// references a node. A beta step copies only the spine from the
// substituted variable up to the redex root; subgraphs the substitution
// never touches stay shared between the old and new term.
//
// The package reduces terms to head normal form (HnfReduce) and reclaims
// memory by uplink-liveness, not by tracing: a node is freed the instant
// its last incoming edge is removed.
package vatican
