// Package preinstantiate drives the four stages that turn a parsed
// planning problem into the compact, ground-ready intermediate
// representation the grounder consumes: inertia extraction, unary-inertia
// type inference, predicate occurrence tables, and action/method
// simplification by typed-parameter splitting (spec §2/§4).
package preinstantiate

import (
	"pddlcore/internal/ir"
	"pddlcore/internal/pddlerrors"
)

// Problem is the input/output contract of the pipeline (spec §6): a
// Context (the owning value for every global table) plus the actions,
// methods and ground initial-state facts the parser produced.
type Problem struct {
	Context *ir.Context
	Actions []*ir.Action
	Methods []*ir.Method
	// Init holds ATOM or NOT-ATOM ground facts only (spec §6 input
	// contract); negations are already pushed inward by the parser.
	Init []*ir.ExprNode
	// Skips accumulates the domain (silent-skip) decisions SimplifyWithInferredTypes
	// makes along the way (spec §7): never fatal, so the pipeline keeps
	// running, but worth surfacing to a caller that wants to know why a
	// candidate split stopped short.
	Skips []pddlerrors.SkipReason
}
