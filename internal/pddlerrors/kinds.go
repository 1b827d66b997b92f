// Package pddlerrors defines the preinstantiation core's error taxonomy
// (spec §7) and a colored terminal reporter for it, grounded on the
// teacher's CompilerError/ErrorReporter shape. Structural errors carry no
// source positions: this core never sees PDDL source text, only an
// already-parsed IR. The one positional diagnostic is FormatSyntaxError,
// used for fixture parse failures.
package pddlerrors

import "fmt"

// Kind distinguishes the three structural (fatal) error kinds of spec §7,
// which are surfaced immediately. The logical-sentinel and domain
// (silent-skip) categories have no Kind and are never errors: sentinels are
// values the simplifier handles in place, and domain skips are recorded as
// SkipReason values (below).
type Kind string

const (
	// NullInput: a required input (Context, action list, init set) was nil.
	NullInput Kind = "E1001"
	// MismatchedTable: |tableOfInertia| != |tableOfPredicates| or similar
	// global-table length invariant violation (spec §3).
	MismatchedTable Kind = "E1002"
	// MalformedExpression: a connective's required children are missing,
	// e.g. a WHEN with fewer than two children.
	MalformedExpression Kind = "E1003"
)

var kindDescriptions = map[Kind]string{
	NullInput:           "a required input was nil",
	MismatchedTable:     "a global table's length does not match the predicate table",
	MalformedExpression: "an expression node is missing children its connective requires",
}

// Describe returns a human-readable description of a structural error kind.
func Describe(k Kind) string {
	if d, ok := kindDescriptions[k]; ok {
		return d
	}
	return "unknown error kind"
}

// StructuralError is a fatal, non-recoverable error (spec §7): the caller
// should discard the partially mutated Context rather than retry, since the
// pipeline is deterministic and pure over its inputs. Kind is a plain
// exported field rather than an accessor method — every StructuralError is
// built through New/NullInputf/MismatchedTablef/MalformedExpressionf, so
// there is no invariant an accessor would need to guard.
type StructuralError struct {
	Kind      Kind
	Component string // e.g. "preinstantiate.ExtractInertia"
	Message   string
}

func (e *StructuralError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s: %s: %s", e.Component, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds a StructuralError.
func New(kind Kind, component, message string) *StructuralError {
	return &StructuralError{Kind: kind, Component: component, Message: message}
}

// NullInputf builds a NullInput StructuralError with a formatted message.
func NullInputf(component, format string, args ...any) *StructuralError {
	return New(NullInput, component, fmt.Sprintf(format, args...))
}

// MismatchedTablef builds a MismatchedTable StructuralError.
func MismatchedTablef(component, format string, args ...any) *StructuralError {
	return New(MismatchedTable, component, fmt.Sprintf(format, args...))
}

// MalformedExpressionf builds a MalformedExpression StructuralError.
func MalformedExpressionf(component, format string, args ...any) *StructuralError {
	return New(MalformedExpression, component, fmt.Sprintf(format, args...))
}

// SkipReason records a domain (silent-skip) decision (spec §7): a literal or
// whole candidate chain the simplifier chose to leave unsplit rather than an
// error. The pipeline accumulates these on Problem.Skips instead of logging
// them inline, so a caller can decide whether to surface them at all.
type SkipReason struct {
	Component string
	Reason    string
}
