package pddlerrors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders StructuralErrors, pipeline skip-notices, ordering-cycle
// notices and fixture syntax errors for a terminal, in the teacher's
// Rust-like styling (bold level, dim separators). Only FormatSyntaxError
// shows a source snippet; structural errors have no source to show.
type Reporter struct{}

// NewReporter creates a Reporter.
func NewReporter() *Reporter { return &Reporter{} }

// FormatError renders a fatal StructuralError.
func (r *Reporter) FormatError(err *StructuralError) string {
	bold := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]: %s\n", bold("error"), err.Kind, err.Message)
	if err.Component != "" {
		fmt.Fprintf(&b, "  %s %s\n", dim("-->"), err.Component)
	}
	fmt.Fprintf(&b, "  %s %s\n", dim("note:"), Describe(err.Kind))
	return b.String()
}

// FormatSkip renders a domain (silent-skip) notice — not an error, just a
// note about a literal or action the simplifier chose not to split
// (spec §7 "Domain (silent skip)").
func (r *Reporter) FormatSkip(component, reason string) string {
	yellow := color.New(color.FgYellow).SprintFunc()
	return fmt.Sprintf("  %s %s: %s\n", yellow("skip:"), component, reason)
}

// FormatCycle renders an ordering-network cycle report (spec §7 "reported
// via isAcyclic(); no exception").
func (r *Reporter) FormatCycle(networkName string) string {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	return fmt.Sprintf("  %s ordering network %q is cyclic\n", red("cycle:"), networkName)
}

// FormatSyntaxError renders a caret-pointing message for a parser failure
// against the single offending source line. Callers (fixture.ParseString)
// locate that line and the column to point at; this just owns the styling,
// in the same bold/dim vocabulary as FormatError.
func (r *Reporter) FormatSyntaxError(filename, sourceLine string, lineNo, column int, detail string) string {
	bold := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	indent := column - 1
	if indent < 0 {
		indent = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", bold("syntax error"), detail)
	fmt.Fprintf(&b, "  %s %s:%d:%d\n", dim("-->"), filename, lineNo, column)
	fmt.Fprintf(&b, "  %s\n", sourceLine)
	fmt.Fprintf(&b, "  %s%s\n", strings.Repeat(" ", indent), bold("^"))
	return b.String()
}
