package preinstantiate

import (
	"testing"

	"pddlcore/internal/ir"
)

// TestPipelineRunEndToEnd wires the full spec §8 S5 scenario through all
// four stages: the action's only effect is done(), so P stays INERTIA
// (never touched by any effect), the initial state seeds its inferred domain, and
// the final stage splits pick(?x - object)'s parameter accordingly.
func TestPipelineRunEndToEnd(t *testing.T) {
	predicates := []ir.PredicateInfo{{Name: "P", Arity: 1}, {Name: "done", Arity: 0}}
	typedPredicates := [][]ir.TypeId{{0}, {}}
	types := []ir.TypeInfo{{Name: "object"}}
	domains := []map[ir.ConstantId]bool{{0: true, 1: true, 2: true}}
	constants := []string{"a", "b", "c"}
	ctx := ir.NewContext(predicates, typedPredicates, types, domains, constants)

	object, _ := ctx.FindType("object")
	action := &ir.Action{
		Name:          "pick",
		Parameters:    []ir.TypeId{object},
		Preconditions: ir.NewAtom(0, ir.VarToArg(0)),
		Effects:       ir.NewAtom(1),
	}
	init := []*ir.ExprNode{ir.NewAtom(0, 0), ir.NewAtom(0, 1)}

	problem := &Problem{Context: ctx, Actions: []*ir.Action{action}, Init: init}

	pipeline := NewPipeline(DefaultOptions())
	if err := pipeline.Run(problem); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(problem.Actions) != 1 {
		t.Fatalf("final action count = %d, want 1", len(problem.Actions))
	}
	if name := ctx.TypeName(problem.Actions[0].Parameters[0]); name != "object^P" {
		t.Fatalf("surviving action's parameter type = %q, want object^P", name)
	}
	if got := ctx.Inertia(0); got != ir.INERTIA {
		t.Fatalf("P inertia = %v, want INERTIA (never touched by an effect)", got)
	}
}

func TestPipelineRunStopsOnFirstError(t *testing.T) {
	pipeline := NewPipeline(DefaultOptions())
	problem := &Problem{} // nil Context: the first stage's Apply rejects it
	if err := pipeline.Run(problem); err == nil {
		t.Fatal("Run should error immediately on a nil context")
	}
}
