package fixture_test

import (
	"testing"

	"pddlcore/fixture"
	"pddlcore/internal/ir"
)

func TestBuilderContextTables(t *testing.T) {
	f, err := fixture.ParseString("<test>", blocksSource)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	problem, err := fixture.NewBuilder(f).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ctx := problem.Context

	if ctx.TypeCount() != 2 {
		t.Fatalf("TypeCount() = %d, want 2 (object, block)", ctx.TypeCount())
	}
	if ctx.ConstantCount() != 3 {
		t.Fatalf("ConstantCount() = %d, want 3", ctx.ConstantCount())
	}
	if ctx.PredicateCount() != 3 {
		t.Fatalf("PredicateCount() = %d, want 3", ctx.PredicateCount())
	}

	block, ok := ctx.FindType("block")
	if !ok {
		t.Fatal("expected a registered type named block")
	}
	if domain := ctx.Domain(block); len(domain) != 3 {
		t.Fatalf("block domain = %v, want all 3 constants", domain)
	}
	object, ok := ctx.FindType("object")
	if !ok {
		t.Fatal("expected the implicit object root type")
	}
	if domain := ctx.Domain(object); len(domain) != 3 {
		t.Fatalf("object domain = %v, want all 3 constants", domain)
	}
}

func TestBuilderAction(t *testing.T) {
	f, err := fixture.ParseString("<test>", blocksSource)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	problem, err := fixture.NewBuilder(f).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(problem.Actions) != 1 {
		t.Fatalf("Actions = %d, want 1", len(problem.Actions))
	}
	a := problem.Actions[0]
	if a.Name != "stack" || len(a.Parameters) != 2 {
		t.Fatalf("action = %+v", a)
	}
	if a.Preconditions.Connective != ir.AND || len(a.Preconditions.Children) != 2 {
		t.Fatalf("preconditions = %+v, want a 2-child AND", a.Preconditions)
	}
	if a.Effects.Connective != ir.AND || len(a.Effects.Children) != 2 {
		t.Fatalf("effects = %+v, want a 2-child AND", a.Effects)
	}
	if a.Effects.Children[1].Connective != ir.NOT {
		t.Fatalf("second effect child = %+v, want NOT", a.Effects.Children[1])
	}
}

func TestBuilderMethodSubtasksAndOrderings(t *testing.T) {
	f, err := fixture.ParseString("<test>", blocksSource)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	problem, err := fixture.NewBuilder(f).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(problem.Methods) != 1 {
		t.Fatalf("Methods = %d, want 1", len(problem.Methods))
	}
	m := problem.Methods[0]
	if m.Name != "m-stack" || len(m.Parameters) != 2 {
		t.Fatalf("method = %+v", m)
	}
	if len(m.Network.Subtasks) != 1 {
		t.Fatalf("Subtasks = %d, want 1", len(m.Network.Subtasks))
	}
	st := m.Network.Subtasks[0]
	if st.Name != "stack" || len(st.Arguments) != 2 {
		t.Fatalf("subtask = %+v", st)
	}
	if st.Arguments[0] != ir.VarToArg(0) || st.Arguments[1] != ir.VarToArg(1) {
		t.Fatalf("subtask arguments = %v, want the method's own parameters", st.Arguments)
	}
	if len(m.Network.Orderings) != 0 {
		t.Fatalf("Orderings = %v, want empty", m.Network.Orderings)
	}
}

func TestBuilderInitFacts(t *testing.T) {
	f, err := fixture.ParseString("<test>", blocksSource)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	problem, err := fixture.NewBuilder(f).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(problem.Init) != 3 {
		t.Fatalf("Init = %d facts, want 3", len(problem.Init))
	}
	negated := 0
	for _, fact := range problem.Init {
		if fact.Connective == ir.NOT {
			negated++
		}
	}
	if negated != 1 {
		t.Fatalf("negated init facts = %d, want 1", negated)
	}
}

func TestBuilderRejectsUnknownConstant(t *testing.T) {
	const bad = `
domain "bad" {
types {}
constants {}
predicates {
  p(object)
}
init {
  p(ghost)
}
}
`
	f, err := fixture.ParseString("<test>", bad)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if _, err := fixture.NewBuilder(f).Build(); err == nil {
		t.Fatal("Build should reject an init fact referencing an unknown constant")
	}
}
