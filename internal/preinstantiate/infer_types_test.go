package preinstantiate

import (
	"testing"

	"pddlcore/internal/ir"
)

// TestInferTypesFromInertia exercises spec §8 S5's setup: predicate P is
// arity 1 and INERTIA, with initial facts P(a) and P(b) out of domain
// {a,b,c}; the inferred domain must be exactly {a,b}.
func TestInferTypesFromInertia(t *testing.T) {
	predicates := []ir.PredicateInfo{{Name: "P", Arity: 1}}
	typedPredicates := [][]ir.TypeId{{0}}
	types := []ir.TypeInfo{{Name: "object"}}
	domains := []map[ir.ConstantId]bool{{0: true, 1: true, 2: true}}
	constants := []string{"a", "b", "c"}
	ctx := ir.NewContext(predicates, typedPredicates, types, domains, constants)

	init := []*ir.ExprNode{
		ir.NewAtom(0, 0),
		ir.NewAtom(0, 1),
	}
	p := &Problem{Context: ctx, Init: init}

	changed, err := (InferTypesFromInertia{}).Apply(p)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if !changed {
		t.Fatal("Apply should report a change")
	}

	domain, ok := ctx.InferredDomain(0)
	if !ok {
		t.Fatal("predicate P should now have an inferred domain")
	}
	if len(domain) != 2 || !domain[0] || !domain[1] {
		t.Fatalf("inferred domain = %v, want {a,b}", domain)
	}
}

func TestInferTypesSkipsNonUnaryInertia(t *testing.T) {
	predicates := []ir.PredicateInfo{{Name: "on", Arity: 2}}
	typedPredicates := [][]ir.TypeId{{0, 0}}
	types := []ir.TypeInfo{{Name: "object"}}
	domains := []map[ir.ConstantId]bool{{0: true}}
	constants := []string{"a"}
	ctx := ir.NewContext(predicates, typedPredicates, types, domains, constants)

	p := &Problem{Context: ctx}
	if _, err := (InferTypesFromInertia{}).Apply(p); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, ok := ctx.InferredDomain(0); ok {
		t.Fatal("an arity-2 predicate should never get an inferred domain")
	}
}

func TestInferTypesIgnoresNegativeInitFacts(t *testing.T) {
	predicates := []ir.PredicateInfo{{Name: "P", Arity: 1}}
	typedPredicates := [][]ir.TypeId{{0}}
	types := []ir.TypeInfo{{Name: "object"}}
	domains := []map[ir.ConstantId]bool{{0: true}}
	constants := []string{"a"}
	ctx := ir.NewContext(predicates, typedPredicates, types, domains, constants)

	p := &Problem{Context: ctx, Init: []*ir.ExprNode{ir.NewNot(ir.NewAtom(0, 0))}}
	if _, err := (InferTypesFromInertia{}).Apply(p); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	domain, ok := ctx.InferredDomain(0)
	if !ok {
		t.Fatal("P should still get an (empty) inferred domain")
	}
	if len(domain) != 0 {
		t.Fatalf("inferred domain = %v, want empty", domain)
	}
}
