package preinstantiate

import (
	"testing"

	"pddlcore/fixture"
	"pddlcore/internal/ir"
)

// TestCreatePredicateTablesGolden drives spec §8 S6 from the golden YAML
// scenario rather than duplicating the occurrence-count table as literals.
func TestCreatePredicateTablesGolden(t *testing.T) {
	scenarios, err := fixture.LoadPredicateTableScenarios("../../fixture/testdata/predicate_table_scenarios.yaml")
	if err != nil {
		t.Fatalf("loading golden scenarios: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("expected at least one scenario")
	}

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			predicates := []ir.PredicateInfo{{Name: "R", Arity: sc.Arity}}
			argTypes := make([]ir.TypeId, sc.Arity)
			typedPredicates := [][]ir.TypeId{argTypes}
			types := []ir.TypeInfo{{Name: "object"}}
			domains := []map[ir.ConstantId]bool{{}}
			ctx := ir.NewContext(predicates, typedPredicates, types, domains, nil)

			var init []*ir.ExprNode
			for _, fact := range sc.Facts {
				args := make([]int, len(fact))
				for i, c := range fact {
					args[i] = c
				}
				init = append(init, ir.NewAtom(0, args...))
			}
			p := &Problem{Context: ctx, Init: init}

			if _, err := (CreatePredicateTables{}).Apply(p); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			table := ctx.PredicateTable(0)

			for _, c := range sc.Counts {
				tuple := make([]ir.ConstantId, len(c.Tuple))
				for i, v := range c.Tuple {
					tuple[i] = ir.ConstantId(v)
				}
				if got := table.Count(c.Mask, tuple); got != c.Want {
					t.Errorf("Count(mask=%d, tuple=%v) = %d, want %d", c.Mask, tuple, got, c.Want)
				}
			}
		})
	}
}

func TestCreatePredicateTablesSkipsNegativeFacts(t *testing.T) {
	predicates := []ir.PredicateInfo{{Name: "P", Arity: 1}}
	typedPredicates := [][]ir.TypeId{{0}}
	types := []ir.TypeInfo{{Name: "object"}}
	domains := []map[ir.ConstantId]bool{{0: true}}
	ctx := ir.NewContext(predicates, typedPredicates, types, domains, []string{"a"})

	p := &Problem{Context: ctx, Init: []*ir.ExprNode{ir.NewNot(ir.NewAtom(0, 0))}}
	changed, err := (CreatePredicateTables{}).Apply(p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if changed {
		t.Fatal("a negative init fact should never mark the table as changed")
	}
	table := ctx.PredicateTable(0)
	if got := table.Count(0, nil); got != 0 {
		t.Fatalf("Count(mask=0) = %d, want 0", got)
	}
}
