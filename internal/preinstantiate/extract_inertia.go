package preinstantiate

import (
	"pddlcore/internal/ir"
	"pddlcore/internal/pddlerrors"
)

// ExtractInertia implements spec §4.3: for every action's effect tree,
// recursively fold positive/negative literal occurrences into
// tableOfInertia via the join-semilattice in ir.Inertia. Only effects are
// scanned; preconditions never reclassify a predicate.
//
// Running it twice over the same actions is a no-op the second time
// (spec §8 property 1, inertia monotonicity): Join never revisits a
// predicate once it reaches FLUENT, and a repeat sighting of the same
// polarity leaves POSITIVE/NEGATIVE unchanged.
type ExtractInertia struct{}

func (ExtractInertia) Name() string { return "extract-inertia" }
func (ExtractInertia) Description() string {
	return "classifies predicates as INERTIA/POSITIVE/NEGATIVE/FLUENT from action effects"
}

func (s ExtractInertia) Apply(p *Problem) (bool, error) {
	if p.Context == nil {
		return false, pddlerrors.NullInputf(s.Name(), "problem context is nil")
	}
	changed := false
	for _, action := range p.Actions {
		if action == nil {
			continue
		}
		if err := scanEffect(p.Context, action.Effects, &changed); err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// scanEffect walks an effect tree and folds literal occurrences into the
// context's inertia table. It returns a *pddlerrors.StructuralError only on
// a malformed node (a connective missing children it requires); well-formed
// trees never error.
func scanEffect(ctx *ir.Context, node *ir.ExprNode, changed *bool) error {
	if node == nil {
		return nil
	}
	switch node.Connective {
	case ir.ATOM:
		before := ctx.Inertia(node.Predicate)
		after := before.JoinPositiveEffect()
		if after != before {
			ctx.SetInertia(node.Predicate, after)
			*changed = true
		}
		return nil

	case ir.NOT:
		if len(node.Children) != 1 {
			return pddlerrors.MalformedExpressionf("extract-inertia", "NOT requires exactly one child, got %d", len(node.Children))
		}
		child := node.Children[0]
		if child.Connective == ir.ATOM {
			before := ctx.Inertia(child.Predicate)
			after := before.JoinNegativeEffect()
			if after != before {
				ctx.SetInertia(child.Predicate, after)
				*changed = true
			}
			return nil
		}
		return scanEffect(ctx, child, changed)

	case ir.AND, ir.OR:
		for _, c := range node.Children {
			if err := scanEffect(ctx, c, changed); err != nil {
				return err
			}
		}
		return nil

	case ir.AT_START, ir.AT_END, ir.FORALL, ir.EXISTS:
		if len(node.Children) != 1 {
			return pddlerrors.MalformedExpressionf("extract-inertia", "%s requires exactly one child, got %d", node.Connective, len(node.Children))
		}
		return scanEffect(ctx, node.Children[0], changed)

	case ir.WHEN:
		if len(node.Children) != 2 {
			return pddlerrors.MalformedExpressionf("extract-inertia", "WHEN requires exactly two children, got %d", len(node.Children))
		}
		// Only the consequent classifies effects; the antecedent of a
		// conditional effect is a condition, not an assertion (spec §4.3/§9).
		return scanEffect(ctx, node.Children[1], changed)

	default:
		// Arithmetic, comparison, temporal-numeric and assignment nodes
		// carry no predicate literals and never change inertia (spec §4.3).
		return nil
	}
}
