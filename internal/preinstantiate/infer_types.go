package preinstantiate

import (
	"pddlcore/internal/ir"
	"pddlcore/internal/pddlerrors"
)

// InferTypesFromInertia implements spec §4.4: for every predicate p with
// arity 1 and inertia INERTIA, the inferred domain is the set of constants
// c such that the positive fact (p c) is in the initial state; negated
// initial facts (NOT (p c)) contribute no member. Every other predicate gets
// no inferred domain (spec §3 invariant).
type InferTypesFromInertia struct{}

func (InferTypesFromInertia) Name() string { return "infer-types-from-inertia" }
func (InferTypesFromInertia) Description() string {
	return "derives unary-inertia predicates' inferred domains from the initial state"
}

func (s InferTypesFromInertia) Apply(p *Problem) (bool, error) {
	if p.Context == nil {
		return false, pddlerrors.NullInputf(s.Name(), "problem context is nil")
	}
	ctx := p.Context
	changed := false

	for pid := 0; pid < ctx.PredicateCount(); pid++ {
		predicate := ir.PredicateId(pid)
		if ctx.Arity(predicate) != 1 || ctx.Inertia(predicate) != ir.INERTIA {
			continue
		}
		domain := make(map[ir.ConstantId]bool)
		for _, fact := range p.Init {
			atom := fact
			if atom.Connective == ir.NOT {
				if len(atom.Children) != 1 {
					return changed, pddlerrors.MalformedExpressionf(s.Name(), "NOT requires exactly one child, got %d", len(atom.Children))
				}
				continue // a negative initial fact never contributes a member
			}
			if atom.Connective != ir.ATOM || atom.Predicate != predicate {
				continue
			}
			if len(atom.Arguments) != 1 || !ir.IsConstantArg(atom.Arguments[0]) {
				continue
			}
			domain[ir.ConstantId(atom.Arguments[0])] = true
		}
		ctx.SetInferredDomain(predicate, domain)
		changed = true
	}
	return changed, nil
}
