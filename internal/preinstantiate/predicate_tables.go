package preinstantiate

import (
	"pddlcore/internal/ir"
	"pddlcore/internal/pddlerrors"
)

// CreatePredicateTables implements spec §4.5: for every predicate p of
// arity a, build the 2^a occurrence tables over the initial-state ground
// atoms. For each ground fact (p c1..ca) and each mask m from 0 up to
// all-ones (enumerated with ir.IncrementMask, spec §8 property 7), the
// tuple at the positions m selects is extracted and its counter
// incremented.
type CreatePredicateTables struct{}

func (CreatePredicateTables) Name() string { return "create-predicate-tables" }
func (CreatePredicateTables) Description() string {
	return "builds per-predicate partial-assignment occurrence tables from the initial state"
}

func (s CreatePredicateTables) Apply(p *Problem) (bool, error) {
	if p.Context == nil {
		return false, pddlerrors.NullInputf(s.Name(), "problem context is nil")
	}
	ctx := p.Context
	changed := false

	for _, fact := range p.Init {
		atom := fact
		if atom.Connective == ir.NOT {
			if len(atom.Children) != 1 {
				return changed, pddlerrors.MalformedExpressionf(s.Name(), "NOT requires exactly one child, got %d", len(atom.Children))
			}
			// Negative initial facts do not occur as ground facts; only
			// the positive member set is tabled (spec §4.5 "over
			// initial-state ground atoms").
			continue
		}
		if atom.Connective != ir.ATOM {
			continue
		}

		arity := len(atom.Arguments)
		full := make([]ir.ConstantId, arity)
		for i, a := range atom.Arguments {
			if !ir.IsConstantArg(a) {
				// A ground fact's arguments are always constants; skip a
				// malformed one defensively rather than panic.
				continue
			}
			full[i] = ir.ConstantId(a)
		}

		table := ctx.PredicateTable(atom.Predicate)
		for mask, ok := 0, true; ok; mask, ok = ir.IncrementMask(mask, arity) {
			tuple := ir.ExtractTuple(full, mask, arity)
			table.Increment(mask, tuple)
			changed = true
		}
	}
	return changed, nil
}
