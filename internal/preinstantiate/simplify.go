package preinstantiate

import (
	"fmt"

	"pddlcore/internal/ir"
	"pddlcore/internal/pddlerrors"
)

// SimplifyWithInferredTypes implements spec §4.6: split each action's and
// method's parameters along the unary-inertia literals reachable in its
// preconditions (and, for actions, effects), replacing one candidate with up
// to two narrower-typed candidates per literal. A candidate is dropped the
// moment its precondition or effect simplifies to the constant FALSE at the
// root.
type SimplifyWithInferredTypes struct {
	Options Options
}

func (SimplifyWithInferredTypes) Name() string { return "simplify-with-inferred-types" }
func (SimplifyWithInferredTypes) Description() string {
	return "splits action/method parameter types along unary-inertia domain boundaries"
}

func (s SimplifyWithInferredTypes) Apply(p *Problem) (bool, error) {
	changed := false

	var actions []*ir.Action
	for _, a := range p.Actions {
		split, skips := simplifyAction(p.Context, a, s.Options)
		if len(split) != 1 || split[0] != a {
			changed = true
		}
		actions = append(actions, split...)
		p.Skips = append(p.Skips, skips...)
	}
	p.Actions = actions

	var methods []*ir.Method
	for _, m := range p.Methods {
		split, skips := simplifyMethod(p.Context, m, s.Options)
		if len(split) != 1 || split[0] != m {
			changed = true
		}
		methods = append(methods, split...)
		p.Skips = append(p.Skips, skips...)
	}
	p.Methods = methods

	return changed, nil
}

// collectUnaryInertiaLiterals walks trees in pre-order and returns every
// distinct one-argument ATOM whose predicate carries an inferred domain
// (spec §4.4), in first-occurrence order.
func collectUnaryInertiaLiterals(ctx *ir.Context, trees ...*ir.ExprNode) []*ir.ExprNode {
	var found []*ir.ExprNode
	for _, tree := range trees {
		if tree == nil {
			continue
		}
		tree.Walk(func(n *ir.ExprNode) {
			if n.Connective != ir.ATOM || len(n.Arguments) != 1 {
				return
			}
			if _, ok := ctx.InferredDomain(n.Predicate); !ok {
				return
			}
			for _, f := range found {
				if f.Equal(n) {
					return
				}
			}
			found = append(found, n)
		})
	}
	return found
}

// simplifyAction runs the spec §4.6 split loop over a single action,
// producing the (possibly several) narrower-typed replacements.
func simplifyAction(ctx *ir.Context, original *ir.Action, opts Options) ([]*ir.Action, []pddlerrors.SkipReason) {
	literals := collectUnaryInertiaLiterals(ctx, original.Preconditions, original.Effects)
	candidates := []*ir.Action{original}
	var skips []pddlerrors.SkipReason

	for _, lit := range literals {
		if len(candidates) == 0 {
			break
		}
		x := lit.Arguments[0]
		if ir.IsConstantArg(x) {
			if opts.BugCompatibleConstantBreak {
				// Matches the documented source behavior (spec §9): a
				// constant-argument unary-inertia literal aborts the rest
				// of this action's split chain outright.
				skips = append(skips, pddlerrors.SkipReason{
					Component: "preinstantiate.simplifyAction",
					Reason:    fmt.Sprintf("action %q: constant argument in predicate %d aborted the remaining split chain", original.Name, lit.Predicate),
				})
				break
			}
			skips = append(skips, pddlerrors.SkipReason{
				Component: "preinstantiate.simplifyAction",
				Reason:    fmt.Sprintf("action %q: constant argument in predicate %d left unsplit", original.Name, lit.Predicate),
			})
			continue
		}
		k, _ := ir.ArgToVar(x)
		if int(k) >= len(original.Parameters) {
			continue
		}

		var next []*ir.Action
		for _, cand := range candidates {
			ti, ts, err := ctx.SplitType(cand.Parameters[k], lit.Predicate)
			if err != nil {
				next = append(next, cand)
				continue
			}

			if c := splitActionCandidate(cand, k, ti, lit, true); c != nil {
				next = append(next, c)
			}
			if c := splitActionCandidate(cand, k, ts, lit, false); c != nil {
				next = append(next, c)
			}
		}
		candidates = next
	}
	return candidates, skips
}

func splitActionCandidate(cand *ir.Action, k ir.VarId, newType ir.TypeId, lit *ir.ExprNode, value bool) *ir.Action {
	c := cand.Clone()
	c.Parameters[k] = newType
	c.Preconditions = substitute(c.Preconditions, lit, value)
	if c.Preconditions.IsFalse() {
		return nil
	}
	if c.Effects != nil {
		c.Effects = substitute(c.Effects, lit, value)
		if c.Effects.IsFalse() {
			return nil
		}
	}
	return c
}

// simplifyMethod mirrors simplifyAction for HTN methods: only the
// precondition is scanned and substituted (a method has no effect tree), and
// the task network is carried along unchanged by Clone.
func simplifyMethod(ctx *ir.Context, original *ir.Method, opts Options) ([]*ir.Method, []pddlerrors.SkipReason) {
	literals := collectUnaryInertiaLiterals(ctx, original.Preconditions)
	candidates := []*ir.Method{original}
	var skips []pddlerrors.SkipReason

	for _, lit := range literals {
		if len(candidates) == 0 {
			break
		}
		x := lit.Arguments[0]
		if ir.IsConstantArg(x) {
			if opts.BugCompatibleConstantBreak {
				skips = append(skips, pddlerrors.SkipReason{
					Component: "preinstantiate.simplifyMethod",
					Reason:    fmt.Sprintf("method %q: constant argument in predicate %d aborted the remaining split chain", original.Name, lit.Predicate),
				})
				break
			}
			skips = append(skips, pddlerrors.SkipReason{
				Component: "preinstantiate.simplifyMethod",
				Reason:    fmt.Sprintf("method %q: constant argument in predicate %d left unsplit", original.Name, lit.Predicate),
			})
			continue
		}
		k, _ := ir.ArgToVar(x)
		if int(k) >= len(original.Parameters) {
			continue
		}

		var next []*ir.Method
		for _, cand := range candidates {
			ti, ts, err := ctx.SplitType(cand.Parameters[k], lit.Predicate)
			if err != nil {
				next = append(next, cand)
				continue
			}

			if m := splitMethodCandidate(cand, k, ti, lit, true); m != nil {
				next = append(next, m)
			}
			if m := splitMethodCandidate(cand, k, ts, lit, false); m != nil {
				next = append(next, m)
			}
		}
		candidates = next
	}
	return candidates, skips
}

func splitMethodCandidate(cand *ir.Method, k ir.VarId, newType ir.TypeId, lit *ir.ExprNode, value bool) *ir.Method {
	m := cand.Clone()
	m.Parameters[k] = newType
	m.Preconditions = substitute(m.Preconditions, lit, value)
	if m.Preconditions.IsFalse() {
		return nil
	}
	return m
}
