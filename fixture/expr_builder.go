package fixture

import (
	"fmt"

	"pddlcore/internal/ir"
)

// exprBuilder translates the Expr grammar into ir.ExprNode trees, resolving
// each identifier against a stack of lexical scopes (action/method
// parameters, then nested quantifier variables) before falling back to the
// context's constant table.
type exprBuilder struct {
	ctx             *ir.Context
	predicateByName map[string]ir.PredicateId
	scopes          []map[string]ir.VarId
	nextVar         ir.VarId
}

func newExprBuilder(ctx *ir.Context, predicateByName map[string]ir.PredicateId, params []*Param) *exprBuilder {
	scope := make(map[string]ir.VarId, len(params))
	for i, p := range params {
		scope[p.Name] = ir.VarId(i)
	}
	return &exprBuilder{
		ctx:             ctx,
		predicateByName: predicateByName,
		scopes:          []map[string]ir.VarId{scope},
		nextVar:         ir.VarId(len(params)),
	}
}

func (eb *exprBuilder) resolveVar(name string) (ir.VarId, bool) {
	for i := len(eb.scopes) - 1; i >= 0; i-- {
		if idx, ok := eb.scopes[i][name]; ok {
			return idx, true
		}
	}
	return 0, false
}

// resolveTerm encodes name as an argument-vector entry: a negative variable
// reference if it names an in-scope parameter or quantifier variable,
// otherwise the ConstantId of a context constant of the same name.
func (eb *exprBuilder) resolveTerm(name string) (int, error) {
	if idx, ok := eb.resolveVar(name); ok {
		return ir.VarToArg(idx), nil
	}
	if cid, ok := eb.ctx.FindConstant(name); ok {
		return int(cid), nil
	}
	return 0, fmt.Errorf("unknown identifier %q", name)
}

func (eb *exprBuilder) build(e *Expr) (*ir.ExprNode, error) {
	if e == nil {
		return nil, fmt.Errorf("missing expression")
	}
	return eb.buildOr(e.Or)
}

func (eb *exprBuilder) buildOr(o *OrExpr) (*ir.ExprNode, error) {
	left, err := eb.buildAnd(o.Left)
	if err != nil {
		return nil, err
	}
	if len(o.Rest) == 0 {
		return left, nil
	}
	children := []*ir.ExprNode{left}
	for _, r := range o.Rest {
		n, err := eb.buildAnd(r)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return ir.NewOr(children...), nil
}

func (eb *exprBuilder) buildAnd(a *AndExpr) (*ir.ExprNode, error) {
	left, err := eb.buildNot(a.Left)
	if err != nil {
		return nil, err
	}
	if len(a.Rest) == 0 {
		return left, nil
	}
	children := []*ir.ExprNode{left}
	for _, r := range a.Rest {
		n, err := eb.buildNot(r)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return ir.NewAnd(children...), nil
}

func (eb *exprBuilder) buildNot(n *NotExpr) (*ir.ExprNode, error) {
	switch {
	case n.Not != nil:
		child, err := eb.buildNot(n.Not)
		if err != nil {
			return nil, err
		}
		return ir.NewNot(child), nil
	case n.Quant != nil:
		return eb.buildQuantified(n.Quant)
	case n.Bool != nil:
		return ir.NewBool(*n.Bool == "true"), nil
	case n.Atom != nil:
		return eb.buildAtom(n.Atom)
	case n.Paren != nil:
		return eb.build(n.Paren)
	}
	return nil, fmt.Errorf("empty expression")
}

func (eb *exprBuilder) buildQuantified(q *Quantified) (*ir.ExprNode, error) {
	typeId, ok := eb.ctx.FindType(q.Type)
	if !ok {
		return nil, fmt.Errorf("quantifier over unknown type %q", q.Type)
	}
	varIdx := eb.nextVar
	eb.nextVar++
	eb.scopes = append(eb.scopes, map[string]ir.VarId{q.Var: varIdx})
	body, err := eb.build(q.Body)
	eb.scopes = eb.scopes[:len(eb.scopes)-1]
	if err != nil {
		return nil, err
	}

	conn := ir.FORALL
	if q.Kind == "exists" {
		conn = ir.EXISTS
	}
	return &ir.ExprNode{
		Connective: conn,
		Variable:   varIdx,
		Type:       typeId,
		Predicate:  ir.NoPredicate,
		Children:   []*ir.ExprNode{body},
	}, nil
}

func (eb *exprBuilder) buildAtom(a *AtomExpr) (*ir.ExprNode, error) {
	pid, ok := eb.predicateByName[a.Name]
	if !ok {
		return nil, fmt.Errorf("unknown predicate %q", a.Name)
	}
	args := make([]int, len(a.Args))
	for i, name := range a.Args {
		arg, err := eb.resolveTerm(name)
		if err != nil {
			return nil, fmt.Errorf("predicate %q argument %d: %w", a.Name, i, err)
		}
		args[i] = arg
	}
	return ir.NewAtom(pid, args...), nil
}
