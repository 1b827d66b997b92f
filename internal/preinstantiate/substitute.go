package preinstantiate

import "pddlcore/internal/ir"

// substitute implements the spec §4.6 substitution table: every ATOM
// structurally equal (ir.ExprNode.Equal) to target becomes the constant
// literal TRUE or FALSE; AND/OR collapse or drop children accordingly;
// FORALL/EXISTS over the literal's own argument variable expand into a
// two-child AND/OR specialized under both polarities; unary wrappers and
// the binary-across-a-bound connectives recurse per ir's connective maps;
// arithmetic/comparison/duration/function nodes are left untouched.
func substitute(node *ir.ExprNode, target *ir.ExprNode, value bool) *ir.ExprNode {
	if node == nil {
		return nil
	}

	switch node.Connective {
	case ir.ATOM:
		if node.Equal(target) {
			return ir.NewBool(value)
		}
		return node

	case ir.AND:
		var kept []*ir.ExprNode
		for _, c := range node.Children {
			nc := substitute(c, target, value)
			if nc.IsFalse() {
				return ir.NewBool(false)
			}
			if nc.IsTrue() {
				continue
			}
			kept = append(kept, nc)
		}
		node.Children = kept
		return node

	case ir.OR:
		var kept []*ir.ExprNode
		for _, c := range node.Children {
			nc := substitute(c, target, value)
			if nc.IsTrue() {
				return ir.NewBool(true)
			}
			if nc.IsFalse() {
				continue
			}
			kept = append(kept, nc)
		}
		node.Children = kept
		return node

	case ir.FORALL, ir.EXISTS:
		if len(node.Children) != 1 {
			return node
		}
		if varIdx, ok := ir.ArgToVar(target.Arguments[0]); ok && varIdx == node.Variable {
			body := node.Children[0]
			trueBranch := substitute(body.Clone(), target, true)
			falseBranch := substitute(body.Clone(), target, false)
			conn := ir.AND
			if node.Connective == ir.EXISTS {
				conn = ir.OR
			}
			return &ir.ExprNode{Connective: conn, Children: []*ir.ExprNode{trueBranch, falseBranch}, Predicate: ir.NoPredicate, Type: ir.NoType}
		}
		node.Children[0] = substitute(node.Children[0], target, value)
		return node

	default:
		if ir.IsUnaryWrapper(node.Connective) {
			if len(node.Children) == 0 {
				return node
			}
			node.Children[0] = substitute(node.Children[0], target, value)
			return node
		}
		if ir.IsBinaryAcrossBound(node.Connective) {
			if len(node.Children) < 4 {
				return node
			}
			node.Children[0] = substitute(node.Children[0], target, value)
			node.Children[1] = substitute(node.Children[1], target, value)
			node.Children[3] = substitute(node.Children[3], target, value)
			return node
		}
		// Arithmetic, comparison, assignment, duration and function nodes
		// carry no literal occurrences and are left untouched.
		return node
	}
}
