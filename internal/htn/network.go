// Package htn implements the hierarchical task-network ordering-constraint
// analyzer: acyclicity and total-order tests over a bit-matrix transitive
// closure of "must precede" constraints between a method's subtasks
// (spec §4.2).
package htn

import (
	"fmt"
	"strings"

	"pddlcore/internal/bitmatrix"
)

// OrderingConstraintNetwork is a square boolean matrix M with
// M[i][j] == true iff task i must precede task j, directly or (after
// TransitiveClosure) transitively (spec §3).
type OrderingConstraintNetwork struct {
	matrix *bitmatrix.SquareBitMatrix
	tasks  int
}

// New creates an ordering-constraint network over n tasks with no
// constraints set.
func New(n int) *OrderingConstraintNetwork {
	return &OrderingConstraintNetwork{matrix: bitmatrix.NewSquareBitMatrix(n), tasks: n}
}

// Tasks returns the number of tasks in the network.
func (n *OrderingConstraintNetwork) Tasks() int { return n.tasks }

// AddConstraint records that task i must precede task j.
func (n *OrderingConstraintNetwork) AddConstraint(i, j int) {
	n.matrix.Set(i, j)
}

// Precedes reports whether the network currently records i < j (direct
// before TransitiveClosure, transitive after).
func (n *OrderingConstraintNetwork) Precedes(i, j int) bool {
	return n.matrix.Get(i, j)
}

// TransitiveClosure closes the constraint relation in place via Warshall's
// algorithm (spec §4.1/§4.2). Idempotent: calling it again is a no-op.
func (n *OrderingConstraintNetwork) TransitiveClosure() {
	n.matrix.TransitiveClosure()
}

// IsAcyclic closes the network and reports whether no task transitively
// precedes itself (spec §4.2). It mutates the network's matrix via
// TransitiveClosure, which is idempotent, so calling IsAcyclic more than
// once is safe and gives the same answer; each call reruns the closure.
func (n *OrderingConstraintNetwork) IsAcyclic() bool {
	n.TransitiveClosure()
	for i := 0; i < n.tasks; i++ {
		if n.matrix.Get(i, i) {
			return false
		}
	}
	return true
}

// TasksWithNoPredecessors returns {i | column(i) has cardinality 0}.
// Requires TransitiveClosure to have been called previously for the result
// to reflect transitive predecessors rather than only direct ones
// (spec §4.2).
func (n *OrderingConstraintNetwork) TasksWithNoPredecessors() []int {
	var out []int
	for i := 0; i < n.tasks; i++ {
		if len(n.matrix.Column(i)) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// TasksWithNoSuccessors returns {i | row(i) has cardinality 0}, symmetric
// to TasksWithNoPredecessors.
func (n *OrderingConstraintNetwork) TasksWithNoSuccessors() []int {
	var out []int
	for i := 0; i < n.tasks; i++ {
		if len(n.matrix.Row(i)) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// IsTotallyOrdered works on an internal copy of the matrix (spec §5: never
// mutates the receiver) and iteratively peels the single no-predecessor
// task: totally ordered iff at every step exactly one task has no
// predecessor remaining. Fewer than two tasks is trivially true; a network
// where any step exposes zero or more-than-one no-predecessor task is not
// totally ordered (spec §4.2, scenarios S2-S4).
func (n *OrderingConstraintNetwork) IsTotallyOrdered() bool {
	if n.tasks < 2 {
		return true
	}
	work := &OrderingConstraintNetwork{matrix: n.matrix.Clone(), tasks: n.tasks}
	work.TransitiveClosure()

	for work.tasks > 1 {
		roots := work.TasksWithNoPredecessors()
		if len(roots) != 1 {
			return false
		}
		work.matrix.RemoveIndex(roots[0])
		work.tasks--
	}
	return true
}

// String renders the stable textual form of spec §6: one line per set bit
// in row-major order, " C{idx}: T{r} < T{c}\n" (note the leading space),
// idx a running 0-based
// counter of emitted constraints. An empty network prints " ()".
func (n *OrderingConstraintNetwork) String() string {
	var b strings.Builder
	idx := 0
	any := false
	for i := 0; i < n.tasks; i++ {
		for j := 0; j < n.tasks; j++ {
			if n.matrix.Get(i, j) {
				fmt.Fprintf(&b, " C%d: T%d < T%d\n", idx, i, j)
				idx++
				any = true
			}
		}
	}
	if !any {
		return " ()"
	}
	return b.String()
}
