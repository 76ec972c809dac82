package dimacs

import (
	"fmt"
	"io"
)

// Solution is the result side of a DIMACS min-cost-flow instance: the
// optimal cost, and the flow carried by each arc in problem-file order.
type Solution struct {
	Cost int64
	Flow []int64
}

// WriteProblem emits inst as a DIMACS "min" problem, in the problem/node/arc
// line order used by coreos/ksched's Export. No comment lines are written.
func WriteProblem(w io.Writer, inst *Instance) error {
	if _, err := fmt.Fprintf(w, "p min %d %d\n", inst.NumNodes, len(inst.Arcs)); err != nil {
		return err
	}
	for node, supply := range inst.Supply {
		if supply == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "n %d %d\n", int(node)+1, supply); err != nil {
			return err
		}
	}
	for _, a := range inst.Arcs {
		if _, err := fmt.Fprintf(w, "a %d %d %d %d %d\n",
			int(a.Tail)+1, int(a.Head)+1, a.Lower, a.Upper, a.Cost); err != nil {
			return err
		}
	}
	return nil
}

// WriteSolution emits sol as a DIMACS solution block: an "s" line with the
// optimal cost, followed by one "f" line per arc, in the same order the
// arcs were declared.
func WriteSolution(w io.Writer, inst *Instance, sol *Solution) error {
	if _, err := fmt.Fprintf(w, "s %d\n", sol.Cost); err != nil {
		return err
	}
	for i, a := range inst.Arcs {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n",
			int(a.Tail)+1, int(a.Head)+1, sol.Flow[i]); err != nil {
			return err
		}
	}
	return nil
}

// SolutionFromSolver builds a Solution by reading cost and per-arc flow off
// a solved graph, given the caller's arc-index-to-graph.ArcIndex mapping
// (the permutation SimpleMinCostFlow.Solve produces internally, or simply
// identity arc indices for a directly-built graph.Graph).
func SolutionFromSolver(cost int64, numArcs int, flowOf func(i int) int64) *Solution {
	var sol = &Solution{Cost: cost, Flow: make([]int64, numArcs)}
	for i := range sol.Flow {
		sol.Flow[i] = flowOf(i)
	}
	return sol
}
