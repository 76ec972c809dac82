// Package dimacs reads and writes the DIMACS minimum-cost-flow problem and
// solution formats used by the First DIMACS Implementation Challenge, the
// same line conventions as github.com/coreos/ksched's flow/dimacs exporter
// (one line per directive: "c" comment, "p min" problem line, "n" node
// supply, "a" arc).
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/LiveRamp/flowsolve/pkg/graph"
)

// Arc is a single DIMACS "a" line: tail, head, capacity bounds, and cost.
type Arc struct {
	Tail, Head   graph.NodeIndex
	Lower, Upper int64
	Cost         int64
}

// Instance is a parsed DIMACS min-cost-flow problem.
type Instance struct {
	NumNodes int
	Supply   map[graph.NodeIndex]int64
	Arcs     []Arc
}

// Read parses a DIMACS "min" problem from r. Only zero lower bounds are
// supported, since pkg/mincostflow has no notion of a mandatory arc floor;
// a nonzero lower bound is reported as an error rather than silently
// dropped.
func Read(r io.Reader) (*Instance, error) {
	var inst = &Instance{Supply: make(map[graph.NodeIndex]int64)}
	var sawProblemLine bool
	var numArcsDeclared int

	var scanner = bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		var fields = strings.Fields(line)

		switch fields[0] {
		case "p":
			if len(fields) != 4 || fields[1] != "min" {
				return nil, fmt.Errorf("dimacs: line %d: malformed problem line %q", lineNo, line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad node count: %w", lineNo, err)
			}
			numArcsDeclared, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad arc count: %w", lineNo, err)
			}
			inst.NumNodes = n
			sawProblemLine = true

		case "n":
			if !sawProblemLine {
				return nil, fmt.Errorf("dimacs: line %d: node line before problem line", lineNo)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("dimacs: line %d: malformed node line %q", lineNo, line)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad node id: %w", lineNo, err)
			}
			supply, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad supply: %w", lineNo, err)
			}
			// DIMACS node ids are 1-based; translate to a zero-based NodeIndex.
			inst.Supply[graph.NodeIndex(id-1)] += supply

		case "a":
			if !sawProblemLine {
				return nil, fmt.Errorf("dimacs: line %d: arc line before problem line", lineNo)
			}
			if len(fields) != 6 {
				return nil, fmt.Errorf("dimacs: line %d: malformed arc line %q", lineNo, line)
			}
			var nums [5]int64
			for i, f := range fields[1:] {
				v, err := strconv.ParseInt(f, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("dimacs: line %d: bad arc field %q: %w", lineNo, f, err)
				}
				nums[i] = v
			}
			if nums[2] != 0 {
				return nil, fmt.Errorf("dimacs: line %d: nonzero lower bound %d is not supported", lineNo, nums[2])
			}
			inst.Arcs = append(inst.Arcs, Arc{
				Tail:  graph.NodeIndex(nums[0] - 1),
				Head:  graph.NodeIndex(nums[1] - 1),
				Lower: nums[2],
				Upper: nums[3],
				Cost:  nums[4],
			})

		default:
			return nil, fmt.Errorf("dimacs: line %d: unrecognized directive %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: scanning input: %w", err)
	}
	if !sawProblemLine {
		return nil, fmt.Errorf("dimacs: missing problem line")
	}
	if len(inst.Arcs) != numArcsDeclared {
		return nil, fmt.Errorf("dimacs: declared %d arcs, parsed %d", numArcsDeclared, len(inst.Arcs))
	}
	return inst, nil
}

// Build returns a graph.Builder holding the instance's arcs in declaration
// order, plus parallel per-arc capacity and cost arrays. It is split out from
// Read so callers that only want the raw instance don't pay for graph
// construction they won't use.
func (inst *Instance) Build() (*graph.Builder, []int64, []int64) {
	var b = graph.NewBuilder(inst.NumNodes, len(inst.Arcs))
	var capacity = make([]int64, len(inst.Arcs))
	var cost = make([]int64, len(inst.Arcs))
	for i, a := range inst.Arcs {
		b.AddArc(a.Tail, a.Head)
		capacity[i] = a.Upper
		cost[i] = a.Cost
	}
	return b, capacity, cost
}
