// SPDX-License-Identifier: MIT
// Package: distopt/problem

package problem

import (
	"sort"

	"github.com/katalvlaran/distopt/dcop"
)

// Constraint is one undirected cost relation between two agents. Costs
// are keyed from A's perspective: ValuePair{Own: A's value, Neighbor:
// B's value}. B's directed view is Costs.Reversed(). A missing entry
// means "no constraint between that value pair" and costs 0.
type Constraint struct {
	A, B  string
	Costs dcop.CostTable
}

// Instance is the ground-truth description of one problem: who the
// agents are, what each may choose from, and what every joint choice
// costs. Protocol agents never hold an Instance; the simulation layer
// slices it into per-agent directed constraint tables at setup.
type Instance struct {
	AgentIDs    []string
	Domains     map[string][]dcop.Value
	Constraints []Constraint
}

// Neighbors returns the IDs constrained with id, sorted ascending.
// Complexity: O(E log E) on the number of constraints.
func (in *Instance) Neighbors(id string) []string {
	var out []string
	for _, c := range in.Constraints {
		switch id {
		case c.A:
			out = append(out, c.B)
		case c.B:
			out = append(out, c.A)
		}
	}
	sort.Strings(out)

	return out
}

// Domain returns the candidate values of id, or nil for unknown agents.
func (in *Instance) Domain(id string) []dcop.Value {
	return in.Domains[id]
}

// Cost evaluates a full assignment: the sum over all constraints of the
// table entry for the assigned pair. Missing entries contribute 0.
// Complexity: O(E).
func (in *Instance) Cost(assign dcop.Assignment) float64 {
	total := 0.0
	for _, c := range in.Constraints {
		pair := dcop.ValuePair{Own: assign[c.A], Neighbor: assign[c.B]}
		total += c.Costs[pair]
	}

	return total
}
