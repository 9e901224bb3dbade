package dcop_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/distopt/core"
	"github.com/katalvlaran/distopt/dcop"
)

// link is one undirected constraint for test fixtures; costs are written
// from a's perspective and reversed for b.
type link struct {
	a, b  string
	costs dcop.CostTable
}

// buildEnv registers the agents and wires both directed sides of every
// link, mirroring how a problem instance is bound at setup.
func buildEnv(t *testing.T, agents []dcop.Agent, links []link) *core.Environment {
	t.Helper()

	env := core.NewEnvironment(core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	byID := make(map[string]dcop.Agent, len(agents))
	for _, a := range agents {
		if err := env.Register(a); err != nil {
			t.Fatalf("register %s: %v", a.ID(), err)
		}
		byID[a.ID()] = a
	}
	for _, l := range links {
		byID[l.a].AddConstraint(l.b, l.costs)
		byID[l.b].AddConstraint(l.a, l.costs.Reversed())
	}

	return env
}

// bootstrapValues performs the pre-round value exchange: every endpoint of
// every link learns the other side's starting value.
func bootstrapValues(env *core.Environment, agents []dcop.Agent, links []link) {
	byID := make(map[string]dcop.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID()] = a
	}
	for _, l := range links {
		env.Inject(core.NewMessage(l.a, l.b, dcop.ValueMessage{Value: byID[l.a].Value()}))
		env.Inject(core.NewMessage(l.b, l.a, dcop.ValueMessage{Value: byID[l.b].Value()}))
	}
}

// snapshot samples every agent's committed value.
func snapshot(agents []dcop.Agent) dcop.Assignment {
	assign := make(dcop.Assignment, len(agents))
	for _, a := range agents {
		assign[a.ID()] = a.Value()
	}

	return assign
}

// globalCost evaluates an assignment against the links' canonical tables.
func globalCost(assign dcop.Assignment, links []link) float64 {
	total := 0.0
	for _, l := range links {
		total += l.costs[dcop.ValuePair{Own: assign[l.a], Neighbor: assign[l.b]}]
	}

	return total
}

// symmetric2 is the canonical two-value table: equal values cost 10,
// differing values cost 5.
func symmetric2() dcop.CostTable {
	return dcop.CostTable{
		{Own: 1, Neighbor: 1}: 10,
		{Own: 1, Neighbor: 2}: 5,
		{Own: 2, Neighbor: 1}: 5,
		{Own: 2, Neighbor: 2}: 10,
	}
}
