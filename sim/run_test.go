package sim_test

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/katalvlaran/distopt/dcop"
	"github.com/katalvlaran/distopt/problem"
	"github.com/katalvlaran/distopt/sim"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// chain builds a fixed A-B-C coloring instance: clashing values cost 10.
func chain() *problem.Instance {
	clash := dcop.CostTable{
		{Own: 1, Neighbor: 1}: 10,
		{Own: 2, Neighbor: 2}: 10,
	}

	return &problem.Instance{
		AgentIDs: []string{"A", "B", "C"},
		Domains: map[string][]dcop.Value{
			"A": {1, 2}, "B": {1, 2}, "C": {1, 2},
		},
		Constraints: []problem.Constraint{
			{A: "A", B: "B", Costs: clash},
			{A: "B", B: "C", Costs: clash},
		},
	}
}

func TestRun_Validation(t *testing.T) {
	inst := chain()
	factory := sim.MGM(1)

	if _, err := sim.Run(nil, factory, 5); !errors.Is(err, sim.ErrNilInstance) {
		t.Errorf("nil instance: got %v", err)
	}
	if _, err := sim.Run(inst, nil, 5); !errors.Is(err, sim.ErrNilFactory) {
		t.Errorf("nil factory: got %v", err)
	}
	if _, err := sim.Run(inst, factory, 0); !errors.Is(err, sim.ErrBadRounds) {
		t.Errorf("zero rounds: got %v", err)
	}
	// Factory errors surface wrapped, with their sentinel intact.
	if _, err := sim.Run(inst, sim.DSA(-1, 1), 5); !errors.Is(err, dcop.ErrInvalidProbability) {
		t.Errorf("bad factory: got %v", err)
	}
}

// TestRun_FrozenProtocolIsFullyPredictable: DSA with p=0 never moves, so
// the cost curve is flat and every round delivers exactly one value
// broadcast per directed edge.
func TestRun_FrozenProtocolIsFullyPredictable(t *testing.T) {
	inst := chain()
	res, err := sim.Run(inst, sim.DSA(0, 7), 5, sim.WithLogger(discard()))
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Costs) != 6 {
		t.Fatalf("len(Costs) = %d; want rounds+1 = 6", len(res.Costs))
	}
	for i, c := range res.Costs {
		if c != res.Costs[0] {
			t.Errorf("round %d cost = %v; want frozen %v", i, c, res.Costs[0])
		}
	}
	// Two edges, both directions: 4 broadcasts per round.
	for i, d := range res.Delivered {
		if d != 4 {
			t.Errorf("round %d delivered = %d; want 4", i+1, d)
		}
	}
	if len(res.Final) != 3 {
		t.Errorf("Final covers %d agents; want 3", len(res.Final))
	}
	if res.RunID == "" {
		t.Error("RunID is empty")
	}
}

// TestRun_DeterministicPerSeed: identical inputs reproduce the exact
// curve; only the run ID is fresh.
func TestRun_DeterministicPerSeed(t *testing.T) {
	inst := chain()

	first, err := sim.Run(inst, sim.MGM(42), 10, sim.WithLogger(discard()))
	if err != nil {
		t.Fatal(err)
	}
	second, err := sim.Run(inst, sim.MGM(42), 10, sim.WithLogger(discard()))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first.Costs, second.Costs) {
		t.Errorf("cost curves diverged:\n%v\n%v", first.Costs, second.Costs)
	}
	if !reflect.DeepEqual(first.Final, second.Final) {
		t.Errorf("final assignments diverged: %v vs %v", first.Final, second.Final)
	}
	if first.RunID == second.RunID {
		t.Error("run IDs must be unique per run")
	}
}
