package dcop_test

import (
	"testing"

	"github.com/katalvlaran/distopt/core"
	"github.com/katalvlaran/distopt/dcop"
)

// TestDSA_AlwaysActivatesAtPOne pins DSA-C determinism: with p=1 and a
// strict improvement available, the agent must commit the best value —
// regardless of seed, since the coin can never miss.
func TestDSA_AlwaysActivatesAtPOne(t *testing.T) {
	a, err := dcop.NewDSA("A", []dcop.Value{1, 2}, 1.0,
		dcop.WithSeed(42), dcop.WithInitialValue(1))
	if err != nil {
		t.Fatal(err)
	}
	a.AddConstraint("B", symmetric2())

	// B announces value 1, making our value 2 the strict improvement.
	a.Receive(core.NewMessage("B", "A", dcop.ValueMessage{Value: 1}))
	msgs := a.Compute()

	// The broadcast must carry the still-committed value, not the staged one.
	if len(msgs) != 1 {
		t.Fatalf("broadcast size = %d; want 1", len(msgs))
	}
	vm, ok := msgs[0].Payload.(dcop.ValueMessage)
	if !ok || vm.Value != 1 {
		t.Errorf("broadcast payload = %#v; want ValueMessage{Value:1}", msgs[0].Payload)
	}
	if a.Value() != 1 {
		t.Errorf("value committed during Compute: %v", a.Value())
	}

	a.UpdateState()
	if a.Value() != 2 {
		t.Errorf("after UpdateState value = %v; want 2", a.Value())
	}
}

// TestDSA_NeverActivatesAtPZero: with p=0 the coin always misses, so the
// agent never moves no matter how profitable the alternative.
func TestDSA_NeverActivatesAtPZero(t *testing.T) {
	a, err := dcop.NewDSA("A", []dcop.Value{1, 2}, 0.0,
		dcop.WithSeed(42), dcop.WithInitialValue(1))
	if err != nil {
		t.Fatal(err)
	}
	a.AddConstraint("B", symmetric2())
	a.Receive(core.NewMessage("B", "A", dcop.ValueMessage{Value: 1}))

	a.Compute()
	a.UpdateState()
	if a.Value() != 1 {
		t.Errorf("p=0 agent moved to %v", a.Value())
	}
}

// TestDSA_NoMoveWithoutStrictImprovement: when the best value ties the
// current one, the coin is never flipped.
func TestDSA_NoMoveWithoutStrictImprovement(t *testing.T) {
	flat := dcop.CostTable{
		{Own: 1, Neighbor: 1}: 5,
		{Own: 2, Neighbor: 1}: 5,
	}
	a, err := dcop.NewDSA("A", []dcop.Value{1, 2}, 1.0,
		dcop.WithSeed(42), dcop.WithInitialValue(1))
	if err != nil {
		t.Fatal(err)
	}
	a.AddConstraint("B", flat)
	a.Receive(core.NewMessage("B", "A", dcop.ValueMessage{Value: 1}))

	a.Compute()
	a.UpdateState()
	if a.Value() != 1 {
		t.Errorf("agent moved on a tie: %v", a.Value())
	}
}

// TestDSA_ConvergesOnTwoAgentInstance runs the full kernel loop: with
// p=1 both agents flip away from the conflicting equal assignment in the
// first round, reaching (and keeping) a cheaper joint state.
func TestDSA_ConvergesOnTwoAgentInstance(t *testing.T) {
	newAgent := func(id string, seed int64) dcop.Agent {
		a, err := dcop.NewDSA(id, []dcop.Value{1, 2}, 1.0,
			dcop.WithSeed(seed), dcop.WithInitialValue(1))
		if err != nil {
			t.Fatal(err)
		}

		return a
	}
	agents := []dcop.Agent{newAgent("A", 1), newAgent("B", 2)}
	links := []link{{a: "A", b: "B", costs: symmetric2()}}
	env := buildEnv(t, agents, links)
	bootstrapValues(env, agents, links)

	if cost := globalCost(snapshot(agents), links); cost != 10 {
		t.Fatalf("initial cost = %v; want 10", cost)
	}
	// With p=1 both flip 1→2 simultaneously (cost stays 10), observe each
	// other at 2, then both flip back — DSA-C may oscillate at p=1; the
	// cost never exceeds the starting conflict cost.
	for i := 0; i < 6; i++ {
		env.Step()
		if cost := globalCost(snapshot(agents), links); cost > 10 {
			t.Fatalf("round %d cost = %v; want ≤ 10", i+1, cost)
		}
	}
}
