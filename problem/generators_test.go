// SPDX-License-Identifier: MIT
// Package: distopt/problem

package problem

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestGenerators_Validation(t *testing.T) {
	tests := []struct {
		name string
		gen  func() error
		want error
	}{
		{
			name: "too few agents",
			gen:  func() error { _, err := UniformRandom(1, 3, 0.5, WithSeed(1)); return err },
			want: ErrTooFewAgents,
		},
		{
			name: "domain too small",
			gen:  func() error { _, err := UniformRandom(5, 1, 0.5, WithSeed(1)); return err },
			want: ErrBadDomainSize,
		},
		{
			name: "density below range",
			gen:  func() error { _, err := GraphColoring(5, 3, -0.1, WithSeed(1)); return err },
			want: ErrInvalidDensity,
		},
		{
			name: "density above range",
			gen:  func() error { _, err := GraphColoring(5, 3, 1.5, WithSeed(1)); return err },
			want: ErrInvalidDensity,
		},
		{
			name: "missing rng",
			gen:  func() error { _, err := UniformRandom(5, 3, 0.5); return err },
			want: ErrNeedRandSource,
		},
		{
			name: "inverted cost range",
			gen: func() error {
				_, err := UniformRandom(5, 3, 0.5, WithSeed(1), WithCostRange(10, 10))

				return err
			},
			want: ErrBadCostRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.gen(); !errors.Is(err, tc.want) {
				t.Errorf("got %v; want %v", err, tc.want)
			}
		})
	}
}

func TestUniformRandom_DeterministicPerSeed(t *testing.T) {
	first, err := UniformRandom(6, 3, 0.5, WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	second, err := UniformRandom(6, 3, 0.5, WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("same seed and parameters produced different instances")
	}
}

func TestUniformRandom_DensityExtremes(t *testing.T) {
	full, err := UniformRandom(5, 2, 1.0, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	if want := 5 * 4 / 2; len(full.Constraints) != want {
		t.Errorf("density 1: %d constraints; want complete graph's %d", len(full.Constraints), want)
	}

	empty, err := UniformRandom(5, 2, 0.0, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	if len(empty.Constraints) != 0 {
		t.Errorf("density 0: %d constraints; want none", len(empty.Constraints))
	}
}

func TestUniformRandom_CostsWithinRange(t *testing.T) {
	inst, err := UniformRandom(4, 3, 1.0, WithSeed(3), WithCostRange(5, 6))
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range inst.Constraints {
		if len(c.Costs) != 3*3 {
			t.Fatalf("edge %s-%s has %d entries; want full 9", c.A, c.B, len(c.Costs))
		}
		for pair, cost := range c.Costs {
			if cost < 5 || cost >= 6 {
				t.Errorf("edge %s-%s pair %v cost %v outside [5,6)", c.A, c.B, pair, cost)
			}
		}
	}
}

func TestGraphColoring_OnlyEqualValuesPriced(t *testing.T) {
	inst, err := GraphColoring(4, 3, 1.0, WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range inst.Constraints {
		if len(c.Costs) != 3 {
			t.Fatalf("edge %s-%s has %d entries; want one per color", c.A, c.B, len(c.Costs))
		}
		for pair, cost := range c.Costs {
			if pair.Own != pair.Neighbor {
				t.Errorf("edge %s-%s priced a non-clash pair %v", c.A, c.B, pair)
			}
			if cost < defaultCostLB || cost >= defaultCostUB {
				t.Errorf("clash cost %v outside default [%v,%v)", cost, defaultCostLB, defaultCostUB)
			}
		}
	}
}

func TestWithIDScheme_RenamesAgents(t *testing.T) {
	inst, err := GraphColoring(3, 2, 1.0, WithSeed(1),
		WithIDScheme(func(i int) string { return "node-" + strconv.Itoa(i) }))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"node-0", "node-1", "node-2"}
	if !reflect.DeepEqual(inst.AgentIDs, want) {
		t.Errorf("AgentIDs = %v; want %v", inst.AgentIDs, want)
	}
	if inst.Domains["node-0"] == nil {
		t.Error("domains not keyed by the custom scheme")
	}
}
