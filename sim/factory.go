package sim

import (
	"hash/fnv"

	"github.com/katalvlaran/distopt/dcop"
)

// Factory builds the protocol agent owning one variable: its ID, its
// candidate values, and the neighbors it will exchange messages with.
type Factory func(id string, domain []dcop.Value, neighbors []string) (dcop.Agent, error)

// agentSeed offsets the run's base seed by a hash of the agent ID, so a
// given agent draws the same stream no matter the construction order.
func agentSeed(base int64, id string) int64 {
	h := fnv.New32a()
	h.Write([]byte(id))

	return base + int64(h.Sum32())
}

// DSA returns a factory for DSA-C agents with activation probability p.
func DSA(p float64, baseSeed int64) Factory {
	return func(id string, domain []dcop.Value, neighbors []string) (dcop.Agent, error) {
		return dcop.NewDSA(id, domain, p,
			dcop.WithSeed(agentSeed(baseSeed, id)),
			dcop.WithNeighbors(neighbors...))
	}
}

// MGM returns a factory for MGM agents.
func MGM(baseSeed int64) Factory {
	return func(id string, domain []dcop.Value, neighbors []string) (dcop.Agent, error) {
		return dcop.NewMGM(id, domain,
			dcop.WithSeed(agentSeed(baseSeed, id)),
			dcop.WithNeighbors(neighbors...))
	}
}

// MGM2 returns a factory for MGM-2 agents with offer probability p.
func MGM2(p float64, baseSeed int64) Factory {
	return func(id string, domain []dcop.Value, neighbors []string) (dcop.Agent, error) {
		return dcop.NewMGM2(id, domain, p,
			dcop.WithSeed(agentSeed(baseSeed, id)),
			dcop.WithNeighbors(neighbors...))
	}
}
