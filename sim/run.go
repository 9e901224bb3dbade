package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/distopt/core"
	"github.com/katalvlaran/distopt/dcop"
	"github.com/katalvlaran/distopt/problem"
)

// Sentinel errors for the simulation layer.
var (
	// ErrNilInstance indicates Run was given no problem instance.
	ErrNilInstance = errors.New("sim: instance is nil")

	// ErrNilFactory indicates Run was given no agent factory.
	ErrNilFactory = errors.New("sim: factory is nil")

	// ErrBadRounds indicates a non-positive round count.
	ErrBadRounds = errors.New("sim: rounds must be positive")

	// ErrBadConfig indicates an invalid or unreadable experiment config.
	ErrBadConfig = errors.New("sim: invalid experiment config")
)

// Option configures a simulation run.
type Option func(*runConfig)

type runConfig struct {
	log *slog.Logger
}

// WithLogger routes run diagnostics to the given structured logger.
// Nil is ignored; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// Run executes one simulation: build an agent per variable, wire both
// directed sides of every constraint, bootstrap the neighbor value
// exchange, then drive the kernel for rounds steps. Costs[0] is the cost
// of the initial assignment, Costs[k] the cost after round k.
//
// Complexity: O(rounds · (A log A + M)) on top of agent compute costs.
func Run(inst *problem.Instance, factory Factory, rounds int, opts ...Option) (*Result, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	if rounds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRounds, rounds)
	}

	cfg := runConfig{log: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	env := core.NewEnvironment(core.WithLogger(cfg.log))
	agents := make(map[string]dcop.Agent, len(inst.AgentIDs))
	for _, id := range inst.AgentIDs {
		a, err := factory(id, inst.Domain(id), inst.Neighbors(id))
		if err != nil {
			return nil, fmt.Errorf("sim: build agent %q: %w", id, err)
		}
		if err := env.Register(a); err != nil {
			return nil, fmt.Errorf("sim: register agent %q: %w", id, err)
		}
		agents[id] = a
	}

	// Each endpoint holds its own directed view of the shared table.
	for _, c := range inst.Constraints {
		agents[c.A].AddConstraint(c.B, c.Costs)
		agents[c.B].AddConstraint(c.A, c.Costs.Reversed())
	}

	// Bootstrap: neighbors learn each other's starting value before round 1.
	for _, c := range inst.Constraints {
		env.Inject(core.NewMessage(c.A, c.B, dcop.ValueMessage{Value: agents[c.A].Value()}))
		env.Inject(core.NewMessage(c.B, c.A, dcop.ValueMessage{Value: agents[c.B].Value()}))
	}

	res := &Result{
		RunID:     uuid.NewString(),
		Costs:     make([]float64, 0, rounds+1),
		Delivered: make([]int, 0, rounds),
	}
	res.Costs = append(res.Costs, inst.Cost(assignment(agents)))

	for r := 0; r < rounds; r++ {
		res.Delivered = append(res.Delivered, env.Step())
		res.Costs = append(res.Costs, inst.Cost(assignment(agents)))
	}
	res.Final = assignment(agents)

	cfg.log.Debug("run complete",
		"run_id", res.RunID,
		"agents", len(inst.AgentIDs),
		"rounds", rounds,
		"initial_cost", res.Costs[0],
		"final_cost", res.Costs[len(res.Costs)-1])

	return res, nil
}

// assignment samples every agent's committed value.
func assignment(agents map[string]dcop.Agent) dcop.Assignment {
	out := make(dcop.Assignment, len(agents))
	for id, a := range agents {
		out[id] = a.Value()
	}

	return out
}
