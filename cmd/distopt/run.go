package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distopt/problem"
	"github.com/katalvlaran/distopt/sim"
)

func newRunCmd() *cobra.Command {
	var (
		algo    string
		kind    string
		agents  int
		domain  int
		density float64
		rounds  int
		seed    int64
		p       float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one protocol on one generated instance and print the cost curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				inst *problem.Instance
				err  error
			)
			switch kind {
			case sim.KindUniform:
				inst, err = problem.UniformRandom(agents, domain, density, problem.WithSeed(seed))
			case sim.KindColoring:
				inst, err = problem.GraphColoring(agents, domain, density, problem.WithSeed(seed))
			default:
				return fmt.Errorf("unknown instance kind %q", kind)
			}
			if err != nil {
				return err
			}

			var factory sim.Factory
			switch algo {
			case sim.AlgoDSA:
				factory = sim.DSA(p, seed)
			case sim.AlgoMGM:
				factory = sim.MGM(seed)
			case sim.AlgoMGM2:
				factory = sim.MGM2(p, seed)
			default:
				return fmt.Errorf("unknown algorithm %q", algo)
			}

			res, err := sim.Run(inst, factory, rounds)
			if err != nil {
				return err
			}
			slog.Info("run finished",
				"run_id", res.RunID,
				"algo", algo,
				"agents", agents,
				"constraints", len(inst.Constraints),
				"improvement_pct", res.Improvement())

			return res.WriteCSV(os.Stdout)
		},
	}

	cmd.Flags().StringVar(&algo, "algo", sim.AlgoMGM, "protocol: dsa | mgm | mgm2")
	cmd.Flags().StringVar(&kind, "kind", sim.KindUniform, "instance kind: uniform | coloring")
	cmd.Flags().IntVar(&agents, "agents", 10, "number of agents")
	cmd.Flags().IntVar(&domain, "domain", 5, "values per agent")
	cmd.Flags().Float64Var(&density, "density", 0.4, "constraint edge density in [0,1]")
	cmd.Flags().IntVar(&rounds, "rounds", 40, "kernel rounds to execute")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base seed for instance and agents")
	cmd.Flags().Float64Var(&p, "p", 0.7, "activation (dsa) / offer (mgm2) probability")

	return cmd
}
