package sim

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/distopt/problem"
)

// Instance kinds accepted in experiment configs.
const (
	KindUniform  = "uniform"
	KindColoring = "coloring"
)

// Algorithm names accepted in experiment configs.
const (
	AlgoDSA  = "dsa"
	AlgoMGM  = "mgm"
	AlgoMGM2 = "mgm2"
)

// GraphSpec describes one family of generated instances.
type GraphSpec struct {
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"` // uniform | coloring
	Agents  int     `yaml:"agents"`
	Domain  int     `yaml:"domain"`
	Density float64 `yaml:"density"`
}

// AlgorithmSpec describes one protocol configuration to benchmark.
type AlgorithmSpec struct {
	Name string  `yaml:"name"`
	Algo string  `yaml:"algo"` // dsa | mgm | mgm2
	P    float64 `yaml:"p"`    // activation (dsa) / offer (mgm2) probability
}

// Config is the YAML shape of an experiment: a grid of graphs ×
// algorithms, each cell repeated Runs times over reseeded instances.
type Config struct {
	Name       string          `yaml:"name"`
	Rounds     int             `yaml:"rounds"`
	Runs       int             `yaml:"runs"`
	Seed       int64           `yaml:"seed"`
	Graphs     []GraphSpec     `yaml:"graphs"`
	Algorithms []AlgorithmSpec `yaml:"algorithms"`
}

// LoadConfig reads and validates an experiment config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrBadConfig, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrBadConfig, path, err)
	}
	if cfg.Runs == 0 {
		cfg.Runs = 1
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the config for structural errors; every failure wraps
// ErrBadConfig.
func (c *Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds=%d", ErrBadConfig, c.Rounds)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs=%d", ErrBadConfig, c.Runs)
	}
	if len(c.Graphs) == 0 {
		return fmt.Errorf("%w: no graphs", ErrBadConfig)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrBadConfig)
	}
	for _, g := range c.Graphs {
		if g.Name == "" {
			return fmt.Errorf("%w: graph without a name", ErrBadConfig)
		}
		if g.Kind != KindUniform && g.Kind != KindColoring {
			return fmt.Errorf("%w: graph %q: unknown kind %q", ErrBadConfig, g.Name, g.Kind)
		}
	}
	for _, a := range c.Algorithms {
		if a.Name == "" {
			return fmt.Errorf("%w: algorithm without a name", ErrBadConfig)
		}
		switch a.Algo {
		case AlgoDSA, AlgoMGM2:
			if a.P < 0 || a.P > 1 {
				return fmt.Errorf("%w: algorithm %q: p=%v", ErrBadConfig, a.Name, a.P)
			}
		case AlgoMGM:
			// No parameters.
		default:
			return fmt.Errorf("%w: algorithm %q: unknown algo %q", ErrBadConfig, a.Name, a.Algo)
		}
	}

	return nil
}

// Series is one cell of the experiment grid: the mean per-round cost
// curve of Runs repetitions.
type Series struct {
	Graph     string
	Algorithm string
	Mean      []float64
}

// Report is a completed experiment, stamped with a fresh UUID.
type Report struct {
	ID     string
	Name   string
	Series []Series
}

// Experiment drives a config's whole grid.
type Experiment struct {
	cfg *Config
	log *slog.Logger
}

// NewExperiment validates the config and prepares a runner.
func NewExperiment(cfg *Config, opts ...Option) (*Experiment, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrBadConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rc := runConfig{log: slog.Default()}
	for _, opt := range opts {
		opt(&rc)
	}

	return &Experiment{cfg: cfg, log: rc.log}, nil
}

// Run executes every graph × algorithm cell. The cell's runs fan out on
// an errgroup; run k regenerates its instance and reseeds its agents
// with Seed+k, so repetitions vary while the whole grid stays
// reproducible for a fixed config.
func (e *Experiment) Run(ctx context.Context) (*Report, error) {
	report := &Report{ID: uuid.NewString(), Name: e.cfg.Name}
	e.log.Info("experiment started",
		"experiment_id", report.ID,
		"graphs", len(e.cfg.Graphs),
		"algorithms", len(e.cfg.Algorithms),
		"runs", e.cfg.Runs)

	for _, g := range e.cfg.Graphs {
		for _, alg := range e.cfg.Algorithms {
			results := make([]*Result, e.cfg.Runs)
			grp, ctx := errgroup.WithContext(ctx)
			for run := 0; run < e.cfg.Runs; run++ {
				run := run
				grp.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					seed := e.cfg.Seed + int64(run)
					inst, err := buildInstance(g, seed)
					if err != nil {
						return fmt.Errorf("graph %q run %d: %w", g.Name, run, err)
					}
					factory, err := buildFactory(alg, seed)
					if err != nil {
						return fmt.Errorf("algorithm %q: %w", alg.Name, err)
					}
					res, err := Run(inst, factory, e.cfg.Rounds, WithLogger(e.log))
					if err != nil {
						return fmt.Errorf("graph %q algorithm %q run %d: %w", g.Name, alg.Name, run, err)
					}
					results[run] = res

					return nil
				})
			}
			if err := grp.Wait(); err != nil {
				return nil, err
			}

			mean := MeanCosts(results)
			e.log.Info("series complete",
				"experiment_id", report.ID,
				"graph", g.Name,
				"algorithm", alg.Name,
				"initial_cost", mean[0],
				"final_cost", mean[len(mean)-1])
			report.Series = append(report.Series, Series{
				Graph:     g.Name,
				Algorithm: alg.Name,
				Mean:      mean,
			})
		}
	}

	return report, nil
}

// buildInstance generates one instance for a graph spec and seed.
func buildInstance(g GraphSpec, seed int64) (*problem.Instance, error) {
	switch g.Kind {
	case KindColoring:
		return problem.GraphColoring(g.Agents, g.Domain, g.Density, problem.WithSeed(seed))
	default:
		return problem.UniformRandom(g.Agents, g.Domain, g.Density, problem.WithSeed(seed))
	}
}

// buildFactory resolves an algorithm spec into an agent factory.
func buildFactory(a AlgorithmSpec, seed int64) (Factory, error) {
	switch a.Algo {
	case AlgoDSA:
		return DSA(a.P, seed), nil
	case AlgoMGM:
		return MGM(seed), nil
	case AlgoMGM2:
		return MGM2(a.P, seed), nil
	default:
		return nil, fmt.Errorf("%w: unknown algo %q", ErrBadConfig, a.Algo)
	}
}

// ExportCSV writes one CSV per graph into dir: a round column followed
// by one mean-cost column per algorithm.
func (r *Report) ExportCSV(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Group series by graph, preserving first-seen order.
	graphs := make([]string, 0)
	byGraph := make(map[string][]Series)
	for _, s := range r.Series {
		if _, seen := byGraph[s.Graph]; !seen {
			graphs = append(graphs, s.Graph)
		}
		byGraph[s.Graph] = append(byGraph[s.Graph], s)
	}

	for _, graph := range graphs {
		series := byGraph[graph]
		if err := writeGraphCSV(filepath.Join(dir, graph+".csv"), series); err != nil {
			return err
		}
	}

	return nil
}

func writeGraphCSV(path string, series []Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := []string{"round"}
	rows := 0
	for _, s := range series {
		header = append(header, s.Algorithm)
		if len(s.Mean) > rows {
			rows = len(s.Mean)
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(i))
		for _, s := range series {
			if i < len(s.Mean) {
				row = append(row, strconv.FormatFloat(s.Mean[i], 'g', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
