package sim

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/distopt/dcop"
)

// Result is the outcome of a single simulation run.
type Result struct {
	// RunID is a freshly minted UUID identifying this run in logs/exports.
	RunID string

	// Final is the committed assignment after the last round.
	Final dcop.Assignment

	// Costs holds the global cost per round; index 0 is the initial
	// assignment, index k the state after round k.
	Costs []float64

	// Delivered holds the number of messages delivered in each round.
	Delivered []int
}

// Improvement reports the percentage cost reduction from the initial to
// the final assignment. A zero-cost baseline reports 0.
func (r *Result) Improvement() float64 {
	if len(r.Costs) == 0 || r.Costs[0] == 0 {
		return 0
	}
	initial, final := r.Costs[0], r.Costs[len(r.Costs)-1]

	return (initial - final) / initial * 100
}

// WriteCSV emits the run as rows of round,cost,delivered. Round 0 is the
// initial assignment, with no deliveries of its own.
func (r *Result) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"round", "cost", "delivered"}); err != nil {
		return err
	}
	for i, cost := range r.Costs {
		delivered := 0
		if i > 0 && i-1 < len(r.Delivered) {
			delivered = r.Delivered[i-1]
		}
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(cost, 'g', -1, 64),
			strconv.Itoa(delivered),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// MeanCosts averages the per-round cost curves of several runs,
// truncating to the shortest curve. Nil for no runs.
func MeanCosts(results []*Result) []float64 {
	if len(results) == 0 {
		return nil
	}
	shortest := len(results[0].Costs)
	for _, r := range results[1:] {
		if len(r.Costs) < shortest {
			shortest = len(r.Costs)
		}
	}
	if shortest == 0 {
		return nil
	}

	mean := make([]float64, shortest)
	for _, r := range results {
		for i := 0; i < shortest; i++ {
			mean[i] += r.Costs[i]
		}
	}
	for i := range mean {
		mean[i] /= float64(len(results))
	}

	return mean
}
