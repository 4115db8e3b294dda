// Package bench compares index strategies on identical workloads by the
// number of steps each needs per lookup.
package bench

import (
	"fmt"
	"io"
	"math/bits"
	"math/rand"
	"slices"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"studentdb/pkg/common"
	"studentdb/pkg/config"
	"studentdb/pkg/core"
)

type Result struct {
	Strategy   string
	Records    int
	Lookups    int
	Hits       int
	Misses     int
	TotalSteps int
	MaxSteps   int
	Height     int // tree strategies only
	Bound      int // floor(log2 n) + 1
	Build      time.Duration
	Elapsed    time.Duration
}

func (r Result) AvgSteps() float64 {
	if r.Lookups == 0 {
		return 0
	}
	return float64(r.TotalSteps) / float64(r.Lookups)
}

// Workload is the shared input every strategy is measured on.
type Workload struct {
	IDs     []common.StudentID // insertion order
	Targets []common.StudentID
}

// NewWorkload derives a deterministic workload from cfg. Present IDs are even
// and absent IDs are odd, so lookups never collide by accident.
func NewWorkload(cfg config.BenchmarkConfig) Workload {
	rng := rand.New(rand.NewSource(cfg.Seed))

	ids := make([]common.StudentID, cfg.Records)
	for i, k := range rng.Perm(cfg.Records) {
		ids[i] = common.StudentID(2*k + 2)
	}
	switch cfg.Order {
	case config.OrderAscending:
		slices.Sort(ids)
	case config.OrderDescending:
		slices.Sort(ids)
		slices.Reverse(ids)
	}

	absent := int(float64(cfg.Lookups) * cfg.AbsentRatio)
	if len(ids) == 0 {
		absent = cfg.Lookups
	}
	targets := make([]common.StudentID, 0, cfg.Lookups)
	for i := 0; i < cfg.Lookups-absent; i++ {
		targets = append(targets, ids[rng.Intn(len(ids))])
	}
	for i := 0; i < absent; i++ {
		targets = append(targets, common.StudentID(2*rng.Intn(cfg.Records+1)+1))
	}
	rng.Shuffle(len(targets), func(i, j int) {
		targets[i], targets[j] = targets[j], targets[i]
	})
	return Workload{IDs: ids, Targets: targets}
}

// Run measures every strategy on the same workload.
func Run(cfg config.BenchmarkConfig) ([]Result, error) {
	if cfg.Records <= 0 {
		return nil, fmt.Errorf("bench: records must be positive, got %d", cfg.Records)
	}
	w := NewWorkload(cfg)

	results := make([]Result, 0, len(core.Strategies))
	for _, name := range core.Strategies {
		idx, err := core.New(name)
		if err != nil {
			return nil, err
		}
		res, err := Measure(idx, w)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Measure fills an empty idx with w.IDs and looks up every target.
func Measure(idx core.Index, w Workload) (Result, error) {
	res := Result{
		Strategy: idx.Type(),
		Records:  len(w.IDs),
		Lookups:  len(w.Targets),
		Bound:    bits.Len(uint(len(w.IDs))),
	}

	start := time.Now()
	for _, id := range w.IDs {
		if err := idx.Insert(common.NewStudent(id, "bench", "bench", "Overall")); err != nil {
			return res, fmt.Errorf("bench: %s insert %d: %w", res.Strategy, id, err)
		}
	}
	res.Build = time.Since(start)

	start = time.Now()
	for _, id := range w.Targets {
		if _, err := idx.Find(id); err != nil {
			res.Misses++
		} else {
			res.Hits++
		}
		steps := idx.LastSteps()
		res.TotalSteps += steps
		res.MaxSteps = max(res.MaxSteps, steps)
	}
	res.Elapsed = time.Since(start)

	if h, ok := idx.(interface{ Height() int }); ok {
		res.Height = h.Height()
	}
	return res, nil
}

// Render prints results as a table.
func Render(out io.Writer, results []Result) {
	if len(results) == 0 {
		return
	}
	color.New(color.FgYellow).Fprintf(out, "\nStep comparison (N=%d, lookups=%d)\n", results[0].Records, results[0].Lookups)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Strategy", "Hits", "Misses", "Avg Steps", "Max Steps", "Log2 Bound", "Height", "Build", "Lookups"})
	for _, r := range results {
		height := "-"
		if r.Height > 0 {
			height = strconv.Itoa(r.Height)
		}
		table.Append([]string{
			r.Strategy,
			strconv.Itoa(r.Hits),
			strconv.Itoa(r.Misses),
			fmt.Sprintf("%.2f", r.AvgSteps()),
			strconv.Itoa(r.MaxSteps),
			strconv.Itoa(r.Bound),
			height,
			r.Build.String(),
			r.Elapsed.String(),
		})
	}
	table.Render()
}
