package monitor

import (
	"sync/atomic"
)

// StepCounter counts elements or nodes examined by one lookup.
// Each index owns its own counter, so instances never share counts.
type StepCounter struct {
	last int
}

func (sc *StepCounter) Reset() {
	sc.last = 0
}

func (sc *StepCounter) Inc() {
	sc.last++
}

func (sc *StepCounter) Last() int {
	return sc.last
}

type WorkloadStats struct {
	FindCount   uint64
	InsertCount uint64
	HitCount    uint64
	StepTotal   uint64
	MaxSteps    uint64
}

func NewWorkloadStats() *WorkloadStats {
	return &WorkloadStats{}
}

func (ws *WorkloadStats) RecordFind(steps int, hit bool) {
	atomic.AddUint64(&ws.FindCount, 1)
	atomic.AddUint64(&ws.StepTotal, uint64(steps))
	if hit {
		atomic.AddUint64(&ws.HitCount, 1)
	}
	for {
		cur := atomic.LoadUint64(&ws.MaxSteps)
		if uint64(steps) <= cur || atomic.CompareAndSwapUint64(&ws.MaxSteps, cur, uint64(steps)) {
			return
		}
	}
}

func (ws *WorkloadStats) RecordInsert() {
	atomic.AddUint64(&ws.InsertCount, 1)
}

func (ws *WorkloadStats) AvgSteps() float64 {
	finds := atomic.LoadUint64(&ws.FindCount)
	if finds == 0 {
		return 0.0
	}
	return float64(atomic.LoadUint64(&ws.StepTotal)) / float64(finds)
}

func (ws *WorkloadStats) HitRatio() float64 {
	finds := atomic.LoadUint64(&ws.FindCount)
	if finds == 0 {
		return 0.0
	}
	return float64(atomic.LoadUint64(&ws.HitCount)) / float64(finds)
}

// Snapshot 导出统计信息
func (ws *WorkloadStats) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"finds":     atomic.LoadUint64(&ws.FindCount),
		"inserts":   atomic.LoadUint64(&ws.InsertCount),
		"hits":      atomic.LoadUint64(&ws.HitCount),
		"max_steps": atomic.LoadUint64(&ws.MaxSteps),
		"avg_steps": ws.AvgSteps(),
		"hit_ratio": ws.HitRatio(),
	}
}
