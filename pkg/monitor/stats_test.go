package monitor

import "testing"

func TestStepCounter(t *testing.T) {
	var sc StepCounter
	sc.Inc()
	sc.Inc()
	if sc.Last() != 2 {
		t.Fatalf("expected 2 steps, got %d", sc.Last())
	}
	sc.Reset()
	if sc.Last() != 0 {
		t.Fatalf("expected 0 after reset, got %d", sc.Last())
	}
}

func TestWorkloadStats(t *testing.T) {
	ws := NewWorkloadStats()
	if ws.AvgSteps() != 0 || ws.HitRatio() != 0 {
		t.Fatalf("empty stats should report zeros")
	}

	ws.RecordInsert()
	ws.RecordFind(3, true)
	ws.RecordFind(7, false)

	if ws.AvgSteps() != 5 {
		t.Errorf("avg steps: got %v, want 5", ws.AvgSteps())
	}
	if ws.HitRatio() != 0.5 {
		t.Errorf("hit ratio: got %v, want 0.5", ws.HitRatio())
	}
	snap := ws.Snapshot()
	if snap["max_steps"] != uint64(7) {
		t.Errorf("max_steps: got %v", snap["max_steps"])
	}
	if snap["inserts"] != uint64(1) {
		t.Errorf("inserts: got %v", snap["inserts"])
	}
}
