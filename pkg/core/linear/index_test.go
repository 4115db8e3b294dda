package linear

import (
	"errors"
	"slices"
	"testing"

	"studentdb/pkg/common"
	"studentdb/pkg/core/conformance"
)

func TestConformance(t *testing.T) {
	conformance.Run(t, func() conformance.Index { return New() })
}

func TestScenarioStepCount(t *testing.T) {
	idx := New()
	conformance.Fill(t, idx, conformance.NewModel(), conformance.ScenarioIDs)

	if _, err := idx.Find(175); err != nil {
		t.Fatalf("find 175: %v", err)
	}
	if idx.LastSteps() != 7 {
		t.Fatalf("expected 7 steps for the last element, got %d", idx.LastSteps())
	}
	if _, err := idx.Find(100); err != nil {
		t.Fatalf("find 100: %v", err)
	}
	if idx.LastSteps() != 1 {
		t.Fatalf("expected 1 step for the first element, got %d", idx.LastSteps())
	}
}

func TestAbsentScansEverything(t *testing.T) {
	idx := New()
	for n := 0; n < 20; n++ {
		if _, err := idx.Find(-1); !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if idx.LastSteps() != n {
			t.Fatalf("absent id with %d records: got %d steps", n, idx.LastSteps())
		}
		if err := idx.Insert(common.NewStudent(common.StudentID(n*3), "s", "c", "Math")); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
}

func TestKeepsArrivalOrder(t *testing.T) {
	idx := New()
	conformance.Fill(t, idx, conformance.NewModel(), conformance.ScenarioIDs)
	if got := conformance.IDsOf(idx.Students()); !slices.Equal(got, conformance.ScenarioIDs) {
		t.Fatalf("expected arrival order %v, got %v", conformance.ScenarioIDs, got)
	}
}

func TestStats(t *testing.T) {
	idx := New()
	conformance.Fill(t, idx, conformance.NewModel(), conformance.ScenarioIDs)
	idx.Find(175)
	idx.Find(1)

	stats := idx.Stats()
	if stats["size"] != 7 {
		t.Errorf("size: got %v", stats["size"])
	}
	if stats["finds"] != uint64(2) || stats["hits"] != uint64(1) {
		t.Errorf("finds/hits: got %v/%v", stats["finds"], stats["hits"])
	}
	if stats["max_steps"] != uint64(7) {
		t.Errorf("max_steps: got %v", stats["max_steps"])
	}
}
