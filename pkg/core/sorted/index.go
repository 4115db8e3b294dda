// Package sorted keeps students in strictly ascending ID order and resolves
// lookups with binary search. Inserts shift the tail, so they cost O(n).
package sorted

import (
	"fmt"
	"slices"
	"sort"

	"studentdb/pkg/common"
	"studentdb/pkg/monitor"
)

type Index struct {
	records []*common.Student // strictly ascending by ID
	steps   monitor.StepCounter
	stats   *monitor.WorkloadStats
}

func New() *Index {
	return &Index{
		records: make([]*common.Student, 0),
		stats:   monitor.NewWorkloadStats(),
	}
}

// search is a classic inclusive-bounds binary search; one step per probe.
func (si *Index) search(id common.StudentID, sc *monitor.StepCounter) int {
	sc.Reset()
	low, high := 0, len(si.records)-1
	for low <= high {
		sc.Inc()
		mid := low + (high-low)/2
		midID := si.records[mid].ID
		switch {
		case id == midID:
			return mid
		case id < midID:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return -1
}

func (si *Index) Insert(s common.Student) error {
	if err := s.Validate(); err != nil {
		return err
	}
	var discard monitor.StepCounter
	if si.search(s.ID, &discard) >= 0 {
		return fmt.Errorf("%w: %d", common.ErrDuplicateID, s.ID)
	}

	// lower bound: 第一个 ID >= s.ID 的位置
	pos := sort.Search(len(si.records), func(i int) bool {
		return si.records[i].ID >= s.ID
	})
	si.records = slices.Insert(si.records, pos, s.Clone())
	si.stats.RecordInsert()
	return nil
}

func (si *Index) Find(id common.StudentID) (*common.Student, error) {
	pos := si.search(id, &si.steps)
	si.stats.RecordFind(si.steps.Last(), pos >= 0)
	if pos < 0 {
		return nil, fmt.Errorf("%w: %d", common.ErrNotFound, id)
	}
	return si.records[pos], nil
}

func (si *Index) UpdateMarks(id common.StudentID, marks []float64) error {
	rec, err := si.Find(id)
	if err != nil {
		return err
	}
	if len(marks) != len(rec.Subjects) {
		return fmt.Errorf("%w: got %d marks for %d subjects", common.ErrArityMismatch, len(marks), len(rec.Subjects))
	}
	rec.ApplyMarks(marks)
	return nil
}

func (si *Index) LastSteps() int {
	return si.steps.Last()
}

func (si *Index) Size() int {
	return len(si.records)
}

// Students returns the records in ascending ID order.
func (si *Index) Students() []*common.Student {
	return slices.Clone(si.records)
}

func (si *Index) Stats() map[string]interface{} {
	stats := si.stats.Snapshot()
	stats["size"] = si.Size()
	stats["mode"] = "Binary Search (sorted)"
	return stats
}

func (si *Index) Type() string {
	return "sorted"
}
