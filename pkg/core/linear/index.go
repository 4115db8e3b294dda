// Package linear stores students in arrival order and resolves lookups with a
// full scan. It is the baseline the other strategies are measured against.
package linear

import (
	"fmt"

	"studentdb/pkg/common"
	"studentdb/pkg/monitor"
)

type Index struct {
	records []*common.Student // arrival order, never reordered
	steps   monitor.StepCounter
	stats   *monitor.WorkloadStats
}

func New() *Index {
	return &Index{
		records: make([]*common.Student, 0),
		stats:   monitor.NewWorkloadStats(),
	}
}

// scan 从头开始逐个比较，每检查一个元素计一步
func (li *Index) scan(id common.StudentID, sc *monitor.StepCounter) *common.Student {
	sc.Reset()
	for _, rec := range li.records {
		sc.Inc()
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

func (li *Index) Insert(s common.Student) error {
	if err := s.Validate(); err != nil {
		return err
	}
	var discard monitor.StepCounter
	if li.scan(s.ID, &discard) != nil {
		return fmt.Errorf("%w: %d", common.ErrDuplicateID, s.ID)
	}
	li.records = append(li.records, s.Clone())
	li.stats.RecordInsert()
	return nil
}

func (li *Index) Find(id common.StudentID) (*common.Student, error) {
	rec := li.scan(id, &li.steps)
	li.stats.RecordFind(li.steps.Last(), rec != nil)
	if rec == nil {
		return nil, fmt.Errorf("%w: %d", common.ErrNotFound, id)
	}
	return rec, nil
}

func (li *Index) UpdateMarks(id common.StudentID, marks []float64) error {
	rec, err := li.Find(id)
	if err != nil {
		return err
	}
	if len(marks) != len(rec.Subjects) {
		return fmt.Errorf("%w: got %d marks for %d subjects", common.ErrArityMismatch, len(marks), len(rec.Subjects))
	}
	rec.ApplyMarks(marks)
	return nil
}

func (li *Index) LastSteps() int {
	return li.steps.Last()
}

func (li *Index) Size() int {
	return len(li.records)
}

// Students returns the records in arrival order.
func (li *Index) Students() []*common.Student {
	out := make([]*common.Student, len(li.records))
	copy(out, li.records)
	return out
}

func (li *Index) Stats() map[string]interface{} {
	stats := li.stats.Snapshot()
	stats["size"] = li.Size()
	stats["mode"] = "Linear Scan (unsorted)"
	return stats
}

func (li *Index) Type() string {
	return "linear"
}
