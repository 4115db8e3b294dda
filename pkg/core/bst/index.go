// Package bst indexes students in an unbalanced binary search tree keyed by
// ID. Every node exclusively owns its two children and there are no parent
// links, so the structure cannot contain cycles.
//
// No rebalancing is done: inserting IDs in ascending or descending order
// degrades the tree into a list and lookups into O(n) walks.
package bst

import (
	"fmt"

	"studentdb/pkg/common"
	"studentdb/pkg/monitor"
)

type node struct {
	student     *common.Student
	left, right *node
}

type Index struct {
	root  *node
	size  int
	steps monitor.StepCounter
	stats *monitor.WorkloadStats
}

func New() *Index {
	return &Index{stats: monitor.NewWorkloadStats()}
}

// walk 从根节点开始查找，每访问一个节点计一步
func (t *Index) walk(id common.StudentID, sc *monitor.StepCounter) *node {
	sc.Reset()
	n := t.root
	for n != nil {
		sc.Inc()
		switch {
		case id == n.student.ID:
			return n
		case id < n.student.ID:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// Insert descends to the empty slot for s.ID and hangs a new node there.
// The walk stops at an equal key without creating anything.
func (t *Index) Insert(s common.Student) error {
	if err := s.Validate(); err != nil {
		return err
	}
	slot := &t.root
	for *slot != nil {
		cur := *slot
		switch {
		case s.ID == cur.student.ID:
			return fmt.Errorf("%w: %d", common.ErrDuplicateID, s.ID)
		case s.ID < cur.student.ID:
			slot = &cur.left
		default:
			slot = &cur.right
		}
	}
	*slot = &node{student: s.Clone()}
	t.size++
	t.stats.RecordInsert()
	return nil
}

func (t *Index) Find(id common.StudentID) (*common.Student, error) {
	n := t.walk(id, &t.steps)
	t.stats.RecordFind(t.steps.Last(), n != nil)
	if n == nil {
		return nil, fmt.Errorf("%w: %d", common.ErrNotFound, id)
	}
	return n.student, nil
}

func (t *Index) UpdateMarks(id common.StudentID, marks []float64) error {
	rec, err := t.Find(id)
	if err != nil {
		return err
	}
	if len(marks) != len(rec.Subjects) {
		return fmt.Errorf("%w: got %d marks for %d subjects", common.ErrArityMismatch, len(marks), len(rec.Subjects))
	}
	rec.ApplyMarks(marks)
	return nil
}

func (t *Index) LastSteps() int {
	return t.steps.Last()
}

func (t *Index) Size() int {
	return t.size
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Index) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Students returns the records by in-order traversal, i.e. ascending ID.
func (t *Index) Students() []*common.Student {
	out := make([]*common.Student, 0, t.size)
	var visit func(n *node)
	visit = func(n *node) {
		if n == nil {
			return
		}
		visit(n.left)
		out = append(out, n.student)
		visit(n.right)
	}
	visit(t.root)
	return out
}

// Root returns the ID at the root, or false for an empty tree.
func (t *Index) Root() (common.StudentID, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.student.ID, true
}

func (t *Index) Stats() map[string]interface{} {
	stats := t.stats.Snapshot()
	stats["size"] = t.size
	stats["height"] = t.Height()
	stats["mode"] = "Binary Search Tree (unbalanced)"
	return stats
}

func (t *Index) Type() string {
	return "bst"
}
