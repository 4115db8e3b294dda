// Package conformance is the behavioral suite every index strategy must pass.
// Expected membership and ID order come from a google/btree reference model.
package conformance

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/btree"

	"studentdb/pkg/common"
)

// Index is the operation surface under test.
type Index interface {
	Insert(s common.Student) error
	Find(id common.StudentID) (*common.Student, error)
	UpdateMarks(id common.StudentID, marks []float64) error
	LastSteps() int
	Size() int
	Students() []*common.Student
}

// ScenarioIDs is the fixed insertion order of the seven-student walkthrough.
var ScenarioIDs = []common.StudentID{100, 50, 150, 25, 75, 125, 175}

type idItem common.StudentID

func (i idItem) Less(than btree.Item) bool {
	return i < than.(idItem)
}

// Model mirrors the set of IDs an index should hold.
type Model struct {
	tree *btree.BTree
}

func NewModel() *Model {
	return &Model{tree: btree.New(8)}
}

// Add returns false if id was already present.
func (m *Model) Add(id common.StudentID) bool {
	return m.tree.ReplaceOrInsert(idItem(id)) == nil
}

func (m *Model) Has(id common.StudentID) bool {
	return m.tree.Has(idItem(id))
}

func (m *Model) Len() int {
	return m.tree.Len()
}

// IDs returns the model contents in ascending order.
func (m *Model) IDs() []common.StudentID {
	ids := make([]common.StudentID, 0, m.tree.Len())
	m.tree.Ascend(func(i btree.Item) bool {
		ids = append(ids, common.StudentID(i.(idItem)))
		return true
	})
	return ids
}

// Absent returns n IDs the model does not contain, drawn from [lo, hi).
func (m *Model) Absent(rng *rand.Rand, n int, lo, hi int64) []common.StudentID {
	out := make([]common.StudentID, 0, n)
	for len(out) < n {
		id := common.StudentID(lo + rng.Int63n(hi-lo))
		if !m.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

func student(id common.StudentID) common.Student {
	return common.NewStudent(id, "student", "course", "Math", "Physics", "Chemistry")
}

// IDsOf extracts the IDs of recs in order.
func IDsOf(recs []*common.Student) []common.StudentID {
	ids := make([]common.StudentID, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

// Fill inserts ids into idx and model, failing the test on any error.
func Fill(t *testing.T, idx Index, model *Model, ids []common.StudentID) {
	t.Helper()
	for _, id := range ids {
		if err := idx.Insert(student(id)); err != nil {
			t.Fatalf("insert %d: %v", id, err)
		}
		model.Add(id)
	}
}

// Run executes the suite against fresh indexes produced by newIndex.
func Run(t *testing.T, newIndex func() Index) {
	t.Run("EmptyIndex", func(t *testing.T) { testEmpty(t, newIndex()) })
	t.Run("FindInserted", func(t *testing.T) { testFindInserted(t, newIndex()) })
	t.Run("FindAbsent", func(t *testing.T) { testFindAbsent(t, newIndex()) })
	t.Run("DuplicateLeavesContents", func(t *testing.T) { testDuplicate(t, newIndex()) })
	t.Run("RejectsInvalidStudent", func(t *testing.T) { testInvalid(t, newIndex()) })
	t.Run("UpdateMarks", func(t *testing.T) { testUpdateMarks(t, newIndex()) })
	t.Run("HandleIsMutable", func(t *testing.T) { testHandle(t, newIndex()) })
	t.Run("InsertCopiesInput", func(t *testing.T) { testInsertCopies(t, newIndex()) })
	t.Run("InsertKeepsLastSteps", func(t *testing.T) { testInsertKeepsSteps(t, newIndex()) })
}

func testEmpty(t *testing.T, idx Index) {
	if idx.Size() != 0 {
		t.Fatalf("expected empty index, size=%d", idx.Size())
	}
	if _, err := idx.Find(1); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty index, got %v", err)
	}
	if idx.LastSteps() != 0 {
		t.Fatalf("expected 0 steps on empty index, got %d", idx.LastSteps())
	}
	if err := idx.UpdateMarks(1, []float64{1}); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating empty index, got %v", err)
	}
}

func testFindInserted(t *testing.T, idx Index) {
	rng := rand.New(rand.NewSource(7))
	model := NewModel()
	var ids []common.StudentID
	for model.Len() < 300 {
		id := common.StudentID(rng.Int63n(10000))
		if model.Add(id) {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		if err := idx.Insert(student(id)); err != nil {
			t.Fatalf("insert %d: %v", id, err)
		}
	}
	if idx.Size() != model.Len() {
		t.Fatalf("size: got %d, want %d", idx.Size(), model.Len())
	}
	for _, id := range ids {
		rec, err := idx.Find(id)
		if err != nil {
			t.Fatalf("find %d: %v", id, err)
		}
		if rec.ID != id {
			t.Fatalf("find %d returned record %d", id, rec.ID)
		}
		if idx.LastSteps() < 1 || idx.LastSteps() > idx.Size() {
			t.Fatalf("find %d: steps %d out of [1,%d]", id, idx.LastSteps(), idx.Size())
		}
	}

	got := IDsOf(idx.Students())
	slices.Sort(got)
	if !slices.Equal(got, model.IDs()) {
		t.Fatalf("stored ids differ from model")
	}
}

func testFindAbsent(t *testing.T, idx Index) {
	rng := rand.New(rand.NewSource(11))
	model := NewModel()
	Fill(t, idx, model, []common.StudentID{40, 10, 70, 20, 60, 30, 50})
	for _, id := range model.Absent(rng, 50, -100, 200) {
		if _, err := idx.Find(id); !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("find absent %d: expected ErrNotFound, got %v", id, err)
		}
		if idx.LastSteps() > idx.Size() {
			t.Fatalf("find absent %d: %d steps exceeds size %d", id, idx.LastSteps(), idx.Size())
		}
	}
}

func testDuplicate(t *testing.T, idx Index) {
	model := NewModel()
	Fill(t, idx, model, ScenarioIDs)
	before := IDsOf(idx.Students())

	dup := common.NewStudent(75, "Other", "Other", "Art")
	if err := idx.Insert(dup); !errors.Is(err, common.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if idx.Size() != len(ScenarioIDs) {
		t.Fatalf("size changed after duplicate insert: %d", idx.Size())
	}
	if after := IDsOf(idx.Students()); !slices.Equal(before, after) {
		t.Fatalf("order changed after duplicate insert: %v -> %v", before, after)
	}
	rec, err := idx.Find(75)
	if err != nil {
		t.Fatalf("find 75: %v", err)
	}
	if rec.Name != "student" || len(rec.Subjects) != 3 {
		t.Fatalf("duplicate insert overwrote the original record: %+v", rec)
	}
}

func testInvalid(t *testing.T, idx Index) {
	bad := []common.Student{
		common.NewStudent(1, "No", "Subjects"),
		common.NewStudent(2, "Sentinel", "Subject", "0"),
		common.NewStudent(3, "Blank", "Subject", ""),
	}
	for _, s := range bad {
		if err := idx.Insert(s); !errors.Is(err, common.ErrInvalidStudent) {
			t.Errorf("insert %d: expected ErrInvalidStudent, got %v", s.ID, err)
		}
	}
	if idx.Size() != 0 {
		t.Fatalf("invalid students were stored: size=%d", idx.Size())
	}
}

func testUpdateMarks(t *testing.T, idx Index) {
	model := NewModel()
	Fill(t, idx, model, ScenarioIDs)

	if err := idx.UpdateMarks(125, []float64{60, 70}); !errors.Is(err, common.ErrArityMismatch) {
		t.Fatalf("expected ErrArityMismatch, got %v", err)
	}
	rec, _ := idx.Find(125)
	for i, sub := range rec.Subjects {
		if sub.HasMark {
			t.Fatalf("subject %d marked after failed update", i)
		}
	}

	if err := idx.UpdateMarks(125, []float64{60, 70, 80}); err != nil {
		t.Fatalf("update marks: %v", err)
	}
	rec, _ = idx.Find(125)
	if rec.ID != 125 || rec.Name != "student" || rec.Course != "course" {
		t.Fatalf("identity fields changed: %+v", rec)
	}
	for i, want := range []float64{60, 70, 80} {
		if !rec.Subjects[i].HasMark || rec.Subjects[i].Mark != want {
			t.Fatalf("subject %d: got %+v, want mark %v", i, rec.Subjects[i], want)
		}
	}

	if err := idx.UpdateMarks(999, []float64{1, 2, 3}); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testHandle(t *testing.T, idx Index) {
	model := NewModel()
	Fill(t, idx, model, []common.StudentID{5, 3})
	rec, err := idx.Find(5)
	if err != nil {
		t.Fatalf("find 5: %v", err)
	}
	// later inserts shift the sorted index; the handle must stay live
	Fill(t, idx, model, []common.StudentID{1, 2, 4})
	rec.Subjects[0].Mark = 42
	rec.Subjects[0].HasMark = true

	again, _ := idx.Find(5)
	if !again.Subjects[0].HasMark || again.Subjects[0].Mark != 42 {
		t.Fatalf("mutation through handle not visible: %+v", again.Subjects[0])
	}
}

func testInsertCopies(t *testing.T, idx Index) {
	s := common.NewStudent(9, "Orig", "Course", "Math")
	if err := idx.Insert(s); err != nil {
		t.Fatalf("insert: %v", err)
	}
	s.Subjects[0].Name = "Mutated"
	s.Name = "Mutated"

	rec, _ := idx.Find(9)
	if rec.Name != "Orig" || rec.Subjects[0].Name != "Math" {
		t.Fatalf("index shares storage with caller: %+v", rec)
	}
}

func testInsertKeepsSteps(t *testing.T, idx Index) {
	model := NewModel()
	Fill(t, idx, model, ScenarioIDs)
	if _, err := idx.Find(100); err != nil {
		t.Fatalf("find 100: %v", err)
	}
	steps := idx.LastSteps()
	Fill(t, idx, model, []common.StudentID{10, 200})
	_ = idx.Insert(student(100))
	if idx.LastSteps() != steps {
		t.Fatalf("insert changed last steps: %d -> %d", steps, idx.LastSteps())
	}
}
