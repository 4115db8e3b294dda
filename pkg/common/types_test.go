package common

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		student Student
		ok      bool
	}{
		{"one subject", NewStudent(1, "Ann", "CS", "Math"), true},
		{"several subjects", NewStudent(2, "Ben", "EE", "Math", "Physics", "Circuits"), true},
		{"no subjects", NewStudent(3, "Cid", "CS"), false},
		{"empty subject name", NewStudent(4, "Dee", "CS", "Math", "  "), false},
		{"terminator as subject", NewStudent(5, "Eve", "CS", "0"), false},
	}
	for _, tt := range tests {
		err := tt.student.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidStudent) {
			t.Errorf("%s: expected ErrInvalidStudent, got %v", tt.name, err)
		}
	}
}

func TestCloneDoesNotShareSubjects(t *testing.T) {
	orig := NewStudent(7, "Gus", "Math", "Algebra", "Geometry")
	c := orig.Clone()
	c.Subjects[0].Name = "Changed"
	c.ApplyMarks([]float64{1, 2})

	if orig.Subjects[0].Name != "Algebra" {
		t.Fatalf("clone aliased subject names: %q", orig.Subjects[0].Name)
	}
	if orig.Subjects[1].HasMark {
		t.Fatalf("clone aliased marks")
	}
}

func TestApplyMarks(t *testing.T) {
	s := NewStudent(9, "Ivy", "Bio", "Cells", "Genes")
	s.ApplyMarks([]float64{55.5, 70})
	for i, want := range []float64{55.5, 70} {
		if !s.Subjects[i].HasMark || s.Subjects[i].Mark != want {
			t.Errorf("subject %d: got %+v, want mark %v", i, s.Subjects[i], want)
		}
	}
}
