package common

import (
	"fmt"
	"strings"
)

// SubjectTerminator ends a subject list at the console; it is never a valid subject name.
const SubjectTerminator = "0"


// StudentID 是学生记录的主键
type StudentID int64

type Subject struct {
	Name    string
	Mark    float64
	HasMark bool
}

// Student 是索引中存储的基本单元
type Student struct {
	ID       StudentID
	Name     string
	Course   string
	Subjects []Subject
}

// Validate reports whether s can be accepted into an index.
func (s *Student) Validate() error {
	if len(s.Subjects) == 0 {
		return fmt.Errorf("%w: id %d has no subjects", ErrInvalidStudent, s.ID)
	}
	for i, sub := range s.Subjects {
		name := strings.TrimSpace(sub.Name)
		if name == "" {
			return fmt.Errorf("%w: id %d subject #%d has an empty name", ErrInvalidStudent, s.ID, i+1)
		}
		if name == SubjectTerminator {
			return fmt.Errorf("%w: id %d subject #%d uses reserved name %q", ErrInvalidStudent, s.ID, i+1, SubjectTerminator)
		}
	}
	return nil
}

// Clone returns a deep copy so the caller and an index never share subjects.
func (s *Student) Clone() *Student {
	c := *s
	c.Subjects = make([]Subject, len(s.Subjects))
	copy(c.Subjects, s.Subjects)
	return &c
}

// ApplyMarks overwrites every subject mark in order. The caller checks arity.
func (s *Student) ApplyMarks(marks []float64) {
	for i := range s.Subjects {
		s.Subjects[i].Mark = marks[i]
		s.Subjects[i].HasMark = true
	}
}

// String 方便调试打印
func (s *Student) String() string {
	return fmt.Sprintf("Student{ID: %d, Name: %q, Subjects: %d}", s.ID, s.Name, len(s.Subjects))
}

// NewStudent builds an unmarked student from subject names.
func NewStudent(id StudentID, name, course string, subjects ...string) Student {
	s := Student{ID: id, Name: name, Course: course, Subjects: make([]Subject, 0, len(subjects))}
	for _, sub := range subjects {
		s.Subjects = append(s.Subjects, Subject{Name: sub})
	}
	return s
}
