package shell

import (
	"bytes"
	"strings"
	"testing"

	"studentdb/pkg/common"
	"studentdb/pkg/core"
)

func runShell(t *testing.T, strategy, input string) (core.Index, string) {
	t.Helper()
	idx, err := core.New(strategy)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	out := new(bytes.Buffer)
	if err := New(idx, strings.NewReader(input), out, Options{}).Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return idx, out.String()
}

func expectContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("expected output to contain %q, output=%s", w, out)
		}
	}
}

func TestAddSearchAndMark(t *testing.T) {
	input := strings.Join([]string{
		"1", "100", "Alice", "CS", "Math", "Physics", "0", "2",
		"2", "100", "2",
		"3", "100", "80", "90.5", "2",
		"4",
	}, "\n") + "\n"

	for _, strategy := range core.Strategies {
		idx, out := runShell(t, strategy, input)
		expectContains(t, out,
			"Student with ID 100 added successfully.",
			"(no mark yet)",
			"Steps taken: 1",
			"Marks updated.",
			"90.5",
			"Goodbye!",
		)

		rec, err := idx.Find(100)
		if err != nil {
			t.Fatalf("%s: find 100: %v", strategy, err)
		}
		if rec.Name != "Alice" || rec.Course != "CS" || len(rec.Subjects) != 2 {
			t.Fatalf("%s: unexpected record %+v", strategy, rec)
		}
		if !rec.Subjects[1].HasMark || rec.Subjects[1].Mark != 90.5 {
			t.Fatalf("%s: mark not applied: %+v", strategy, rec.Subjects[1])
		}
	}
}

func TestInvalidInputIsRetried(t *testing.T) {
	input := strings.Join([]string{
		"abc", "9",
		"1", "x", "7", "Bob", "EE", "0", "Circuits", "0", "2",
		"3", "7", "high", "55", "2",
		"4",
	}, "\n") + "\n"
	idx, out := runShell(t, "sorted", input)

	expectContains(t, out,
		"Wrong input.",
		"Wrong input, please enter an integer.",
		"Must have at least one subject.",
		"Wrong input, please enter a number.",
		"Marks updated.",
	)
	rec, err := idx.Find(7)
	if err != nil {
		t.Fatalf("find 7: %v", err)
	}
	if len(rec.Subjects) != 1 || rec.Subjects[0].Mark != 55 {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestDuplicateIDReprompts(t *testing.T) {
	idx, _ := core.New("linear")
	idx.Insert(common.NewStudent(5, "Existing", "Art", "Drawing"))

	input := "1\n5\n6\nNew\nArt\nPainting\n0\n2\n4\n"
	out := new(bytes.Buffer)
	if err := New(idx, strings.NewReader(input), out, Options{}).Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	expectContains(t, out.String(), "ID already exists.", "Student with ID 6 added successfully.")
	if idx.Size() != 2 {
		t.Fatalf("expected 2 students, got %d", idx.Size())
	}
}

func TestSearchMissingAndEmpty(t *testing.T) {
	_, out := runShell(t, "bst", "2\n3\n4\n")
	expectContains(t, out, "No students in index.")

	input := "1\n10\nA\nB\nC\n0\n2\n2\n11\n2\n4\n"
	_, out = runShell(t, "bst", input)
	expectContains(t, out, "ID 11 not found.", "Steps taken: 1")
}

func TestEOFEndsSession(t *testing.T) {
	_, out := runShell(t, "linear", "1\n42\nHalf")
	if strings.Contains(out, "Goodbye!") {
		t.Fatalf("EOF should end the session without the exit message")
	}
}
