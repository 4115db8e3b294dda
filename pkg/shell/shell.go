// Package shell is the interactive menu driving any core.Index. It owns all
// prompting, input validation and rendering; the index never touches the
// console.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"studentdb/pkg/common"
	"studentdb/pkg/core"
)

type Options struct {
	Color bool
}

type Shell struct {
	idx     core.Index
	scanner *bufio.Scanner
	out     io.Writer

	title *color.Color
	head  *color.Color
	ok    *color.Color
	fail  *color.Color
}

func New(idx core.Index, in io.Reader, out io.Writer, opts Options) *Shell {
	s := &Shell{
		idx:     idx,
		scanner: bufio.NewScanner(in),
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		head:    color.New(color.FgYellow),
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
	}
	if !opts.Color {
		for _, c := range []*color.Color{s.title, s.head, s.ok, s.fail} {
			c.DisableColor()
		}
	}
	return s
}

// Run drives the main menu until the user exits or input ends.
func (s *Shell) Run() error {
	for {
		s.showMenu()
		line, err := s.readLine()
		if err != nil {
			return quitErr(err)
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			s.fail.Fprintln(s.out, "Wrong input.")
			continue
		}

		switch choice {
		case 1:
			err = s.enterStudent()
		case 2:
			err = s.searchStudent()
		case 3:
			err = s.insertMarks()
		case 4:
			s.ok.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			s.fail.Fprintln(s.out, "Wrong input.")
		}
		if err != nil {
			return quitErr(err)
		}
	}
}

// quitErr treats end of input as a normal exit.
func quitErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) showMenu() {
	s.title.Fprintln(s.out, "\n==============================")
	s.title.Fprintln(s.out, "  Student ID Search System")
	s.title.Fprintf(s.out, "  (Index: %s)\n", s.idx.Type())
	s.title.Fprintln(s.out, "==============================")
	fmt.Fprintln(s.out, "1. Enter new student")
	fmt.Fprintln(s.out, "2. Search student by ID")
	fmt.Fprintln(s.out, "3. Insert marks")
	fmt.Fprintln(s.out, "4. Exit")
	fmt.Fprint(s.out, "Enter your choice: ")
}

func (s *Shell) enterStudent() error {
	for {
		s.head.Fprintf(s.out, "\n--- Enter New Student (%s) ---\n", s.idx.Type())
		id, err := s.readInt("Enter student ID (integer): ")
		if err != nil {
			return err
		}
		if _, err := s.idx.Find(common.StudentID(id)); err == nil {
			s.fail.Fprintln(s.out, "ID already exists.")
			continue
		}

		st := common.Student{ID: common.StudentID(id)}
		if st.Name, err = s.prompt("Enter name   : "); err != nil {
			return err
		}
		if st.Course, err = s.prompt("Enter course : "); err != nil {
			return err
		}

		fmt.Fprintf(s.out, "\nEnter subjects (type %s to finish):\n", common.SubjectTerminator)
		for {
			name, err := s.prompt("Subject name: ")
			if err != nil {
				return err
			}
			if name == common.SubjectTerminator {
				if len(st.Subjects) == 0 {
					s.fail.Fprintln(s.out, "Must have at least one subject.")
					continue
				}
				break
			}
			if name == "" {
				continue
			}
			st.Subjects = append(st.Subjects, common.Subject{Name: name})
		}

		if err := s.idx.Insert(st); err != nil {
			s.fail.Fprintf(s.out, "Error: %v\n", err)
		} else {
			s.ok.Fprintf(s.out, "Student with ID %d added successfully.\n", st.ID)
		}

		again, err := s.readInt("\n1. Add another\n2. Return\nChoice: ")
		if err != nil || again == 2 {
			return err
		}
	}
}

func (s *Shell) searchStudent() error {
	if s.idx.Size() == 0 {
		s.fail.Fprintln(s.out, "\nNo students in index.")
		return nil
	}
	for {
		s.head.Fprintf(s.out, "\n--- Search Student (%s) ---\n", s.idx.Type())
		id, err := s.readInt("Enter ID to search: ")
		if err != nil {
			return err
		}

		rec, err := s.idx.Find(common.StudentID(id))
		if err != nil {
			s.fail.Fprintf(s.out, "ID %d not found.\n", id)
		} else {
			s.render(rec)
		}
		fmt.Fprintf(s.out, "Steps taken: %d\n", s.idx.LastSteps())

		again, err := s.readInt("\n1. Search again\n2. Return\nChoice: ")
		if err != nil || again == 2 {
			return err
		}
	}
}

func (s *Shell) insertMarks() error {
	if s.idx.Size() == 0 {
		s.fail.Fprintln(s.out, "\nNo students in index.")
		return nil
	}
	for {
		s.head.Fprintln(s.out, "\n--- Insert Marks ---")
		id, err := s.readInt("Enter ID: ")
		if err != nil {
			return err
		}

		rec, err := s.idx.Find(common.StudentID(id))
		if err != nil {
			s.fail.Fprintln(s.out, "ID not found.")
		} else {
			s.render(rec)
			fmt.Fprintln(s.out, "\nEnter marks:")
			marks := make([]float64, 0, len(rec.Subjects))
			for _, sub := range rec.Subjects {
				fmt.Fprintf(s.out, "Subject: %s\n", sub.Name)
				m, err := s.readFloat("Enter mark: ")
				if err != nil {
					return err
				}
				marks = append(marks, m)
			}
			if err := s.idx.UpdateMarks(rec.ID, marks); err != nil {
				s.fail.Fprintf(s.out, "Error: %v\n", err)
			} else {
				s.ok.Fprintln(s.out, "Marks updated.")
				s.render(rec)
			}
		}

		again, err := s.readInt("\n1. Another student\n2. Return\nChoice: ")
		if err != nil || again == 2 {
			return err
		}
	}
}

func (s *Shell) render(rec *common.Student) {
	s.head.Fprintln(s.out, "\n=== Student Information ===")
	fmt.Fprintf(s.out, "ID     : %d\n", rec.ID)
	fmt.Fprintf(s.out, "Name   : %s\n", rec.Name)
	fmt.Fprintf(s.out, "Course : %s\n", rec.Course)
	fmt.Fprintln(s.out, "Subjects and Marks:")

	if len(rec.Subjects) == 0 {
		fmt.Fprintln(s.out, "  (No subjects registered)")
		return
	}
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"#", "Subject", "Mark"})
	for i, sub := range rec.Subjects {
		mark := "(no mark yet)"
		if sub.HasMark {
			mark = strconv.FormatFloat(sub.Mark, 'f', -1, 64)
		}
		table.Append([]string{strconv.Itoa(i + 1), sub.Name, mark})
	}
	table.Render()
}

func (s *Shell) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

func (s *Shell) prompt(p string) (string, error) {
	fmt.Fprint(s.out, p)
	return s.readLine()
}

func (s *Shell) readInt(p string) (int64, error) {
	for {
		line, err := s.prompt(p)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err == nil {
			return v, nil
		}
		s.fail.Fprintln(s.out, "Wrong input, please enter an integer.")
	}
}

func (s *Shell) readFloat(p string) (float64, error) {
	for {
		line, err := s.prompt(p)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, nil
		}
		s.fail.Fprintln(s.out, "Wrong input, please enter a number.")
	}
}
