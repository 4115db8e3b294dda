package main

import (
	"fmt"
	"log"

	"studentdb/pkg/common"
	"studentdb/pkg/core"
)

type demoStudent struct {
	id   common.StudentID
	name string
	mark float64
}

// Inserted in a jumbled order so the tree ends up balanced.
var roster = []demoStudent{
	{100, "Alice", 85.5},
	{50, "Bob", 92.0},
	{150, "Charlie", 78.0},
	{25, "David", 66.5},
	{75, "Eve", 95.0},
	{125, "Frank", 81.0},
	{175, "Grace", 88.0},
}

func main() {
	const target = common.StudentID(175)
	fmt.Println("===== Student ID Search Simulation =====")

	for _, name := range core.Strategies {
		idx, err := core.New(name)
		if err != nil {
			log.Fatalf("Failed to build %s index: %v", name, err)
		}
		for _, d := range roster {
			s := common.NewStudent(d.id, d.name, "General", "Overall")
			s.Subjects[0].Mark, s.Subjects[0].HasMark = d.mark, true
			if err := idx.Insert(s); err != nil {
				log.Fatalf("Insert %d into %s failed: %v", d.id, name, err)
			}
		}

		fmt.Printf("\n--- %s index ---\n", idx.Type())
		fmt.Printf("Searching for ID: %d\n", target)
		rec, err := idx.Find(target)
		if err != nil {
			fmt.Printf("  %v\n", err)
		} else {
			fmt.Printf("  ID:    %d\n  Name:  %s\n  Marks: %v\n", rec.ID, rec.Name, rec.Subjects[0].Mark)
		}
		fmt.Printf("  Comparisons made: %d\n", idx.LastSteps())
	}

	fmt.Println("\n===== Simulation Complete =====")
}
