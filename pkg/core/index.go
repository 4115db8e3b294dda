package core

import (
	"fmt"
	"strings"

	"studentdb/pkg/common"
	"studentdb/pkg/core/bst"
	"studentdb/pkg/core/linear"
	"studentdb/pkg/core/sorted"
)

const (
	StrategyLinear = "linear"
	StrategySorted = "sorted"
	StrategyBST    = "bst"
)

// Strategies lists every index strategy in comparison order.
var Strategies = []string{StrategyLinear, StrategySorted, StrategyBST}

// Index 抽象接口，屏蔽线性表、有序表与二叉搜索树的差异
type Index interface {
	// Insert stores a copy of s. Returns common.ErrDuplicateID if s.ID is
	// already present and common.ErrInvalidStudent if s fails validation.
	Insert(s common.Student) error
	// Find returns a handle to the owned record; mutations through it are
	// visible to later lookups.
	Find(id common.StudentID) (*common.Student, error)
	// UpdateMarks sets one mark per subject, in subject order.
	UpdateMarks(id common.StudentID, marks []float64) error
	// LastSteps is the step count of the most recent Find or UpdateMarks.
	LastSteps() int
	Size() int
	Students() []*common.Student
	Stats() map[string]interface{}
	Type() string // "linear", "sorted", "bst"
}

var (
	_ Index = (*linear.Index)(nil)
	_ Index = (*sorted.Index)(nil)
	_ Index = (*bst.Index)(nil)
)

// New builds an empty index for the named strategy.
func New(strategy string) (Index, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategyLinear:
		return linear.New(), nil
	case StrategySorted:
		return sorted.New(), nil
	case StrategyBST, "tree":
		return bst.New(), nil
	default:
		return nil, fmt.Errorf("unknown index strategy %q (want one of %s)", strategy, strings.Join(Strategies, ", "))
	}
}

// ValidStrategy reports whether New accepts name.
func ValidStrategy(name string) bool {
	_, err := New(name)
	return err == nil
}
