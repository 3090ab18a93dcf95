package classification

import (
	"errors"
	"fmt"
	"sort"
)

// Nesting validation errors
var (
	// ErrDuplicateParentCode is returned when a parent code is listed more
	// than once in a nesting map.
	ErrDuplicateParentCode = errors.New("parent code listed more than once in nesting")

	// ErrDuplicateChildCode is returned when a child code is nested under
	// more than one parent.
	ErrDuplicateChildCode = errors.New("child code listed more than once in nesting")

	// ErrNestingParentMismatch is returned when the nesting map keys do not
	// exactly cover the parent legend codes.
	ErrNestingParentMismatch = errors.New("nesting parent codes do not match parent legend")

	// ErrNestingChildMismatch is returned when the nested child codes do not
	// exactly cover the child legend codes.
	ErrNestingChildMismatch = errors.New("nesting child codes do not match child legend")
)

// Nesting defines how a detailed child legend aggregates into a coarser
// parent legend: each parent code maps to the child codes it absorbs.
//
// A Nesting is immutable after NewNesting returns.
type Nesting struct {
	Parent Legend        `json:"parent"  yaml:"parent"`
	Child  Legend        `json:"child"   yaml:"child"`
	Map    map[int][]int `json:"nesting" yaml:"nesting"`
}

// NewNesting validates that the nesting map covers both legends exactly: each
// parent code appears once as a key, each child code appears once across all
// values, and no codes outside the legends are referenced.
func NewNesting(parent, child Legend, nesting map[int][]int) (Nesting, error) {
	parentCodes := make([]int, 0, len(nesting))
	childCodes := make([]int, 0, len(child.Key)+1)
	for p, children := range nesting {
		parentCodes = append(parentCodes, p)
		childCodes = append(childCodes, children...)
	}
	sort.Ints(parentCodes)
	sort.Ints(childCodes)

	for i := 1; i < len(parentCodes); i++ {
		if parentCodes[i] == parentCodes[i-1] {
			return Nesting{}, fmt.Errorf("code %d: %w", parentCodes[i], ErrDuplicateParentCode)
		}
	}
	for i := 1; i < len(childCodes); i++ {
		if childCodes[i] == childCodes[i-1] {
			return Nesting{}, fmt.Errorf("code %d: %w", childCodes[i], ErrDuplicateChildCode)
		}
	}

	if !equalInts(parentCodes, sortedCodes(parent)) {
		return Nesting{}, fmt.Errorf("nesting %v vs parent %v: %w",
			parentCodes, sortedCodes(parent), ErrNestingParentMismatch)
	}
	if !equalInts(childCodes, sortedCodes(child)) {
		return Nesting{}, fmt.Errorf("nesting %v vs child %v: %w",
			childCodes, sortedCodes(child), ErrNestingChildMismatch)
	}

	m := make(map[int][]int, len(nesting))
	for p, children := range nesting {
		m[p] = append([]int(nil), children...)
	}
	return Nesting{Parent: parent, Child: child, Map: m}, nil
}

// ParentForChild returns the parent class that the given child code nests
// under. Fails with ErrClassNotFound if the child code is not nested.
func (n Nesting) ParentForChild(childCode int) (Class, error) {
	for p, children := range n.Map {
		for _, c := range children {
			if c == childCode {
				return n.Parent.ClassByCode(p)
			}
		}
	}
	return Class{}, fmt.Errorf("nesting: child code %d: %w", childCode, ErrClassNotFound)
}

// ChildrenForParent returns the child classes nested under the given parent
// code, in child code order. Returns an empty slice for unknown parents.
func (n Nesting) ChildrenForParent(parentCode int) []Class {
	codes := append([]int(nil), n.Map[parentCode]...)
	sort.Ints(codes)
	out := make([]Class, 0, len(codes))
	for _, code := range codes {
		if c, err := n.Child.ClassByCode(code); err == nil {
			out = append(out, c)
		}
	}
	return out
}

// Pairs returns the nesting as two parallel slices of child codes and the
// parent codes they remap to, the form consumed by raster remapping tools.
func (n Nesting) Pairs() (children, parents []int) {
	parentCodes := make([]int, 0, len(n.Map))
	for p := range n.Map {
		parentCodes = append(parentCodes, p)
	}
	sort.Ints(parentCodes)
	for _, p := range parentCodes {
		for _, c := range n.Map[p] {
			children = append(children, c)
			parents = append(parents, p)
		}
	}
	return children, parents
}

// OrphanChildren reports the child legend classes that a proposed nesting
// map leaves unassigned to any parent, in code order. NewNesting rejects
// such maps with ErrNestingChildMismatch; this names the missing codes so
// callers can report them before attempting construction.
func OrphanChildren(child Legend, nesting map[int][]int) []Class {
	covered := make(map[int]bool)
	for _, children := range nesting {
		for _, c := range children {
			covered[c] = true
		}
	}
	var orphans []Class
	for _, code := range sortedCodes(child) {
		if covered[code] {
			continue
		}
		if c, err := child.ClassByCode(code); err == nil {
			orphans = append(orphans, c)
		}
	}
	return orphans
}

func sortedCodes(l Legend) []int {
	codes := l.Codes()
	sort.Ints(codes)
	return codes
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
