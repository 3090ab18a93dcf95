package classification

import (
	"errors"
	"testing"
)

func nestingLegends(t *testing.T) (Legend, Legend) {
	t.Helper()
	nodata := &Class{Code: -32768}
	parent, err := NewLegend("parent", []Class{
		{Code: 1, NameShort: "Vegetated"},
		{Code: 2, NameShort: "Other"},
	}, nodata)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	child, err := NewLegend("child", []Class{
		{Code: 10, NameShort: "Forest"},
		{Code: 11, NameShort: "Grassland"},
		{Code: 20, NameShort: "Bare"},
	}, nodata)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return parent, child
}

func TestNewNesting(t *testing.T) {
	parent, child := nestingLegends(t)

	nesting, err := NewNesting(parent, child, map[int][]int{
		1:      {10, 11},
		2:      {20},
		-32768: {-32768},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	p, err := nesting.ParentForChild(11)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Code != 1 {
		t.Errorf("Expected parent 1, got %d", p.Code)
	}

	children := nesting.ChildrenForParent(1)
	if len(children) != 2 || children[0].Code != 10 || children[1].Code != 11 {
		t.Errorf("Expected children [10 11], got %v", children)
	}

	if _, err := nesting.ParentForChild(99); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("Expected ErrClassNotFound, got %v", err)
	}
}

func TestNewNestingRejectsBadMaps(t *testing.T) {
	parent, child := nestingLegends(t)

	// Child nested twice
	_, err := NewNesting(parent, child, map[int][]int{
		1:      {10, 11, 20},
		2:      {20},
		-32768: {-32768},
	})
	if !errors.Is(err, ErrDuplicateChildCode) {
		t.Errorf("Expected ErrDuplicateChildCode, got %v", err)
	}

	// Missing parent coverage
	_, err = NewNesting(parent, child, map[int][]int{
		1: {10, 11, 20, -32768},
	})
	if !errors.Is(err, ErrNestingParentMismatch) {
		t.Errorf("Expected ErrNestingParentMismatch, got %v", err)
	}

	// Missing child coverage
	_, err = NewNesting(parent, child, map[int][]int{
		1:      {10, 11},
		2:      {},
		-32768: {-32768},
	})
	if !errors.Is(err, ErrNestingChildMismatch) {
		t.Errorf("Expected ErrNestingChildMismatch, got %v", err)
	}
}

func TestNestingPairs(t *testing.T) {
	parent, child := nestingLegends(t)
	nesting, err := NewNesting(parent, child, map[int][]int{
		1:      {10, 11},
		2:      {20},
		-32768: {-32768},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	children, parents := nesting.Pairs()
	if len(children) != len(parents) {
		t.Fatalf("Expected parallel slices, got %d vs %d", len(children), len(parents))
	}
	// Parents come out in code order: -32768, 1, 2
	wantChildren := []int{-32768, 10, 11, 20}
	wantParents := []int{-32768, 1, 1, 2}
	for i := range wantChildren {
		if children[i] != wantChildren[i] || parents[i] != wantParents[i] {
			t.Errorf("Pair %d: expected (%d → %d), got (%d → %d)",
				i, wantChildren[i], wantParents[i], children[i], parents[i])
		}
	}
}

func TestOrphanChildren(t *testing.T) {
	_, child := nestingLegends(t)

	orphans := OrphanChildren(child, map[int][]int{
		1: {10},
		2: {20},
	})
	if len(orphans) != 2 {
		t.Fatalf("Expected 2 orphans, got %v", orphans)
	}
	if orphans[0].Code != -32768 || orphans[1].Code != 11 {
		t.Errorf("Expected orphan codes [-32768 11], got [%d %d]", orphans[0].Code, orphans[1].Code)
	}

	// A map covering every child code has no orphans.
	orphans = OrphanChildren(child, map[int][]int{
		1:      {10, 11},
		2:      {20},
		-32768: {-32768},
	})
	if len(orphans) != 0 {
		t.Errorf("Expected no orphans, got %v", orphans)
	}
}
