package query

import (
	"errors"
	"fmt"
	"testing"
)

func mustCond(t *testing.T, column Column, op, value string) Cond {
	t.Helper()
	cond, err := NewCond(column, op, value)
	if err != nil {
		t.Fatalf("failed to build condition: %v", err)
	}
	return cond
}

func TestNewInput_CopiesColumns(t *testing.T) {
	columns := []Column{ColMetaDataAttrName, ColMetaDataAttrValue}
	in := NewInput(10, columns, 5)
	defer in.Close()

	columns[0] = ColCollName
	if in.Columns[0] != ColMetaDataAttrName {
		t.Error("expected input to own a copy of the column slice")
	}
	if in.MaxRows != 10 {
		t.Errorf("expected max rows 10, got %d", in.MaxRows)
	}
	if in.ContinueIndex != 0 {
		t.Errorf("expected continuation token to start at zero, got %d", in.ContinueIndex)
	}
}

func TestAddConds_AppendsInOrder(t *testing.T) {
	in := NewInput(10, []Column{ColMetaDataAttrName}, 5)
	defer in.Close()

	a := mustCond(t, ColCollName, "=", "/archive")
	b := mustCond(t, ColDataName, "=", "sample.bam")
	if err := in.AddConds(a, b); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(in.Conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(in.Conds))
	}
	if in.Conds[0].Column != ColCollName || in.Conds[1].Column != ColDataName {
		t.Error("expected conditions appended in the given order")
	}
}

func TestAddConds_CapacityExceeded(t *testing.T) {
	in := NewInput(10, []Column{ColMetaDataAttrName}, 2)
	defer in.Close()

	a := mustCond(t, ColCollName, "=", "/archive")
	b := mustCond(t, ColDataName, "=", "x")
	c := mustCond(t, ColMetaDataAttrName, "=", "y")

	if err := in.AddConds(a, b); err != nil {
		t.Fatalf("expected appends within capacity to succeed, got %v", err)
	}
	err := in.AddConds(c)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
	if len(in.Conds) != 2 {
		t.Errorf("expected condition count unchanged after refused append, got %d", len(in.Conds))
	}
}

func TestAddConds_AfterSealRefused(t *testing.T) {
	in := NewInput(10, []Column{ColMetaDataAttrName}, 5)
	defer in.Close()

	in.seal()
	err := in.AddConds(mustCond(t, ColCollName, "=", "/archive"))
	if !errors.Is(err, ErrSealed) {
		t.Errorf("expected ErrSealed, got %v", err)
	}
}

func TestClose_ExactlyOnce(t *testing.T) {
	// Release must succeed exactly once across builder/release cycles for
	// 0, 1, and max-capacity condition counts.
	const maxConds = 5

	for _, numConds := range []int{0, 1, maxConds} {
		t.Run(fmt.Sprintf("%d_conds", numConds), func(t *testing.T) {
			in := NewInput(10, []Column{ColMetaDataAttrName}, maxConds)

			for i := 0; i < numConds; i++ {
				cond := mustCond(t, ColMetaDataAttrName, "=", fmt.Sprintf("attr%d", i))
				if err := in.AddConds(cond); err != nil {
					t.Fatalf("append %d failed: %v", i, err)
				}
			}

			if err := in.Close(); err != nil {
				t.Fatalf("first close failed: %v", err)
			}
			if err := in.Close(); !errors.Is(err, ErrClosed) {
				t.Errorf("expected ErrClosed on second close, got %v", err)
			}
			if err := in.AddConds(mustCond(t, ColCollName, "=", "x")); !errors.Is(err, ErrClosed) {
				t.Errorf("expected ErrClosed on append after close, got %v", err)
			}
		})
	}
}
