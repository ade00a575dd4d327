package metadata

import (
	"errors"
	"testing"

	"github.com/example/catq/internal/core/query"
)

func newTestSelector() *Selector {
	return NewSelector(10, 20, nil)
}

func TestList_LeafWithoutFilter(t *testing.T) {
	in, err := newTestSelector().List(Target{Kind: KindLeaf, Path: "/archive/run1/sample.bam"}, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer in.Close()

	wantCols := []query.Column{
		query.ColMetaDataAttrName,
		query.ColMetaDataAttrValue,
		query.ColMetaDataAttrUnits,
	}
	if len(in.Columns) != len(wantCols) {
		t.Fatalf("expected %d columns, got %d", len(wantCols), len(in.Columns))
	}
	for i, col := range wantCols {
		if in.Columns[i] != col {
			t.Errorf("column %d: expected %d, got %d", i, col, in.Columns[i])
		}
	}

	// Base count for a leaf: collection + data name, no filter clause.
	if len(in.Conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(in.Conds))
	}
	if in.Conds[0].Column != query.ColCollName || in.Conds[0].Value != "/archive/run1" {
		t.Errorf("expected collection clause on parent, got %+v", in.Conds[0])
	}
	if in.Conds[1].Column != query.ColDataName || in.Conds[1].Value != "sample.bam" {
		t.Errorf("expected data name clause on leaf, got %+v", in.Conds[1])
	}
}

func TestList_LeafWithFilter(t *testing.T) {
	in, err := newTestSelector().List(Target{Kind: KindLeaf, Path: "/archive/run1/sample.bam"}, "species")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer in.Close()

	if len(in.Conds) != 3 {
		t.Fatalf("expected base+1 conditions with a filter, got %d", len(in.Conds))
	}
	last := in.Conds[2]
	if last.Column != query.ColMetaDataAttrName || last.Value != "species" {
		t.Errorf("expected attribute filter clause, got %+v", last)
	}
}

func TestList_ContainerWithoutFilter(t *testing.T) {
	in, err := newTestSelector().List(Target{Kind: KindContainer, Path: "/archive/run1"}, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer in.Close()

	if in.Columns[0] != query.ColMetaCollAttrName {
		t.Errorf("expected collection attribute columns, got %d", in.Columns[0])
	}
	if len(in.Conds) != 1 {
		t.Fatalf("expected 1 condition, got %d", len(in.Conds))
	}
	if in.Conds[0].Column != query.ColCollName || in.Conds[0].Value != "/archive/run1" {
		t.Errorf("expected collection clause on the target itself, got %+v", in.Conds[0])
	}
}

func TestList_ContainerWithFilter(t *testing.T) {
	in, err := newTestSelector().List(Target{Kind: KindContainer, Path: "/archive/run1"}, "species")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer in.Close()

	if len(in.Conds) != 2 {
		t.Fatalf("expected base+1 conditions with a filter, got %d", len(in.Conds))
	}
	if in.Conds[1].Column != query.ColMetaCollAttrName || in.Conds[1].Value != "species" {
		t.Errorf("expected attribute filter clause, got %+v", in.Conds[1])
	}
}

func TestList_UnclassifiedTargetRefused(t *testing.T) {
	for _, kind := range []Kind{KindNotFound, KindOther} {
		_, err := newTestSelector().List(Target{Kind: kind, Path: "/x"}, "")
		if !errors.Is(err, ErrUnclassifiedTarget) {
			t.Errorf("kind %v: expected ErrUnclassifiedTarget, got %v", kind, err)
		}
	}
}

func TestSearch_ClauseShape(t *testing.T) {
	s := newTestSelector()

	leaf, err := s.LeafSearch("species", "human")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer leaf.Close()

	if len(leaf.Conds) != 2 {
		t.Fatalf("expected exactly 2 clauses for leaf search, got %d", len(leaf.Conds))
	}
	if leaf.Conds[0].Column != query.ColMetaDataAttrName || leaf.Conds[0].Value != "species" {
		t.Errorf("expected attribute name clause, got %+v", leaf.Conds[0])
	}
	if leaf.Conds[1].Column != query.ColMetaDataAttrValue || leaf.Conds[1].Value != "human" {
		t.Errorf("expected attribute value clause, got %+v", leaf.Conds[1])
	}
	if len(leaf.Columns) != 2 || leaf.Columns[0] != query.ColCollName || leaf.Columns[1] != query.ColDataName {
		t.Errorf("expected collection and data name columns, got %v", leaf.Columns)
	}

	coll, err := s.ContainerSearch("species", "human")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer coll.Close()

	if len(coll.Conds) != 2 {
		t.Fatalf("expected exactly 2 clauses for container search, got %d", len(coll.Conds))
	}
	if len(coll.Columns) != 1 || coll.Columns[0] != query.ColCollName {
		t.Errorf("expected the collection name column only, got %v", coll.Columns)
	}
}

func TestSelector_UsesConfiguredPaging(t *testing.T) {
	s := NewSelector(25, 4, nil)
	in, err := s.List(Target{Kind: KindContainer, Path: "/archive"}, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer in.Close()

	if in.MaxRows != 25 {
		t.Errorf("expected page size 25, got %d", in.MaxRows)
	}
}
