package metadata

import (
	"fmt"

	"github.com/example/catq/internal/core/query"
)

// Labels for structured output. The listing labels pair with the
// attribute/value/units columns; the search labels pair with the
// collection and data object name columns.
var (
	ListLabels   = []string{"attribute", "value", "units"}
	SearchLabels = []string{"collection", "data_object"}
)

// Selector builds query inputs for classified targets. It owns the page
// size and maximum conditional count shared with the catalog protocol.
type Selector struct {
	pageSize int
	maxConds int
	sink     query.Sink
}

// NewSelector creates a selector with the given paging configuration.
func NewSelector(pageSize, maxConds int, sink query.Sink) *Selector {
	if sink == nil {
		sink = query.NopSink{}
	}
	return &Selector{pageSize: pageSize, maxConds: maxConds, sink: sink}
}

// listSpec is one case of the target-kind dispatch: the column set for
// the kind's attribute space and the predicate builder for a listing.
type listSpec struct {
	columns  []query.Column
	attrCol  query.Column
	baseSpec func(target string) ([]query.Cond, error)
}

func leafListSpec() listSpec {
	return listSpec{
		columns: []query.Column{
			query.ColMetaDataAttrName,
			query.ColMetaDataAttrValue,
			query.ColMetaDataAttrUnits,
		},
		attrCol: query.ColMetaDataAttrName,
		baseSpec: func(target string) ([]query.Cond, error) {
			parent, leaf := SplitPath(target)
			cn, err := query.NewCond(query.ColCollName, "=", parent)
			if err != nil {
				return nil, err
			}
			dn, err := query.NewCond(query.ColDataName, "=", leaf)
			if err != nil {
				return nil, err
			}
			return []query.Cond{cn, dn}, nil
		},
	}
}

func containerListSpec() listSpec {
	return listSpec{
		columns: []query.Column{
			query.ColMetaCollAttrName,
			query.ColMetaCollAttrValue,
			query.ColMetaCollAttrUnits,
		},
		attrCol: query.ColMetaCollAttrName,
		baseSpec: func(target string) ([]query.Cond, error) {
			cn, err := query.NewCond(query.ColCollName, "=", target)
			if err != nil {
				return nil, err
			}
			return []query.Cond{cn}, nil
		},
	}
}

// List builds the metadata listing input for a classified target. An
// empty attrFilter adds no clause at all; a non-empty filter adds exactly
// one `attribute = filter` clause on top of the base predicate.
func (s *Selector) List(t Target, attrFilter string) (*query.Input, error) {
	var spec listSpec
	switch t.Kind {
	case KindLeaf:
		s.sink.Debugf("identified '%s' as a data object", t.Path)
		spec = leafListSpec()
	case KindContainer:
		s.sink.Debugf("identified '%s' as a collection", t.Path)
		spec = containerListSpec()
	default:
		return nil, fmt.Errorf("failed to list metadata on '%s': %w", t.Path, ErrUnclassifiedTarget)
	}

	conds, err := spec.baseSpec(t.Path)
	if err != nil {
		return nil, err
	}
	if attrFilter != "" {
		an, err := query.NewCond(spec.attrCol, "=", attrFilter)
		if err != nil {
			return nil, err
		}
		conds = append(conds, an)
	}

	in := query.NewInput(s.pageSize, spec.columns, s.maxConds)
	if err := in.AddConds(conds...); err != nil {
		return nil, err
	}
	for _, c := range conds {
		s.sink.Debugf("added condition on column %d: %s", c.Column, c.Expr)
	}
	return in, nil
}

// LeafSearch builds the data object attribute search: exactly two clauses,
// `attribute = name` and `value = value`, selecting the collection and
// data object name columns.
func (s *Selector) LeafSearch(attrName, attrValue string) (*query.Input, error) {
	return s.search(
		[]query.Column{query.ColCollName, query.ColDataName},
		query.ColMetaDataAttrName, query.ColMetaDataAttrValue,
		attrName, attrValue,
	)
}

// ContainerSearch builds the collection attribute search: exactly two
// clauses, selecting the collection name column only.
func (s *Selector) ContainerSearch(attrName, attrValue string) (*query.Input, error) {
	return s.search(
		[]query.Column{query.ColCollName},
		query.ColMetaCollAttrName, query.ColMetaCollAttrValue,
		attrName, attrValue,
	)
}

func (s *Selector) search(columns []query.Column, nameCol, valueCol query.Column, attrName, attrValue string) (*query.Input, error) {
	an, err := query.NewCond(nameCol, "=", attrName)
	if err != nil {
		return nil, err
	}
	av, err := query.NewCond(valueCol, "=", attrValue)
	if err != nil {
		return nil, err
	}

	in := query.NewInput(s.pageSize, columns, s.maxConds)
	if err := in.AddConds(an, av); err != nil {
		return nil, err
	}
	s.sink.Debugf("added condition on column %d: %s", nameCol, an.Expr)
	s.sink.Debugf("added condition on column %d: %s", valueCol, av.Expr)
	return in, nil
}
