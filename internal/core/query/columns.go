// Package query contains the pure query-construction and execution logic
// for the catalog: building conditional inputs, driving chunked retrieval
// to completion, and decoding positional result buffers into records.
// This is part of the Functional Core - the only I/O happens behind the
// Querier interface.
package query

// Column identifies a catalog column. The values belong to the catalog's
// own column enumeration and are opaque to this package; they are passed
// through to the backend unchanged.
type Column int

// Catalog column identifiers used by metadata queries.
const (
	// ColCollName is the collection (container) path column.
	ColCollName Column = 501
	// ColDataName is the data object (leaf) name column.
	ColDataName Column = 401

	// Attribute/value/units columns for data object metadata.
	ColMetaDataAttrName  Column = 600
	ColMetaDataAttrValue Column = 601
	ColMetaDataAttrUnits Column = 602

	// Attribute/value/units columns for collection metadata.
	ColMetaCollAttrName  Column = 610
	ColMetaCollAttrValue Column = 611
	ColMetaCollAttrUnits Column = 612
)
