package query

import (
	"errors"
	"testing"
)

// packColumn builds a flat NUL-padded buffer for a column of values.
func packColumn(values []string) ColumnBuf {
	stride := 1
	for _, v := range values {
		if len(v)+1 > stride {
			stride = len(v) + 1
		}
	}
	buf := make([]byte, stride*len(values))
	for i, v := range values {
		copy(buf[i*stride:], v)
	}
	return ColumnBuf{Stride: stride, Buf: buf}
}

// packChunk builds a chunk from column-major values.
func packChunk(rows int, columns ...[]string) *Chunk {
	chunk := &Chunk{Rows: rows}
	for _, col := range columns {
		chunk.Cols = append(chunk.Cols, packColumn(col))
	}
	return chunk
}

func TestDecodeChunk_LabelsRowsInColumnOrder(t *testing.T) {
	chunk := packChunk(2,
		[]string{"species", "sex"},
		[]string{"human", "female"},
		[]string{"", ""},
	)

	fragment, err := DecodeChunk(chunk, []string{"attribute", "value", "units"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(fragment) != 2 {
		t.Fatalf("expected 2 records, got %d", len(fragment))
	}

	first := fragment[0].Fields()
	want := []Field{
		{Label: "attribute", Value: "species"},
		{Label: "value", Value: "human"},
		{Label: "units", Value: ""},
	}
	if len(first) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(first))
	}
	for i, f := range first {
		if f != want[i] {
			t.Errorf("field %d: expected %+v, got %+v", i, want[i], f)
		}
	}

	if v, _ := fragment[1].Get("attribute"); v != "sex" {
		t.Errorf("expected second row attribute 'sex', got %q", v)
	}
}

func TestDecodeChunk_TrimsAtPadding(t *testing.T) {
	// Values shorter than the stride are NUL-padded; decoding must stop
	// at the first NUL.
	chunk := packChunk(2, []string{"a", "longer-value"})

	fragment, err := DecodeChunk(chunk, []string{"value"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v, _ := fragment[0].Get("value"); v != "a" {
		t.Errorf("expected padded value trimmed to 'a', got %q", v)
	}
	if v, _ := fragment[1].Get("value"); v != "longer-value" {
		t.Errorf("expected 'longer-value', got %q", v)
	}
}

func TestDecodeChunk_EmptyChunk(t *testing.T) {
	fragment, err := DecodeChunk(&Chunk{Rows: 0}, []string{"value"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(fragment) != 0 {
		t.Errorf("expected empty fragment, got %d records", len(fragment))
	}
}

func TestDecodeChunk_ShortBuffer(t *testing.T) {
	chunk := &Chunk{
		Rows: 3,
		Cols: []ColumnBuf{{Stride: 8, Buf: make([]byte, 16)}}, // room for 2 rows only
	}

	_, err := DecodeChunk(chunk, []string{"value"})
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Row != 2 {
		t.Errorf("expected failure at row 2, got row %d", decodeErr.Row)
	}
}

func TestDecodeChunk_BadStride(t *testing.T) {
	chunk := &Chunk{
		Rows: 1,
		Cols: []ColumnBuf{{Stride: 0, Buf: nil}},
	}

	var decodeErr *DecodeError
	if _, err := DecodeChunk(chunk, []string{"value"}); !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError for non-positive stride, got %v", err)
	}
}
