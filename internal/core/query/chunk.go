package query

import "bytes"

// ColumnBuf is the flat positional value buffer for one selected column in
// a result chunk. The value of row r occupies Buf[r*Stride:(r+1)*Stride],
// NUL-padded to the stride.
type ColumnBuf struct {
	Stride int
	Buf    []byte
}

// Chunk is one page of rows returned by a single catalog round trip. It is
// transient: the decoder consumes it and nothing retains it afterward.
type Chunk struct {
	Rows int
	Cols []ColumnBuf
}

// DecodeChunk converts a chunk's positional buffers into a record set
// fragment, assigning the value of column i to labels[i] in each record.
//
// The labels must be the same length and order as the columns selected in
// the originating Input; that pairing is the caller's responsibility and
// is not validated here. A buffer too short for the declared row count
// yields a DecodeError and no partial fragment.
func DecodeChunk(chunk *Chunk, labels []string) (RecordSet, error) {
	fragment := make(RecordSet, 0, chunk.Rows)

	for row := 0; row < chunk.Rows; row++ {
		var rec Record
		for i, col := range chunk.Cols {
			if col.Stride <= 0 {
				return nil, &DecodeError{Row: row, Col: i, Reason: "non-positive column stride"}
			}

			start := row * col.Stride
			end := start + col.Stride
			if end > len(col.Buf) {
				return nil, &DecodeError{Row: row, Col: i, Reason: "value buffer shorter than row count requires"}
			}

			value := col.Buf[start:end]
			if j := bytes.IndexByte(value, 0); j >= 0 {
				value = value[:j]
			}
			rec.Set(labels[i], string(value))
		}
		fragment = append(fragment, rec)
	}

	return fragment, nil
}
