package query

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one labeled value within a Record.
type Field struct {
	Label string
	Value string
}

// Record is an ordered mapping from label to value: one record per catalog
// row, with insertion order equal to the column order of the originating
// query. A plain Go map would lose that order, so Record keeps an ordered
// field list and marshals to a JSON object with fields in column order.
type Record struct {
	fields []Field
}

// Set appends a field, or overwrites the value of an existing label in
// place without changing its position.
func (r *Record) Set(label, value string) {
	for i := range r.fields {
		if r.fields[i].Label == label {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Label: label, Value: value})
}

// Get returns the value for a label and whether it is present.
func (r *Record) Get(label string) (string, bool) {
	for _, f := range r.fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns the fields in insertion order.
func (r *Record) Fields() []Field {
	return r.fields
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// MarshalJSON renders the record as a JSON object with fields in insertion
// order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(f.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object, preserving the order in which its
// keys appear.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	r.fields = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record key must be a string, got %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("record value for %q must be a string: %w", key, err)
		}
		r.fields = append(r.fields, Field{Label: key, Value: value})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// RecordSet is an ordered sequence of records, concatenation-ordered
// across chunks.
type RecordSet []Record
