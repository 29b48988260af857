// Package document defines the data model shared by the writer, reader,
// and searcher: fields, their indexing behavior, and the documents they
// compose.
package document

import "fmt"

// FieldType is a closed enumeration of how a Field's value is treated
// at index time.
type FieldType int

const (
	// TEXT fields are analyzed (tokenized, lowercased, stop-filtered)
	// and posted with positions.
	TEXT FieldType = iota
	// KEYWORD fields are lowercased as a single token and posted at
	// position 0.
	KEYWORD
	// STORED fields are kept in the document store only; never indexed.
	STORED
)

// String returns the canonical name of the field type.
func (t FieldType) String() string {
	switch t {
	case TEXT:
		return "TEXT"
	case KEYWORD:
		return "KEYWORD"
	case STORED:
		return "STORED"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// Field is a single named, typed value on a Document. Numeric values
// are the caller's responsibility to stringify before constructing a
// Field; the engine only ever handles strings.
type Field struct {
	Name  string
	Value string
	Type  FieldType
}

// NewField constructs a Field.
func NewField(name, value string, fieldType FieldType) Field {
	return Field{Name: name, Value: value, Type: fieldType}
}

// Document is an identifier plus an ordered sequence of fields. The
// identifier is opaque to the core; callers typically use a filesystem
// path or a synthetic key.
type Document struct {
	ID     string
	Fields []Field
}

// NewDocument constructs an empty Document with the given id.
func NewDocument(id string) *Document {
	return &Document{ID: id}
}

// AddField appends a field to the document. Field order is preserved
// in the stored form but carries no indexing meaning beyond per-field
// position density (see the analysis and index packages).
func (d *Document) AddField(f Field) *Document {
	d.Fields = append(d.Fields, f)
	return d
}

// GetField returns the first field with the given name, if any.
func (d *Document) GetField(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
