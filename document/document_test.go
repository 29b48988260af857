package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentAddFieldPreservesOrder(t *testing.T) {
	doc := NewDocument("doc-1").
		AddField(NewField("title", "Hello", TEXT)).
		AddField(NewField("tag", "greeting", KEYWORD)).
		AddField(NewField("path", "/a/b.txt", STORED))

	assert.Equal(t, "doc-1", doc.ID)
	assert.Len(t, doc.Fields, 3)
	assert.Equal(t, "title", doc.Fields[0].Name)
	assert.Equal(t, "tag", doc.Fields[1].Name)
	assert.Equal(t, "path", doc.Fields[2].Name)
}

func TestDocumentGetFieldReturnsFirstMatch(t *testing.T) {
	doc := NewDocument("doc-1").
		AddField(NewField("name", "first", TEXT)).
		AddField(NewField("name", "second", TEXT))

	f, ok := doc.GetField("name")
	assert.True(t, ok)
	assert.Equal(t, "first", f.Value)

	_, ok = doc.GetField("missing")
	assert.False(t, ok)
}

func TestFieldTypeString(t *testing.T) {
	assert.Equal(t, "TEXT", TEXT.String())
	assert.Equal(t, "KEYWORD", KEYWORD.String())
	assert.Equal(t, "STORED", STORED.String())
}
