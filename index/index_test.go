package index

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forrestchang/puceny/analysis"
	"github.com/forrestchang/puceny/document"
)

func TestWriterOpenOnFreshDirectoryStartsEmpty(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(filepath.Join(dir, "idx"), analysis.New())
	require.NoError(t, err)
	assert.Equal(t, 0, w.segmentCounter)
}

func TestWriterCommitWithNoDocumentsWritesEmptySegment(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	r, err := OpenReader(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, r.TotalDocCount())
}

func TestWriterAndReaderRoundTripSingleSegment(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)

	doc := document.NewDocument("doc-1").
		AddField(document.NewField("content", "the quick brown fox", document.TEXT)).
		AddField(document.NewField("category", "Animals", document.KEYWORD)).
		AddField(document.NewField("path", "/a/b.txt", document.STORED))
	w.AddDocument(doc)
	require.NoError(t, w.Commit())

	r, err := OpenReader(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, r.TotalDocCount())
	assert.Equal(t, map[string][]int{"doc-1": {0}}, r.TermsDocs("quick"))
	assert.Equal(t, map[string][]int{"doc-1": {0}}, r.TermsDocs("animals"))
	assert.Equal(t, 1, r.DocFreq("fox"))
	assert.Equal(t, "/a/b.txt", r.GetDocument("doc-1")["path"])
	assert.Equal(t, "Animals", r.GetDocument("doc-1")["category"])
}

func TestWriterTextPositionsAreSequentialWithinAField(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)

	w.AddDocument(document.NewDocument("1").
		AddField(document.NewField("content", "fox jumps over the fox", document.TEXT)))
	require.NoError(t, w.Commit())

	r, err := OpenReader(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{"1": {0, 3}}, r.TermsDocs("fox"))
}

func TestWriterSecondCommitProducesSecondSegmentWithIncreasingIndex(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)

	w.AddDocument(document.NewDocument("1").AddField(document.NewField("content", "alpha", document.TEXT)))
	require.NoError(t, w.Commit())
	assert.Equal(t, 1, w.segmentCounter)

	w.AddDocument(document.NewDocument("2").AddField(document.NewField("content", "beta", document.TEXT)))
	require.NoError(t, w.Commit())
	assert.Equal(t, 2, w.segmentCounter)
}

func TestWriterReopenPicksUpSegmentCounter(t *testing.T) {
	dir := t.TempDir()

	w1, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)
	w1.AddDocument(document.NewDocument("1").AddField(document.NewField("content", "alpha", document.TEXT)))
	require.NoError(t, w1.Commit())

	w2, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)
	assert.Equal(t, 1, w2.segmentCounter)
}

func TestReaderUnionsAcrossMultipleSegmentsConcatenatingDuplicatePositions(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)
	w.AddDocument(document.NewDocument("1").AddField(document.NewField("content", "fox", document.TEXT)))
	require.NoError(t, w.Commit())

	w2, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)
	w2.AddDocument(document.NewDocument("1").AddField(document.NewField("content", "fox fox", document.TEXT)))
	require.NoError(t, w2.Commit())

	r, err := OpenReader(dir)
	require.NoError(t, err)

	// Cross-segment duplicate doc_id postings concatenate rather than
	// deduplicate or replace.
	assert.Equal(t, map[string][]int{"1": {0, 0, 1}}, r.TermsDocs("fox"))
	assert.Equal(t, 1, r.TotalDocCount())
}

func TestReaderDocumentStoreLaterSegmentWinsPerField(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)
	w.AddDocument(document.NewDocument("1").
		AddField(document.NewField("title", "Draft", document.STORED)).
		AddField(document.NewField("author", "Ann", document.STORED)))
	require.NoError(t, w.Commit())

	w2, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)
	w2.AddDocument(document.NewDocument("1").
		AddField(document.NewField("title", "Final", document.STORED)))
	require.NoError(t, w2.Commit())

	r, err := OpenReader(dir)
	require.NoError(t, err)
	assert.Equal(t, "Final", r.GetDocument("1")["title"])
	assert.Equal(t, "Ann", r.GetDocument("1")["author"])
}

func TestReaderOpenOnMissingManifestErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenReader(dir)
	assert.Error(t, err)
}

func TestReaderTermsDocsForUnknownTermIsEmptyNotNilPanic(t *testing.T) {
	dir := t.TempDir()
	w, err := OpenWriter(dir, analysis.New())
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	r, err := OpenReader(dir)
	require.NoError(t, err)
	assert.Empty(t, r.TermsDocs("nonexistent"))
	assert.Equal(t, 0, r.DocFreq("nonexistent"))
}
