package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forrestchang/puceny/analysis"
	"github.com/forrestchang/puceny/index"
	"github.com/forrestchang/puceny/search"
)

func TestExtractTextPlainAndMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nbody text"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "body text")
}

func TestExtractTextStripsHTMLTags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body><p>Hello <b>world</b></p></body></html>"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := ExtractText(path)
	var unsupported *ErrUnsupportedExtension
	assert.ErrorAs(t, err, &unsupported)
}

func TestChunkerSplitsLongTextIntoOverlappingChunks(t *testing.T) {
	c, err := NewChunker(40, 10)
	require.NoError(t, err)

	text := "One sentence here. Another sentence follows. A third sentence completes it. A fourth one for good measure."
	chunks := c.Split(text)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk)), 60) // allows overlap slack
	}
}

func TestChunkerSplitOnEmptyTextReturnsNothing(t *testing.T) {
	c, err := NewChunker(100, 10)
	require.NoError(t, err)
	assert.Empty(t, c.Split("   "))
}

func TestBuildIndexWalksDirectoryAndIsSearchable(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("the quick brown fox"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "b.md"), []byte("a slow green turtle"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "skip.bin"), []byte("ignored"), 0o644))

	indexDir := t.TempDir()
	count, err := BuildIndex(src, indexDir, BuildOptions{ChunkSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	r, err := index.OpenReader(indexDir)
	require.NoError(t, err)
	s := search.New(r, analysis.New())

	results := s.Search(search.New([]string{"fox"}, search.OR))
	assert.NotEmpty(t, results)
}
