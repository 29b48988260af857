package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forrestchang/puceny/analysis"
	"github.com/forrestchang/puceny/document"
	"github.com/forrestchang/puceny/index"
)

func buildIndex(t *testing.T, docs ...*document.Document) *index.Reader {
	t.Helper()
	dir := t.TempDir()

	w, err := index.OpenWriter(dir, analysis.New())
	require.NoError(t, err)
	for _, d := range docs {
		w.AddDocument(d)
	}
	require.NoError(t, w.Commit())

	r, err := index.OpenReader(dir)
	require.NoError(t, err)
	return r
}

func TestSearchSingleDocumentSingleTermScore(t *testing.T) {
	r := buildIndex(t, document.NewDocument("1").
		AddField(document.NewField("content", "fox", document.TEXT)))

	s := New(r, analysis.New())
	scored := s.SearchWithScores(New([]string{"fox"}, OR))

	require.Len(t, scored, 1)
	// n=1, df=1: idf = 1 + (1-1+0.5)/(1+0.5) = 1 + 1/3 = 1.3333...
	// tf=1, score = tf*idf = 1.3333...
	assert.InDelta(t, 1.3333333333333333, scored[0].Score, 1e-9)
	assert.Equal(t, "1", scored[0].DocID)
}

func TestSearchStopWordsAreRemovedFromTheQuery(t *testing.T) {
	r := buildIndex(t, document.NewDocument("1").
		AddField(document.NewField("content", "the fox", document.TEXT)))

	s := New(r, analysis.New())

	// "the" is a stop word and contributes nothing; the query still
	// matches on "fox" alone.
	withStop := s.Search(New([]string{"the", "fox"}, OR))
	withoutStop := s.Search(New([]string{"fox"}, OR))
	assert.Equal(t, withoutStop, withStop)
}

func TestSearchORMatchesAnyTermANDRequiresAll(t *testing.T) {
	r := buildIndex(t,
		document.NewDocument("1").AddField(document.NewField("content", "fox", document.TEXT)),
		document.NewDocument("2").AddField(document.NewField("content", "hound", document.TEXT)),
		document.NewDocument("3").AddField(document.NewField("content", "fox hound", document.TEXT)),
	)
	s := New(r, analysis.New())

	or := s.Search(New([]string{"fox", "hound"}, OR))
	assert.ElementsMatch(t, []string{"1", "2", "3"}, or)

	and := s.Search(New([]string{"fox", "hound"}, AND))
	assert.Equal(t, []string{"3"}, and)
}

func TestSearchPositionalPostingsReflectTermOffsets(t *testing.T) {
	r := buildIndex(t, document.NewDocument("1").
		AddField(document.NewField("content", "fox runs and fox hides and fox sleeps", document.TEXT)))

	assert.Equal(t, map[string][]int{"1": {0, 2, 4}}, r.TermsDocs("fox"))
}

func TestSearchResultsAreOrderedByScoreDescThenDocIDAsc(t *testing.T) {
	r := buildIndex(t,
		document.NewDocument("2").AddField(document.NewField("content", "fox fox fox", document.TEXT)),
		document.NewDocument("1").AddField(document.NewField("content", "fox", document.TEXT)),
		document.NewDocument("3").AddField(document.NewField("content", "fox", document.TEXT)),
	)
	s := New(r, analysis.New())
	scored := s.SearchWithScores(New([]string{"fox"}, OR))

	require.Len(t, scored, 3)
	assert.Equal(t, "2", scored[0].DocID)
	// Ties broken by ascending doc_id.
	assert.Equal(t, "1", scored[1].DocID)
	assert.Equal(t, "3", scored[2].DocID)
}

func TestSearchAddingMoreORTermsNeverDecreasesResultSet(t *testing.T) {
	r := buildIndex(t,
		document.NewDocument("1").AddField(document.NewField("content", "fox", document.TEXT)),
		document.NewDocument("2").AddField(document.NewField("content", "hound", document.TEXT)),
	)
	s := New(r, analysis.New())

	narrow := s.Search(New([]string{"fox"}, OR))
	wide := s.Search(New([]string{"fox", "hound"}, OR))
	assert.GreaterOrEqual(t, len(wide), len(narrow))
	for _, id := range narrow {
		assert.Contains(t, wide, id)
	}
}

func TestSearchAddingMoreANDTermsNeverGrowsResultSet(t *testing.T) {
	r := buildIndex(t,
		document.NewDocument("1").AddField(document.NewField("content", "fox", document.TEXT)),
		document.NewDocument("2").AddField(document.NewField("content", "fox hound", document.TEXT)),
	)
	s := New(r, analysis.New())

	wide := s.Search(New([]string{"fox"}, AND))
	narrow := s.Search(New([]string{"fox", "hound"}, AND))
	assert.LessOrEqual(t, len(narrow), len(wide))
	for _, id := range narrow {
		assert.Contains(t, wide, id)
	}
}

func TestSearchQueryWithNoSurvivingTermsReturnsNoResults(t *testing.T) {
	r := buildIndex(t, document.NewDocument("1").
		AddField(document.NewField("content", "fox", document.TEXT)))

	s := New(r, analysis.New())
	assert.Empty(t, s.Search(New([]string{"the", "is", "a"}, OR)))
}

func TestParseOperatorIsCaseInsensitiveAndDefaultsToOR(t *testing.T) {
	assert.Equal(t, AND, ParseOperator("and"))
	assert.Equal(t, AND, ParseOperator("AND"))
	assert.Equal(t, AND, ParseOperator("And"))
	assert.Equal(t, OR, ParseOperator("or"))
	assert.Equal(t, OR, ParseOperator("nonsense"))
	assert.Equal(t, OR, ParseOperator(""))
}
