// Package queryfront is a thin, presentation-only front end over the
// core search API: it renders Scored results as a stored snippet with
// the query's matched terms highlighted. It depends on search and
// analysis only, and nothing in the core depends on it.
package queryfront

import (
	"fmt"
	"strings"

	"github.com/forrestchang/puceny/analysis"
	"github.com/forrestchang/puceny/search"
)

// Result is one presentation-ready hit: a document id, its score, and
// a highlighted snippet drawn from one of its stored fields.
type Result struct {
	DocID   string
	Score   float64
	Snippet string
}

// Marker wraps a matched term when highlighting; defaults to
// Markdown-style bold.
type Marker struct {
	Open  string
	Close string
}

// DefaultMarker highlights matches with Markdown bold markers.
var DefaultMarker = Marker{Open: "**", Close: "**"}

// Reader is the subset of index.Reader a Presenter needs: the same
// boolean-query surface as search.Reader, plus stored-field lookup for
// rendering snippets (deliberately excluded from search.Reader, which
// has no business knowing about stored fields).
type Reader interface {
	search.Reader
	GetDocument(docID string) map[string]string
}

// Presenter formats Searcher results for display, highlighting query
// terms (after running them through the same Analyzer used to index
// and query) wherever they appear in a document's stored field text.
type Presenter struct {
	reader   Reader
	searcher *search.Searcher
	analyzer *analysis.Analyzer
	field    string
	marker   Marker
}

// New constructs a Presenter that reads the stored field fieldName for
// its snippets.
func New(reader Reader, analyzer *analysis.Analyzer, fieldName string) *Presenter {
	return &Presenter{
		reader:   reader,
		searcher: search.New(reader, analyzer),
		analyzer: analyzer,
		field:    fieldName,
		marker:   DefaultMarker,
	}
}

// WithMarker overrides the highlight markers.
func (p *Presenter) WithMarker(m Marker) *Presenter {
	p.marker = m
	return p
}

// Present runs q, then renders each result's stored field (p.field)
// with every analyzed query term highlighted.
func (p *Presenter) Present(q search.Query) []Result {
	scored := p.searcher.SearchWithScores(q)

	var terms []string
	for _, raw := range q.Terms {
		terms = append(terms, p.analyzer.Analyze(raw)...)
	}

	results := make([]Result, len(scored))
	for i, sc := range scored {
		fields := p.reader.GetDocument(sc.DocID)
		results[i] = Result{
			DocID:   sc.DocID,
			Score:   sc.Score,
			Snippet: p.highlight(fields[p.field], terms),
		}
	}
	return results
}

// highlight wraps every case-insensitive occurrence of a term with the
// configured marker. It operates on whole analyzer tokens, matching
// the same tokenizer used at index time, so it only marks complete
// words rather than substrings within larger words.
func (p *Presenter) highlight(text string, terms []string) string {
	if text == "" || len(terms) == 0 {
		return text
	}

	wanted := make(map[string]bool, len(terms))
	for _, t := range terms {
		wanted[strings.ToLower(t)] = true
	}

	tokenizer := analysis.NewTokenizer()
	tokens := tokenizer.Tokenize(text)

	var sb strings.Builder
	cursor := 0
	for _, tok := range tokens {
		start := strings.Index(text[cursor:], tok.Text)
		if start < 0 {
			continue
		}
		start += cursor
		end := start + len(tok.Text)
		sb.WriteString(text[cursor:start])
		if wanted[strings.ToLower(tok.Text)] {
			sb.WriteString(p.marker.Open)
			sb.WriteString(tok.Text)
			sb.WriteString(p.marker.Close)
		} else {
			sb.WriteString(tok.Text)
		}
		cursor = end
	}
	sb.WriteString(text[cursor:])
	return sb.String()
}

// FormatSummary renders a one-line human-readable summary of a Result,
// e.g. for CLI output.
func FormatSummary(r Result) string {
	return fmt.Sprintf("%s (score %.4f): %s", r.DocID, r.Score, r.Snippet)
}
