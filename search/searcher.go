package search

import (
	"sort"

	"github.com/forrestchang/puceny/analysis"
)

// Reader is the subset of index.Reader the Searcher depends on. Kept
// as an interface here, accepted by Searcher, so this package neither
// imports nor is imported by package index.
type Reader interface {
	TermsDocs(term string) map[string][]int
	DocFreq(term string) int
	TotalDocCount() int
}

// Scored is one ranked result: a document id and its accumulated
// score.
type Scored struct {
	DocID string
	Score float64
}

// Searcher evaluates Query values against a Reader, using Analyzer to
// normalize query terms the same way documents were analyzed at index
// time.
type Searcher struct {
	reader   Reader
	analyzer *analysis.Analyzer
}

// New constructs a Searcher over reader, normalizing query terms with
// analyzer. analyzer must be the same (or an equivalently configured)
// Analyzer used at index time, or term lookups will miss.
func New(reader Reader, analyzer *analysis.Analyzer) *Searcher {
	return &Searcher{reader: reader, analyzer: analyzer}
}

// SearchWithScores normalizes q's terms, accumulates a BM25-flavoured
// unlogged-IDF score per candidate document, applies the boolean
// operator filter, and returns results ranked by score descending,
// ties broken by ascending doc_id.
//
// idf(t) = 1 + (N - df + 0.5) / (df + 0.5), in IEEE-754 double
// arithmetic — this engine's specific (unlogged) IDF variant, not
// classic BM25's log form. Reproducing it exactly is the contract.
func (s *Searcher) SearchWithScores(q Query) []Scored {
	var normalized []string
	for _, raw := range q.Terms {
		normalized = append(normalized, s.analyzer.Analyze(raw)...)
	}
	if len(normalized) == 0 {
		return nil
	}

	scores := make(map[string]float64)
	matchedTerms := make(map[string]map[string]bool) // doc_id -> set of terms that matched

	n := float64(s.reader.TotalDocCount())
	for _, term := range normalized {
		postings := s.reader.TermsDocs(term)
		if len(postings) == 0 {
			continue
		}
		df := float64(s.reader.DocFreq(term))
		idf := 1 + (n-df+0.5)/(df+0.5)

		for docID, positions := range postings {
			tf := float64(len(positions))
			scores[docID] += tf * idf

			if matchedTerms[docID] == nil {
				matchedTerms[docID] = make(map[string]bool)
			}
			matchedTerms[docID][term] = true
		}
	}

	var candidates []string
	for docID := range scores {
		candidates = append(candidates, docID)
	}

	if q.Operator == AND {
		distinctTerms := make(map[string]bool)
		for _, t := range normalized {
			distinctTerms[t] = true
		}
		filtered := candidates[:0]
		for _, docID := range candidates {
			if len(matchedTerms[docID]) == len(distinctTerms) {
				filtered = append(filtered, docID)
			}
		}
		candidates = filtered
	}

	results := make([]Scored, len(candidates))
	for i, docID := range candidates {
		results[i] = Scored{DocID: docID, Score: scores[docID]}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})

	return results
}

// Search projects SearchWithScores onto doc_ids only.
func (s *Searcher) Search(q Query) []string {
	scored := s.SearchWithScores(q)
	ids := make([]string, len(scored))
	for i, sc := range scored {
		ids[i] = sc.DocID
	}
	return ids
}
