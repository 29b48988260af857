// Package analysis implements the deterministic text-to-terms pipeline
// shared by indexing and querying: tokenize, lowercase, filter
// stop-words. It is grounded on the BM25 sparse embedding model's
// tokenizer/stopword pipeline in the example corpus, generalized into
// the three discrete pipeline stages the reference engine specifies.
package analysis

import "strings"

// Token is a single unit produced by the Tokenizer stage, before
// lowercasing and stop-word filtering.
type Token struct {
	Text string
}

// Tokenizer splits raw text into word tokens. The reference splitter
// treats any maximal run of non-word characters as a separator, where
// a word character is an ASCII letter, digit, or underscore — matching
// Python's `\W+`-complement semantics, since Python's `\w` includes
// the underscore.
type Tokenizer struct{}

// NewTokenizer constructs a Tokenizer.
func NewTokenizer() Tokenizer {
	return Tokenizer{}
}

// isWordChar reports whether r is a word character for tokenization
// purposes: ASCII letters, digits, and underscore. Non-ASCII runes are
// never word characters, matching the engine's "ASCII word characters
// only" contract.
func isWordChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}

// Tokenize splits text on maximal runs of non-word characters, dropping
// empty fragments.
func (Tokenizer) Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i, r := range text {
		if isWordChar(r) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			tokens = append(tokens, Token{Text: text[start:i]})
			start = -1
		}
	}
	if start != -1 {
		tokens = append(tokens, Token{Text: text[start:]})
	}
	return tokens
}

// LowercaseFilter maps each token through ASCII case folding.
type LowercaseFilter struct{}

// Filter lowercases every token.
func (LowercaseFilter) Filter(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{Text: strings.ToLower(t.Text)}
	}
	return out
}

// StopwordFilter drops tokens whose lowercased form belongs to the
// configured stop-word set.
type StopwordFilter struct {
	stopwords map[string]struct{}
}

// NewStopwordFilter builds a StopwordFilter from a list of words. The
// words are lowercased on construction so comparisons are case
// insensitive regardless of how the caller supplied them.
func NewStopwordFilter(stopwords []string) StopwordFilter {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return StopwordFilter{stopwords: set}
}

// Filter removes tokens present in the stop-word set.
func (f StopwordFilter) Filter(tokens []Token) []Token {
	out := tokens[:0:0]
	for _, t := range tokens {
		if _, stop := f.stopwords[strings.ToLower(t.Text)]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Analyzer is the deterministic string -> []string pipeline: tokenize,
// lowercase, then drop stop-words, strictly in that order. It is
// stateless after construction — the same Analyzer (or an equivalently
// configured one) must be used at index time and query time for terms
// to line up.
type Analyzer struct {
	tokenizer  Tokenizer
	lowercase  LowercaseFilter
	stopFilter StopwordFilter
}

// New constructs an Analyzer. With no arguments it uses the reference
// engine's default stop-word set; pass a custom set to override it.
// The stop-word set is a construction-time value, never global state,
// per the reference design.
func New(stopwords ...string) *Analyzer {
	if stopwords == nil {
		stopwords = defaultStopwords
	}
	return &Analyzer{
		tokenizer:  NewTokenizer(),
		lowercase:  LowercaseFilter{},
		stopFilter: NewStopwordFilter(stopwords),
	}
}

// defaultStopwords is the reference engine's built-in stop-word set.
var defaultStopwords = []string{"the", "is", "a", "an", "of", "for", "and", "to", "in"}

// Analyze runs text through tokenize -> lowercase -> stop-word filter
// and returns the resulting normalized term strings in order.
func (a *Analyzer) Analyze(text string) []string {
	tokens := a.tokenizer.Tokenize(text)
	tokens = a.lowercase.Filter(tokens)
	tokens = a.stopFilter.Filter(tokens)

	terms := make([]string, len(tokens))
	for i, t := range tokens {
		terms[i] = t.Text
	}
	return terms
}
