package ingest

import (
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Chunker splits document text into sentence-bounded chunks sized by
// rune count, generalized from the reference splitter's
// split-then-merge strategy to the core's simpler per-document
// (rather than per-node) chunking need.
type Chunker struct {
	tokenizer    *sentences.DefaultSentenceTokenizer
	chunkSize    int
	chunkOverlap int
}

// NewChunker builds a Chunker with the given target chunk size and
// overlap, both measured in runes. A chunkSize <= 0 falls back to 1000;
// a negative chunkOverlap is treated as 0 (no overlap).
func NewChunker(chunkSize, chunkOverlap int) (*Chunker, error) {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}

	return &Chunker{
		tokenizer:    tokenizer,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}, nil
}

// Split breaks text into sentences, then greedily packs consecutive
// sentences into chunks, starting a new chunk when the next sentence
// would push the current one past chunkSize runes, and carrying the
// trailing chunkOverlap runes of one chunk into the start of the next
// so a query term near a chunk boundary is still findable from either
// side. The size limit is not hard: a single sentence longer than
// chunkSize, or the overlap carry plus the sentence that follows it,
// yields a chunk longer than chunkSize.
func (c *Chunker) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	sents := c.tokenizer.Tokenize(text)
	var sentTexts []string
	for _, s := range sents {
		if t := strings.TrimSpace(s.Text); t != "" {
			sentTexts = append(sentTexts, t)
		}
	}
	if len(sentTexts) == 0 {
		sentTexts = []string{text}
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		chunk := strings.TrimSpace(current.String())
		if chunk == "" {
			return
		}
		chunks = append(chunks, chunk)
		overlap := lastRunes(chunk, c.chunkOverlap)
		current.Reset()
		current.WriteString(overlap)
	}

	for _, sentText := range sentTexts {
		if current.Len() > 0 && runeLen(current.String())+runeLen(sentText)+1 > c.chunkSize {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sentText)
	}
	if strings.TrimSpace(current.String()) != "" {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return dedupeConsecutive(chunks)
}

func runeLen(s string) int {
	return len([]rune(s))
}

func lastRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// dedupeConsecutive drops every chunk that is identical to the chunk
// immediately before it.
func dedupeConsecutive(chunks []string) []string {
	out := chunks[:0:0]
	for i, c := range chunks {
		if i > 0 && c == chunks[i-1] {
			continue
		}
		out = append(out, c)
	}
	return out
}
