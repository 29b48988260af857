// Package index implements the writer and reader halves of the
// segmented index: IndexWriter accumulates an in-memory inverted index
// and document store for a batch of documents and flushes them as an
// immutable segment on commit; IndexReader unions every committed
// segment into one read-only snapshot.
package index

import (
	"fmt"
	"os"

	"github.com/forrestchang/puceny/analysis"
	"github.com/forrestchang/puceny/config"
	"github.com/forrestchang/puceny/document"
	"github.com/forrestchang/puceny/logx"
	"github.com/forrestchang/puceny/segment"
)

// Writer accumulates documents in memory and flushes them as new,
// immutable segments on Commit. It provides at-most-once semantics per
// commit: an AddDocument call not followed by Commit loses its data,
// deliberately — the writer does no journaling.
type Writer struct {
	dir      string
	analyzer *analysis.Analyzer
	logger   logx.Logger

	invertedIndex segment.InvertedIndex
	docStore      segment.DocumentStore
	docCount      int

	segmentCounter int
}

// WriterOption configures a Writer at construction time.
type WriterOption func(*Writer)

// WithWriterLogger sets the sink for commit progress messages.
func WithWriterLogger(l logx.Logger) WriterOption {
	return func(w *Writer) { w.logger = l }
}

// OpenWriter creates indexDir if absent, loads the existing manifest if one
// is present (otherwise starts from an empty index), and returns a
// Writer whose segment counter picks up where the existing segments
// leave off.
func OpenWriter(indexDir string, analyzer *analysis.Analyzer, opts ...WriterOption) (*Writer, error) {
	if err := os.MkdirAll(indexDir, config.DirPerm); err != nil {
		return nil, segment.NewIoError("mkdir", indexDir, err)
	}

	manifest, err := segment.LoadManifestOrEmpty(indexDir)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		dir:            indexDir,
		analyzer:       analyzer,
		logger:         logx.Nop,
		invertedIndex:  segment.InvertedIndex{},
		docStore:       segment.DocumentStore{},
		segmentCounter: len(manifest.Segments),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// AddDocument buffers doc into the in-memory index and document store.
// It never fails: all state is in memory until Commit flushes it.
//
// For multi-field TEXT documents, positions restart at 0 for each TEXT
// field but land in the same per-doc_id posting list — the reference
// engine's design treats each field's analyzed stream as its own
// position space while merging the results, so callers needing
// per-field positional queries must use distinct documents.
func (w *Writer) AddDocument(doc *document.Document) {
	w.docCount++

	fieldValues := make(map[string]string, len(doc.Fields))
	for _, f := range doc.Fields {
		fieldValues[f.Name] = f.Value

		switch f.Type {
		case document.TEXT:
			terms := w.analyzer.Analyze(f.Value)
			for pos, term := range terms {
				w.postTerm(term, doc.ID, pos)
			}
		case document.KEYWORD:
			w.postTerm(toLowerASCII(f.Value), doc.ID, 0)
		case document.STORED:
			// No index action.
		}
	}
	w.docStore[doc.ID] = fieldValues
}

func (w *Writer) postTerm(term, docID string, pos int) {
	postings, ok := w.invertedIndex[term]
	if !ok {
		postings = segment.PostingList{}
		w.invertedIndex[term] = postings
	}
	postings[docID] = append(postings[docID], pos)
}

// toLowerASCII lowercases without pulling in the analyzer pipeline,
// since KEYWORD values are posted as a single literal token rather
// than analyzed.
func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Commit flushes the current buffers as a new immutable segment and
// clears them. Multiple Commit calls across the writer's lifetime
// produce segments named with strictly increasing indices. The
// manifest is rewritten only after the segment is fully written, so a
// write failure never leaves the manifest pointing at a missing or
// partial segment.
func (w *Writer) Commit() error {
	segmentName := fmt.Sprintf("%s%0*d", config.SegmentNamePrefix, config.SegmentNamePadding, w.segmentCounter)

	if err := segment.WriteSegment(w.dir, segmentName, w.invertedIndex, w.docStore); err != nil {
		return err
	}

	manifest, err := segment.LoadManifestOrEmpty(w.dir)
	if err != nil {
		return err
	}
	manifest.Segments = append(manifest.Segments, segment.Info{Name: segmentName, DocCount: w.docCount})
	if err := segment.SaveManifestAtomic(w.dir, manifest); err != nil {
		return err
	}

	w.logger.Printf("committed %s (%d documents)", segmentName, w.docCount)

	w.invertedIndex = segment.InvertedIndex{}
	w.docStore = segment.DocumentStore{}
	w.docCount = 0
	w.segmentCounter++
	return nil
}
