// Package merge implements IndexMerger: folding every segment in an
// index directory into one new segment and rewriting the manifest,
// grounded on the ingestion pipeline's docstore-merge strategy
// (ingestion.IngestionPipeline) generalized to segment-level
// concatenation per the reference engine's contract.
package merge

import (
	"github.com/forrestchang/puceny/config"
	"github.com/forrestchang/puceny/logx"
	"github.com/forrestchang/puceny/segment"
)

// Merger compacts every segment in an index directory into a single
// new segment. It is not safe to run concurrently with a writer or
// with itself — the index directory is owned exclusively by whichever
// of writer or merger is active.
type Merger struct {
	dir    string
	logger logx.Logger
}

// MergerOption configures a Merger at construction time.
type MergerOption func(*Merger)

// WithMergerLogger sets the sink for merge progress messages.
func WithMergerLogger(l logx.Logger) MergerOption {
	return func(m *Merger) { m.logger = l }
}

// New constructs a Merger over indexDir.
func New(indexDir string, opts ...MergerOption) *Merger {
	m := &Merger{dir: indexDir, logger: logx.Nop}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MergeAll reads the manifest, folds every listed segment into one
// combined inverted index and document store using the same policy as
// index.Reader, writes the result as newSegmentName, rewrites the
// manifest to contain only that one entry, and deletes the old segment
// directories.
//
// Atomicity discipline (see SPEC_FULL.md section 5): the new segment
// is fully written and the manifest is rewritten (via temp-then-
// rename) before any old segment directory is removed. A crash between
// the manifest rewrite and the deletion step leaves harmless orphan
// directories that the manifest — the sole source of truth — simply
// ignores on the next open. A crash before the manifest rewrite leaves
// the new segment directory as an orphan, for the same reason.
//
// If newSegmentName is empty, it defaults to "merged_segment". If the
// manifest lists zero or one segment, MergeAll logs that no merge is
// needed and returns without touching the directory.
func (m *Merger) MergeAll(newSegmentName string) error {
	if newSegmentName == "" {
		newSegmentName = config.MergedSegmentName
	}

	manifest, err := segment.LoadManifest(m.dir)
	if err != nil {
		return err
	}

	if len(manifest.Segments) <= 1 {
		m.logger.Printf("no merge needed")
		return nil
	}

	combinedIndex := segment.InvertedIndex{}
	combinedStore := segment.DocumentStore{}

	for _, info := range manifest.Segments {
		idx, err := segment.LoadInvertedIndex(m.dir, info.Name)
		if err != nil {
			return err
		}
		store, err := segment.LoadDocumentStore(m.dir, info.Name)
		if err != nil {
			return err
		}
		segment.MergeInvertedIndex(combinedIndex, idx)
		segment.MergeDocumentStore(combinedStore, store)
	}

	if err := segment.WriteSegment(m.dir, newSegmentName, combinedIndex, combinedStore); err != nil {
		return err
	}

	newManifest := &segment.Manifest{
		Segments: []segment.Info{{Name: newSegmentName, DocCount: len(combinedStore)}},
	}
	if err := segment.SaveManifestAtomic(m.dir, newManifest); err != nil {
		return err
	}

	for _, info := range manifest.Segments {
		if info.Name == newSegmentName {
			// The merged segment reused an old segment's name (an
			// unusual but legal call); don't delete what we just wrote.
			continue
		}
		if err := segment.RemoveSegmentDir(m.dir, info.Name); err != nil {
			return err
		}
	}

	m.logger.Printf("merged %d segments into %s (%d documents)", len(manifest.Segments), newSegmentName, len(combinedStore))
	return nil
}
