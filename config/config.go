// Package config holds named defaults shared across the indexing
// subsystem, mirroring the constant-block conventions the rest of the
// corpus uses for tunables (chunk sizes, cache directories, and so on).
package config

const (
	// ManifestFilename is the name of the manifest file at the root of
	// an index directory.
	ManifestFilename = "segments.json"

	// SegmentNamePrefix prefixes every writer-produced segment directory.
	SegmentNamePrefix = "segment_"

	// SegmentNamePadding is the zero-padded width of the segment counter
	// in a segment directory name (segment_000, segment_001, ...).
	SegmentNamePadding = 3

	// MergedSegmentName is the directory name IndexMerger writes its
	// combined segment to by default.
	MergedSegmentName = "merged_segment"

	// InvertedIndexFilename is the per-segment inverted index file.
	InvertedIndexFilename = "inverted_index.json"

	// DocumentStoreFilename is the per-segment document store file.
	DocumentStoreFilename = "document_store.json"

	// DirPerm is the permission mode for created index/segment directories.
	DirPerm = 0o755

	// FilePerm is the permission mode for written segment and manifest files.
	FilePerm = 0o644
)

// DefaultStopwords is the Analyzer's default stop-word set, per the
// reference engine. It is a plain value, never process-global state:
// callers that want a different set construct an Analyzer with one
// (see the analysis package) rather than mutating this slice.
func DefaultStopwords() []string {
	return []string{"the", "is", "a", "an", "of", "for", "and", "to", "in"}
}
