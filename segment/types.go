// Package segment defines the on-disk segment format — the manifest,
// the per-segment inverted index and document store files — and the
// merge policy shared by IndexReader and IndexMerger when folding
// multiple segments' data into one in-memory (or on-disk) structure.
package segment

// Info is one manifest entry: a segment's directory name and the
// document count it was committed with.
type Info struct {
	Name     string `json:"name"`
	DocCount int    `json:"doc_count"`
}

// Manifest is the ordered list of segments that make up a logical
// index, as recorded in segments.json.
type Manifest struct {
	Segments []Info `json:"segments"`
}

// PostingList maps doc_id to its ascending position list for one term.
type PostingList map[string][]int

// InvertedIndex maps a normalized term to its posting list.
type InvertedIndex map[string]PostingList

// DocumentStore maps doc_id to its field_name -> field_value map.
type DocumentStore map[string]map[string]string

// MergeInvertedIndex folds src into dst using the reference engine's
// policy: a new (term, doc_id) pair adopts its position list as-is; an
// existing one has the incoming positions appended (concatenated, no
// deduplication). This is the same policy IndexReader uses to union
// segments and IndexMerger uses to compact them — see spec section 4.5.
func MergeInvertedIndex(dst InvertedIndex, src InvertedIndex) {
	for term, postings := range src {
		existing, ok := dst[term]
		if !ok {
			existing = make(PostingList, len(postings))
			dst[term] = existing
		}
		for docID, positions := range postings {
			existing[docID] = append(existing[docID], positions...)
		}
	}
}

// MergeDocumentStore folds src into dst field-by-field, later-wins: for
// a doc_id present in both, fields from src overwrite same-named
// fields already in dst, and new fields are added.
func MergeDocumentStore(dst DocumentStore, src DocumentStore) {
	for docID, fields := range src {
		existing, ok := dst[docID]
		if !ok {
			existing = make(map[string]string, len(fields))
			dst[docID] = existing
		}
		for name, value := range fields {
			existing[name] = value
		}
	}
}
