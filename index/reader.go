package index

import "github.com/forrestchang/puceny/segment"

// Reader is a read-only, in-memory snapshot of every segment committed
// to an index directory at the time it was opened. It does not observe
// writes that happen afterward, and requires no locking for concurrent
// reads once constructed.
type Reader struct {
	invertedIndex   segment.InvertedIndex
	documentStore   segment.DocumentStore
	totalDocCount   int
	docFreq         map[string]int
}

// OpenReader reads the manifest and every segment it lists, in manifest
// order, and unions them into one in-memory inverted index and
// document store using the reference merge policy (positions
// concatenate, stored fields are later-segment-wins per field). It
// then precomputes document-frequency statistics for the searcher.
func OpenReader(indexDir string) (*Reader, error) {
	manifest, err := segment.LoadManifest(indexDir)
	if err != nil {
		return nil, err
	}

	invertedIndex := segment.InvertedIndex{}
	documentStore := segment.DocumentStore{}

	for _, info := range manifest.Segments {
		idx, err := segment.LoadInvertedIndex(indexDir, info.Name)
		if err != nil {
			return nil, err
		}
		store, err := segment.LoadDocumentStore(indexDir, info.Name)
		if err != nil {
			return nil, err
		}
		segment.MergeInvertedIndex(invertedIndex, idx)
		segment.MergeDocumentStore(documentStore, store)
	}

	docFreq := make(map[string]int, len(invertedIndex))
	for term, postings := range invertedIndex {
		docFreq[term] = len(postings)
	}

	return &Reader{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
		totalDocCount: len(documentStore),
		docFreq:       docFreq,
	}, nil
}

// TermsDocs returns the merged doc_id -> positions mapping for term, or
// an empty map if the term does not appear in any segment.
func (r *Reader) TermsDocs(term string) map[string][]int {
	postings, ok := r.invertedIndex[term]
	if !ok {
		return map[string][]int{}
	}
	return postings
}

// GetDocument returns the stored field_name -> field_value map for
// doc_id, or an empty map if no such document exists.
func (r *Reader) GetDocument(docID string) map[string]string {
	fields, ok := r.documentStore[docID]
	if !ok {
		return map[string]string{}
	}
	return fields
}

// TotalDocCount is the number of distinct documents across every
// unioned segment.
func (r *Reader) TotalDocCount() int {
	return r.totalDocCount
}

// DocFreq is the number of distinct documents containing term across
// the union of segments.
func (r *Reader) DocFreq(term string) int {
	return r.docFreq[term]
}
