package segment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/forrestchang/puceny/config"
)

// marshalPretty renders v as two-space-indented JSON with HTML
// escaping of <, > and & disabled. encoding/json writes non-ASCII
// content literally rather than \u-escaping it, as the reference
// format requires.
func marshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(path string, v any) error {
	data, err := marshalPretty(v)
	if err != nil {
		return NewIoError("marshal", path, err)
	}
	if err := os.WriteFile(path, data, config.FilePerm); err != nil {
		return NewIoError("write", path, err)
	}
	return nil
}

// writeFileAtomic writes data to a uuid-suffixed temp file in the same
// directory as path, then renames it over path. Same-directory rename
// is atomic on POSIX filesystems, which is the chosen discipline for
// manifest updates (see SPEC_FULL.md section 5).
func writeFileAtomic(path string, v any) error {
	data, err := marshalPretty(v)
	if err != nil {
		return NewIoError("marshal", path, err)
	}
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", filepath.Base(path), uuid.New().String()))
	if err := os.WriteFile(tmp, data, config.FilePerm); err != nil {
		return NewIoError("write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return NewIoError("rename", path, err)
	}
	return nil
}

// ManifestPath returns the manifest file path for an index directory.
func ManifestPath(indexDir string) string {
	return filepath.Join(indexDir, config.ManifestFilename)
}

// SegmentDir returns the directory path for a named segment.
func SegmentDir(indexDir, name string) string {
	return filepath.Join(indexDir, name)
}

// LoadManifestOrEmpty reads the manifest if present, or returns an
// empty Manifest if segments.json does not yet exist. Used by
// index.OpenWriter, which tolerates a fresh index directory.
func LoadManifestOrEmpty(indexDir string) (*Manifest, error) {
	path := ManifestPath(indexDir)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, NewIoError("read", path, err)
	}
	return parseManifest(indexDir, data)
}

// LoadManifest reads the manifest, requiring it to exist. Used by
// IndexReader and IndexMerger, which operate on an established index.
func LoadManifest(indexDir string) (*Manifest, error) {
	path := ManifestPath(indexDir)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &ManifestMissingError{IndexDir: indexDir}
	}
	if err != nil {
		return nil, NewIoError("read", path, err)
	}
	return parseManifest(indexDir, data)
}

func parseManifest(indexDir string, data []byte) (*Manifest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ManifestCorruptError{IndexDir: indexDir, Err: err}
	}
	segs, ok := raw["segments"]
	if !ok {
		return nil, &ManifestCorruptError{IndexDir: indexDir, Err: errors.New(`missing "segments" key`)}
	}
	var m Manifest
	if err := json.Unmarshal(segs, &m.Segments); err != nil {
		return nil, &ManifestCorruptError{IndexDir: indexDir, Err: err}
	}
	if m.Segments == nil {
		// {"segments": null} is read as an empty index.
		m.Segments = []Info{}
	}
	return &m, nil
}

// SaveManifestAtomic rewrites segments.json via write-to-temp-then-
// rename.
func SaveManifestAtomic(indexDir string, m *Manifest) error {
	if err := os.MkdirAll(indexDir, config.DirPerm); err != nil {
		return NewIoError("mkdir", indexDir, err)
	}
	return writeFileAtomic(ManifestPath(indexDir), m)
}

// LoadInvertedIndex reads a segment's inverted index file.
func LoadInvertedIndex(indexDir, segmentName string) (InvertedIndex, error) {
	path := filepath.Join(SegmentDir(indexDir, segmentName), config.InvertedIndexFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SegmentCorruptError{SegmentName: segmentName, Err: err}
	}
	var idx InvertedIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, &SegmentCorruptError{SegmentName: segmentName, Err: err}
	}
	if idx == nil {
		idx = InvertedIndex{}
	}
	return idx, nil
}

// LoadDocumentStore reads a segment's document store file.
func LoadDocumentStore(indexDir, segmentName string) (DocumentStore, error) {
	path := filepath.Join(SegmentDir(indexDir, segmentName), config.DocumentStoreFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SegmentCorruptError{SegmentName: segmentName, Err: err}
	}
	var store DocumentStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, &SegmentCorruptError{SegmentName: segmentName, Err: err}
	}
	if store == nil {
		store = DocumentStore{}
	}
	return store, nil
}

// WriteSegment creates indexDir/segmentName and writes its inverted
// index and document store files. The segment is fully written before
// this returns; callers are responsible for not publishing the segment
// (via the manifest) until WriteSegment succeeds.
func WriteSegment(indexDir, segmentName string, idx InvertedIndex, store DocumentStore) error {
	dir := SegmentDir(indexDir, segmentName)
	if err := os.MkdirAll(dir, config.DirPerm); err != nil {
		return NewIoError("mkdir", dir, err)
	}
	if err := writeFile(filepath.Join(dir, config.InvertedIndexFilename), idx); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, config.DocumentStoreFilename), store); err != nil {
		return err
	}
	return nil
}

// RemoveSegmentDir recursively deletes a segment directory. Used by
// IndexMerger after the merged segment and manifest are durably in
// place.
func RemoveSegmentDir(indexDir, segmentName string) error {
	dir := SegmentDir(indexDir, segmentName)
	if err := os.RemoveAll(dir); err != nil {
		return NewIoError("remove", dir, err)
	}
	return nil
}
