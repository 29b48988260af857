package segment

import "fmt"

// IoError wraps an underlying filesystem failure encountered while
// reading or writing index state, mirroring the ReaderError idiom used
// throughout the example corpus (source + message + wrapped cause).
type IoError struct {
	Path string
	Op   string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("puceny: io error during %s on %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// NewIoError constructs an IoError.
func NewIoError(op, path string, err error) *IoError {
	return &IoError{Op: op, Path: path, Err: err}
}

// ManifestMissingError indicates segments.json is absent where the
// caller requires it to exist (IndexReader, IndexMerger).
type ManifestMissingError struct {
	IndexDir string
}

func (e *ManifestMissingError) Error() string {
	return fmt.Sprintf("puceny: manifest missing in %s", e.IndexDir)
}

// ManifestCorruptError indicates segments.json exists but does not
// parse, or lacks the required "segments" key.
type ManifestCorruptError struct {
	IndexDir string
	Err      error
}

func (e *ManifestCorruptError) Error() string {
	return fmt.Sprintf("puceny: manifest corrupt in %s: %v", e.IndexDir, e.Err)
}

func (e *ManifestCorruptError) Unwrap() error { return e.Err }

// SegmentCorruptError indicates a segment referenced by the manifest is
// missing or unparseable.
type SegmentCorruptError struct {
	SegmentName string
	Err         error
}

func (e *SegmentCorruptError) Error() string {
	return fmt.Sprintf("puceny: segment %q corrupt: %v", e.SegmentName, e.Err)
}

func (e *SegmentCorruptError) Unwrap() error { return e.Err }
