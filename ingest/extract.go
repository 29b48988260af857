// Package ingest is a file-to-document driver for the indexing core: it
// extracts plain text from txt/md/html/pdf files, splits it into
// sentence-bounded chunks, and feeds the results through index.Writer.
// It depends on the core's public API only; nothing in document,
// analysis, segment, index, search, or merge imports this package.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedExtension is returned by ExtractText for a file
// extension this package does not know how to read.
type ErrUnsupportedExtension struct {
	Path string
	Ext  string
}

func (e *ErrUnsupportedExtension) Error() string {
	return fmt.Sprintf("ingest: unsupported file extension %q for %s", e.Ext, e.Path)
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// ExtractText reads path and returns its plain-text content, dispatching
// on file extension: .txt and .md are read verbatim, .html/.htm have
// tags stripped, .pdf is extracted page by page via ledongthuc/pdf.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return extractPlainFile(path)
	case ".html", ".htm":
		return extractHTMLFile(path)
	case ".pdf":
		return extractPDFFile(path)
	default:
		return "", &ErrUnsupportedExtension{Path: path, Ext: filepath.Ext(path)}
	}
}

func extractPlainFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("ingest: reading %s: %w", path, err)
	}
	return string(data), nil
}

func extractHTMLFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("ingest: reading %s: %w", path, err)
	}
	stripped := htmlTagPattern.ReplaceAllString(string(data), " ")
	return strings.Join(strings.Fields(stripped), " "), nil
}

// extractPDFFile concatenates the plain text of every page, separated
// by a blank line, skipping pages that fail to extract rather than
// failing the whole document.
func extractPDFFile(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("ingest: opening pdf %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("ingest: no text content extracted from %s", path)
	}
	return sb.String(), nil
}

// SupportedExtensions lists the file extensions ExtractText handles,
// used by BuildIndex to filter candidate files.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
}
