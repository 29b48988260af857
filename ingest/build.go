package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/forrestchang/puceny/analysis"
	"github.com/forrestchang/puceny/document"
	"github.com/forrestchang/puceny/index"
	"github.com/forrestchang/puceny/logx"
)

// BuildOptions configures BuildIndex.
type BuildOptions struct {
	// ChunkSize and ChunkOverlap control the Chunker; see NewChunker.
	ChunkSize    int
	ChunkOverlap int
	// Recursive walks subdirectories of RootDir when true.
	Recursive bool
	Logger    logx.Logger
}

// BuildIndex walks rootDir, extracts text from every file with a
// supported extension, splits each file's text into chunks, and
// commits one document per chunk to a Writer opened over indexDir.
// Document ids are "<relative path>#<chunk index>"; the "path" field
// is STORED and the chunk text is indexed as TEXT under "content".
func BuildIndex(rootDir, indexDir string, opts BuildOptions) (int, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logx.Nop
	}

	chunker, err := NewChunker(opts.ChunkSize, opts.ChunkOverlap)
	if err != nil {
		return 0, fmt.Errorf("ingest: building chunker: %w", err)
	}

	w, err := index.OpenWriter(indexDir, analysis.New())
	if err != nil {
		return 0, fmt.Errorf("ingest: opening index: %w", err)
	}

	docCount := 0
	walkErr := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != rootDir && !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !SupportedExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		text, err := ExtractText(path)
		if err != nil {
			logger.Printf("skipping %s: %v", path, err)
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			rel = path
		}

		chunks := chunker.Split(text)
		for i, chunk := range chunks {
			docID := fmt.Sprintf("%s#%d", rel, i)
			w.AddDocument(document.NewDocument(docID).
				AddField(document.NewField("content", chunk, document.TEXT)).
				AddField(document.NewField("path", rel, document.STORED)).
				AddField(document.NewField("chunk", fmt.Sprintf("%d", i), document.STORED)))
			docCount++
		}
		logger.Printf("ingested %s (%d chunks)", rel, len(chunks))
		return nil
	})
	if walkErr != nil {
		return 0, fmt.Errorf("ingest: walking %s: %w", rootDir, walkErr)
	}

	if err := w.Commit(); err != nil {
		return 0, fmt.Errorf("ingest: committing index: %w", err)
	}

	return docCount, nil
}
