package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aqua777/krait"

	"github.com/forrestchang/puceny/analysis"
	"github.com/forrestchang/puceny/index"
	"github.com/forrestchang/puceny/ingest"
	"github.com/forrestchang/puceny/logx"
	"github.com/forrestchang/puceny/merge"
	"github.com/forrestchang/puceny/queryfront"
	"github.com/forrestchang/puceny/search"
)

func main() {
	ingestCmd := krait.New("ingest", "Build or extend an index", "Walk a directory, chunk every supported file, and commit the result as a new segment").
		WithStringP("source", "Directory to walk", "source", "s", "PUCENY_SOURCE", ".").
		WithIntP(KeyChunkSize, "Target chunk size in runes", "chunk-size", "", "PUCENY_CHUNK_SIZE", DefaultChunkSize).
		WithIntP(KeyChunkOverlap, "Chunk overlap in runes", "chunk-overlap", "", "PUCENY_CHUNK_OVERLAP", DefaultChunkOverlap).
		WithBoolP(KeyRecursive, "Recurse into subdirectories", "recursive", "r", "PUCENY_RECURSIVE", true).
		WithRun(runIngest)

	searchCmd := krait.New("search", "Query the index", "Run a boolean term query against the index and print ranked, highlighted results").
		WithStringSliceP("term", "Query term (repeatable)", "term", "t", "PUCENY_TERMS", nil).
		WithStringP(KeyOperator, "Boolean operator: AND or OR", "operator", "o", "PUCENY_OPERATOR", DefaultOperator).
		WithRun(runSearch)

	mergeCmd := krait.New("merge", "Compact all segments", "Fold every segment in the index into a single segment").
		WithStringP(KeyMergeSegment, "Name for the merged segment", "segment-name", "", "PUCENY_MERGE_SEGMENT", DefaultMergeSegment).
		WithRun(runMerge)

	app := krait.App("puceny", "puceny search engine CLI", "Command-line interface for building and querying a puceny index").
		WithConfig("", "config", "", "PUCENY_CONFIG").
		WithStringP(KeyIndexDir, "Index directory", "index-dir", "i", "PUCENY_INDEX_DIR", DefaultIndexDir).
		WithBoolP(KeyVerbose, "Enable verbose logging", "verbose", "v", "PUCENY_VERBOSE", false).
		WithCommand(ingestCmd).
		WithCommand(searchCmd).
		WithCommand(mergeCmd).
		WithRun(func(args []string) error {
			fmt.Println("puceny - use 'puceny ingest', 'puceny search', or 'puceny merge'")
			return nil
		})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func logger() logx.Logger {
	if krait.GetBool(KeyVerbose) {
		return logx.NewStd()
	}
	return logx.Nop
}

func runIngest(args []string) error {
	source := krait.GetString("source")
	indexDir := krait.GetString(KeyIndexDir)

	count, err := ingest.BuildIndex(source, indexDir, ingest.BuildOptions{
		ChunkSize:    krait.GetInt(KeyChunkSize),
		ChunkOverlap: krait.GetInt(KeyChunkOverlap),
		Recursive:    krait.GetBool(KeyRecursive),
		Logger:       logger(),
	})
	if err != nil {
		return err
	}
	fmt.Printf("ingested %d documents into %s\n", count, indexDir)
	return nil
}

func runSearch(args []string) error {
	indexDir := krait.GetString(KeyIndexDir)
	terms := krait.GetStringSlice("term")
	if len(terms) == 0 {
		terms = args
	}
	if len(terms) == 0 {
		return fmt.Errorf("no query terms given (use --term or positional arguments)")
	}

	r, err := index.OpenReader(indexDir)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}

	az := analysis.New()
	op := search.ParseOperator(strings.ToUpper(krait.GetString(KeyOperator)))
	presenter := queryfront.New(r, az, "content")

	results := presenter.Present(search.New(terms, op))
	if len(results) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, res := range results {
		fmt.Println(queryfront.FormatSummary(res))
	}
	return nil
}

func runMerge(args []string) error {
	indexDir := krait.GetString(KeyIndexDir)
	segmentName := krait.GetString(KeyMergeSegment)

	m := merge.New(indexDir, merge.WithMergerLogger(logger()))
	if err := m.MergeAll(segmentName); err != nil {
		return fmt.Errorf("merging: %w", err)
	}
	fmt.Println("merge complete")
	return nil
}
