package main

// Config keys for krait/viper.
const (
	KeyIndexDir     = "index.dir"
	KeyChunkSize    = "ingest.chunk-size"
	KeyChunkOverlap = "ingest.chunk-overlap"
	KeyOperator     = "search.operator"
	KeyMergeSegment = "merge.segment-name"
	KeyRecursive    = "ingest.recursive"
	KeyVerbose      = "verbose"
)

// Default configuration values.
const (
	DefaultIndexDir     = "./.puceny-index"
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 100
	DefaultOperator     = "OR"
	DefaultMergeSegment = "merged_segment"
)
