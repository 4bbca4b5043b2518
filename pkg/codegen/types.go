package codegen

import "time"

// Request describes one generation job. Source may carry the schema
// text directly; when nil it is read from Path. Path is always used
// for error positions.
type Request struct {
	ID     string
	Path   string
	Source []byte
}

// GeneratedFile represents a single generated file.
type GeneratedFile struct {
	Path    string // Relative slash-separated path within output directory
	Content []byte
	Size    int64
}

// Result represents the outcome of a generation job.
type Result struct {
	ID       string
	Files    []GeneratedFile
	CacheHit bool
	Duration time.Duration
}
