package primary

import "context"

// CombineService defines the primary port for document combination.
type CombineService interface {
	// Combine assembles the anchor document and the numbered markdown files
	// found in the working directory into the combined output artifact.
	// A returned error means the run failed before an output file was
	// written (missing/unreadable anchor) or while writing it; per-file
	// read failures do not fail the run and surface on the report instead.
	Combine(ctx context.Context, req CombineRequest) (*CombineReport, error)
}

// CombineRequest contains parameters for a combine run.
type CombineRequest struct {
	// WorkingDir is the directory scanned for the anchor and numbered
	// files, and the directory the output artifact is written into.
	WorkingDir string
}

// CombineReport contains the result of a successful combine run.
type CombineReport struct {
	// OutputPath is the absolute path of the written artifact.
	OutputPath string

	// SizeBytes is the size of the written artifact.
	SizeBytes int64

	// ProcessedFiles lists the emitted file names in document order:
	// the anchor first, then numbered files ascending by key.
	ProcessedFiles []string

	// SkippedFiles lists numbered files that matched the pattern but could
	// not be read. They are absent from the document and from
	// ProcessedFiles.
	SkippedFiles []SkippedFile
}

// SkippedFile records a numbered file left out of the document because it
// could not be read.
type SkippedFile struct {
	Name   string
	Reason string
}
