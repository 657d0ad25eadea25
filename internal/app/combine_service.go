package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/example/mdcombine/internal/core/manifest"
	"github.com/example/mdcombine/internal/ports/primary"
	"github.com/example/mdcombine/internal/ports/secondary"
)

// CombineServiceImpl implements the CombineService interface.
type CombineServiceImpl struct {
	store    secondary.DocumentStore
	progress secondary.ProgressLogger
}

// NewCombineService creates a new CombineService with injected dependencies.
func NewCombineService(store secondary.DocumentStore, progress secondary.ProgressLogger) *CombineServiceImpl {
	return &CombineServiceImpl{
		store:    store,
		progress: progress,
	}
}

// Combine assembles the anchor document and the numbered markdown files in
// req.WorkingDir into the combined output artifact.
//
// Failure to resolve or read the anchor is fatal and nothing is written.
// Per-file read failures are recoverable: the file is skipped, the run
// continues. Failure to write the output is fatal and the accumulated
// content is lost; the write is not atomic, so a prior artifact may survive
// unchanged or not at all.
func (s *CombineServiceImpl) Combine(ctx context.Context, req primary.CombineRequest) (*primary.CombineReport, error) {
	dir := req.WorkingDir

	// Resolve anchor
	anchorPath := filepath.Join(dir, manifest.AnchorName)
	exists, err := s.store.FileExists(ctx, anchorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check for %s: %w", manifest.AnchorName, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s not found in %s", manifest.AnchorName, dir)
	}

	// Read anchor and seed the accumulator
	anchor, err := s.store.ReadDocument(ctx, anchorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", manifest.AnchorName, err)
	}
	var combined strings.Builder
	combined.WriteString(anchor)
	combined.WriteString("\n\n")
	s.progress.AnchorRead(manifest.AnchorName)

	processed := []string{manifest.AnchorName}

	// Enumerate candidates and index by numeric prefix. Non-matching
	// candidates are skipped silently; key collisions keep the name
	// indexed last.
	names, err := s.store.ListNames(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	index := manifest.NewIndex()
	for _, name := range names {
		if !manifest.IsCandidate(name) {
			continue
		}
		index.Add(name)
	}

	// Append numbered files in ascending key order
	var skipped []primary.SkippedFile
	for _, entry := range index.Ordered() {
		content, err := s.store.ReadDocument(ctx, filepath.Join(dir, entry.Name))
		if err != nil {
			s.progress.FileSkipped(entry.Name, err)
			skipped = append(skipped, primary.SkippedFile{Name: entry.Name, Reason: err.Error()})
			continue
		}
		combined.WriteString(manifest.FileBlock(entry.Name, content))
		processed = append(processed, entry.Name)
		s.progress.FileAdded(entry.Name)
	}

	// Write the artifact, then stat it for the report
	outputPath := filepath.Join(dir, manifest.OutputName)
	if err := s.store.WriteDocument(ctx, outputPath, combined.String()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", manifest.OutputName, err)
	}
	size, err := s.store.FileSize(ctx, outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", manifest.OutputName, err)
	}

	return &primary.CombineReport{
		OutputPath:     outputPath,
		SizeBytes:      size,
		ProcessedFiles: processed,
		SkippedFiles:   skipped,
	}, nil
}
