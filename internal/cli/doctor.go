package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/mdcombine/internal/core/manifest"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for working-directory validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the working directory before combining",
		Long: `Health check for the current working directory.

Validates:
- Anchor document (README.md) presence
- Numbered markdown files (NN-name.md / NN_name.md) census
- Numeric-prefix collisions (later name shadows earlier one)
- Markdown files that will be ignored by a combine run

Examples:
  mdcombine doctor          # Run full check
  mdcombine doctor --quiet  # Exit code only (0=ready, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}

			results := []CheckResult{
				checkAnchor(dir),
				checkNumberedFiles(dir),
				checkCollisions(dir),
				checkIgnoredMarkdown(dir),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				// Print compact table
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				// Print details for non-passing checks
				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. The combine run would fail in this directory.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("working directory validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkAnchor validates the mandatory anchor document
func checkAnchor(dir string) CheckResult {
	path := filepath.Join(dir, manifest.AnchorName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Anchor",
			Status:  "✗",
			Details: fmt.Sprintf("  %s not found in %s", manifest.AnchorName, dir),
		}
	}
	return CheckResult{Name: "Anchor", Status: "✓"}
}

// checkNumberedFiles counts the files a combine run would include
func checkNumberedFiles(dir string) CheckResult {
	index, _, err := indexDirectory(dir)
	if err != nil {
		return CheckResult{Name: "Numbered files", Status: "✗", Details: "  " + err.Error()}
	}
	if index.Len() == 0 {
		return CheckResult{
			Name:    "Numbered files",
			Status:  "⚠",
			Details: "  No numbered markdown files found; output would contain the anchor only",
		}
	}
	return CheckResult{Name: "Numbered files", Status: "✓"}
}

// checkCollisions surfaces numeric keys claimed by more than one file.
// The combine run itself stays silent about these: the name indexed last
// wins and the shadowed file never appears in the output.
func checkCollisions(dir string) CheckResult {
	index, _, err := indexDirectory(dir)
	if err != nil {
		return CheckResult{Name: "Collisions", Status: "✗", Details: "  " + err.Error()}
	}

	collisions := index.Collisions()
	if len(collisions) == 0 {
		return CheckResult{Name: "Collisions", Status: "✓"}
	}

	lines := make([]string, len(collisions))
	for i, c := range collisions {
		lines[i] = fmt.Sprintf("  key %d: %s shadows %s", c.Number, c.Winner, c.Shadowed)
	}
	return CheckResult{
		Name:    "Collisions",
		Status:  "⚠",
		Details: strings.Join(lines, "\n"),
	}
}

// checkIgnoredMarkdown lists candidate .md files that match no numeric
// prefix and would be silently left out
func checkIgnoredMarkdown(dir string) CheckResult {
	_, ignored, err := indexDirectory(dir)
	if err != nil {
		return CheckResult{Name: "Ignored markdown", Status: "✗", Details: "  " + err.Error()}
	}
	if len(ignored) == 0 {
		return CheckResult{Name: "Ignored markdown", Status: "✓"}
	}

	lines := make([]string, len(ignored))
	for i, name := range ignored {
		lines[i] = "  " + name
	}
	return CheckResult{
		Name:    "Ignored markdown",
		Status:  "⚠",
		Details: strings.Join(lines, "\n"),
	}
}

// indexDirectory builds the numeric index for dir and returns the candidate
// names that matched no numeric prefix.
func indexDirectory(dir string) (*manifest.Index, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %v", dir, err)
	}

	index := manifest.NewIndex()
	var ignored []string
	for _, entry := range entries {
		name := entry.Name()
		if !manifest.IsCandidate(name) {
			continue
		}
		if !index.Add(name) {
			ignored = append(ignored, name)
		}
	}
	return index, ignored, nil
}
