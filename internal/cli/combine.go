package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/mdcombine/internal/core/manifest"
	"github.com/example/mdcombine/internal/ports/primary"
	"github.com/example/mdcombine/internal/wire"
)

// RunCombine backs the bare root invocation: it combines the current
// working directory and prints the summary report. Any fatal outcome is
// returned as an error so the entry point maps it to a non-zero exit.
func RunCombine(cmd *cobra.Command, args []string) error {
	fmt.Println("Mastra Documentation Combiner")
	fmt.Println("----------------------------")
	fmt.Println("Starting documentation combination process...")

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	report, err := wire.CombineService().Combine(cmd.Context(), primary.CombineRequest{
		WorkingDir: dir,
	})
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

// printReport prints the post-run summary: artifact location, size with
// KB/MB views, processed count, and the emission order.
func printReport(report *primary.CombineReport) {
	size := manifest.Size{Bytes: report.SizeBytes}

	fmt.Println()
	fmt.Printf("%s Combination complete!\n", color.New(color.FgGreen).Sprint("✓"))
	fmt.Printf("Combined document created at: %s\n", report.OutputPath)
	fmt.Printf("Document size: %s\n", size)
	fmt.Printf("Total files processed: %d\n", len(report.ProcessedFiles))
	fmt.Println("Files included in order:")
	for _, name := range report.ProcessedFiles {
		fmt.Printf("  - %s\n", name)
	}

	if len(report.SkippedFiles) > 0 {
		fmt.Printf("%s %d file(s) skipped due to read errors:\n", color.New(color.FgYellow).Sprint("⚠"), len(report.SkippedFiles))
		for _, skipped := range report.SkippedFiles {
			fmt.Printf("  - %s (%s)\n", skipped.Name, skipped.Reason)
		}
	}
}
