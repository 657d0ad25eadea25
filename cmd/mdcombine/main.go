package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/mdcombine/internal/cli"
	"github.com/example/mdcombine/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "mdcombine",
		Short:   "Combine numbered markdown docs into a single document",
		Version: version.String(),
		Long: `mdcombine concatenates README.md with the numbered markdown files
(01-name.md, 02-name.md, ...) found in the current working directory into a
single MastraCombined.md, in ascending numeric order.

Invoked bare it runs the combine; nothing else is required.`,
		RunE:          cli.RunCombine,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
