// Package cli wires the cobra command surface around the extraction pipeline.
// Commands call the pipeline as a library; no extraction logic lives here.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testscout",
		Short: "Discover and describe test methods in a source tree",
		Long: `testscout statically discovers test methods in a repository,
extracts a bounded code window around each one, and produces a structured
summary of counts, locations, and per-test purpose descriptions.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newMenuCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command. It is called once by main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
