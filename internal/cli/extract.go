package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/testscout/core/internal/config"
	"github.com/testscout/core/internal/report"
	"github.com/testscout/core/pkg/extract"
)

type extractFlags struct {
	pattern string
	filter  string
	output  string
	workers int
	noJSON  bool
}

func newExtractCmd() *cobra.Command {
	flags := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "extract [path]",
		Short: "Extract and summarize test methods from a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			} else {
				root = promptPath(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
			}
			if strings.TrimSpace(root) == "" {
				// An empty path is a message plus a clean exit, not a usage
				// failure.
				fmt.Fprintln(cmd.OutOrStdout(), "Repository path cannot be empty")
				return nil
			}

			return runExtract(cmd, flags, root)
		},
	}

	cmd.Flags().StringVar(&flags.pattern, "pattern", "", "extension pattern (e.g. \"*.py\"); overrides config")
	cmd.Flags().StringVar(&flags.filter, "filter", "", "line-level keyword pattern; overrides config")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "directory for the JSON artifact; overrides config")
	cmd.Flags().IntVar(&flags.workers, "workers", -1, "concurrent file analyzers; overrides config")
	cmd.Flags().BoolVar(&flags.noJSON, "no-json", false, "skip writing the JSON artifact")

	return cmd
}

func runExtract(cmd *cobra.Command, flags *extractFlags, root string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if flags.pattern != "" {
		cfg.Extract.Pattern = flags.pattern
	}
	if flags.filter != "" {
		cfg.Extract.FilterPattern = flags.filter
	}
	if flags.workers >= 0 {
		cfg.Extract.Workers = flags.workers
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.noJSON {
		cfg.Output.JSON = false
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Analyzing repository: %s\n", root)

	result, err := extract.Extract(cmd.Context(), root, cfg.ExtractOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %d matching files\n\n", result.Stats.FilesScanned)
	fmt.Fprint(cmd.OutOrStdout(), report.Render(result))

	if cfg.Output.JSON {
		path, err := report.WriteJSON(cfg.Output.Dir, result.Result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Structured results saved to: %s\n", path)
	}

	return nil
}

func promptPath(reader *bufio.Reader, out io.Writer) string {
	fmt.Fprint(out, "Enter repository path: ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
