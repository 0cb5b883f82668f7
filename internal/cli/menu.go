package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu for repeated extraction runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			fmt.Fprintln(out, "testscout - test extraction")
			fmt.Fprintln(out, strings.Repeat("=", 40))

			for {
				fmt.Fprintln(out, "\nOptions:")
				fmt.Fprintln(out, "1. Extract tests from repository")
				fmt.Fprintln(out, "2. Exit")
				fmt.Fprint(out, "\nSelect option (1-2): ")

				line, err := reader.ReadString('\n')
				choice := strings.TrimSpace(line)
				if err != nil && choice == "" {
					return nil
				}

				switch choice {
				case "1":
					root := promptPath(reader, out)
					if root == "" {
						fmt.Fprintln(out, "Repository path cannot be empty")
						continue
					}
					if runErr := runExtract(cmd, &extractFlags{workers: -1}, root); runErr != nil {
						fmt.Fprintf(out, "Analysis failed: %v\n", runErr)
					}
				case "2":
					fmt.Fprintln(out, "Goodbye!")
					return nil
				default:
					fmt.Fprintln(out, "Invalid option. Please select 1 or 2.")
				}
			}
		},
	}

	return cmd
}
