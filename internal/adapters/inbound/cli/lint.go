package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archlint/archlint/internal/adapters/outbound/config"
	"github.com/archlint/archlint/internal/adapters/outbound/gitinfo"
	"github.com/archlint/archlint/internal/adapters/outbound/parser"
	"github.com/archlint/archlint/internal/adapters/outbound/report"
	"github.com/archlint/archlint/internal/adapters/outbound/scanner"
	"github.com/archlint/archlint/internal/application"
	"github.com/archlint/archlint/internal/domain"
)

func newLintCmd() *cobra.Command {
	var (
		jsonOutput bool
		failOn     string
	)

	cmd := &cobra.Command{
		Use:   "lint [path]",
		Short: "Run all configured rules over a repository",
		Long:  "Scan the repository, run every enabled architectural rule, and print the resulting violations. Exit code 1 when any issue at or above --fail-on is found.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rootDir := "."
			if len(args) == 1 {
				rootDir = args[0]
			}

			threshold, err := domain.ParseSeverity(failOn)
			if err != nil {
				return fmt.Errorf("--fail-on: %w", err)
			}

			svc := newLintService()
			result, err := svc.LintRepository(cmd.Context(), rootDir)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := report.WriteJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), report.RenderReport(result))
			}

			if result.HasIssueAtOrAbove(threshold) {
				return fmt.Errorf("found issues at or above severity %q", threshold)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringVar(&failOn, "fail-on", "error", "Minimum severity that fails the run (info, warning, error, critical)")

	return cmd
}

// newLintService wires the standard set of outbound adapters.
func newLintService() *application.LintService {
	return application.NewLintService(
		scanner.New(),
		parser.New(),
		config.New(),
		gitinfo.New(),
	)
}
