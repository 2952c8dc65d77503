package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archlint/archlint/internal/domain"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the shipped rule ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range domain.ValidRuleIDs {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
