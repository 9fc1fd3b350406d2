package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show property details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			l, err := newAPIClient().GetProperty(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("getting property: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), l)
			}
			printListingSummary(cmd.OutOrStdout(), l)
			return nil
		},
	}
}

// parseID parses a positive numeric ID argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return id, nil
}
