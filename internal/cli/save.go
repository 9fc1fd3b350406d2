package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <id>",
		Short: "Save or unsave a property",
		Long:  "Toggle a property in the saved list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			saved, err := newAPIClient().ToggleSaved(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("saving property: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{"id": id, "saved": saved})
			}
			if saved {
				fmt.Fprintf(cmd.OutOrStdout(), "Property #%d saved.\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Property #%d removed from saved.\n", id)
			}
			return nil
		},
	}
}

func newSavedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List saved properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := newAPIClient().ListSaved(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing saved properties: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), listings)
			}
			return printListingTable(cmd.OutOrStdout(), listings)
		},
	}
}
