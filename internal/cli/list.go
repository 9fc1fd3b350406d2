package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/rent-finder/internal/client"
)

func newListCmd() *cobra.Command {
	var opts client.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rental properties",
		Long:  "List the catalog, optionally narrowed to a city, a property type, or a search over title and location.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := newAPIClient().ListProperties(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("listing properties: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), listings)
			}
			return printListingTable(cmd.OutOrStdout(), listings)
		},
	}

	cmd.Flags().StringVar(&opts.City, "city", "", "city (Addis Ababa|Nairobi|Lagos)")
	cmd.Flags().StringVar(&opts.Type, "type", "", "property type (House|Apartment|Office|Retail|Studio|Warehouse|All)")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "search title and location")

	return cmd
}
