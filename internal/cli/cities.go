package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/evcraddock/rent-finder/internal/property"
)

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List cities and their currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cities, err := newAPIClient().Cities(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing cities: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), cities)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CITY\tCURRENCY\tLISTINGS")
			for _, c := range cities {
				currency := c.Currency
				if currency == "" {
					currency = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\n", c.Name, currency, c.Count)
			}
			return w.Flush()
		},
	}
}

func newPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price <amount> <city...>",
		Short: "Format an amount in a city's currency",
		Long:  `Format an amount the way listings show it, e.g. "rf price 20000 Addis Ababa" prints "ETB 20,000".`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			city := joinArgs(args[1:])
			if c, ok := property.ParseCity(city); ok {
				city = string(c)
			}
			formatted := property.FormatCurrency(args[0], city)

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]string{"formatted": formatted})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}
}
