// Package cli defines the cobra command tree for rent-finder.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/rent-finder/internal/client"
	"github.com/evcraddock/rent-finder/internal/db"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rf",
		Short:         "Browse and list rental properties",
		Long:          "A tool to browse rentals in Addis Ababa, Nairobi and Lagos. Search and save listings, publish your own, and chat with sellers via CLI or the JSON API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/rf/rentals.db)")

	root.AddCommand(
		newServeCmd(),
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newSaveCmd(),
		newSavedCmd(),
		newCitiesCmd(),
		newPriceCmd(),
		newChatsCmd(),
		newChatCmd(),
		newContactCmd(),
		newSendCmd(),
		newSignUpCmd(),
		newSignInCmd(),
		newSignOutCmd(),
		newProfileCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database named by the --db flag, then fallback,
// then the default path.
func openDB(fallback string) (*sql.DB, error) {
	configured := flagDB
	if configured == "" {
		configured = fallback
	}
	path, err := db.Path(configured)
	if err != nil {
		return nil, err
	}
	return db.Open(path)
}

// newAPIClient creates an HTTP client for the rent-finder API.
func newAPIClient() *client.Client {
	return client.New(getServerURL(), getToken())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
