package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/evcraddock/rent-finder/internal/chat"
	"github.com/evcraddock/rent-finder/internal/client"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printListingSummary prints a single listing in text format.
func printListingSummary(w io.Writer, l *client.Listing) {
	fmt.Fprintf(w, "Property #%d\n", l.ID)
	fmt.Fprintf(w, "  Title:    %s\n", l.Title)
	fmt.Fprintf(w, "  Location: %s\n", l.Location)
	fmt.Fprintf(w, "  City:     %s\n", l.City)
	fmt.Fprintf(w, "  Type:     %s\n", l.Type)
	fmt.Fprintf(w, "  Price:    %s%s\n", l.PriceLabel, l.Period)
	if l.Bedrooms != "" {
		fmt.Fprintf(w, "  Beds:     %s\n", l.Bedrooms)
	}
	if l.Area != "" {
		fmt.Fprintf(w, "  Area:     %s\n", l.Area)
	}
	if l.Coords.Lat != 0 || l.Coords.Lng != 0 {
		fmt.Fprintf(w, "  Coords:   %.4f, %.4f\n", l.Coords.Lat, l.Coords.Lng)
	}
	if len(l.Images) > 0 {
		fmt.Fprintf(w, "  Images:   %d\n", len(l.Images))
	}
	if l.Saved {
		fmt.Fprintln(w, "  Saved:    yes")
	}
	if l.Description != "" {
		fmt.Fprintf(w, "\n  %s\n", l.Description)
	}
}

// printListingTable prints listings as a formatted table.
func printListingTable(out io.Writer, listings []client.Listing) error {
	if len(listings) == 0 {
		fmt.Fprintln(out, "No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tCITY\tTYPE\tPRICE\tBEDS\tSAVED"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t----\t----\t-----\t----\t-----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, l := range listings {
		beds := "-"
		if l.Bedrooms != "" {
			beds = l.Bedrooms
		}
		saved := ""
		if l.Saved {
			saved = "♥"
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, truncate(l.Title, 32), l.City, l.Type, l.PriceLabel, beds, saved); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Fprintf(out, "\nTotal: %d properties\n", len(listings))
	return nil
}

// printConversationTable prints the inbox.
func printConversationTable(out io.Writer, convs []chat.Summary) error {
	if len(convs) == 0 {
		fmt.Fprintln(out, "No conversations.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tUNREAD\tLAST MESSAGE\tWHEN"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, c := range convs {
		name := c.Name
		if c.Online {
			name += " •"
		}
		unread := "-"
		if c.Unread > 0 {
			unread = fmt.Sprintf("%d", c.Unread)
		}
		when := "-"
		if !c.LastAt.IsZero() {
			when = c.LastAt.Local().Format("2006-01-02 15:04")
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			c.ID, name, unread, truncate(c.LastMessage, 40), when); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printThread prints a conversation's messages, oldest first.
func printThread(w io.Writer, c *chat.Conversation) {
	fmt.Fprintf(w, "Conversation #%d with %s\n\n", c.ID, c.Name)
	if len(c.Messages) == 0 {
		fmt.Fprintln(w, "No messages yet.")
		return
	}

	for _, m := range c.Messages {
		from := c.Name
		if m.FromMe {
			from = "me"
		}
		fmt.Fprintf(w, "[%s] %s\n  %s\n\n", m.SentAt.Local().Format("2006-01-02 15:04"), from, m.Text)
	}
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// joinArgs joins positional arguments into one string.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
