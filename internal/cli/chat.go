package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newChatsCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "chats",
		Short: "List conversations with sellers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			convs, err := newAPIClient().ListConversations(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("listing conversations: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), convs)
			}
			return printConversationTable(cmd.OutOrStdout(), convs)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by seller name")

	return cmd
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <id>",
		Short: "Show a conversation",
		Long:  "Show every message in a conversation and mark it read.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			conv, err := newAPIClient().GetConversation(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("getting conversation: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), conv)
			}
			printThread(cmd.OutOrStdout(), conv)
			return nil
		},
	}
}

func newContactCmd() *cobra.Command {
	var seller string

	cmd := &cobra.Command{
		Use:   "contact <property-id>",
		Short: "Start a conversation about a property",
		Long:  "Open the conversation with a property's seller, creating it on first contact.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			conv, err := newAPIClient().OpenConversation(cmd.Context(), id, seller)
			if err != nil {
				return fmt.Errorf("opening conversation: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), conv)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Conversation #%d with %s is open.\n", conv.ID, conv.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Send a message with: rf send %d <text>\n", conv.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&seller, "seller", "", "seller name shown in the inbox")

	return cmd
}

func newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <id> <text...>",
		Short: "Send a message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			m, err := newAPIClient().SendMessage(cmd.Context(), id, joinArgs(args[1:]))
			if err != nil {
				return fmt.Errorf("sending message: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), m)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent to conversation #%d.\n  %s\n", id, m.Text)
			return nil
		},
	}
}
