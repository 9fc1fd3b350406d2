package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/rent-finder/internal/auth"
	"github.com/evcraddock/rent-finder/internal/client"
)

func newSignUpCmd() *cobra.Command {
	var name, email, server string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long:  "Create an account and store its session token. The password is read from standard input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			password, err := prompt(in, out, "Password: ")
			if err != nil {
				return err
			}
			confirm, err := prompt(in, out, "Confirm password: ")
			if err != nil {
				return err
			}

			c := client.New(serverOrDefault(server), "")
			sess, err := c.SignUp(cmd.Context(), auth.SignUpInput{
				FullName:        name,
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
			})
			if err != nil {
				return fmt.Errorf("signing up: %w", err)
			}

			if err := storeSession(sess.Token, server); err != nil {
				return err
			}

			fmt.Fprintf(out, "✓ Welcome, %s! You're signed in.\n", sess.User.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&server, "server", "", "server URL (default: from config or http://localhost:8080)")

	return cmd
}

func newSignInCmd() *cobra.Command {
	var email, server string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and store a session token",
		Long:  "Sign in with email and password. The password is read from standard input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}

			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			password, err := prompt(in, out, "Password: ")
			if err != nil {
				return err
			}

			c := client.New(serverOrDefault(server), "")
			sess, err := c.SignIn(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("signing in: %w", err)
			}

			if err := storeSession(sess.Token, server); err != nil {
				return err
			}

			fmt.Fprintln(out, "✓ Session saved. You're signed in!")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&server, "server", "", "server URL (default: from config or http://localhost:8080)")

	return cmd
}

func newSignOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "End the session and forget the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if getToken() != "" {
				if err := newAPIClient().SignOut(cmd.Context()); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: ending server session: %v\n", err)
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				cfg = CLIConfig{}
			}
			if cfg.Token == "" {
				fmt.Fprintln(out, "Not signed in.")
				return nil
			}

			cfg.Token = ""
			if err := saveConfig(cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}

			fmt.Fprintln(out, "✓ Signed out.")
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	var name, phone, avatar string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newAPIClient()

			var upd auth.ProfileUpdate
			if cmd.Flags().Changed("name") {
				upd.FullName = &name
			}
			if cmd.Flags().Changed("phone") {
				upd.Phone = &phone
			}
			if cmd.Flags().Changed("avatar") {
				upd.Avatar = &avatar
			}

			var (
				u   *auth.User
				err error
			)
			if upd.FullName != nil || upd.Phone != nil || upd.Avatar != nil {
				u, err = c.UpdateProfile(cmd.Context(), upd)
			} else {
				u, err = c.Profile(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("profile: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), u)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:   %s\n", u.FullName)
			fmt.Fprintf(out, "Email:  %s\n", u.Email)
			if u.Phone != "" {
				fmt.Fprintf(out, "Phone:  %s\n", u.Phone)
			}
			if u.Avatar != "" {
				fmt.Fprintf(out, "Avatar: %s\n", u.Avatar)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new full name")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone number")
	cmd.Flags().StringVar(&avatar, "avatar", "", "new avatar URL")

	return cmd
}

// prompt writes label and reads one trimmed line.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func serverOrDefault(server string) string {
	if server != "" {
		return server
	}
	return getServerURL()
}

// storeSession saves token, and server when given, to the CLI config.
func storeSession(token, server string) error {
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	cfg.Token = token
	if server != "" {
		cfg.ServerURL = server
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
