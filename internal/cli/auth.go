package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/guard"
)

func (c *CLI) newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Authenticate against the review backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if d := c.app.Guard.Evaluate("/login"); d.Action == guard.ActionRedirect {
				user, _ := c.app.Session.CurrentUser()
				return fmt.Errorf("already logged in as %s, run `docreview logout` first", user.Login)
			}

			if password == "" {
				fmt.Fprint(c.out, "Password: ")
				line, err := bufio.NewReader(c.in).ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			profile, err := c.app.Client.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if err := c.app.Session.Login(profile); err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Logged in as %s (%s). Start page: %s\n",
				profile.DisplayName(), profile.Role, profile.Role.DefaultLanding())
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func (c *CLI) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored credential and session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.app.Session.Logout()
			fmt.Fprintln(c.out, "Logged out.")
			return nil
		},
	}
}

func (c *CLI) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := c.app.Session.CurrentUser()
			if !ok {
				return errNotLoggedIn
			}
			return c.printJSON(user)
		},
	}
}
