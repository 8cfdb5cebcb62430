package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/review"
)

func (c *CLI) newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer user accounts and the work calendar",
	}
	cmd.AddCommand(
		c.newAdminUsersCmd(),
		c.newAdminCreateCmd(),
		c.newAdminWorktimeCmd(),
	)
	return cmd
}

func (c *CLI) newAdminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensurePage("/admin"); err != nil {
				return err
			}
			listing, err := c.app.Client.AdminUsers(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(listing)
		},
	}
}

func (c *CLI) newAdminCreateCmd() *cobra.Command {
	var (
		password string
		role     string
		fullName string
	)

	cmd := &cobra.Command{
		Use:   "create <login>",
		Short: "Register a new user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensurePage("/admin"); err != nil {
				return err
			}
			result, err := c.app.Client.CreateUser(cmd.Context(), review.CreateUserInput{
				Login:    args[0],
				Password: password,
				Role:     auth.Role(role),
				FullName: fullName,
			})
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "initial password")
	cmd.Flags().StringVar(&role, "role", string(auth.RoleDeveloper), "account role: developer, norm_controller, or admin")
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *CLI) newAdminWorktimeCmd() *cobra.Command {
	var (
		holidays string
		set      bool
	)

	cmd := &cobra.Command{
		Use:   "worktime",
		Short: "Show or update the work calendar",
		Long: `Show the work calendar used for fix/review duration accounting.

With --set, read the full calendar as JSON from stdin and replace the
stored one. --holidays replaces only the holiday list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensurePage("/admin"); err != nil {
				return err
			}

			switch {
			case set:
				var settings review.WorktimeSettings
				if err := jsonDecodeReader(c.in, &settings); err != nil {
					return fmt.Errorf("read calendar from stdin: %w", err)
				}
				saved, err := c.app.Client.SetWorktimeSettings(cmd.Context(), settings)
				if err != nil {
					return err
				}
				return c.printJSON(saved)

			case cmd.Flags().Changed("holidays"):
				settings, err := c.app.Client.WorktimeSettings(cmd.Context())
				if err != nil {
					return err
				}
				settings.Holidays = holidays
				saved, err := c.app.Client.SetWorktimeSettings(cmd.Context(), settings)
				if err != nil {
					return err
				}
				return c.printJSON(saved)

			default:
				settings, err := c.app.Client.WorktimeSettings(cmd.Context())
				if err != nil {
					return err
				}
				return c.printJSON(settings)
			}
		},
	}
	cmd.Flags().BoolVar(&set, "set", false, "replace the calendar with JSON read from stdin")
	cmd.Flags().StringVar(&holidays, "holidays", "", "replace the holiday list (comma-separated YYYY-MM-DD)")
	return cmd
}
