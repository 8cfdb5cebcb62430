// Package cli implements the docreview command tree. Each page-backed
// command names the app page it fronts and is admitted through the
// navigation guard before its request runs.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/bootstrap"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/guard"
)

var errNotLoggedIn = errors.New("not logged in, run `docreview login` first")

// CLI carries the wired app into command handlers.
type CLI struct {
	app *bootstrap.App
	out io.Writer
	in  io.Reader
}

// NewRootCommand builds the docreview command tree over the given app.
func NewRootCommand(app *bootstrap.App) *cobra.Command {
	c := &CLI{app: app, out: os.Stdout, in: os.Stdin}
	return c.rootCommand()
}

func (c *CLI) rootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "docreview",
		Short:         "Client for the document review service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				bootstrap.SetVerbose()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newWhoamiCmd(),
		c.newUploadCmd(),
		c.newHistoryCmd(),
		c.newResultCmd(),
		c.newStatusCmd(),
		c.newCriterionCmd(),
		c.newFixesCmd(),
		c.newDownloadCmd(),
		c.newAnalysisCmd(),
		c.newStatsCmd(),
		c.newAuthorCmd(),
		c.newAdminCmd(),
	)
	return root
}

// ensurePage admits the command through the navigation guard for the
// page it fronts.
func (c *CLI) ensurePage(path string) error {
	switch d := c.app.Guard.Evaluate(path); d.Action {
	case guard.ActionProceed:
		return nil
	case guard.ActionBlock:
		return fmt.Errorf("%s is served by the backend directly, use the download commands", path)
	default:
		if d.Target == "/login" {
			return errNotLoggedIn
		}
		return fmt.Errorf("current role has no access to %s (allowed pages start at %s)", path, d.Target)
	}
}

// requireLogin gates commands that talk to the backend but do not front
// a specific page, such as file downloads.
func (c *CLI) requireLogin() error {
	if !c.app.Session.Authenticated() {
		return errNotLoggedIn
	}
	return nil
}

// pageForRole picks the per-role variant of a page pair. Developer
// paths double as the default for admins, whose own pages are separate.
func (c *CLI) pageForRole(devPath, normControllerPath string) string {
	if role, ok := c.app.Session.CurrentRole(); ok && role == auth.RoleNormController {
		return normControllerPath
	}
	return devPath
}

func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func jsonDecodeReader(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}
