package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/review"
)

func (c *CLI) newAnalysisCmd() *cobra.Command {
	var (
		start           string
		end             string
		includeSessions bool
		exportCSV       bool
		out             string
	)

	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Show fix/review timing analysis over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := c.pageForRole("/process-analysis", "/process-analysis/norm-controller")
			if err := c.ensurePage(page); err != nil {
				return err
			}

			if exportCSV {
				path, err := c.app.Client.SaveAnalysisCSV(cmd.Context(), start, end, out)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, path)
				return nil
			}

			report, err := c.app.Client.ProcessAnalysis(cmd.Context(), start, end, includeSessions)
			if err != nil {
				return err
			}
			return c.printJSON(report)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "range start, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "range end, YYYY-MM-DD")
	cmd.Flags().BoolVar(&includeSessions, "include-sessions", false, "include per-occurrence sessions in the report")
	cmd.Flags().BoolVar(&exportCSV, "export-csv", false, "save the report as CSV instead of printing it")
	cmd.Flags().StringVarP(&out, "out", "o", "", "CSV output filename, used with --export-csv")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show violation statistics per requirement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := c.pageForRole("/statistics-on-comments", "/statistics-on-comments/norm-controller")
			if err := c.ensurePage(page); err != nil {
				return err
			}
			stats, err := c.app.Client.RequirementsStats(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(stats)
		},
	}
}

func (c *CLI) newAuthorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "author <name>",
		Short: "Show the check history of one developer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensurePage("/analysis/author/" + args[0]); err != nil {
				return err
			}
			items, err := c.app.Client.History(cmd.Context())
			if err != nil {
				return err
			}

			name := strings.ToLower(args[0])
			matched := make([]review.HistoryItem, 0, len(items))
			for _, item := range items {
				if strings.ToLower(item.DeveloperName) == name || strings.ToLower(item.DeveloperLogin) == name {
					matched = append(matched, item)
				}
			}
			return c.printJSON(matched)
		},
	}
}
