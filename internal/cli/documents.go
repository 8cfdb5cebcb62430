package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/review"
)

func (c *CLI) newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Submit a document for checking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensurePage("/"); err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := c.app.Client.Upload(cmd.Context(), f, filepath.Base(args[0]))
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
}

func (c *CLI) newFixesCmd() *cobra.Command {
	var fixedIDs []string

	cmd := &cobra.Command{
		Use:   "fixes <doc-id> <file>",
		Short: "Upload a corrected version of a checked document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensurePage("/result/" + args[0]); err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := c.app.Client.SubmitFixes(cmd.Context(), args[0], f, filepath.Base(args[1]), fixedIDs)
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
	cmd.Flags().StringSliceVar(&fixedIDs, "fixed", nil, "occurrence ids marked as fixed in this version")
	return cmd
}

func (c *CLI) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List checked documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := c.pageForRole("/history", "/history/norm-controller")
			if err := c.ensurePage(page); err != nil {
				return err
			}
			items, err := c.app.Client.History(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(items)
		},
	}
}

func (c *CLI) newResultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "result <doc-id>",
		Short: "Show the full check report for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := c.pageForRole("/result/"+args[0], "/result/norm-controller/"+args[0])
			if err := c.ensurePage(page); err != nil {
				return err
			}
			result, err := c.app.Client.Result(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <doc-id> <approved|rejected|removed>",
		Short: "Set the overall verdict on a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := review.ParseDocumentStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown document status %q", args[1])
			}
			page := c.pageForRole("/result/"+args[0], "/result/norm-controller/"+args[0])
			if err := c.ensurePage(page); err != nil {
				return err
			}
			result, err := c.app.Client.SetStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
}

func (c *CLI) newCriterionCmd() *cobra.Command {
	var (
		occID      string
		errorPoint string
		comment    string
	)

	cmd := &cobra.Command{
		Use:   "criterion <doc-id> <fixed|rejected>",
		Short: "Set the verdict on one flagged occurrence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := review.ParseCriterionStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown criterion status %q", args[1])
			}
			page := c.pageForRole("/result/"+args[0], "/result/norm-controller/"+args[0])
			if err := c.ensurePage(page); err != nil {
				return err
			}
			result, err := c.app.Client.SetCriterionStatus(cmd.Context(), args[0], review.CriterionStatusUpdate{
				OccurrenceID: occID,
				ErrorPoint:   errorPoint,
				Status:       status,
				Comment:      strings.TrimSpace(comment),
			})
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
	cmd.Flags().StringVar(&occID, "occ-id", "", "occurrence id within the document")
	cmd.Flags().StringVar(&errorPoint, "error-point", "", "requirement point the occurrence violates")
	cmd.Flags().StringVar(&comment, "comment", "", "reviewer comment attached to the verdict")
	_ = cmd.MarkFlagRequired("occ-id")
	_ = cmd.MarkFlagRequired("error-point")
	return cmd
}

func (c *CLI) newDownloadCmd() *cobra.Command {
	var (
		annotated bool
		fixed     bool
		occID     string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "download <doc-id>",
		Short: "Download a document rendition to disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireLogin(); err != nil {
				return err
			}
			if annotated && fixed {
				return fmt.Errorf("--annotated and --fixed are mutually exclusive")
			}

			var (
				path string
				err  error
			)
			switch {
			case fixed:
				if occID == "" {
					return fmt.Errorf("--fixed requires --occ-id")
				}
				path, err = c.app.Client.SaveFixed(cmd.Context(), args[0], occID, out)
			case annotated:
				path, err = c.app.Client.SaveAnnotated(cmd.Context(), args[0], out)
			default:
				path, err = c.app.Client.SaveDownload(cmd.Context(), args[0], out)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&annotated, "annotated", false, "download the annotated rendition")
	cmd.Flags().BoolVar(&fixed, "fixed", false, "download the fixed PDF for one occurrence")
	cmd.Flags().StringVar(&occID, "occ-id", "", "occurrence id, required with --fixed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output filename (derived from the document when omitted)")
	return cmd
}
