package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/review"
)

// ProcessAnalysis retrieves the fix/review timing report for the given
// date range (YYYY-MM-DD bounds, inclusive).
func (c *Client) ProcessAnalysis(ctx context.Context, startDate, endDate string, includeSessions bool) (review.ProcessAnalysis, error) {
	query := url.Values{}
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)
	query.Set("include_sessions", strconv.FormatBool(includeSessions))

	var analysis review.ProcessAnalysis
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/process-analysis",
		query:  query,
		header: jsonHeader(),
	}, &analysis)
	return analysis, err
}

// ExportProcessAnalysisCSV fetches the timing report as a CSV blob.
func (c *Client) ExportProcessAnalysisCSV(ctx context.Context, startDate, endDate string) ([]byte, error) {
	query := url.Values{}
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	return c.doBlob(ctx, request{
		method: http.MethodGet,
		path:   "/export-process-analysis-csv",
		query:  query,
	}, "Invalid response format for CSV export")
}

// RequirementsStats retrieves the per-criterion violation statistics.
func (c *Client) RequirementsStats(ctx context.Context) (review.RequirementsStats, error) {
	var stats review.RequirementsStats
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/requirements-stats",
		header: jsonHeader(),
	}, &stats)
	return stats, err
}
