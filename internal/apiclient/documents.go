package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/review"
)

// Upload submits a document for checking. The file travels as the
// multipart field "file".
func (c *Client) Upload(ctx context.Context, file io.Reader, filename string) (review.UploadResult, error) {
	return c.upload(ctx, file, filename, nil)
}

// SubmitFixes resubmits a corrected version of an existing document.
// fixedIDs lists the occurrence IDs the developer claims to have fixed.
func (c *Client) SubmitFixes(ctx context.Context, docID string, file io.Reader, filename string, fixedIDs []string) (review.UploadResult, error) {
	query := url.Values{}
	query.Set("doc_id", docID)
	query.Set("fixed_ids", strings.Join(fixedIDs, ","))
	return c.upload(ctx, file, filename, query)
}

func (c *Client) upload(ctx context.Context, file io.Reader, filename string, query url.Values) (review.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return review.UploadResult{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return review.UploadResult{}, fmt.Errorf("read upload payload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return review.UploadResult{}, err
	}

	header := http.Header{}
	header.Set("Content-Type", mw.FormDataContentType())

	var result review.UploadResult
	err = c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/upload",
		query:  query,
		header: header,
		body:   &buf,
	}, &result)
	return result, err
}

// Download fetches the original document as a byte blob.
func (c *Client) Download(ctx context.Context, docID string) ([]byte, error) {
	return c.doBlob(ctx, request{
		method: http.MethodGet,
		path:   "/download/" + url.PathEscape(docID),
	}, "Invalid response format for file download")
}

// DownloadAnnotated fetches the annotated rendition of a document.
func (c *Client) DownloadAnnotated(ctx context.Context, docID string) ([]byte, error) {
	return c.doBlob(ctx, request{
		method: http.MethodGet,
		path:   "/download_annotated/" + url.PathEscape(docID),
	}, "Invalid response format for annotated file download")
}

// DownloadFixed fetches the corrected PDF for one flagged occurrence.
func (c *Client) DownloadFixed(ctx context.Context, docID, occID string) ([]byte, error) {
	query := url.Values{}
	query.Set("occ_id", occID)
	return c.doBlob(ctx, request{
		method: http.MethodGet,
		path:   "/download_fixed/" + url.PathEscape(docID),
		query:  query,
	}, "Invalid response format for fixed PDF download")
}

// History retrieves the caller's check history.
func (c *Client) History(ctx context.Context) ([]review.HistoryItem, error) {
	var items []review.HistoryItem
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/history",
		header: jsonHeader(),
	}, &items)
	return items, err
}

// Result retrieves the detailed check report for one document.
func (c *Client) Result(ctx context.Context, docID string) (review.DetailedResult, error) {
	var result review.DetailedResult
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/result/" + url.PathEscape(docID),
		header: jsonHeader(),
	}, &result)
	return result, err
}

// SetStatus assigns a review verdict to a whole document.
func (c *Client) SetStatus(ctx context.Context, docID string, status review.DocumentStatus) (review.StatusUpdateResult, error) {
	query := url.Values{}
	query.Set("status", string(status))

	var result review.StatusUpdateResult
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/result/" + url.PathEscape(docID) + "/status",
		query:  query,
	}, &result)
	return result, err
}

// SetCriterionStatus assigns a verdict to one flagged occurrence. The
// comment travels only when non-empty.
func (c *Client) SetCriterionStatus(ctx context.Context, docID string, update review.CriterionStatusUpdate) (review.StatusUpdateResult, error) {
	query := url.Values{}
	query.Set("occ_id", update.OccurrenceID)
	query.Set("error_point", update.ErrorPoint)
	query.Set("status", string(update.Status))
	if update.Comment != "" {
		query.Set("comment", update.Comment)
	}

	var result review.StatusUpdateResult
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/result/" + url.PathEscape(docID) + "/criterion-status",
		query:  query,
	}, &result)
	return result, err
}
