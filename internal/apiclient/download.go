package apiclient

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Download convenience helpers: fetch a blob and materialize it on disk.
// The blob lands in a temporary file first and is renamed into place only
// on success; the temporary file is removed unconditionally on any
// failure.

// SaveDownload fetches the original document and writes it to filename.
// An empty filename defaults to "document_<docID>".
func (c *Client) SaveDownload(ctx context.Context, docID, filename string) (string, error) {
	if filename == "" {
		filename = "document_" + docID
	}
	data, err := c.Download(ctx, docID)
	if err != nil {
		return "", err
	}
	return filename, writeFile(filename, data)
}

// SaveAnnotated fetches the annotated rendition and writes it to
// filename. An empty filename defaults to "annotated_<docID>".
func (c *Client) SaveAnnotated(ctx context.Context, docID, filename string) (string, error) {
	if filename == "" {
		filename = "annotated_" + docID
	}
	data, err := c.DownloadAnnotated(ctx, docID)
	if err != nil {
		return "", err
	}
	return filename, writeFile(filename, data)
}

// SaveFixed fetches the corrected PDF for one occurrence and writes it
// to filename. An empty filename defaults to "fixed_<docID>_<occID>.pdf".
func (c *Client) SaveFixed(ctx context.Context, docID, occID, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("fixed_%s_%s.pdf", docID, occID)
	}
	data, err := c.DownloadFixed(ctx, docID, occID)
	if err != nil {
		return "", err
	}
	return filename, writeFile(filename, data)
}

// SaveAnalysisCSV fetches the timing report CSV and writes it to
// filename. An empty filename defaults to
// "process-analysis_<start>_<end>.csv".
func (c *Client) SaveAnalysisCSV(ctx context.Context, startDate, endDate, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("process-analysis_%s_%s.csv", startDate, endDate)
	}
	data, err := c.ExportProcessAnalysisCSV(ctx, startDate, endDate)
	if err != nil {
		return "", err
	}
	return filename, writeFile(filename, data)
}

// writeFile writes data through a sibling temp file and renames it into
// place, so a failed write never leaves a truncated target behind.
func writeFile(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("finalize %s: %w", filename, err)
	}
	return nil
}
