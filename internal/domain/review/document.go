package review

// Package review contains the document-review payload types exchanged with
// the backend. Field names and JSON tags mirror the server's wire format.

import "strings"

// DocumentStatus is the review verdict a norm controller assigns to a
// whole document.
type DocumentStatus string

const (
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
	DocumentRemoved  DocumentStatus = "removed"
)

// Valid reports whether the document status is supported.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentApproved, DocumentRejected, DocumentRemoved:
		return true
	default:
		return false
	}
}

// ParseDocumentStatus normalizes a status string and reports whether it is supported.
func ParseDocumentStatus(value string) (DocumentStatus, bool) {
	s := DocumentStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// CriterionStatus is the per-criterion verdict on a single flagged
// occurrence inside a document.
type CriterionStatus string

const (
	CriterionFixed    CriterionStatus = "fixed"
	CriterionRejected CriterionStatus = "rejected"
)

// Valid reports whether the criterion status is supported.
func (s CriterionStatus) Valid() bool {
	switch s {
	case CriterionFixed, CriterionRejected:
		return true
	default:
		return false
	}
}

// ParseCriterionStatus normalizes a criterion status string and reports whether it is supported.
func ParseCriterionStatus(value string) (CriterionStatus, bool) {
	s := CriterionStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// CriterionStatusUpdate carries a per-criterion verdict. Comment is
// optional; it is sent to the server only when non-empty.
type CriterionStatusUpdate struct {
	OccurrenceID string
	ErrorPoint   string
	Status       CriterionStatus
	Comment      string
}

// UploadResult is the server's acknowledgement of a document upload.
type UploadResult struct {
	DocID      string `json:"doc_id"`
	Filename   string `json:"filename"`
	UploadDate string `json:"upload_date"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
}

// HistoryItem is one row of a user's check history.
type HistoryItem struct {
	ID               int            `json:"id"`
	Filename         string         `json:"filename"`
	UploadDate       string         `json:"upload_date"`
	TotalViolations  int            `json:"total_violations"`
	ErrorCounts      map[string]int `json:"error_counts"`
	Status           string         `json:"status"`
	ProcessingStatus string         `json:"processing_status,omitempty"`
	StatusAuthor     string         `json:"status_author,omitempty"`
	DeveloperLogin   string         `json:"developer_login,omitempty"`
	DeveloperName    string         `json:"developer_full_name,omitempty"`
}

// DetailedResult is the full check report for a single document.
type DetailedResult struct {
	ID              string         `json:"id"`
	Filename        string         `json:"filename"`
	UploadDate      string         `json:"upload_date"`
	ErrorPoints     []string       `json:"error_points"`
	ErrorCounts     map[string]int `json:"error_counts"`
	TotalViolations int            `json:"total_violations"`
	FullReport      string         `json:"full_report"`
}

// StatusUpdateResult acknowledges a document or criterion status change.
type StatusUpdateResult struct {
	Message   string `json:"message"`
	NewStatus string `json:"new_status"`
}
