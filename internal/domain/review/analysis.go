package review

// ProcessSession is one detect-fix-review cycle for a single flagged
// occurrence, as reconstructed by the server's process analysis.
type ProcessSession struct {
	PrevVersionID         int     `json:"prev_version_id"`
	CurrVersionID         int     `json:"curr_version_id"`
	DetectAt              string  `json:"detect_at"`
	FixedAt               string  `json:"fixed_at"`
	ReviewAt              string  `json:"review_at"`
	FixDuration           float64 `json:"fix_duration"`
	ReviewDuration        float64 `json:"review_duration"`
	FixDurationMinutes    float64 `json:"fix_duration_minutes"`
	ReviewDurationMinutes float64 `json:"review_duration_minutes"`
	FixDurationHours      float64 `json:"fix_duration_hours"`
	ReviewDurationHours   float64 `json:"review_duration_hours"`
	ErrorPoint            string  `json:"error_point"`
	OccurrenceID          string  `json:"occ_id"`
	Outcome               string  `json:"outcome"`
}

// ProcessDocument aggregates the fix/review durations of one document
// across all of its versions.
type ProcessDocument struct {
	DocID                 string           `json:"doc_id"`
	Filename              string           `json:"filename"`
	UploadDate            string           `json:"upload_date"`
	FixDuration           float64          `json:"fix_duration"`
	ReviewDuration        float64          `json:"review_duration"`
	FixDurationMinutes    float64          `json:"fix_duration_minutes"`
	ReviewDurationMinutes float64          `json:"review_duration_minutes"`
	FixDurationHours      float64          `json:"fix_duration_hours"`
	ReviewDurationHours   float64          `json:"review_duration_hours"`
	Iterations            int              `json:"iterations"`
	Sessions              []ProcessSession `json:"sessions,omitempty"`
}

// ProcessAnalysis is the server's aggregate fix/review timing report over
// a date range.
type ProcessAnalysis struct {
	AverageFixDuration           float64           `json:"average_fix_duration"`
	AverageReviewDuration        float64           `json:"average_review_duration"`
	MaxFixDuration               float64           `json:"max_fix_duration"`
	MinFixDuration               float64           `json:"min_fix_duration"`
	MaxReviewDuration            float64           `json:"max_review_duration"`
	MinReviewDuration            float64           `json:"min_review_duration"`
	AverageFixDurationMinutes    float64           `json:"average_fix_duration_minutes"`
	AverageReviewDurationMinutes float64           `json:"average_review_duration_minutes"`
	AverageFixDurationHours      float64           `json:"average_fix_duration_hours"`
	AverageReviewDurationHours   float64           `json:"average_review_duration_hours"`
	MaxFixDurationMinutes        float64           `json:"max_fix_duration_minutes"`
	MinFixDurationMinutes        float64           `json:"min_fix_duration_minutes"`
	MaxReviewDurationMinutes     float64           `json:"max_review_duration_minutes"`
	MinReviewDurationMinutes     float64           `json:"min_review_duration_minutes"`
	MaxFixDurationHours          float64           `json:"max_fix_duration_hours"`
	MinFixDurationHours          float64           `json:"min_fix_duration_hours"`
	MaxReviewDurationHours       float64           `json:"max_review_duration_hours"`
	MinReviewDurationHours       float64           `json:"min_review_duration_hours"`
	AverageIterations            float64           `json:"average_iterations"`
	MaxIterations                int               `json:"max_iterations"`
	MinIterations                int               `json:"min_iterations"`
	TotalDocuments               int               `json:"total_documents"`
	Documents                    []ProcessDocument `json:"documents"`
}

// RequirementStat is the per-criterion aggregate of violations across a
// user's documents.
type RequirementStat struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	TotalViolations   int    `json:"totalViolations"`
	AffectedDocuments int    `json:"affectedDocuments"`
	Severity          string `json:"severity"`
}

// ViolationDetails points at one flagged occurrence inside a document.
type ViolationDetails struct {
	RequirementID    string `json:"requirementId"`
	Description      string `json:"description"`
	Severity         string `json:"severity"`
	PDFAnnotationURL string `json:"pdfAnnotationUrl"`
}

// ViolationDocument is one document carrying a violation of some
// requirement, with a pointer to its annotated rendition.
type ViolationDocument struct {
	ID         string           `json:"id"`
	FileName   string           `json:"fileName"`
	FileType   string           `json:"fileType"`
	UploadDate string           `json:"uploadDate"`
	PDFURL     string           `json:"pdfUrl"`
	Details    ViolationDetails `json:"violationDetails"`
}

// RequirementsStats is the requirements statistics report.
type RequirementsStats struct {
	Requirements       []RequirementStat   `json:"requirementsStats"`
	ViolationDocuments []ViolationDocument `json:"violationDocuments"`
}
