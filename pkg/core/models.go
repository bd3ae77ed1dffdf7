package core

// Target is the kind of git provider object the report is published as
type Target string

// Target values
const (
	// TargetStatus publishes a commit status
	TargetStatus Target = "status"
	// TargetCheckRun publishes a completed check-run
	TargetCheckRun Target = "check-run"
)

// ReportFormat is the format of the coverage artifact
type ReportFormat string

// ReportFormat values
const (
	// Cobertura is the cobertura xml report
	Cobertura ReportFormat = "cobertura"
	// DiffSummary is the pycobertura diff json report
	DiffSummary ReportFormat = "diff-summary"
)

// Metric is the value derived from a coverage report
type Metric struct {
	Format      ReportFormat
	Context     string
	Description string
}

// StatusReport is the payload sent once per invocation
type StatusReport struct {
	Repository  string
	SHA         string
	Context     string
	Description string
}

// CommitStatus is the request body for the commit statuses api
type CommitStatus struct {
	State       string `json:"state"`
	TargetURL   string `json:"target_url,omitempty"`
	Description string `json:"description"`
	Context     string `json:"context"`
}

// CheckRun is the request body for the check-runs api
type CheckRun struct {
	Name       string         `json:"name"`
	HeadSHA    string         `json:"head_sha"`
	Status     string         `json:"status"`
	Conclusion string         `json:"conclusion"`
	ExternalID string         `json:"external_id,omitempty"`
	Output     CheckRunOutput `json:"output"`
}

// CheckRunOutput is the output section of a check-run
type CheckRunOutput struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}
