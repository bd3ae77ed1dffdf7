package global

import "time"

// BinaryVersion is the version of the coverage-status binary, overridden at build time
var BinaryVersion = "v0.1.0"

// All constant related to coverage-status
const (
	BinaryName           = "coverage-status"
	DefaultAPIURL        = "https://api.github.com"
	DefaultAPITimeout    = 45 * time.Second
	GitHubMediaType      = "application/vnd.github+json"
	JSONContentType      = "application/json"
	TokenEnv             = "GITHUB_TOKEN"
	MaxDescriptionLength = 140
	TotalCoverageContext = "Coverage / Total"
	DiffCoverageContext  = "Coverage / Diff"
	CoberturaExtension   = ".xml"
	DiffSummaryExtension = ".json"
	ConfigFileName       = ".coverage-status"
	StatusStateSuccess   = "success"
	CheckRunCompleted    = "completed"
	CheckRunConclusionOK = "success"
	DescriptionEllipsis  = "..."
)
