package core

import (
	"context"
)

// CoverageReader reads a coverage artifact from disk
type CoverageReader interface {
	// Read parses the coverage file at path and returns the metric to report.
	Read(path string) (*Metric, error)
}

// StatusPublisher publishes a status report for a commit
type StatusPublisher interface {
	// Publish sends the report to the git provider exactly once.
	Publish(ctx context.Context, report *StatusReport) error
}

// FileResolver resolves the coverage file argument to a single file on disk
type FileResolver interface {
	// Resolve accepts a literal path or a glob pattern.
	Resolve(pattern string) (string, error)
}

// Requests is a util interface for making API Requests
type Requests interface {
	// MakeAPIRequest makes an HTTP request and returns the response body and status code.
	MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, body []byte, headers map[string]string) (rawBody []byte, statusCode int, err error)
}
