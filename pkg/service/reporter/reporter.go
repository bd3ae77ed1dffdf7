// Package reporter reads a coverage report and publishes it for a commit
package reporter

import (
	"context"

	"github.com/LambdaTest/coverage-status/config"
	"github.com/LambdaTest/coverage-status/pkg/core"
	"github.com/LambdaTest/coverage-status/pkg/coverage"
	"github.com/LambdaTest/coverage-status/pkg/fileutils"
	"github.com/LambdaTest/coverage-status/pkg/lumber"
)

// Reporter reads one coverage file and publishes one status report
type Reporter struct {
	cfg       *config.StatusConfig
	resolver  core.FileResolver
	reader    core.CoverageReader
	publisher core.StatusPublisher
	logger    lumber.Logger
}

// New returns a new instance of Reporter
func New(cfg *config.StatusConfig,
	resolver core.FileResolver,
	reader core.CoverageReader,
	publisher core.StatusPublisher,
	logger lumber.Logger) *Reporter {
	return &Reporter{
		cfg:       cfg,
		resolver:  resolver,
		reader:    reader,
		publisher: publisher,
		logger: logger.WithFields(lumber.Fields{
			"repository": cfg.Repository,
			"sha":        cfg.SHA,
		}),
	}
}

// Report publishes the coverage of the configured file. Every failure is terminal.
func (r *Reporter) Report(ctx context.Context) error {
	// a literal path names its format, globs are checked by the reader once resolved
	if !fileutils.IsPattern(r.cfg.CoverageFile) {
		if _, err := coverage.DetectFormat(r.cfg.CoverageFile); err != nil {
			r.logger.Errorf("failed to detect coverage format for %s, error: %v", r.cfg.CoverageFile, err)
			return err
		}
	}

	path, err := r.resolver.Resolve(r.cfg.CoverageFile)
	if err != nil {
		r.logger.Errorf("failed to resolve coverage file %s, error: %v", r.cfg.CoverageFile, err)
		return err
	}

	metric, err := r.reader.Read(path)
	if err != nil {
		return err
	}
	r.logger.Infof("%s from %s: %s", metric.Context, path, metric.Description)

	report := &core.StatusReport{
		Repository:  r.cfg.Repository,
		SHA:         r.cfg.SHA,
		Context:     metric.Context,
		Description: metric.Description,
	}
	return r.publisher.Publish(ctx, report)
}
