// Package coverage reads cobertura and diff summary reports and formats them for a commit status.
package coverage

import (
	"os"
	"path/filepath"

	"github.com/LambdaTest/coverage-status/pkg/core"
	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/LambdaTest/coverage-status/pkg/global"
	"github.com/LambdaTest/coverage-status/pkg/lumber"
)

type reader struct {
	logger lumber.Logger
}

// NewReader returns a new instance of CoverageReader
func NewReader(logger lumber.Logger) core.CoverageReader {
	return &reader{logger: logger}
}

// DetectFormat returns the report format for the file extension of path
func DetectFormat(path string) (core.ReportFormat, error) {
	switch ext := filepath.Ext(path); ext {
	case global.CoberturaExtension:
		return core.Cobertura, nil
	case global.DiffSummaryExtension:
		return core.DiffSummary, nil
	default:
		return "", errs.ErrUnsupportedReport(ext, path)
	}
}

func (r *reader) Read(path string) (*core.Metric, error) {
	format, err := DetectFormat(path)
	if err != nil {
		r.logger.Errorf("failed to detect coverage format for %s, error: %v", path, err)
		return nil, err
	}
	r.logger.Debugf("reading %s report %s", format, path)

	switch format {
	case core.Cobertura:
		return r.readCobertura(path)
	default:
		return r.readDiffSummary(path)
	}
}

func (r *reader) readCobertura(path string) (*core.Metric, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	report, err := ParseCobertura(file)
	if err != nil {
		r.logger.Errorf("failed to parse cobertura report %s, error: %v", path, err)
		return nil, errs.ErrCoverageParse(path, err)
	}
	lineRate, err := report.LineRate()
	if err != nil {
		return nil, errs.ErrCoverageParse(path, err)
	}
	branchRate, err := report.BranchRate()
	if err != nil {
		return nil, errs.ErrCoverageParse(path, err)
	}
	r.logger.Debugf("cobertura line-rate %f branch-rate %f", lineRate, branchRate)

	return &core.Metric{
		Format:      core.Cobertura,
		Context:     global.TotalCoverageContext,
		Description: TotalDescription(lineRate, branchRate),
	}, nil
}

func (r *reader) readDiffSummary(path string) (*core.Metric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	summary, err := ParseDiffSummary(data)
	if err != nil {
		r.logger.Errorf("failed to parse diff summary %s, error: %v", path, err)
		return nil, err
	}
	r.logger.Debugf("diff summary cover %s statements %s miss %s", summary.Cover, summary.Stmts, summary.Miss)

	return &core.Metric{
		Format:      core.DiffSummary,
		Context:     global.DiffCoverageContext,
		Description: DiffDescription(summary),
	}, nil
}
