// Package status publishes coverage results as a commit status or a check-run
package status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/LambdaTest/coverage-status/config"
	"github.com/LambdaTest/coverage-status/pkg/core"
	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/LambdaTest/coverage-status/pkg/global"
	"github.com/LambdaTest/coverage-status/pkg/logstream"
	"github.com/LambdaTest/coverage-status/pkg/lumber"
	"github.com/LambdaTest/coverage-status/pkg/urlmanager"
	"github.com/google/uuid"
)

type publisher struct {
	logger     lumber.Logger
	requests   core.Requests
	target     core.Target
	apiURL     string
	token      string
	dryRun     bool
	externalID func() string
}

// New returns a StatusPublisher for the configured target
func New(cfg *config.StatusConfig, requests core.Requests, logger lumber.Logger) (core.StatusPublisher, error) {
	target := core.Target(cfg.Target)
	switch target {
	case core.TargetStatus, core.TargetCheckRun:
	default:
		return nil, errs.ErrUnsupportedTarget(cfg.Target)
	}
	return &publisher{
		logger:     logger,
		requests:   requests,
		target:     target,
		apiURL:     cfg.APIURL,
		token:      cfg.Token,
		dryRun:     cfg.DryRun,
		externalID: uuid.NewString,
	}, nil
}

func (p *publisher) Publish(ctx context.Context, report *core.StatusReport) error {
	endpoint, body, err := p.buildRequest(report)
	if err != nil {
		p.logger.Errorf("failed to build %s request for %s@%s, error: %v", p.target, report.Repository, report.SHA, err)
		return err
	}

	if p.dryRun {
		headers := logstream.MaskString(fmt.Sprintf("%v", p.headers()), p.token)
		p.logger.Infof("dry run, skipping POST %s headers %s body %s", endpoint, headers, string(body))
		return nil
	}

	rawBody, statusCode, err := p.requests.MakeAPIRequest(ctx, http.MethodPost, endpoint, body, p.headers())
	if err != nil {
		p.logger.Errorf("failed to publish %s for %s@%s, error: %v", p.target, report.Repository, report.SHA, err)
		return err
	}
	p.logger.Infof("published %s %q for %s@%s, status code %d", p.target, report.Description, report.Repository, report.SHA, statusCode)
	p.logger.Debugf("response body %s", string(rawBody))
	return nil
}

func (p *publisher) buildRequest(report *core.StatusReport) (endpoint string, body []byte, err error) {
	var payload interface{}
	switch p.target {
	case core.TargetCheckRun:
		endpoint, err = urlmanager.GetCheckRunURL(p.apiURL, report.Repository)
		payload = newCheckRun(report, p.externalID())
	default:
		endpoint, err = urlmanager.GetStatusURL(p.apiURL, report.Repository, report.SHA)
		payload = newCommitStatus(report)
	}
	if err != nil {
		return "", nil, err
	}

	body, err = json.Marshal(payload)
	if err != nil {
		return "", nil, errs.ErrJSONMar(err.Error())
	}
	return endpoint, body, nil
}

func (p *publisher) headers() map[string]string {
	return map[string]string{
		"Accept":        global.GitHubMediaType,
		"Authorization": fmt.Sprintf("Bearer %s", p.token),
		"Content-Type":  global.JSONContentType,
		"User-Agent":    fmt.Sprintf("%s/%s", global.BinaryName, global.BinaryVersion),
	}
}

func newCommitStatus(report *core.StatusReport) *core.CommitStatus {
	return &core.CommitStatus{
		State:       global.StatusStateSuccess,
		Context:     report.Context,
		Description: truncate(report.Description, global.MaxDescriptionLength),
	}
}

func newCheckRun(report *core.StatusReport, externalID string) *core.CheckRun {
	return &core.CheckRun{
		Name:       report.Context,
		HeadSHA:    report.SHA,
		Status:     global.CheckRunCompleted,
		Conclusion: global.CheckRunConclusionOK,
		ExternalID: externalID,
		Output: core.CheckRunOutput{
			Title:   report.Description,
			Summary: report.Description,
		},
	}
}

// truncate shortens s to at most max runes, ending with an ellipsis
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-utf8.RuneCountInString(global.DescriptionEllipsis)]) + global.DescriptionEllipsis
}
