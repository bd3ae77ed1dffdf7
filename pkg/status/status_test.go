package status

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LambdaTest/coverage-status/config"
	"github.com/LambdaTest/coverage-status/pkg/core"
	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/LambdaTest/coverage-status/pkg/global"
	"github.com/LambdaTest/coverage-status/pkg/requestutils"
	"github.com/LambdaTest/coverage-status/testutils"
	"github.com/LambdaTest/coverage-status/testutils/mocks"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func getReport() *core.StatusReport {
	return &core.StatusReport{
		Repository:  "DarkWanderer/ClickHouse.Client",
		SHA:         "4f2c1a9e",
		Context:     global.TotalCoverageContext,
		Description: "line: 87.34% branch: 61.23%",
	}
}

func getConfig(apiURL, target string) *config.StatusConfig {
	return &config.StatusConfig{
		Target:  target,
		APIURL:  apiURL,
		Token:   "secret",
		Timeout: time.Second,
	}
}

func TestNew(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	_, err = New(getConfig(global.DefaultAPIURL, "comment"), new(mocks.Requests), logger)
	assert.Equal(t, errs.ErrUnsupportedTarget("comment"), err)

	for _, target := range []core.Target{core.TargetStatus, core.TargetCheckRun} {
		_, err = New(getConfig(global.DefaultAPIURL, string(target)), new(mocks.Requests), logger)
		assert.NoError(t, err)
	}
}

func TestPublishCommitStatus(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/DarkWanderer/ClickHouse.Client/statuses/4f2c1a9e", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"context":"Coverage / Total","description":"line: 87.34% branch: 61.23%","state":"success"}`, string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	requests := requestutils.New(logger, time.Second, &backoff.StopBackOff{})
	p, err := New(getConfig(server.URL, string(core.TargetStatus)), requests, logger)
	require.NoError(t, err)

	assert.NoError(t, p.Publish(context.TODO(), getReport()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestPublishCheckRun(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/DarkWanderer/ClickHouse.Client/check-runs", r.URL.Path)
		var checkRun core.CheckRun
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&checkRun))
		assert.Equal(t, core.CheckRun{
			Name:       global.TotalCoverageContext,
			HeadSHA:    "4f2c1a9e",
			Status:     "completed",
			Conclusion: "success",
			ExternalID: "external-id",
			Output: core.CheckRunOutput{
				Title:   "line: 87.34% branch: 61.23%",
				Summary: "line: 87.34% branch: 61.23%",
			},
		}, checkRun)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	requests := requestutils.New(logger, time.Second, &backoff.StopBackOff{})
	p, err := New(getConfig(server.URL, string(core.TargetCheckRun)), requests, logger)
	require.NoError(t, err)
	p.(*publisher).externalID = func() string { return "external-id" }

	assert.NoError(t, p.Publish(context.TODO(), getReport()))
}

func TestPublishFailureIsNotRetried(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	requests := new(mocks.Requests)
	requests.On("MakeAPIRequest",
		mock.Anything,
		http.MethodPost,
		global.DefaultAPIURL+"/repos/DarkWanderer/ClickHouse.Client/statuses/4f2c1a9e",
		mock.AnythingOfType("[]uint8"),
		mock.AnythingOfType("map[string]string"),
	).Return(nil, http.StatusUnprocessableEntity, errs.ErrAPIStatus(http.StatusUnprocessableEntity, nil)).Once()

	p, err := New(getConfig(global.DefaultAPIURL, string(core.TargetStatus)), requests, logger)
	require.NoError(t, err)

	err = p.Publish(context.TODO(), getReport())
	assert.Error(t, err)
	requests.AssertNumberOfCalls(t, "MakeAPIRequest", 1)
}

func TestPublishDryRun(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	requests := new(mocks.Requests)
	cfg := getConfig(global.DefaultAPIURL, string(core.TargetStatus))
	cfg.DryRun = true
	p, err := New(cfg, requests, logger)
	require.NoError(t, err)

	assert.NoError(t, p.Publish(context.TODO(), getReport()))
	requests.AssertNotCalled(t, "MakeAPIRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishInvalidRepository(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	requests := new(mocks.Requests)
	p, err := New(getConfig(global.DefaultAPIURL, string(core.TargetStatus)), requests, logger)
	require.NoError(t, err)

	report := getReport()
	report.Repository = "ClickHouse.Client"
	assert.Equal(t, errs.ErrInvalidRepository("ClickHouse.Client"), p.Publish(context.TODO(), report))
	requests.AssertNotCalled(t, "MakeAPIRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewCommitStatus(t *testing.T) {
	report := getReport()
	report.Description = strings.Repeat("é", 200)

	status := newCommitStatus(report)
	assert.Equal(t, "success", status.State)
	assert.Equal(t, global.MaxDescriptionLength, len([]rune(status.Description)))
	assert.True(t, strings.HasSuffix(status.Description, "..."))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "too lon...", truncate("too long by far", 10))
}
