package requestutils

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/LambdaTest/coverage-status/testutils"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeAPIRequest(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{"Created is success", http.StatusCreated, false},
		{"OK is success", http.StatusOK, false},
		{"Unprocessable entity fails", http.StatusUnprocessableEntity, true},
		{"Unauthorized fails", http.StatusUnauthorized, true},
		{"Server error fails", http.StatusBadGateway, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
				body, _ := io.ReadAll(r.Body)
				assert.Equal(t, `{"state":"success"}`, string(body))
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(`{"id":1}`))
			}))
			defer server.Close()

			r := New(logger, time.Second, &backoff.StopBackOff{})
			rawBody, statusCode, err := r.MakeAPIRequest(context.TODO(), http.MethodPost, server.URL,
				[]byte(`{"state":"success"}`), map[string]string{"Authorization": "Bearer token"})

			assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
			assert.Equal(t, tt.statusCode, statusCode)
			assert.Equal(t, `{"id":1}`, string(rawBody))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var statusErr *errs.APIStatusError
			require.True(t, errors.As(err, &statusErr), "expected APIStatusError, got %v", err)
			assert.Equal(t, tt.statusCode, statusErr.StatusCode)
		})
	}
}

func TestMakeAPIRequestRetriesServerErrors(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	r := New(logger, time.Second, backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 5))
	_, statusCode, err := r.MakeAPIRequest(context.TODO(), http.MethodPost, server.URL, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, statusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestMakeAPIRequestUnreachable(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	r := New(logger, time.Second, &backoff.StopBackOff{})
	_, _, err = r.MakeAPIRequest(context.TODO(), http.MethodPost, endpoint, nil, nil)
	assert.Error(t, err)
}
