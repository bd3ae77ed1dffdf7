package requestutils

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/LambdaTest/coverage-status/pkg/core"
	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/LambdaTest/coverage-status/pkg/lumber"
	"github.com/cenkalti/backoff/v4"
)

type requests struct {
	logger  lumber.Logger
	client  http.Client
	backoff backoff.BackOff
}

// New returns a new Requests instance. Pass &backoff.StopBackOff{} to make a single attempt.
func New(logger lumber.Logger, timeout time.Duration, backoffStrategy backoff.BackOff) core.Requests {
	return &requests{
		logger:  logger,
		client:  http.Client{Timeout: timeout},
		backoff: backoffStrategy,
	}
}

func (r *requests) MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, body []byte,
	headers map[string]string) (rawBody []byte, statusCode int, err error) {
	operation := func() error {
		req, reqErr := http.NewRequestWithContext(ctx, httpMethod, endpoint, bytes.NewReader(body))
		if reqErr != nil {
			r.logger.Errorf("error while creating http request %v", reqErr)
			return backoff.Permanent(reqErr)
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		resp, reqErr := r.client.Do(req)
		if reqErr != nil {
			r.logger.Errorf("error while sending http request %v", reqErr)
			return reqErr
		}
		defer resp.Body.Close()

		statusCode = resp.StatusCode
		rawBody, reqErr = io.ReadAll(resp.Body)
		if reqErr != nil {
			r.logger.Errorf("error while reading http response body %v", reqErr)
			return reqErr
		}

		if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
			r.logger.Errorf("non 2xx status code %d, body %s", statusCode, string(rawBody))
			statusErr := errs.ErrAPIStatus(statusCode, rawBody)
			if statusCode < http.StatusInternalServerError {
				return backoff.Permanent(statusErr)
			}
			return statusErr
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		r.logger.Warnf("request to %s failed, retrying in %s: %v", endpoint, wait, err)
	}

	if err = backoff.RetryNotify(operation, backoff.WithContext(r.backoff, ctx), notify); err != nil {
		return rawBody, statusCode, err
	}
	return rawBody, statusCode, nil
}
