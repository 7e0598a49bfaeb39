// Package faa downloads the Releasable Aircraft database from the FAA.
package faa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/klauspost/compress/gzhttp"

	"github.com/couchcryptid/faa-drone-registry/internal/observability"
)

const userAgent = "dronereg (+https://github.com/couchcryptid/faa-drone-registry)"

// DownloadError reports a failed archive download.
type DownloadError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Client fetches the database archive over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
	maxTries   uint
	newBackOff func() backoff.BackOff
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a download client. Each attempt is bounded by timeout;
// failed attempts are retried up to maxTries in total.
func NewClient(url string, timeout time.Duration, maxTries uint, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: gzhttp.Transport(http.DefaultTransport),
		},
		maxTries:   maxTries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		logger:     logger,
		metrics:    metrics,
	}
}

// Download returns the archive bytes. Client errors (4xx) are not retried.
func (c *Client) Download(ctx context.Context) ([]byte, error) {
	c.logger.Info("downloading aircraft database", "url", c.url)
	start := time.Now()

	data, err := backoff.Retry(ctx, func() ([]byte, error) {
		data, err := c.fetch(ctx)
		if err != nil {
			c.metrics.DownloadAttempts.WithLabelValues("error").Inc()
			return nil, err
		}
		c.metrics.DownloadAttempts.WithLabelValues("success").Inc()
		return data, nil
	},
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.maxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logger.Warn("download failed, retrying", "error", err, "retry_in", next)
		}),
	)
	if err != nil {
		var derr *DownloadError
		if !errors.As(err, &derr) {
			err = &DownloadError{URL: c.url, Err: err}
		}
		return nil, err
	}

	c.metrics.DownloadBytes.Set(float64(len(data)))
	c.logger.Info("downloaded aircraft database", "bytes", len(data), "duration", time.Since(start))
	return data, nil
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, backoff.Permanent(&DownloadError{URL: c.url, Err: err})
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &DownloadError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		derr := &DownloadError{URL: c.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected response: %s", body)}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(derr)
		}
		return nil, derr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DownloadError{URL: c.url, Err: fmt.Errorf("read body: %w", err)}
	}
	return data, nil
}
