package fixtures

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gobusters/ectologger"
)

const (
	// DefaultTimeout is the default fixture request timeout
	DefaultTimeout = 15 * time.Second

	// MaxResponseSize caps a single fixture resource (10MB)
	MaxResponseSize = 10 * 1024 * 1024
)

// HTTPSource fetches fixture resources from a fixture backend over HTTP
type HTTPSource struct {
	client  *http.Client
	baseURL string
	logger  ectologger.Logger
}

// HTTPSourceConfig holds HTTP source configuration
type HTTPSourceConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPSource creates an HTTP fixture source
func NewHTTPSource(cfg HTTPSourceConfig, logger ectologger.Logger) *HTTPSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPSource{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// Fetch retrieves one resource. Non-2xx responses and oversized bodies are
// errors; content is returned raw for the loader to decode.
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := s.baseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Errorf("Fixture request failed: GET %s", url)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	limited := io.LimitReader(resp.Body, MaxResponseSize+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if len(body) > MaxResponseSize {
		return nil, fmt.Errorf("response body too large: %d bytes (max %d)", len(body), MaxResponseSize)
	}

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"resource":    name,
		"bytes":       len(body),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Fetched fixture resource")

	return body, nil
}
