// opensea/client.go
package opensea

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/H4estu/OpenSeer/config"
	"github.com/H4estu/OpenSeer/metrics"
)

// Client issues requests against the marketplace events API. One Client
// is shared across all pipeline runs; it holds no per-run state.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Client from config. The transport carries explicit
// dial and TLS timeouts so a stalled upstream cannot hold a request open
// past the configured deadline.
func NewClient(cfg config.OpenSeaConfig, logger *zap.Logger) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}
}

// RecentSales requests the last numSales completed sales and returns the
// raw JSON body. The caller is responsible for keeping numSales within
// the range the endpoint accepts; it is not re-checked here. The body is
// only verified to be syntactically valid, non-empty JSON that is not the
// bare null literal.
func (c *Client) RecentSales(ctx context.Context, numSales int) (json.RawMessage, error) {
	reqURL, err := url.Parse(c.baseURL + "/events")
	if err != nil {
		return nil, fmt.Errorf("invalid events endpoint URL: %w", err)
	}

	q := reqURL.Query()
	q.Set("event_type", "successful")
	q.Set("limit", strconv.Itoa(numSales))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build events request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("events request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read events response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events request returned status %d", resp.StatusCode)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("events response body is empty")
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("events response body is null")
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("events response body is not valid JSON")
	}

	c.logger.Debug("fetched recent sales",
		zap.Int("num_sales", numSales),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return json.RawMessage(trimmed), nil
}
