// Package gateways implements HTTP adapters for the remote scanner API.
package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/burpctl/burpctl/internal/domain/entities"
	"github.com/burpctl/burpctl/internal/domain/interfaces"
)

// DefaultBaseURL is where the REST API listens when Burp is started locally
// with default settings.
const DefaultBaseURL = "http://localhost:8090/"

const (
	defaultTimeout  = 60 * time.Second
	userAgent       = "burpctl/1.0"
	formContentType = "application/x-www-form-urlencoded"
	jsonContentType = "application/json"
)

// Config carries the immutable settings for a gateway instance, constructed
// once at startup and passed in explicitly.
type Config struct {
	BaseURL string
	APIKey  string        // sent as the API-KEY header when non-empty
	Timeout time.Duration // per-request bound; defaults to 60s
	Logger  interfaces.Logger
}

// BurpGateway implements gateways.ScannerGateway against the Burp REST API.
// Every operation is exactly one HTTP request with no retries: failures
// surface to the caller unchanged.
type BurpGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  interfaces.Logger
}

// NewBurpGateway creates a gateway for the scanner at cfg.BaseURL.
func NewBurpGateway(cfg Config) (*BurpGateway, error) {
	if cfg.BaseURL == "" {
		return nil, ErrNoBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &BurpGateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// do performs a single request against an endpoint and returns the response
// body. Non-2xx responses become an *APIError.
func (g *BurpGateway) do(ctx context.Context, method string, e endpoint, query url.Values, contentType string, body io.Reader) ([]byte, error) {
	u := joinURL(g.baseURL, e)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if g.apiKey != "" {
		req.Header.Set("API-KEY", g.apiKey)
	}

	g.logger.Debug("scanner API request",
		interfaces.F("method", method),
		interfaces.F("url", u))

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scanner API request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		g.logger.Warn("scanner API returned an error",
			interfaces.F("status", resp.StatusCode),
			interfaces.F("url", u))
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

// sendForm performs a mutation carrying a form-encoded body.
func (g *BurpGateway) sendForm(ctx context.Context, method string, e endpoint, form url.Values) error {
	_, err := g.do(ctx, method, e, nil, formContentType, strings.NewReader(form.Encode()))
	return err
}

// getDocument fetches an endpoint and decodes its JSON body into an opaque
// document for pass-through output.
func (g *BurpGateway) getDocument(ctx context.Context, e endpoint, query url.Values) (any, error) {
	data, err := g.do(ctx, http.MethodGet, e, query, "", nil)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scanner response: %w", err)
	}
	return doc, nil
}

// getPercentage fetches a status endpoint and extracts the named completion
// percentage field.
func (g *BurpGateway) getPercentage(ctx context.Context, e endpoint, field string) (int, error) {
	data, err := g.do(ctx, http.MethodGet, e, nil, "", nil)
	if err != nil {
		return 0, err
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("failed to parse status response: %w", err)
	}
	raw, ok := payload[field]
	if !ok {
		return 0, fmt.Errorf("status response has no %s field", field)
	}
	var percent int
	if err := json.Unmarshal(raw, &percent); err != nil {
		return 0, fmt.Errorf("failed to parse %s field: %w", field, err)
	}
	return percent, nil
}

// IsInScope reports whether target is on the scanner's scope allow-list.
func (g *BurpGateway) IsInScope(ctx context.Context, target string) (bool, error) {
	data, err := g.do(ctx, http.MethodGet, epTargetScope, url.Values{"url": {target}}, "", nil)
	if err != nil {
		return false, err
	}
	var payload struct {
		InScope bool `json:"inScope"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return false, fmt.Errorf("failed to parse scope response: %w", err)
	}
	return payload.InScope, nil
}

// IncludeInScope adds target to the scanner's scope. The scanner treats
// re-adding an already-included URL as success.
func (g *BurpGateway) IncludeInScope(ctx context.Context, target string) error {
	return g.sendForm(ctx, http.MethodPut, epTargetScope, url.Values{"url": {target}})
}

// SeedSpider queues target as a spider seed.
func (g *BurpGateway) SeedSpider(ctx context.Context, target string) error {
	return g.sendForm(ctx, http.MethodPost, epSpider, url.Values{"baseUrl": {target}})
}

// SpiderStatus returns the spider completion percentage.
func (g *BurpGateway) SpiderStatus(ctx context.Context) (int, error) {
	return g.getPercentage(ctx, epSpiderStatus, "spiderPercentage")
}

// Sitemap returns the discovered-URL map, optionally filtered by prefix.
func (g *BurpGateway) Sitemap(ctx context.Context, urlPrefix string) (any, error) {
	query := url.Values{}
	if urlPrefix != "" {
		query.Set("urlPrefix", urlPrefix)
	}
	return g.getDocument(ctx, epSitemap, query)
}

// Issues returns the reported findings, optionally filtered by prefix.
func (g *BurpGateway) Issues(ctx context.Context, urlPrefix string) (any, error) {
	query := url.Values{}
	if urlPrefix != "" {
		query.Set("urlPrefix", urlPrefix)
	}
	return g.getDocument(ctx, epIssues, query)
}

// ProxyHistory returns the requests observed by the proxy listener.
func (g *BurpGateway) ProxyHistory(ctx context.Context) (any, error) {
	return g.getDocument(ctx, epProxyHistory, nil)
}

// Configuration returns the scanner's current configuration.
func (g *BurpGateway) Configuration(ctx context.Context) (any, error) {
	return g.getDocument(ctx, epConfiguration, nil)
}

// UpdateConfiguration replaces the scanner's configuration with the given
// JSON document. The document is validated locally before it is sent.
func (g *BurpGateway) UpdateConfiguration(ctx context.Context, config []byte) error {
	if !json.Valid(config) {
		return fmt.Errorf("configuration is not valid JSON")
	}
	_, err := g.do(ctx, http.MethodPut, epConfiguration, nil, jsonContentType, strings.NewReader(string(config)))
	return err
}

// StartActiveScan launches an active scan against target. The target must
// already be in scope and in the sitemap or the scan will cover nothing.
func (g *BurpGateway) StartActiveScan(ctx context.Context, target string) error {
	return g.sendForm(ctx, http.MethodPost, epScanActive, url.Values{"baseUrl": {target}})
}

// StartPassiveScan launches a passive scan against target.
func (g *BurpGateway) StartPassiveScan(ctx context.Context, target string) error {
	return g.sendForm(ctx, http.MethodPost, epScanPassive, url.Values{"baseUrl": {target}})
}

// ScanStatus returns the scan completion percentage.
func (g *BurpGateway) ScanStatus(ctx context.Context) (int, error) {
	return g.getPercentage(ctx, epScanStatus, "scanPercentage")
}

// StopActiveScan stops the running active scan.
func (g *BurpGateway) StopActiveScan(ctx context.Context) error {
	_, err := g.do(ctx, http.MethodDelete, epScanActive, nil, "", nil)
	return err
}

// Report fetches the scan report as an opaque blob, passed through verbatim.
func (g *BurpGateway) Report(ctx context.Context, format entities.ReportFormat) ([]byte, error) {
	return g.do(ctx, http.MethodGet, epReport, url.Values{"reportType": {string(format)}}, "", nil)
}

// Shutdown terminates the remote scanner process.
func (g *BurpGateway) Shutdown(ctx context.Context) error {
	_, err := g.do(ctx, http.MethodGet, epStop, nil, "", nil)
	return err
}
