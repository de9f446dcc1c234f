// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"

	"github.com/burpctl/burpctl/internal/domain/entities"
)

// ScannerGateway defines the operations exposed by the remote scanner's REST
// control API. Issues, sitemap entries, proxy history and configuration are
// opaque structured documents: the scanner's JSON is decoded and passed
// through unmodified.
type ScannerGateway interface {
	// IsInScope reports whether target is on the scanner's scope allow-list
	IsInScope(ctx context.Context, target string) (bool, error)

	// IncludeInScope adds target to the scanner's scope.
	// Re-adding an already-included URL succeeds.
	IncludeInScope(ctx context.Context, target string) error

	// SeedSpider queues target as a spider seed
	SeedSpider(ctx context.Context, target string) error

	// SpiderStatus returns the spider completion percentage in [0,100]
	SpiderStatus(ctx context.Context) (int, error)

	// Sitemap returns the discovered-URL map, optionally filtered by prefix
	Sitemap(ctx context.Context, urlPrefix string) (any, error)

	// Issues returns the reported findings, optionally filtered by prefix
	Issues(ctx context.Context, urlPrefix string) (any, error)

	// ProxyHistory returns the requests observed by the proxy listener
	ProxyHistory(ctx context.Context) (any, error)

	// Configuration returns the scanner's current configuration
	Configuration(ctx context.Context) (any, error)

	// UpdateConfiguration replaces the scanner's configuration with the
	// given JSON document
	UpdateConfiguration(ctx context.Context, config []byte) error

	// StartActiveScan launches an active scan against target
	StartActiveScan(ctx context.Context, target string) error

	// StartPassiveScan launches a passive scan against target
	StartPassiveScan(ctx context.Context, target string) error

	// ScanStatus returns the scan completion percentage in [0,100]
	ScanStatus(ctx context.Context) (int, error)

	// StopActiveScan stops the running active scan
	StopActiveScan(ctx context.Context) error

	// Report fetches the scan report as an opaque blob
	Report(ctx context.Context, format entities.ReportFormat) ([]byte, error)

	// Shutdown terminates the remote scanner process
	Shutdown(ctx context.Context) error
}
