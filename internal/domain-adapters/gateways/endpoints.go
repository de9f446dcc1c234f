package gateways

import "strings"

// endpoint enumerates the REST actions exposed by the scanner's control API.
// Keeping this a closed set means an unknown action cannot be constructed at
// runtime; every endpoint carries its fixed relative path below.
type endpoint int

const (
	epConfiguration endpoint = iota
	epProxyHistory
	epIssues
	epReport
	epScanActive
	epScanPassive
	epScanStatus
	epSitemap
	epSpider
	epSpiderStatus
	epStop
	epTargetScope
)

func (e endpoint) path() string {
	switch e {
	case epConfiguration:
		return "burp/configuration"
	case epProxyHistory:
		return "burp/proxy/history"
	case epIssues:
		return "burp/scanner/issues"
	case epReport:
		return "burp/report"
	case epScanActive:
		return "burp/scanner/scans/active"
	case epScanPassive:
		return "burp/scanner/scans/passive"
	case epScanStatus:
		return "burp/scanner/status"
	case epSitemap:
		return "burp/target/sitemap"
	case epSpider:
		return "burp/spider"
	case epSpiderStatus:
		return "burp/spider/status"
	case epStop:
		return "burp/stop"
	case epTargetScope:
		return "burp/target/scope"
	}
	panic("unknown endpoint")
}

// joinURL appends an endpoint path to the base URL. The join is idempotent
// with respect to a trailing slash on the base.
func joinURL(baseURL string, e endpoint) string {
	return strings.TrimRight(baseURL, "/") + "/" + e.path()
}
