package entities

import (
	"fmt"
	"strings"
)

// ReportFormat selects the report type the remote scanner generates.
type ReportFormat string

// Report formats accepted by the scanner's report endpoint.
const (
	ReportHTML ReportFormat = "HTML"
	ReportXML  ReportFormat = "XML"
)

// ParseReportFormat maps a user-supplied format name to a ReportFormat.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(s) {
	case "html":
		return ReportHTML, nil
	case "xml":
		return ReportXML, nil
	}
	return "", fmt.Errorf("unknown report format %q (want html or xml)", s)
}
