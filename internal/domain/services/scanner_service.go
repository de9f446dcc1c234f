// Package services implements domain business logic and use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/burpctl/burpctl/internal/domain/interfaces/gateways"
)

// ErrEmptyTarget is returned when an operation is asked to act on a blank
// target URL. The remote API is authoritative on URL validity beyond that.
var ErrEmptyTarget = errors.New("target URL is empty")

// ScannerService layers target validation and the composite sitemap
// operation over the raw gateway.
type ScannerService struct {
	gateway gateways.ScannerGateway
}

// NewScannerService creates a new scanner service with dependency injection
func NewScannerService(gateway gateways.ScannerGateway) *ScannerService {
	return &ScannerService{gateway: gateway}
}

// AddToSitemap makes target visible to the scanner: it is included in scope
// first, then used to seed the spider. The scanner only scans URLs that are
// both in scope and present in its crawl map, so the order matters.
func (s *ScannerService) AddToSitemap(ctx context.Context, target string) error {
	if err := validateTarget(target); err != nil {
		return err
	}
	if err := s.gateway.IncludeInScope(ctx, target); err != nil {
		return fmt.Errorf("failed to include %s in scope: %w", target, err)
	}
	if err := s.gateway.SeedSpider(ctx, target); err != nil {
		return fmt.Errorf("failed to seed spider with %s: %w", target, err)
	}
	return nil
}

// StartScan launches a scan of target. Passive scans only analyze traffic
// the scanner has already observed; active scans send new attack traffic.
func (s *ScannerService) StartScan(ctx context.Context, target string, passive bool) error {
	if err := validateTarget(target); err != nil {
		return err
	}
	if passive {
		if err := s.gateway.StartPassiveScan(ctx, target); err != nil {
			return fmt.Errorf("failed to start passive scan of %s: %w", target, err)
		}
		return nil
	}
	if err := s.gateway.StartActiveScan(ctx, target); err != nil {
		return fmt.Errorf("failed to start active scan of %s: %w", target, err)
	}
	return nil
}

func validateTarget(target string) error {
	if strings.TrimSpace(target) == "" {
		return ErrEmptyTarget
	}
	return nil
}
