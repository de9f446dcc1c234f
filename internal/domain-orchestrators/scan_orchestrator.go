package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/burpctl/burpctl/internal/domain/interfaces/gateways"
	"github.com/burpctl/burpctl/internal/domain/services"
	"github.com/burpctl/burpctl/internal/ui"
)

// ScanOrchestrator drives the spider and scan workflows against a scanner.
// Targets in a batch are processed strictly sequentially.
type ScanOrchestrator struct {
	service *services.ScannerService
	gateway gateways.ScannerGateway
	out     io.Writer
	poll    PollOptions
}

// ScanOptions selects the phases of a scan workflow.
type ScanOptions struct {
	Passive bool // passive scan instead of active
	Spider  bool // seed the spider and wait for the crawl before scanning
	Follow  bool // poll scan progress after starting
}

// NewScanOrchestrator creates a new scan orchestrator writing its progress
// to out.
func NewScanOrchestrator(service *services.ScannerService, gateway gateways.ScannerGateway, out io.Writer, poll PollOptions) *ScanOrchestrator {
	return &ScanOrchestrator{
		service: service,
		gateway: gateway,
		out:     out,
		poll:    poll,
	}
}

// RunSpider adds each target to scope, seeds the spider with it and, when
// follow is set, polls the spider to completion.
func (o *ScanOrchestrator) RunSpider(ctx context.Context, targets []string, follow bool) error {
	for _, target := range targets {
		if err := o.service.AddToSitemap(ctx, target); err != nil {
			return err
		}
		fmt.Fprintln(o.out, ui.Okf("%s added to scope, spider seeded", target))
	}
	if !follow {
		return nil
	}
	_, err := o.await(ctx, "spider", o.gateway.SpiderStatus)
	return err
}

// RunScan makes each target scannable, waits for the spider to finish, then
// starts one scan per target in order. Active scans only cover URLs the
// spider has already mapped, so the crawl wait happens once for the whole
// batch before any scan starts.
func (o *ScanOrchestrator) RunScan(ctx context.Context, targets []string, opts ScanOptions) error {
	if opts.Spider {
		for _, target := range targets {
			if err := o.service.AddToSitemap(ctx, target); err != nil {
				return err
			}
			fmt.Fprintln(o.out, ui.Okf("%s added to scope, spider seeded", target))
		}
		done, err := o.await(ctx, "spider", o.gateway.SpiderStatus)
		if err != nil {
			return err
		}
		if !done {
			// Interrupted while waiting: starting scans now would cover an
			// incomplete crawl.
			return nil
		}
	} else {
		// Skipping the spider phase assumes the targets were crawled
		// earlier; out-of-scope targets would make the scan cover nothing.
		for _, target := range targets {
			inScope, err := o.gateway.IsInScope(ctx, target)
			if err != nil {
				return err
			}
			if !inScope {
				fmt.Fprintln(o.out, ui.Warnf("%s is not in the scanner's scope", target))
			}
		}
	}

	for _, target := range targets {
		if err := o.service.StartScan(ctx, target, opts.Passive); err != nil {
			return err
		}
		kind := "active"
		if opts.Passive {
			kind = "passive"
		}
		fmt.Fprintln(o.out, ui.Okf("%s scan started for %s", kind, target))
	}

	if !opts.Follow {
		return nil
	}
	_, err := o.await(ctx, "scan", o.gateway.ScanStatus)
	return err
}

// await polls a status endpoint to completion. An interrupt is not a
// failure: the remote job keeps running regardless, so it is reported as a
// warning and await returns done=false with a nil error.
func (o *ScanOrchestrator) await(ctx context.Context, job string, status StatusFunc) (bool, error) {
	err := AwaitCompletion(ctx, status, PollOptions{
		Interval: o.poll.Interval,
		MaxWait:  o.poll.MaxWait,
		Progress: func(percent int) {
			fmt.Fprintln(o.out, ui.Mutedf("%s at %d%%", job, percent))
		},
	})
	switch {
	case err == nil:
		fmt.Fprintln(o.out, ui.Okf("%s completed", job))
		return true, nil
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(o.out, ui.Warnf("interrupted: the %s may still be running remotely", job))
		return false, nil
	case errors.Is(err, ErrWaitTimeout):
		return false, fmt.Errorf("%s did not complete within %s: %w", job, o.poll.MaxWait, err)
	default:
		return false, err
	}
}
