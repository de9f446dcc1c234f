// Package orchestrators coordinates services into the multi-step spider and
// scan workflows.
package orchestrators

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// StatusFunc reports the completion percentage of a remote job.
type StatusFunc func(ctx context.Context) (int, error)

// PollOptions bound and pace a status polling loop.
type PollOptions struct {
	Interval time.Duration // delay between polls; defaults to 1s
	MaxWait  time.Duration // overall bound; 0 polls without limit
	Progress func(percent int)
}

// ErrWaitTimeout is returned when a job does not complete within MaxWait.
var ErrWaitTimeout = errors.New("timed out waiting for the remote job to complete")

// AwaitCompletion polls status until it reports 100 percent, invoking
// Progress once per observed value. Iterations are paced by a rate limiter
// so the first status check happens immediately and each subsequent one
// after Interval. Cancelling ctx returns ctx.Err(): the remote job cannot
// be cancelled from here, so the caller decides how to report that.
func AwaitCompletion(ctx context.Context, status StatusFunc, opts PollOptions) error {
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Second
	}
	// The bucket starts full; drain it so the first Wait after the first
	// status check blocks for a whole interval instead of returning at once.
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	limiter.Allow()

	var deadline time.Time
	if opts.MaxWait > 0 {
		deadline = time.Now().Add(opts.MaxWait)
	}

	for {
		percent, err := status(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if opts.Progress != nil {
			opts.Progress(percent)
		}
		if percent >= 100 {
			return nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return ErrWaitTimeout
		}
		if err := limiter.Wait(ctx); err != nil {
			return ctx.Err()
		}
	}
}
