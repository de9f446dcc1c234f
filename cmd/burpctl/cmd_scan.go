package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	orchestrators "github.com/burpctl/burpctl/internal/domain-orchestrators"
	"github.com/burpctl/burpctl/internal/domain/services"
)

func runScan(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	var (
		urls        urlList
		passive     bool
		targetsFile = fs.String("t", "", "YAML file with a paths list of target URLs")
		spider      = fs.Bool("spider", true, "Spider targets and wait for the crawl before scanning")
		follow      = fs.Bool("status", false, "Poll scan progress until it completes")
		interval    = fs.Duration("interval", time.Second, "Delay between status polls")
		maxWait     = fs.Duration("max-wait", 30*time.Minute, "Give up polling after this long (0 = no limit)")
	)
	fs.Var(&urls, "u", "Target URL (repeatable)")
	fs.BoolVar(&passive, "passive", false, "Run a passive scan instead of an active one")
	fs.BoolVar(&passive, "p", false, "Shorthand for -passive")
	var client clientFlags
	client.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: burpctl scan [options]

Make each target scannable (scope + spider seed), wait for the crawl to
finish, then start one scan per target. Active scans send attack traffic;
use -passive to only analyze traffic the scanner has already seen.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  burpctl scan -u http://testphp.vulnweb.com -status
  burpctl scan -t targets.yml -passive
  burpctl scan -u http://intranet.example -spider=false
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	targets, err := resolveTargets(urls, *targetsFile)
	if err != nil {
		fs.Usage()
		return err
	}

	gw, err := client.gateway()
	if err != nil {
		return err
	}

	orch := orchestrators.NewScanOrchestrator(
		services.NewScannerService(gw), gw, os.Stdout,
		orchestrators.PollOptions{Interval: *interval, MaxWait: *maxWait})
	return orch.RunScan(ctx, targets, orchestrators.ScanOptions{
		Passive: passive,
		Spider:  *spider,
		Follow:  *follow,
	})
}
