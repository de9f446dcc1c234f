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

func runSpider(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("spider", flag.ExitOnError)
	var (
		urls        urlList
		targetsFile = fs.String("t", "", "YAML file with a paths list of target URLs")
		follow      = fs.Bool("status", false, "Poll spider progress until it completes")
		interval    = fs.Duration("interval", time.Second, "Delay between status polls")
		maxWait     = fs.Duration("max-wait", 30*time.Minute, "Give up polling after this long (0 = no limit)")
	)
	fs.Var(&urls, "u", "Target URL (repeatable)")
	var client clientFlags
	client.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: burpctl spider [options]

Include each target in the scanner's scope and seed the spider with it.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  burpctl spider -u http://testphp.vulnweb.com
  burpctl spider -t targets.yml -status
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
	return orch.RunSpider(ctx, targets, *follow)
}
