package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/burpctl/burpctl/internal/domain-adapters/gateways"
	"github.com/burpctl/burpctl/internal/ui"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Ctrl-C cancels the root context; the polling loops catch that and
	// degrade to a warning instead of an error.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := os.Args[1]
	args := os.Args[2:]

	// Dispatch to subcommand
	var err error
	switch command {
	case "spider":
		err = runSpider(ctx, args)
	case "scan":
		err = runScan(ctx, args)
	case "issues":
		err = runIssues(ctx, args)
	case "sitemap":
		err = runSitemap(ctx, args)
	case "history":
		err = runHistory(ctx, args)
	case "config":
		err = runConfig(ctx, args)
	case "report":
		err = runReport(ctx, args)
	case "stop":
		err = runStop(ctx, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints a single line per failure. Transport-level failures get
// a friendlier message, since the usual cause is that the scanner is simply
// not running.
func reportError(err error) {
	if gateways.IsConnectionError(err) {
		fmt.Fprintln(os.Stderr, ui.Errorf("Error: cannot reach the scanner API — is the scanner running and its REST API enabled?"))
		fmt.Fprintln(os.Stderr, ui.Mutedf("       %v", err))
		return
	}
	fmt.Fprintln(os.Stderr, ui.Errorf("Error: %v", err))
}

func printUsage() {
	fmt.Println(`burpctl - control a running Burp Suite scanner over its REST API

Usage:
  burpctl <command> [options]

Commands:
  spider   Add targets to scope and seed the spider
  scan     Spider targets, then run an active or passive scan
  issues   Fetch the reported issues
  sitemap  Fetch the discovered sitemap
  history  Fetch the proxy history
  config   Show or upload the scanner configuration
  report   Download the scan report
  stop     Stop the active scan or shut down the scanner

Use "burpctl <command> --help" for more information about a command.`)
}
