package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runIssues(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("issues", flag.ExitOnError)
	var (
		prefix  = fs.String("u", "", "Only include issues for URLs with this prefix")
		outFile = fs.String("o", "", "Write YAML to this file instead of stdout (must not exist)")
	)
	var client clientFlags
	client.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: burpctl issues [options]

Fetch the issues the scanner has reported so far.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  burpctl issues
  burpctl issues -u http://testphp.vulnweb.com -o issues.yml
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	gw, err := client.gateway()
	if err != nil {
		return err
	}

	doc, err := gw.Issues(ctx, *prefix)
	if err != nil {
		return err
	}
	return writeDocument(doc, *outFile)
}
