package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runSitemap(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sitemap", flag.ExitOnError)
	var (
		prefix  = fs.String("u", "", "Only include sitemap entries with this URL prefix")
		outFile = fs.String("o", "", "Write YAML to this file instead of stdout (must not exist)")
	)
	var client clientFlags
	client.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: burpctl sitemap [options]

Fetch the sitemap the spider has discovered so far.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  burpctl sitemap
  burpctl sitemap -u http://testphp.vulnweb.com -o sitemap.yml
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	gw, err := client.gateway()
	if err != nil {
		return err
	}

	doc, err := gw.Sitemap(ctx, *prefix)
	if err != nil {
		return err
	}
	return writeDocument(doc, *outFile)
}
