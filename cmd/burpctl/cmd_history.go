package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	outFile := fs.String("o", "", "Write YAML to this file instead of stdout (must not exist)")
	var client clientFlags
	client.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: burpctl history [options]

Fetch the requests the proxy listener has observed.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	gw, err := client.gateway()
	if err != nil {
		return err
	}

	doc, err := gw.ProxyHistory(ctx)
	if err != nil {
		return err
	}
	return writeDocument(doc, *outFile)
}
