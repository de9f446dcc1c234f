package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/burpctl/burpctl/internal/ui"
)

func runConfig(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	var (
		outFile    = fs.String("o", "", "Write YAML to this file instead of stdout (must not exist)")
		uploadFile = fs.String("f", "", "Upload a new configuration from this JSON file")
	)
	var client clientFlags
	client.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: burpctl config [options]

Show the scanner's configuration, or replace it with -f.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  burpctl config
  burpctl config -f scanner-config.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	gw, err := client.gateway()
	if err != nil {
		return err
	}

	if *uploadFile != "" {
		data, err := os.ReadFile(*uploadFile) // #nosec G304 -- user-supplied config file
		if err != nil {
			return fmt.Errorf("failed to read configuration file: %w", err)
		}
		if err := gw.UpdateConfiguration(ctx, data); err != nil {
			return err
		}
		fmt.Println(ui.Okf("configuration updated from %s", *uploadFile))
		return nil
	}

	doc, err := gw.Configuration(ctx)
	if err != nil {
		return err
	}
	return writeDocument(doc, *outFile)
}
