package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/burpctl/burpctl/internal/ui"
)

func runStop(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stop", flag.ExitOnError)
	shutdown := fs.Bool("shutdown", false, "Shut down the whole scanner process instead of only the active scan")
	var client clientFlags
	client.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: burpctl stop [options]

Stop the running active scan. With -shutdown, terminate the remote scanner
process entirely.

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

	if *shutdown {
		if err := gw.Shutdown(ctx); err != nil {
			return err
		}
		fmt.Println(ui.Warnf("scanner shutdown requested"))
		return nil
	}

	if err := gw.StopActiveScan(ctx); err != nil {
		return err
	}
	fmt.Println(ui.Okf("active scan stopped"))
	return nil
}
