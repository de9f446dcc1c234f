package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/burpctl/burpctl/internal/domain/entities"
	"github.com/burpctl/burpctl/internal/ui"
)

func runReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	var (
		outFile = fs.String("o", "", "Output file for the report (required, must not exist)")
		format  = fs.String("f", "html", "Report type: html or xml")
	)
	var client clientFlags
	client.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: burpctl report -o FILE [options]

Download the scan report and write it verbatim to FILE.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  burpctl report -o report.html
  burpctl report -o report.xml -f xml
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *outFile == "" {
		fs.Usage()
		return errors.New("report requires -o FILE")
	}
	reportFormat, err := entities.ParseReportFormat(*format)
	if err != nil {
		return err
	}

	gw, err := client.gateway()
	if err != nil {
		return err
	}

	data, err := gw.Report(ctx, reportFormat)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(*outFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G304 -- user-supplied output path
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *outFile, err)
	}
	if _, err := f.Write(data); err != nil {
		//nolint:errcheck // Best effort close after write failure
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Println(ui.Okf("wrote %s report to %s (%d bytes)", *format, *outFile, len(data)))
	return nil
}
