package main

import (
	"flag"
	"os"
	"time"

	"github.com/burpctl/burpctl/internal/domain-adapters/gateways"
	"github.com/burpctl/burpctl/internal/domain/interfaces"
)

// clientFlags holds the connection options shared by every subcommand.
type clientFlags struct {
	apiURL  string
	apiKey  string
	timeout time.Duration
	debug   bool
}

func (c *clientFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.apiURL, "api-url", gateways.DefaultBaseURL, "Base URL of the scanner REST API")
	fs.StringVar(&c.apiKey, "api-key", os.Getenv("BURP_API_KEY"), "API key sent with every request (defaults to $BURP_API_KEY)")
	fs.DurationVar(&c.timeout, "timeout", 60*time.Second, "HTTP request timeout")
	fs.BoolVar(&c.debug, "debug", false, "Trace every API request to stderr")
}

// gateway builds the configured scanner gateway. The configuration is
// assembled once here and never mutated afterwards.
func (c *clientFlags) gateway() (*gateways.BurpGateway, error) {
	var logger interfaces.Logger = &interfaces.NoOpLogger{}
	if c.debug {
		logger = &interfaces.StderrLogger{}
	}
	return gateways.NewBurpGateway(gateways.Config{
		BaseURL: c.apiURL,
		APIKey:  c.apiKey,
		Timeout: c.timeout,
		Logger:  logger,
	})
}
