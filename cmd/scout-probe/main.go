package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/wikiscout/scoutcore/internal/probe"
	"github.com/wikiscout/scoutcore/pkg/logger"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the engine API")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		format  = flag.String("log-format", "text", "Log format: text or json")
		asJSON  = flag.Bool("json", false, "Print the report as JSON on stdout")
		verbose = flag.Bool("verbose", false, "Log passing checks too")
	)
	flag.Parse()

	if err := logger.Init(logger.Options{Level: "info", Format: *format}); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(2)
	}
	log := logger.Named("probe")

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	report, err := probe.Run(ctx, &probe.Config{BaseURL: *baseURL, Timeout: *timeout, Verbose: *verbose}, log)
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	}
	if err != nil {
		log.Error(ctx, "probe failed", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}
