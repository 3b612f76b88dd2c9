package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/introduced"
	introgoquery "github.com/fwojciec/introduced/goquery"
	"github.com/fwojciec/introduced/google"
	introhttp "github.com/fwojciec/introduced/http"
	"github.com/fwojciec/introduced/matlab"
	introslog "github.com/fwojciec/introduced/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("introduced"),
		kong.Description("Report which MATLAB release introduced a function"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// A malformed invocation aborts the whole batch before any lookup runs.
	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	var fetcher introduced.Fetcher = introhttp.NewFetcher(
		introhttp.WithTimeout(timeout),
		introhttp.WithRateLimit(cli.RateLimit),
	)
	var searcher introduced.Searcher = google.NewSearcher(google.Config{
		APIKey:   cli.APIKey,
		EngineID: cli.SearchCX,
	})

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = introslog.NewLoggingFetcher(fetcher, logger)
		searcher = introslog.NewLoggingSearcher(searcher, logger)
	}

	installation := matlab.NewInstallation(cli.MatlabRoot, cli.Release)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Lookup: &introduced.Lookup{
			Resolver: &introduced.Resolver{
				Fetcher:      fetcher,
				Searcher:     searcher,
				Installation: installation,
				ForceSearch:  cli.ForceSearch,
			},
			Extractor:    introgoquery.NewExtractor(),
			Installation: installation,
			Releases:     introhttp.NewReleaseSource(fetcher),
		},
	}

	cmd := &LookupCmd{Names: cli.Names}
	return cmd.Run(deps)
}
