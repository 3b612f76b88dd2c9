package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/introduced"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	RateLimit   float64       `default:"1" help:"Max requests per second against the documentation host"`
	ForceSearch bool          `help:"Skip the direct URL guesses and go straight to web search"`
	Verbose     bool          `short:"v" help:"Log fetches and searches to stderr"`
	APIKey      string        `env:"GOOGLE_API_KEY" help:"Google Custom Search API key"`
	SearchCX    string        `env:"GOOGLE_SEARCH_CX" help:"Google Custom Search engine id"`
	MatlabRoot  string        `env:"MATLAB_ROOT" default:"/usr/local/MATLAB" help:"MATLAB installation directory"`
	Release     string        `env:"MATLAB_RELEASE" default:"R2023b" help:"Release token of the local installation"`
	Names       []string      `arg:"" required:"" help:"Function names to look up"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Lookup *introduced.Lookup
}

// LookupCmd processes a batch of function names.
type LookupCmd struct {
	Names []string
}
