package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesift"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Scraper *pagesift.Scraper
	Parser  *pagesift.Parser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   kong.ConfigFlag `help:"Load defaults from a YAML file"`
	LogLevel string          `default:"warn" enum:"debug,info,warn,error" env:"PAGESIFT_LOG_LEVEL" help:"Log level (${enum})"`

	Provider     string `default:"ollama" enum:"ollama,openai,gemini" env:"PAGESIFT_PROVIDER" help:"Language model provider (${enum})"`
	Model        string `env:"PAGESIFT_MODEL" help:"Model name; empty selects the provider default"`
	BaseURL      string `name:"base-url" env:"PAGESIFT_BASE_URL" help:"API root for ollama/openai providers"`
	OpenAIAPIKey string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"API key for the openai provider"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"API key for the gemini provider"`

	MaxLength   int `default:"6000" help:"Maximum segment length in characters"`
	Concurrency int `short:"c" default:"1" help:"Concurrent model calls; 1 sends segments one at a time"`

	Fetcher     string        `default:"browser" enum:"browser,http" help:"Page fetcher (${enum})"`
	BrowserBin  string        `name:"browser-bin" help:"Chrome or Chromium executable; found or downloaded if empty"`
	Headful     bool          `help:"Show the browser window"`
	SettleDelay time.Duration `default:"10s" help:"Wait after page load before reading HTML"`
	Timeout     time.Duration `default:"60s" help:"Per-page fetch timeout"`

	Scrape  ScrapeCmd  `cmd:"" help:"Print the cleaned text of a page"`
	Parse   ParseCmd   `cmd:"" help:"Extract described information from a page"`
	Session SessionCmd `cmd:"" help:"Scrape once, then answer descriptions read from stdin"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Description string `arg:"" help:"What to extract, in plain language"`
	URL         string `short:"u" help:"Page to scrape"`
	File        string `short:"f" help:"Read already-cleaned text from a file ('-' for stdin) instead of scraping"`
}

// SessionCmd is the "session" subcommand.
type SessionCmd struct {
	URL string `arg:"" optional:"" help:"Page to scrape first"`
}
