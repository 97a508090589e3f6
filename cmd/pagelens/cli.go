package main

import (
	"context"
	"io"
	"time"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Fetcher   pagelens.Fetcher
	Extractor pagelens.Extractor
	Contacts  pagelens.ContactService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API server"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape URLs and print their normalized documents"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string `default:":8000" env:"PAGELENS_ADDR" help:"Listen address"`
	DefaultURL string `env:"PAGELENS_DEFAULT_URL" help:"URL scraped when a request carries no url parameter"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string      `arg:"" name:"url" help:"URLs to scrape"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"10s" help:"Per-request fetch timeout"`
	RPS         float64       `default:"1" help:"Requests per second per domain"`
}
