package main

import (
	"context"
	"io"

	"github.com/gitduk/rustdocs"
	"github.com/gitduk/rustdocs/resolve"
	"github.com/gitduk/rustdocs/task"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Store        rustdocs.Store
	Orchestrator *task.Orchestrator
	Completer    *resolve.Completer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string `help:"Project directory for Cargo workspace discovery" default:"." type:"path"`
	Host    string `help:"Remote documentation host" default:"https://docs.rs"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Docs   DocsCmd   `cmd:"" help:"Show documentation for a crate item path"`
	Index  IndexCmd  `cmd:"" help:"Crawl a crate's local cargo doc output into the store"`
	Search SearchCmd `cmd:"" help:"Search indexed docs for completion candidates"`
}

// DocsCmd is the "docs" subcommand. The argument uses the slash-command
// grammar, so "--index <crate>" inside it switches to index mode.
type DocsCmd struct {
	Argument []string `arg:"" optional:"" passthrough:"" help:"Item path (crate::segment::...) or --index <crate>"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Crate string `arg:"" help:"Crate to index"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Partial item path to complete"`
}
