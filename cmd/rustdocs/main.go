package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/gitduk/rustdocs"
	"github.com/gitduk/rustdocs/cargo"
	"github.com/gitduk/rustdocs/fs"
	"github.com/gitduk/rustdocs/htmltomarkdown"
	rdhttp "github.com/gitduk/rustdocs/http"
	"github.com/gitduk/rustdocs/resolve"
	rdslog "github.com/gitduk/rustdocs/slog"
	"github.com/gitduk/rustdocs/sqlite"
	"github.com/gitduk/rustdocs/task"
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
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the documentation store.
	DB *sqlite.DB

	// Store for end-to-end testing.
	Store rustdocs.Store
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rustdocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rustdocs --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the store database.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RUSTDOCS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	converter := htmltomarkdown.NewConverter()
	filesystem := fs.NewFileSystem()

	// The store is the single process-wide service; every invocation
	// shares this instance.
	m.Store = sqlite.NewStore(m.DB, converter)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		m.Store = rdslog.NewLoggingStore(m.Store, logger)
	}

	// A missing workspace root only disables the local stages.
	workspaceRoot := ""
	locator := &cargo.Locator{FileSystem: filesystem}
	if root, err := locator.Locate(ctx, cli.Dir); err == nil {
		workspaceRoot = root
	} else if rustdocs.ErrorCode(err) != rustdocs.ENOTFOUND {
		return err
	}

	fetcher := rdhttp.NewFetcher()
	defer fetcher.Close()

	deps.Store = m.Store
	deps.Orchestrator = &task.Orchestrator{
		Resolver: &resolve.Resolver{
			Store:         m.Store,
			FileSystem:    filesystem,
			Fetcher:       fetcher,
			Converter:     converter,
			WorkspaceRoot: workspaceRoot,
			DocsHost:      cli.Host,
		},
		Indexer: &resolve.Dispatcher{
			Store:         m.Store,
			FileSystem:    filesystem,
			WorkspaceRoot: workspaceRoot,
			NewProvider: func(fs rustdocs.FileSystem, root string) rustdocs.CrawlProvider {
				return cargo.NewLocalProvider(fs, root)
			},
		},
	}
	deps.Completer = &resolve.Completer{Store: m.Store}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("RUSTDOCS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rustdocs.db"
	}
	dir := filepath.Join(home, ".rustdocs")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rustdocs.db")
}
