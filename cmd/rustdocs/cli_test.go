package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/gitduk/rustdocs/cmd/rustdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	// Parse --help (Kong writes help to stdout)
	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()

	expectedCommands := []string{"docs", "index", "search"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_DocsArgumentPassesThrough(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	// The reserved --index flag belongs to the domain grammar, not to the
	// CLI, so it must survive parsing as a positional argument.
	_, err = parser.Parse([]string{"docs", "--index", "serde"})

	require.NoError(t, err)
	assert.Equal(t, []string{"--index", "serde"}, cli.Docs.Argument)
}
