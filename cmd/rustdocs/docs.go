package main

import (
	"fmt"
	"strings"
)

// Run executes the docs command. The raw argument runs through the
// slash-command grammar, so an embedded "--index <crate>" dispatches an
// index instead of a lookup.
func (c *DocsCmd) Run(deps *Dependencies) error {
	argument := strings.Join(c.Argument, " ")

	inv := deps.Orchestrator.Run(deps.Ctx, argument)
	out, err := inv.Output(deps.Ctx)
	if err != nil {
		return err
	}

	// The CLI is a minimal adapter over CommandOutput: provenance goes to
	// stderr, the documentation text to stdout.
	desc := out.Sections[0].Descriptor
	itemPath := desc.CrateName
	if desc.ItemPath != "" {
		itemPath += "::" + desc.ItemPath
	}
	if desc.Indexed {
		fmt.Fprintf(deps.Stderr, "rustdoc index (%s): %s\n", desc.Source, desc.CrateName)
	} else {
		fmt.Fprintf(deps.Stderr, "rustdoc (%s): %s\n", desc.Source, itemPath)
	}

	fmt.Fprintln(deps.Stdout, out.Text)
	return nil
}
