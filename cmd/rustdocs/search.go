package main

import "fmt"

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	candidates, err := deps.Completer.Complete(deps.Ctx, c.Query, nil)
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		fmt.Fprintf(deps.Stderr, "no matches for %q. Index a crate first with 'rustdocs index <crate>'.\n", c.Query)
		return nil
	}

	for _, candidate := range candidates {
		fmt.Fprintln(deps.Stdout, candidate)
	}
	return nil
}
