package main

import (
	"fmt"

	"github.com/gitduk/rustdocs"
)

// Run executes the index command by feeding the reserved flag form through
// the same orchestrator as the docs command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	argument := rustdocs.IndexFlag + " " + c.Crate

	inv := deps.Orchestrator.Run(deps.Ctx, argument)
	out, err := inv.Output(deps.Ctx)
	if err != nil {
		if rustdocs.ErrorCode(err) == rustdocs.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s. Run from a directory inside a Cargo workspace, or pass --dir.\n", rustdocs.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, out.Text)
	return nil
}
