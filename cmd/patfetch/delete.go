package main

import (
	"fmt"

	"github.com/fwojciec/patdoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Catalog.DeleteRecord(deps.Ctx, c.Identifier); err != nil {
		if patdoc.ErrorCode(err) == patdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'patfetch list' to see catalog records.\n", c.Identifier)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", patdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %q\n", c.Identifier)
	return nil
}
