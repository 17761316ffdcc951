package main

import (
	"fmt"

	"github.com/fwojciec/patdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	recs, err := deps.Catalog.FindRecords(deps.Ctx, patdoc.RecordFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", patdoc.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'patfetch fetch' to process patents.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  claims=%d  %s\n",
			r.FetchedAt.Format("2006-01-02"), r.Identifier, r.ClaimCount, r.Title)
	}

	return nil
}
