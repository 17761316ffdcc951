package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/patdoc"
	"github.com/fwojciec/patdoc/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	output := c.Output
	if output == "" {
		output = filepath.Join(c.Dir, "patent_data.csv")
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fs.ExportCSV(recordsDir(c.Dir), f); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", patdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Data extracted and saved to %s\n", output)
	return nil
}
