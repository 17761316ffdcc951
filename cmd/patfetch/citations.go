package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/patdoc"
	"github.com/fwojciec/patdoc/fs"
)

// Run executes the citations command.
func (c *CitationsCmd) Run(deps *Dependencies) error {
	scanner := fs.NewCitationScanner(recordsDir(c.Dir))
	urls, err := scanner.Scan(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", patdoc.ErrorMessage(err))
		return err
	}

	output := c.Output
	if output == "" {
		output = filepath.Join(c.Dir, "cited_by_urls.txt")
	}

	var sb strings.Builder
	for _, u := range urls {
		sb.WriteString(u)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(output, []byte(sb.String()), 0644); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d cited-by URLs to %s\n", len(urls), output)
	return nil
}

// recordsDir resolves the directory actually holding record files: a batch
// output directory keeps them under records/, but a direct path to a
// records directory works too.
func recordsDir(dir string) string {
	nested := filepath.Join(dir, "records")
	if info, err := os.Stat(nested); err == nil && info.IsDir() {
		return nested
	}
	return dir
}
