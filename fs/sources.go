package fs

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/patdoc"
)

// ReadSourceList reads one source URL per line from a text file.
// Blank lines and lines starting with # are skipped and duplicates
// are dropped, preserving first-seen order.
func ReadSourceList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sources := []string{}
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source list: %w", err)
	}
	return sources, nil
}

// ReadSourceCSV reads source URLs from a patent search export CSV.
// Search exports carry a metadata line above the header row, so the
// first line is always skipped. URLs are taken from the first column
// whose header contains "url" or "link".
func ReadSourceCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// The metadata line is not valid CSV (it may carry bare quotes), so
	// it is consumed raw before the reader takes over.
	br := bufio.NewReader(f)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err == io.EOF && strings.TrimSpace(line) == "" {
		return nil, patdoc.Errorf(patdoc.EINVALID, "%s: empty CSV file", path)
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, patdoc.Errorf(patdoc.EINVALID, "%s: CSV file has no header row", path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	urlColumn := -1
	for i, name := range header {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "url") || strings.Contains(lower, "link") {
			urlColumn = i
			break
		}
	}
	if urlColumn == -1 {
		return nil, patdoc.Errorf(patdoc.EINVALID, "%s: CSV file must have a column containing URLs (no url or link column found)", path)
	}

	sources := []string{}
	seen := make(map[string]bool)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if urlColumn >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[urlColumn])
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		sources = append(sources, value)
	}
	return sources, nil
}
