// Package fs provides file-based storage for patent documents.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/patdoc"
)

// Format selects the on-disk encoding for structured patent records.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatYAML, FormatJSON, FormatXML:
		return Format(name), nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", patdoc.Errorf(patdoc.EINVALID, "unknown output format %q (expected yaml, json or xml)", name)
	}
}

// Ensure Store implements patdoc.DocumentStore at compile time.
var _ patdoc.DocumentStore = (*Store)(nil)

// Store writes patent documents to a directory tree. Each document
// produces a structured record under records/ and, when a markdown
// rendition is supplied, a readable copy under markdown/.
type Store struct {
	baseDir string
	format  Format
}

// NewStore creates a Store rooted at baseDir writing records in the
// given format. An empty format defaults to YAML.
func NewStore(baseDir string, format Format) *Store {
	if format == "" {
		format = FormatYAML
	}
	return &Store{baseDir: baseDir, format: format}
}

// BaseDir returns the directory the store writes under.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// RecordsDir returns the directory holding structured records.
func (s *Store) RecordsDir() string {
	return filepath.Join(s.baseDir, "records")
}

// RecordPath returns the path of the structured record for a document.
func (s *Store) RecordPath(identifier string) string {
	return filepath.Join(s.baseDir, "records", fmt.Sprintf("%s.%s", identifier, s.format))
}

// RenditionPath returns the path of the markdown rendition for a document.
func (s *Store) RenditionPath(identifier string) string {
	return filepath.Join(s.baseDir, "markdown", identifier+".md")
}

// Exists reports whether a record for the identifier is already on disk.
func (s *Store) Exists(identifier string) bool {
	if identifier == "" {
		return false
	}
	_, err := os.Stat(s.RecordPath(identifier))
	return err == nil
}

// Save writes the document's structured record and, if rendition is
// non-empty, its markdown rendition. Existing files are overwritten.
func (s *Store) Save(ctx context.Context, doc *patdoc.PatentDocument, rendition string) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	encoded, err := EncodeRecord(doc, s.format)
	if err != nil {
		return err
	}

	recordPath := s.RecordPath(doc.Identifier)
	if err := os.MkdirAll(filepath.Dir(recordPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(recordPath, encoded, 0644); err != nil {
		return err
	}

	if rendition == "" {
		return nil
	}
	renditionPath := s.RenditionPath(doc.Identifier)
	if err := os.MkdirAll(filepath.Dir(renditionPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(renditionPath, []byte(rendition), 0644)
}
