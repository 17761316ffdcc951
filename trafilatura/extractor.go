package trafilatura

import (
	"strings"

	"github.com/fwojciec/patdoc"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements patdoc.ContentExtractor at compile time.
var _ patdoc.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the main content out of HTML.
// It serves as a generic fallback for pages the field selectors cannot
// read.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent processes raw HTML and returns the page title and main
// text.
func (e *Extractor) ExtractContent(rawHTML string) (*patdoc.PageContent, error) {
	if rawHTML == "" {
		return nil, patdoc.Errorf(patdoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &patdoc.PageContent{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
