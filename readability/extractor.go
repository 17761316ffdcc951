package readability

import (
	"strings"

	"github.com/fwojciec/patdoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements patdoc.ContentExtractor at compile time.
var _ patdoc.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to pull the main content out of HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &patdoc.PageContent{
		Title: article.Title,
		Text:  article.TextContent,
	}, nil
}
