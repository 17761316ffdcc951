package patdoc

// DocumentExtractor produces a structured PatentDocument from patent HTML.
type DocumentExtractor interface {
	// Extract parses the HTML once and resolves every document field
	// through its strategy chain. Missing data comes back empty, never as
	// an error; callers judge success by a non-empty Identifier. An error
	// is returned only for input that cannot be parsed at all.
	Extract(html string) (*PatentDocument, error)
}

// PageContent holds generic main content recovered from an HTML page.
type PageContent struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main textual content with boilerplate removed.
	Text string
}

// ContentExtractor recovers generic main content from HTML, removing
// boilerplate. The document extractor uses implementations as last-resort
// fallbacks when every field-level strategy finds nothing.
type ContentExtractor interface {
	ExtractContent(rawHTML string) (*PageContent, error)
}
