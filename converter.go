package patdoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Returns the Markdown rendition used for the on-disk copy of a
	// fetched patent page.
	Convert(html string) (string, error)
}
