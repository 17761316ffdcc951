package mock

import "github.com/fwojciec/patdoc"

var _ patdoc.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of patdoc.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(rawHTML string) (*patdoc.PageContent, error)
}

func (e *ContentExtractor) ExtractContent(rawHTML string) (*patdoc.PageContent, error) {
	return e.ExtractContentFn(rawHTML)
}
