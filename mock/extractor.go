package mock

import "github.com/fwojciec/patdoc"

var _ patdoc.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of patdoc.DocumentExtractor.
type DocumentExtractor struct {
	ExtractFn func(html string) (*patdoc.PatentDocument, error)
}

func (e *DocumentExtractor) Extract(html string) (*patdoc.PatentDocument, error) {
	return e.ExtractFn(html)
}
