package mock

import (
	"context"

	"github.com/fwojciec/patdoc"
)

var _ patdoc.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of patdoc.DocumentStore.
type DocumentStore struct {
	ExistsFn func(identifier string) bool
	SaveFn   func(ctx context.Context, doc *patdoc.PatentDocument, rendition string) error
}

func (s *DocumentStore) Exists(identifier string) bool {
	return s.ExistsFn(identifier)
}

func (s *DocumentStore) Save(ctx context.Context, doc *patdoc.PatentDocument, rendition string) error {
	return s.SaveFn(ctx, doc, rendition)
}
