package mock

import (
	"context"

	"github.com/fwojciec/patdoc"
)

var _ patdoc.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of patdoc.CatalogService.
type CatalogService struct {
	RecordDocumentFn         func(ctx context.Context, rec *patdoc.CatalogRecord) error
	FindRecordByIdentifierFn func(ctx context.Context, identifier string) (*patdoc.CatalogRecord, error)
	FindRecordsFn            func(ctx context.Context, filter patdoc.RecordFilter) ([]*patdoc.CatalogRecord, error)
	DeleteRecordFn           func(ctx context.Context, identifier string) error
}

func (s *CatalogService) RecordDocument(ctx context.Context, rec *patdoc.CatalogRecord) error {
	return s.RecordDocumentFn(ctx, rec)
}

func (s *CatalogService) FindRecordByIdentifier(ctx context.Context, identifier string) (*patdoc.CatalogRecord, error) {
	return s.FindRecordByIdentifierFn(ctx, identifier)
}

func (s *CatalogService) FindRecords(ctx context.Context, filter patdoc.RecordFilter) ([]*patdoc.CatalogRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *CatalogService) DeleteRecord(ctx context.Context, identifier string) error {
	return s.DeleteRecordFn(ctx, identifier)
}
