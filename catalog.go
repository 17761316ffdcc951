package patdoc

import (
	"context"
	"time"
)

// CatalogRecord describes one processed patent document in the catalog.
type CatalogRecord struct {
	ID          string    `json:"id"`
	Identifier  string    `json:"identifier"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	ClaimCount  int       `json:"claimCount"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *CatalogRecord) Validate() error {
	if r.Identifier == "" {
		return Errorf(EINVALID, "record identifier required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// CatalogService tracks which documents have been fetched and extracted.
type CatalogService interface {
	// RecordDocument inserts the record, replacing any previous record for
	// the same identifier. Reprocessing a document is an upsert, not an
	// error.
	RecordDocument(ctx context.Context, rec *CatalogRecord) error

	// FindRecordByIdentifier retrieves a record by document identifier.
	// Returns ENOTFOUND if no record exists.
	FindRecordByIdentifier(ctx context.Context, identifier string) (*CatalogRecord, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*CatalogRecord, error)

	// DeleteRecord permanently removes a record by document identifier.
	// Returns ENOTFOUND if no record exists.
	DeleteRecord(ctx context.Context, identifier string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Identifier *string `json:"identifier"`
	SourceURL  *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
