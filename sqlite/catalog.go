package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/patdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ patdoc.CatalogService = (*CatalogService)(nil)

// CatalogService implements patdoc.CatalogService using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// RecordDocument inserts the record, replacing any previous record for the
// same identifier. A replaced row keeps its original ID.
func (s *CatalogService) RecordDocument(ctx context.Context, rec *patdoc.CatalogRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = time.Now().UTC()
	}

	// On conflict the existing row's id wins; RETURNING reports the id that
	// was actually stored so the record reflects the row.
	return s.db.QueryRowContext(ctx, `
		INSERT INTO records (id, identifier, source_url, title, claim_count, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(identifier) DO UPDATE SET
			source_url = excluded.source_url,
			title = excluded.title,
			claim_count = excluded.claim_count,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, rec.ID, rec.Identifier, rec.SourceURL, rec.Title, rec.ClaimCount,
		rec.ContentHash, rec.FetchedAt.Format(time.RFC3339)).Scan(&rec.ID)
}

// FindRecordByIdentifier retrieves a record by document identifier.
func (s *CatalogService) FindRecordByIdentifier(ctx context.Context, identifier string) (*patdoc.CatalogRecord, error) {
	var rec patdoc.CatalogRecord
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, identifier, source_url, title, claim_count, content_hash, fetched_at
		FROM records
		WHERE identifier = ?
	`, identifier).Scan(&rec.ID, &rec.Identifier, &rec.SourceURL, &rec.Title,
		&rec.ClaimCount, &rec.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, patdoc.Errorf(patdoc.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	if rec.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *CatalogService) FindRecords(ctx context.Context, filter patdoc.RecordFilter) ([]*patdoc.CatalogRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, identifier, source_url, title, claim_count, content_hash, fetched_at FROM records WHERE 1=1")

	if filter.Identifier != nil {
		query.WriteString(" AND identifier = ?")
		args = append(args, *filter.Identifier)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, identifier ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*patdoc.CatalogRecord
	for rows.Next() {
		var rec patdoc.CatalogRecord
		var fetchedAt string

		if err := rows.Scan(&rec.ID, &rec.Identifier, &rec.SourceURL, &rec.Title,
			&rec.ClaimCount, &rec.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		if rec.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// DeleteRecord permanently removes a record by document identifier.
func (s *CatalogService) DeleteRecord(ctx context.Context, identifier string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE identifier = ?", identifier)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return patdoc.Errorf(patdoc.ENOTFOUND, "record not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
