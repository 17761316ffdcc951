package patdoc

import "context"

// DocumentStore persists extraction output keyed by document identifier.
// Each document's output is independent and idempotently overwritable;
// there is no cross-document transactional state, which is what makes
// interrupted batches resumable.
type DocumentStore interface {
	// Exists reports whether output for the identifier is already present.
	// The batch layer uses this for the idempotent skip/resume check.
	Exists(identifier string) bool

	// Save writes the structured record for the document and the Markdown
	// rendition of its source page. Returns EINVALID if the document has
	// no identifier.
	Save(ctx context.Context, doc *PatentDocument, rendition string) error
}
