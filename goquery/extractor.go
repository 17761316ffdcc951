package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/patdoc"
)

// Ensure Extractor implements patdoc.DocumentExtractor at compile time.
var _ patdoc.DocumentExtractor = (*Extractor)(nil)

// Extractor resolves every PatentDocument field from Google Patents style
// HTML. Each field goes through an ordered chain of selector strategies and
// the first strategy producing a non-empty result wins; later strategies
// are skipped, never merged.
//
// Fallbacks, when set, are generic main-content extractors tried in order
// for the title and description after every selector strategy came up
// empty. They are strictly last resort.
type Extractor struct {
	Fallbacks []patdoc.ContentExtractor
}

// NewExtractor creates a new Extractor with the given content fallbacks.
func NewExtractor(fallbacks ...patdoc.ContentExtractor) *Extractor {
	return &Extractor{Fallbacks: fallbacks}
}

// Extract parses html once and resolves all document fields. Missing data
// comes back empty; an error is returned only for input that cannot be
// parsed at all. Extraction is a pure function of its input, so repeated
// calls on the same HTML yield field-for-field identical records.
func (e *Extractor) Extract(html string) (*patdoc.PatentDocument, error) {
	if strings.TrimSpace(html) == "" {
		return nil, patdoc.Errorf(patdoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, patdoc.Errorf(patdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	out := &patdoc.PatentDocument{
		Identifier:      extractScalar(doc, "publicationNumber"),
		Title:           extractScalar(doc, "title"),
		AssigneeNames:   extractPartyNames(doc, RoleAssignee),
		InventorNames:   extractPartyNames(doc, RoleInventor),
		PriorityDate:    extractScalar(doc, "priorityDate"),
		FilingDate:      extractScalar(doc, "filingDate"),
		PublicationDate: extractScalar(doc, "publicationDate"),
		GrantDate:       extractGrantDate(doc),
		AbstractText:    extractAbstract(doc),
		DescriptionText: extractSectionText(doc, descriptionAliases),
		Claims:          extractClaims(doc),
		CitedBy:         extractCitedBy(doc),
	}

	e.applyFallbacks(out, html)

	return out, nil
}

// extractAbstract reads the abstract section. Some layouts repeat the
// section heading inside the container, so a leading "Abstract" word is
// trimmed off.
func extractAbstract(doc *goquery.Document) string {
	text := extractSectionText(doc, abstractAliases)
	return strings.TrimSpace(strings.TrimPrefix(text, "Abstract"))
}

// applyFallbacks fills title and description from generic main-content
// extraction when the selector chains produced nothing for them.
func (e *Extractor) applyFallbacks(doc *patdoc.PatentDocument, rawHTML string) {
	if doc.Title != "" && doc.DescriptionText != "" {
		return
	}

	for _, fb := range e.Fallbacks {
		content, err := fb.ExtractContent(rawHTML)
		if err != nil || content == nil {
			continue
		}
		if doc.Title == "" && content.Title != "" {
			doc.Title = patdoc.CollapseWhitespace(patdoc.StripNonASCII(content.Title))
		}
		if doc.DescriptionText == "" && content.Text != "" {
			text := patdoc.IsolateEnglish(content.Text)
			doc.DescriptionText = patdoc.CollapseWhitespace(patdoc.StripNonASCII(text))
		}
		if doc.Title != "" && doc.DescriptionText != "" {
			return
		}
	}
}
