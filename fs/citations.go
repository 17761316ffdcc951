package fs

import (
	"context"
	"regexp"
	"strings"

	"github.com/fwojciec/patdoc/bloom"
)

// citationNumberRe matches bare publication numbers such as US9876543B2
// or EP1234567. The kind code suffix is optional.
var citationNumberRe = regexp.MustCompile(`^[A-Z]{2}\d+[A-Z]?\d*$`)

// GooglePatentURL returns the canonical patent page URL for a
// publication number.
func GooglePatentURL(number string) string {
	return "https://patents.google.com/patent/" + number + "/en"
}

// CitationScanner collects forward-citation publication numbers from
// saved records and turns them into fetchable page URLs for a
// follow-up run.
type CitationScanner struct {
	recordsDir string
	filter     *bloom.Filter
}

// NewCitationScanner creates a scanner over the given records directory.
func NewCitationScanner(recordsDir string) *CitationScanner {
	return &CitationScanner{
		recordsDir: recordsDir,
		filter:     bloom.NewFilter(100000, 0.001),
	}
}

// Scan reads every record under the scanner's directory and returns
// page URLs for cited documents that have no record of their own yet.
// Each number is emitted at most once across the whole set.
func (s *CitationScanner) Scan(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs, err := readRecordsDir(s.recordsDir)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, doc := range docs {
		s.filter.Add(doc.Identifier)
		candidates = append(candidates, doc.CitedBy...)
	}

	urls := []string{}
	for _, raw := range candidates {
		number := strings.TrimSpace(raw)
		if !citationNumberRe.MatchString(number) {
			continue
		}
		if s.filter.TestAndAdd(number) {
			continue
		}
		urls = append(urls, GooglePatentURL(number))
	}
	return urls, nil
}
