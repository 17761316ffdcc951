package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/patdoc"
)

// Scalar document fields carry a microdata itemprop tag in Google Patents
// markup. Date values vary in format between jurisdictions and are passed
// through verbatim.

// rowScopeSelector matches the itemprop'd row containers that hold per-row
// records: citation tables, family lists, legal event rows. A title or date
// nested inside one belongs to that row, not the document.
const rowScopeSelector = "tr[itemprop], li[itemprop], dd[itemprop], dt[itemprop]"

// extractScalar returns the value of the first document-level element
// tagged with the itemprop key. Values nested inside itemprop'd row
// containers are skipped. Missing elements yield an empty string.
func extractScalar(doc *goquery.Document, key string) string {
	value := ""
	doc.Find("[itemprop=" + key + "]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.ParentsFiltered(rowScopeSelector).Length() > 0 {
			return true
		}
		value = scalarValue(sel)
		return value == ""
	})
	return value
}

// scalarValue reads an element's value: a meta-style content attribute
// first, else the element text.
func scalarValue(sel *goquery.Selection) string {
	if content, ok := sel.Attr("content"); ok {
		if v := patdoc.CollapseWhitespace(patdoc.StripNonASCII(content)); v != "" {
			return v
		}
	}
	return patdoc.CollapseWhitespace(patdoc.StripNonASCII(sel.Text()))
}

// extractGrantDate scans the legal event rows for the grant event and
// returns its date. This is a filtered search, not a fallback chain: only
// the "Application granted" event carries the grant date.
func extractGrantDate(doc *goquery.Document) string {
	date := ""
	doc.Find("[itemprop=events]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := sel.Find("[itemprop=title]").Text()
		if !strings.Contains(title, "Application granted") {
			return true
		}
		date = scalarValue(sel.Find("[itemprop=date]").First())
		return false
	})
	return date
}

// extractCitedBy collects forward-citation publication numbers from the
// cited-by table rows in first-occurrence order, duplicates suppressed.
func extractCitedBy(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var numbers []string
	doc.Find("tr[itemprop^=forwardReferences] [itemprop=publicationNumber]").Each(func(_ int, sel *goquery.Selection) {
		num := patdoc.CollapseWhitespace(patdoc.StripNonASCII(sel.Text()))
		if num == "" || seen[num] {
			return
		}
		seen[num] = true
		numbers = append(numbers, num)
	})
	return numbers
}
