package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/patdoc"
)

// Section aliases cover the markup revisions seen across publication
// formats: microdata sections, classed or id'd containers, and bare custom
// tags. Aliases are tried in order; the first one present wins.
var (
	abstractAliases    = []string{"section[itemprop=abstract]", "[itemprop=abstract]", ".abstract", "#abstract", "abstract"}
	descriptionAliases = []string{"section[itemprop=description]", "[itemprop=description]", ".description", "#description", "description"}
	claimsAliases      = []string{"section[itemprop=claims]", "[itemprop=claims]", ".claims", "#claims", "claims"}
)

// duplicateLanguageSelector matches machine-translation source fragments
// that duplicate the original-language text inside translated sections.
const duplicateLanguageSelector = ".google-src-text, .src-text"

// extractSectionText returns the text of the first section alias present,
// with duplicate-language fragments removed before text collection and
// whitespace collapsed.
func extractSectionText(doc *goquery.Document, aliases []string) string {
	for _, alias := range aliases {
		sel := doc.Find(alias).First()
		if sel.Length() == 0 {
			continue
		}
		if text := sectionText(sel); text != "" {
			return text
		}
	}
	return ""
}

// sectionText collects a section's text. The section is cloned so that
// dropping duplicate-language fragments never mutates the parsed document
// other fields still read from.
func sectionText(sel *goquery.Selection) string {
	clone := sel.Clone()
	clone.Find(duplicateLanguageSelector).Remove()
	text := patdoc.IsolateEnglish(clone.Text())
	return patdoc.CollapseWhitespace(patdoc.StripNonASCII(text))
}
