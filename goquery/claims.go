package goquery

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/patdoc"
)

// rawClaim is a claim candidate before dependency resolution and
// post-processing.
type rawClaim struct {
	number    int
	text      string
	sel       *goquery.Selection // nil for claims recovered from plain text
	dependent bool               // structural dependent marker present
	dependsOn int                // explicit depends attribute, 0 if absent
}

// claimMethod extracts claim candidates from the claims section. Methods
// are mutually exclusive: method N runs only when method N-1 found zero
// claims.
type claimMethod func(section *goquery.Selection) []rawClaim

// claimMethods is the extraction chain: structured claim blocks, ordered
// list items, bare claim tags, then a plain-text split as last resort.
var claimMethods = []claimMethod{
	claimsFromStructuredBlocks,
	claimsFromOrderedList,
	claimsFromClaimTags,
	claimsFromPlainText,
}

// extractClaims locates the claims section, runs the method chain, then
// resolves dependencies and normalizes the result: ascending claim
// numbers, no duplicates, candidates without a parseable number dropped.
func extractClaims(doc *goquery.Document) []patdoc.Claim {
	section := findClaimsSection(doc)
	if section == nil {
		return nil
	}

	var raws []rawClaim
	for _, method := range claimMethods {
		if raws = method(section); len(raws) > 0 {
			break
		}
	}
	if len(raws) == 0 {
		return nil
	}

	raws = recoverClaimOne(section, raws)

	claims := make([]patdoc.Claim, 0, len(raws))
	seen := make(map[int]bool)
	for _, rc := range raws {
		if rc.number <= 0 || seen[rc.number] {
			continue
		}
		seen[rc.number] = true
		claims = append(claims, patdoc.Claim{
			Number:    rc.number,
			Text:      rc.text,
			DependsOn: resolveDependency(rc),
		})
	}

	sort.Slice(claims, func(i, j int) bool { return claims[i].Number < claims[j].Number })
	return claims
}

func findClaimsSection(doc *goquery.Document) *goquery.Selection {
	for _, alias := range claimsAliases {
		if sel := doc.Find(alias).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// claimIDPatterns recover a claim number from element identifiers across
// the publication formats in circulation: CLM-00001, claim-1, c-en-0001,
// clm3.
var claimIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^CLM-0*(\d+)$`),
	regexp.MustCompile(`(?i)^claim[-_]?0*(\d+)$`),
	regexp.MustCompile(`(?i)^c-[a-z]{2}-0*(\d+)$`),
	regexp.MustCompile(`(?i)^cl?m?0*(\d+)$`),
}

// numberFromID extracts a claim number from an element identifier.
// Returns 0 when no pattern matches.
func numberFromID(id string) int {
	for _, re := range claimIDPatterns {
		if m := re.FindStringSubmatch(strings.TrimSpace(id)); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}

// numberFromAttr reads a numeric attribute such as num="00001".
func numberFromAttr(sel *goquery.Selection, attr string) int {
	v, ok := sel.Attr(attr)
	if !ok {
		return 0
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
		return n
	}
	return 0
}

var leadingNumberRe = regexp.MustCompile(`^\s*(\d+)\s*[.)]`)

// numberFromText reads the leading numeral that precedes the first period
// or closing parenthesis of a claim's text.
func numberFromText(text string) int {
	if m := leadingNumberRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

var claimPrefixRe = regexp.MustCompile(`^\s*\d+\s*(?:[.)]\s*|\s)`)

// stripClaimPrefix removes a leading claim-number prefix ("1. ", "1.",
// "1 ") from claim text when present.
func stripClaimPrefix(text string) string {
	return strings.TrimSpace(claimPrefixRe.ReplaceAllString(text, ""))
}

// chemSelector matches chemical-formula placeholder elements embedded in
// claim text.
const chemSelector = "chemistry, .chemistry, img[id^=chem], img[class*=chem]"

// chemMarker is the literal token substituted for chemical formula images.
const chemMarker = "[CHEM]"

// claimBlockText assembles claim text from the container's text fragments,
// replacing chemical formula placeholders with the marker token. The
// container is cloned so replacement never mutates the parsed document.
func claimBlockText(sel *goquery.Selection) string {
	clone := sel.Clone()
	clone.Find(chemSelector).ReplaceWithHtml(chemMarker)

	fragments := clone.Find(".claim-text")
	if fragments.Length() == 0 {
		return patdoc.CollapseWhitespace(patdoc.StripNonASCII(clone.Text()))
	}

	var parts []string
	fragments.Each(func(_ int, frag *goquery.Selection) {
		// Nested fragments repeat their parent's text.
		if frag.ParentsFiltered(".claim-text").Length() > 0 {
			return
		}
		if t := patdoc.CollapseWhitespace(patdoc.StripNonASCII(frag.Text())); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

// claimsFromStructuredBlocks reads classed claim containers. Containers
// nested inside another container are skipped, as are duplicate numbers.
func claimsFromStructuredBlocks(section *goquery.Selection) []rawClaim {
	var raws []rawClaim
	seen := make(map[int]bool)
	section.Find(".claim").Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered(".claim").Length() > 0 {
			return
		}
		rc, ok := structuredClaim(sel)
		if !ok || seen[rc.number] {
			return
		}
		seen[rc.number] = true
		raws = append(raws, rc)
	})
	return raws
}

// structuredClaim resolves one container into a claim candidate: number
// from the num attribute, else the element identifier, else the leading
// numeral of the text. Containers without a parseable number are dropped.
func structuredClaim(sel *goquery.Selection) (rawClaim, bool) {
	number := numberFromAttr(sel, "num")
	if number == 0 {
		if id, ok := sel.Attr("id"); ok {
			number = numberFromID(id)
		}
	}
	text := claimBlockText(sel)
	if number == 0 {
		number = numberFromText(text)
	}
	if number == 0 {
		return rawClaim{}, false
	}
	return rawClaim{
		number:    number,
		text:      stripClaimPrefix(text),
		sel:       sel,
		dependent: sel.HasClass("claim-dependent") || sel.ParentsFiltered(".claim-dependent").Length() > 0,
	}, true
}

// claimsFromOrderedList treats each ordered-list item as a claim. The
// 1-based list position is the default number; a leading "N." or "N)"
// prefix overrides it and is stripped from the stored text.
func claimsFromOrderedList(section *goquery.Selection) []rawClaim {
	var raws []rawClaim
	pos := 0
	section.Find("ol li").Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered("li").Length() > 0 {
			return
		}
		text := patdoc.CollapseWhitespace(patdoc.StripNonASCII(sel.Text()))
		if text == "" {
			return
		}
		pos++
		number := pos
		if n := numberFromText(text); n > 0 {
			number = n
			text = stripClaimPrefix(text)
		}
		raws = append(raws, rawClaim{number: number, text: text, sel: sel})
	})
	return raws
}

// claimsFromClaimTags reads bare claim elements. An explicit depends
// attribute, when present, is authoritative for the dependency target.
func claimsFromClaimTags(section *goquery.Selection) []rawClaim {
	var raws []rawClaim
	section.Find("claim").Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered("claim").Length() > 0 {
			return
		}
		number := numberFromAttr(sel, "num")
		if number == 0 {
			if id, ok := sel.Attr("id"); ok {
				number = numberFromID(id)
			}
		}
		if number == 0 {
			return
		}
		rc := rawClaim{
			number: number,
			text:   stripClaimPrefix(claimBlockText(sel)),
			sel:    sel,
		}
		if dep, ok := sel.Attr("depends"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(dep)); err == nil && n > 0 {
				rc.dependsOn = n
			}
		}
		raws = append(raws, rc)
	})
	return raws
}

var claimMarkerRe = regexp.MustCompile(`(?m)^\s*(\d+)\.\s+`)

// claimsFromPlainText is the last resort: split the section's text on
// "N. " line markers, each claim running to the next marker or the end of
// input.
func claimsFromPlainText(section *goquery.Selection) []rawClaim {
	text := patdoc.StripNonASCII(section.Text())
	matches := claimMarkerRe.FindAllStringSubmatchIndex(text, -1)

	var raws []rawClaim
	for i, m := range matches {
		number, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || number <= 0 {
			continue
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := patdoc.CollapseWhitespace(text[m[1]:end])
		if body == "" {
			continue
		}
		raws = append(raws, rawClaim{number: number, text: body})
	}
	return raws
}

// claimOneIDs are the identifier forms under which claim 1 appears across
// publication formats.
var claimOneIDs = []string{"CLM-00001", "clm-00001", "claim-1", "c-en-0001", "clm1"}

// recoverClaimOne runs a targeted lookup for claim 1 when the extracted
// numbers start above 1. Some pages keep the first claim outside the shape
// the winning method matched.
func recoverClaimOne(section *goquery.Selection, raws []rawClaim) []rawClaim {
	lowest := 0
	for _, rc := range raws {
		if lowest == 0 || rc.number < lowest {
			lowest = rc.number
		}
	}
	if lowest <= 1 {
		return raws
	}

	for _, id := range claimOneIDs {
		sel := section.Find("[id=" + id + "]").First()
		if sel.Length() == 0 {
			continue
		}
		if rc, ok := structuredClaim(sel); ok && rc.number == 1 {
			return append(raws, rc)
		}
	}
	return raws
}

// dependencyResolver attempts to resolve the dependency target for one
// claim. Returns 0 when it has no answer.
type dependencyResolver func(rc rawClaim) int

// dependencyResolvers run in priority order: explicit depends attribute,
// explicit cross-reference element, textual reference phrase, then the
// structural dependent-marker default.
var dependencyResolvers = []dependencyResolver{
	dependencyFromAttr,
	dependencyFromCrossRef,
	dependencyFromText,
	dependencyFromDependentMarker,
}

// resolveDependency applies the resolver chain under the shared guard: a
// target must be strictly smaller than the claim's own number, which also
// rules out self-references and cycles. A guard-rejected candidate counts
// as no answer and the chain continues.
func resolveDependency(rc rawClaim) int {
	for _, resolve := range dependencyResolvers {
		if target := resolve(rc); target > 0 && target < rc.number {
			return target
		}
	}
	return 0
}

func dependencyFromAttr(rc rawClaim) int {
	return rc.dependsOn
}

// dependencyFromCrossRef resolves an explicit cross-reference element whose
// target identifier names an earlier claim.
func dependencyFromCrossRef(rc rawClaim) int {
	if rc.sel == nil {
		return 0
	}
	ref := rc.sel.Find("claim-ref").First()
	if ref.Length() == 0 {
		return 0
	}
	idref, ok := ref.Attr("idref")
	if !ok {
		return 0
	}
	return numberFromID(idref)
}

// claimRefTextRe matches the textual dependency phrases: "according to
// claim N", "as claimed in claim N", "of claim N", "in claim N".
var claimRefTextRe = regexp.MustCompile(`(?i)(?:according\s+to|as\s+claimed\s+in|of|in)\s+claims?\s+(\d+)`)

func dependencyFromText(rc rawClaim) int {
	m := claimRefTextRe.FindStringSubmatch(rc.text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// dependencyFromDependentMarker is the best-effort default: a container
// structurally marked dependent with no resolvable target is assumed to
// narrow the immediately preceding claim. A dependent claim can
// legitimately depend on any earlier claim, so this stays a last-resort
// guess.
func dependencyFromDependentMarker(rc rawClaim) int {
	if !rc.dependent || rc.number <= 1 {
		return 0
	}
	return rc.number - 1
}
