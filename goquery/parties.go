package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/patdoc"
)

// Role identifies a party role on a patent document.
type Role string

// Party roles recognized by the extractor.
const (
	RoleAssignee Role = "assignee"
	RoleInventor Role = "inventor"
)

// roleSelectors maps a role to the itemprop tags that mark its elements
// explicitly. Assignees appear under current and original variants.
var roleSelectors = map[Role]string{
	RoleAssignee: "[itemprop=assigneeCurrent], [itemprop=assigneeOriginal], [itemprop=assigneeSearch]",
	RoleInventor: "[itemprop=inventor]",
}

// partySectionSelectors locate the page section dedicated to a role.
var partySectionSelectors = map[Role]string{
	RoleAssignee: "#assignee, #assignees, section.assignee, .assignee-list",
	RoleInventor: "#inventor, #inventors, section.inventor, .inventor-list",
}

// roleLabelWords are bare label strings that must never be returned as
// names.
var roleLabelWords = map[string]bool{
	"assignee":          true,
	"assignees":         true,
	"inventor":          true,
	"inventors":         true,
	"current":           true,
	"original":          true,
	"current assignee":  true,
	"original assignee": true,
	"current inventor":  true,
	"original inventor": true,
}

// rolePrefixRes strip a leading "Current/Original <Role>:" label from a
// candidate name.
var rolePrefixRes = map[Role]*regexp.Regexp{
	RoleAssignee: regexp.MustCompile(`(?i)^(?:current|original)?\s*assignees?\s*:\s*`),
	RoleInventor: regexp.MustCompile(`(?i)^(?:current|original)?\s*inventors?\s*:\s*`),
}

// partyStrategy resolves candidate names for one role from the document.
type partyStrategy func(doc *goquery.Document, role Role) []string

// partyStrategies is the fallback chain for party-name extraction, highest
// priority first. Each strategy runs only when all prior strategies
// produced zero names.
var partyStrategies = []partyStrategy{
	partyFromRoleTags,
	partyFromRoleSection,
	partyFromLabelPairs,
	partyFromTableRows,
}

// extractPartyNames resolves assignee or inventor names through the
// strategy chain. Within the winning strategy duplicates are suppressed
// (first occurrence wins) and label prefixes are stripped.
func extractPartyNames(doc *goquery.Document, role Role) []string {
	for _, strategy := range partyStrategies {
		if names := strategy(doc, role); len(names) > 0 {
			return names
		}
	}
	return nil
}

// partyCollector accumulates cleaned names with first-occurrence dedup.
type partyCollector struct {
	role  Role
	seen  map[string]bool
	names []string
}

func newPartyCollector(role Role) *partyCollector {
	return &partyCollector{role: role, seen: make(map[string]bool)}
}

// add cleans a raw candidate and records it unless it is empty, a bare
// role label, or already present.
func (c *partyCollector) add(raw string) {
	name := cleanPartyName(raw, c.role)
	if name == "" || roleLabelWords[strings.ToLower(name)] {
		return
	}
	if c.seen[name] {
		return
	}
	c.seen[name] = true
	c.names = append(c.names, name)
}

// cleanPartyName normalizes a raw candidate: ASCII only, whitespace
// collapsed, leading role-label prefix stripped.
func cleanPartyName(raw string, role Role) string {
	name := patdoc.CollapseWhitespace(patdoc.StripNonASCII(raw))
	return strings.TrimSpace(rolePrefixRes[role].ReplaceAllString(name, ""))
}

// partyFromRoleTags reads elements explicitly tagged with the role,
// preferring a nested name sub-element over the element's own text.
func partyFromRoleTags(doc *goquery.Document, role Role) []string {
	c := newPartyCollector(role)
	doc.Find(roleSelectors[role]).Each(func(_ int, sel *goquery.Selection) {
		if name := sel.Find("[itemprop=name], .name").First(); name.Length() > 0 {
			c.add(name.Text())
			return
		}
		c.add(sel.Text())
	})
	return c.names
}

// partyFromRoleSection scans the role's section container for list, link
// and text children. Children whose text is only a role label ("Assignee",
// "Current", "Original") head the section and are excluded.
func partyFromRoleSection(doc *goquery.Document, role Role) []string {
	section := doc.Find(partySectionSelectors[role]).First()
	if section.Length() == 0 {
		return nil
	}

	for _, childSel := range []string{"li", "a", "dd, span"} {
		c := newPartyCollector(role)
		section.Find(childSel).Each(func(_ int, child *goquery.Selection) {
			c.add(child.Text())
		})
		if len(c.names) > 0 {
			return c.names
		}
	}

	// No structured children: the section's own text is the last resort.
	c := newPartyCollector(role)
	c.add(section.Text())
	return c.names
}

// partyFromLabelPairs reads dt/dd label pairs whose label text contains
// the role keyword.
func partyFromLabelPairs(doc *goquery.Document, role Role) []string {
	c := newPartyCollector(role)
	keyword := string(role)
	doc.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		if !strings.Contains(strings.ToLower(dt.Text()), keyword) {
			return
		}
		dt.NextFilteredUntil("dd", "dt").Each(func(_ int, dd *goquery.Selection) {
			c.add(dd.Text())
		})
	})
	return c.names
}

// partyFromTableRows reads table rows whose first cell contains the role
// keyword; the remaining cells carry the names.
func partyFromTableRows(doc *goquery.Document, role Role) []string {
	c := newPartyCollector(role)
	keyword := string(role)
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < 2 {
			return
		}
		if !strings.Contains(strings.ToLower(cells.First().Text()), keyword) {
			return
		}
		cells.Slice(1, cells.Length()).Each(func(_ int, cell *goquery.Selection) {
			c.add(cell.Text())
		})
	})
	return c.names
}
