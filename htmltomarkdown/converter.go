package htmltomarkdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/patdoc"
)

// Ensure Converter implements patdoc.Converter at compile time.
var _ patdoc.Converter = (*Converter)(nil)

// Elements that carry no visible content, plus the placeholder images
// Google Patents serves for missing figures.
const strippedElements = "script, style, noscript, iframe, img.patent-image-not-available"

// sectionHeaders are the top-level sections of a patent page, in page
// order. They drive the table of contents and the section separators.
var sectionHeaders = []string{
	"Abstract",
	"Claims",
	"Description",
	"Legal Events",
	"Classifications",
	"Citations",
}

var (
	// Pipe tables get surrounding blank lines so they render standalone.
	tableRe = regexp.MustCompile(`\|.*\|[\s]*\n\|[\s]*[-]+[\s]*\|[\s]*[-]+[\s]*\|.*\n(\|.*\|[\s]*\n)*`)

	// Relative citation links become absolute Google Patents links.
	patentLinkRe = regexp.MustCompile(`\[([A-Z]{2}\d+[A-Z0-9]*)\s+\((\w+)\)\]\(/patent/([A-Z0-9]+)/(\w+)\)`)

	blankRunRe = regexp.MustCompile(`\n{4,}`)

	// Figure measurement artifacts leak into the description text as
	// tokens like "0.000description12".
	artifactRe = regexp.MustCompile(`0\.000\w+\d+`)

	sectionHeadingRe = regexp.MustCompile(`(?m)^## (Abstract|Claims|Description|Legal Events|Classifications|Citations)\n`)
)

// Converter renders a patent page as a readable Markdown document: a
// heading with the publication number and title, a table of contents,
// then the page content converted section by section.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms patent page HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", patdoc.Errorf(patdoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", patdoc.Errorf(patdoc.EINVALID, "parsing HTML: %v", err)
	}
	doc.Find(strippedElements).Remove()

	number := firstValue(doc, "[itemprop=publicationNumber]")
	title := firstValue(doc, "[itemprop=title], h1")

	cleaned, err := doc.Html()
	if err != nil {
		return "", err
	}

	markdown, err := c.conv.ConvertString(cleaned)
	if err != nil {
		return "", err
	}

	return assemble(number, title, cleanupMarkdown(markdown)), nil
}

// cleanupMarkdown removes conversion artifacts from raw markdown and
// separates the patent sections with horizontal rules.
func cleanupMarkdown(markdown string) string {
	markdown = tableRe.ReplaceAllString(markdown, "\n\n${0}\n\n")
	markdown = patentLinkRe.ReplaceAllString(markdown, "[$1 ($2)](https://patents.google.com/patent/$3/$4)")
	markdown = blankRunRe.ReplaceAllString(markdown, "\n\n\n")
	markdown = patdoc.StripNonASCII(markdown)
	markdown = artifactRe.ReplaceAllString(markdown, "")
	markdown = sectionHeadingRe.ReplaceAllString(markdown, "\n\n---\n\n## $1\n\n")
	return markdown
}

// assemble prepends the document heading and a table of contents
// listing the sections present in the content.
func assemble(number, title, markdown string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Patent %s\n\n", number)
	if title != "" {
		fmt.Fprintf(&b, "## %s\n\n", title)
	}

	b.WriteString("## Table of Contents\n\n")
	lower := strings.ToLower(markdown)
	for _, header := range sectionHeaders {
		if strings.Contains(lower, strings.ToLower(header)) {
			fmt.Fprintf(&b, "- [%s](#%s)\n", header, strings.ReplaceAll(strings.ToLower(header), " ", "-"))
		}
	}
	b.WriteString("\n---\n\n")

	b.WriteString(markdown)
	return b.String()
}

// firstValue reads the first match's meta-style content attribute,
// falling back to its text.
func firstValue(doc *goquery.Document, selector string) string {
	sel := doc.Find(selector).First()
	if content, ok := sel.Attr("content"); ok {
		if v := patdoc.CollapseWhitespace(patdoc.StripNonASCII(content)); v != "" {
			return v
		}
	}
	return patdoc.CollapseWhitespace(patdoc.StripNonASCII(sel.Text()))
}
