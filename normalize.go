package patdoc

import (
	"regexp"
	"strings"
)

// Patent pages for non-English jurisdictions often carry the original text
// and a machine translation back to back. These patterns recognize the
// layouts seen in practice: an explicit translation marker phrase, bracketed
// two-letter language codes, or uppercase language headers.
var (
	translationMarkerRe = regexp.MustCompile(`(?i)english\s+translation\s*[:\-]?\s*`)
	languageCodeRe      = regexp.MustCompile(`\[[A-Z]{2}\]`)
	uppercaseHeaderRe   = regexp.MustCompile(`(?m)^[A-Z]{4,}[ \t]*$`)
	whitespaceRunRe     = regexp.MustCompile(`\s+`)
)

// StripNonASCII removes every code point outside the 0-127 range.
// Empty input yields empty output.
func StripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsolateEnglish returns the trailing English segment of text that carries a
// recognizable foreign-language-then-translation layout. Text without a
// recognized marker is returned unchanged: absence of a marker means the
// text is assumed to already be English, not that isolation failed.
func IsolateEnglish(s string) string {
	if loc := translationMarkerRe.FindStringIndex(s); loc != nil {
		return strings.TrimSpace(s[loc[1]:])
	}

	// Bracketed language codes such as "[DE] ... [EN] ...": keep whatever
	// follows a final [EN] segment, provided an earlier code precedes it.
	if codes := languageCodeRe.FindAllStringIndex(s, -1); len(codes) >= 2 {
		last := codes[len(codes)-1]
		if s[last[0]:last[1]] == "[EN]" {
			return strings.TrimSpace(s[last[1]:])
		}
	}

	// Uppercase language headers such as "GERMAN\n...\nENGLISH\n...":
	// keep the text under the ENGLISH header when another header precedes it.
	if headers := uppercaseHeaderRe.FindAllStringIndex(s, -1); len(headers) >= 2 {
		for i := len(headers) - 1; i >= 1; i-- {
			h := headers[i]
			if strings.TrimSpace(s[h[0]:h[1]]) == "ENGLISH" {
				return strings.TrimSpace(s[h[1]:])
			}
		}
	}

	return s
}

// CollapseWhitespace folds runs of whitespace into single spaces and trims
// the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRunRe.ReplaceAllString(s, " "))
}
