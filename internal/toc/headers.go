package toc

import (
	"regexp"
	"strings"
)

var (
	// Unicode classes, not \w: Go's \w is ASCII-only and would strip
	// letters like é that anchors keep.
	nonSlugChars  = regexp.MustCompile(`[^\p{L}\p{N}\s_-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// collectHeaders scans lines from the description boundary onward and
// returns the TOC entries. Headers at the primary level (the smallest
// configured level) open a depth 0 entry; headers at the secondary level
// (the next configured level) nest at depth 1 under it. A secondary header
// seen before any primary header is dropped, as is any header whose text
// matches a reserved TOC title. Configured levels beyond the first two are
// never collected.
func (g *Generator) collectHeaders(lines []string, from int) []Header {
	primary, secondary := splitLevels(g.cfg.HeaderLevels)

	var headers []Header
	seenPrimary := false
	for _, line := range lines[from:] {
		match := headerPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		level := len(match[1])
		text := match[2]
		if g.isSkippedTitle(text) {
			continue
		}

		switch {
		case level == primary:
			headers = append(headers, Header{Depth: 0, Text: text, Slug: Slugify(text)})
			seenPrimary = true
		case level == secondary && seenPrimary:
			headers = append(headers, Header{Depth: 1, Text: text, Slug: Slugify(text)})
		}
	}
	return headers
}

// splitLevels maps the configured level set onto the primary and secondary
// collection depths. Secondary is 0 (matching no header) when only one
// level is configured.
func splitLevels(levels []int) (primary, secondary int) {
	for _, lvl := range levels {
		if lvl <= 0 {
			continue
		}
		switch {
		case primary == 0 || lvl < primary:
			if primary != 0 && (secondary == 0 || primary < secondary) {
				secondary = primary
			}
			primary = lvl
		case lvl == primary:
		case secondary == 0 || lvl < secondary:
			secondary = lvl
		}
	}
	return primary, secondary
}

// isSkippedTitle reports whether a header's text is reserved for TOC
// headings and must not appear as an entry inside the TOC itself.
func (g *Generator) isSkippedTitle(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, title := range g.skipTitles {
		if trimmed == title {
			return true
		}
	}
	return false
}

// Slugify converts header text to a GitHub-style anchor: lowercase, with
// punctuation removed and whitespace runs replaced by single hyphens.
// Identical text always yields an identical slug.
func Slugify(text string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(text), "")
	return whitespaceRun.ReplaceAllString(slug, "-")
}
