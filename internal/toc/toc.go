// Package toc implements the table-of-contents transformation: locate the
// document title, strip any stale TOC blocks, collect the configured
// headers, and splice a freshly rendered TOC back into the document.
package toc

import (
	"regexp"
	"strings"

	"github.com/Sharma-IT/markdown-toc/internal/config"
)

// reservedTitles are heading texts that always mark a TOC block, so they
// are both removed during cleanup and skipped during header collection.
var reservedTitles = []string{"Table of Contents", "Contents"}

var (
	headerLine    = regexp.MustCompile(`^#+\s`)
	headerPattern = regexp.MustCompile(`^(#+)\s(.+)$`)
)

// Header is one collected TOC entry. Depth 0 entries come from the primary
// heading level, depth 1 entries nest under the most recent depth 0 entry.
type Header struct {
	Depth int
	Text  string
	Slug  string
}

// Generator transforms markdown content into the same content with an
// up-to-date TOC. It holds no state between calls; running it on its own
// output is a no-op.
type Generator struct {
	cfg config.Config

	// Full heading lines whose presence marks a stale TOC block.
	tocHeadings []string
	// Heading texts excluded from collection so a TOC never lists itself.
	skipTitles []string
}

// New returns a Generator for the given configuration.
func New(cfg config.Config) *Generator {
	g := &Generator{cfg: cfg}
	for _, title := range reservedTitles {
		g.tocHeadings = append(g.tocHeadings, "## "+title)
		g.skipTitles = append(g.skipTitles, title)
	}
	// A custom TOC title must be recognized too, or regeneration would
	// stack a second TOC on top of it.
	if custom := strings.TrimSpace(cfg.TOCTitle); custom != "" {
		g.tocHeadings = append(g.tocHeadings, custom)
		g.skipTitles = append(g.skipTitles, headingText(custom))
	}
	return g
}

// Generate returns content with a regenerated TOC inserted after the
// description block. It is total over its input: a document with no title
// gets the TOC at the top, one with no headers gets a TOC holding only the
// title line.
func (g *Generator) Generate(content string) string {
	lines := strings.Split(content, "\n")

	lines = g.removeStaleTOCs(lines)

	titleIdx, hasTitle := findTitle(lines)
	descEnd := descriptionEnd(lines, titleIdx, hasTitle)
	bodyStart := nextHeaderAt(lines, descEnd)

	headers := g.collectHeaders(lines, descEnd)
	tocLines := g.render(headers)

	result := make([]string, 0, len(lines)+len(tocLines)+2)
	result = append(result, lines[:descEnd]...)
	// No separator when the TOC opens the document.
	if descEnd > 0 {
		result = append(result, "")
	}
	result = append(result, tocLines...)
	result = append(result, "")
	result = append(result, lines[bodyStart:]...)

	return strings.Join(collapseBlankLines(result), "\n")
}

// findTitle returns the index of the first H1 line. When the document has
// none it reports index 0 with found false, and insertion happens at the
// very top.
func findTitle(lines []string) (int, bool) {
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "## ") {
			return i, true
		}
	}
	return 0, false
}

// descriptionEnd returns the index one past the description block: the
// first header after the title, or title+1 when no header follows. Without
// a title the scan starts at the title position itself, so a header on the
// first line becomes the boundary instead of being swallowed into the
// replaced region. Trailing blank lines are walked back so the TOC sits
// directly under the last non-blank description line.
func descriptionEnd(lines []string, titleIdx int, hasTitle bool) int {
	start := titleIdx + 1
	if !hasTitle {
		start = titleIdx
	}

	end := titleIdx + 1
	if end > len(lines) {
		end = len(lines)
	}
	for i := start; i < len(lines); i++ {
		if headerLine.MatchString(lines[i]) {
			end = i
			break
		}
	}
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return end
}

// nextHeaderAt returns the index of the first header line at or after from,
// or len(lines) when none exists. Everything between the description end
// and this index is replaced by the fresh TOC.
func nextHeaderAt(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if headerLine.MatchString(lines[i]) {
			return i
		}
	}
	return len(lines)
}

// collapseBlankLines removes one of every adjacent pair of blank lines
// until none remain. Whitespace-only lines count as blank.
func collapseBlankLines(lines []string) []string {
	out := lines[:0:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" &&
			len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// headingText strips the marker prefix from a heading line.
func headingText(heading string) string {
	return strings.TrimSpace(strings.TrimLeft(heading, "#"))
}
