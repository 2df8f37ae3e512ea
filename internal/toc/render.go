package toc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sharma-IT/markdown-toc/internal/config"
)

// maxNestedDepth bounds the counter array for nested numbering.
const maxNestedDepth = 6

// render formats the collected headers under the configured TOC title.
// Unknown indent styles fall back to the GitHub style.
func (g *Generator) render(headers []Header) []string {
	lines := []string{g.cfg.TOCTitle}
	switch g.cfg.IndentStyle {
	case config.StyleNested:
		lines = append(lines, renderNested(headers)...)
	default:
		lines = append(lines, renderFlat(headers)...)
	}
	return lines
}

// renderFlat emits a GitHub-friendly list: depth 0 entries get a running
// ordinal, depth 1 entries become fixed-indent bullets under them.
func renderFlat(headers []Header) []string {
	lines := make([]string, 0, len(headers))
	ordinal := 0
	for _, h := range headers {
		if h.Depth == 0 {
			ordinal++
			lines = append(lines, fmt.Sprintf("%d. [%s](#%s)", ordinal, h.Text, h.Slug))
		} else {
			lines = append(lines, fmt.Sprintf("   - [%s](#%s)", h.Text, h.Slug))
		}
	}
	return lines
}

// renderNested emits hierarchical dotted numbering. Each header increments
// the counter at its own depth and resets all deeper counters, so a
// primary header after "1.2" starts section "2".
func renderNested(headers []Header) []string {
	lines := make([]string, 0, len(headers))
	counters := make([]int, maxNestedDepth)
	for _, h := range headers {
		counters[h.Depth]++
		for i := h.Depth + 1; i < maxNestedDepth; i++ {
			counters[i] = 0
		}

		parts := make([]string, 0, h.Depth+1)
		for _, n := range counters[:h.Depth+1] {
			if n != 0 {
				parts = append(parts, strconv.Itoa(n))
			}
		}

		indent := strings.Repeat("    ", h.Depth)
		number := strings.Join(parts, ".")
		lines = append(lines, fmt.Sprintf("%s%s. [%s](#%s)", indent, number, h.Text, h.Slug))
	}
	return lines
}
