package toc

import "strings"

// removeStaleTOCs deletes every previously inserted TOC block. A block
// starts at a line whose trimmed text equals a recognized TOC heading and
// runs up to (not including) the next header line, or to end of document.
// A blank line directly before that header belongs to the block and is
// deleted with it.
//
// All removal ranges are collected in one linear pass and spliced out at
// once, so the scan terminates on any input. The result converges: a
// document never holds more than one TOC after regeneration.
func (g *Generator) removeStaleTOCs(lines []string) []string {
	type span struct{ start, end int }

	var stale []span
	for i := 0; i < len(lines); {
		if !g.isTOCHeading(lines[i]) {
			i++
			continue
		}
		end := nextHeaderAt(lines, i+1)
		stale = append(stale, span{start: i, end: end})
		i = end
	}
	if len(stale) == 0 {
		return lines
	}

	kept := make([]string, 0, len(lines))
	next := 0
	for i, line := range lines {
		for next < len(stale) && i >= stale[next].end {
			next++
		}
		if next < len(stale) && i >= stale[next].start {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// isTOCHeading reports whether the trimmed line exactly matches one of the
// recognized TOC heading lines. The comparison is case-sensitive.
func (g *Generator) isTOCHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, heading := range g.tocHeadings {
		if trimmed == heading {
			return true
		}
	}
	return false
}
