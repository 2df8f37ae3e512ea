package toc

import (
	"testing"

	"github.com/Sharma-IT/markdown-toc/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestRemoveStaleTOCs_DeletesThroughNextHeader(t *testing.T) {
	gen := New(config.Default())

	lines := []string{
		"## Table of Contents",
		"1. [A](#a)",
		"",
		"## A",
		"text",
	}

	got := gen.removeStaleTOCs(lines)

	// The blank line before the next header goes with the block.
	assert.Equal(t, []string{"## A", "text"}, got)
}

func TestRemoveStaleTOCs_ContentsVariant(t *testing.T) {
	gen := New(config.Default())

	lines := []string{"# T", "## Contents", "- [A](#a)", "## A"}
	got := gen.removeStaleTOCs(lines)

	assert.Equal(t, []string{"# T", "## A"}, got)
}

func TestRemoveStaleTOCs_RunsToEndOfDocument(t *testing.T) {
	gen := New(config.Default())

	lines := []string{"# T", "", "## Table of Contents", "1. [A](#a)", ""}
	got := gen.removeStaleTOCs(lines)

	assert.Equal(t, []string{"# T", ""}, got)
}

func TestRemoveStaleTOCs_AdjacentBlocks(t *testing.T) {
	gen := New(config.Default())

	lines := []string{
		"## Table of Contents",
		"1. [A](#a)",
		"## Contents",
		"- [A](#a)",
		"## Real",
	}

	got := gen.removeStaleTOCs(lines)

	assert.Equal(t, []string{"## Real"}, got)
}

func TestRemoveStaleTOCs_NoTOCLeavesDocumentAlone(t *testing.T) {
	gen := New(config.Default())

	lines := []string{"# T", "", "## A", "text", "", "## B"}
	got := gen.removeStaleTOCs(lines)

	assert.Equal(t, lines, got)
}

func TestRemoveStaleTOCs_CustomTitle(t *testing.T) {
	cfg := config.Default()
	cfg.TOCTitle = "## Index"
	gen := New(cfg)

	lines := []string{"## Index", "1. [A](#a)", "", "## A"}
	got := gen.removeStaleTOCs(lines)

	assert.Equal(t, []string{"## A"}, got)
}

func TestIsTOCHeading_CaseSensitive(t *testing.T) {
	gen := New(config.Default())

	assert.True(t, gen.isTOCHeading("## Table of Contents"))
	assert.True(t, gen.isTOCHeading("  ## Contents  "))
	assert.False(t, gen.isTOCHeading("## table of contents"))
	assert.False(t, gen.isTOCHeading("## Table of Contents extra"))
}
