package toc

import (
	"testing"

	"github.com/Sharma-IT/markdown-toc/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestRenderFlat_OrdinalsAndBullets(t *testing.T) {
	headers := []Header{
		{Depth: 0, Text: "Alpha", Slug: "alpha"},
		{Depth: 1, Text: "Child", Slug: "child"},
		{Depth: 0, Text: "Beta", Slug: "beta"},
	}

	got := renderFlat(headers)

	assert.Equal(t, []string{
		"1. [Alpha](#alpha)",
		"   - [Child](#child)",
		"2. [Beta](#beta)",
	}, got)
}

func TestRenderNested_CountersResetPerDepth(t *testing.T) {
	headers := []Header{
		{Depth: 0, Text: "Alpha", Slug: "alpha"},
		{Depth: 1, Text: "One", Slug: "one"},
		{Depth: 1, Text: "Two", Slug: "two"},
		{Depth: 0, Text: "Beta", Slug: "beta"},
		{Depth: 1, Text: "Three", Slug: "three"},
	}

	got := renderNested(headers)

	assert.Equal(t, []string{
		"1. [Alpha](#alpha)",
		"    1.1. [One](#one)",
		"    1.2. [Two](#two)",
		"2. [Beta](#beta)",
		"    2.1. [Three](#three)",
	}, got)
}

func TestRender_TitleAlwaysFirst(t *testing.T) {
	gen := New(config.Default())

	got := gen.render(nil)

	// No headers still yields the TOC's own heading line.
	assert.Equal(t, []string{"## Table of Contents"}, got)
}

func TestRender_StyleSelection(t *testing.T) {
	headers := []Header{
		{Depth: 0, Text: "A", Slug: "a"},
		{Depth: 1, Text: "B", Slug: "b"},
	}

	t.Run("github", func(t *testing.T) {
		cfg := config.Default()
		gen := New(cfg)
		got := gen.render(headers)
		assert.Equal(t, []string{
			"## Table of Contents",
			"1. [A](#a)",
			"   - [B](#b)",
		}, got)
	})

	t.Run("nested", func(t *testing.T) {
		cfg := config.Default()
		cfg.IndentStyle = config.StyleNested
		gen := New(cfg)
		got := gen.render(headers)
		assert.Equal(t, []string{
			"## Table of Contents",
			"1. [A](#a)",
			"    1.1. [B](#b)",
		}, got)
	})

	t.Run("unknown style falls back to github", func(t *testing.T) {
		cfg := config.Default()
		cfg.IndentStyle = "fancy"
		gen := New(cfg)
		got := gen.render(headers)
		assert.Equal(t, "1. [A](#a)", got[1])
	})
}
