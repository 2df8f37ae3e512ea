package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Indent styles accepted by the renderer.
const (
	StyleGitHub = "github" // flat numbered list with fixed-indent bullets
	StyleNested = "nested" // hierarchical dotted numbering (1, 1.1, 1.2, ...)
)

// Config controls which headers become TOC entries and how they render.
// It is fixed at construction; the generator never mutates it.
type Config struct {
	// HeaderLevels lists the heading depths to include. The smallest level
	// acts as the primary depth, the next as the secondary depth nested
	// under it. Any further levels are ignored.
	HeaderLevels []int `yaml:"header_levels"`

	// TOCTitle is the literal heading line emitted above the entries.
	TOCTitle string `yaml:"toc_title"`

	// IndentStyle selects the renderer: "github" or "nested".
	IndentStyle string `yaml:"indent_style"`
}

// fileConfig mirrors Config for YAML decoding so unset keys can be told
// apart from zero values. numbering_style is accepted as an alias for
// indent_style.
type fileConfig struct {
	HeaderLevels   []int  `yaml:"header_levels"`
	TOCTitle       string `yaml:"toc_title"`
	IndentStyle    string `yaml:"indent_style"`
	NumberingStyle string `yaml:"numbering_style"`
}

// Default returns the built-in configuration: H2 headers only, the
// standard TOC heading, GitHub-style flat numbering.
func Default() Config {
	return Config{
		HeaderLevels: []int{2},
		TOCTitle:     "## Table of Contents",
		IndentStyle:  StyleGitHub,
	}
}

// Load builds a Config from a YAML file at path, falling back to defaults.
// An empty path skips the file entirely. A missing or unparsable file is
// never fatal: the returned Config is always usable, and the error only
// tells the caller what to warn about. User-supplied fields override the
// defaults wholesale; unknown keys are ignored.
func Load(path string) (Config, error) {
	// Load .env if exists
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		applyEnv(&cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		applyEnv(&cfg)
		return cfg, err
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		applyEnv(&cfg)
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(file.HeaderLevels) > 0 {
		cfg.HeaderLevels = file.HeaderLevels
	}
	if file.TOCTitle != "" {
		cfg.TOCTitle = file.TOCTitle
	}
	if file.NumberingStyle != "" {
		cfg.IndentStyle = file.NumberingStyle
	}
	if file.IndentStyle != "" {
		cfg.IndentStyle = file.IndentStyle
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides fields from MDTOC_* environment variables, which take
// precedence over both defaults and the config file.
func applyEnv(cfg *Config) {
	if title := os.Getenv("MDTOC_TOC_TITLE"); title != "" {
		cfg.TOCTitle = title
	}
	if style := os.Getenv("MDTOC_INDENT_STYLE"); style != "" {
		cfg.IndentStyle = style
	}
	if levels := os.Getenv("MDTOC_HEADER_LEVELS"); levels != "" {
		if parsed, err := parseLevels(levels); err == nil {
			cfg.HeaderLevels = parsed
		}
	}
}

// parseLevels parses a comma-separated level list like "2,3". A value with
// any unparsable part is rejected wholesale so a typo cannot half-apply.
func parseLevels(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	levels := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		levels = append(levels, n)
	}
	return levels, nil
}
