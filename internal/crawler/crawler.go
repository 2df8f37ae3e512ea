package crawler

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// readmeNames are tried in order when no input file is given.
var readmeNames = []string{"README.md", "readme.md"}

// Crawler scans a directory tree for markdown files.
type Crawler struct {
	ignored []string
}

// New creates a new crawler instance.
func New() *Crawler {
	return &Crawler{
		ignored: []string{".git", "vendor", "node_modules", "testdata"},
	}
}

// ScanDir walks the root directory and streams every markdown file path to
// the callback, skipping ignored directories. Streaming keeps memory flat
// on large trees.
func (c *Crawler) ScanDir(root string, onFile func(path string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		onFile(path)
		return nil
	})
}

// FindReadme returns the path of the README.md (or readme.md) in dir.
func FindReadme(dir string) (string, error) {
	for _, name := range readmeNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("no README.md found in %s", dir)
}
