package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/Sharma-IT/markdown-toc/internal/config"
	"github.com/Sharma-IT/markdown-toc/internal/crawler"
	"github.com/Sharma-IT/markdown-toc/internal/toc"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	rootCmd = &cobra.Command{
		Use:   "mdtoc [file]",
		Short: "Generate a Table of Contents for Markdown files",
		Long: "mdtoc scans a markdown document's headers and inserts a navigable\n" +
			"Table of Contents, replacing any previously generated one. With no\n" +
			"arguments it processes the README.md in the current directory.",
		Args: cobra.MaximumNArgs(1),
		Run:  runGenerate,
	}

	configPath string
	outputPath string
	recursive  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (YAML format)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output markdown file (defaults to the input file)")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Treat the input as a directory and process every markdown file under it")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mdtoc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mdtoc %s\n", version)
	},
}

func runGenerate(cmd *cobra.Command, args []string) {
	gen := toc.New(loadConfig())

	if recursive {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}
		runRecursive(gen, root)
		return
	}

	input := ""
	if len(args) > 0 {
		input = args[0]
	} else {
		readme, err := crawler.FindReadme(".")
		if err != nil {
			log.Fatalf("Error: no README.md found in current directory and no input file specified.")
		}
		input = readme
	}

	output := outputPath
	if output == "" {
		output = input
	}
	if err := processFile(gen, input, output); err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("✅ Table of Contents generated in %s\n", output)
}

// runRecursive regenerates TOCs for every markdown file under root.
// Per-file failures are reported and skipped so one bad file does not
// abort the whole walk.
func runRecursive(gen *toc.Generator, root string) {
	updated, failed := 0, 0
	cr := crawler.New()
	err := cr.ScanDir(root, func(path string) {
		if err := processFile(gen, path, path); err != nil {
			fmt.Printf("⚠️  Skipping %s: %v\n", path, err)
			failed++
			return
		}
		updated++
	})
	if err != nil {
		log.Fatalf("Error scanning %s: %v", root, err)
	}

	fmt.Printf("✅ Updated %d file(s)", updated)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
	if failed > 0 {
		os.Exit(1)
	}
}

// loadConfig returns the effective configuration. Config problems are
// warnings only; generation always proceeds with defaults.
func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		fmt.Printf("⚠️  Warning: configuration file %s not found. Using default settings.\n", configPath)
	default:
		fmt.Printf("⚠️  Error parsing configuration file: %v. Using default settings.\n", err)
	}
	return cfg
}

// processFile reads in, regenerates the TOC, and writes the result to out.
func processFile(gen *toc.Generator, in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	updated := gen.Generate(string(data))

	if err := os.WriteFile(out, []byte(updated), 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
