// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"pdf-harvest/internal/config"
	"pdf-harvest/internal/export"
	"pdf-harvest/internal/extract"
	"pdf-harvest/internal/help"
	"pdf-harvest/internal/observability"
	"pdf-harvest/internal/paths"
	"pdf-harvest/internal/report"
	"pdf-harvest/internal/version"
)

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	outputDir  string
	textFile   string
	tablesDir  string
	imagesDir  string
	xlsxFile   string
	imageMode  string
	saveImages bool
	maxPages   int
	noColor    bool
	verbose    bool
	debug      bool
	quiet      bool
}

// cliFlags holds command line flag values
type cliFlags struct {
	outputDir  string
	textFile   string
	tablesDir  string
	imagesDir  string
	xlsxFile   string
	imageMode  string
	saveImages bool
	maxPages   int
	noColor    bool
	verbose    bool
	debug      bool
	quiet      bool
}

// resolveConfiguration resolves final values from config file and command line flags.
// Flags win over the config file, but only when explicitly set.
func resolveConfiguration(cfg *config.Config, flags *cliFlags) *finalConfiguration {
	final := &finalConfiguration{}

	final.outputDir = "."
	if cfg != nil && cfg.Defaults.OutputDir != "" {
		final.outputDir = cfg.Defaults.OutputDir
	}
	if isFlagSet("output-dir") && flags.outputDir != "" {
		final.outputDir = flags.outputDir
	}

	if cfg != nil {
		final.textFile = cfg.Defaults.TextFile
	}
	if isFlagSet("text-file") {
		final.textFile = flags.textFile
	}

	if cfg != nil {
		final.tablesDir = cfg.Defaults.TablesDir
	}
	if isFlagSet("tables-dir") {
		final.tablesDir = flags.tablesDir
	}

	final.imagesDir = extract.DefaultImageDir
	if cfg != nil && cfg.Defaults.ImagesDir != "" {
		final.imagesDir = cfg.Defaults.ImagesDir
	}
	if isFlagSet("images-dir") && flags.imagesDir != "" {
		final.imagesDir = flags.imagesDir
	}

	if cfg != nil {
		final.xlsxFile = cfg.Defaults.Xlsx
	}
	if isFlagSet("xlsx") {
		final.xlsxFile = flags.xlsxFile
	}

	final.imageMode = "full"
	if cfg != nil && cfg.Defaults.ImageMode != "" {
		final.imageMode = cfg.Defaults.ImageMode
	}
	if isFlagSet("image-mode") && flags.imageMode != "" {
		final.imageMode = flags.imageMode
	}

	final.saveImages = true
	if cfg != nil {
		final.saveImages = cfg.Defaults.SaveImages
	}
	if isFlagSet("save-images") {
		final.saveImages = flags.saveImages
	}

	if cfg != nil {
		final.maxPages = cfg.Defaults.MaxPages
	}
	if isFlagSet("max-pages") {
		final.maxPages = flags.maxPages
	}

	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	final.verbose = flags.verbose
	final.quiet = flags.quiet

	return final
}

func main() {
	// Parse command line flags
	inputFile := flag.String("file", "", "Path to the input PDF file")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputDir := flag.String("output-dir", "", "Base directory for output artifacts (default: current directory)")
	textFile := flag.String("text-file", "", "Write all extracted page text to this file")
	tablesDir := flag.String("tables-dir", "", "Write each extracted table as a CSV file into this directory")
	imagesDir := flag.String("images-dir", "", "Directory for extracted images (default: extracted_images)")
	xlsxFile := flag.String("xlsx", "", "Write all extracted tables into a single XLSX workbook at this path")
	imageMode := flag.String("image-mode", "", "Image extraction mode: full (decode and save bytes) or light (metadata only)")
	saveImages := flag.Bool("save-images", true, "Persist extracted image bytes to disk (full mode only)")
	maxPages := flag.Int("max-pages", 0, "Process at most this many pages (0 = all)")
	verbose := flag.Bool("verbose", false, "Display per-page detail in the summary")
	debug := flag.Bool("debug", false, "Enable debug logging of per-page timings")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	quiet := flag.Bool("quiet", false, "Suppress progress output (useful for scripts and CI/CD)")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}
	if *showHelp {
		help.NewSystem(*noColor || !isTerminal(os.Stdout)).ShowGeneralHelp()
		os.Exit(0)
	}

	flags := &cliFlags{
		outputDir:  *outputDir,
		textFile:   *textFile,
		tablesDir:  *tablesDir,
		imagesDir:  *imagesDir,
		xlsxFile:   *xlsxFile,
		imageMode:  *imageMode,
		saveImages: *saveImages,
		maxPages:   *maxPages,
		noColor:    *noColor,
		verbose:    *verbose,
		debug:      *debug,
		quiet:      *quiet,
	}

	// Auto-detect non-interactive environment
	isInteractive := isTerminal(os.Stderr)
	if !isInteractive || flags.quiet || os.Getenv("CI") != "" {
		flags.noColor = true
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	final := resolveConfiguration(cfg, flags)
	if !isInteractive || final.quiet {
		final.noColor = true
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*inputFile, final); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputFile string, final *finalConfiguration) error {
	if err := paths.ValidatePath(inputFile); err != nil {
		return err
	}

	info, err := os.Stat(inputFile)
	if err != nil {
		return fmt.Errorf("cannot access input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory, expected a PDF file", inputFile)
	}

	level := observability.LevelOff
	if final.debug {
		level = observability.LevelDebug
	}
	observer := observability.New(level, os.Stderr)

	var progress func(page int)
	if !final.quiet {
		progress = func(page int) {
			fmt.Fprintf(os.Stderr, "Processing page %d...\n", page)
		}
	}

	opts := extract.Options{
		SaveImages: final.saveImages,
		ImageDir:   joinOutput(final.outputDir, final.imagesDir),
		Mode:       extract.ImageMode(final.imageMode),
		MaxPages:   final.maxPages,
		Progress:   progress,
		Observer:   observer,
	}

	result, err := extract.Extract(inputFile, opts)
	if err != nil {
		return err
	}

	if final.textFile != "" {
		if err := export.WriteText(joinOutput(final.outputDir, final.textFile), result.Pages); err != nil {
			return err
		}
	}
	if final.tablesDir != "" {
		if err := export.WriteTables(joinOutput(final.outputDir, final.tablesDir), result.Tables); err != nil {
			return err
		}
	}
	if final.xlsxFile != "" {
		if err := export.WriteWorkbook(joinOutput(final.outputDir, final.xlsxFile), result.Tables); err != nil {
			return err
		}
	}

	reporter := report.NewReporter()
	fmt.Print(reporter.Format(result, report.Options{
		NoColor: final.noColor,
		Verbose: final.verbose,
	}))

	return nil
}

// joinOutput resolves an artifact path against the output directory.
// Absolute paths are used as given.
func joinOutput(outputDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if outputDir == "" || outputDir == "." {
		return paths.NormalizePath(path)
	}
	return filepath.Join(paths.NormalizePath(outputDir), path)
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
