// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// System manages help content for the application
type System struct {
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":   color.New(color.FgWhite, color.Bold),
			"header":  color.New(color.FgBlue, color.Bold),
			"example": color.New(color.FgMagenta),
		},
	}
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("PDF Harvest - PDF Content Extraction Tool")
	fmt.Println("=========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  pdf-harvest --file <path-to-pdf> [options]")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the input PDF file (required)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --output-dir\t<path>\tBase directory for output artifacts (default: current directory)")
	fmt.Fprintln(w, "  --text-file\t<path>\tWrite all extracted page text to this file, with per-page banners")
	fmt.Fprintln(w, "  --tables-dir\t<path>\tWrite each extracted table as a CSV file into this directory")
	fmt.Fprintln(w, "  --xlsx\t<path>\tWrite all extracted tables into a single XLSX workbook")
	fmt.Fprintln(w, "  --images-dir\t<path>\tDirectory for extracted images (default: extracted_images)")
	fmt.Fprintln(w, "  --image-mode\t<mode>\tImage extraction mode: full or light (default: full)")
	fmt.Fprintln(w, "\t\t\tNote: full decodes embedded images and can save their bytes; light reads object metadata only")
	fmt.Fprintln(w, "  --save-images\t\tPersist extracted image bytes to disk (default: true, full mode only)")
	fmt.Fprintln(w, "  --max-pages\t<n>\tProcess at most this many pages (default: all)")
	fmt.Fprintln(w, "  --verbose\t\tDisplay per-page detail in the summary")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of per-page timings (JSON lines on stderr)")
	fmt.Fprintln(w, "  --quiet\t\tSuppress progress output (useful for scripts and CI/CD)")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    pdf-harvest --file report.pdf")
	h.colors["example"].Println("    pdf-harvest --file report.pdf --text-file all_text.txt --tables-dir tables")
	fmt.Println("  Image Extraction:")
	h.colors["example"].Println("    pdf-harvest --file report.pdf --images-dir images")
	h.colors["example"].Println("    pdf-harvest --file report.pdf --image-mode light --save-images=false")
	fmt.Println("  Workbook Export:")
	h.colors["example"].Println("    pdf-harvest --file report.pdf --xlsx tables.xlsx")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.config/pdf-harvest/config.yaml")
	fmt.Println("  Project config: pdf-harvest.yaml or .pdf-harvest.yaml (in current directory)")
	fmt.Println("  Environment: PDF_HARVEST_CONFIG_DIR - Override config directory")
}
