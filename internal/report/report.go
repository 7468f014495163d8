// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report renders an extraction Result as a human-readable console
// summary.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"pdf-harvest/internal/extract"
)

// urlPreviewLimit caps how many distinct URLs the summary prints before
// collapsing the rest into a count.
const urlPreviewLimit = 5

// Options controls summary rendering.
type Options struct {
	NoColor bool
	// Verbose includes per-page text lengths and full URL occurrence lists.
	Verbose bool
}

// Reporter formats extraction results for terminal display.
type Reporter struct {
	colors map[string]*color.Color
}

// NewReporter creates a new console reporter
func NewReporter() *Reporter {
	return &Reporter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

// Format renders the summary for result. The output always carries the same
// section order: source header, text, tables, images, URLs, numbers, then
// warnings. Empty sections still print their zero counts so runs are easy
// to compare.
func (r *Reporter) Format(result *extract.Result, opts Options) string {
	if opts.NoColor {
		color.NoColor = true
	}

	var b strings.Builder

	r.appendHeader(&b, result)
	r.appendText(&b, result, opts)
	r.appendTables(&b, result)
	r.appendImages(&b, result)
	r.appendURLs(&b, result, opts)
	r.appendNumbers(&b, result)
	r.appendWarnings(&b, result)

	return b.String()
}

func (r *Reporter) appendHeader(b *strings.Builder, result *extract.Result) {
	b.WriteString(r.colors["white"].Sprintf("Extraction summary: %s\n", result.Source))
	if m := result.Meta; m != nil {
		fmt.Fprintf(b, "  PDF version: %s, pages: %d, size: %d bytes\n", m.Version, m.PageCount, m.FileSize)
		if m.Title != "" {
			fmt.Fprintf(b, "  Title: %s\n", m.Title)
		}
		if m.Author != "" {
			fmt.Fprintf(b, "  Author: %s\n", m.Author)
		}
		if m.Producer != "" {
			fmt.Fprintf(b, "  Producer: %s\n", m.Producer)
		}
		if m.Encrypted {
			b.WriteString(r.colors["yellow"].Sprint("  Encrypted: yes\n"))
		}
	}
	b.WriteString("\n")
}

func (r *Reporter) appendText(b *strings.Builder, result *extract.Result, opts Options) {
	b.WriteString(r.colors["cyan"].Sprint("TEXT\n"))
	fmt.Fprintf(b, "  %d pages with text, %d characters total\n",
		len(result.Pages), result.TotalTextLen())
	if opts.Verbose {
		for _, p := range result.Pages {
			fmt.Fprintf(b, "    page %d: %d characters\n", p.Page, len(p.Content))
		}
	}
	b.WriteString("\n")
}

func (r *Reporter) appendTables(b *strings.Builder, result *extract.Result) {
	b.WriteString(r.colors["cyan"].Sprint("TABLES\n"))
	fmt.Fprintf(b, "  %d tables found\n", len(result.Tables))
	for _, t := range result.Tables {
		rows, cols := t.Shape()
		fmt.Fprintf(b, "    page %d table %d: %d rows x %d columns\n", t.Page, t.Index, rows, cols)
	}
	b.WriteString("\n")
}

func (r *Reporter) appendImages(b *strings.Builder, result *extract.Result) {
	b.WriteString(r.colors["cyan"].Sprint("IMAGES\n"))
	fmt.Fprintf(b, "  %d images found\n", len(result.Images))
	for _, img := range result.Images {
		dims := ""
		if img.Width > 0 || img.Height > 0 {
			dims = fmt.Sprintf(" %dx%d", img.Width, img.Height)
		}
		saved := ""
		if img.SavedPath != "" {
			saved = " -> " + img.SavedPath
		}
		fmt.Fprintf(b, "    page %d image %d: %s%s, %d bytes%s\n",
			img.Page, img.Index, img.Format, dims, img.ByteSize, saved)
		for _, k := range sortedKeys(img.EXIF) {
			fmt.Fprintf(b, "      %s: %s\n", k, img.EXIF[k])
		}
	}
	b.WriteString("\n")
}

func (r *Reporter) appendURLs(b *strings.Builder, result *extract.Result, opts Options) {
	b.WriteString(r.colors["cyan"].Sprint("URLs\n"))
	distinct := result.DistinctURLs()
	fmt.Fprintf(b, "  %d occurrences, %d distinct\n", len(result.URLs), len(distinct))

	shown := distinct
	if !opts.Verbose && len(shown) > urlPreviewLimit {
		shown = shown[:urlPreviewLimit]
	}
	for _, u := range shown {
		fmt.Fprintf(b, "    %s\n", u)
	}
	if rest := len(distinct) - len(shown); rest > 0 {
		fmt.Fprintf(b, "    ... and %d more\n", rest)
	}
	b.WriteString("\n")
}

func (r *Reporter) appendNumbers(b *strings.Builder, result *extract.Result) {
	b.WriteString(r.colors["cyan"].Sprint("NUMBERS\n"))
	fmt.Fprintf(b, "  %d numeric tokens on %d pages\n", result.TotalNumbers(), len(result.Numbers))
	b.WriteString("\n")
}

func (r *Reporter) appendWarnings(b *strings.Builder, result *extract.Result) {
	if len(result.Warnings) == 0 {
		b.WriteString(r.colors["green"].Sprint("No warnings.\n"))
		return
	}
	b.WriteString(r.colors["yellow"].Sprintf("WARNINGS (%d)\n", len(result.Warnings)))
	for _, w := range result.Warnings {
		fmt.Fprintf(b, "  [%s] %s\n", w.Context, w.Message)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
