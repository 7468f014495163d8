// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract implements the PDF content extraction pipeline: per-page
// text, tables, embedded images, URLs, and numeric tokens, aggregated into
// a single Result.
package extract

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	tabreader "github.com/tsawler/tabula/reader"

	"pdf-harvest/internal/observability"
	"pdf-harvest/internal/pdfmeta"
)

// DefaultImageDir is where extracted images land when no destination
// directory is configured.
const DefaultImageDir = "extracted_images"

// Options configures one pipeline invocation.
type Options struct {
	// SaveImages persists extracted image bytes to ImageDir. Only honored
	// in full-fidelity mode; lightweight mode never writes files.
	SaveImages bool

	// ImageDir is the destination directory for image artifacts. Created
	// if absent. Defaults to DefaultImageDir.
	ImageDir string

	// Mode selects the image extraction strategy. Defaults to ImageModeFull.
	Mode ImageMode

	// MaxPages caps how many pages are processed; 0 means all pages.
	MaxPages int

	// Progress, when non-nil, is invoked before each page is processed.
	Progress func(page int)

	// Observer, when non-nil, receives per-page operation timings.
	Observer *observability.Observer
}

func (o *Options) applyDefaults() {
	if o.ImageDir == "" {
		o.ImageDir = DefaultImageDir
	}
	if o.Mode == "" {
		o.Mode = ImageModeFull
	}
}

// Extract runs the full pipeline over the PDF at path and returns a freshly
// built Result. Pages are visited exactly once, in ascending order; per page
// the steps are text, then URL and number scans over that text, then tables,
// then images.
//
// Failure to open the source document is fatal and returns an error with no
// partial result. Every per-page and per-image failure is recoverable: it is
// recorded in Result.Warnings, the item is omitted, and processing continues.
func Extract(path string, opts Options) (*Result, error) {
	opts.applyDefaults()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source document: %w", err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("read PDF %s: %w", path, err)
	}

	textFile, textReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF for text extraction: %w", err)
	}
	defer textFile.Close()

	tableReader, err := tabreader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF for table recognition: %w", err)
	}
	defer tableReader.Close()

	var strategy imageStrategy
	switch opts.Mode {
	case ImageModeLight:
		strategy = &lightImages{ctx: ctx, outDir: opts.ImageDir}
	default:
		if opts.SaveImages {
			if err := os.MkdirAll(opts.ImageDir, 0750); err != nil {
				return nil, fmt.Errorf("create image directory: %w", err)
			}
		}
		strategy = &fullImages{ctx: ctx, outDir: opts.ImageDir, save: opts.SaveImages}
	}

	result := &Result{Source: path}

	if meta, err := pdfmeta.Extract(path); err == nil {
		result.Meta = meta
	} else {
		result.warnf("metadata", "%v", err)
	}

	pageCount := ctx.PageCount
	if opts.MaxPages > 0 && pageCount > opts.MaxPages {
		pageCount = opts.MaxPages
	}

	tables := newTableFinder(tableReader)

	for pageNr := 1; pageNr <= pageCount; pageNr++ {
		if opts.Progress != nil {
			opts.Progress(pageNr)
		}
		done := opts.Observer.StartPageTiming("pipeline", "process_page", pageNr)

		extractPageText(result, textReader, pageNr)
		extractPageTables(result, tables, pageNr)

		infos, warnings := strategy.extract(pageNr)
		result.Images = append(result.Images, infos...)
		result.Warnings = append(result.Warnings, warnings...)

		done(true, map[string]interface{}{"images": len(infos)})
	}

	return result, nil
}

// extractPageText pulls the page's plain text and, when non-empty, runs the
// URL and number scans over it. A page with no recoverable text layer is
// skipped silently; it is not an error.
func extractPageText(result *Result, r *pdf.Reader, pageNr int) {
	if pageNr > r.NumPage() {
		return
	}
	p := r.Page(pageNr)
	if p.V.IsNull() {
		return
	}

	text, err := pageText(p)
	if err != nil {
		result.warnf(fmt.Sprintf("page %d text", pageNr), "%v", err)
		return
	}
	if text == "" {
		return
	}

	result.Pages = append(result.Pages, PageText{Page: pageNr, Content: text})

	for _, url := range FindURLs(text) {
		result.URLs = append(result.URLs, URLHit{Page: pageNr, URL: url})
	}
	if nums := FindNumbers(text); len(nums) > 0 {
		result.Numbers = append(result.Numbers, PageNumbers{Page: pageNr, Values: nums})
	}
}

// extractPageTables appends the page's recognized tables with 1-based
// indices local to the page. Zero tables is a normal outcome.
func extractPageTables(result *Result, finder *tableFinder, pageNr int) {
	found, err := finder.find(pageNr)
	if err != nil {
		result.warnf(fmt.Sprintf("page %d tables", pageNr), "%v", err)
		return
	}
	for i, rows := range found {
		result.Tables = append(result.Tables, Table{
			Page:  pageNr,
			Index: i + 1,
			Rows:  rows,
		})
	}
}
