// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"strconv"

	"pdf-harvest/internal/pdfmeta"
)

// PageText holds the plain text recovered from a single page.
type PageText struct {
	Page    int
	Content string
}

// Table holds one recognized table. Index is 1-based and restarts at 1 on
// every page. Rows are not required to be rectangular; the recognizer may
// return ragged rows and they are preserved as-is.
type Table struct {
	Page  int
	Index int
	Rows  [][]string
}

// Shape returns the table's reported dimensions: row count by the column
// count of the first row.
func (t Table) Shape() (rows, cols int) {
	rows = len(t.Rows)
	if rows > 0 {
		cols = len(t.Rows[0])
	}
	return rows, cols
}

// ImageInfo describes one embedded image. Index is 1-based per page.
// SavedPath is empty when the image bytes were measured but not persisted.
// EXIF is populated only in full-fidelity mode for JPEG images that carry
// EXIF tags.
type ImageInfo struct {
	Page      int
	Index     int
	Format    string
	Width     int
	Height    int
	ByteSize  int64
	SavedPath string
	EXIF      map[string]string
}

// URLHit is one URL found on a page. URLs are deduplicated within a page
// only; the same URL may appear again under a different page.
type URLHit struct {
	Page int
	URL  string
}

// Number is a numeric token recognized in page text. Tokens containing a
// decimal point are floats; all others are integers.
type Number struct {
	Int     int64
	Float   float64
	IsFloat bool
}

// String renders the token the way it parses: integers without a decimal
// point, floats with one.
func (n Number) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

// PageNumbers holds every numeric token found on one page, in order of
// appearance and not deduplicated. Pages with zero tokens get no entry.
type PageNumbers struct {
	Page   int
	Values []Number
}

// Warning records a recoverable extraction failure: the item it concerns
// and what went wrong. Warnings never abort the pipeline.
type Warning struct {
	Context string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Context, w.Message)
}

// Result is the aggregate produced by one pipeline invocation. It is built
// fresh per call, holds no references back to the source document, and
// outlives the document handle.
type Result struct {
	Source   string
	Pages    []PageText
	Tables   []Table
	Images   []ImageInfo
	URLs     []URLHit
	Numbers  []PageNumbers
	Warnings []Warning
	Meta     *pdfmeta.Info
}

// TotalTextLen returns the combined character count across all pages with text.
func (r *Result) TotalTextLen() int {
	total := 0
	for _, p := range r.Pages {
		total += len(p.Content)
	}
	return total
}

// TotalNumbers returns the count of numeric tokens across all pages.
func (r *Result) TotalNumbers() int {
	total := 0
	for _, n := range r.Numbers {
		total += len(n.Values)
	}
	return total
}

// DistinctURLs returns the document-wide distinct URL list in first-seen order.
func (r *Result) DistinctURLs() []string {
	seen := make(map[string]bool, len(r.URLs))
	var urls []string
	for _, u := range r.URLs {
		if !seen[u.URL] {
			seen[u.URL] = true
			urls = append(urls, u.URL)
		}
	}
	return urls
}

func (r *Result) warnf(context, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, Warning{
		Context: context,
		Message: fmt.Sprintf(format, args...),
	})
}
