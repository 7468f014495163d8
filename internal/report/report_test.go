// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"strings"
	"testing"

	"pdf-harvest/internal/extract"
	"pdf-harvest/internal/pdfmeta"
)

func sampleResult() *extract.Result {
	return &extract.Result{
		Source: "doc.pdf",
		Pages: []extract.PageText{
			{Page: 1, Content: "hello world"},
		},
		Tables: []extract.Table{
			{Page: 1, Index: 1, Rows: [][]string{{"a", "b"}, {"c", "d"}}},
		},
		Images: []extract.ImageInfo{
			{Page: 1, Index: 1, Format: "png", Width: 32, Height: 16, ByteSize: 128, SavedPath: "out/page1_img1.png"},
		},
		URLs: []extract.URLHit{
			{Page: 1, URL: "http://a.com"},
			{Page: 1, URL: "http://b.com"},
		},
		Numbers: []extract.PageNumbers{
			{Page: 1, Values: []extract.Number{{Int: 42}}},
		},
		Meta: &pdfmeta.Info{
			Version:   "1.4",
			PageCount: 1,
			FileSize:  1024,
			Title:     "Sample",
		},
	}
}

func TestFormat_SectionsPresent(t *testing.T) {
	out := NewReporter().Format(sampleResult(), Options{NoColor: true})

	for _, section := range []string{"TEXT", "TABLES", "IMAGES", "URLs", "NUMBERS"} {
		if !strings.Contains(out, section) {
			t.Errorf("summary missing %s section:\n%s", section, out)
		}
	}
	if !strings.Contains(out, "doc.pdf") {
		t.Error("summary missing source name")
	}
	if !strings.Contains(out, "Title: Sample") {
		t.Error("summary missing metadata title")
	}
	if !strings.Contains(out, "2 rows x 2 columns") {
		t.Error("summary missing table shape")
	}
	if !strings.Contains(out, "32x16") {
		t.Error("summary missing image dimensions")
	}
	if !strings.Contains(out, "No warnings.") {
		t.Error("summary should report zero warnings explicitly")
	}
}

func TestFormat_URLPreviewCapped(t *testing.T) {
	r := &extract.Result{Source: "doc.pdf"}
	urls := []string{
		"http://one.com", "http://two.com", "http://three.com",
		"http://four.com", "http://five.com", "http://six.com", "http://seven.com",
	}
	for _, u := range urls {
		r.URLs = append(r.URLs, extract.URLHit{Page: 1, URL: u})
	}

	out := NewReporter().Format(r, Options{NoColor: true})

	if !strings.Contains(out, "7 occurrences, 7 distinct") {
		t.Errorf("missing URL counts:\n%s", out)
	}
	if !strings.Contains(out, "... and 2 more") {
		t.Errorf("expected preview to collapse beyond %d URLs:\n%s", urlPreviewLimit, out)
	}
	if strings.Contains(out, "http://six.com") {
		t.Error("sixth URL should not appear in the capped preview")
	}
}

func TestFormat_VerboseShowsAllURLs(t *testing.T) {
	r := &extract.Result{Source: "doc.pdf"}
	for _, u := range []string{
		"http://one.com", "http://two.com", "http://three.com",
		"http://four.com", "http://five.com", "http://six.com",
	} {
		r.URLs = append(r.URLs, extract.URLHit{Page: 1, URL: u})
	}

	out := NewReporter().Format(r, Options{NoColor: true, Verbose: true})
	if !strings.Contains(out, "http://six.com") {
		t.Error("verbose summary should list every distinct URL")
	}
}

func TestFormat_Warnings(t *testing.T) {
	r := &extract.Result{
		Source: "doc.pdf",
		Warnings: []extract.Warning{
			{Context: "page 2 image 1", Message: "decode failed"},
		},
	}

	out := NewReporter().Format(r, Options{NoColor: true})
	if !strings.Contains(out, "WARNINGS (1)") {
		t.Errorf("missing warnings header:\n%s", out)
	}
	if !strings.Contains(out, "[page 2 image 1] decode failed") {
		t.Errorf("missing warning line:\n%s", out)
	}
}

func TestFormat_EmptyResultStillHasCounts(t *testing.T) {
	out := NewReporter().Format(&extract.Result{Source: "empty.pdf"}, Options{NoColor: true})

	for _, want := range []string{
		"0 pages with text",
		"0 tables found",
		"0 images found",
		"0 occurrences, 0 distinct",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
