// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfmeta

import (
	"os"
	"path/filepath"
	"testing"
)

const samplePDF = `%PDF-1.4
1 0 obj
<< /Title (Test Document) /Author (Jane Doe) /Producer (SamplePress 2.0) >>
endobj
2 0 obj
<< /Type /Catalog /Pages 3 0 R >>
endobj
3 0 obj
<< /Type /Pages /Kids [4 0 R 5 0 R] /Count 2 >>
endobj
4 0 obj
<< /Type /Page /Parent 3 0 R >>
endobj
5 0 obj
<< /Type /Page /Parent 3 0 R >>
endobj
trailer
<< /Size 6 /Root 2 0 R /Info 1 0 R >>
%%EOF
`

func TestParse_BasicFields(t *testing.T) {
	info := Parse([]byte(samplePDF))

	if info.Version != "1.4" {
		t.Errorf("Version = %q, want 1.4", info.Version)
	}
	if info.Title != "Test Document" {
		t.Errorf("Title = %q", info.Title)
	}
	if info.Author != "Jane Doe" {
		t.Errorf("Author = %q", info.Author)
	}
	if info.Producer != "SamplePress 2.0" {
		t.Errorf("Producer = %q", info.Producer)
	}
	if info.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", info.PageCount)
	}
	if info.Encrypted {
		t.Error("Encrypted = true, want false")
	}
}

func TestParse_EscapedParentheses(t *testing.T) {
	data := []byte("%PDF-1.5\n1 0 obj\n<< /Title (Report \\(Final\\)) >>\nendobj\ntrailer\n<< /Info 1 0 R >>\n")
	info := Parse(data)
	if info.Title != "Report (Final)" {
		t.Errorf("Title = %q, want %q", info.Title, "Report (Final)")
	}
}

func TestParse_HexString(t *testing.T) {
	// "Hi" in hex is 4869.
	data := []byte("%PDF-1.5\n1 0 obj\n<< /Title <4869> >>\nendobj\ntrailer\n<< /Info 1 0 R >>\n")
	info := Parse(data)
	if info.Title != "Hi" {
		t.Errorf("Title = %q, want Hi", info.Title)
	}
}

func TestParse_Encrypted(t *testing.T) {
	data := []byte("%PDF-1.6\ntrailer\n<< /Encrypt 7 0 R /Size 8 >>\n")
	info := Parse(data)
	if !info.Encrypted {
		t.Error("Encrypted = false, want true")
	}
}

func TestParse_PageCountFallback(t *testing.T) {
	// No /Type /Page objects in clear text; /Count must be used.
	data := []byte("%PDF-1.7\n3 0 obj\n<< /Type /Pages /Count 12 >>\nendobj\n")
	info := Parse(data)
	if info.PageCount != 12 {
		t.Errorf("PageCount = %d, want 12", info.PageCount)
	}
}

func TestParse_NotAPDF(t *testing.T) {
	info := Parse([]byte("hello world"))
	if info.Version != "Unknown" {
		t.Errorf("Version = %q, want Unknown", info.Version)
	}
	if info.PageCount != 0 {
		t.Errorf("PageCount = %d, want 0", info.PageCount)
	}
}

func TestExtract_FileFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.pdf")
	if err := os.WriteFile(path, []byte(samplePDF), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	info, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if info.Filename != "sample.pdf" {
		t.Errorf("Filename = %q", info.Filename)
	}
	if info.FileSize != int64(len(samplePDF)) {
		t.Errorf("FileSize = %d, want %d", info.FileSize, len(samplePDF))
	}
}

func TestExtract_MissingFile(t *testing.T) {
	if _, err := Extract(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}
