// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package export writes extraction results to durable artifacts: a combined
// text file, per-table CSV files, and an optional XLSX workbook.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pdf-harvest/internal/extract"
)

const bannerWidth = 60

// WriteText writes every extracted page's text to a single file at path,
// each page preceded by a banner naming its 1-based page number. Pages
// appear in ascending page order. An existing file is overwritten, so
// repeated runs over the same document produce identical output.
func WriteText(path string, pages []extract.PageText) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create text output directory: %w", err)
		}
	}

	var b strings.Builder
	banner := strings.Repeat("=", bannerWidth)
	for _, p := range pages {
		b.WriteString("\n")
		b.WriteString(banner)
		b.WriteString(fmt.Sprintf("\nPAGE %d\n", p.Page))
		b.WriteString(banner)
		b.WriteString("\n")
		b.WriteString(p.Content)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("write text file: %w", err)
	}
	return nil
}
