// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"pdf-harvest/internal/extract"
)

// TableFileName returns the CSV file name for a table, derived from its
// page number and per-page index. Both are 1-based.
func TableFileName(t extract.Table) string {
	return fmt.Sprintf("page%d_table%d.csv", t.Page, t.Index)
}

// WriteTables writes each table to its own CSV file under dir, creating
// the directory if needed. File names follow TableFileName, so a table's
// artifact name is stable across runs. Existing files are overwritten.
func WriteTables(dir string, tables []extract.Table) error {
	if len(tables) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create tables directory: %w", err)
	}

	for _, t := range tables {
		if err := writeTableCSV(filepath.Join(dir, TableFileName(t)), t); err != nil {
			return err
		}
	}
	return nil
}

func writeTableCSV(path string, t extract.Table) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create table file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write table row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush table file: %w", err)
	}
	return nil
}
