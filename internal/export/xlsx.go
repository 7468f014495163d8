// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pdf-harvest/internal/extract"
)

// WriteWorkbook writes all extracted tables into a single XLSX workbook at
// path, one sheet per table named page<N>_table<M>. With no tables the
// workbook is still written, with a single empty sheet, so callers can rely
// on the artifact existing.
func WriteWorkbook(path string, tables []extract.Table) error {
	wb := excelize.NewFile()
	defer wb.Close()

	for _, t := range tables {
		sheet := fmt.Sprintf("page%d_table%d", t.Page, t.Index)
		if _, err := wb.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		for r, row := range t.Rows {
			for c, cell := range row {
				ref, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return fmt.Errorf("cell reference for sheet %s: %w", sheet, err)
				}
				if err := wb.SetCellValue(sheet, ref, cell); err != nil {
					return fmt.Errorf("set cell %s!%s: %w", sheet, ref, err)
				}
			}
		}
	}

	// Drop the implicit default sheet once real sheets exist.
	if len(tables) > 0 {
		if err := wb.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("remove default sheet: %w", err)
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
