// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	tabmodel "github.com/tsawler/tabula/model"
	tabreader "github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
)

// tableFinder recognizes tables on pages via tabula's geometric detector.
// The detector works on positioned text fragments, so each page is converted
// into a tabula model page before detection.
type tableFinder struct {
	reader   *tabreader.Reader
	detector *tables.GeometricDetector
}

func newTableFinder(r *tabreader.Reader) *tableFinder {
	return &tableFinder{
		reader:   r,
		detector: tables.NewGeometricDetector(),
	}
}

// find returns the tables recognized on pageNr (1-based) as verbatim cell
// text. Zero tables is a normal outcome.
func (f *tableFinder) find(pageNr int) ([][][]string, error) {
	page, err := f.reader.GetPage(pageNr - 1)
	if err != nil {
		return nil, err
	}

	fragments, err := f.reader.ExtractTextFragments(page)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		return nil, nil
	}

	width, _ := page.Width()
	height, _ := page.Height()

	modelPage := tabmodel.NewPage(width, height)
	modelPage.Number = pageNr
	for _, frag := range fragments {
		modelPage.RawText = append(modelPage.RawText, tabmodel.TextFragment{
			Text:     frag.Text,
			BBox:     tabmodel.NewBBox(frag.X, frag.Y, frag.Width, frag.Height),
			FontSize: frag.FontSize,
			FontName: frag.FontName,
		})
	}

	detected, err := f.detector.Detect(modelPage)
	if err != nil {
		return nil, err
	}

	var result [][][]string
	for _, table := range detected {
		rows := make([][]string, 0, len(table.Rows))
		for _, row := range table.Rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				cells = append(cells, cell.Text)
			}
			rows = append(rows, cells)
		}
		result = append(result, rows)
	}
	return result, nil
}
