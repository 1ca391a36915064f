// Package export renders a run result as an Excel workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"jesbridge/backend/internal/model"
)

const (
	resultsSheet = "Results"
	metaSheet    = "Meta"
)

// BuildWorkbook writes the response into a two-sheet workbook: Results holds
// the column header plus one row per ResultRow in response order, Meta holds
// the echoed request fields.
func BuildWorkbook(resp *model.RunResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(resultsSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	header := make([]interface{}, len(resp.Columns))
	for i, col := range resp.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range resp.Rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(resultsSheet, cell, &[]interface{}{row.Line, row.Metric, row.Value}); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(metaSheet); err != nil {
		return nil, err
	}
	previous := ""
	if resp.Meta.PreviousDate != nil {
		previous = *resp.Meta.PreviousDate
	}
	metaRows := [][]interface{}{
		{"report_date", resp.Meta.ReportDate},
		{"previous_date", previous},
		{"lcr_lines", resp.Meta.LCRLines},
		{"country", resp.Meta.Country},
	}
	for i, row := range metaRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(metaSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	// Drop the default sheet excelize creates with the file.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	return f, nil
}
