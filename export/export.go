// Package export renders a recognized workout table to spreadsheet
// formats: CSV via the standard library and XLSX via excelize.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/ergscan/model"
)

// header is the column layout shared by both formats
var header = []string{"Row", "Time", "Meters", "/500m", "s/m", "HR"}

// dateFormat matches the display's own date rendering
const dateFormat = "Jan 2 2006"

// WriteCSV writes the table as CSV: metadata key/value lines, a blank
// line, then the column header, the averages row and the data rows.
func WriteCSV(w io.Writer, table *model.RecognizedTable) error {
	if table == nil {
		return fmt.Errorf("nil table")
	}

	cw := csv.NewWriter(w)
	for _, line := range metadataLines(table) {
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("writing metadata: %w", err)
		}
	}
	if err := cw.Write([]string{""}); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, record := range rowRecords(table) {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the table as an XLSX workbook with the same layout
// as WriteCSV. Meters, stroke rate and heart rate become numeric
// cells.
func WriteXLSX(w io.Writer, table *model.RecognizedTable) error {
	if table == nil {
		return fmt.Errorf("nil table")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rowNum := 1
	setRow := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		rowNum++
		return f.SetSheetRow(sheet, cell, &values)
	}

	for _, line := range metadataLines(table) {
		if err := setRow([]interface{}{line[0], line[1]}); err != nil {
			return fmt.Errorf("writing metadata: %w", err)
		}
	}
	rowNum++ // blank separator row

	headerValues := make([]interface{}, len(header))
	for i, h := range header {
		headerValues[i] = h
	}
	if err := setRow(headerValues); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, record := range rowRecords(table) {
		values := make([]interface{}, len(record))
		for i, field := range record {
			values[i] = cellValue(field, i)
		}
		if err := setRow(values); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// cellValue converts numeric columns (meters, rate, heart rate) to
// ints so spreadsheets treat them as numbers.
func cellValue(field string, column int) interface{} {
	if field == "" {
		return ""
	}
	switch header[column] {
	case "Meters", "s/m", "HR":
		if n, err := strconv.Atoi(field); err == nil {
			return n
		}
	}
	return field
}

// metadataLines renders the table's metadata as key/value pairs
func metadataLines(table *model.RecognizedTable) [][]string {
	lines := [][]string{
		{"Workout", table.WorkoutType},
		{"Category", table.Category.String()},
	}
	if table.Date != nil {
		lines = append(lines, []string{"Date", table.Date.Format(dateFormat)})
	}
	if table.TotalTime != "" {
		lines = append(lines, []string{"Total Time", table.TotalTime})
	}
	if table.Category == model.CategoryInterval && table.Reps > 0 {
		lines = append(lines,
			[]string{"Reps", fmt.Sprintf("%d", table.Reps)},
			[]string{"Work", table.WorkPerRep},
			[]string{"Rest", table.RestPerRep})
	}
	return lines
}

// rowRecords renders the averages row and data rows as string records
func rowRecords(table *model.RecognizedTable) [][]string {
	var records [][]string
	if table.Averages != nil {
		records = append(records, rowRecord("avg", table.Averages))
	}
	for i, row := range table.Rows {
		records = append(records, rowRecord(fmt.Sprintf("%d", i+1), row))
	}
	return records
}

func rowRecord(label string, row *model.TableRow) []string {
	text := func(c *model.Cell) string {
		if c == nil {
			return ""
		}
		return c.Text
	}
	return []string{label, text(row.Time), text(row.Meters), text(row.Split), text(row.StrokeRate), text(row.HeartRate)}
}
