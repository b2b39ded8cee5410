package excel

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	xml2excel "github.com/yassir56069/XML2Excel"
)

// ReadFile parses a workbook into sheets of row records, in workbook
// order. Row 1 of each sheet is the header row; blank header cells get a
// synthetic Column<N> name so every column stays addressable. Data cells
// that are blank are omitted from their record rather than stored empty,
// and rows with no non-blank cells are dropped. A workbook with zero
// usable sheets yields zero sheets, not an error.
func ReadFile(path string) ([]xml2excel.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &xml2excel.ParseError{Path: path, Err: err}
	}
	defer f.Close()
	return readSheets(f)
}

// Read is ReadFile over a stream.
func Read(r io.Reader) ([]xml2excel.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &xml2excel.ParseError{Err: err}
	}
	defer f.Close()
	return readSheets(f)
}

func readSheets(f *excelize.File) ([]xml2excel.Sheet, error) {
	var sheets []xml2excel.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			// Degrade per sheet: log, skip, keep converting the rest.
			mismatch := &xml2excel.SchemaMismatchError{Sheet: name, Reason: err.Error()}
			slog.Warn("skipping unreadable worksheet", "error", mismatch)
			continue
		}
		sheets = append(sheets, xml2excel.Sheet{Name: name, Records: sheetRecords(name, rows)})
	}
	return sheets, nil
}

func sheetRecords(sheet string, rows [][]string) []*xml2excel.RowRecord {
	if len(rows) == 0 {
		return nil
	}
	headers := headerNames(rows[0])

	var records []*xml2excel.RowRecord
	warned := false
	for _, row := range rows[1:] {
		if len(row) > len(headers) && !warned {
			slog.Warn("data row wider than header row, dropping trailing cells",
				"sheet", sheet, "headers", len(headers), "cells", len(row))
			warned = true
		}
		rec := xml2excel.NewRowRecord()
		for i, cell := range row {
			if i >= len(headers) {
				break
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			rec.Set(headers[i], cell)
		}
		if rec.Len() == 0 {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// headerNames resolves the header row: blank cells become Column<N> with a
// 1-based index, and repeated names get a numeric suffix so no column
// shadows another.
func headerNames(row []string) []string {
	headers := make([]string, len(row))
	taken := make(map[string]bool)
	for i, h := range row {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column%d", i+1)
		}
		name := h
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s%d", h, n)
		}
		taken[name] = true
		headers[i] = name
	}
	return headers
}
