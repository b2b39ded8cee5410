package excel

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	xml2excel "github.com/yassir56069/XML2Excel"
)

// Worksheet names cap at 31 characters and may not contain []:*?/\.
const maxSheetName = 31

const forbiddenSheetChars = `[]:*?/\`

// Workbook renders one worksheet per row group and returns the workbook
// bytes. Row 1 of each sheet holds the group's column set; each record
// becomes one row, with absent fields left blank. Group names are fitted
// to the worksheet naming rules, and collisions after fitting are resolved
// with a numeric suffix.
func Workbook(groups []*xml2excel.RowGroup) ([]byte, error) {
	f := excelize.NewFile()

	names := newSheetNamer()
	first := f.GetSheetName(f.GetActiveSheetIndex())
	for i, g := range groups {
		name := names.claim(g.Name)
		if i == 0 {
			if err := f.SetSheetName(first, name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		if err := writeSheet(f, name, g); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, g *xml2excel.RowGroup) error {
	cols := g.Columns()
	for c, name := range cols {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for r, rec := range g.Records {
		for c, name := range cols {
			value, ok := rec.Get(name)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// SheetName fits an arbitrary group name to the worksheet naming rules:
// forbidden characters are stripped and the result truncated to the
// 31-character limit. Empty results fall back to "Sheet".
func SheetName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(forbiddenSheetChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	s := strings.TrimSpace(b.String())
	if s == "" {
		s = "Sheet"
	}
	if rr := []rune(s); len(rr) > maxSheetName {
		s = string(rr[:maxSheetName])
	}
	return s
}

// sheetNamer hands out unique fitted names. Worksheet names compare
// case-insensitively, so uniqueness does too.
type sheetNamer struct {
	taken map[string]bool
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{taken: make(map[string]bool)}
}

func (n *sheetNamer) claim(name string) string {
	base := SheetName(name)
	if !n.taken[strings.ToLower(base)] {
		n.taken[strings.ToLower(base)] = true
		return base
	}
	for i := 2; ; i++ {
		suffix := strconv.Itoa(i)
		candidate := base
		if rr := []rune(candidate); len(rr)+len(suffix) > maxSheetName {
			candidate = string(rr[:maxSheetName-len(suffix)])
		}
		candidate += suffix
		if !n.taken[strings.ToLower(candidate)] {
			n.taken[strings.ToLower(candidate)] = true
			return candidate
		}
	}
}
