package export

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet holding the rows.
const SheetName = "Расчет"

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX renders rows into a single-sheet workbook with a header row and
// columns sized to their longest value.
func WriteXLSX(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(Columns))
	widths := make([]int, len(Columns))
	for i, c := range Columns {
		header[i] = c
		widths[i] = utf8.RuneCountInString(c)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		values := r.Values()
		for j, v := range values {
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > widths[j] {
				widths[j] = n
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, col, col, float64(w+2)*1.2); err != nil {
			return nil, fmt.Errorf("set width of %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
