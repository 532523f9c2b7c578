package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the first sheet of an Excel workbook into a Table.
// Survey platforms frequently export .xlsx instead of .csv; the result
// feeds the same normalizer either way.
func ParseXLSX(r io.Reader) (*Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet %q", sheets[0])
	}

	headers := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		headers = append(headers, strings.TrimSpace(h))
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("no columns found in sheet %q", sheets[0])
	}

	var data []map[string]string
	for _, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = strings.TrimSpace(cells[i])
			}
		}
		data = append(data, row)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("no data found in sheet %q", sheets[0])
	}

	return &Table{Headers: headers, Rows: data}, nil
}
