package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is one parsed sheet: the header row in source order plus the
// data rows keyed by header. It is consumed once by the normalizer.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// ParseCSV reads UTF-8 CSV text with a header row into a Table.
// Structural problems (unreadable input, zero columns, zero data rows)
// are hard failures; ragged rows are tolerated.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headers := make([]string, 0, len(header))
	for _, h := range header {
		headers = append(headers, strings.TrimSpace(stripBOM(h)))
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("no columns found in CSV")
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", len(rows)+2, err)
		}
		if isBlankRow(record) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in CSV")
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

func isBlankRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
