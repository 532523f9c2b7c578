package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// exportHeaders is the fixed column order of a dashboard export.
var exportHeaders = []string{
	"Store Code", "Store Name", "State", "Region", "City",
	"NPS Score", "NPS Category", "Response Date", "Comments",
}

// WriteCSV writes the record set as CSV in the dashboard's export
// column order.
func WriteCSV(w io.Writer, records []model.CanonicalRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.StoreCode,
			r.StoreName,
			r.State,
			r.Region,
			r.City,
			strconv.Itoa(r.NPSScore),
			r.NPSCategory,
			r.ResponseDate.UTC().Format(time.RFC3339),
			r.Comments,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
