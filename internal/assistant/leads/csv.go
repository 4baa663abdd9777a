package leads

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/oreana/assistant-server/internal/assistant/model"
)

// csvHeader fixes the export column order.
var csvHeader = []string{"name", "email", "phone"}

// WriteCSV serializes records in tabular form. Absent fields become empty
// cells so every row has the full column set.
func WriteCSV(w io.Writer, records []model.EntityRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{deref(rec.Name), deref(rec.Email), deref(rec.Phone)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
