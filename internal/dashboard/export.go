package dashboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteCSV writes the table as CSV, header row first.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export writes one CSV file per table into dir, named by the table title
// and the export timestamp. It returns the file path written.
func Export(dir string, t Table, now time.Time) (string, error) {
	name := fmt.Sprintf("%s_%s.csv", snakeTitle(t.Title), now.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, t); err != nil {
		return "", err
	}
	return path, nil
}

func snakeTitle(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}
