package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"tablekit/pkg/frame"
)

// Options configures CSV writing behavior.
type Options struct {
	// IndexName labels the index column in the header row.
	IndexName string
	// BOMPrefix adds a UTF-8 BOM for Excel compatibility.
	BOMPrefix bool
}

// WriteFrame writes a frame to a CSV file, creating parent directories as
// needed. The index occupies the first column.
func WriteFrame(path string, f *frame.Frame, opts Options) error {
	slog.Info("writing frame to CSV",
		slog.String("path", path),
		slog.Int("rows", f.NumRows()),
		slog.Int("columns", f.NumCols()))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if opts.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := append([]string{opts.IndexName}, f.Columns()...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	index := f.Index()
	for r := 0; r < f.NumRows(); r++ {
		record := make([]string, 0, f.NumCols()+1)
		record = append(record, formatCell(index[r]))
		for c := 0; c < f.NumCols(); c++ {
			record = append(record, formatCell(f.At(r, c)))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", r, err)
		}
	}
	return writer.Error()
}

// formatCell renders a cell for CSV output. Missing cells become empty
// fields so a round trip through framelist.Load restores them.
func formatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		if math.IsNaN(x) {
			return "NaN"
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
