package framelist

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"tablekit/pkg/frame"
)

// LoadReport summarizes the outcome of a batch load. Missing files and
// files that could not be parsed are skipped, not errors; the report keeps
// their names so callers can account for partial results.
type LoadReport struct {
	ID      uuid.UUID `json:"id"`
	Loaded  []string  `json:"loaded"`
	Missing []string  `json:"missing,omitempty"`
	Failed  []string  `json:"failed,omitempty"`
}

// Load reads each named file into a frame and returns the loaded frames in
// input order along with a report. baseDir, when non-empty, is prepended
// to every name. Files with an .xlsx or .xlsm extension are read from
// their first sheet; everything else is parsed as CSV with a header row
// and the first column as the row index.
//
// Missing or unreadable files are logged and skipped; partial results are
// returned. The context is checked between files.
func Load(ctx context.Context, names []string, baseDir string) ([]*frame.Frame, LoadReport, error) {
	logger := slog.Default()
	report := LoadReport{ID: uuid.New()}

	logger.InfoContext(ctx, "loading frame list",
		"base_dir", baseDir,
		"num_files", len(names),
		"report_id", report.ID.String(),
	)

	var frames []*frame.Frame
	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, report, fmt.Errorf("context cancelled during load: %w", ctx.Err())
		default:
		}

		path := name
		if baseDir != "" {
			path = filepath.Join(baseDir, name)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			logger.WarnContext(ctx, "file not found, not included in frame list",
				"file", path)
			report.Missing = append(report.Missing, name)
			continue
		}

		f, err := loadFile(path)
		if err != nil {
			logger.WarnContext(ctx, "failed to load file, skipping",
				"file", path, "error", err)
			report.Failed = append(report.Failed, name)
			continue
		}

		frames = append(frames, f)
		report.Loaded = append(report.Loaded, name)
		logger.DebugContext(ctx, "file added to frame list",
			"file", path, "rows", f.NumRows(), "columns", f.NumCols())
	}

	logger.InfoContext(ctx, "frame list load completed",
		"loaded", len(report.Loaded),
		"missing", len(report.Missing),
		"failed", len(report.Failed),
		"report_id", report.ID.String(),
	)
	return frames, report, nil
}

// loadFile dispatches on the file extension.
func loadFile(path string) (*frame.Frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path)
	default:
		return loadCSV(path)
	}
}

// loadCSV parses a CSV file: header row holds the column labels, the first
// column holds the row index.
func loadCSV(path string) (*frame.Frame, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	// Strip the UTF-8 BOM Excel likes to prepend.
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	return framesFromRecords(records)
}

// loadXLSX reads the first sheet of a workbook with the same layout
// conventions as loadCSV.
func loadXLSX(path string) (*frame.Frame, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return framesFromRecords(rows)
}

// framesFromRecords builds a frame from raw records: records[0] is the
// header (first cell names the index and is discarded), remaining rows
// carry the index label followed by one cell per column.
func framesFromRecords(records [][]string) (*frame.Frame, error) {
	if len(records) == 0 || len(records[0]) < 2 {
		return nil, fmt.Errorf("no header row with at least one column")
	}

	labels := records[0][1:]
	cells := make(map[string][]interface{}, len(labels))
	for _, label := range labels {
		cells[label] = nil
	}

	index := make([]interface{}, 0, len(records)-1)
	for rowNum, row := range records[1:] {
		if len(row) == 0 {
			continue // trailing blank rows, common in spreadsheet exports
		}
		if len(row) > len(labels)+1 {
			return nil, fmt.Errorf("row %d has %d fields, want at most %d", rowNum+2, len(row), len(labels)+1)
		}
		index = append(index, parseCell(row[0]))
		for i, label := range labels {
			if i+1 < len(row) {
				cells[label] = append(cells[label], parseCell(row[i+1]))
			} else {
				cells[label] = append(cells[label], nil)
			}
		}
	}

	f, err := frame.New(labels, cells)
	if err != nil {
		return nil, err
	}
	if err := f.SetIndex(index); err != nil {
		return nil, err
	}
	return f, nil
}

// parseCell converts a raw field to a cell value: numbers become float64,
// recognized missing-value markers become nil, everything else stays a
// string.
func parseCell(raw string) interface{} {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "", "na", "nan", "null":
		return nil
	}
	if x, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return x
	}
	return trimmed
}
