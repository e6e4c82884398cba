// Command tabledemo demonstrates the tablekit pipeline: load a list of
// tables, zero-base their indices, drop unwanted columns, truncate to a
// common row count, normalize, pick the top columns by mean, and write a
// per-dataset summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tablekit/internal/config"
	"tablekit/internal/exporter"
	"tablekit/internal/infrastructure"
	"tablekit/pkg/frame"
	"tablekit/pkg/framelist"
)

func main() {
	configPath := flag.String("config", "tablekit.yaml", "path to the YAML config file (optional)")
	dir := flag.String("dir", "", "directory containing the input files (overrides config)")
	out := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *dir != "" {
		cfg.Pipeline.DataDir = *dir
	}
	if *out != "" {
		cfg.Pipeline.OutDir = *out
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	files := cfg.Pipeline.Files
	if len(files) == 0 {
		discovered, err := discoverFiles(cfg.Pipeline.DataDir)
		if err != nil {
			return err
		}
		files = discovered
	}

	logger.Info("starting demo pipeline",
		slog.String("data_dir", cfg.Pipeline.DataDir),
		slog.Int("num_files", len(files)))

	frames, report, err := framelist.Load(ctx, files, cfg.Pipeline.DataDir)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no frames loaded (missing: %d, failed: %d)",
			len(report.Missing), len(report.Failed))
	}

	frames, err = framelist.ZeroBaseIndex(frames)
	if err != nil {
		return fmt.Errorf("zero-base indices: %w", err)
	}

	if len(cfg.Pipeline.DropColumns) > 0 {
		counts, err := framelist.DropColumns(frames, cfg.Pipeline.DropColumns...)
		if err != nil {
			return fmt.Errorf("drop columns: %w", err)
		}
		logger.Info("dropped columns", "per_frame", counts)
	}

	minRows, err := framelist.MinRowCount(frames, cfg.Pipeline.RowCeiling)
	if err != nil {
		return fmt.Errorf("find minimum row count: %w", err)
	}
	if err := framelist.Truncate(frames, minRows); err != nil {
		return fmt.Errorf("truncate to %d rows: %w", minRows, err)
	}
	logger.Info("truncated frames", "rows", minRows)

	normalized, err := framelist.NormalizeEach(frames)
	if err != nil {
		return fmt.Errorf("normalize frames: %w", err)
	}

	topN := cfg.Pipeline.TopN
	if min := minColumns(normalized); topN > min {
		logger.Warn("top_n exceeds the smallest column count, clamping for the demo",
			"top_n", topN, "columns", min)
		topN = min
	}
	top, labels, err := framelist.TopNByMean(normalized, topN)
	if err != nil {
		return fmt.Errorf("select top columns: %w", err)
	}

	names := make([]string, len(report.Loaded))
	for i, name := range report.Loaded {
		names[i] = strings.TrimSuffix(name, filepath.Ext(name))
	}
	summary, err := framelist.AverageColumnSums(frames, names)
	if err != nil {
		return fmt.Errorf("summarize column sums: %w", err)
	}

	for i, f := range top {
		path := filepath.Join(cfg.Pipeline.OutDir, names[i]+"_top.csv")
		if err := exporter.WriteFrame(path, f, exporter.Options{IndexName: "t"}); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("wrote top columns", "dataset", names[i], "columns", labels[i])
	}

	summaryPath := filepath.Join(cfg.Pipeline.OutDir, "summary.csv")
	if err := exporter.WriteFrame(summaryPath, summary, exporter.Options{IndexName: ""}); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	logger.Info("demo pipeline completed",
		slog.String("summary", summaryPath),
		slog.String("report_id", report.ID.String()))
	return nil
}

// discoverFiles lists the CSV and xlsx files in dir when the config names
// none explicitly.
func discoverFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".csv", ".xlsx", ".xlsm":
			files = append(files, e.Name())
		}
	}
	return files, nil
}

func minColumns(frames []*frame.Frame) int {
	min := 0
	for i, f := range frames {
		if i == 0 || f.NumCols() < min {
			min = f.NumCols()
		}
	}
	return min
}
