// Package exporter writes frames to CSV files.
//
// The layout mirrors what framelist.Load reads back: a header row whose
// first cell names the index, followed by one row per index label. An
// optional UTF-8 BOM keeps Excel happy with non-ASCII labels.
package exporter
