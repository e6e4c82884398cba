// Package frame implements a small two-dimensional labeled table and the
// single-table transformations built on it.
//
// A Frame is an ordered set of labeled columns sharing one row index. Cells
// and index labels hold float64, int, string or bool values; nil marks a
// missing cell. Every column has exactly as many cells as the index has
// labels.
//
// # Ownership
//
// Frames are owned by the caller. Each operation is either pure — it
// returns a new Frame and leaves its receiver untouched — or documented as
// in-place; no operation is both. In-place operations are not safe for
// concurrent use on the same Frame without external synchronization.
//
// # Operations
//
//   - frame.go: construction, accessors, Copy, Transpose
//   - ops.go: ZeroBaseIndex, ColumnMeans, RowMeans, DropColumns,
//     TopNByMean, TopNByMax, TopQuantile, NormalizeColumns, NormalizeAll
//   - concat.go: pairwise concatenation with intersect/union join semantics
//   - reduce.go: the numeric reductions the operations are built on
//
// Batch processing of ordered lists of Frames lives in pkg/framelist.
package frame
