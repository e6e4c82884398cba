package framelist

import (
	"log/slog"

	"tablekit/pkg/check"
	"tablekit/pkg/frame"
)

// asValues widens a frame list for the check helpers.
func asValues(frames []*frame.Frame) []interface{} {
	values := make([]interface{}, len(frames))
	for i, f := range frames {
		values[i] = f
	}
	return values
}

// ZeroBaseIndex returns a new list in which every frame's row index is
// offset so its first value is zero. The input frames are not modified.
func ZeroBaseIndex(frames []*frame.Frame) ([]*frame.Frame, error) {
	const op = "framelist.ZeroBaseIndex"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, err
	}
	out := make([]*frame.Frame, len(frames))
	for i, f := range frames {
		zb, err := f.ZeroBaseIndex()
		if err != nil {
			return nil, err
		}
		out[i] = zb
	}
	return out, nil
}

// DropColumns removes the given columns from every frame in place and
// returns the per-frame counts of columns actually removed. Columns a
// frame does not have are skipped with a diagnostic log entry.
func DropColumns(frames []*frame.Frame, labels ...string) ([]int, error) {
	const op = "framelist.DropColumns"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, err
	}
	counts := make([]int, len(frames))
	for i, f := range frames {
		counts[i] = f.DropColumns(labels...)
	}
	return counts, nil
}

// DroppedColumns is the copy-mode variant of DropColumns: the originals
// are untouched and a new list of reduced frames is returned alongside the
// per-frame removal counts.
func DroppedColumns(frames []*frame.Frame, labels ...string) ([]*frame.Frame, []int, error) {
	const op = "framelist.DroppedColumns"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, nil, err
	}
	out := make([]*frame.Frame, len(frames))
	counts := make([]int, len(frames))
	for i, f := range frames {
		out[i], counts[i] = f.DroppedColumns(labels...)
	}
	return out, counts, nil
}

// NormalizeByFactors divides every column of frames[i] by factors[i],
// paired by position, and returns the new list. The two lists must have
// equal length. The input frames are not modified.
func NormalizeByFactors(frames []*frame.Frame, factors []float64) ([]*frame.Frame, error) {
	const op = "framelist.NormalizeByFactors"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, err
	}
	if err := check.EqualLengths(op, len(frames), len(factors)); err != nil {
		return nil, err
	}
	out := make([]*frame.Frame, len(frames))
	for i, f := range frames {
		scaled, err := f.DividedBy(factors[i])
		if err != nil {
			return nil, err
		}
		out[i] = scaled
	}
	return out, nil
}

// DatasetColumn and MeanOfSumsColumn are the column labels of the summary
// frame produced by AverageColumnSums.
const (
	DatasetColumn    = "dataset"
	MeanOfSumsColumn = "mean_of_column_sums"
)

// AverageColumnSums sums every column of each frame, averages those sums
// into one scalar per frame, and compiles a summary frame pairing the
// caller-supplied name of each frame with its scalar. The name list and
// the frame list must have equal length.
func AverageColumnSums(frames []*frame.Frame, names []string) (*frame.Frame, error) {
	const op = "framelist.AverageColumnSums"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, err
	}
	if err := check.EqualLengths(op, len(frames), len(names)); err != nil {
		return nil, err
	}

	nameCells := make([]interface{}, len(frames))
	sumCells := make([]interface{}, len(frames))
	for i, f := range frames {
		avg, err := f.MeanOfColumnSums()
		if err != nil {
			return nil, err
		}
		nameCells[i] = names[i]
		sumCells[i] = avg
	}
	return frame.New([]string{DatasetColumn, MeanOfSumsColumn}, map[string][]interface{}{
		DatasetColumn:    nameCells,
		MeanOfSumsColumn: sumCells,
	})
}

// MinRowCount returns the smallest row count found in the list, capped by
// the given ceiling: when every frame has more rows than the ceiling, the
// ceiling is returned.
func MinRowCount(frames []*frame.Frame, ceiling int) (int, error) {
	const op = "framelist.MinRowCount"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return 0, err
	}
	min := ceiling
	for _, f := range frames {
		if f.NumRows() < min {
			min = f.NumRows()
		}
	}
	return min, nil
}

// Truncate trims every frame in the list down to at most n rows by
// removing trailing rows in place. Frames already at or below n rows are
// untouched.
func Truncate(frames []*frame.Frame, n int) error {
	const op = "framelist.Truncate"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return err
	}
	for _, f := range frames {
		f.Truncate(n)
	}
	return nil
}

// DropMissing removes rows or columns containing missing values from
// every frame in place. See frame.DropMissing for the axis and match
// semantics.
func DropMissing(frames []*frame.Frame, axis frame.Axis, match frame.Match) error {
	const op = "framelist.DropMissing"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return err
	}
	for _, f := range frames {
		if err := f.DropMissing(axis, match); err != nil {
			return err
		}
	}
	return nil
}

// WithoutMissing is the copy-mode variant of DropMissing: the originals
// are untouched and a new list of cleaned frames is returned.
func WithoutMissing(frames []*frame.Frame, axis frame.Axis, match frame.Match) ([]*frame.Frame, error) {
	const op = "framelist.WithoutMissing"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, err
	}
	out := make([]*frame.Frame, len(frames))
	for i, f := range frames {
		cleaned, err := f.WithoutMissing(axis, match)
		if err != nil {
			return nil, err
		}
		out[i] = cleaned
	}
	return out, nil
}

// Reindex promotes the named column to be the row index of every frame
// that has it, in place. Frames lacking the column are skipped with a
// diagnostic log entry; their positions are returned so downstream code
// can account for the list-wide inconsistency.
func Reindex(frames []*frame.Frame, column string) ([]int, error) {
	const op = "framelist.Reindex"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, err
	}
	logger := slog.Default()

	var skipped []int
	for i, f := range frames {
		if !f.PromoteIndex(column) {
			logger.Warn("target index column not found in frame, skipping reindex",
				"column", column, "position", i)
			skipped = append(skipped, i)
		}
	}
	return skipped, nil
}

// TopNByMean applies frame.TopNByMean to every frame, returning the list
// of reduced frames and the parallel list of selected-label lists.
func TopNByMean(frames []*frame.Frame, n int) ([]*frame.Frame, [][]string, error) {
	const op = "framelist.TopNByMean"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, nil, err
	}
	slog.Default().Debug("selecting top columns by mean", "n", n, "frames", len(frames))

	out := make([]*frame.Frame, len(frames))
	labels := make([][]string, len(frames))
	for i, f := range frames {
		top, sel, err := f.TopNByMean(n)
		if err != nil {
			return nil, nil, err
		}
		out[i], labels[i] = top, sel
	}
	return out, labels, nil
}

// TopNByMax applies frame.TopNByMax to every frame, with the same contract
// as TopNByMean.
func TopNByMax(frames []*frame.Frame, n int) ([]*frame.Frame, [][]string, error) {
	const op = "framelist.TopNByMax"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, nil, err
	}
	slog.Default().Debug("selecting top columns by max", "n", n, "frames", len(frames))

	out := make([]*frame.Frame, len(frames))
	labels := make([][]string, len(frames))
	for i, f := range frames {
		top, sel, err := f.TopNByMax(n)
		if err != nil {
			return nil, nil, err
		}
		out[i], labels[i] = top, sel
	}
	return out, labels, nil
}

// TopQuantile applies frame.TopQuantile to every frame. The quantile
// threshold is computed per frame.
func TopQuantile(frames []*frame.Frame, q float64) ([]*frame.Frame, error) {
	const op = "framelist.TopQuantile"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, err
	}
	out := make([]*frame.Frame, len(frames))
	for i, f := range frames {
		sel, err := f.TopQuantile(q)
		if err != nil {
			return nil, err
		}
		out[i] = sel
	}
	return out, nil
}

// ConcatPairs concatenates list1[i] with list2[i] along the given axis
// using the given join discipline and returns the list of combined frames.
// The two lists must have equal length. When the sizes of the
// non-concatenation dimension differ within a pair, a warning is logged
// and the join semantics govern the result.
func ConcatPairs(list1, list2 []*frame.Frame, axis frame.Axis, join frame.Join) ([]*frame.Frame, error) {
	const op = "framelist.ConcatPairs"

	if err := validatePairs(op, list1, list2); err != nil {
		return nil, err
	}
	warnDimensionMismatch(op, list1, list2, axis, false)

	out := make([]*frame.Frame, len(list1))
	for i := range list1 {
		combined, err := frame.Concat(list1[i], list2[i], axis, join)
		if err != nil {
			return nil, err
		}
		out[i] = combined
	}
	return out, nil
}

// TransposedConcatOptions configures ConcatTransposedPairs.
type TransposedConcatOptions struct {
	Axis frame.Axis
	Join frame.Join
	// Pad inserts a blank separator row between the two parts.
	Pad bool
	// PadLabel labels the second separator row; leave empty for a blank
	// index label.
	PadLabel string
	// RepeatColumnNames re-populates the separator row's cells with the
	// first frame's column labels.
	RepeatColumnNames bool
}

// ConcatTransposedPairs concatenates list1[i] with the transpose of
// list2[i], optionally inserting a separator between the two parts. The
// two lists must have equal length.
func ConcatTransposedPairs(list1, list2 []*frame.Frame, opts TransposedConcatOptions) ([]*frame.Frame, error) {
	const op = "framelist.ConcatTransposedPairs"

	if err := validatePairs(op, list1, list2); err != nil {
		return nil, err
	}
	warnDimensionMismatch(op, list1, list2, opts.Axis, true)

	out := make([]*frame.Frame, len(list1))
	for i := range list1 {
		left := list1[i]
		right := list2[i].Transpose()

		if opts.Pad {
			pad, err := padFrame(left.Columns(), opts.PadLabel, opts.RepeatColumnNames)
			if err != nil {
				return nil, err
			}
			left, err = frame.Concat(left, pad, opts.Axis, opts.Join)
			if err != nil {
				return nil, err
			}
		}

		combined, err := frame.Concat(left, right, opts.Axis, opts.Join)
		if err != nil {
			return nil, err
		}
		out[i] = combined
	}
	return out, nil
}

// padFrame builds the two-row separator: a blank row plus a row that
// optionally repeats the column labels.
func padFrame(columns []string, padLabel string, repeatNames bool) (*frame.Frame, error) {
	cells := make(map[string][]interface{}, len(columns))
	for _, c := range columns {
		var second interface{}
		if repeatNames {
			second = c
		}
		cells[c] = []interface{}{nil, second}
	}
	pad, err := frame.New(columns, cells)
	if err != nil {
		return nil, err
	}
	if err := pad.SetIndex([]interface{}{"", padLabel}); err != nil {
		return nil, err
	}
	return pad, nil
}

// NormalizeEach applies frame.NormalizeColumns to every frame and returns
// the new list. The input frames are not modified.
func NormalizeEach(frames []*frame.Frame) ([]*frame.Frame, error) {
	const op = "framelist.NormalizeEach"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, err
	}
	out := make([]*frame.Frame, len(frames))
	for i, f := range frames {
		norm, err := f.NormalizeColumns()
		if err != nil {
			return nil, err
		}
		out[i] = norm
	}
	return out, nil
}

// NormalizeAll applies frame.NormalizeAll to every frame and returns the
// new list together with the parallel list of scalar factors used per
// frame. The input frames are not modified.
func NormalizeAll(frames []*frame.Frame) ([]*frame.Frame, []float64, error) {
	const op = "framelist.NormalizeAll"

	if err := check.AllPresent(op, asValues(frames)); err != nil {
		return nil, nil, err
	}
	out := make([]*frame.Frame, len(frames))
	factors := make([]float64, len(frames))
	for i, f := range frames {
		norm, factor, err := f.NormalizeAll()
		if err != nil {
			return nil, nil, err
		}
		out[i], factors[i] = norm, factor
	}
	return out, factors, nil
}

// validatePairs runs the shared precondition checks for the pairwise ops.
func validatePairs(op string, list1, list2 []*frame.Frame) error {
	if err := check.AllPresent(op, asValues(list1)); err != nil {
		return err
	}
	if err := check.AllPresent(op, asValues(list2)); err != nil {
		return err
	}
	return check.EqualLengths(op, len(list1), len(list2))
}

// warnDimensionMismatch logs a non-fatal warning for every pair whose
// non-concatenation dimension sizes differ. For the transposed variant the
// second frame's dimensions are compared post-transpose.
func warnDimensionMismatch(op string, list1, list2 []*frame.Frame, axis frame.Axis, transposed bool) {
	logger := slog.Default()
	for i := range list1 {
		a, b := list1[i], list2[i]
		aSize, bSize := a.NumCols(), b.NumCols()
		if axis == frame.AxisColumns {
			aSize, bSize = a.NumRows(), b.NumRows()
		}
		if transposed {
			// The second frame's rows and columns swap before joining.
			bSize = b.NumRows()
			if axis == frame.AxisColumns {
				bSize = b.NumCols()
			}
		}
		if aSize != bSize {
			logger.Warn("pair dimensions differ along the non-concatenation axis, proceeding",
				"op", op, "position", i, "axis", axis.String(),
				"first", aSize, "second", bSize)
		}
	}
}
