package frame

import (
	"log/slog"
	"math"
	"sort"

	"tablekit/pkg/check"
)

// AveragesColumn is the column label used by ColumnMeans and RowMeans for
// their single result column.
const AveragesColumn = "Averages"

// ZeroBaseIndex returns a copy of the frame whose row index is offset so
// that the first index value is zero. The index must be numeric. The
// receiver is not modified.
func (f *Frame) ZeroBaseIndex() (*Frame, error) {
	const op = "frame.ZeroBaseIndex"

	if err := check.AllNumeric(op, f.index); err != nil {
		return nil, err
	}
	out := f.Copy()
	if len(out.index) == 0 {
		return out, nil
	}
	first, _ := check.Numeric(out.index[0])
	for i, v := range out.index {
		x, _ := check.Numeric(v)
		out.index[i] = x - first
	}
	return out, nil
}

// ColumnMeans returns a new single-column frame mapping each column label
// to the arithmetic mean of that column.
func (f *Frame) ColumnMeans() (*Frame, error) {
	const op = "frame.ColumnMeans"

	means, err := f.columnMeans(op)
	if err != nil {
		return nil, err
	}
	cells := make([]interface{}, len(means))
	index := make([]interface{}, len(means))
	for i, m := range means {
		cells[i] = m
		index[i] = f.cols[i]
	}
	return newFrame([]string{AveragesColumn}, [][]interface{}{cells}, index), nil
}

// RowMeans returns a new single-column frame mapping each row label to the
// arithmetic mean of that row.
func (f *Frame) RowMeans() (*Frame, error) {
	const op = "frame.RowMeans"

	cells := make([]interface{}, f.NumRows())
	for r := 0; r < f.NumRows(); r++ {
		m, err := f.rowMean(op, r)
		if err != nil {
			return nil, err
		}
		cells[r] = m
	}
	return newFrame([]string{AveragesColumn}, [][]interface{}{cells}, append([]interface{}(nil), f.index...)), nil
}

// DropColumns removes each present label from the frame in place and
// returns the number of columns actually removed. Labels not present are
// skipped with a diagnostic log entry.
func (f *Frame) DropColumns(labels ...string) int {
	logger := slog.Default()

	dropped := 0
	for _, label := range labels {
		pos, ok := f.byCol[label]
		if !ok {
			logger.Warn("column not present in frame, skipping", "column", label)
			continue
		}
		f.dropColumnAt(pos)
		dropped++
	}
	logger.Debug("dropped columns from frame", "count", dropped)
	return dropped
}

// DroppedColumns is the pure variant of DropColumns: it returns a new
// frame with the given columns removed and the count of columns removed,
// leaving the receiver untouched.
func (f *Frame) DroppedColumns(labels ...string) (*Frame, int) {
	out := f.Copy()
	return out, out.DropColumns(labels...)
}

// TopNByMean selects the n columns with the largest per-column mean and
// returns the reduced frame (row index preserved, columns ordered by
// descending mean) together with the selected labels in the same order.
// Ties keep the original column order. n outside [0, NumCols] is an
// InvalidArgument error.
func (f *Frame) TopNByMean(n int) (*Frame, []string, error) {
	const op = "frame.TopNByMean"

	means, err := f.columnMeans(op)
	if err != nil {
		return nil, nil, err
	}
	return f.topNByMetric(op, n, means)
}

// TopNByMax selects the n columns with the largest per-column maximum,
// with the same contract as TopNByMean.
func (f *Frame) TopNByMax(n int) (*Frame, []string, error) {
	const op = "frame.TopNByMax"

	maxes := make([]float64, f.NumCols())
	for c := range f.data {
		m, err := f.columnMax(op, c)
		if err != nil {
			return nil, nil, err
		}
		maxes[c] = m
	}
	return f.topNByMetric(op, n, maxes)
}

func (f *Frame) topNByMetric(op string, n int, metric []float64) (*Frame, []string, error) {
	if n < 0 || n > f.NumCols() {
		return nil, nil, check.NewInvalidArgument(op, n,
			"n must be between 0 and the number of columns")
	}

	positions := make([]int, f.NumCols())
	for i := range positions {
		positions[i] = i
	}
	// NaN metrics sort last so all-missing columns are never selected
	// ahead of real data.
	sort.SliceStable(positions, func(i, j int) bool {
		a, b := metric[positions[i]], metric[positions[j]]
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
	positions = positions[:n]

	labels := make([]string, n)
	for i, pos := range positions {
		labels[i] = f.cols[pos]
	}
	return f.selectColumns(positions), labels, nil
}

// TopQuantile computes the per-column means, takes the q-th quantile of
// those means, and returns a new frame holding only the columns whose mean
// strictly exceeds that quantile. Column order follows the original frame.
// When many means are equal the strict comparison can select no columns;
// the resulting frame is then empty.
func (f *Frame) TopQuantile(q float64) (*Frame, error) {
	const op = "frame.TopQuantile"

	if err := check.Threshold(op, []float64{q}, 1.0, check.AtMost); err != nil {
		return nil, err
	}
	if err := check.Threshold(op, []float64{q}, 0.0, check.AtLeast); err != nil {
		return nil, err
	}

	means, err := f.columnMeans(op)
	if err != nil {
		return nil, err
	}
	cut := quantile(means, q)

	var positions []int
	for c, m := range means {
		if m > cut {
			positions = append(positions, c)
		}
	}
	return f.selectColumns(positions), nil
}

// NormalizeColumns returns a copy of the frame with each column divided by
// the maximum of |column max| and |column min|, producing values in
// [-1, 1] with at least one cell per column reaching ±1.
func (f *Frame) NormalizeColumns() (*Frame, error) {
	const op = "frame.NormalizeColumns"

	out := f.Copy()
	for c := range out.data {
		hi, err := f.columnMax(op, c)
		if err != nil {
			return nil, err
		}
		lo, err := f.columnMin(op, c)
		if err != nil {
			return nil, err
		}
		factor := math.Max(math.Abs(hi), math.Abs(lo))
		for r, v := range out.data[c] {
			if v == nil {
				continue
			}
			x, _ := check.Numeric(v)
			out.data[c][r] = x / factor
		}
	}
	return out, nil
}

// NormalizeAll returns a copy of the frame with every cell divided by one
// scalar factor, the maximum of |table max| and |table min| across all
// columns, together with the factor used.
func (f *Frame) NormalizeAll() (*Frame, float64, error) {
	const op = "frame.NormalizeAll"

	hi, lo := math.NaN(), math.NaN()
	for c := range f.data {
		cHi, err := f.columnMax(op, c)
		if err != nil {
			return nil, 0, err
		}
		cLo, err := f.columnMin(op, c)
		if err != nil {
			return nil, 0, err
		}
		if math.IsNaN(hi) || cHi > hi {
			hi = cHi
		}
		if math.IsNaN(lo) || cLo < lo {
			lo = cLo
		}
	}
	factor := math.Max(math.Abs(hi), math.Abs(lo))

	out := f.Copy()
	for c := range out.data {
		for r, v := range out.data[c] {
			if v == nil {
				continue
			}
			x, _ := check.Numeric(v)
			out.data[c][r] = x / factor
		}
	}
	return out, factor, nil
}
