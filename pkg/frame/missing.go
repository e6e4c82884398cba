package frame

import (
	"math"

	"tablekit/pkg/check"
)

// Match selects how a row or column qualifies for missing-value removal.
type Match string

const (
	// MatchAny removes a row/column when any of its cells is missing.
	MatchAny Match = "any"
	// MatchAll removes a row/column only when every cell is missing.
	MatchAll Match = "all"
)

// DropMissing removes rows (AxisRows) or columns (AxisColumns) containing
// missing values in place. With MatchAny a single missing cell qualifies;
// with MatchAll every cell must be missing.
func (f *Frame) DropMissing(axis Axis, match Match) error {
	out, err := f.WithoutMissing(axis, match)
	if err != nil {
		return err
	}
	*f = *out
	return nil
}

// WithoutMissing is the pure variant of DropMissing: it returns a new
// frame with the qualifying rows or columns removed, leaving the receiver
// untouched.
func (f *Frame) WithoutMissing(axis Axis, match Match) (*Frame, error) {
	const op = "frame.WithoutMissing"

	if err := check.InIntSet(op, int(axis), []int{int(AxisRows), int(AxisColumns)}); err != nil {
		return nil, err
	}
	if err := check.InStringSet(op, string(match), []string{string(MatchAny), string(MatchAll)}); err != nil {
		return nil, err
	}

	if axis == AxisRows {
		var keep []int
		for r := 0; r < f.NumRows(); r++ {
			missing := 0
			for c := range f.data {
				if f.data[c][r] == nil {
					missing++
				}
			}
			if !qualifies(missing, f.NumCols(), match) {
				keep = append(keep, r)
			}
		}
		return f.selectRows(keep), nil
	}

	var keep []int
	for c := range f.data {
		missing := 0
		for r := 0; r < f.NumRows(); r++ {
			if f.data[c][r] == nil {
				missing++
			}
		}
		if !qualifies(missing, f.NumRows(), match) {
			keep = append(keep, c)
		}
	}
	return f.selectColumns(keep), nil
}

// qualifies reports whether a row/column with the given missing-cell count
// should be removed.
func qualifies(missing, total int, match Match) bool {
	if match == MatchAny {
		return missing > 0
	}
	return total > 0 && missing == total
}

// PromoteIndex promotes the named column to be the row index, removing it
// from the column set, in place. It reports whether the column existed.
func (f *Frame) PromoteIndex(label string) bool {
	pos, ok := f.byCol[label]
	if !ok {
		return false
	}
	f.index = append([]interface{}(nil), f.data[pos]...)
	f.dropColumnAt(pos)
	return true
}

// Truncate removes trailing rows in place so that at most n rows remain.
// Frames already at or below n rows are untouched.
func (f *Frame) Truncate(n int) {
	f.truncateRows(n)
}

// DividedBy returns a copy of the frame with every numeric cell divided by
// the given factor. Missing cells stay missing.
func (f *Frame) DividedBy(factor float64) (*Frame, error) {
	const op = "frame.DividedBy"

	out := f.Copy()
	for c := range out.data {
		for r, v := range out.data[c] {
			if v == nil {
				continue
			}
			x, ok := check.Numeric(v)
			if !ok {
				return nil, check.NewTypeMismatch(op, v, r, "numeric cell in column "+out.cols[c])
			}
			out.data[c][r] = x / factor
		}
	}
	return out, nil
}

// MeanOfColumnSums sums every column and averages those per-column sums
// into one scalar.
func (f *Frame) MeanOfColumnSums() (float64, error) {
	const op = "frame.MeanOfColumnSums"

	if f.NumCols() == 0 {
		return math.NaN(), nil
	}
	total := 0.0
	for c := range f.data {
		s, err := f.columnSum(op, c)
		if err != nil {
			return 0, err
		}
		total += s
	}
	return total / float64(f.NumCols()), nil
}
