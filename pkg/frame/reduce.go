package frame

import (
	"math"
	"sort"

	"tablekit/pkg/check"
)

// columnMean averages the numeric cells of the column at pos. Missing
// cells are skipped; a non-numeric cell is a TypeMismatch error. A column
// with no numeric cells yields NaN.
func (f *Frame) columnMean(op string, pos int) (float64, error) {
	sum, n := 0.0, 0
	for r, v := range f.data[pos] {
		if v == nil {
			continue
		}
		x, ok := check.Numeric(v)
		if !ok {
			return 0, check.NewTypeMismatch(op, v, r, "numeric cell in column "+f.cols[pos])
		}
		sum += x
		n++
	}
	if n == 0 {
		return math.NaN(), nil
	}
	return sum / float64(n), nil
}

// columnMax returns the largest numeric cell of the column at pos,
// skipping missing cells. A column with no numeric cells yields NaN.
func (f *Frame) columnMax(op string, pos int) (float64, error) {
	best := math.NaN()
	for r, v := range f.data[pos] {
		if v == nil {
			continue
		}
		x, ok := check.Numeric(v)
		if !ok {
			return 0, check.NewTypeMismatch(op, v, r, "numeric cell in column "+f.cols[pos])
		}
		if math.IsNaN(best) || x > best {
			best = x
		}
	}
	return best, nil
}

// columnMin returns the smallest numeric cell of the column at pos,
// skipping missing cells.
func (f *Frame) columnMin(op string, pos int) (float64, error) {
	best := math.NaN()
	for r, v := range f.data[pos] {
		if v == nil {
			continue
		}
		x, ok := check.Numeric(v)
		if !ok {
			return 0, check.NewTypeMismatch(op, v, r, "numeric cell in column "+f.cols[pos])
		}
		if math.IsNaN(best) || x < best {
			best = x
		}
	}
	return best, nil
}

// columnSum adds up the numeric cells of the column at pos, skipping
// missing cells.
func (f *Frame) columnSum(op string, pos int) (float64, error) {
	sum := 0.0
	for r, v := range f.data[pos] {
		if v == nil {
			continue
		}
		x, ok := check.Numeric(v)
		if !ok {
			return 0, check.NewTypeMismatch(op, v, r, "numeric cell in column "+f.cols[pos])
		}
		sum += x
	}
	return sum, nil
}

// rowMean averages the numeric cells of the row at pos across columns,
// skipping missing cells.
func (f *Frame) rowMean(op string, pos int) (float64, error) {
	sum, n := 0.0, 0
	for c := range f.data {
		v := f.data[c][pos]
		if v == nil {
			continue
		}
		x, ok := check.Numeric(v)
		if !ok {
			return 0, check.NewTypeMismatch(op, v, pos, "numeric cell in column "+f.cols[c])
		}
		sum += x
		n++
	}
	if n == 0 {
		return math.NaN(), nil
	}
	return sum / float64(n), nil
}

// columnMeans computes the per-column means in column order.
func (f *Frame) columnMeans(op string) ([]float64, error) {
	means := make([]float64, f.NumCols())
	for c := range f.data {
		m, err := f.columnMean(op, c)
		if err != nil {
			return nil, err
		}
		means[c] = m
	}
	return means, nil
}

// quantile computes the q-th quantile of the sample using linear
// interpolation between order statistics. NaN entries are ignored.
func quantile(sample []float64, q float64) float64 {
	vals := make([]float64, 0, len(sample))
	for _, v := range sample {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return math.NaN()
	}
	sort.Float64s(vals)
	if len(vals) == 1 {
		return vals[0]
	}
	pos := q * float64(len(vals)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo, hi = 0, 0
	}
	if hi >= len(vals) {
		lo, hi = len(vals)-1, len(vals)-1
	}
	frac := pos - float64(lo)
	return vals[lo] + frac*(vals[hi]-vals[lo])
}
