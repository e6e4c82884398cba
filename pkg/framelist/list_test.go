package framelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablekit/pkg/check"
	"tablekit/pkg/frame"
)

func mustFrame(t *testing.T, columns []string, cells map[string][]interface{}) *frame.Frame {
	t.Helper()
	f, err := frame.New(columns, cells)
	require.NoError(t, err)
	return f
}

// numericFrame builds a single-column frame with the given values.
func numericFrame(t *testing.T, values ...float64) *frame.Frame {
	t.Helper()
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return mustFrame(t, []string{"v"}, map[string][]interface{}{"v": cells})
}

func TestZeroBaseIndex(t *testing.T) {
	a := numericFrame(t, 1, 2)
	require.NoError(t, a.SetIndex([]interface{}{5.0, 6.0}))
	b := numericFrame(t, 3, 4)
	require.NoError(t, b.SetIndex([]interface{}{100.0, 150.0}))

	out, err := ZeroBaseIndex([]*frame.Frame{a, b})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []interface{}{0.0, 1.0}, out[0].Index())
	assert.Equal(t, []interface{}{0.0, 50.0}, out[1].Index())

	// Inputs untouched.
	assert.Equal(t, []interface{}{5.0, 6.0}, a.Index())
}

func TestZeroBaseIndexNilFrame(t *testing.T) {
	_, err := ZeroBaseIndex([]*frame.Frame{numericFrame(t, 1), nil})
	var verr *check.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, check.CodeTypeMismatch, verr.Code)
	assert.Equal(t, 1, verr.Index)
}

func TestDropColumnsInPlace(t *testing.T) {
	a := mustFrame(t, []string{"x", "y"}, map[string][]interface{}{
		"x": {1.0}, "y": {2.0},
	})
	b := mustFrame(t, []string{"y", "z"}, map[string][]interface{}{
		"y": {3.0}, "z": {4.0},
	})

	counts, err := DropColumns([]*frame.Frame{a, b}, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, counts)
	assert.Empty(t, a.Columns())
	assert.Equal(t, []string{"z"}, b.Columns())
}

func TestDroppedColumnsCopyMode(t *testing.T) {
	a := mustFrame(t, []string{"x", "y"}, map[string][]interface{}{
		"x": {1.0}, "y": {2.0},
	})

	out, counts, err := DroppedColumns([]*frame.Frame{a}, "y")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, counts)
	assert.Equal(t, []string{"x"}, out[0].Columns())
	// Original untouched.
	assert.Equal(t, []string{"x", "y"}, a.Columns())
}

func TestNormalizeByFactors(t *testing.T) {
	a := numericFrame(t, 2, 4)
	b := numericFrame(t, 10, 20)

	out, err := NormalizeByFactors([]*frame.Frame{a, b}, []float64{2, 10})
	require.NoError(t, err)

	colA, _ := out[0].Column("v")
	assert.Equal(t, []interface{}{1.0, 2.0}, colA)
	colB, _ := out[1].Column("v")
	assert.Equal(t, []interface{}{1.0, 2.0}, colB)

	// Originals untouched.
	orig, _ := a.Column("v")
	assert.Equal(t, []interface{}{2.0, 4.0}, orig)
}

func TestNormalizeByFactorsLengthMismatch(t *testing.T) {
	_, err := NormalizeByFactors([]*frame.Frame{numericFrame(t, 1)}, []float64{1, 2})
	var verr *check.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, check.CodeShapeMismatch, verr.Code)
}

func TestAverageColumnSums(t *testing.T) {
	a := mustFrame(t, []string{"p", "q"}, map[string][]interface{}{
		"p": {1.0, 2.0}, // sum 3
		"q": {3.0, 4.0}, // sum 7
	})
	b := numericFrame(t, 10, 20) // sum 30

	summary, err := AverageColumnSums([]*frame.Frame{a, b}, []string{"run1", "run2"})
	require.NoError(t, err)

	assert.Equal(t, []string{DatasetColumn, MeanOfSumsColumn}, summary.Columns())
	names, _ := summary.Column(DatasetColumn)
	assert.Equal(t, []interface{}{"run1", "run2"}, names)
	sums, _ := summary.Column(MeanOfSumsColumn)
	assert.Equal(t, []interface{}{5.0, 30.0}, sums)
}

func TestAverageColumnSumsNameMismatch(t *testing.T) {
	_, err := AverageColumnSums([]*frame.Frame{numericFrame(t, 1)}, []string{"a", "b"})
	var verr *check.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, check.CodeShapeMismatch, verr.Code)
}

func TestMinRowCountAndTruncate(t *testing.T) {
	frames := []*frame.Frame{
		numericFrame(t, make([]float64, 50)...),
		numericFrame(t, make([]float64, 30)...),
		numericFrame(t, make([]float64, 80)...),
	}

	min, err := MinRowCount(frames, 1000)
	require.NoError(t, err)
	assert.Equal(t, 30, min)

	require.NoError(t, Truncate(frames, min))
	for _, f := range frames {
		assert.Equal(t, 30, f.NumRows())
	}

	// Truncating an already-truncated list is a no-op.
	require.NoError(t, Truncate(frames, min))
	for _, f := range frames {
		assert.Equal(t, 30, f.NumRows())
	}
}

func TestMinRowCountCeiling(t *testing.T) {
	frames := []*frame.Frame{
		numericFrame(t, make([]float64, 50)...),
		numericFrame(t, make([]float64, 80)...),
	}

	// Every frame exceeds the ceiling, so the ceiling wins.
	min, err := MinRowCount(frames, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, min)
}

func TestWithoutMissing(t *testing.T) {
	a := mustFrame(t, []string{"v"}, map[string][]interface{}{
		"v": {1.0, nil, 3.0},
	})

	out, err := WithoutMissing([]*frame.Frame{a}, frame.AxisRows, frame.MatchAny)
	require.NoError(t, err)
	assert.Equal(t, 2, out[0].NumRows())
	assert.Equal(t, 3, a.NumRows())
}

func TestDropMissingInPlace(t *testing.T) {
	a := mustFrame(t, []string{"v"}, map[string][]interface{}{
		"v": {1.0, nil, 3.0},
	})

	require.NoError(t, DropMissing([]*frame.Frame{a}, frame.AxisRows, frame.MatchAny))
	assert.Equal(t, 2, a.NumRows())
}

func TestReindex(t *testing.T) {
	withCol := mustFrame(t, []string{"t", "v"}, map[string][]interface{}{
		"t": {10.0, 20.0}, "v": {1.0, 2.0},
	})
	withoutCol := numericFrame(t, 5)

	skipped, err := Reindex([]*frame.Frame{withCol, withoutCol}, "t")
	require.NoError(t, err)

	assert.Equal(t, []int{1}, skipped)
	assert.Equal(t, []interface{}{10.0, 20.0}, withCol.Index())
	assert.Equal(t, []string{"v"}, withCol.Columns())
	// The frame lacking the column is untouched.
	assert.Equal(t, []string{"v"}, withoutCol.Columns())
	assert.Equal(t, []interface{}{0}, withoutCol.Index())
}

func TestTopNByMeanAcrossList(t *testing.T) {
	a := mustFrame(t, []string{"lo", "hi"}, map[string][]interface{}{
		"lo": {1.0}, "hi": {9.0},
	})
	b := mustFrame(t, []string{"hi", "lo"}, map[string][]interface{}{
		"hi": {7.0}, "lo": {2.0},
	})

	out, labels, err := TopNByMean([]*frame.Frame{a, b}, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, [][]string{{"hi"}, {"hi"}}, labels)
	assert.Equal(t, []string{"hi"}, out[0].Columns())
}

func TestTopNByMaxAcrossList(t *testing.T) {
	a := mustFrame(t, []string{"steady", "spiky"}, map[string][]interface{}{
		"steady": {5.0, 5.0},
		"spiky":  {0.0, 8.0},
	})

	out, labels, err := TopNByMax([]*frame.Frame{a}, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"spiky"}}, labels)
	assert.Equal(t, []string{"spiky"}, out[0].Columns())
}

func TestTopQuantileAcrossList(t *testing.T) {
	a := mustFrame(t, []string{"a", "b", "c", "d"}, map[string][]interface{}{
		"a": {1.0}, "b": {2.0}, "c": {3.0}, "d": {4.0},
	})

	out, err := TopQuantile([]*frame.Frame{a}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, out[0].Columns())
}

func TestConcatPairs(t *testing.T) {
	a1 := numericFrame(t, 1, 2)
	a2 := numericFrame(t, 3, 4, 5)
	b1 := numericFrame(t, 6)
	b2 := numericFrame(t, 7)

	out, err := ConcatPairs([]*frame.Frame{a1, a2}, []*frame.Frame{b1, b2}, frame.AxisRows, frame.JoinIntersect)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Identical columns: the result row count is the sum of the pair's.
	assert.Equal(t, 3, out[0].NumRows())
	assert.Equal(t, 4, out[1].NumRows())
}

func TestConcatPairsLengthMismatch(t *testing.T) {
	_, err := ConcatPairs([]*frame.Frame{numericFrame(t, 1)}, nil, frame.AxisRows, frame.JoinIntersect)
	var verr *check.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, check.CodeShapeMismatch, verr.Code)
}

func TestConcatTransposedPairs(t *testing.T) {
	// 2 rows x 2 cols; transposing the second frame makes its columns
	// match the first frame's after index rendering.
	a := mustFrame(t, []string{"c0", "c1"}, map[string][]interface{}{
		"c0": {1.0, 2.0}, "c1": {3.0, 4.0},
	})
	b := mustFrame(t, []string{"r0", "r1"}, map[string][]interface{}{
		"r0": {5.0, 6.0}, "r1": {7.0, 8.0},
	})
	require.NoError(t, b.SetIndex([]interface{}{"c0", "c1"}))

	out, err := ConcatTransposedPairs(
		[]*frame.Frame{a}, []*frame.Frame{b},
		TransposedConcatOptions{Axis: frame.AxisRows, Join: frame.JoinIntersect},
	)
	require.NoError(t, err)
	require.Len(t, out, 1)

	combined := out[0]
	assert.Equal(t, []string{"c0", "c1"}, combined.Columns())
	assert.Equal(t, 4, combined.NumRows())
	c0, _ := combined.Column("c0")
	assert.Equal(t, []interface{}{1.0, 2.0, 5.0, 7.0}, c0)
}

func TestConcatTransposedPairsWithPad(t *testing.T) {
	a := mustFrame(t, []string{"c0", "c1"}, map[string][]interface{}{
		"c0": {1.0}, "c1": {2.0},
	})
	b := mustFrame(t, []string{"r0"}, map[string][]interface{}{
		"r0": {5.0, 6.0},
	})
	require.NoError(t, b.SetIndex([]interface{}{"c0", "c1"}))

	out, err := ConcatTransposedPairs(
		[]*frame.Frame{a}, []*frame.Frame{b},
		TransposedConcatOptions{
			Axis:              frame.AxisRows,
			Join:              frame.JoinIntersect,
			Pad:               true,
			PadLabel:          "columns",
			RepeatColumnNames: true,
		},
	)
	require.NoError(t, err)

	combined := out[0]
	// One data row, two separator rows, one transposed row.
	require.Equal(t, 4, combined.NumRows())
	assert.Equal(t, []interface{}{0, "", "columns", "r0"}, combined.Index())

	c0, _ := combined.Column("c0")
	assert.Equal(t, []interface{}{1.0, nil, "c0", 5.0}, c0)
	c1, _ := combined.Column("c1")
	assert.Equal(t, []interface{}{2.0, nil, "c1", 6.0}, c1)
}

func TestNormalizeEach(t *testing.T) {
	a := numericFrame(t, 2, -4)
	b := numericFrame(t, 10, 5)

	out, err := NormalizeEach([]*frame.Frame{a, b})
	require.NoError(t, err)

	colA, _ := out[0].Column("v")
	assert.Equal(t, []interface{}{0.5, -1.0}, colA)
	colB, _ := out[1].Column("v")
	assert.Equal(t, []interface{}{1.0, 0.5}, colB)
}

func TestNormalizeAllReturnsFactors(t *testing.T) {
	a := numericFrame(t, 5, -10)
	b := numericFrame(t, 4, 2)

	out, factors, err := NormalizeAll([]*frame.Frame{a, b})
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 4}, factors)
	colA, _ := out[0].Column("v")
	assert.Equal(t, []interface{}{0.5, -1.0}, colA)

	// Inputs untouched.
	orig, _ := a.Column("v")
	assert.Equal(t, []interface{}{5.0, -10.0}, orig)
}
