package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablekit/pkg/check"
)

func TestWithoutMissingRows(t *testing.T) {
	f := mustNew(t, []string{"a", "b"}, map[string][]interface{}{
		"a": {1.0, nil, 3.0, nil},
		"b": {4.0, 5.0, 6.0, nil},
	})
	require.NoError(t, f.SetIndex([]interface{}{"r0", "r1", "r2", "r3"}))

	anyClean, err := f.WithoutMissing(AxisRows, MatchAny)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"r0", "r2"}, anyClean.Index())

	allClean, err := f.WithoutMissing(AxisRows, MatchAll)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"r0", "r1", "r2"}, allClean.Index())

	// Pure variant: the input keeps all four rows.
	assert.Equal(t, 4, f.NumRows())
}

func TestWithoutMissingColumns(t *testing.T) {
	f := mustNew(t, []string{"full", "holey", "empty"}, map[string][]interface{}{
		"full":  {1.0, 2.0},
		"holey": {1.0, nil},
		"empty": {nil, nil},
	})

	anyClean, err := f.WithoutMissing(AxisColumns, MatchAny)
	require.NoError(t, err)
	assert.Equal(t, []string{"full"}, anyClean.Columns())

	allClean, err := f.WithoutMissing(AxisColumns, MatchAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"full", "holey"}, allClean.Columns())
}

func TestDropMissingInPlace(t *testing.T) {
	f := mustNew(t, []string{"a"}, map[string][]interface{}{
		"a": {1.0, nil, 3.0},
	})

	require.NoError(t, f.DropMissing(AxisRows, MatchAny))
	assert.Equal(t, 2, f.NumRows())
	col, _ := f.Column("a")
	assert.Equal(t, []interface{}{1.0, 3.0}, col)
}

func TestDropMissingInvalidMatch(t *testing.T) {
	f := mustNew(t, []string{"a"}, map[string][]interface{}{"a": {1.0}})

	err := f.DropMissing(AxisRows, Match("some"))
	var verr *check.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, check.CodeMembershipViolation, verr.Code)
}

func TestPromoteIndex(t *testing.T) {
	f := mustNew(t, []string{"t", "v"}, map[string][]interface{}{
		"t": {10.0, 20.0},
		"v": {1.0, 2.0},
	})

	require.True(t, f.PromoteIndex("t"))
	assert.Equal(t, []interface{}{10.0, 20.0}, f.Index())
	assert.Equal(t, []string{"v"}, f.Columns())

	assert.False(t, f.PromoteIndex("nope"))
}

func TestTruncate(t *testing.T) {
	f := mustNew(t, []string{"a"}, map[string][]interface{}{
		"a": {1.0, 2.0, 3.0, 4.0},
	})

	f.Truncate(2)
	assert.Equal(t, 2, f.NumRows())
	col, _ := f.Column("a")
	assert.Equal(t, []interface{}{1.0, 2.0}, col)

	// Already at the limit: a second truncate is a no-op.
	f.Truncate(2)
	assert.Equal(t, 2, f.NumRows())

	f.Truncate(10)
	assert.Equal(t, 2, f.NumRows())
}

func TestDividedBy(t *testing.T) {
	f := mustNew(t, []string{"a"}, map[string][]interface{}{
		"a": {2.0, nil, 6.0},
	})

	out, err := f.DividedBy(2.0)
	require.NoError(t, err)
	col, _ := out.Column("a")
	assert.Equal(t, []interface{}{1.0, nil, 3.0}, col)

	// Original untouched.
	col, _ = f.Column("a")
	assert.Equal(t, []interface{}{2.0, nil, 6.0}, col)
}

func TestMeanOfColumnSums(t *testing.T) {
	f := mustNew(t, []string{"a", "b"}, map[string][]interface{}{
		"a": {1.0, 2.0}, // sum 3
		"b": {3.0, 4.0}, // sum 7
	})

	avg, err := f.MeanOfColumnSums()
	require.NoError(t, err)
	assert.Equal(t, 5.0, avg)

	empty := mustNew(t, nil, nil)
	avg, err = empty.MeanOfColumnSums()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(avg))
}
