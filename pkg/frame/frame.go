package frame

import (
	"fmt"

	"tablekit/pkg/check"
)

// Frame is a two-dimensional labeled data structure: an ordered mapping
// from column label to a column of cells, all columns sharing one row
// index. The zero value is not usable; construct frames with New.
type Frame struct {
	cols  []string
	byCol map[string]int // label -> first position in cols
	data  [][]interface{}
	index []interface{}
}

// New creates a Frame from ordered column labels and their cells. All
// columns must have equal length. The row index defaults to 0..n-1.
func New(columns []string, cells map[string][]interface{}) (*Frame, error) {
	const op = "frame.New"

	rows := -1
	data := make([][]interface{}, 0, len(columns))
	for _, label := range columns {
		col, ok := cells[label]
		if !ok {
			return nil, check.NewInvalidArgument(op, label, fmt.Sprintf("no cells given for column %q", label))
		}
		if rows == -1 {
			rows = len(col)
		}
		if err := check.EqualLengths(op, rows, len(col)); err != nil {
			return nil, err
		}
		data = append(data, append([]interface{}(nil), col...))
	}
	if rows == -1 {
		rows = 0
	}

	index := make([]interface{}, rows)
	for i := range index {
		index[i] = i
	}
	return newFrame(append([]string(nil), columns...), data, index), nil
}

// newFrame wires up a Frame from already-owned storage. Duplicate column
// labels are tolerated; lookups resolve to the first occurrence.
func newFrame(cols []string, data [][]interface{}, index []interface{}) *Frame {
	byCol := make(map[string]int, len(cols))
	for i, label := range cols {
		if _, seen := byCol[label]; !seen {
			byCol[label] = i
		}
	}
	return &Frame{cols: cols, byCol: byCol, data: data, index: index}
}

// SetIndex replaces the row index in place. The new index must have one
// label per row.
func (f *Frame) SetIndex(index []interface{}) error {
	if err := check.EqualLengths("frame.SetIndex", f.NumRows(), len(index)); err != nil {
		return err
	}
	f.index = append([]interface{}(nil), index...)
	return nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return len(f.index)
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.cols)
}

// Columns returns a copy of the ordered column labels.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.cols...)
}

// Index returns a copy of the row index labels.
func (f *Frame) Index() []interface{} {
	return append([]interface{}(nil), f.index...)
}

// HasColumn reports whether a column with the given label exists.
func (f *Frame) HasColumn(label string) bool {
	_, ok := f.byCol[label]
	return ok
}

// Column returns a copy of the cells of the first column with the given
// label, and whether such a column exists.
func (f *Frame) Column(label string) ([]interface{}, bool) {
	pos, ok := f.byCol[label]
	if !ok {
		return nil, false
	}
	return append([]interface{}(nil), f.data[pos]...), true
}

// At returns the cell at the given row and column position.
func (f *Frame) At(row, col int) interface{} {
	return f.data[col][row]
}

// Copy returns a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	data := make([][]interface{}, len(f.data))
	for i, col := range f.data {
		data[i] = append([]interface{}(nil), col...)
	}
	return newFrame(append([]string(nil), f.cols...), data, append([]interface{}(nil), f.index...))
}

// Transpose returns a new frame with rows and columns swapped: column
// labels become the index and index labels become columns. Index labels
// are rendered to strings to serve as column labels.
func (f *Frame) Transpose() *Frame {
	cols := make([]string, f.NumRows())
	for i, label := range f.index {
		cols[i] = labelString(label)
	}

	data := make([][]interface{}, f.NumRows())
	for r := 0; r < f.NumRows(); r++ {
		col := make([]interface{}, f.NumCols())
		for c := 0; c < f.NumCols(); c++ {
			col[c] = f.data[c][r]
		}
		data[r] = col
	}

	index := make([]interface{}, f.NumCols())
	for i, label := range f.cols {
		index[i] = label
	}
	return newFrame(cols, data, index)
}

// labelString renders an index label for use as a column label.
func labelString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

// dropColumnAt removes the column at the given position in place.
func (f *Frame) dropColumnAt(pos int) {
	f.cols = append(f.cols[:pos], f.cols[pos+1:]...)
	f.data = append(f.data[:pos], f.data[pos+1:]...)
	f.byCol = make(map[string]int, len(f.cols))
	for i, l := range f.cols {
		if _, seen := f.byCol[l]; !seen {
			f.byCol[l] = i
		}
	}
}

// truncateRows removes trailing rows in place so that at most n remain.
func (f *Frame) truncateRows(n int) {
	if n < 0 || f.NumRows() <= n {
		return
	}
	f.index = f.index[:n]
	for i := range f.data {
		f.data[i] = f.data[i][:n]
	}
}

// selectColumns returns a new frame holding the columns at the given
// positions, in that order, with the row index preserved.
func (f *Frame) selectColumns(positions []int) *Frame {
	cols := make([]string, len(positions))
	data := make([][]interface{}, len(positions))
	for i, pos := range positions {
		cols[i] = f.cols[pos]
		data[i] = append([]interface{}(nil), f.data[pos]...)
	}
	return newFrame(cols, data, append([]interface{}(nil), f.index...))
}

// selectRows returns a new frame holding the rows at the given positions,
// in that order, with the column set preserved.
func (f *Frame) selectRows(positions []int) *Frame {
	data := make([][]interface{}, len(f.data))
	for c := range f.data {
		col := make([]interface{}, len(positions))
		for i, pos := range positions {
			col[i] = f.data[c][pos]
		}
		data[c] = col
	}
	index := make([]interface{}, len(positions))
	for i, pos := range positions {
		index[i] = f.index[pos]
	}
	return newFrame(append([]string(nil), f.cols...), data, index)
}
