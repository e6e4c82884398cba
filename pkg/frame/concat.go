package frame

import (
	"tablekit/pkg/check"
)

// Axis selects the dimension an operation works along.
type Axis int

const (
	// AxisRows stacks or scans along the row dimension.
	AxisRows Axis = 0
	// AxisColumns works along the column dimension.
	AxisColumns Axis = 1
)

// String returns the string representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisColumns:
		return "columns"
	default:
		return "unknown"
	}
}

// Join is the discipline for reconciling non-matching labels when
// combining two frames.
type Join string

const (
	// JoinIntersect keeps only labels common to both frames.
	JoinIntersect Join = "intersect"
	// JoinUnion keeps all labels, filling absent cells with nil.
	JoinUnion Join = "union"
)

// Concat concatenates two frames along the given axis.
//
// Along AxisRows the frames are stacked vertically: the join discipline
// reconciles column labels and the result index is a's index followed by
// b's. Along AxisColumns the frames sit side by side: rows are aligned by
// index label, with the join discipline reconciling index labels. Labels
// are compared by their string rendering, and the result carries the
// rendered labels as its index. Union joins fill cells absent from one
// side with nil.
func Concat(a, b *Frame, axis Axis, join Join) (*Frame, error) {
	const op = "frame.Concat"

	if err := check.InIntSet(op, int(axis), []int{int(AxisRows), int(AxisColumns)}); err != nil {
		return nil, err
	}
	if err := check.InStringSet(op, string(join), []string{string(JoinIntersect), string(JoinUnion)}); err != nil {
		return nil, err
	}

	if axis == AxisRows {
		return concatRows(a, b, join), nil
	}
	return concatColumns(a, b, join), nil
}

// concatRows stacks b under a, reconciling column labels.
func concatRows(a, b *Frame, join Join) *Frame {
	labels := joinLabels(a.cols, b.cols, join)

	data := make([][]interface{}, len(labels))
	for i, label := range labels {
		col := make([]interface{}, 0, a.NumRows()+b.NumRows())
		col = appendColumn(col, a, label, a.NumRows())
		col = appendColumn(col, b, label, b.NumRows())
		data[i] = col
	}

	index := make([]interface{}, 0, a.NumRows()+b.NumRows())
	index = append(index, a.index...)
	index = append(index, b.index...)
	return newFrame(labels, data, index)
}

// appendColumn appends the named column of f, or rows nil cells when f
// lacks the label (union join).
func appendColumn(dst []interface{}, f *Frame, label string, rows int) []interface{} {
	if pos, ok := f.byCol[label]; ok {
		return append(dst, f.data[pos]...)
	}
	for i := 0; i < rows; i++ {
		dst = append(dst, nil)
	}
	return dst
}

// concatColumns places b's columns after a's, aligning rows by index label.
func concatColumns(a, b *Frame, join Join) *Frame {
	aLabels := make([]string, a.NumRows())
	for i, v := range a.index {
		aLabels[i] = labelString(v)
	}
	bLabels := make([]string, b.NumRows())
	for i, v := range b.index {
		bLabels[i] = labelString(v)
	}
	labels := joinLabels(aLabels, bLabels, join)

	aPos := labelPositions(aLabels)
	bPos := labelPositions(bLabels)

	cols := make([]string, 0, a.NumCols()+b.NumCols())
	cols = append(cols, a.cols...)
	cols = append(cols, b.cols...)

	data := make([][]interface{}, 0, len(cols))
	for c := range a.data {
		data = append(data, alignColumn(a.data[c], aPos, labels))
	}
	for c := range b.data {
		data = append(data, alignColumn(b.data[c], bPos, labels))
	}

	index := make([]interface{}, len(labels))
	for i, l := range labels {
		index[i] = l
	}
	return newFrame(cols, data, index)
}

// alignColumn reorders a column to the joined index labels, filling rows
// the source frame does not have with nil.
func alignColumn(col []interface{}, srcPos map[string]int, labels []string) []interface{} {
	out := make([]interface{}, len(labels))
	for i, label := range labels {
		if pos, ok := srcPos[label]; ok {
			out[i] = col[pos]
		}
	}
	return out
}

// joinLabels reconciles two ordered label sets. Intersect keeps a's labels
// that also appear in b, in a's order; union keeps a's labels then b's
// extras in b's order.
func joinLabels(a, b []string, join Join) []string {
	inB := make(map[string]bool, len(b))
	for _, l := range b {
		inB[l] = true
	}

	var out []string
	if join == JoinIntersect {
		for _, l := range a {
			if inB[l] {
				out = append(out, l)
			}
		}
		return out
	}

	inA := make(map[string]bool, len(a))
	for _, l := range a {
		inA[l] = true
	}
	out = append(out, a...)
	for _, l := range b {
		if !inA[l] {
			out = append(out, l)
		}
	}
	return out
}

// labelPositions maps each label to its first position.
func labelPositions(labels []string) map[string]int {
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, seen := pos[l]; !seen {
			pos[l] = i
		}
	}
	return pos
}
