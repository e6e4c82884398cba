package exporter

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablekit/pkg/frame"
	"tablekit/pkg/framelist"
)

func TestWriteFrameRoundTrip(t *testing.T) {
	f, err := frame.New([]string{"a", "b"}, map[string][]interface{}{
		"a": {1.5, nil, 3.0},
		"b": {"x", "y", "z"},
	})
	require.NoError(t, err)
	require.NoError(t, f.SetIndex([]interface{}{0.0, 1.0, 2.0}))

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.csv")
	require.NoError(t, WriteFrame(path, f, Options{IndexName: "idx"}))

	// Reading the file back restores the frame, missing cells included.
	frames, _, err := framelist.Load(context.Background(), []string{"out.csv"}, filepath.Join(dir, "nested"))
	require.NoError(t, err)
	require.Len(t, frames, 1)

	got := frames[0]
	assert.Equal(t, f.Columns(), got.Columns())
	assert.Equal(t, f.Index(), got.Index())
	for _, label := range f.Columns() {
		want, _ := f.Column(label)
		have, _ := got.Column(label)
		assert.Equal(t, want, have, "column %q", label)
	}
}

func TestWriteFrameBOMPrefix(t *testing.T) {
	f, err := frame.New([]string{"v"}, map[string][]interface{}{"v": {1.0}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bom.csv")
	require.NoError(t, WriteFrame(path, f, Options{IndexName: "idx", BOMPrefix: true}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(content), 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, content[:3])
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{1.5, "1.5"},
		{math.NaN(), "NaN"},
		{"text", "text"},
		{42, "42"},
		{true, "true"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCell(tt.in))
	}
}
