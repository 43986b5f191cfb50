package datalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentPathNaming(t *testing.T) {
	assert.Equal(t, filepath.Join("logs", "datalog1.csv"), SegmentPath("logs", 1))
	assert.Equal(t, filepath.Join("logs", "datalog12.csv"), SegmentPath("logs", 12))
}

func TestWriteHeaderTruncates(t *testing.T) {
	dir := t.TempDir()
	path := SegmentPath(dir, 1)

	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0o644))
	require.NoError(t, writeHeader(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}

func TestAppendRowCreatesFileIfMissing(t *testing.T) {
	// When the header write was skipped after a failure, a later append
	// still lands; the file just has no header row.
	dir := t.TempDir()
	path := SegmentPath(dir, 3)

	require.NoError(t, appendRow(path, Sample{Elapsed: 1500 * time.Millisecond, DistanceCM: 88}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.50,88\n", string(data))
}

func TestAppendRowFormat(t *testing.T) {
	dir := t.TempDir()
	path := SegmentPath(dir, 1)
	require.NoError(t, writeHeader(path))

	tests := []struct {
		sample Sample
		want   string
	}{
		{Sample{Elapsed: 0, DistanceCM: 0}, "0.00,0"},
		{Sample{Elapsed: 500 * time.Millisecond, DistanceCM: 17}, "0.50,17"},
		{Sample{Elapsed: 59*time.Second + 500*time.Millisecond, DistanceCM: 391}, "59.50,391"},
	}
	for _, tt := range tests {
		require.NoError(t, appendRow(path, tt.sample))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := Header + "\n"
	for _, tt := range tests {
		want += tt.want + "\n"
	}
	assert.Equal(t, want, string(data))
}

func TestWriteHeaderMissingDir(t *testing.T) {
	err := writeHeader(SegmentPath(filepath.Join(t.TempDir(), "gone"), 1))
	assert.Error(t, err)
}
