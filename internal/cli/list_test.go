package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSession(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) {
		t.Helper()
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	write("datalog1.csv", "Timestamp (s),Distance (cm)\n0.00,17\n0.50,18\n")
	write("datalog2.csv", "Timestamp (s),Distance (cm)\n10.00,20\n")
	write("datalog3.csv", "Timestamp (s),Distance (cm)\n")
	write("notes.txt", "not a segment\n")

	segments, samples := countSession(dir)
	assert.Equal(t, 3, segments)
	assert.Equal(t, 3, samples)
}

func TestCountSessionMissingDir(t *testing.T) {
	segments, samples := countSession(filepath.Join(t.TempDir(), "absent"))
	assert.Zero(t, segments)
	assert.Zero(t, samples)
}
