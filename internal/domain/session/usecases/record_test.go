package usecases

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhmehra/rangelog/internal/datalog"
	"github.com/hhmehra/rangelog/internal/sensor"
)

// fakeClock drives the session loop deterministically: Sleep advances
// virtual time instead of blocking.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func newTestRecord(t *testing.T, clock *fakeClock) *Record {
	t.Helper()
	return &Record{
		Rangefinder:     sensor.NewStubRangefinder(1000 * time.Microsecond),
		LogsDir:         t.TempDir(),
		DirTemplate:     "{{.Year}}-{{.Month}}-{{.Day}}_{{.Hour}}-{{.Minute}}-{{.Second}}{{if .Name}}_{{.Name}}{{end}}",
		SegmentDuration: 10 * time.Second,
		TotalDuration:   60 * time.Second,
		SampleInterval:  500 * time.Millisecond,
		Now:             clock.Now,
		Sleep:           clock.Sleep,
	}
}

func TestRecordFullSession(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	rec := newTestRecord(t, clock)

	sess, err := rec.Execute(&RecordOptions{Name: "bench"})
	require.NoError(t, err)

	assert.Equal(t, 6, sess.Segments)
	// 120 ticks of 500ms fill the 60s window.
	assert.Equal(t, 120, sess.Samples)
	assert.Zero(t, sess.Timeouts)
	assert.Zero(t, sess.Dropped)
	assert.Equal(t, "2026-03-01_12-00-00_bench", filepath.Base(sess.Dir))

	// Six segment files, each headed and carrying 20 rows of 17 cm.
	for n := 1; n <= 6; n++ {
		data, err := os.ReadFile(datalog.SegmentPath(sess.Dir, n))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Equal(t, datalog.Header, lines[0])
		assert.Len(t, lines, 21, "segment %d", n)
		assert.True(t, strings.HasSuffix(lines[1], ",17"))
	}
	_, err = os.Stat(datalog.SegmentPath(sess.Dir, 7))
	assert.True(t, os.IsNotExist(err))
}

func TestRecordCountsTimeouts(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	rec := newTestRecord(t, clock)
	rec.TotalDuration = 2 * time.Second
	// Every other reading times out.
	rec.Rangefinder = sensor.NewStubRangefinder(1000*time.Microsecond, 0)

	sess, err := rec.Execute(&RecordOptions{})
	require.NoError(t, err)

	assert.Equal(t, 4, sess.Samples)
	assert.Equal(t, 2, sess.Timeouts)

	// Timed-out readings are persisted as plain zero rows.
	data, err := os.ReadFile(datalog.SegmentPath(sess.Dir, 1))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, []string{datalog.Header, "0.00,17", "0.50,0", "1.00,17", "1.50,0"}, lines)
}

func TestRecordFatalWhenStorageUnavailable(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	rec := newTestRecord(t, clock)

	// Logs dir path occupied by a regular file: MkdirAll fails before
	// any measurement is taken.
	occupied := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, os.WriteFile(occupied, nil, 0o644))
	rec.LogsDir = occupied

	_, err := rec.Execute(&RecordOptions{})
	assert.Error(t, err)
}

func TestRecordBadDirTemplate(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	rec := newTestRecord(t, clock)
	rec.DirTemplate = "{{.Nope"

	_, err := rec.Execute(&RecordOptions{})
	assert.Error(t, err)
}
