// Package datalog appends distance samples to sequentially-rotated CSV
// segment files.
package datalog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Header is the first row of every segment file. Column order is the
// persisted contract; readers depend on it.
const Header = "Timestamp (s),Distance (cm)"

const segmentPrefix = "datalog"

// Sample is one measurement: elapsed time since session start and the
// measured distance. Produced once, persisted, then discarded.
type Sample struct {
	Elapsed    time.Duration
	DistanceCM int
}

// SegmentPath returns the file path for segment n under dir. Segments are
// numbered from 1 with no gaps: datalog1.csv, datalog2.csv, ...
func SegmentPath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("%s%d.csv", segmentPrefix, n))
}

// writeHeader creates (or truncates) the segment file and writes the
// header row. The handle is closed before returning so no file stays open
// across ticks.
func writeHeader(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating segment file: %w", err)
	}
	_, werr := fmt.Fprintf(f, "%s\n", Header)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("writing segment header: %w", werr)
	}
	return nil
}

// appendRow opens the segment file in append mode, writes one data row,
// and closes it. Each call is a discrete, fully-flushed transaction:
// durability over performance, deliberate for removable media.
func appendRow(path string, s Sample) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening segment file: %w", err)
	}
	_, werr := fmt.Fprintf(f, "%.2f,%d\n", s.Elapsed.Seconds(), s.DistanceCM)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("appending sample: %w", werr)
	}
	return nil
}
