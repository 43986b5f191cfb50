package datalog

import (
	"errors"
	"time"
)

// State of a Logger.
type State int

const (
	// Created: constructed, no file touched yet.
	Created State = iota
	// Active: a segment is open for appends.
	Active
	// Halted: the total recording duration elapsed. Terminal.
	Halted
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Active:
		return "active"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// ErrNotActive is returned by Append outside the Active state.
var ErrNotActive = errors.New("datalog: logger is not active")

// Logger owns the rotation policy for one recording session: which
// segment is current, when to roll to the next, and when the session is
// over. It holds no clock; every decision point takes the current instant
// as an argument, so the policy is deterministic under test.
//
// Exactly one segment is active at a time. Segment indices start at 1 and
// increment by one per rotation, never reused, never skipped.
type Logger struct {
	dir             string
	segmentDuration time.Duration
	totalDuration   time.Duration

	state        State
	segment      int
	startedAt    time.Time
	segmentStart time.Time
}

// NewLogger creates a logger writing segments under dir. Each segment
// spans segmentDuration; the session halts after totalDuration.
func NewLogger(dir string, segmentDuration, totalDuration time.Duration) *Logger {
	return &Logger{
		dir:             dir,
		segmentDuration: segmentDuration,
		totalDuration:   totalDuration,
	}
}

func (l *Logger) State() State { return l.state }

// SegmentIndex returns the index of the active segment, 0 before Start.
func (l *Logger) SegmentIndex() int { return l.segment }

// SegmentPath returns the path of segment n under the logger's directory.
func (l *Logger) SegmentPath(n int) string { return SegmentPath(l.dir, n) }

// Start transitions Created -> Active: the session clock begins and
// segment 1 is created with its header row. A header-write failure is
// returned for logging but does not stop the session; the segment is
// still considered active and later appends will recreate the file.
func (l *Logger) Start(now time.Time) error {
	if l.state != Created {
		return errors.New("datalog: logger already started")
	}
	l.state = Active
	l.segment = 1
	l.startedAt = now
	l.segmentStart = now
	return writeHeader(l.SegmentPath(l.segment))
}

// Advance applies the halt and rotation policy for one tick and reports
// whether the session is still active. The halt check runs first: a tick
// that reaches the total duration never opens a new segment. Rotation
// runs before the caller samples, so a sample taken on a rotation tick
// always lands in the new segment.
//
// The error, if any, is a header-write failure on rotation; the rotation
// itself still takes effect.
func (l *Logger) Advance(now time.Time) (bool, error) {
	if l.state != Active {
		return false, nil
	}
	if now.Sub(l.startedAt) >= l.totalDuration {
		l.state = Halted
		return false, nil
	}
	if now.Sub(l.segmentStart) >= l.segmentDuration {
		l.segment++
		l.segmentStart = now
		return true, writeHeader(l.SegmentPath(l.segment))
	}
	return true, nil
}

// Append writes one sample row to the active segment, opening and closing
// the file within the call. An I/O failure drops this sample only; the
// caller logs it and the session continues.
func (l *Logger) Append(s Sample) error {
	if l.state != Active {
		return ErrNotActive
	}
	return appendRow(l.SegmentPath(l.segment), s)
}
