package session

import "time"

// Session represents a completed recording session and its artifacts.
type Session struct {
	Name      string
	Dir       string
	StartedAt time.Time
	EndedAt   time.Time
	Segments  int
	Samples   int
	Timeouts  int // echo timeouts recorded as 0 cm
	Dropped   int // samples lost to append failures
}
