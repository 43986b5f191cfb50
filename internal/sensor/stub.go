package sensor

import "time"

// StubRangefinder is a deterministic Rangefinder for tests and simulated
// recording runs. It cycles through a fixed script of time-of-flight
// values; a zero value in the script produces a timed-out reading.
type StubRangefinder struct {
	script []time.Duration
	next   int
}

// NewStubRangefinder creates a stub that replays the given time-of-flight
// script in order, wrapping around when exhausted. With no script it
// reports a constant 1ms time of flight (17 cm).
func NewStubRangefinder(script ...time.Duration) *StubRangefinder {
	if len(script) == 0 {
		script = []time.Duration{time.Millisecond}
	}
	return &StubRangefinder{script: script}
}

// Measure returns the next scripted reading.
func (s *StubRangefinder) Measure() (Reading, error) {
	tof := s.script[s.next%len(s.script)]
	s.next++
	if tof == 0 {
		return Reading{TimedOut: true}, nil
	}
	return Reading{TimeOfFlight: tof}, nil
}
