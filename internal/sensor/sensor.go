// Package sensor measures distance with an HC-SR04 class ultrasonic
// rangefinder.
package sensor

import (
	"math"
	"time"
)

// Speed of sound at sea level, in centimeters per microsecond.
const speedOfSoundCmPerUs = 0.034

// Reading is a single time-of-flight measurement.
type Reading struct {
	// TimeOfFlight is the round-trip echo duration. Zero if the echo
	// timed out.
	TimeOfFlight time.Duration

	// TimedOut reports that no echo was detected within the sensor's
	// window. The reading still converts to 0 cm; the flag exists so
	// callers can tell a missing echo from an object at the sensor face.
	TimedOut bool
}

// Centimeters converts the round-trip time of flight to a distance in
// whole centimeters. The round trip covers the distance twice, hence the
// division by two.
func (r Reading) Centimeters() int {
	us := float64(r.TimeOfFlight) / float64(time.Microsecond)
	return int(math.Round(us * speedOfSoundCmPerUs / 2))
}

// Rangefinder is the capability to take one distance measurement.
// Measure blocks for the duration of the trigger pulse and echo wait.
// An echo timeout is a normal Reading with TimedOut set; the error is
// reserved for hardware faults such as pin configuration failures.
type Rangefinder interface {
	Measure() (Reading, error)
}
