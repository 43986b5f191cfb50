package sensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadingCentimeters(t *testing.T) {
	tests := []struct {
		name string
		tof  time.Duration
		want int
	}{
		{"datasheet example", 1000 * time.Microsecond, 17},
		{"zero duration", 0, 0},
		{"close object", 150 * time.Microsecond, 3},
		{"far object", 23000 * time.Microsecond, 391},
		{"rounds half up", 500 * time.Microsecond, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reading{TimeOfFlight: tt.tof}
			assert.Equal(t, tt.want, r.Centimeters())
		})
	}
}

func TestTimedOutReadingIsZero(t *testing.T) {
	r := Reading{TimedOut: true}
	assert.Equal(t, 0, r.Centimeters())
}
