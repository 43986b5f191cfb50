package sensor

import (
	"fmt"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

// maxEchoWait bounds the wait for the reflected pulse. The HC-SR04 holds
// echo high for at most ~38ms when nothing reflects.
const maxEchoWait = 38 * time.Millisecond

// HCSR04 drives an HC-SR04 ultrasonic ranging module over two GPIO lines.
//
// Datasheet: https://cdn.sparkfun.com/datasheets/Sensors/Proximity/HCSR04.pdf
type HCSR04 struct {
	trigger gpio.PinIO
	echo    gpio.PinIO
}

// NewHCSR04 initializes the GPIO host and claims the trigger and echo
// pins. Pin names are in the form gpioreg.ByName expects; on a Raspberry
// Pi that is the BCM number as a string.
func NewHCSR04(triggerPin, echoPin string) (*HCSR04, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initializing GPIO host: %w", err)
	}

	s := &HCSR04{
		trigger: gpioreg.ByName(triggerPin),
		echo:    gpioreg.ByName(echoPin),
	}
	if s.trigger == nil {
		return nil, fmt.Errorf("no GPIO pin named %q for trigger", triggerPin)
	}
	if s.echo == nil {
		return nil, fmt.Errorf("no GPIO pin named %q for echo", echoPin)
	}

	if err := s.trigger.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("configuring trigger pin: %w", err)
	}
	if err := s.echo.In(gpio.PullDown, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("configuring echo pin: %w", err)
	}

	return s, nil
}

// Measure emits one trigger pulse and times the reflected echo. It blocks
// the calling goroutine for the settle, pulse, and echo waits, up to
// roughly 2×maxEchoWait in the worst case.
func (s *HCSR04) Measure() (Reading, error) {
	if err := s.echo.In(gpio.PullDown, gpio.RisingEdge); err != nil {
		return Reading{}, fmt.Errorf("arming echo pin: %w", err)
	}

	// Settle low, then a 10µs burst tells the module to measure.
	if err := s.trigger.Out(gpio.Low); err != nil {
		return Reading{}, fmt.Errorf("clearing trigger pin: %w", err)
	}
	time.Sleep(2 * time.Microsecond)
	if err := s.trigger.Out(gpio.High); err != nil {
		return Reading{}, fmt.Errorf("raising trigger pin: %w", err)
	}
	time.Sleep(10 * time.Microsecond)
	if err := s.trigger.Out(gpio.Low); err != nil {
		return Reading{}, fmt.Errorf("lowering trigger pin: %w", err)
	}

	// Echo going high marks the start of the time of flight.
	if ok := s.echo.WaitForEdge(maxEchoWait); !ok {
		return Reading{TimedOut: true}, nil
	}
	start := time.Now()

	if err := s.echo.In(gpio.PullDown, gpio.FallingEdge); err != nil {
		return Reading{}, fmt.Errorf("rearming echo pin: %w", err)
	}

	// Echo going low marks the end.
	if ok := s.echo.WaitForEdge(maxEchoWait); !ok {
		return Reading{TimedOut: true}, nil
	}

	return Reading{TimeOfFlight: time.Since(start)}, nil
}

// CheckGPIO verifies the GPIO host can be initialized and the named pins
// exist, without driving them.
func CheckGPIO(triggerPin, echoPin string) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("GPIO host: %w", err)
	}
	if gpioreg.ByName(triggerPin) == nil {
		return fmt.Errorf("no GPIO pin named %q", triggerPin)
	}
	if gpioreg.ByName(echoPin) == nil {
		return fmt.Errorf("no GPIO pin named %q", echoPin)
	}
	return nil
}
