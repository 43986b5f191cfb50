package app

import (
	"go.uber.org/zap"

	"github.com/hhmehra/rangelog/config"
	"github.com/hhmehra/rangelog/internal/domain/session/usecases"
	"github.com/hhmehra/rangelog/internal/sensor"
)

type App struct {
	Record *usecases.Record
}

// New wires the recording usecase. The rangefinder is constructed lazily
// by the record command (hardware or stub, depending on flags), so New
// never touches GPIO.
func New(cfg *config.Config, logger *zap.Logger) *App {
	record := &usecases.Record{
		LogsDir:         cfg.LogsDir,
		DirTemplate:     cfg.DirTemplate,
		SegmentDuration: cfg.SegmentDuration,
		TotalDuration:   cfg.TotalDuration,
		SampleInterval:  cfg.SampleInterval,
		Logger:          logger,
	}

	return &App{Record: record}
}

// NewHardwareRangefinder claims the configured GPIO pins.
func NewHardwareRangefinder(cfg *config.Config) (sensor.Rangefinder, error) {
	return sensor.NewHCSR04(cfg.TriggerPin, cfg.EchoPin)
}
