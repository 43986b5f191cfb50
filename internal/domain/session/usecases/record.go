package usecases

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"go.uber.org/zap"

	"github.com/hhmehra/rangelog/internal/datalog"
	"github.com/hhmehra/rangelog/internal/domain/session"
	"github.com/hhmehra/rangelog/internal/sensor"
)

// Record runs one bounded recording session: it polls the rangefinder at
// a fixed cadence and appends each sample to rotated CSV segment files.
type Record struct {
	Rangefinder sensor.Rangefinder
	LogsDir     string
	DirTemplate string

	SegmentDuration time.Duration
	TotalDuration   time.Duration
	SampleInterval  time.Duration

	Logger *zap.Logger

	// Overridable in tests; Execute defaults them to the real clock.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// DirTemplateData holds the template variables available for session
// directory naming.
type DirTemplateData struct {
	Year   string
	Month  string
	Day    string
	Hour   string
	Minute string
	Second string
	Name   string
}

// RecordOptions holds options for one session.
type RecordOptions struct {
	Name string // optional session name suffix
}

// Execute runs the session to completion and returns its summary. It
// blocks the calling goroutine for the whole recording duration; every
// measurement and file write happens inline, one at a time.
//
// A failure to create the session directory is fatal: no measurement is
// ever taken. After that, per-tick failures (header write, sample append)
// are logged and skipped; the session always runs out its clock.
func (r *Record) Execute(opts *RecordOptions) (*session.Session, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	start := now()
	dirName, err := r.renderDirName(start, opts.Name)
	if err != nil {
		return nil, fmt.Errorf("rendering session directory name: %w", err)
	}
	dir := filepath.Join(r.LogsDir, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}

	logger := datalog.NewLogger(dir, r.SegmentDuration, r.TotalDuration)
	if err := logger.Start(start); err != nil {
		// Header failures never stop the session.
		log.Warn("segment header write failed", zap.Int("segment", 1), zap.Error(err))
	}
	log.Info("session started",
		zap.String("dir", dir),
		zap.Duration("total", r.TotalDuration),
		zap.Duration("segment", r.SegmentDuration),
		zap.Duration("interval", r.SampleInterval),
	)

	sess := &session.Session{Name: opts.Name, Dir: dir, StartedAt: start, Segments: 1}
	for {
		tick := now()
		active, err := logger.Advance(tick)
		if err != nil {
			log.Warn("segment header write failed",
				zap.Int("segment", logger.SegmentIndex()), zap.Error(err))
		}
		if !active {
			break
		}
		if logger.SegmentIndex() > sess.Segments {
			sess.Segments = logger.SegmentIndex()
			log.Info("rotated segment",
				zap.Int("segment", logger.SegmentIndex()),
				zap.Duration("elapsed", tick.Sub(start)),
			)
		}

		reading, err := r.Rangefinder.Measure()
		if err != nil {
			return nil, fmt.Errorf("measuring distance: %w", err)
		}
		if reading.TimedOut {
			sess.Timeouts++
			log.Debug("echo timeout", zap.Duration("elapsed", tick.Sub(start)))
		}

		sample := datalog.Sample{Elapsed: tick.Sub(start), DistanceCM: reading.Centimeters()}
		if err := logger.Append(sample); err != nil {
			// Drop this sample; the next tick tries again.
			sess.Dropped++
			log.Warn("sample append failed",
				zap.Int("segment", logger.SegmentIndex()), zap.Error(err))
		} else {
			sess.Samples++
		}

		sleep(r.SampleInterval)
	}

	sess.EndedAt = now()
	log.Info("session halted",
		zap.Int("segments", sess.Segments),
		zap.Int("samples", sess.Samples),
		zap.Int("timeouts", sess.Timeouts),
		zap.Int("dropped", sess.Dropped),
	)
	return sess, nil
}

func (r *Record) renderDirName(t time.Time, name string) (string, error) {
	tmpl, err := template.New("dir").Parse(r.DirTemplate)
	if err != nil {
		return "", fmt.Errorf("invalid directory template: %w", err)
	}

	data := DirTemplateData{
		Year:   t.Format("2006"),
		Month:  t.Format("01"),
		Day:    t.Format("02"),
		Hour:   t.Format("15"),
		Minute: t.Format("04"),
		Second: t.Format("05"),
		Name:   name,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing directory template: %w", err)
	}
	return buf.String(), nil
}
