package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Recording constants. These are the compiled-in defaults; the config
// file and environment can override them per install.
const (
	DefaultTotalDuration   = 60 * time.Second
	DefaultSegmentDuration = 10 * time.Second
	DefaultSampleInterval  = 500 * time.Millisecond
)

// Default BCM pin numbers for the HC-SR04 on a Raspberry Pi.
const (
	DefaultTriggerPin = "23"
	DefaultEchoPin    = "24"
)

// DefaultDirTemplate is the default session directory name template.
// Available placeholders: {{.Year}}, {{.Month}}, {{.Day}}, {{.Hour}}, {{.Minute}}, {{.Second}}, {{.Name}}
const DefaultDirTemplate = "{{.Year}}-{{.Month}}-{{.Day}}_{{.Hour}}-{{.Minute}}-{{.Second}}{{if .Name}}_{{.Name}}{{end}}"

type Config struct {
	LogsDir     string
	TriggerPin  string
	EchoPin     string
	DirTemplate string // Go template for session directory names

	TotalDuration   time.Duration
	SegmentDuration time.Duration
	SampleInterval  time.Duration
}

type fileConfig struct {
	LogsDir           string `toml:"logs_dir"`
	TriggerPin        string `toml:"trigger_pin"`
	EchoPin           string `toml:"echo_pin"`
	DirTemplate       string `toml:"dir_template"`
	TotalDurationMS   int64  `toml:"total_duration_ms"`
	SegmentDurationMS int64  `toml:"segment_duration_ms"`
	SampleIntervalMS  int64  `toml:"sample_interval_ms"`
}

func Load() (*Config, error) {
	cfg := &Config{
		LogsDir:         defaultLogsDir(),
		TriggerPin:      DefaultTriggerPin,
		EchoPin:         DefaultEchoPin,
		DirTemplate:     DefaultDirTemplate,
		TotalDuration:   DefaultTotalDuration,
		SegmentDuration: DefaultSegmentDuration,
		SampleInterval:  DefaultSampleInterval,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
		if fc.LogsDir != "" {
			cfg.LogsDir = expandTilde(fc.LogsDir)
		}
		if fc.TriggerPin != "" {
			cfg.TriggerPin = fc.TriggerPin
		}
		if fc.EchoPin != "" {
			cfg.EchoPin = fc.EchoPin
		}
		if fc.DirTemplate != "" {
			cfg.DirTemplate = fc.DirTemplate
		}
		if fc.TotalDurationMS > 0 {
			cfg.TotalDuration = time.Duration(fc.TotalDurationMS) * time.Millisecond
		}
		if fc.SegmentDurationMS > 0 {
			cfg.SegmentDuration = time.Duration(fc.SegmentDurationMS) * time.Millisecond
		}
		if fc.SampleIntervalMS > 0 {
			cfg.SampleInterval = time.Duration(fc.SampleIntervalMS) * time.Millisecond
		}
	}

	applyEnvOverrides(cfg)

	// The log store must exist before any session starts; failure here
	// is fatal and no measurement is ever taken.
	if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RANGELOG_LOGS_DIR"); v != "" {
		cfg.LogsDir = expandTilde(v)
	}
	if v := os.Getenv("RANGELOG_TRIGGER_PIN"); v != "" {
		cfg.TriggerPin = v
	}
	if v := os.Getenv("RANGELOG_ECHO_PIN"); v != "" {
		cfg.EchoPin = v
	}
	if d, ok := envDurationMS("RANGELOG_TOTAL_DURATION_MS"); ok {
		cfg.TotalDuration = d
	}
	if d, ok := envDurationMS("RANGELOG_SEGMENT_DURATION_MS"); ok {
		cfg.SegmentDuration = d
	}
	if d, ok := envDurationMS("RANGELOG_SAMPLE_INTERVAL_MS"); ok {
		cfg.SampleInterval = d
	}
}

func envDurationMS(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil || ms <= 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "rangelog")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "rangelog")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultLogsDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "rangelog")
	}
	return filepath.Join(".", "rangelog")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
