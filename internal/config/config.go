package config

import (
	"errors"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/inputframe/internal/logging"
)

// Config is the complete inputframe configuration.
type Config struct {
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Loop     LoopConfig     `toml:"loop" yaml:"loop"`
	Input    InputConfig    `toml:"input" yaml:"input"`
	Terminal TerminalConfig `toml:"terminal" yaml:"terminal"`
	Evdev    EvdevConfig    `toml:"evdev" yaml:"evdev"`
	Script   ScriptConfig   `toml:"script" yaml:"script"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output instead of stderr when set.
	File string `toml:"file" yaml:"file"`
}

// LoopConfig configures the frame loop.
type LoopConfig struct {
	// FrameRate is the number of steps per second.
	FrameRate int `toml:"frameRate" yaml:"frameRate"`
	// QueueLimit bounds raw events buffered between steps. Zero means
	// unbounded.
	QueueLimit int `toml:"queueLimit" yaml:"queueLimit"`
}

// InputConfig configures the input helper.
type InputConfig struct {
	// RearmLifecycle lets close and destroy be reported again after
	// they have been reported once.
	RearmLifecycle bool `toml:"rearmLifecycle" yaml:"rearmLifecycle"`
}

// TerminalConfig configures the terminal source.
type TerminalConfig struct {
	Enabled      bool     `toml:"enabled" yaml:"enabled"`
	ReleaseAfter Duration `toml:"releaseAfter" yaml:"releaseAfter"`
	Mouse        bool     `toml:"mouse" yaml:"mouse"`
	Focus        bool     `toml:"focus" yaml:"focus"`
}

// EvdevConfig configures the Linux device source.
type EvdevConfig struct {
	Devices []string `toml:"devices" yaml:"devices"`
	Grab    bool     `toml:"grab" yaml:"grab"`
}

// ScriptConfig configures the Lua frame script.
type ScriptConfig struct {
	Path    string   `toml:"path" yaml:"path"`
	Watch   bool     `toml:"watch" yaml:"watch"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Loop: LoopConfig{
			FrameRate:  60,
			QueueLimit: 4096,
		},
		Terminal: TerminalConfig{
			Enabled:      true,
			ReleaseAfter: Duration(550 * time.Millisecond),
			Mouse:        true,
			Focus:        true,
		},
		Script: ScriptConfig{
			Timeout: Duration(50 * time.Millisecond),
		},
	}
}

// FrameInterval returns the time between steps.
func (c *Config) FrameInterval() time.Duration {
	if c.Loop.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Loop.FrameRate)
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, v any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
	}

	if !logging.ValidLevel(c.Logging.Level) {
		add("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}
	if c.Loop.FrameRate < 1 || c.Loop.FrameRate > 1000 {
		add("loop.frameRate", "must be between 1 and 1000", c.Loop.FrameRate)
	}
	if c.Loop.QueueLimit < 0 {
		add("loop.queueLimit", "must not be negative", c.Loop.QueueLimit)
	}
	if c.Terminal.ReleaseAfter <= 0 {
		add("terminal.releaseAfter", "must be positive", c.Terminal.ReleaseAfter)
	}
	if c.Script.Timeout < 0 {
		add("script.timeout", "must not be negative", c.Script.Timeout)
	}
	if c.Script.Watch && c.Script.Path == "" {
		add("script.watch", "requires script.path", c.Script.Watch)
	}
	if !c.Terminal.Enabled && len(c.Evdev.Devices) == 0 {
		add("evdev.devices", "at least one source is required when the terminal is disabled", c.Evdev.Devices)
	}
	return errors.Join(errs...)
}

// Duration is a time.Duration written as a string ("550ms") in config
// files.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}
