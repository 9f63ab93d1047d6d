package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("FrameInterval() = %v, want 1/60s", cfg.FrameInterval())
	}
	if cfg.Terminal.ReleaseAfter.Std() != 550*time.Millisecond {
		t.Errorf("Terminal.ReleaseAfter = %v, want 550ms", cfg.Terminal.ReleaseAfter)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := writeConfig(t, "inputframe.toml", `
[logging]
level = "debug"

[loop]
frameRate = 120

[input]
rearmLifecycle = true

[terminal]
releaseAfter = "300ms"
mouse = false

[evdev]
devices = ["/dev/input/event3", "/dev/input/event4"]

[script]
path = "frame.lua"
watch = true
`)

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Loop.FrameRate != 120 {
		t.Errorf("Loop.FrameRate = %d, want 120", cfg.Loop.FrameRate)
	}
	if !cfg.Input.RearmLifecycle {
		t.Error("Input.RearmLifecycle = false, want true")
	}
	if cfg.Terminal.ReleaseAfter.Std() != 300*time.Millisecond {
		t.Errorf("Terminal.ReleaseAfter = %v, want 300ms", cfg.Terminal.ReleaseAfter)
	}
	if cfg.Terminal.Mouse {
		t.Error("Terminal.Mouse = true, want false")
	}
	if !cfg.Terminal.Focus {
		t.Error("Terminal.Focus changed although absent from file")
	}
	want := []string{"/dev/input/event3", "/dev/input/event4"}
	if !reflect.DeepEqual(cfg.Evdev.Devices, want) {
		t.Errorf("Evdev.Devices = %v, want %v", cfg.Evdev.Devices, want)
	}
	if cfg.Script.Path != "frame.lua" || !cfg.Script.Watch {
		t.Errorf("Script = %+v", cfg.Script)
	}
	if cfg.Loop.QueueLimit != 4096 {
		t.Errorf("Loop.QueueLimit = %d, want default 4096", cfg.Loop.QueueLimit)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeConfig(t, "inputframe.yaml", `
logging:
  level: warn
loop:
  frameRate: 30
terminal:
  releaseAfter: 1s
script:
  timeout: 10ms
`)

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Loop.FrameRate != 30 {
		t.Errorf("Loop.FrameRate = %d, want 30", cfg.Loop.FrameRate)
	}
	if cfg.Terminal.ReleaseAfter.Std() != time.Second {
		t.Errorf("Terminal.ReleaseAfter = %v, want 1s", cfg.Terminal.ReleaseAfter)
	}
	if cfg.Script.Timeout.Std() != 10*time.Millisecond {
		t.Errorf("Script.Timeout = %v, want 10ms", cfg.Script.Timeout)
	}
}

func TestLoadFileEmptyYAML(t *testing.T) {
	path := writeConfig(t, "empty.yml", "")
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Errorf("LoadFile(empty) error = %v", err)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"unknown extension", "config.json", `{}`, ErrUnknownFormat},
		{"unknown toml field", "c.toml", "[loop]\nspeed = 3\n", nil},
		{"unknown yaml field", "c.yaml", "loop:\n  speed: 3\n", nil},
		{"bad duration", "c.toml", "[terminal]\nreleaseAfter = \"soon\"\n", nil},
		{"bad toml", "c.toml", "[loop\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			err := Default().LoadFile(path)
			if err == nil {
				t.Fatal("LoadFile() succeeded, want error")
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadFile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("LoadFile() error = %T, want *ParseError", err)
			}
			if pe.Path != path {
				t.Errorf("ParseError.Path = %q, want %q", pe.Path, path)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	err := Default().LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want ErrNotExist", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"frame rate zero", func(c *Config) { c.Loop.FrameRate = 0 }, "loop.frameRate"},
		{"frame rate high", func(c *Config) { c.Loop.FrameRate = 5000 }, "loop.frameRate"},
		{"queue limit", func(c *Config) { c.Loop.QueueLimit = -1 }, "loop.queueLimit"},
		{"release after", func(c *Config) { c.Terminal.ReleaseAfter = 0 }, "terminal.releaseAfter"},
		{"script timeout", func(c *Config) { c.Script.Timeout = -1 }, "script.timeout"},
		{"watch without path", func(c *Config) { c.Script.Watch = true }, "script.watch"},
		{"no source", func(c *Config) { c.Terminal.Enabled = false }, "evdev.devices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Path != tt.path {
				t.Errorf("Validate() error path = %v, want %s", err, tt.path)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	cfg.Loop.FrameRate = 0

	err := cfg.Validate()
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Validate() = %T, want joined errors", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Errorf("len(errors) = %d, want 2", n)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv([]string{
		"HOME=/root",
		"INPUTFRAME_LOG_LEVEL=debug",
		"INPUTFRAME_LOOP_FRAME_RATE=30",
		"INPUTFRAME_INPUT_REARM_LIFECYCLE=yes",
		"INPUTFRAME_TERMINAL_RELEASE_AFTER=250ms",
		"INPUTFRAME_TERMINAL_MOUSE=off",
		"INPUTFRAME_EVDEV_DEVICES=/dev/input/event1, /dev/input/event2,",
		"INPUTFRAME_SCRIPT=frame.lua",
		"INPUTFRAME_UNKNOWN_THING=1",
	})
	if err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Loop.FrameRate != 30 {
		t.Errorf("Loop.FrameRate = %d, want 30", cfg.Loop.FrameRate)
	}
	if !cfg.Input.RearmLifecycle {
		t.Error("Input.RearmLifecycle = false, want true")
	}
	if cfg.Terminal.ReleaseAfter.Std() != 250*time.Millisecond {
		t.Errorf("Terminal.ReleaseAfter = %v, want 250ms", cfg.Terminal.ReleaseAfter)
	}
	if cfg.Terminal.Mouse {
		t.Error("Terminal.Mouse = true, want false")
	}
	want := []string{"/dev/input/event1", "/dev/input/event2"}
	if !reflect.DeepEqual(cfg.Evdev.Devices, want) {
		t.Errorf("Evdev.Devices = %v, want %v", cfg.Evdev.Devices, want)
	}
	if cfg.Script.Path != "frame.lua" {
		t.Errorf("Script.Path = %q, want frame.lua", cfg.Script.Path)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	err := Default().ApplyEnv([]string{"INPUTFRAME_LOOP_FRAME_RATE=fast"})
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Path != "INPUTFRAME_LOOP_FRAME_RATE" {
		t.Errorf("ApplyEnv() error = %v, want ParseError for the variable", err)
	}
}

func TestSetDurationErrors(t *testing.T) {
	cfg := Default()

	errRelease := cfg.Set("terminal.releaseAfter", "soon")
	errTimeout := cfg.Set("script.timeout", "soon")
	if errRelease == nil || errTimeout == nil {
		t.Fatalf("Set() errors = %v, %v, want both to fail", errRelease, errTimeout)
	}

	release := strings.TrimPrefix(errRelease.Error(), "terminal.releaseAfter: ")
	timeout := strings.TrimPrefix(errTimeout.Error(), "script.timeout: ")
	if release != timeout {
		t.Errorf("duration errors differ: %q vs %q", release, timeout)
	}
	if cfg.Script.Timeout != Default().Script.Timeout {
		t.Errorf("Script.Timeout = %v after a bad value, want it unchanged", cfg.Script.Timeout)
	}

	if err := cfg.Set("script.timeout", "2s"); err != nil || cfg.Script.Timeout.Std() != 2*time.Second {
		t.Errorf("Set(script.timeout, 2s) = %v, Timeout = %v", err, cfg.Script.Timeout)
	}
}

func TestEnvToPath(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"INPUTFRAME_LOGGING_LEVEL", "logging.level"},
		{"INPUTFRAME_LOOP_FRAME_RATE", "loop.frameRate"},
		{"INPUTFRAME_INPUT_REARM_LIFECYCLE", "input.rearmLifecycle"},
		{"INPUTFRAME_DEBUG", "debug"},
	}
	for _, tt := range tests {
		if got := envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "inputframe.toml", "[loop]\nframeRate = 90\n")
	t.Setenv("INPUTFRAME_LOGGING_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Loop.FrameRate != 90 || cfg.Logging.Level != "error" {
		t.Errorf("Load() = %+v", cfg)
	}

	t.Setenv("INPUTFRAME_LOOP_FRAME_RATE", "0")
	if _, err := Load(path); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Load() with invalid env error = %v, want ErrValidationFailed", err)
	}
}
