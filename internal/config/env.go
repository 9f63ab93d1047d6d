package config

import (
	"fmt"
	"strconv"
	"strings"
)

// envAliases maps variable names that do not follow the section_setting
// scheme.
var envAliases = map[string]string{
	EnvPrefix + "LOG_LEVEL": "logging.level",
	EnvPrefix + "LOG_FILE":  "logging.file",
	EnvPrefix + "SCRIPT":    "script.path",
}

// ApplyEnv overrides settings from INPUTFRAME_* entries of environ, given
// in os.Environ form. Variables naming unknown settings are ignored.
func (c *Config) ApplyEnv(environ []string) error {
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		path, ok := envAliases[name]
		if !ok {
			path = envToPath(name)
		}
		if err := c.Set(path, value); err != nil {
			return &ParseError{Path: name, Message: err.Error(), Err: err}
		}
	}
	return nil
}

// envToPath converts INPUTFRAME_LOOP_FRAME_RATE to loop.frameRate.
func envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, EnvPrefix), "_")
	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part != "" {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting
}

// Set assigns a setting from its string form. Unknown paths are ignored.
func (c *Config) Set(path, value string) error {
	var err error
	switch path {
	case "logging.level":
		c.Logging.Level = value
	case "logging.file":
		c.Logging.File = value
	case "loop.frameRate":
		c.Loop.FrameRate, err = strconv.Atoi(value)
	case "loop.queueLimit":
		c.Loop.QueueLimit, err = strconv.Atoi(value)
	case "input.rearmLifecycle":
		c.Input.RearmLifecycle, err = parseBool(value)
	case "terminal.enabled":
		c.Terminal.Enabled, err = parseBool(value)
	case "terminal.releaseAfter":
		err = c.Terminal.ReleaseAfter.UnmarshalText([]byte(value))
	case "terminal.mouse":
		c.Terminal.Mouse, err = parseBool(value)
	case "terminal.focus":
		c.Terminal.Focus, err = parseBool(value)
	case "evdev.devices":
		c.Evdev.Devices = splitList(value)
	case "evdev.grab":
		c.Evdev.Grab, err = parseBool(value)
	case "script.path":
		c.Script.Path = value
	case "script.watch":
		c.Script.Watch, err = parseBool(value)
	case "script.timeout":
		err = c.Script.Timeout.UnmarshalText([]byte(value))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// parseBool accepts the forms strconv.ParseBool does plus yes/no/on/off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
