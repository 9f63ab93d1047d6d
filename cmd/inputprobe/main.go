// Package main is the entry point for inputprobe, a terminal tool that
// shows the per-frame input state reported by the inputframe aggregator.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dshills/inputframe/internal/app"
	"github.com/dshills/inputframe/internal/config"
	"github.com/dshills/inputframe/internal/input/event"
	"github.com/dshills/inputframe/internal/logging"
	"github.com/dshills/inputframe/internal/source/evdevsrc"
	"github.com/dshills/inputframe/internal/source/termsrc"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// flags holds command line overrides applied on top of the loaded config.
type flags struct {
	configPath string
	logLevel   string
	script     string
	watch      bool
	fps        int
	noMouse    bool
	devices    string
	grab       bool
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		return 1
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	application, err := app.New(app.Options{Config: cfg, Logger: log})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	var term *termsrc.Terminal
	if cfg.Terminal.Enabled {
		term, err = termsrc.New(termsrc.Config{
			ReleaseAfter: cfg.Terminal.ReleaseAfter.Std(),
			Mouse:        cfg.Terminal.Mouse,
			Focus:        cfg.Terminal.Focus,
		}, application.Logger())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
			return 1
		}
		if err := application.AddSource(term); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to add terminal: %v\n", err)
			return 1
		}
		application.OnUpdate(newDisplay(term.Screen(), application).update)
	} else {
		application.OnUpdate(newReporter(application.Logger()).update)
	}

	if len(cfg.Evdev.Devices) > 0 {
		dev, err := evdevsrc.New(evdevsrc.Config{
			Devices: cfg.Evdev.Devices,
			Grab:    cfg.Evdev.Grab,
		}, application.Logger())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create evdev source: %v\n", err)
			return 1
		}
		if err := application.AddSource(dev); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to add evdev source: %v\n", err)
			return 1
		}
	}

	// Signals become a close request so the last frame still reports it
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; !ok {
			return
		}
		if term != nil && term.RequestClose() == nil {
			return
		}
		application.Queue().Push(event.CloseRequested{})
	}()

	if err := application.Run(context.Background()); err != nil {
		// Check if it's a normal quit using errors.Is for wrapped errors
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// newLogger builds the logger. The terminal owns the tty while the probe
// runs, so output goes to logging.file or, failing that, is discarded
// unless the terminal source is disabled.
func newLogger(cfg *config.Config) (*logging.Logger, func(), error) {
	lc := logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Prefix: "inputprobe",
	}

	switch {
	case cfg.Logging.File != "":
		file, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		lc.Output = file
		return logging.New(lc), func() { _ = file.Close() }, nil
	case cfg.Terminal.Enabled:
		lc.Output = io.Discard
	default:
		lc.Output = os.Stderr
	}
	return logging.New(lc), func() {}, nil
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.script, "script", "", "Lua frame script")
	flag.StringVar(&f.script, "s", "", "Lua frame script (shorthand)")
	flag.BoolVar(&f.watch, "watch", false, "Reload the frame script when it changes")
	flag.IntVar(&f.fps, "fps", 0, "Frames per second")
	flag.BoolVar(&f.noMouse, "no-mouse", false, "Disable terminal mouse reporting")
	flag.StringVar(&f.devices, "evdev", "", "Comma-separated evdev devices to read (Linux)")
	flag.BoolVar(&f.grab, "grab", false, "Grab evdev devices exclusively")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "inputprobe - per-frame input state viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inputprobe [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %sLOOP_FRAME_RATE=30 and similar override config values\n", config.EnvPrefix)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  inputprobe                          Watch terminal input\n")
		fmt.Fprintf(os.Stderr, "  inputprobe -s frame.lua -watch      Run and hot-reload a frame script\n")
		fmt.Fprintf(os.Stderr, "  inputprobe -evdev /dev/input/event3 Also read a keyboard device\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("inputprobe %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if f.logLevel != "" && !logging.ValidLevel(f.logLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
		os.Exit(1)
	}

	return f
}

// apply copies the flags that were set onto cfg.
func (f flags) apply(cfg *config.Config) {
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.script != "" {
		cfg.Script.Path = f.script
	}
	if f.watch {
		cfg.Script.Watch = true
	}
	if f.fps > 0 {
		cfg.Loop.FrameRate = f.fps
	}
	if f.noMouse {
		cfg.Terminal.Mouse = false
	}
	if f.devices != "" {
		cfg.Evdev.Devices = nil
		for _, d := range strings.Split(f.devices, ",") {
			if d = strings.TrimSpace(d); d != "" {
				cfg.Evdev.Devices = append(cfg.Evdev.Devices, d)
			}
		}
	}
	if f.grab {
		cfg.Evdev.Grab = true
	}
}
