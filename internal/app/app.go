package app

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/inputframe/internal/config"
	"github.com/dshills/inputframe/internal/input"
	"github.com/dshills/inputframe/internal/logging"
	"github.com/dshills/inputframe/internal/script"
	"github.com/dshills/inputframe/internal/source"
	"github.com/dshills/inputframe/internal/watcher"
)

// UpdateFunc is called once per frame with the new snapshot. Returning
// ErrQuit stops the loop normally; any other error stops it with that
// error.
type UpdateFunc func(ctx context.Context, snap *input.Snapshot) error

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Defaults are used when nil.
	Config *config.Config

	// Logger receives all log output. A logger built from Config is used
	// when nil.
	Logger *logging.Logger

	// Clock overrides the helper's clock, for tests.
	Clock func() time.Time
}

// Application owns the frame loop: it drains raw events from its sources
// into the input helper, steps once per frame and hands each snapshot to
// the frame script and the registered update functions.
type Application struct {
	mu sync.Mutex

	cfg     *config.Config
	log     *logging.Logger
	session uuid.UUID

	queue   *source.Queue
	helper  *input.Helper
	sources []source.Source
	updates []UpdateFunc

	script  *script.Runner
	watcher *watcher.Watcher
	metrics *Metrics

	running      atomic.Bool
	done         chan struct{}
	doneOnce     sync.Once
	shutdownOnce sync.Once
}

// New creates an application. If a frame script is configured it is
// loaded immediately, so script errors surface here.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	log := opts.Logger
	if log == nil {
		log = logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.Logging.Level),
			Prefix: "inputframe",
		})
	}

	session := uuid.New()
	log = log.WithField("session", session.String())

	helperOpts := []input.Option{
		input.WithLogger(log),
		input.WithRearmLifecycle(cfg.Input.RearmLifecycle),
	}
	if opts.Clock != nil {
		helperOpts = append(helperOpts, input.WithClock(opts.Clock))
	}

	app := &Application{
		cfg:     cfg,
		log:     log.WithComponent("app"),
		session: session,
		queue:   source.NewQueue(cfg.Loop.QueueLimit),
		helper:  input.New(helperOpts...),
		metrics: NewMetrics(),
		done:    make(chan struct{}),
	}

	if err := app.loadScript(log); err != nil {
		app.shutdown()
		return nil, err
	}
	return app, nil
}

func (app *Application) loadScript(log *logging.Logger) error {
	path := app.cfg.Script.Path
	if path == "" {
		return nil
	}

	runner, err := script.Load(path,
		script.WithLogger(log),
		script.WithTimeout(app.cfg.Script.Timeout.Std()))
	if err != nil {
		return NewOperationError("load script", path, err)
	}
	app.script = runner

	if !app.cfg.Script.Watch {
		return nil
	}
	w, err := watcher.New(watcher.WithLogger(log))
	if err != nil {
		return NewOperationError("watch", path, err)
	}
	app.watcher = w
	if err := w.Add(path); err != nil {
		return NewOperationError("watch", path, err)
	}
	app.log.Info("watching %s for changes", path)
	return nil
}

// AddSource registers an input source. Sources are started by Run and
// closed by Shutdown.
func (app *Application) AddSource(s source.Source) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.sources = append(app.sources, s)
	return nil
}

// OnUpdate registers fn to run every frame, after the frame script.
func (app *Application) OnUpdate(fn UpdateFunc) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.updates = append(app.updates, fn)
}

// Run starts every source and steps at the configured frame rate until
// a snapshot reports a close request or destruction, the script or an
// update function asks to exit, Shutdown is called or ctx is done.
// A normal exit returns ErrQuit; Shutdown returns nil.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer app.shutdown()

	if err := app.startSources(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(app.cfg.FrameInterval())
	defer ticker.Stop()

	var changes <-chan watcher.Event
	if app.watcher != nil {
		changes = app.watcher.Events()
	}

	app.log.Info("running at %d frames per second", app.cfg.Loop.FrameRate)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-app.done:
			return nil

		case ev, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			app.reloadScript(ev)

		case <-ticker.C:
			if _, err := app.Frame(ctx); err != nil {
				if errors.Is(err, ErrQuit) {
					app.log.Info("quit after frame %d", app.helper.Frame())
				}
				return err
			}
		}
	}
}

func (app *Application) startSources(ctx context.Context) error {
	app.mu.Lock()
	sources := append([]source.Source(nil), app.sources...)
	app.mu.Unlock()

	if len(sources) == 0 {
		return ErrNoSources
	}
	for _, s := range sources {
		if err := s.Start(ctx, app.queue); err != nil {
			return NewComponentError(s.Name(), "start", err)
		}
		app.log.Debug("started source %s", s.Name())
	}
	return nil
}

// Frame runs one step: it drains pending raw events into the helper,
// steps, runs the frame script and every update function, and returns the
// new snapshot. The error is ErrQuit when the loop should stop normally.
//
// Run calls Frame on every tick. Hosts that drive their own loop may call
// it directly instead of Run, from a single goroutine.
func (app *Application) Frame(ctx context.Context) (*input.Snapshot, error) {
	timer := StartTimer()

	n := app.queue.Drain(app.helper.Ingest)
	snap := app.helper.Step()
	app.metrics.SetDropped(app.queue.Dropped())

	quit := snap.CloseRequested() || snap.Destroyed()

	if app.script != nil {
		st := StartTimer()
		err := app.script.Update(ctx, snap)
		app.metrics.RecordScript(st.Elapsed(), err)
		if err != nil {
			app.log.Warn("%v", err)
		}
		if app.script.ExitRequested() {
			quit = true
		}
	}

	app.mu.Lock()
	updates := append([]UpdateFunc(nil), app.updates...)
	app.mu.Unlock()

	for _, fn := range updates {
		if err := fn(ctx, snap); err != nil {
			if errors.Is(err, ErrQuit) {
				quit = true
				continue
			}
			app.metrics.RecordFrame(timer.Elapsed(), n)
			return snap, err
		}
	}

	app.metrics.RecordFrame(timer.Elapsed(), n)
	if quit {
		return snap, ErrQuit
	}
	return snap, nil
}

func (app *Application) reloadScript(ev watcher.Event) {
	if app.script == nil {
		return
	}
	if ev.Op.Has(watcher.OpRemove) || ev.Op.Has(watcher.OpRename) {
		if _, err := os.Stat(ev.Path); err != nil {
			app.log.Warn("script %s removed, keeping loaded version", ev.Path)
			return
		}
	}
	if err := app.script.Reload(); err != nil {
		app.log.Error("reload %s: %v", ev.Path, err)
		return
	}
	app.metrics.RecordReload()
}

// Shutdown stops Run and releases every source, the script and the
// watcher. It is safe to call more than once and from any goroutine.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() { close(app.done) })
	if !app.running.Load() {
		app.shutdown()
	}
}

// shutdown releases resources in reverse order of creation.
func (app *Application) shutdown() {
	app.shutdownOnce.Do(func() {
		app.doneOnce.Do(func() { close(app.done) })

		app.mu.Lock()
		sources := app.sources
		app.mu.Unlock()

		for i := len(sources) - 1; i >= 0; i-- {
			if err := sources[i].Close(); err != nil {
				app.log.Warn("close source %s: %v", sources[i].Name(), err)
			}
		}
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.log.Warn("close watcher: %v", err)
			}
		}
		if app.script != nil {
			_ = app.script.Close()
		}

		s := app.metrics.Snapshot()
		app.log.Info("stopped after %d frames (%d events, %d dropped)",
			s.FrameCount, s.EventCount, s.EventsDropped)
	})
}

// IsRunning returns true while Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Session returns the unique id of this run, attached to every log line.
func (app *Application) Session() string {
	return app.session.String()
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Queue returns the raw event queue sources deliver into.
func (app *Application) Queue() *source.Queue {
	return app.queue
}

// Snapshot returns the most recent snapshot. Call it from an update
// function or after Run has returned.
func (app *Application) Snapshot() *input.Snapshot {
	return app.helper.Snapshot()
}

// Metrics returns the frame loop metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.log
}
