package script

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputframe/internal/input"
	"github.com/dshills/inputframe/internal/logging"
)

// DefaultTimeout bounds a single update call.
const DefaultTimeout = 50 * time.Millisecond

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger scripts write to.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithTimeout bounds each update call. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// Runner owns a Lua state running one frame script.
//
// gopher-lua states are single-threaded; the runner serializes access
// so Update and Reload may be called from different goroutines.
type Runner struct {
	name    string
	load    func() (string, error)
	log     *logging.Logger
	timeout time.Duration

	mu     sync.Mutex
	L      *lua.LState
	snap   *input.Snapshot
	exit   bool
	closed bool
}

// Load creates a runner for the Lua file at path and runs it once.
func Load(path string, opts ...Option) (*Runner, error) {
	return newRunner(path, func() (string, error) {
		b, err := os.ReadFile(path)
		return string(b), err
	}, opts)
}

// LoadString creates a runner for Lua source held in memory.
func LoadString(name, code string, opts ...Option) (*Runner, error) {
	return newRunner(name, func() (string, error) { return code, nil }, opts)
}

func newRunner(name string, load func() (string, error), opts []Option) (*Runner, error) {
	r := &Runner{
		name:    name,
		load:    load,
		log:     logging.Null(),
		timeout: DefaultTimeout,
		snap:    input.New().Snapshot(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithComponent("script").WithField("script", name)

	L, err := r.compile()
	if err != nil {
		return nil, err
	}
	r.L = L
	return r, nil
}

// compile builds a fresh state and runs the script's top level.
func (r *Runner) compile() (*lua.LState, error) {
	code, err := r.load()
	if err != nil {
		return nil, &Error{Script: r.name, Op: "load", Err: err}
	}

	L := newState(r.log)
	mod := &inputModule{snap: func() *input.Snapshot { return r.snap }}
	mod.register(L)
	registerLog(L, r.log)
	registerApp(L, func() { r.exit = true })

	err = protect(func() error { return L.DoString(code) })
	if err != nil {
		L.Close()
		return nil, &Error{Script: r.name, Op: "load", Err: err}
	}
	return L, nil
}

// Name returns the script's path or name.
func (r *Runner) Name() string {
	return r.name
}

// Update calls the script's update function against snap. Scripts without
// an update function are valid and do nothing.
func (r *Runner) Update(ctx context.Context, snap *input.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.snap = snap

	fn := r.L.GetGlobal("update")
	if fn.Type() != lua.LTFunction {
		return nil
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	err := protect(func() error {
		return r.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true},
			lua.LNumber(snap.DeltaTime().Seconds()))
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = ErrTimeout
		}
		return &Error{Script: r.name, Op: "update", Err: err}
	}
	return nil
}

// ExitRequested reports whether the script has called app.exit().
func (r *Runner) ExitRequested() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exit
}

// Reload re-reads the script into a fresh state. If loading fails the
// previous state keeps running and the error is returned.
func (r *Runner) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	L, err := r.compile()
	if err != nil {
		r.log.Warn("reload failed, keeping previous version: %v", err)
		return err
	}
	r.L.Close()
	r.L = L
	r.log.Info("reloaded")
	return nil
}

// Close releases the Lua state.
func (r *Runner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.L.Close()
	return nil
}
