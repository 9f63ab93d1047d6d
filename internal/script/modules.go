package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputframe/internal/input"
	"github.com/dshills/inputframe/internal/input/key"
	"github.com/dshills/inputframe/internal/input/mouse"
	"github.com/dshills/inputframe/internal/logging"
)

// inputModule exposes the current snapshot to Lua.
type inputModule struct {
	snap func() *input.Snapshot
}

func (m *inputModule) register(L *lua.LState) {
	mod := L.NewTable()

	L.SetField(mod, "key_pressed", L.NewFunction(m.codeQuery((*input.Snapshot).KeyPressed)))
	L.SetField(mod, "key_pressed_os", L.NewFunction(m.codeQuery((*input.Snapshot).KeyPressedOS)))
	L.SetField(mod, "key_held", L.NewFunction(m.codeQuery((*input.Snapshot).KeyHeld)))
	L.SetField(mod, "key_released", L.NewFunction(m.codeQuery((*input.Snapshot).KeyReleased)))

	L.SetField(mod, "logical_pressed", L.NewFunction(m.logicalQuery((*input.Snapshot).LogicalPressed)))
	L.SetField(mod, "logical_pressed_os", L.NewFunction(m.logicalQuery((*input.Snapshot).LogicalPressedOS)))
	L.SetField(mod, "logical_held", L.NewFunction(m.logicalQuery((*input.Snapshot).LogicalHeld)))
	L.SetField(mod, "logical_released", L.NewFunction(m.logicalQuery((*input.Snapshot).LogicalReleased)))

	L.SetField(mod, "mouse_pressed", L.NewFunction(m.buttonQuery((*input.Snapshot).MousePressed)))
	L.SetField(mod, "mouse_held", L.NewFunction(m.buttonQuery((*input.Snapshot).MouseHeld)))
	L.SetField(mod, "mouse_released", L.NewFunction(m.buttonQuery((*input.Snapshot).MouseReleased)))

	L.SetField(mod, "held_shift", L.NewFunction(m.flag((*input.Snapshot).HeldShift)))
	L.SetField(mod, "held_control", L.NewFunction(m.flag((*input.Snapshot).HeldControl)))
	L.SetField(mod, "held_alt", L.NewFunction(m.flag((*input.Snapshot).HeldAlt)))
	L.SetField(mod, "held_super", L.NewFunction(m.flag((*input.Snapshot).HeldSuper)))
	L.SetField(mod, "close_requested", L.NewFunction(m.flag((*input.Snapshot).CloseRequested)))
	L.SetField(mod, "destroyed", L.NewFunction(m.flag((*input.Snapshot).Destroyed)))
	L.SetField(mod, "focus_changed", L.NewFunction(m.flag((*input.Snapshot).FocusChanged)))
	L.SetField(mod, "focused", L.NewFunction(m.flag((*input.Snapshot).Focused)))

	L.SetField(mod, "cursor", L.NewFunction(m.cursor))
	L.SetField(mod, "cursor_diff", L.NewFunction(m.pair((*input.Snapshot).CursorDiff)))
	L.SetField(mod, "mouse_diff", L.NewFunction(m.pair((*input.Snapshot).MouseDiff)))
	L.SetField(mod, "scroll_diff", L.NewFunction(m.pair((*input.Snapshot).ScrollDiff)))

	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "dropped_files", L.NewFunction(m.droppedFiles))
	L.SetField(mod, "window_resized", L.NewFunction(m.windowResized))
	L.SetField(mod, "resolution", L.NewFunction(m.resolution))
	L.SetField(mod, "scale_factor", L.NewFunction(m.scaleFactor))
	L.SetField(mod, "delta_time", L.NewFunction(m.deltaTime))
	L.SetField(mod, "frame", L.NewFunction(m.frame))

	L.SetGlobal("input", mod)
}

// key_pressed(name) -> bool and friends.
func (m *inputModule) codeQuery(q func(*input.Snapshot, key.Code) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		c := key.CodeFromName(name)
		if c == key.CodeUnidentified {
			L.ArgError(1, "unknown key code "+name)
			return 0
		}
		L.Push(lua.LBool(q(m.snap(), c)))
		return 1
	}
}

// logical_pressed(value) -> bool and friends.
func (m *inputModule) logicalQuery(q func(*input.Snapshot, key.Logical) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		l, err := key.ParseLogical(L.CheckString(1))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		L.Push(lua.LBool(q(m.snap(), l)))
		return 1
	}
}

// mouse_pressed(button) -> bool and friends.
func (m *inputModule) buttonQuery(q func(*input.Snapshot, mouse.Button) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		b := mouse.ButtonFromName(name)
		if b == mouse.ButtonNone {
			L.ArgError(1, "unknown mouse button "+name)
			return 0
		}
		L.Push(lua.LBool(q(m.snap(), b)))
		return 1
	}
}

func (m *inputModule) flag(q func(*input.Snapshot) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LBool(q(m.snap())))
		return 1
	}
}

func (m *inputModule) pair(q func(*input.Snapshot) (float64, float64)) lua.LGFunction {
	return func(L *lua.LState) int {
		dx, dy := q(m.snap())
		L.Push(lua.LNumber(dx))
		L.Push(lua.LNumber(dy))
		return 2
	}
}

// cursor() -> x, y | nil
func (m *inputModule) cursor(L *lua.LState) int {
	x, y, ok := m.snap().Cursor()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(x))
	L.Push(lua.LNumber(y))
	return 2
}

func (m *inputModule) text(L *lua.LState) int {
	L.Push(lua.LString(m.snap().Text()))
	return 1
}

// dropped_files() -> {path, ...}
func (m *inputModule) droppedFiles(L *lua.LState) int {
	tbl := L.NewTable()
	for _, p := range m.snap().DroppedFiles() {
		tbl.Append(lua.LString(p))
	}
	L.Push(tbl)
	return 1
}

// window_resized() -> width, height | nil
func (m *inputModule) windowResized(L *lua.LState) int {
	size, ok := m.snap().WindowResized()
	return pushSize(L, size, ok)
}

// resolution() -> width, height | nil
func (m *inputModule) resolution(L *lua.LState) int {
	size, ok := m.snap().Resolution()
	return pushSize(L, size, ok)
}

func pushSize(L *lua.LState, size input.Size, ok bool) int {
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(size.Width))
	L.Push(lua.LNumber(size.Height))
	return 2
}

func (m *inputModule) scaleFactor(L *lua.LState) int {
	L.Push(lua.LNumber(m.snap().ScaleFactor()))
	return 1
}

// delta_time() -> seconds
func (m *inputModule) deltaTime(L *lua.LState) int {
	L.Push(lua.LNumber(m.snap().DeltaTime().Seconds()))
	return 1
}

func (m *inputModule) frame(L *lua.LState) int {
	L.Push(lua.LNumber(m.snap().Frame()))
	return 1
}

// registerLog installs the log module.
func registerLog(L *lua.LState, log *logging.Logger) {
	mod := L.NewTable()
	levels := map[string]func(string, ...any){
		"debug": log.Debug,
		"info":  log.Info,
		"warn":  log.Warn,
		"error": log.Error,
	}
	for name, fn := range levels {
		fn := fn
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			fn("%s", L.CheckString(1))
			return 0
		}))
	}
	L.SetGlobal("log", mod)
}

// registerApp installs the app module. exit() calls onExit.
func registerApp(L *lua.LState, onExit func()) {
	mod := L.NewTable()
	L.SetField(mod, "exit", L.NewFunction(func(L *lua.LState) int {
		onExit()
		return 0
	}))
	L.SetGlobal("app", mod)
}
