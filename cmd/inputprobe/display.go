package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputframe/internal/app"
	"github.com/dshills/inputframe/internal/input"
	"github.com/dshills/inputframe/internal/input/key"
	"github.com/dshills/inputframe/internal/input/mouse"
	"github.com/dshills/inputframe/internal/logging"
)

var buttons = []mouse.Button{
	mouse.ButtonLeft,
	mouse.ButtonRight,
	mouse.ButtonMiddle,
	mouse.ButtonBack,
	mouse.ButtonForward,
}

// display draws the current snapshot on the terminal screen.
type display struct {
	screen tcell.Screen
	app    *app.Application

	title  tcell.Style
	label  tcell.Style
	active tcell.Style

	lastText    string
	lastPressed []string
	fps         float64
}

func newDisplay(screen tcell.Screen, application *app.Application) *display {
	return &display{
		screen: screen,
		app:    application,
		title:  tcell.StyleDefault.Bold(true),
		label:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		active: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

func (d *display) update(_ context.Context, snap *input.Snapshot) error {
	if pressed := pressedKeys(snap); len(pressed) > 0 {
		d.lastPressed = pressed
	}
	if t := snap.Text(); t != "" {
		d.lastText = t
	}
	if dt := snap.DeltaTime(); dt > 0 {
		d.fps = 0.9*d.fps + 0.1*(float64(time.Second)/float64(dt))
	}

	d.screen.Clear()
	y := 0
	d.line(&y, d.title, fmt.Sprintf("inputprobe %s  session %s", version, d.app.Session()))
	d.line(&y, d.label, "Escape quits")
	y++

	d.row(&y, "frame", fmt.Sprintf("%d  (%.0f fps)", snap.Frame(), d.fps))
	d.row(&y, "held", strings.Join(heldKeys(snap), " "))
	d.row(&y, "pressed", strings.Join(d.lastPressed, " "))
	d.row(&y, "modifiers", snap.Modifiers().String())
	d.row(&y, "text", fmt.Sprintf("%q", d.lastText))
	d.row(&y, "buttons", strings.Join(heldButtons(snap), " "))

	if x, cy, ok := snap.Cursor(); ok {
		d.row(&y, "cursor", fmt.Sprintf("%.0f,%.0f", x, cy))
	} else {
		d.row(&y, "cursor", "-")
	}
	dx, dy := snap.CursorDiff()
	d.row(&y, "cursor diff", fmt.Sprintf("%+.0f,%+.0f", dx, dy))
	dx, dy = snap.MouseDiff()
	d.row(&y, "mouse diff", fmt.Sprintf("%+.0f,%+.0f", dx, dy))
	dx, dy = snap.ScrollDiff()
	d.row(&y, "scroll diff", fmt.Sprintf("%+.0f,%+.0f", dx, dy))

	if size, ok := snap.Resolution(); ok {
		d.row(&y, "resolution", fmt.Sprintf("%dx%d", size.Width, size.Height))
	}
	d.row(&y, "focused", fmt.Sprintf("%t", snap.Focused()))

	m := d.app.Metrics().Snapshot()
	y++
	d.line(&y, d.label, fmt.Sprintf("events %d  dropped %d  idle %.0f%%  script errors %d  reloads %d",
		m.EventCount, m.EventsDropped, m.IdleRate()*100, m.ScriptErrors, m.Reloads))

	d.screen.Show()

	if snap.KeyPressed(key.Escape) {
		return app.ErrQuit
	}
	return nil
}

func (d *display) row(y *int, name, value string) {
	d.put(0, *y, d.label, fmt.Sprintf("%-12s", name))
	d.put(13, *y, d.active, value)
	*y++
}

func (d *display) line(y *int, style tcell.Style, s string) {
	d.put(0, *y, style, s)
	*y++
}

func (d *display) put(x, y int, style tcell.Style, s string) {
	width, _ := d.screen.Size()
	for _, r := range s {
		if x >= width {
			return
		}
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// reporter logs pressed keys and buttons when no terminal is attached.
type reporter struct {
	log *logging.Logger
}

func newReporter(log *logging.Logger) *reporter {
	return &reporter{log: log.WithComponent("probe")}
}

func (r *reporter) update(_ context.Context, snap *input.Snapshot) error {
	for _, name := range pressedKeys(snap) {
		r.log.Info("frame %d: pressed %s", snap.Frame(), name)
	}
	for _, b := range buttons {
		if snap.MousePressed(b) {
			r.log.Info("frame %d: pressed %s", snap.Frame(), b)
		}
	}
	if dx, dy := snap.MouseDiff(); dx != 0 || dy != 0 {
		r.log.Debug("frame %d: mouse moved %+.0f,%+.0f", snap.Frame(), dx, dy)
	}
	return nil
}

func pressedKeys(snap *input.Snapshot) []string {
	var names []string
	for c := key.Code(1); int(c) < key.NumCodes; c++ {
		if snap.KeyPressed(c) {
			names = append(names, c.String())
		}
	}
	return names
}

func heldKeys(snap *input.Snapshot) []string {
	var names []string
	for c := key.Code(1); int(c) < key.NumCodes; c++ {
		if snap.KeyHeld(c) {
			names = append(names, c.String())
		}
	}
	return names
}

func heldButtons(snap *input.Snapshot) []string {
	var names []string
	for _, b := range buttons {
		if snap.MouseHeld(b) {
			names = append(names, b.String())
		}
	}
	return names
}
