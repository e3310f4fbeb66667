// Package termhost drives a folio.Page from a terminal with tcell.
//
// Terminal cells are mapped to page pixels with a fixed cell size, so
// content laid out for a browser viewport behaves the same in a terminal.
// Mouse motion moves the pointer, the wheel and arrow keys scroll, and
// terminal focus changes stand in for the pointer entering and leaving
// the viewport.
package termhost

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/folio"
)

// Default geometry: one cell is 10x20 page pixels, one wheel notch or arrow
// press scrolls three rows.
const (
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 20.0
	DefaultScrollStep = 60.0
)

// Options configures a Host.
type Options struct {
	Nav            folio.NavOptions
	CellWidth      float64
	CellHeight     float64
	ScrollStep     float64
	DocumentHeight float64
	Logger         *slog.Logger
}

// Host translates tcell events into page signals. It is the page's
// ScrollSource.
type Host struct {
	opts Options
	page *folio.Page
	log  *slog.Logger

	update  func(float64)
	scrollY float64
	cols    int
	rows    int
	pressed bool
}

// New creates a host and its page.
func New(opts Options) *Host {
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = DefaultCellHeight
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = DefaultScrollStep
	}
	h := &Host{opts: opts, log: opts.Logger}
	if h.log == nil {
		h.log = slog.New(slog.DiscardHandler)
	}
	h.page = folio.NewPage(folio.PageOptions{Nav: opts.Nav, Source: h})
	h.page.SetLogger(opts.Logger)
	return h
}

// Page returns the driven page.
func (h *Host) Page() *folio.Page {
	return h.page
}

// Attach implements folio.ScrollSource.
func (h *Host) Attach(update func(scrollY float64)) {
	h.update = update
}

// Detach implements folio.ScrollSource.
func (h *Host) Detach() {
	h.update = nil
}

// ScrollY returns the host's scroll offset.
func (h *Host) ScrollY() float64 {
	return h.scrollY
}

// ScrollBy moves the document by dy pixels, clamped to its bounds.
func (h *Host) ScrollBy(dy float64) {
	y := h.scrollY + dy
	if y < 0 {
		y = 0
	}
	if h.opts.DocumentHeight > 0 {
		maxY := max(h.opts.DocumentHeight-float64(h.rows)*h.opts.CellHeight, 0)
		y = min(y, maxY)
	}
	if y == h.scrollY {
		return
	}
	h.scrollY = y
	if h.update != nil {
		h.update(y)
	}
}

// Resize sets the terminal size in cells.
func (h *Host) Resize(cols, rows int) {
	h.cols, h.rows = cols, rows
	h.page.SetViewport(float64(cols)*h.opts.CellWidth, float64(rows)*h.opts.CellHeight)
	h.log.Debug("terminal resized", "cols", cols, "rows", rows)
}

// CellAt converts page viewport pixels back to a cell.
func (h *Host) CellAt(x, y float64) (col, row int) {
	return int(x / h.opts.CellWidth), int(y / h.opts.CellHeight)
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventFocus:
		if ev.Focused {
			h.page.OnPointerEnterViewport()
		} else {
			h.page.OnPointerLeaveViewport()
		}
	case *tcell.EventResize:
		h.Resize(ev.Size())
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if h.page.Nav().State().MobileMenuOpen {
			h.page.CloseMobileMenu()
			return true
		}
		return false
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.ScrollBy(-h.opts.ScrollStep)
	case tcell.KeyDown:
		h.ScrollBy(h.opts.ScrollStep)
	case tcell.KeyPgUp:
		h.ScrollBy(-float64(h.rows) * h.opts.CellHeight)
	case tcell.KeyPgDn:
		h.ScrollBy(float64(h.rows) * h.opts.CellHeight)
	case tcell.KeyHome:
		h.ScrollBy(-h.scrollY)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'm':
			h.page.ToggleMobileMenu()
		case 'j':
			h.ScrollBy(h.opts.ScrollStep)
		case 'k':
			h.ScrollBy(-h.opts.ScrollStep)
		}
	}
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	switch {
	case btn&tcell.WheelUp != 0:
		h.ScrollBy(-h.opts.ScrollStep)
		return
	case btn&tcell.WheelDown != 0:
		h.ScrollBy(h.opts.ScrollStep)
		return
	}
	col, row := ev.Position()
	x := (float64(col) + 0.5) * h.opts.CellWidth
	y := (float64(row) + 0.5) * h.opts.CellHeight
	h.page.OnPointerMove(x, y)

	down := btn&tcell.Button1 != 0
	if down && !h.pressed && row == 0 {
		h.clickNav(col)
	}
	h.pressed = down
}

// clickNav activates the nav link under col. The nav row lists one link per
// section, followed by the menu toggle.
func (h *Host) clickNav(col int) {
	for _, l := range navLinks(h.page) {
		if col >= l.start && col < l.end {
			if l.menu {
				h.page.ToggleMobileMenu()
				return
			}
			h.page.ActivateLink("#" + l.id)
			if s := h.page.Section(l.id); s != nil {
				h.ScrollBy(s.Config().Bounds.Y - h.scrollY)
			}
			return
		}
	}
}

// Tick advances the page's sequences by dt.
func (h *Host) Tick(dt time.Duration) {
	h.page.Update(dt)
}
