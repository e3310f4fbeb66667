// Package ebitenhost drives a folio.Page from an Ebitengine game loop.
//
// The host turns polled mouse state into folio signals: wheel deltas become
// scroll positions, cursor motion becomes pointer moves, and the cursor
// leaving the window (or the window losing focus) becomes a viewport leave.
package ebitenhost

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/folio"
)

// DefaultWheelSpeed is the scroll distance of one wheel notch, in pixels.
const DefaultWheelSpeed = 40.0

// Options configures a Host.
type Options struct {
	Nav folio.NavOptions
	// DocumentHeight bounds scrolling to [0, DocumentHeight-viewport height].
	// Zero disables the lower bound.
	DocumentHeight float64
	WheelSpeed     float64
	Logger         *slog.Logger
}

// Link is a clickable navigation target in viewport coordinates.
type Link struct {
	Target string
	Shape  folio.HitShape
	// ScrollTo is the document offset the page jumps to on activation.
	ScrollTo float64
	// Menu marks the mobile menu button, which toggles instead of navigating.
	Menu bool
}

// Host owns a page and feeds it from Input once per tick. It is the page's
// ScrollSource.
type Host struct {
	input Input
	opts  Options
	page  *folio.Page
	log   *slog.Logger

	update  func(float64)
	scrollY float64

	viewW, viewH int
	cursorX      int
	cursorY      int
	inside       bool
	links        []Link
}

// New creates a host and its page.
func New(input Input, opts Options) *Host {
	if input == nil {
		input = EbitenInput{}
	}
	if opts.WheelSpeed <= 0 {
		opts.WheelSpeed = DefaultWheelSpeed
	}
	h := &Host{input: input, opts: opts, log: opts.Logger, cursorX: -1, cursorY: -1}
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
	h.log.Debug("scroll listener attached")
}

// Detach implements folio.ScrollSource.
func (h *Host) Detach() {
	h.update = nil
	h.log.Debug("scroll listener detached")
}

// SetLinks replaces the clickable links.
func (h *Host) SetLinks(links []Link) {
	h.links = links
}

// ScrollY returns the host's scroll offset.
func (h *Host) ScrollY() float64 {
	return h.scrollY
}

// ScrollTo moves the document, clamped to its bounds, and notifies the page
// if the offset changed.
func (h *Host) ScrollTo(y float64) {
	y = h.clamp(y)
	if y == h.scrollY {
		return
	}
	h.scrollY = y
	if h.update != nil {
		h.update(y)
	}
}

func (h *Host) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if h.opts.DocumentHeight > 0 {
		maxY := h.opts.DocumentHeight - float64(h.viewH)
		if maxY < 0 {
			maxY = 0
		}
		if y > maxY {
			return maxY
		}
	}
	return y
}

// Layout records the window size. Matches ebiten.Game's Layout signature so
// a game can delegate to it.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.viewW || outsideHeight != h.viewH {
		h.viewW, h.viewH = outsideWidth, outsideHeight
		h.page.SetViewport(float64(outsideWidth), float64(outsideHeight))
		h.ScrollTo(h.scrollY)
	}
	return outsideWidth, outsideHeight
}

// Update polls input and advances the page's sequences by dt.
func (h *Host) Update(dt time.Duration) {
	if _, dy := h.input.Wheel(); dy != 0 {
		// Wheel up (positive) scrolls towards the top.
		h.ScrollTo(h.scrollY - dy*h.opts.WheelSpeed)
	}

	x, y := h.input.CursorPosition()
	inside := h.input.IsFocused() &&
		x >= 0 && y >= 0 && x < h.viewW && y < h.viewH
	switch {
	case inside && !h.inside:
		h.page.OnPointerEnterViewport()
		h.page.OnPointerMove(float64(x), float64(y))
	case inside && (x != h.cursorX || y != h.cursorY):
		h.page.OnPointerMove(float64(x), float64(y))
	case !inside && h.inside:
		h.page.OnPointerLeaveViewport()
	}
	h.inside = inside
	h.cursorX, h.cursorY = x, y

	if inside && h.input.LeftJustPressed() {
		h.click(float64(x), float64(y))
	}

	h.page.Update(dt)
}

func (h *Host) click(x, y float64) {
	for _, l := range h.links {
		if l.Shape == nil || !l.Shape.Contains(x, y) {
			continue
		}
		if l.Menu {
			h.page.ToggleMobileMenu()
			return
		}
		h.page.ActivateLink(l.Target)
		h.ScrollTo(l.ScrollTo)
		return
	}
}

// TickDuration returns the frame delta at ebiten's current tick rate.
func TickDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}
