package termhost

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/folio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHost(t *testing.T) *Host {
	t.Helper()
	c, err := folio.LoadContentFile("../testdata/portfolio.yaml")
	require.NoError(t, err)
	h := New(Options{Nav: c.Nav, DocumentHeight: 3500})
	require.NoError(t, h.Page().MountContent(c))
	h.HandleEvent(tcell.NewEventResize(128, 40))
	return h
}

func TestResizeSetsViewport(t *testing.T) {
	h := newHost(t)
	vp := h.Page().Viewport()
	assert.Equal(t, 1280.0, vp.Width)
	assert.Equal(t, 800.0, vp.Height)
	assert.True(t, h.Page().Section("hero").InView())
}

func TestWheelAndKeysScroll(t *testing.T) {
	h := newHost(t)

	h.HandleEvent(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))
	assert.Equal(t, DefaultScrollStep, h.ScrollY())
	assert.True(t, h.Page().Nav().State().Scrolled)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	assert.Equal(t, DefaultScrollStep+800, h.ScrollY())
	assert.True(t, h.Page().Section("projects").InView())

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	assert.Equal(t, 800.0, h.ScrollY())

	h.HandleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	assert.Equal(t, 0.0, h.ScrollY())
	assert.False(t, h.Page().Nav().State().Scrolled)

	h.HandleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	assert.Equal(t, 0.0, h.ScrollY(), "scroll clamps at the top")
}

func TestMouseMovesPointer(t *testing.T) {
	h := newHost(t)
	// cell (60, 25) is page (605, 510), inside the hero cta
	h.HandleEvent(tcell.NewEventMouse(60, 25, tcell.ButtonNone, tcell.ModNone))
	st := h.Page().Pointer().State()
	assert.True(t, st.Visible)
	assert.True(t, st.Hovering)
	assert.Equal(t, 605.0, st.X)
	assert.Equal(t, 510.0, st.Y)

	h.HandleEvent(tcell.NewEventFocus(false))
	assert.False(t, h.Page().Pointer().State().Visible)
	assert.False(t, h.Page().Pointer().State().Hovering)

	h.HandleEvent(tcell.NewEventFocus(true))
	assert.True(t, h.Page().Pointer().State().Visible)
}

func TestMenuKeys(t *testing.T) {
	h := newHost(t)
	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)))
	assert.True(t, h.Page().Nav().State().MobileMenuOpen)

	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)), "escape closes the menu first")
	assert.False(t, h.Page().Nav().State().MobileMenuOpen)

	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestNavClick(t *testing.T) {
	h := newHost(t)
	links := navLinks(h.Page())
	require.Len(t, links, 5)
	about := links[2]
	require.Equal(t, "about", about.id)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(about.start, 0, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(about.start, 0, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, 1800.0, h.ScrollY())
	assert.False(t, h.Page().Nav().State().MobileMenuOpen)
	assert.True(t, h.Page().Section("about").InView())

	menu := links[4]
	h.HandleEvent(tcell.NewEventMouse(menu.start, 0, tcell.Button1, tcell.ModNone))
	assert.True(t, h.Page().Nav().State().MobileMenuOpen)
	// holding the button does not toggle again
	h.HandleEvent(tcell.NewEventMouse(menu.start+1, 0, tcell.Button1, tcell.ModNone))
	assert.True(t, h.Page().Nav().State().MobileMenuOpen)
}

func screenText(t *testing.T, s tcell.SimulationScreen) []string {
	t.Helper()
	cells, w, hgt := s.GetContents()
	lines := make([]string, hgt)
	for y := 0; y < hgt; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			b.Write(cells[y*w+x].Bytes)
		}
		lines[y] = b.String()
	}
	return lines
}

func TestRender(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(128, 40)

	h := newHost(t)
	h.Tick(2 * time.Second)
	h.Render(screen)

	lines := screenText(t, screen)
	assert.True(t, strings.HasPrefix(lines[0], "folio hero projects about contact [≡]"), lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "hero       visible ███"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "projects   hidden "), lines[3])
	assert.Contains(t, lines[2], "blob=0")
}
