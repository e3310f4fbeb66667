package termhost

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/folio"
)

var (
	styleNav      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleNavSolid = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleHidden   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleVisible  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleInert    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCursor   = tcell.StyleDefault.Reverse(true)
	styleHover    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorFuchsia)
)

// shades maps opacity to a glyph, from transparent to opaque.
var shades = []rune{' ', '░', '▒', '▓', '█'}

type navLink struct {
	id         string
	start, end int
	menu       bool
}

const menuLabel = "[≡]"

func navLinks(p *folio.Page) []navLink {
	var out []navLink
	col := len("folio ")
	for _, s := range p.Sections() {
		out = append(out, navLink{id: s.ID(), start: col, end: col + len(s.ID())})
		col += len(s.ID()) + 1
	}
	out = append(out, navLink{id: "menu", start: col, end: col + 3, menu: true})
	return out
}

func putStr(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func shade(opacity float64) rune {
	i := int(opacity*float64(len(shades)-1) + 0.5)
	i = max(0, min(i, len(shades)-1))
	return shades[i]
}

// Render draws the page state: the nav row, one row per section with its
// children's opacities, and the cursor overlay.
func (h *Host) Render(screen tcell.Screen) {
	screen.Clear()
	p := h.page

	navStyle := styleNav
	if p.Nav().Solid() {
		navStyle = styleNavSolid
	}
	for x := 0; x < h.cols; x++ {
		screen.SetContent(x, 0, ' ', nil, navStyle)
	}
	putStr(screen, 0, 0, "folio", navStyle)
	for _, l := range navLinks(p) {
		label := l.id
		if l.menu {
			label = menuLabel
		}
		putStr(screen, l.start, 0, label, navStyle)
	}

	row := 2
	if p.Nav().State().MobileMenuOpen {
		for _, s := range p.Sections() {
			putStr(screen, 2, row, "› "+s.ID(), navStyle)
			row++
		}
		row++
	}

	for _, s := range p.Sections() {
		style := styleHidden
		switch {
		case s.Inert():
			style = styleInert
		case s.Sequencer().Phase() == folio.PhaseVisible:
			style = styleVisible
		}
		x := putStr(screen, 0, row, fmt.Sprintf("%-10s %-7s ", s.ID(), s.Sequencer().Phase()), style)
		seq := s.Sequencer()
		for i := 0; i < seq.Len(); i++ {
			screen.SetContent(x, row, shade(seq.ChildStyle(i).Opacity), nil, style)
			x++
		}
		if offs := s.ParallaxOffsets(); len(offs) > 0 {
			var parts []string
			for id, o := range offs {
				parts = append(parts, fmt.Sprintf("%s=%.0f", id, o))
			}
			putStr(screen, x+1, row, strings.Join(parts, " "), style)
		}
		row++
	}

	ptr := p.Pointer().State()
	if ptr.Visible {
		col, r := h.CellAt(ptr.X, ptr.Y)
		style := styleCursor
		if ptr.Hovering {
			style = styleHover
		}
		mainc, combc, _, _ := screen.GetContent(col, r)
		screen.SetContent(col, r, mainc, combc, style)
	}

	putStr(screen, 0, max(h.rows-1, row+1), fmt.Sprintf("scroll %.0f  [j/k] scroll  [m] menu  [q] quit", h.scrollY), styleHidden)
	screen.Show()
}
