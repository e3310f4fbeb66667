package folio

// Snapshot is a serializable view of a page's computed animation state,
// as a renderer would read it on one frame.
type Snapshot struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	ScrollY     float64           `json:"scrollY" yaml:"scrollY"`
	NavScrolled bool              `json:"navScrolled" yaml:"navScrolled"`
	NavSolid    bool              `json:"navSolid" yaml:"navSolid"`
	MenuOpen    bool              `json:"menuOpen" yaml:"menuOpen"`
	Cursor      CursorSnapshot    `json:"cursor" yaml:"cursor"`
	Sections    []SectionSnapshot `json:"sections" yaml:"sections"`
}

// CursorSnapshot is the cursor overlay part of a Snapshot.
type CursorSnapshot struct {
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	Visible  bool     `json:"visible" yaml:"visible"`
	Hovering bool     `json:"hovering" yaml:"hovering"`
	Over     []string `json:"over,omitempty" yaml:"over,omitempty"`
}

// SectionSnapshot is one section's part of a Snapshot.
type SectionSnapshot struct {
	ID       string             `json:"id" yaml:"id"`
	InView   bool               `json:"inView" yaml:"inView"`
	Phase    string             `json:"phase" yaml:"phase"`
	Inert    bool               `json:"inert,omitempty" yaml:"inert,omitempty"`
	Children []ChildSnapshot    `json:"children,omitempty" yaml:"children,omitempty"`
	Parallax map[string]float64 `json:"parallax,omitempty" yaml:"parallax,omitempty"`
}

// ChildSnapshot is one sequenced child's interpolated style.
type ChildSnapshot struct {
	ID         string  `json:"id" yaml:"id"`
	Phase      string  `json:"phase" yaml:"phase"`
	Started    bool    `json:"started" yaml:"started"`
	Opacity    float64 `json:"opacity" yaml:"opacity"`
	TranslateY float64 `json:"translateY" yaml:"translateY"`
	Scale      float64 `json:"scale" yaml:"scale"`
}

// Snapshot captures the page's current state.
func (p *Page) Snapshot(label string) Snapshot {
	nav := p.nav.State()
	ptr := p.pointer.State()
	snap := Snapshot{
		Label:       label,
		ScrollY:     p.scroll.Y(),
		NavScrolled: nav.Scrolled,
		NavSolid:    p.nav.Solid(),
		MenuOpen:    nav.MobileMenuOpen,
		Cursor: CursorSnapshot{
			X: ptr.X, Y: ptr.Y,
			Visible:  ptr.Visible,
			Hovering: ptr.Hovering,
			Over:     p.pointer.Hovered(),
		},
	}
	for _, s := range p.sections {
		ss := SectionSnapshot{
			ID:     s.id,
			InView: s.InView(),
			Phase:  s.seq.Phase().String(),
			Inert:  s.inert,
		}
		for i := 0; i < s.seq.Len(); i++ {
			st := s.seq.ChildStyle(i)
			var id string
			if i < len(s.cfg.Children) {
				id = s.cfg.Children[i].ID
			}
			ss.Children = append(ss.Children, ChildSnapshot{
				ID:         id,
				Phase:      s.seq.ChildPhase(i).String(),
				Started:    s.seq.ChildStarted(i),
				Opacity:    st.Opacity,
				TranslateY: st.TranslateY,
				Scale:      st.Scale,
			})
		}
		if len(s.parallax) > 0 {
			ss.Parallax = s.ParallaxOffsets()
		}
		snap.Sections = append(snap.Sections, ss)
	}
	return snap
}
