package folio

// ScrolledThreshold is the scroll offset above which the navigation chrome
// switches to its scrolled look. The comparison is strict.
const ScrolledThreshold = 10.0

// NavChromeState is the navigation bar's derived state.
type NavChromeState struct {
	Scrolled       bool
	MobileMenuOpen bool
}

// NavOptions configures a NavState.
type NavOptions struct {
	// Transparent makes the bar see-through until the page is scrolled.
	// An opaque bar is always drawn solid.
	Transparent bool
}

// NavState derives the navigation chrome from scroll position and menu
// toggles. Scroll handling is level-triggered: a repeated position re-checks
// the flag but notifies nobody unless it flipped.
type NavState struct {
	emitter
	logged

	opts  NavOptions
	state Value[NavChromeState]
}

// NewNavState creates a nav state with the menu closed and scrolled false.
func NewNavState(opts NavOptions) *NavState {
	return &NavState{opts: opts}
}

// State returns the current chrome state.
func (n *NavState) State() NavChromeState {
	return n.state.Get()
}

// Solid reports whether the bar should be drawn with its opaque background.
func (n *NavState) Solid() bool {
	return n.state.Get().Scrolled || !n.opts.Transparent
}

// Subscribe observes chrome state changes.
func (n *NavState) Subscribe(fn func(NavChromeState)) Handle {
	return n.state.Subscribe(fn)
}

// OnScroll re-evaluates Scrolled as scrollY > ScrolledThreshold.
func (n *NavState) OnScroll(scrollY float64) {
	s := n.state.Get()
	s.Scrolled = scrollY > ScrolledThreshold
	if n.state.set(s) {
		n.logger().Debug("nav scrolled changed", "scrolled", s.Scrolled, "scrollY", scrollY)
		n.emit(Event{Type: EventScrolledChange, Value: boolValue(s.Scrolled)})
	}
}

// ToggleMobileMenu flips the mobile menu between open and closed.
func (n *NavState) ToggleMobileMenu() {
	s := n.state.Get()
	s.MobileMenuOpen = !s.MobileMenuOpen
	n.setMenu(s)
}

// CloseMobileMenu closes the mobile menu whatever its current state.
func (n *NavState) CloseMobileMenu() {
	s := n.state.Get()
	s.MobileMenuOpen = false
	n.setMenu(s)
}

func (n *NavState) setMenu(s NavChromeState) {
	if n.state.set(s) {
		n.logger().Debug("mobile menu changed", "open", s.MobileMenuOpen)
		n.emit(Event{Type: EventMenuChange, Value: boolValue(s.MobileMenuOpen)})
	}
}

// Attach subscribes the nav state to shared scroll metrics.
func (n *NavState) Attach(m *ScrollMetrics) Handle {
	n.OnScroll(m.Y())
	return m.Subscribe(n.OnScroll)
}
