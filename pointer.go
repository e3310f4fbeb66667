package folio

// PointerState is the cursor overlay's state. X and Y are viewport
// coordinates of the last move.
type PointerState struct {
	X, Y     float64
	Visible  bool
	Hovering bool
}

// RegionHandle identifies a registered interactive region.
type RegionHandle struct {
	id uint32
	t  *PointerTracker
}

// ID returns the registration id (0 for the zero handle).
func (h RegionHandle) ID() uint32 {
	return h.id
}

// Dispose unregisters the region. Safe to call more than once.
func (h RegionHandle) Dispose() {
	if h.t != nil {
		h.t.UnregisterInteractiveRegion(h)
	}
}

type region struct {
	id        uint32
	elementID string
	shape     HitShape
	entered   bool
	removed   bool
}

// PointerTracker maps pointer signals to a cursor overlay state.
//
// Hovering is true while at least one registered region is entered, so
// overlapping regions do not clear each other on leave. Unregistering an
// entered region counts as leaving it.
type PointerTracker struct {
	emitter
	logged

	state   Value[PointerState]
	regions []*region
	entered int
	nextID  uint32
}

// NewPointerTracker creates a tracker with a hidden cursor.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// State returns the current pointer state.
func (t *PointerTracker) State() PointerState {
	return t.state.Get()
}

// Subscribe observes pointer state changes.
func (t *PointerTracker) Subscribe(fn func(PointerState)) Handle {
	return t.state.Subscribe(fn)
}

// Regions returns the number of registered regions.
func (t *PointerTracker) Regions() int {
	return len(t.regions)
}

// RegisterInteractiveRegion adds a region. shape may be nil when the host
// reports enter/leave itself.
func (t *PointerTracker) RegisterInteractiveRegion(elementID string, shape HitShape) RegionHandle {
	t.nextID++
	r := &region{id: t.nextID, elementID: elementID, shape: shape}
	t.regions = append(t.regions, r)
	if shape != nil {
		s := t.state.Get()
		if s.Visible && shape.Contains(s.X, s.Y) {
			t.enter(r)
		}
	}
	return RegionHandle{id: r.id, t: t}
}

// UnregisterInteractiveRegion removes a region, leaving it first if the
// pointer is inside. Stale handles are ignored.
func (t *PointerTracker) UnregisterInteractiveRegion(h RegionHandle) {
	for i, r := range t.regions {
		if r.id != h.id {
			continue
		}
		r.removed = true
		copy(t.regions[i:], t.regions[i+1:])
		t.regions[len(t.regions)-1] = nil
		t.regions = t.regions[:len(t.regions)-1]
		if r.entered {
			t.leave(r)
		}
		return
	}
	t.stale("pointer.unregister", h.id)
}

// OnPointerMove records the position, shows the cursor, and hit-tests
// shaped regions.
func (t *PointerTracker) OnPointerMove(x, y float64) {
	s := t.state.Get()
	wasVisible := s.Visible
	s.X, s.Y = x, y
	s.Visible = true
	t.commit(s)
	if !wasVisible {
		t.emit(Event{Type: EventCursorShow, X: x, Y: y, Value: 1})
	}
	t.hitTest(x, y)
}

// OnPointerEnterViewport shows the cursor.
func (t *PointerTracker) OnPointerEnterViewport() {
	s := t.state.Get()
	if s.Visible {
		return
	}
	s.Visible = true
	t.commit(s)
	t.emit(Event{Type: EventCursorShow, X: s.X, Y: s.Y, Value: 1})
}

// OnPointerLeaveViewport hides the cursor. The pointer cannot be over any
// element outside the viewport, so every entered region is left.
func (t *PointerTracker) OnPointerLeaveViewport() {
	for _, r := range t.snapshot() {
		if !r.removed && r.entered {
			t.leave(r)
		}
	}
	s := t.state.Get()
	if !s.Visible {
		return
	}
	s.Visible = false
	t.commit(s)
	t.emit(Event{Type: EventCursorHide, X: s.X, Y: s.Y})
}

// EnterRegion reports that the pointer entered h. Repeated enters count once.
func (t *PointerTracker) EnterRegion(h RegionHandle) {
	r := t.find(h.id)
	if r == nil {
		t.stale("pointer.enter", h.id)
		return
	}
	if !r.entered {
		t.enter(r)
	}
}

// LeaveRegion reports that the pointer left h. Leaving a region that was
// never entered has no effect on the others.
func (t *PointerTracker) LeaveRegion(h RegionHandle) {
	r := t.find(h.id)
	if r == nil {
		t.stale("pointer.leave", h.id)
		return
	}
	if r.entered {
		t.leave(r)
	}
}

// Hovered returns the element ids of the currently entered regions in
// registration order.
func (t *PointerTracker) Hovered() []string {
	var out []string
	for _, r := range t.regions {
		if r.entered {
			out = append(out, r.elementID)
		}
	}
	return out
}

func (t *PointerTracker) hitTest(x, y float64) {
	// Leaves first so a move between adjacent regions never dips to false.
	for _, r := range t.regions {
		if r.shape != nil && r.entered && !r.shape.Contains(x, y) {
			t.leaveKeep(r)
		}
	}
	// enter notifies subscribers, which may unregister regions.
	for _, r := range t.snapshot() {
		if !r.removed && r.shape != nil && !r.entered && r.shape.Contains(x, y) {
			t.enter(r)
		}
	}
	t.syncHover()
}

// Refresh hit-tests shaped regions again at the last pointer position. Call
// it when content moves under a stationary pointer; a Page does so on every
// scroll.
func (t *PointerTracker) Refresh() {
	s := t.state.Get()
	if !s.Visible {
		return
	}
	t.hitTest(s.X, s.Y)
}

func (t *PointerTracker) snapshot() []*region {
	return append([]*region(nil), t.regions...)
}

func (t *PointerTracker) find(id uint32) *region {
	for _, r := range t.regions {
		if r.id == id {
			return r
		}
	}
	return nil
}

func (t *PointerTracker) enter(r *region) {
	r.entered = true
	t.entered++
	t.logger().Debug("region entered", "element", r.elementID, "active", t.entered)
	t.syncHover()
}

func (t *PointerTracker) leave(r *region) {
	t.leaveKeep(r)
	t.syncHover()
}

// leaveKeep updates the count without publishing hover state.
func (t *PointerTracker) leaveKeep(r *region) {
	r.entered = false
	t.entered--
	t.logger().Debug("region left", "element", r.elementID, "active", t.entered)
}

// syncHover publishes Hovering until it matches the entered count. Sinks
// and subscribers may unregister regions while being notified, which can
// flip hover back before this returns.
func (t *PointerTracker) syncHover() {
	for {
		s := t.state.Get()
		hovering := t.entered > 0
		if s.Hovering == hovering {
			return
		}
		s.Hovering = hovering
		if hovering {
			t.emit(Event{Type: EventHoverStart, X: s.X, Y: s.Y, Value: 1})
		} else {
			t.emit(Event{Type: EventHoverEnd, X: s.X, Y: s.Y})
		}
		t.commit(s)
	}
}

func (t *PointerTracker) commit(s PointerState) {
	t.state.set(s)
}
