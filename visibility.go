package folio

// VisibilityListener receives the sequencing intents derived from viewport
// crossings. Sequencer implements it.
type VisibilityListener interface {
	StartVisible()
	ResetHidden()
}

// VisibilityState is the monitor's record for one registered element.
type VisibilityState struct {
	ElementID   string
	Threshold   float64
	TriggerOnce bool
	InView      bool
}

// VisibilityHandle identifies a registered element. It carries its own
// disposer; operations through a disposed handle are silent no-ops.
type VisibilityHandle struct {
	id uint32
	m  *VisibilityMonitor
}

// ID returns the registration id (0 for the zero handle).
func (h VisibilityHandle) ID() uint32 {
	return h.id
}

// Dispose unregisters the element. Safe to call more than once.
func (h VisibilityHandle) Dispose() {
	if h.m != nil {
		h.m.Unregister(h)
	}
}

type visEntry struct {
	state  VisibilityState
	inView Value[bool]
}

// VisibilityMonitor tracks whether registered elements are inside the
// viewport. Crossing notifications come from the host (an intersection
// observer, or Observe with computed ratios).
//
// With TriggerOnce, InView goes false→true at most once and never reverts.
type VisibilityMonitor struct {
	emitter
	logged

	entries map[uint32]*visEntry
	nextID  uint32
}

// NewVisibilityMonitor creates an empty monitor.
func NewVisibilityMonitor() *VisibilityMonitor {
	return &VisibilityMonitor{entries: make(map[uint32]*visEntry)}
}

// Register starts tracking an element. threshold is the visible fraction
// required to count as in view and must be in (0, 1].
func (m *VisibilityMonitor) Register(elementID string, threshold float64, triggerOnce bool) (VisibilityHandle, error) {
	if err := checkThreshold(threshold); err != nil {
		return VisibilityHandle{}, err
	}
	m.nextID++
	m.entries[m.nextID] = &visEntry{state: VisibilityState{
		ElementID:   elementID,
		Threshold:   threshold,
		TriggerOnce: triggerOnce,
	}}
	m.logger().Debug("visibility registered", "element", elementID, "threshold", threshold, "once", triggerOnce)
	return VisibilityHandle{id: m.nextID, m: m}, nil
}

// Unregister stops tracking h and drops its subscribers and listeners.
func (m *VisibilityMonitor) Unregister(h VisibilityHandle) {
	e, ok := m.entries[h.id]
	if !ok {
		m.stale("visibility.unregister", h.id)
		return
	}
	e.inView.subs.clear()
	delete(m.entries, h.id)
}

// Len returns the number of registered elements.
func (m *VisibilityMonitor) Len() int {
	return len(m.entries)
}

// CurrentState reports whether the element is in view. Stale handles
// report false.
func (m *VisibilityMonitor) CurrentState(h VisibilityHandle) bool {
	if e, ok := m.entries[h.id]; ok {
		return e.state.InView
	}
	return false
}

// State returns a copy of the element's record.
func (m *VisibilityMonitor) State(h VisibilityHandle) (VisibilityState, bool) {
	if e, ok := m.entries[h.id]; ok {
		return e.state, true
	}
	return VisibilityState{}, false
}

// Subscribe observes InView changes for h. A stale handle returns the zero
// Handle and fn is never called.
func (m *VisibilityMonitor) Subscribe(h VisibilityHandle, fn func(inView bool)) Handle {
	e, ok := m.entries[h.id]
	if !ok {
		m.stale("visibility.subscribe", h.id)
		return Handle{}
	}
	return e.inView.Subscribe(fn)
}

// Attach forwards crossings of h to l: entering starts the visible
// sequence, leaving (repeatable elements only) resets it. If the element is
// already in view, l starts immediately.
func (m *VisibilityMonitor) Attach(h VisibilityHandle, l VisibilityListener) Handle {
	e, ok := m.entries[h.id]
	if !ok {
		m.stale("visibility.attach", h.id)
		return Handle{}
	}
	sub := e.inView.Subscribe(func(inView bool) {
		if inView {
			l.StartVisible()
		} else {
			l.ResetHidden()
		}
	})
	if e.state.InView {
		l.StartVisible()
	}
	return sub
}

// Cross delivers a boundary-crossing notification. Callbacks that arrive
// after the element was unregistered are dropped.
func (m *VisibilityMonitor) Cross(h VisibilityHandle, entering bool) {
	e, ok := m.entries[h.id]
	if !ok {
		m.stale("visibility.cross", h.id)
		return
	}
	if entering {
		if e.state.InView {
			return
		}
		e.state.InView = true
		m.logger().Debug("element entered view", "element", e.state.ElementID)
		m.emit(Event{Type: EventEnterView, ElementID: e.state.ElementID, Value: 1})
		e.inView.set(true)
		return
	}
	if e.state.TriggerOnce || !e.state.InView {
		return
	}
	e.state.InView = false
	m.logger().Debug("element left view", "element", e.state.ElementID)
	m.emit(Event{Type: EventExitView, ElementID: e.state.ElementID})
	e.inView.set(false)
}

// Observe converts an intersection ratio into a crossing using the
// element's threshold: the element is inside when ratio > 0 and
// ratio >= threshold.
func (m *VisibilityMonitor) Observe(h VisibilityHandle, ratio float64) {
	e, ok := m.entries[h.id]
	if !ok {
		m.stale("visibility.observe", h.id)
		return
	}
	m.Cross(h, ratio > 0 && ratio >= e.state.Threshold)
}

// IntersectionRatio returns the fraction of element's area that lies inside
// viewport. A zero-area element counts as fully visible when it touches the
// viewport.
func IntersectionRatio(element, viewport Rect) float64 {
	if !element.Intersects(viewport) {
		return 0
	}
	area := element.Area()
	if area <= 0 {
		return 1
	}
	r := element.Intersection(viewport).Area() / area
	if r > 1 {
		r = 1
	}
	return r
}
