package folio

// ScrollSource is the host's scroll listener. The ScrollMetrics attaches it
// when the first consumer subscribes and detaches it when the last one
// leaves, so an idle page holds no listener.
type ScrollSource interface {
	Attach(update func(scrollY float64))
	Detach()
}

// ScrollMetrics is the per-document scroll position. It is shared by every
// scroll consumer on a page but mutated only through Update.
//
// Every Update is dispatched, even when the position is unchanged: consumers
// decide for themselves whether a repeated position is a no-op.
type ScrollMetrics struct {
	emitter
	logged

	y        float64
	source   ScrollSource
	attached bool
	subs     subscriberList[float64]
}

// NewScrollMetrics creates scroll metrics fed by source. source may be nil
// when the host calls Update directly.
func NewScrollMetrics(source ScrollSource) *ScrollMetrics {
	return &ScrollMetrics{source: source}
}

// Y returns the last delivered scroll offset.
func (m *ScrollMetrics) Y() float64 {
	return m.y
}

// Attached reports whether the host source is currently attached.
func (m *ScrollMetrics) Attached() bool {
	return m.attached
}

// Subscribe registers fn for every scroll update. The first subscription
// attaches the host source.
func (m *ScrollMetrics) Subscribe(fn func(scrollY float64)) Handle {
	id := m.subs.add(fn)
	if !m.attached {
		m.attached = true
		if m.source != nil {
			m.source.Attach(m.Update)
		}
		m.logger().Debug("scroll source attached")
	}
	return Handle{id: id, owner: m}
}

func (m *ScrollMetrics) dispose(id uint32) bool {
	if !m.subs.remove(id) {
		m.stale("scroll.unsubscribe", id)
		return false
	}
	if m.subs.len() == 0 && m.attached {
		m.attached = false
		if m.source != nil {
			m.source.Detach()
		}
		m.logger().Debug("scroll source detached")
	}
	return true
}

// Update records a scroll signal and synchronously recomputes every
// subscriber before returning.
func (m *ScrollMetrics) Update(scrollY float64) {
	m.y = scrollY
	m.emit(Event{Type: EventScroll, Value: scrollY})
	m.subs.dispatch(scrollY)
}
