package folio

// disposer is implemented by every registry that hands out Handles.
// dispose reports whether the id was still registered.
type disposer interface {
	dispose(id uint32) bool
}

// Handle releases a registration. The zero Handle is valid and inert.
//
// Dispose may be called any number of times, from any exit path; the
// registration is released exactly once.
type Handle struct {
	id    uint32
	owner disposer
}

// Dispose releases the registration. Subsequent calls are no-ops.
func (h Handle) Dispose() {
	if h.owner == nil {
		return
	}
	h.owner.dispose(h.id)
}

// subscription is one entry in a subscriberList. active is cleared on
// removal so that a dispatch already in progress skips it.
type subscription[T any] struct {
	id     uint32
	fn     func(T)
	active bool
}

// subscriberList is an ordered list of callbacks keyed by id. Dispatch order
// is registration order.
type subscriberList[T any] struct {
	subs   []*subscription[T]
	nextID uint32
}

func (l *subscriberList[T]) add(fn func(T)) uint32 {
	l.nextID++
	l.subs = append(l.subs, &subscription[T]{id: l.nextID, fn: fn, active: true})
	return l.nextID
}

func (l *subscriberList[T]) remove(id uint32) bool {
	for i, s := range l.subs {
		if s.id == id {
			s.active = false
			copy(l.subs[i:], l.subs[i+1:])
			l.subs[len(l.subs)-1] = nil
			l.subs = l.subs[:len(l.subs)-1]
			return true
		}
	}
	return false
}

func (l *subscriberList[T]) dispatch(v T) {
	if len(l.subs) == 0 {
		return
	}
	// Snapshot so callbacks may subscribe or dispose during dispatch.
	snap := make([]*subscription[T], len(l.subs))
	copy(snap, l.subs)
	for _, s := range snap {
		if s.active {
			s.fn(v)
		}
	}
}

func (l *subscriberList[T]) clear() {
	for _, s := range l.subs {
		s.active = false
	}
	l.subs = l.subs[:0]
}

func (l *subscriberList[T]) len() int {
	return len(l.subs)
}

// Value is a subscribable current value owned by a controller. Consumers
// read it with Get and observe it with Subscribe; only the owner mutates it.
// Subscribers run synchronously and only when the value actually changes.
type Value[T comparable] struct {
	v    T
	subs subscriberList[T]
}

// NewValue returns a Value holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.v
}

// Subscribe registers fn to be called with each new value.
func (v *Value[T]) Subscribe(fn func(T)) Handle {
	id := v.subs.add(fn)
	return Handle{id: id, owner: v}
}

// Subscribers returns the number of live subscriptions.
func (v *Value[T]) Subscribers() int {
	return v.subs.len()
}

func (v *Value[T]) dispose(id uint32) bool {
	return v.subs.remove(id)
}

// set stores x and notifies subscribers. It reports whether the value
// changed; an unchanged value produces no notification.
func (v *Value[T]) set(x T) bool {
	if x == v.v {
		return false
	}
	v.v = x
	v.subs.dispatch(x)
	return true
}
