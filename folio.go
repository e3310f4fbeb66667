package folio

// Vec2 is a 2D vector used for pointer positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward (document coordinates).
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersection returns the overlapping area of r and other. The result has
// zero size when the rectangles do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Area returns Width*Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Phase is the two-state animation intent of an element.
type Phase uint8

const (
	PhaseHidden  Phase = iota // initial / reset state
	PhaseVisible              // revealed state
)

// String returns the variant key used by content files.
func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseVisible:
		return "visible"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of state change reported to an EventSink.
type EventType uint8

const (
	EventEnterView      EventType = iota // element crossed into the viewport
	EventExitView                        // element crossed out (repeatable elements only)
	EventSequenceStart                   // a sequencer started its visible sequence
	EventSequenceReset                   // a sequencer reverted all children to hidden
	EventScroll                          // a scroll signal was processed
	EventScrolledChange                  // nav chrome "scrolled" flag flipped
	EventMenuChange                      // mobile menu opened or closed
	EventCursorShow                      // cursor overlay became visible
	EventCursorHide                      // cursor overlay was hidden
	EventHoverStart                      // pointer entered the first interactive region
	EventHoverEnd                        // pointer left the last interactive region
	EventLinkActivated                   // a navigation link was chosen
)

var eventTypeNames = [...]string{
	EventEnterView:      "enter_view",
	EventExitView:       "exit_view",
	EventSequenceStart:  "sequence_start",
	EventSequenceReset:  "sequence_reset",
	EventScroll:         "scroll",
	EventScrolledChange: "scrolled_change",
	EventMenuChange:     "menu_change",
	EventCursorShow:     "cursor_show",
	EventCursorHide:     "cursor_hide",
	EventHoverStart:     "hover_start",
	EventHoverEnd:       "hover_end",
	EventLinkActivated:  "link_activated",
}

// String returns a snake_case name suitable for metric labels.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event carries a state change out of the core. Value holds the numeric
// payload of the event (scroll position, 1/0 for boolean flips).
type Event struct {
	Type      EventType
	ElementID string
	X, Y      float64
	Value     float64
}

// EventSink receives events from controllers. When set, every state change
// is forwarded synchronously, in the order it happened.
type EventSink interface {
	Emit(event Event)
}

type multiSink []EventSink

func (m multiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}

// Sinks returns an EventSink that forwards each event to every non-nil sink
// in order.
func Sinks(sinks ...EventSink) EventSink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// emitter is embedded by controllers that report to an EventSink.
type emitter struct {
	sink EventSink
}

// SetEventSink sets the optional event bridge. Pass nil to disable.
func (e *emitter) SetEventSink(sink EventSink) {
	e.sink = sink
}

func (e *emitter) emit(ev Event) {
	if e.sink != nil {
		e.sink.Emit(ev)
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
