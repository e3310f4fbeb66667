package folio

import "testing"

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", Rect{0, 0, 100, 100}, Rect{50, 50, 100, 100}, Rect{50, 50, 50, 50}},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 20, 20}, Rect{10, 10, 20, 20}},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 10, 10}, Rect{20, 20, 0, 0}},
		{"edge only", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, Rect{10, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersection(tt.b); got != tt.want {
				t.Errorf("Intersection = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContainsAndTranslate(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) || !r.Contains(110, 70) {
		t.Error("edges should be inside")
	}
	if r.Contains(9, 20) {
		t.Error("(9, 20) should be outside")
	}
	if got := r.Translate(5, -5); got != (Rect{15, 15, 100, 50}) {
		t.Errorf("Translate = %+v", got)
	}
	if got := r.Area(); got != 5000 {
		t.Errorf("Area = %v, want 5000", got)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseHidden.String() != "hidden" || PhaseVisible.String() != "visible" {
		t.Errorf("got %q/%q", PhaseHidden, PhaseVisible)
	}
	if Phase(9).String() != "unknown" {
		t.Errorf("out of range phase = %q", Phase(9))
	}
}

func TestEventTypeString(t *testing.T) {
	if EventHoverStart.String() != "hover_start" {
		t.Errorf("EventHoverStart = %q", EventHoverStart)
	}
	if EventType(200).String() != "unknown" {
		t.Errorf("out of range event = %q", EventType(200))
	}
}

// recordSink collects events for assertions.
type recordSink struct {
	events []Event
}

func (r *recordSink) Emit(e Event) {
	r.events = append(r.events, e)
}

func (r *recordSink) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func TestSinksFanOutSkipsNil(t *testing.T) {
	a, b := &recordSink{}, &recordSink{}
	s := Sinks(a, nil, b)
	s.Emit(Event{Type: EventScroll, Value: 5})
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("a=%d b=%d, want 1 each", len(a.events), len(b.events))
	}
	if b.events[0].Value != 5 {
		t.Errorf("Value = %v, want 5", b.events[0].Value)
	}
}
