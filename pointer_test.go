package folio

import (
	"math/rand"
	"testing"
)

func TestPointerOverlappingRegions(t *testing.T) {
	p := NewPointerTracker()
	a := p.RegisterInteractiveRegion("a", nil)
	b := p.RegisterInteractiveRegion("b", nil)

	p.EnterRegion(a)
	p.EnterRegion(b)
	p.LeaveRegion(a)
	if !p.State().Hovering {
		t.Fatal("leaving A while inside B must keep hovering")
	}
	p.LeaveRegion(b)
	if p.State().Hovering {
		t.Fatal("hovering should clear after leaving both")
	}
}

func TestPointerHoverMatchesEnteredSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewPointerTracker()
	handles := make([]RegionHandle, 5)
	for i := range handles {
		handles[i] = p.RegisterInteractiveRegion("r", nil)
	}
	inside := make([]bool, len(handles))

	for step := 0; step < 2000; step++ {
		i := rng.Intn(len(handles))
		if rng.Intn(2) == 0 {
			p.EnterRegion(handles[i])
			inside[i] = true
		} else {
			p.LeaveRegion(handles[i])
			inside[i] = false
		}
		want := false
		for _, in := range inside {
			want = want || in
		}
		if got := p.State().Hovering; got != want {
			t.Fatalf("step %d: Hovering = %v, want %v (inside %v)", step, got, want, inside)
		}
	}
}

func TestPointerUnregisterWhileInside(t *testing.T) {
	p := NewPointerTracker()
	sink := &recordSink{}
	p.SetEventSink(sink)
	h := p.RegisterInteractiveRegion("cta", nil)
	p.EnterRegion(h)

	h.Dispose()
	h.Dispose()
	if p.State().Hovering {
		t.Error("unregistering the entered region should end hover")
	}
	if p.Regions() != 0 {
		t.Errorf("Regions = %d, want 0", p.Regions())
	}
	p.EnterRegion(h)
	if p.State().Hovering {
		t.Error("stale handle must not re-enter")
	}
	if got := sink.types(); len(got) != 2 || got[1] != EventHoverEnd {
		t.Errorf("events = %v", got)
	}
}

func TestPointerLeaveViewportLeavesAllRegions(t *testing.T) {
	p := NewPointerTracker()
	a := p.RegisterInteractiveRegion("a", nil)
	p.OnPointerMove(10, 10)
	p.EnterRegion(a)

	p.OnPointerLeaveViewport()
	s := p.State()
	if s.Visible || s.Hovering {
		t.Errorf("after leave viewport: %+v", s)
	}
	if len(p.Hovered()) != 0 {
		t.Errorf("Hovered = %v", p.Hovered())
	}

	p.OnPointerEnterViewport()
	if !p.State().Visible || p.State().Hovering {
		t.Errorf("after re-enter: %+v", p.State())
	}
}

func TestPointerMoveShowsCursor(t *testing.T) {
	p := NewPointerTracker()
	sink := &recordSink{}
	p.SetEventSink(sink)
	if p.State().Visible {
		t.Fatal("cursor should start hidden")
	}
	p.OnPointerMove(3, 4)
	p.OnPointerMove(5, 6)
	s := p.State()
	if !s.Visible || s.X != 5 || s.Y != 6 {
		t.Errorf("state = %+v", s)
	}
	if got := sink.types(); len(got) != 1 || got[0] != EventCursorShow {
		t.Errorf("events = %v, want [cursor_show]", got)
	}
}

func TestPointerHitTesting(t *testing.T) {
	p := NewPointerTracker()
	p.RegisterInteractiveRegion("left", HitRect{X: 0, Y: 0, Width: 100, Height: 50})
	p.RegisterInteractiveRegion("right", HitRect{X: 100, Y: 0, Width: 100, Height: 50})
	changes := 0
	p.Subscribe(func(s PointerState) {
		if !s.Hovering {
			changes++
		}
	})

	p.OnPointerMove(50, 25)
	if got := p.Hovered(); len(got) != 1 || got[0] != "left" {
		t.Fatalf("Hovered = %v, want [left]", got)
	}
	p.OnPointerMove(150, 25)
	if got := p.Hovered(); len(got) != 1 || got[0] != "right" {
		t.Fatalf("Hovered = %v, want [right]", got)
	}
	if changes != 0 {
		t.Error("moving between adjacent regions must not drop hover")
	}
	p.OnPointerMove(150, 200)
	if p.State().Hovering {
		t.Error("outside all regions should not hover")
	}
}

func TestPointerRegisterUnderCursor(t *testing.T) {
	p := NewPointerTracker()
	p.OnPointerMove(20, 20)
	p.RegisterInteractiveRegion("late", HitCircle{CenterX: 20, CenterY: 20, Radius: 5})
	if !p.State().Hovering {
		t.Error("region registered under a visible cursor should be entered")
	}
}

func TestHitShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape HitShape
		x, y  float64
		want  bool
	}{
		{"rect inside", HitRect{0, 0, 10, 10}, 5, 5, true},
		{"rect edge", HitRect{0, 0, 10, 10}, 10, 10, true},
		{"rect outside", HitRect{0, 0, 10, 10}, 11, 5, false},
		{"circle inside", HitCircle{0, 0, 5}, 3, 4, true},
		{"circle outside", HitCircle{0, 0, 5}, 4, 4, false},
		{"triangle inside", HitPolygon{Points: []Vec2{{0, 0}, {10, 0}, {0, 10}}}, 2, 2, true},
		{"triangle outside", HitPolygon{Points: []Vec2{{0, 0}, {10, 0}, {0, 10}}}, 8, 8, false},
		{"degenerate polygon", HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScrolledShape(t *testing.T) {
	m := NewScrollMetrics(nil)
	s := Scrolled{Shape: HitRect{X: 0, Y: 1000, Width: 100, Height: 50}, Metrics: m}
	if s.Contains(10, 20) {
		t.Error("document shape should be off screen at scroll 0")
	}
	m.Update(990)
	if !s.Contains(10, 20) {
		t.Error("document shape should be under the pointer at scroll 990")
	}
	if (Scrolled{}).Contains(0, 0) {
		t.Error("nil shape should never contain")
	}
}

type sinkFunc func(Event)

func (f sinkFunc) Emit(e Event) { f(e) }

func TestPointerUnregisterFromSubscriberOnLeaveViewport(t *testing.T) {
	p := NewPointerTracker()
	a := p.RegisterInteractiveRegion("a", HitRect{Width: 10, Height: 10})
	p.RegisterInteractiveRegion("b", HitRect{X: 100, Width: 10, Height: 10})
	p.RegisterInteractiveRegion("c", HitRect{X: 100, Width: 10, Height: 10})
	p.OnPointerMove(5, 5)
	p.Subscribe(func(s PointerState) {
		if !s.Hovering {
			a.Dispose()
		}
	})

	p.OnPointerLeaveViewport()

	if p.Regions() != 2 {
		t.Errorf("Regions = %d, want 2", p.Regions())
	}
	st := p.State()
	if st.Visible || st.Hovering {
		t.Errorf("state = %+v, want hidden and not hovering", st)
	}
}

func TestPointerUnregisterFromSubscriberOnEnter(t *testing.T) {
	p := NewPointerTracker()
	sink := &recordSink{}
	p.SetEventSink(sink)
	a := p.RegisterInteractiveRegion("a", HitRect{Width: 10, Height: 10})
	p.RegisterInteractiveRegion("b", HitRect{X: 100, Width: 10, Height: 10})
	p.RegisterInteractiveRegion("c", HitRect{X: 100, Width: 10, Height: 10})
	p.Subscribe(func(s PointerState) {
		if s.Hovering {
			a.Dispose()
		}
	})

	p.OnPointerMove(5, 5)

	if p.State().Hovering {
		t.Error("hovering should end once the entered region is unregistered")
	}
	if got := p.Hovered(); len(got) != 0 {
		t.Errorf("Hovered = %v, want none", got)
	}
	want := []EventType{EventCursorShow, EventHoverStart, EventHoverEnd}
	got := sink.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPointerUnregisterFromSinkOnHoverStart(t *testing.T) {
	p := NewPointerTracker()
	var a RegionHandle
	var got []EventType
	p.SetEventSink(sinkFunc(func(e Event) {
		got = append(got, e.Type)
		if e.Type == EventHoverStart {
			a.Dispose()
		}
	}))
	a = p.RegisterInteractiveRegion("a", HitRect{Width: 10, Height: 10})

	p.OnPointerMove(5, 5)

	if p.State().Hovering {
		t.Error("hovering should not stick after the sink unregistered the region")
	}
	if len(got) != 3 || got[1] != EventHoverStart || got[2] != EventHoverEnd {
		t.Errorf("events = %v, want [cursor_show hover_start hover_end]", got)
	}
}

func TestPointerRefreshAfterContentMoves(t *testing.T) {
	m := NewScrollMetrics(nil)
	p := NewPointerTracker()
	p.RegisterInteractiveRegion("cta", Scrolled{Shape: HitRect{Width: 100, Height: 100}, Metrics: m})

	p.Refresh()
	if p.State().Hovering {
		t.Error("Refresh with a hidden cursor must not hover")
	}

	p.OnPointerMove(50, 50)
	m.Update(500)
	p.Refresh()
	if p.State().Hovering {
		t.Errorf("hovering after cta scrolled away, over=%v", p.Hovered())
	}
	m.Update(0)
	p.Refresh()
	if got := p.Hovered(); len(got) != 1 || got[0] != "cta" {
		t.Errorf("Hovered = %v, want [cta]", got)
	}
}
