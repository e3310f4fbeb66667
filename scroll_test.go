package folio

import "testing"

type fakeScrollSource struct {
	attached int
	detached int
	update   func(float64)
}

func (f *fakeScrollSource) Attach(update func(float64)) {
	f.attached++
	f.update = update
}

func (f *fakeScrollSource) Detach() {
	f.detached++
	f.update = nil
}

func TestScrollMetricsAttachesOnFirstAndDetachesOnLast(t *testing.T) {
	src := &fakeScrollSource{}
	m := NewScrollMetrics(src)

	a := m.Subscribe(func(float64) {})
	b := m.Subscribe(func(float64) {})
	if src.attached != 1 {
		t.Fatalf("attached = %d, want 1", src.attached)
	}

	a.Dispose()
	if src.detached != 0 || !m.Attached() {
		t.Fatal("detached while a subscriber remains")
	}
	b.Dispose()
	b.Dispose()
	if src.detached != 1 || m.Attached() {
		t.Errorf("detached = %d, attached = %v, want 1/false", src.detached, m.Attached())
	}

	m.Subscribe(func(float64) {})
	if src.attached != 2 {
		t.Errorf("re-attach count = %d, want 2", src.attached)
	}
}

func TestScrollMetricsSourceDrivesUpdates(t *testing.T) {
	src := &fakeScrollSource{}
	m := NewScrollMetrics(src)
	var got []float64
	m.Subscribe(func(y float64) { got = append(got, y) })

	src.update(12)
	src.update(12)
	if len(got) != 2 {
		t.Fatalf("dispatches = %d, want 2 (every signal is dispatched)", len(got))
	}
	if m.Y() != 12 {
		t.Errorf("Y = %v, want 12", m.Y())
	}
}

func TestScrollMetricsEmitsScrollEvents(t *testing.T) {
	m := NewScrollMetrics(nil)
	sink := &recordSink{}
	m.SetEventSink(sink)
	m.Update(3)
	m.Update(4)
	if len(sink.events) != 2 || sink.events[1].Value != 4 {
		t.Errorf("events = %+v", sink.events)
	}
}
