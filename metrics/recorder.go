package metrics

import (
	"errors"
	"sync"

	"github.com/phanxgames/folio"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Recorder implements folio.EventSink using Prometheus metrics.
//
// The page is single-threaded but scrapes are not, so the few derived
// counts kept here are guarded.
type Recorder struct {
	events         *prom.CounterVec
	sequenceStarts *prom.CounterVec
	scrollY        prom.Gauge
	inView         prom.Gauge
	hovering       prom.Gauge
	menuOpen       prom.Gauge

	mu      sync.Mutex
	visible map[string]bool
}

// NewRecorder constructs and registers the metrics. Calling it again with
// the same registry reuses the collectors already registered there, so
// counters keep accumulating across recorders.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{visible: make(map[string]bool)}
	r.events = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "folio",
		Name:      "events_total",
		Help:      "Page state changes by event type",
	}, []string{"type"})
	r.sequenceStarts = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "folio",
		Name:      "sequence_starts_total",
		Help:      "Staggered reveal sequences started, by section",
	}, []string{"section"})
	r.scrollY = prom.NewGauge(prom.GaugeOpts{
		Namespace: "folio",
		Name:      "scroll_position_pixels",
		Help:      "Last delivered scroll offset",
	})
	r.inView = prom.NewGauge(prom.GaugeOpts{
		Namespace: "folio",
		Name:      "sections_in_view",
		Help:      "Number of sections currently in view",
	})
	r.hovering = prom.NewGauge(prom.GaugeOpts{
		Namespace: "folio",
		Name:      "cursor_hovering",
		Help:      "1 while the cursor is over an interactive region",
	})
	r.menuOpen = prom.NewGauge(prom.GaugeOpts{
		Namespace: "folio",
		Name:      "mobile_menu_open",
		Help:      "1 while the mobile menu is open",
	})
	r.events = register(reg, r.events)
	r.sequenceStarts = register(reg, r.sequenceStarts)
	r.scrollY = register(reg, r.scrollY)
	r.inView = register(reg, r.inView)
	r.hovering = register(reg, r.hovering)
	r.menuOpen = register(reg, r.menuOpen)
	return r
}

// register adds c to reg, or returns the equal collector registered before.
// Any other registration error is a programming mistake and panics, as
// MustRegister does.
func register[C prom.Collector](reg prom.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prom.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}

// Emit implements folio.EventSink.
func (r *Recorder) Emit(e folio.Event) {
	if r == nil || r.events == nil {
		return
	}
	r.events.WithLabelValues(e.Type.String()).Inc()
	switch e.Type {
	case folio.EventScroll:
		r.scrollY.Set(e.Value)
	case folio.EventEnterView, folio.EventExitView:
		r.mu.Lock()
		if e.Type == folio.EventEnterView {
			r.visible[e.ElementID] = true
		} else {
			delete(r.visible, e.ElementID)
		}
		n := len(r.visible)
		r.mu.Unlock()
		r.inView.Set(float64(n))
	case folio.EventSequenceStart:
		r.sequenceStarts.WithLabelValues(e.ElementID).Inc()
	case folio.EventHoverStart, folio.EventHoverEnd:
		r.hovering.Set(e.Value)
	case folio.EventMenuChange:
		r.menuOpen.Set(e.Value)
	}
}
