package folio

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// PageOptions configures a Page.
type PageOptions struct {
	Nav    NavOptions
	Source ScrollSource
}

// Page is the composition root for one document view. It owns one of each
// controller, shares a single ScrollMetrics between them, and mounts
// sections from declarative configuration.
//
// Page is not safe for concurrent use. Every signal runs to completion
// before the next one, in delivery order.
type Page struct {
	logged

	scroll     *ScrollMetrics
	visibility *VisibilityMonitor
	parallax   *ScrollTransformController
	pointer    *PointerTracker
	nav        *NavState
	sink       EventSink

	sections []*Section
	byID     map[string]*Section
	subs     []Handle

	viewW, viewH float64
	hasViewport  bool
	closed       bool
}

// NewPage creates a page and wires nav, parallax, visibility, and pointer
// hit-testing to the shared scroll metrics.
func NewPage(opts PageOptions) *Page {
	p := &Page{
		scroll:     NewScrollMetrics(opts.Source),
		visibility: NewVisibilityMonitor(),
		parallax:   NewScrollTransformController(),
		pointer:    NewPointerTracker(),
		nav:        NewNavState(opts.Nav),
		byID:       make(map[string]*Section),
	}
	p.subs = append(p.subs,
		p.parallax.Attach(p.scroll),
		p.nav.Attach(p.scroll),
		p.scroll.Subscribe(p.evaluateViewport),
		p.scroll.Subscribe(func(float64) { p.pointer.Refresh() }),
	)
	return p
}

// Scroll returns the shared scroll metrics.
func (p *Page) Scroll() *ScrollMetrics { return p.scroll }

// Visibility returns the page's visibility monitor.
func (p *Page) Visibility() *VisibilityMonitor { return p.visibility }

// Parallax returns the page's scroll transform controller.
func (p *Page) Parallax() *ScrollTransformController { return p.parallax }

// Pointer returns the page's pointer tracker.
func (p *Page) Pointer() *PointerTracker { return p.pointer }

// Nav returns the page's navigation state.
func (p *Page) Nav() *NavState { return p.nav }

// SetLogger sets the logger on the page and every controller.
func (p *Page) SetLogger(logger *slog.Logger) {
	p.logged.SetLogger(logger)
	p.scroll.SetLogger(logger)
	p.visibility.SetLogger(logger)
	p.parallax.SetLogger(logger)
	p.pointer.SetLogger(logger)
	p.nav.SetLogger(logger)
	for _, s := range p.sections {
		s.seq.SetLogger(logger)
	}
}

// SetDebugMode enables stale-handle warnings on every controller.
func (p *Page) SetDebugMode(enabled bool) {
	p.logged.SetDebugMode(enabled)
	p.scroll.SetDebugMode(enabled)
	p.visibility.SetDebugMode(enabled)
	p.parallax.SetDebugMode(enabled)
	p.pointer.SetDebugMode(enabled)
	p.nav.SetDebugMode(enabled)
	for _, s := range p.sections {
		s.seq.SetDebugMode(enabled)
	}
}

// SetEventSink forwards every controller's events to sink.
func (p *Page) SetEventSink(sink EventSink) {
	p.sink = sink
	p.scroll.SetEventSink(sink)
	p.visibility.SetEventSink(sink)
	p.pointer.SetEventSink(sink)
	p.nav.SetEventSink(sink)
	for _, s := range p.sections {
		s.seq.SetEventSink(sink)
	}
}

// SetViewport sets the viewport size. From then on every scroll signal
// recomputes the intersection of each section that declares Bounds.
func (p *Page) SetViewport(width, height float64) {
	p.viewW, p.viewH = width, height
	p.hasViewport = width > 0 && height > 0
	p.evaluateViewport(p.scroll.Y())
}

// Viewport returns the visible document rectangle at the current scroll.
func (p *Page) Viewport() Rect {
	return Rect{Y: p.scroll.Y(), Width: p.viewW, Height: p.viewH}
}

func (p *Page) evaluateViewport(scrollY float64) {
	if !p.hasViewport {
		return
	}
	vp := Rect{Y: scrollY, Width: p.viewW, Height: p.viewH}
	// Crossings notify listeners, which may unmount sections.
	for _, s := range p.liveSections() {
		if s.disposed || s.inert || s.cfg.Bounds.Area() <= 0 {
			continue
		}
		p.visibility.Observe(s.visibility, IntersectionRatio(s.cfg.Bounds, vp))
	}
}

// OnScroll delivers a scroll signal.
func (p *Page) OnScroll(scrollY float64) {
	p.scroll.Update(scrollY)
}

// OnPointerMove delivers a pointer move in viewport coordinates.
func (p *Page) OnPointerMove(x, y float64) {
	p.pointer.OnPointerMove(x, y)
}

// OnPointerEnterViewport delivers a pointer enter signal.
func (p *Page) OnPointerEnterViewport() {
	p.pointer.OnPointerEnterViewport()
}

// OnPointerLeaveViewport delivers a pointer leave signal.
func (p *Page) OnPointerLeaveViewport() {
	p.pointer.OnPointerLeaveViewport()
}

// ToggleMobileMenu delivers a menu button click.
func (p *Page) ToggleMobileMenu() {
	p.nav.ToggleMobileMenu()
}

// CloseMobileMenu forces the mobile menu closed.
func (p *Page) CloseMobileMenu() {
	p.nav.CloseMobileMenu()
}

// ActivateLink handles a navigation choice: the mobile menu closes and the
// activation is reported. Routing is the host's job.
func (p *Page) ActivateLink(target string) {
	p.nav.CloseMobileMenu()
	p.logger().Debug("link activated", "target", target)
	if p.sink != nil {
		p.sink.Emit(Event{Type: EventLinkActivated, ElementID: target})
	}
}

// Update advances every section's sequence by dt.
func (p *Page) Update(dt time.Duration) {
	for _, s := range p.liveSections() {
		if !s.disposed {
			s.seq.Update(dt)
		}
	}
}

func (p *Page) liveSections() []*Section {
	return append([]*Section(nil), p.sections...)
}

// Section returns a mounted section by id, or nil.
func (p *Page) Section(id string) *Section {
	return p.byID[id]
}

// Sections returns mounted sections in mount order. The returned slice MUST
// NOT be mutated.
func (p *Page) Sections() []*Section {
	return p.sections
}

// MountSection validates cfg and mounts it. On a configuration error the
// section is still mounted, inert: children visible, no sequencing, no
// parallax, no interactive regions. The error is returned alongside it.
func (p *Page) MountSection(cfg SectionConfig) (*Section, error) {
	if p.closed {
		return nil, errors.New("folio: page closed")
	}
	if cfg.ID == "" {
		return nil, fmt.Errorf("%w: section id is empty", ErrInvalidConfig)
	}
	if _, dup := p.byID[cfg.ID]; dup {
		return nil, fmt.Errorf("%w: duplicate section id %q", ErrInvalidConfig, cfg.ID)
	}

	s, err := p.mount(cfg)
	if err != nil {
		p.logger().Error("section misconfigured, mounted inert", "section", cfg.ID, "error", err)
		s = &Section{id: cfg.ID, page: p, cfg: cfg, inert: true, err: err}
		s.seq = NewInertSequencer(cfg.ID, len(cfg.Children))
	}
	s.seq.SetLogger(p.logger())
	s.seq.SetDebugMode(p.debug)
	s.seq.SetEventSink(p.sink)
	p.sections = append(p.sections, s)
	p.byID[cfg.ID] = s
	if p.hasViewport && !s.inert && cfg.Bounds.Area() > 0 {
		p.visibility.Observe(s.visibility, IntersectionRatio(cfg.Bounds, p.Viewport()))
	}
	return s, err
}

func (p *Page) mount(cfg SectionConfig) (*Section, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	children := make([]VariantSet, len(cfg.Children))
	for i, c := range cfg.Children {
		children[i] = c.Variants
	}
	seq, err := NewSequencer(cfg.ID, cfg.Container, children...)
	if err != nil {
		return nil, err
	}
	vh, err := p.visibility.Register(cfg.ID, cfg.Threshold, cfg.TriggerOnce)
	if err != nil {
		return nil, err
	}
	s := &Section{id: cfg.ID, page: p, cfg: cfg, seq: seq, visibility: vh}
	s.attach = p.visibility.Attach(vh, seq)

	for _, pc := range cfg.Parallax {
		b, err := p.parallax.Bind(pc.Factor)
		if err != nil {
			s.release()
			return nil, fmt.Errorf("parallax %q: %w", pc.ID, err)
		}
		s.parallax = append(s.parallax, namedBinding{id: pc.ID, b: b})
	}
	for _, rc := range cfg.Interactive {
		var shape HitShape
		if rc.Shape != nil {
			shape = rc.Shape
			if !rc.Fixed {
				shape = Scrolled{Shape: rc.Shape, Metrics: p.scroll}
			}
		}
		h := p.pointer.RegisterInteractiveRegion(rc.ID, shape)
		s.regions = append(s.regions, namedRegion{id: rc.ID, h: h})
	}
	return s, nil
}

// MountContent mounts every section of c in order. Misconfigured sections
// are mounted inert; their errors are joined in the result.
func (p *Page) MountContent(c *Content) error {
	var errs []error
	for _, cfg := range c.Sections {
		if _, err := p.MountSection(cfg); err != nil {
			errs = append(errs, fmt.Errorf("section %q: %w", cfg.ID, err))
		}
	}
	return errors.Join(errs...)
}

// Close disposes every section and detaches from scroll metrics.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.closed = true
	for _, s := range p.liveSections() {
		s.Dispose()
	}
	for _, h := range p.subs {
		h.Dispose()
	}
	p.subs = nil
}
