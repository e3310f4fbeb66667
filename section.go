package folio

import (
	"fmt"
	"math"
)

// SectionConfig is the declarative description of one page section. The
// near-identical sections of a portfolio (hero, projects, about, contact)
// differ only in this data.
type SectionConfig struct {
	ID string
	// Bounds is the section's layout rectangle in document coordinates.
	// Leave it zero when the host reports crossings itself.
	Bounds      Rect
	Threshold   float64
	TriggerOnce bool
	Container   VariantSet
	Children    []ChildConfig
	Parallax    []ParallaxConfig
	Interactive []RegionConfig
}

// ChildConfig is one staggered child of a section.
type ChildConfig struct {
	ID       string
	Variants VariantSet
}

// ParallaxConfig binds one decorative element to scroll.
type ParallaxConfig struct {
	ID     string
	Factor float64
}

// RegionConfig declares an interactive (hoverable) element. Shapes are in
// document coordinates unless Fixed, in which case they are in viewport
// coordinates (elements that do not scroll, like the nav bar).
type RegionConfig struct {
	ID    string
	Shape HitShape
	Fixed bool
}

// Validate checks every value that registration would reject.
func (c SectionConfig) Validate() error {
	if err := checkThreshold(c.Threshold); err != nil {
		return err
	}
	if math.IsNaN(c.Bounds.Width) || math.IsNaN(c.Bounds.Height) || c.Bounds.Width < 0 || c.Bounds.Height < 0 {
		return &ConfigError{Field: "bounds", Value: min(c.Bounds.Width, c.Bounds.Height), Reason: "size must be >= 0"}
	}
	if err := c.Container.Validate(); err != nil {
		return fmt.Errorf("container: %w", err)
	}
	for i, ch := range c.Children {
		if err := ch.Variants.Validate(); err != nil {
			return fmt.Errorf("child %d (%s): %w", i, ch.ID, err)
		}
	}
	for _, pc := range c.Parallax {
		if err := checkFactor(pc.Factor); err != nil {
			return fmt.Errorf("parallax %q: %w", pc.ID, err)
		}
	}
	return nil
}

type namedBinding struct {
	id string
	b  *ParallaxBinding
}

type namedRegion struct {
	id string
	h  RegionHandle
}

// Section is a mounted SectionConfig: one visibility registration, one
// sequencer, and the section's parallax bindings and interactive regions.
type Section struct {
	id         string
	page       *Page
	cfg        SectionConfig
	seq        *Sequencer
	visibility VisibilityHandle
	attach     Handle
	parallax   []namedBinding
	regions    []namedRegion
	inert      bool
	err        error
	disposed   bool
}

// ID returns the section id.
func (s *Section) ID() string { return s.id }

// Config returns the configuration the section was mounted with.
func (s *Section) Config() SectionConfig { return s.cfg }

// Sequencer returns the section's child sequencer.
func (s *Section) Sequencer() *Sequencer { return s.seq }

// Visibility returns the section's visibility handle (zero when inert).
func (s *Section) Visibility() VisibilityHandle { return s.visibility }

// Inert reports whether the section was mounted inert after a
// configuration error.
func (s *Section) Inert() bool { return s.inert }

// Err returns the configuration error of an inert section.
func (s *Section) Err() error { return s.err }

// InView reports the section's visibility. Inert sections always report
// true since their content is shown.
func (s *Section) InView() bool {
	if s.inert {
		return true
	}
	return s.page.visibility.CurrentState(s.visibility)
}

// Cross delivers a host boundary-crossing notification for the section.
func (s *Section) Cross(entering bool) {
	if s.inert || s.disposed {
		return
	}
	s.page.visibility.Cross(s.visibility, entering)
}

// Observe delivers an intersection ratio for the section.
func (s *Section) Observe(ratio float64) {
	if s.inert || s.disposed {
		return
	}
	s.page.visibility.Observe(s.visibility, ratio)
}

// Parallax returns the binding with the given id, or nil.
func (s *Section) Parallax(id string) *ParallaxBinding {
	for _, nb := range s.parallax {
		if nb.id == id {
			return nb.b
		}
	}
	return nil
}

// ParallaxOffsets returns each binding's current offset keyed by id.
func (s *Section) ParallaxOffsets() map[string]float64 {
	out := make(map[string]float64, len(s.parallax))
	for _, nb := range s.parallax {
		out[nb.id] = nb.b.Offset()
	}
	return out
}

// Region returns the handle of the interactive region with the given id.
func (s *Section) Region(id string) (RegionHandle, bool) {
	for _, nr := range s.regions {
		if nr.id == id {
			return nr.h, true
		}
	}
	return RegionHandle{}, false
}

// Dispose unmounts the section. Pending crossings for it are dropped.
func (s *Section) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.release()
	p := s.page
	for i, o := range p.sections {
		if o == s {
			copy(p.sections[i:], p.sections[i+1:])
			p.sections[len(p.sections)-1] = nil
			p.sections = p.sections[:len(p.sections)-1]
			break
		}
	}
	if p.byID[s.id] == s {
		delete(p.byID, s.id)
	}
}

func (s *Section) release() {
	s.attach.Dispose()
	if s.visibility.m != nil {
		s.visibility.Dispose()
	}
	for _, nb := range s.parallax {
		nb.b.Dispose()
	}
	for _, nr := range s.regions {
		nr.h.Dispose()
	}
}
