package folio

import (
	"math"
	"time"
)

// TransitionSpec describes how an element moves into a target style.
// DelayChildren and StaggerChildren only matter on containers: child i of
// a container starts at DelayChildren + i*StaggerChildren.
type TransitionSpec struct {
	Duration        time.Duration
	Delay           time.Duration
	Easing          Easing
	DelayChildren   time.Duration
	StaggerChildren time.Duration
}

// Validate rejects negative durations and malformed easing curves.
func (t TransitionSpec) Validate() error {
	if err := checkDuration("duration", t.Duration); err != nil {
		return err
	}
	if err := checkDuration("delay", t.Delay); err != nil {
		return err
	}
	if err := checkDuration("delayChildren", t.DelayChildren); err != nil {
		return err
	}
	if err := checkDuration("staggerChildren", t.StaggerChildren); err != nil {
		return err
	}
	return t.Easing.Validate()
}

// Style is the animatable part of an element's appearance.
type Style struct {
	Opacity    float64
	TranslateY float64
	Scale      float64
}

// Lerp interpolates from s to o by p (0 = s, 1 = o).
func (s Style) Lerp(o Style, p float64) Style {
	return Style{
		Opacity:    s.Opacity + (o.Opacity-s.Opacity)*p,
		TranslateY: s.TranslateY + (o.TranslateY-s.TranslateY)*p,
		Scale:      s.Scale + (o.Scale-s.Scale)*p,
	}
}

func (s Style) validate() error {
	if math.IsNaN(s.Opacity) || s.Opacity < 0 || s.Opacity > 1 {
		return &ConfigError{Field: "opacity", Value: s.Opacity, Reason: "must be in [0, 1]"}
	}
	if math.IsNaN(s.Scale) || s.Scale < 0 {
		return &ConfigError{Field: "scale", Value: s.Scale, Reason: "must be >= 0"}
	}
	if math.IsNaN(s.TranslateY) || math.IsInf(s.TranslateY, 0) {
		return &ConfigError{Field: "translateY", Value: s.TranslateY, Reason: "must be finite"}
	}
	return nil
}

// TargetStyle is a style plus the transition used to reach it.
type TargetStyle struct {
	Style
	Transition TransitionSpec
}

// Transition is an edge between two phases.
type Transition struct {
	From, To Phase
}

// VariantSet is an element's hidden and visible targets plus an explicit
// transition table. It is immutable once handed to a Sequencer.
//
// Without a table entry, hidden→visible uses Visible.Transition and
// visible→hidden is instantaneous.
type VariantSet struct {
	Hidden      TargetStyle
	Visible     TargetStyle
	Transitions map[Transition]TransitionSpec
}

// Target returns the style for phase p.
func (v VariantSet) Target(p Phase) TargetStyle {
	if p == PhaseVisible {
		return v.Visible
	}
	return v.Hidden
}

// TransitionFor looks up the spec for moving from one phase to another.
func (v VariantSet) TransitionFor(from, to Phase) TransitionSpec {
	if spec, ok := v.Transitions[Transition{From: from, To: to}]; ok {
		return spec
	}
	if to == PhaseVisible && from != PhaseVisible {
		return v.Visible.Transition
	}
	return TransitionSpec{}
}

// Validate checks both targets and every table entry.
func (v VariantSet) Validate() error {
	for _, t := range []TargetStyle{v.Hidden, v.Visible} {
		if err := t.validate(); err != nil {
			return err
		}
		if err := t.Transition.Validate(); err != nil {
			return err
		}
	}
	for _, spec := range v.Transitions {
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FadeUp is the common reveal: hidden is transparent and shifted down by
// distance, visible is opaque at rest.
func FadeUp(distance float64, transition TransitionSpec) VariantSet {
	return VariantSet{
		Hidden:  TargetStyle{Style: Style{Opacity: 0, TranslateY: distance, Scale: 1}},
		Visible: TargetStyle{Style: Style{Opacity: 1, Scale: 1}, Transition: transition},
	}
}

// Grow fades and scales in from the given starting scale.
func Grow(from, opacity float64, transition TransitionSpec) VariantSet {
	return VariantSet{
		Hidden:  TargetStyle{Style: Style{Opacity: 0, Scale: from}},
		Visible: TargetStyle{Style: Style{Opacity: opacity, Scale: 1}, Transition: transition},
	}
}

// Orchestrate returns a container variant that only carries child timing.
func Orchestrate(delayChildren, staggerChildren time.Duration) VariantSet {
	return VariantSet{
		Hidden: TargetStyle{Style: Style{Opacity: 1, Scale: 1}},
		Visible: TargetStyle{
			Style: Style{Opacity: 1, Scale: 1},
			Transition: TransitionSpec{
				DelayChildren:   delayChildren,
				StaggerChildren: staggerChildren,
			},
		},
	}
}
