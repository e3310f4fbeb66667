package folio

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
)

// Step is one child's place in a staggered sequence. StartOffset is measured
// from the container's trigger time, not from the previous child.
type Step struct {
	Index       int
	StartOffset time.Duration
	Phase       Phase
}

// Stagger expands a container's timing into per-child start offsets:
// offset(i) = DelayChildren + i*StaggerChildren, in declared order.
// childCount 0 yields an empty sequence.
func Stagger(container TransitionSpec, childCount int) ([]Step, error) {
	if childCount < 0 {
		return nil, &ConfigError{Field: "childCount", Value: float64(childCount), Reason: "must be >= 0"}
	}
	if err := checkDuration("delayChildren", container.DelayChildren); err != nil {
		return nil, err
	}
	if err := checkDuration("staggerChildren", container.StaggerChildren); err != nil {
		return nil, err
	}
	steps := make([]Step, childCount)
	for i := range steps {
		steps[i] = Step{
			Index:       i,
			StartOffset: container.DelayChildren + time.Duration(i)*container.StaggerChildren,
			Phase:       PhaseVisible,
		}
	}
	return steps, nil
}

// childTrack animates one child's three style properties. Values are set
// from the elapsed time rather than accumulated, so replays are exact.
type childTrack struct {
	variant VariantSet
	style   Style
	from    Style
	to      Style
	start   time.Duration
	tweens  [3]*gween.Tween
	phase   Phase
	started bool
	done    bool
}

func (c *childTrack) begin(to Phase, start time.Duration, spec TransitionSpec) {
	c.phase = to
	c.from = c.style
	c.to = c.variant.Target(to).Style
	c.start = start + spec.Delay
	c.started = false
	c.done = false
	if spec.Duration <= 0 {
		c.tweens = [3]*gween.Tween{}
		return
	}
	d := float32(spec.Duration.Seconds())
	fn := spec.Easing.Func()
	c.tweens[0] = gween.New(float32(c.from.Opacity), float32(c.to.Opacity), d, fn)
	c.tweens[1] = gween.New(float32(c.from.TranslateY), float32(c.to.TranslateY), d, fn)
	c.tweens[2] = gween.New(float32(c.from.Scale), float32(c.to.Scale), d, fn)
}

func (c *childTrack) snap(p Phase) {
	c.phase = p
	c.style = c.variant.Target(p).Style
	c.from, c.to = c.style, c.style
	c.tweens = [3]*gween.Tween{}
	c.started = true
	c.done = true
}

// advance positions the child at clock (time since trigger).
func (c *childTrack) advance(clock time.Duration) {
	if c.done {
		return
	}
	local := clock - c.start
	if local < 0 {
		return
	}
	c.started = true
	if c.tweens[0] == nil {
		c.style = c.to
		c.done = true
		return
	}
	t := float32(local.Seconds())
	op, f0 := c.tweens[0].Set(t)
	ty, f1 := c.tweens[1].Set(t)
	sc, f2 := c.tweens[2].Set(t)
	c.style = Style{Opacity: float64(op), TranslateY: float64(ty), Scale: float64(sc)}
	if f0 && f1 && f2 {
		c.style = c.to
		c.done = true
	}
}

// Sequencer turns a container's hidden/visible intent into staggered child
// animations. It implements VisibilityListener so a VisibilityMonitor can
// drive it directly.
//
// There is no global clock: the owner calls Update with the frame delta.
type Sequencer struct {
	emitter
	logged

	id        string
	container VariantSet
	children  []*childTrack
	steps     []Step
	phase     Value[Phase]
	clock     time.Duration
	inert     bool
}

// NewSequencer creates a sequencer with children in declared order. Every
// variant is validated; the first error wraps ErrInvalidConfig.
func NewSequencer(id string, container VariantSet, children ...VariantSet) (*Sequencer, error) {
	if err := container.Validate(); err != nil {
		return nil, fmt.Errorf("sequencer %q container: %w", id, err)
	}
	s := &Sequencer{id: id, container: container}
	for _, v := range children {
		if _, err := s.AddChild(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewInertSequencer creates a sequencer whose children are permanently
// visible and which ignores Start and Reset. Used when content is
// misconfigured so the page still renders consistently.
func NewInertSequencer(id string, childCount int) *Sequencer {
	visible := VariantSet{
		Hidden:  TargetStyle{Style: Style{Opacity: 1, Scale: 1}},
		Visible: TargetStyle{Style: Style{Opacity: 1, Scale: 1}},
	}
	s := &Sequencer{id: id, container: visible, inert: true}
	for i := 0; i < childCount; i++ {
		c := &childTrack{variant: visible}
		c.snap(PhaseVisible)
		s.children = append(s.children, c)
	}
	s.steps, _ = Stagger(TransitionSpec{}, childCount)
	s.phase.v = PhaseVisible
	return s
}

// ID returns the sequencer's element id.
func (s *Sequencer) ID() string {
	return s.id
}

// Inert reports whether the sequencer was created by NewInertSequencer.
func (s *Sequencer) Inert() bool {
	return s.inert
}

// AddChild appends a child and returns its index. Offsets are recomputed.
// A child added while the container is visible animates in at its offset.
func (s *Sequencer) AddChild(v VariantSet) (int, error) {
	if s.inert {
		return -1, fmt.Errorf("sequencer %q: inert sequencer accepts no children", s.id)
	}
	if err := v.Validate(); err != nil {
		return -1, fmt.Errorf("sequencer %q child %d: %w", s.id, len(s.children), err)
	}
	c := &childTrack{variant: v}
	c.snap(PhaseHidden)
	s.children = append(s.children, c)
	if err := s.recompute(); err != nil {
		s.children = s.children[:len(s.children)-1]
		return -1, err
	}
	idx := len(s.children) - 1
	if s.phase.Get() == PhaseVisible {
		c.begin(PhaseVisible, s.steps[idx].StartOffset, v.TransitionFor(PhaseHidden, PhaseVisible))
		c.advance(s.clock)
	}
	return idx, nil
}

func (s *Sequencer) recompute() error {
	steps, err := Stagger(s.container.TransitionFor(PhaseHidden, PhaseVisible), len(s.children))
	if err != nil {
		return err
	}
	s.steps = steps
	return nil
}

// Len returns the number of children.
func (s *Sequencer) Len() int {
	return len(s.children)
}

// Steps returns a copy of the current sequence.
func (s *Sequencer) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Phase returns the container's current phase.
func (s *Sequencer) Phase() Phase {
	return s.phase.Get()
}

// Subscribe observes container phase changes.
func (s *Sequencer) Subscribe(fn func(Phase)) Handle {
	return s.phase.Subscribe(fn)
}

// Elapsed returns the time since the last Start or Reset.
func (s *Sequencer) Elapsed() time.Duration {
	return s.clock
}

// Start triggers the visible sequence and returns the per-child schedule.
// Calling Start while already visible keeps the running sequence.
func (s *Sequencer) Start() []Step {
	if s.inert || s.phase.Get() == PhaseVisible {
		return s.Steps()
	}
	s.clock = 0
	for i, c := range s.children {
		c.begin(PhaseVisible, s.steps[i].StartOffset, c.variant.TransitionFor(PhaseHidden, PhaseVisible))
		c.advance(0)
	}
	s.logger().Debug("sequence started", "element", s.id, "children", len(s.children))
	s.emit(Event{Type: EventSequenceStart, ElementID: s.id, Value: float64(len(s.children))})
	s.phase.set(PhaseVisible)
	return s.Steps()
}

// Reset reverts every child to hidden with zero offset. The next Start
// replays the full sequence with the same offsets.
func (s *Sequencer) Reset() {
	if s.inert || s.phase.Get() == PhaseHidden {
		return
	}
	s.clock = 0
	for _, c := range s.children {
		spec := c.variant.TransitionFor(PhaseVisible, PhaseHidden)
		spec.Delay = 0
		if spec.Duration <= 0 {
			c.snap(PhaseHidden)
			continue
		}
		c.begin(PhaseHidden, 0, spec)
		c.advance(0)
	}
	s.logger().Debug("sequence reset", "element", s.id)
	s.emit(Event{Type: EventSequenceReset, ElementID: s.id})
	s.phase.set(PhaseHidden)
}

// StartVisible implements VisibilityListener.
func (s *Sequencer) StartVisible() {
	s.Start()
}

// ResetHidden implements VisibilityListener.
func (s *Sequencer) ResetHidden() {
	s.Reset()
}

// Update advances the sequence clock by dt and repositions every child.
func (s *Sequencer) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.clock += dt
	for _, c := range s.children {
		c.advance(s.clock)
	}
}

// Done reports whether every child has reached its target.
func (s *Sequencer) Done() bool {
	for _, c := range s.children {
		if !c.done {
			return false
		}
	}
	return true
}

// ChildStyle returns child i's current interpolated style. Out-of-range
// indices return the zero Style.
func (s *Sequencer) ChildStyle(i int) Style {
	if i < 0 || i >= len(s.children) {
		return Style{}
	}
	return s.children[i].style
}

// ChildStarted reports whether child i's current transition has begun
// (its start offset has elapsed).
func (s *Sequencer) ChildStarted(i int) bool {
	if i < 0 || i >= len(s.children) {
		return false
	}
	return s.children[i].started
}

// ChildPhase returns the phase child i is moving towards.
func (s *Sequencer) ChildPhase(i int) Phase {
	if i < 0 || i >= len(s.children) {
		return PhaseHidden
	}
	return s.children[i].phase
}
