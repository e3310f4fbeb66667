package folio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Content is a page's declarative animation content.
type Content struct {
	Nav      NavOptions
	Sections []SectionConfig
}

// Validate checks every section and joins the errors.
func (c *Content) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%w: section id is empty", ErrInvalidConfig))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate section id %q", ErrInvalidConfig, s.ID))
		}
		seen[s.ID] = true
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("section %q: %w", s.ID, err))
		}
	}
	return errors.Join(errs...)
}

// --- YAML document ---

type contentDoc struct {
	Nav      navDoc       `yaml:"nav"`
	Sections []sectionDoc `yaml:"sections"`
}

type navDoc struct {
	Transparent bool `yaml:"transparent"`
}

type sectionDoc struct {
	ID          string           `yaml:"id"`
	Bounds      *rectDoc         `yaml:"bounds"`
	Threshold   *float64         `yaml:"threshold"`
	Once        bool             `yaml:"once"`
	Container   containerDoc     `yaml:"container"`
	Children    []childDoc       `yaml:"children"`
	Parallax    []parallaxDoc    `yaml:"parallax"`
	Interactive []interactiveDoc `yaml:"interactive"`
}

type rectDoc struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type circleDoc struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// transitionDoc times are in seconds, as content authors write them.
type transitionDoc struct {
	Duration float64    `yaml:"duration"`
	Delay    float64    `yaml:"delay"`
	Ease     *easingDoc `yaml:"ease"`
}

// containerDoc only orchestrates children; the container itself never
// animates, so it has no duration or easing of its own.
type containerDoc struct {
	DelayChildren   float64 `yaml:"delayChildren"`
	StaggerChildren float64 `yaml:"staggerChildren"`
}

type styleDoc struct {
	Opacity *float64 `yaml:"opacity"`
	Y       *float64 `yaml:"y"`
	Scale   *float64 `yaml:"scale"`
}

type childDoc struct {
	ID         string         `yaml:"id"`
	Preset     string         `yaml:"preset"`
	Distance   *float64       `yaml:"distance"`
	Hidden     *styleDoc      `yaml:"hidden"`
	Visible    *styleDoc      `yaml:"visible"`
	Transition transitionDoc  `yaml:"transition"`
	Exit       *transitionDoc `yaml:"exit"`
}

type parallaxDoc struct {
	ID     string  `yaml:"id"`
	Factor float64 `yaml:"factor"`
}

type interactiveDoc struct {
	ID     string     `yaml:"id"`
	Rect   *rectDoc   `yaml:"rect"`
	Circle *circleDoc `yaml:"circle"`
	Fixed  bool       `yaml:"fixed"`
}

// easingDoc accepts a curve name ("easeOut") or four bezier control points
// ([0.22, 1, 0.36, 1]).
type easingDoc struct {
	Easing
}

func (e *easingDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseEasing(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		e.Easing = parsed
		return nil
	case yaml.SequenceNode:
		var pts []float64
		if err := node.Decode(&pts); err != nil {
			return err
		}
		if len(pts) != 4 {
			return fmt.Errorf("line %d: %w: cubic bezier needs 4 control points, got %d", node.Line, ErrInvalidConfig, len(pts))
		}
		e.Easing = CubicBezier(pts[0], pts[1], pts[2], pts[3])
		return nil
	default:
		return fmt.Errorf("line %d: ease must be a name or a list of 4 numbers", node.Line)
	}
}

const (
	defaultThreshold = 0.1
	defaultDistance  = 20.0
)

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

func (t transitionDoc) spec(fallback Easing) TransitionSpec {
	spec := TransitionSpec{
		Duration: seconds(t.Duration),
		Delay:    seconds(t.Delay),
		Easing:   fallback,
	}
	if t.Ease != nil {
		spec.Easing = t.Ease.Easing
	}
	return spec
}

func (s *styleDoc) apply(base Style) Style {
	if s == nil {
		return base
	}
	if s.Opacity != nil {
		base.Opacity = *s.Opacity
	}
	if s.Y != nil {
		base.TranslateY = *s.Y
	}
	if s.Scale != nil {
		base.Scale = *s.Scale
	}
	return base
}

func (c childDoc) variants() (VariantSet, error) {
	distance := defaultDistance
	if c.Distance != nil {
		distance = *c.Distance
	}
	spec := c.Transition.spec(EaseOut)

	var v VariantSet
	switch c.Preset {
	case "", "fadeUp":
		v = FadeUp(distance, spec)
	case "fade":
		v = FadeUp(0, spec)
	case "grow":
		v = Grow(0.8, 1, spec)
	default:
		return VariantSet{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, c.Preset)
	}
	v.Hidden.Style = c.Hidden.apply(v.Hidden.Style)
	v.Visible.Style = c.Visible.apply(v.Visible.Style)
	if c.Exit != nil {
		v.Transitions = map[Transition]TransitionSpec{
			{From: PhaseVisible, To: PhaseHidden}: c.Exit.spec(EaseOut),
		}
	}
	return v, nil
}

func (d interactiveDoc) shape() HitShape {
	switch {
	case d.Rect != nil:
		return HitRect{X: d.Rect.X, Y: d.Rect.Y, Width: d.Rect.Width, Height: d.Rect.Height}
	case d.Circle != nil:
		return HitCircle{CenterX: d.Circle.X, CenterY: d.Circle.Y, Radius: d.Circle.Radius}
	default:
		return nil
	}
}

func (d sectionDoc) config() (SectionConfig, error) {
	cfg := SectionConfig{
		ID:          d.ID,
		Threshold:   defaultThreshold,
		TriggerOnce: d.Once,
	}
	if d.Threshold != nil {
		cfg.Threshold = *d.Threshold
	}
	if d.Bounds != nil {
		cfg.Bounds = Rect{X: d.Bounds.X, Y: d.Bounds.Y, Width: d.Bounds.Width, Height: d.Bounds.Height}
	}
	cfg.Container = Orchestrate(seconds(d.Container.DelayChildren), seconds(d.Container.StaggerChildren))
	for i, cd := range d.Children {
		v, err := cd.variants()
		if err != nil {
			return cfg, fmt.Errorf("child %d (%s): %w", i, cd.ID, err)
		}
		cfg.Children = append(cfg.Children, ChildConfig{ID: cd.ID, Variants: v})
	}
	for _, pd := range d.Parallax {
		cfg.Parallax = append(cfg.Parallax, ParallaxConfig{ID: pd.ID, Factor: pd.Factor})
	}
	for _, id := range d.Interactive {
		cfg.Interactive = append(cfg.Interactive, RegionConfig{ID: id.ID, Shape: id.shape(), Fixed: id.Fixed})
	}
	return cfg, nil
}

// ParseContent decodes YAML content. Structural errors (bad YAML, unknown
// presets or easings) fail here; range checks are left to Validate and
// MountSection so a page can still mount misconfigured sections inert.
func ParseContent(data []byte) (*Content, error) {
	return LoadContent(bytes.NewReader(data))
}

// LoadContent decodes YAML content from r.
func LoadContent(r io.Reader) (*Content, error) {
	var doc contentDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Content{}, nil
		}
		return nil, fmt.Errorf("parse content: %w", err)
	}
	c := &Content{Nav: NavOptions{Transparent: doc.Nav.Transparent}}
	for i, sd := range doc.Sections {
		cfg, err := sd.config()
		if err != nil {
			return nil, fmt.Errorf("parse content: section %d (%s): %w", i, sd.ID, err)
		}
		c.Sections = append(c.Sections, cfg)
	}
	return c, nil
}

// LoadContentFile reads and decodes a YAML content file.
func LoadContentFile(path string) (*Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	return LoadContent(f)
}
