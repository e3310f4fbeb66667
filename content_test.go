package folio

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadContentFile(t *testing.T) {
	c, err := LoadContentFile("testdata/portfolio.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Nav.Transparent {
		t.Error("nav should be transparent")
	}
	if len(c.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(c.Sections))
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	hero := c.Sections[0]
	if hero.ID != "hero" || !hero.TriggerOnce || hero.Threshold != 0.1 {
		t.Errorf("hero = %+v", hero)
	}
	if got := hero.Children[2].Variants.Visible.Transition.Delay; got != 400*time.Millisecond {
		t.Errorf("cta delay = %v, want 400ms", got)
	}
	if e := hero.Children[0].Variants.Visible.Transition.Easing; e != EaseQuintOut {
		t.Errorf("title easing = %s, want %s", e, EaseQuintOut)
	}
	if len(hero.Parallax) != 1 || hero.Parallax[0].Factor != 0.2 {
		t.Errorf("hero parallax = %+v", hero.Parallax)
	}

	projects := c.Sections[1]
	ct := projects.Container.Visible.Transition
	if ct.DelayChildren != 300*time.Millisecond || ct.StaggerChildren != 200*time.Millisecond {
		t.Errorf("projects container = %+v", ct)
	}
	if got := projects.Children[0].Variants.Hidden.TranslateY; got != 30 {
		t.Errorf("card distance = %v, want 30", got)
	}

	skills := c.Sections[2].Children[2].Variants
	if skills.Hidden.Scale != 0.8 || skills.Visible.Opacity != 0.8 {
		t.Errorf("skills = %+v", skills)
	}

	contact := c.Sections[3]
	exit := contact.Children[0].Variants.TransitionFor(PhaseVisible, PhaseHidden)
	if exit.Duration != 300*time.Millisecond {
		t.Errorf("heading exit = %v, want 300ms", exit.Duration)
	}
	if !contact.Interactive[2].Fixed {
		t.Error("menu region should be fixed")
	}
	if _, ok := contact.Interactive[1].Shape.(HitCircle); !ok {
		t.Errorf("github shape = %T, want HitCircle", contact.Interactive[1].Shape)
	}
}

func TestParseContentDefaults(t *testing.T) {
	c, err := ParseContent([]byte(`
sections:
  - id: plain
    children:
      - id: a
`))
	if err != nil {
		t.Fatal(err)
	}
	s := c.Sections[0]
	if s.Threshold != defaultThreshold || s.TriggerOnce {
		t.Errorf("defaults = %v/%v", s.Threshold, s.TriggerOnce)
	}
	v := s.Children[0].Variants
	if v.Hidden.TranslateY != defaultDistance || v.Visible.Transition.Easing != EaseOut {
		t.Errorf("child defaults = %+v", v)
	}
}

func TestParseContentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown field", "sections:\n  - id: a\n    colour: red\n", "colour"},
		{"unknown preset", "sections:\n  - id: a\n    children:\n      - preset: spin\n", "unknown preset"},
		{"unknown easing", "sections:\n  - id: a\n    children:\n      - transition: {ease: wobble}\n", "unknown easing"},
		{"short bezier", "sections:\n  - id: a\n    children:\n      - transition: {ease: [0.1, 0.2]}\n", "4 control points"},
		{"container duration", "sections:\n  - id: a\n    container: {duration: 0.5, staggerChildren: 0.1}\n", "duration"},
		{"child stagger", "sections:\n  - id: a\n    children:\n      - transition: {staggerChildren: 0.1}\n", "staggerChildren"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseContent([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestParseContentEmpty(t *testing.T) {
	c, err := ParseContent(nil)
	if err != nil || len(c.Sections) != 0 {
		t.Errorf("empty = %+v, %v", c, err)
	}
}

func TestContentValidate(t *testing.T) {
	c, err := ParseContent([]byte(`
sections:
  - id: a
    threshold: 0
  - id: a
  - id: b
    parallax:
      - {id: bg, factor: -1}
`))
	if err != nil {
		t.Fatal(err)
	}
	err = c.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	for _, want := range []string{"threshold", "duplicate", "factor"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("err %q missing %q", err, want)
		}
	}
}

func TestMountContentJoinsErrors(t *testing.T) {
	c, _ := ParseContent([]byte(`
sections:
  - id: ok
  - id: bad
    threshold: 2
`))
	p := NewPage(PageOptions{})
	err := p.MountContent(c)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v", err)
	}
	if p.Section("ok").Inert() || !p.Section("bad").Inert() {
		t.Error("only the bad section should be inert")
	}
}
