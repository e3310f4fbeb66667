package folio

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// scriptStep is a single host signal in a replay script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Section string  `json:"section,omitempty"`
	Region  string  `json:"region,omitempty"`
	Target  string  `json:"target,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Ratio   float64 `json:"ratio,omitempty"`
	In      bool    `json:"in,omitempty"`
	MS      float64 `json:"ms,omitempty"`
}

type scriptDoc struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a recorded sequence of host signals. Replaying it against a
// Page is deterministic, which makes it useful for tests and for previewing
// content without a browser.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON replay script.
func LoadScript(jsonData []byte) (*Script, error) {
	var doc scriptDoc
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("parse replay script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("parse replay script: no steps")
	}
	for i, st := range doc.Steps {
		if _, ok := replayActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse replay script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: doc.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

type replayAction func(p *Page, st scriptStep) error

var replayActions = map[string]replayAction{
	"scroll": func(p *Page, st scriptStep) error {
		p.OnScroll(st.Y)
		return nil
	},
	"move": func(p *Page, st scriptStep) error {
		p.OnPointerMove(st.X, st.Y)
		return nil
	},
	"enter": func(p *Page, _ scriptStep) error {
		p.OnPointerEnterViewport()
		return nil
	},
	"leave": func(p *Page, _ scriptStep) error {
		p.OnPointerLeaveViewport()
		return nil
	},
	"viewport": func(p *Page, st scriptStep) error {
		p.SetViewport(st.Width, st.Height)
		return nil
	},
	"cross": func(p *Page, st scriptStep) error {
		s, err := replaySection(p, st)
		if err != nil {
			return err
		}
		s.Cross(st.In)
		return nil
	},
	"observe": func(p *Page, st scriptStep) error {
		s, err := replaySection(p, st)
		if err != nil {
			return err
		}
		s.Observe(st.Ratio)
		return nil
	},
	"hover": func(p *Page, st scriptStep) error {
		h, err := replayRegion(p, st)
		if err != nil {
			return err
		}
		p.pointer.EnterRegion(h)
		return nil
	},
	"unhover": func(p *Page, st scriptStep) error {
		h, err := replayRegion(p, st)
		if err != nil {
			return err
		}
		p.pointer.LeaveRegion(h)
		return nil
	},
	"toggle": func(p *Page, _ scriptStep) error {
		p.ToggleMobileMenu()
		return nil
	},
	"close": func(p *Page, _ scriptStep) error {
		p.CloseMobileMenu()
		return nil
	},
	"link": func(p *Page, st scriptStep) error {
		p.ActivateLink(st.Target)
		return nil
	},
	"wait": func(p *Page, st scriptStep) error {
		p.Update(time.Duration(math.Round(st.MS * float64(time.Millisecond))))
		return nil
	},
	"unmount": func(p *Page, st scriptStep) error {
		s, err := replaySection(p, st)
		if err != nil {
			return err
		}
		s.Dispose()
		return nil
	},
	// snapshot is handled by Run.
	"snapshot": nil,
}

func replaySection(p *Page, st scriptStep) (*Section, error) {
	s := p.Section(st.Section)
	if s == nil {
		return nil, fmt.Errorf("unknown section %q", st.Section)
	}
	return s, nil
}

func replayRegion(p *Page, st scriptStep) (RegionHandle, error) {
	s, err := replaySection(p, st)
	if err != nil {
		return RegionHandle{}, err
	}
	h, ok := s.Region(st.Region)
	if !ok {
		return RegionHandle{}, fmt.Errorf("unknown region %q in section %q", st.Region, st.Section)
	}
	return h, nil
}

// Run replays every step against p and returns the snapshots taken by
// "snapshot" steps, in order.
func (s *Script) Run(p *Page) ([]Snapshot, error) {
	var snaps []Snapshot
	for i, st := range s.steps {
		if st.Action == "snapshot" {
			snaps = append(snaps, p.Snapshot(st.Label))
			continue
		}
		if err := replayActions[st.Action](p, st); err != nil {
			return snaps, fmt.Errorf("replay step %d (%s): %w", i, st.Action, err)
		}
	}
	return snaps, nil
}
