package folio

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Easing is a timing curve: either a named curve or a CSS-style cubic
// bezier. The zero Easing is linear.
type Easing struct {
	name     string
	bezier   [4]float64
	isBezier bool
}

// Named curves. The cubic family matches the feel of the browser defaults.
var (
	EaseLinear    = Easing{name: "linear"}
	EaseIn        = Easing{name: "easeIn"}
	EaseOut       = Easing{name: "easeOut"}
	EaseInOut     = Easing{name: "easeInOut"}
	EaseBackOut   = Easing{name: "backOut"}
	EaseCircOut   = Easing{name: "circOut"}
	EaseOutExpo   = Easing{name: "expoOut"}
	EaseQuintOut  = CubicBezier(0.22, 1, 0.36, 1)
	namedEasings  = map[string]Easing{}
	namedTweenFns = map[string]ease.TweenFunc{
		"linear":    ease.Linear,
		"easeIn":    ease.InCubic,
		"easeOut":   ease.OutCubic,
		"easeInOut": ease.InOutCubic,
		"backOut":   ease.OutBack,
		"circOut":   ease.OutCirc,
		"expoOut":   ease.OutExpo,
	}
)

func init() {
	for _, e := range []Easing{EaseLinear, EaseIn, EaseOut, EaseInOut, EaseBackOut, EaseCircOut, EaseOutExpo} {
		namedEasings[e.name] = e
	}
}

// CubicBezier returns a cubic-bezier(x1, y1, x2, y2) curve.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return Easing{bezier: [4]float64{x1, y1, x2, y2}, isBezier: true}
}

// ParseEasing looks up a named curve.
func ParseEasing(name string) (Easing, error) {
	if e, ok := namedEasings[name]; ok {
		return e, nil
	}
	return Easing{}, fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, name)
}

// IsBezier reports whether e is a cubic bezier curve.
func (e Easing) IsBezier() bool {
	return e.isBezier
}

// Bezier returns the control points of a bezier curve.
func (e Easing) Bezier() [4]float64 {
	return e.bezier
}

func (e Easing) String() string {
	if e.isBezier {
		b := e.bezier
		return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", b[0], b[1], b[2], b[3])
	}
	if e.name == "" {
		return "linear"
	}
	return e.name
}

// Validate rejects bezier curves whose x control points leave [0, 1]
// (the curve would not be a function of time).
func (e Easing) Validate() error {
	if !e.isBezier {
		if e.name != "" {
			if _, ok := namedTweenFns[e.name]; !ok {
				return fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, e.name)
			}
		}
		return nil
	}
	for _, x := range []float64{e.bezier[0], e.bezier[2]} {
		if math.IsNaN(x) || x < 0 || x > 1 {
			return &ConfigError{Field: "easing x control point", Value: x, Reason: "must be in [0, 1]"}
		}
	}
	return nil
}

// Func returns the curve as a gween easing function.
func (e Easing) Func() ease.TweenFunc {
	if !e.isBezier {
		if fn, ok := namedTweenFns[e.name]; ok {
			return fn
		}
		return ease.Linear
	}
	b := e.bezier
	return func(t, begin, change, d float32) float32 {
		if d <= 0 {
			return begin + change
		}
		p := bezierAt(b, float64(t/d))
		return begin + change*float32(p)
	}
}

// At returns the eased progress for linear progress p in [0, 1].
func (e Easing) At(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if e.isBezier {
		return bezierAt(e.bezier, p)
	}
	return float64(e.Func()(float32(p), 0, 1, 1))
}

// bezierAt solves x(t) = x for t, then returns y(t). Newton iterations
// first, bisection when the slope is too flat.
func bezierAt(b [4]float64, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	x1, y1, x2, y2 := b[0], b[1], b[2], b[3]
	if x1 == y1 && x2 == y2 {
		return x
	}
	coord := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	slope := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
	}

	const epsilon = 1e-7
	t := x
	for i := 0; i < 8; i++ {
		dx := coord(t, x1, x2) - x
		if math.Abs(dx) < epsilon {
			return coord(t, y1, y2)
		}
		d := slope(t, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
		if t < 0 || t > 1 {
			break
		}
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 50; i++ {
		cx := coord(t, x1, x2)
		if math.Abs(cx-x) < epsilon {
			break
		}
		if cx < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return coord(t, y1, y2)
}
