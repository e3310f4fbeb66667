package folio

import (
	"errors"
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseIn, EaseOut, EaseInOut, EaseQuintOut, {}} {
		if e.At(0) != 0 || e.At(1) != 1 {
			t.Errorf("%s: At(0)=%f At(1)=%f, want 0/1", e, e.At(0), e.At(1))
		}
	}
}

func TestEasingNamedCurves(t *testing.T) {
	tests := []struct {
		e    Easing
		p    float64
		want float64
	}{
		{EaseLinear, 0.3, 0.3},
		{Easing{}, 0.3, 0.3},
		{EaseOut, 0.5, 0.875},
		{EaseIn, 0.5, 0.125},
		{EaseInOut, 0.5, 0.5},
	}
	for _, tt := range tests {
		if got := tt.e.At(tt.p); math.Abs(got-tt.want) > 1e-5 {
			t.Errorf("%s.At(%v) = %f, want ~%f", tt.e, tt.p, got, tt.want)
		}
	}
}

func TestCubicBezier(t *testing.T) {
	// CSS "ease"
	cssEase := CubicBezier(0.25, 0.1, 0.25, 1)
	if got := cssEase.At(0.5); math.Abs(got-0.8024) > 1e-3 {
		t.Errorf("ease.At(0.5) = %f, want ~0.8024", got)
	}

	diagonal := CubicBezier(0.3, 0.3, 0.7, 0.7)
	for _, p := range []float64{0.1, 0.42, 0.9} {
		if got := diagonal.At(p); math.Abs(got-p) > 1e-9 {
			t.Errorf("diagonal.At(%v) = %f", p, got)
		}
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		got := EaseQuintOut.At(float64(i) / 100)
		if got < prev-1e-9 {
			t.Fatalf("EaseQuintOut not monotonic at %d: %f < %f", i, got, prev)
		}
		prev = got
	}
	if EaseQuintOut.At(0.5) <= 0.5 {
		t.Errorf("EaseQuintOut.At(0.5) = %f, want > 0.5", EaseQuintOut.At(0.5))
	}
}

func TestEasingFuncMatchesAt(t *testing.T) {
	fn := EaseQuintOut.Func()
	got := fn(0.25, 10, 20, 0.5)
	want := 10 + 20*EaseQuintOut.At(0.5)
	if math.Abs(float64(got)-want) > 1e-3 {
		t.Errorf("Func = %f, want ~%f", got, want)
	}
}

func TestParseEasing(t *testing.T) {
	e, err := ParseEasing("easeOut")
	if err != nil || e != EaseOut {
		t.Errorf("ParseEasing(easeOut) = %v, %v", e, err)
	}
	if _, err := ParseEasing("wobble"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseEasing(wobble) err = %v, want ErrInvalidConfig", err)
	}
}

func TestEasingValidate(t *testing.T) {
	if err := EaseQuintOut.Validate(); err != nil {
		t.Errorf("EaseQuintOut.Validate() = %v", err)
	}
	if err := CubicBezier(0.68, -0.6, 0.32, 1.6).Validate(); err != nil {
		t.Errorf("overshooting y should be allowed: %v", err)
	}
	if err := CubicBezier(1.2, 0, 0.5, 1).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("x1 out of range err = %v", err)
	}
	if err := (Easing{name: "nope"}).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown name err = %v", err)
	}
}

func TestEasingString(t *testing.T) {
	if got := EaseQuintOut.String(); got != "cubic-bezier(0.22, 1, 0.36, 1)" {
		t.Errorf("String = %q", got)
	}
	if got := (Easing{}).String(); got != "linear" {
		t.Errorf("zero String = %q", got)
	}
}
