package folio

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned (wrapped in a *ConfigError) when a threshold,
// factor, or duration is out of range. Registration fails fast instead of
// clamping so authoring mistakes surface immediately.
var ErrInvalidConfig = errors.New("folio: invalid configuration")

// ConfigError describes a single rejected configuration value.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("folio: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) succeed.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func checkThreshold(t float64) error {
	if math.IsNaN(t) || t <= 0 || t > 1 {
		return &ConfigError{Field: "threshold", Value: t, Reason: "must be in (0, 1]"}
	}
	return nil
}

func checkFactor(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return &ConfigError{Field: "factor", Value: f, Reason: "must be a finite value >= 0"}
	}
	return nil
}

func checkDuration(field string, d time.Duration) error {
	if d < 0 {
		return &ConfigError{Field: field, Value: d.Seconds(), Reason: "must be >= 0"}
	}
	return nil
}
