// Package entity contains domain entities for split-pane resizing.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBounds is returned when a ResizeConfig violates
// 0 <= Min <= Initial <= Max <= 100.
var ErrInvalidBounds = errors.New("invalid resize bounds")

// Axis identifies the direction a divider travels along.
type Axis int

const (
	AxisHorizontal Axis = iota // Divider moves left/right, splits width
	AxisVertical               // Divider moves up/down, splits height
)

// Valid reports whether a is a known axis.
func (a Axis) Valid() bool {
	return a == AxisHorizontal || a == AxisVertical
}

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ResizeConfig holds the default share and bounds of the primary panel
// along one axis, in percent of the container.
type ResizeConfig struct {
	Initial float64
	Min     float64
	Max     float64
}

// DefaultHorizontalResize returns the bounds used for left/right splits.
func DefaultHorizontalResize() ResizeConfig {
	return ResizeConfig{Initial: 50, Min: 20, Max: 80}
}

// DefaultVerticalResize returns the bounds used for top/bottom splits.
func DefaultVerticalResize() ResizeConfig {
	return ResizeConfig{Initial: 50, Min: 30, Max: 70}
}

// NewResizeConfig builds a validated ResizeConfig.
func NewResizeConfig(initial, minShare, maxShare float64) (ResizeConfig, error) {
	cfg := ResizeConfig{Initial: initial, Min: minShare, Max: maxShare}
	if err := cfg.Validate(); err != nil {
		return ResizeConfig{}, err
	}
	return cfg, nil
}

// MustResizeConfig is like NewResizeConfig but panics on invalid bounds.
// Use it for bounds known at compile time.
func MustResizeConfig(initial, minShare, maxShare float64) ResizeConfig {
	cfg, err := NewResizeConfig(initial, minShare, maxShare)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks 0 <= Min <= Initial <= Max <= 100.
func (c ResizeConfig) Validate() error {
	if !isFinite(c.Initial) || !isFinite(c.Min) || !isFinite(c.Max) {
		return fmt.Errorf("%w: values must be finite (initial=%g min=%g max=%g)", ErrInvalidBounds, c.Initial, c.Min, c.Max)
	}
	if c.Min < 0 || c.Max > 100 {
		return fmt.Errorf("%w: min and max must be within [0, 100] (min=%g max=%g)", ErrInvalidBounds, c.Min, c.Max)
	}
	if c.Min > c.Max {
		return fmt.Errorf("%w: min %g is greater than max %g", ErrInvalidBounds, c.Min, c.Max)
	}
	if c.Initial < c.Min || c.Initial > c.Max {
		return fmt.Errorf("%w: initial %g is outside [%g, %g]", ErrInvalidBounds, c.Initial, c.Min, c.Max)
	}
	return nil
}

// IsZero reports whether c is the zero value, which callers treat as
// "use the defaults".
func (c ResizeConfig) IsZero() bool {
	return c == ResizeConfig{}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
