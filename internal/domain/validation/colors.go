// Package validation holds value checks shared by the config layer.
package validation

import "github.com/lucasb-eyer/go-colorful"

// NamedColor pairs a config key with its value.
type NamedColor struct {
	Key   string
	Value string
}

// IsHexColor reports whether value is a #RRGGBB or #RGB color, the forms
// lipgloss renders.
func IsHexColor(value string) bool {
	// colorful.Hex ignores trailing input
	if len(value) != 7 && len(value) != 4 {
		return false
	}
	_, err := colorful.Hex(value)
	return err == nil
}

// ValidateHexColors returns one message per color that is not a hex color, in
// the order given.
func ValidateHexColors(prefix string, colors ...NamedColor) []string {
	var errs []string
	for _, c := range colors {
		if !IsHexColor(c.Value) {
			errs = append(errs, prefix+"."+c.Key+" must be a hex color like #RRGGBB or #RGB (got \""+c.Value+"\")")
		}
	}
	return errs
}
