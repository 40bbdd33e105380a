package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#1a1a1B"))
	assert.False(t, IsHexColor("1a1a1b"))
	assert.True(t, IsHexColor("#fff"))
	assert.False(t, IsHexColor("#12345"))
	assert.False(t, IsHexColor("#1a1a1bff"))
	assert.False(t, IsHexColor("#ggg"))
	assert.False(t, IsHexColor(""))
	assert.False(t, IsHexColor("grey"))
}

func TestValidateHexColors(t *testing.T) {
	errs := ValidateHexColors("appearance.palette",
		NamedColor{Key: "background", Value: "#000000"},
		NamedColor{Key: "text", Value: "oops"},
		NamedColor{Key: "accent", Value: "#4ade80"},
		NamedColor{Key: "border", Value: ""},
	)

	assert.Equal(t, []string{
		`appearance.palette.text must be a hex color like #RRGGBB or #RGB (got "oops")`,
		`appearance.palette.border must be a hex color like #RRGGBB or #RGB (got "")`,
	}, errs)
}

func TestValidateHexColors_NoneIsValid(t *testing.T) {
	assert.Empty(t, ValidateHexColors("appearance.palette"))
}

func TestValidateKeyShortcut(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"ctrl+n", true},
		{"Ctrl+N", true},
		{"alt+shift+r", true},
		{"f2", true},
		{"x", true},
		{"", false},
		{"ctrl+", false},
		{"hyper+n", false},
		{"ctrl+n ctrl+m", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			errs := ValidateKeyShortcut("resize.activation_shortcut", tt.value)
			assert.Equal(t, tt.valid, len(errs) == 0, errs)
		})
	}
}
