package validation

import (
	"regexp"
	"strings"
)

// Bubble Tea key names: an optional chain of modifiers then a key, e.g.
// "ctrl+n", "alt+shift+r", "f2", "x".
var keyShortcutRE = regexp.MustCompile(`^((ctrl|alt|shift)\+)*([a-z0-9]|f([1-9]|1[0-9]|20)|space|tab|enter|esc|home|end|pgup|pgdown|up|down|left|right)$`)

// ValidateKeyShortcut checks that value names a single key with optional
// modifiers.
func ValidateKeyShortcut(prefix, value string) []string {
	var errs []string
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		errs = append(errs, prefix+" cannot be empty")
		return errs
	}
	if !keyShortcutRE.MatchString(value) {
		errs = append(errs, prefix+" must be a key like ctrl+n, alt+r or f2 (got \""+value+"\")")
	}
	return errs
}
