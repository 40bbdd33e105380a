package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Short(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"release", Info{Version: "v1.2.0", Commit: "abcdef0123"}, "panes v1.2.0 (abcdef0)"},
		{"dev build", Info{Version: "dev", Commit: "abc"}, "panes dev (abc)"},
		{"no ldflags", Info{}, "panes dev (unknown)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}
