// internal/api/icons_test.go
package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovieIcon(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"The Prison Escape", "⛓️"},
		{"THE PRISON ESCAPE", "⛓️"},
		{"The Family Boss", "🕴️"},
		{"Dream Heist", "💭"},
		{"Completely Unrelated Title", "🎬"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, movieIcon(tt.name), "name %q", tt.name)
	}
}
