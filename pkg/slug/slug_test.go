package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Los Hackers", "los-hackers"},
		{"punctuation stripped", "Los Hackers!!", "los-hackers"},
		{"diacritics stripped", "Código Fácil", "codigo-facil"},
		{"whitespace collapsed", "  los\t hackers  ", "los-hackers"},
		{"hyphen runs collapsed", "los -- hackers", "los-hackers"},
		{"mixed case", "LoS HaCkErS", "los-hackers"},
		{"digits kept", "Team 42", "team-42"},
		{"underscore kept", "night_owls", "night_owls"},
		{"leading trailing hyphens trimmed", "-hackers-", "hackers"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
		{"enye", "Año Nuevo", "ano-nuevo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeDeterministic(t *testing.T) {
	// equal inputs always produce equal labels
	for i := 0; i < 10; i++ {
		assert.Equal(t, Make("Los Hackers!!"), Make("Los Hackers!!"))
	}
	// names differing only in casing, diacritics, or whitespace collide
	assert.Equal(t, Make("Los Hackers"), Make("  LOS   HÁCKERS!! "))
}
