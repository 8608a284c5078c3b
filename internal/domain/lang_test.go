package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameLanguage(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"en", "en", true},
		{"en", "EN", true},
		{"en", "en-US", true},
		{"pt", "pt-BR", true},
		{"en", "fr", false},
		{"zh", "ja", false},
		{"", "", true},
		{"not-a-lang!", "not-a-lang!", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SameLanguage(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "no_destinations_configured", Code(ErrNoDestinations))
	assert.Equal(t, "", Code(assert.AnError))
	assert.Equal(t, "", Code(nil))
}
