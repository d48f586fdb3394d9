package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := New()
		assert.Len(t, got, 9)
		for _, c := range got {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q in %q", c, got)
		}
	}
}

func TestNewMostlyDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[New()] = true
	}
	// No hard uniqueness guarantee, but collisions at this count would point
	// at a broken generator.
	assert.Greater(t, len(seen), 990)
}
