package ebitenhost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/platformer/internal/application/input"
)

func TestDefaultKeys_CoverEveryButton(t *testing.T) {
	for _, b := range input.Buttons {
		_, ok := DefaultKeys[b]
		assert.True(t, ok, "no key for %s", b)
	}
}

func TestKeyboard_IsTextSource(t *testing.T) {
	assert.Implements(t, (*input.TextSource)(nil), NewKeyboard())
}
