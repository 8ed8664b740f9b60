package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_KeyNames(t *testing.T) {
	t.Run("Defaults to Enter and Escape", func(t *testing.T) {
		restart, quit := Options{}.keyNames()

		assert.Equal(t, "enter", restart)
		assert.Equal(t, "escape", quit)
	})

	t.Run("Configured keys are used", func(t *testing.T) {
		// Given: keys configured with terminal-style names
		opts := Options{RestartKey: "R", QuitKey: "Esc"}

		// When: they are translated
		restart, quit := opts.keyNames()

		// Then: ebiten key names come out
		assert.Equal(t, "r", restart)
		assert.Equal(t, "escape", quit)
	})

	t.Run("Aliases", func(t *testing.T) {
		for name, expected := range map[string]string{
			"return": "enter",
			"Enter":  "enter",
			" ":      "space",
			"Space":  "space",
			"tab":    "tab",
		} {
			assert.Equal(t, expected, keyName(name), name)
		}
	})
}
