// Package window plays the game in a desktop window with ebiten. It is only
// available in builds with the "ebiten" tag.
package window

import (
	"errors"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/ui"
)

var (
	ErrNotBuilt   = errors.New("window front end requires building with the 'ebiten' tag")
	ErrUnknownKey = errors.New("unknown key")
)

const (
	title = "Tic Tac Toe"

	defaultRestartKey = "enter"
	defaultQuitKey    = "escape"
)

type Options struct {
	Layout ui.Layout

	// RestartKey and QuitKey name keys the way the terminal front end does:
	// a single character or a key name such as "enter" or "esc".
	RestartKey string
	QuitKey    string
}

// keyNames - returns the restart and quit key names in ebiten's spelling.
func (that Options) keyNames() (string, string) {
	restart, quit := keyName(that.RestartKey), keyName(that.QuitKey)
	if restart == "" {
		restart = defaultRestartKey
	}
	if quit == "" {
		quit = defaultQuitKey
	}

	return restart, quit
}

func keyName(name string) string {
	if name == " " {
		return "space"
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	switch lower {
	case "esc":
		return "escape"
	case "return":
		return "enter"
	}

	return lower
}
