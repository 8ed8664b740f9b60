package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var ErrUnknownKey = errors.New("unknown key")

// Binding is either a named key (Enter, Esc, Ctrl-R...) or a single rune.
type Binding struct {
	Key  tcell.Key
	Rune rune
}

type Keys struct {
	Restart Binding
	Quit    Binding
}

// ParseBinding - accepts a single character or a tcell key name, case-insensitive.
func ParseBinding(name string) (Binding, error) {
	if runes := []rune(name); len(runes) == 1 {
		return Binding{Key: tcell.KeyRune, Rune: runes[0]}, nil
	}

	lower := strings.ToLower(name)
	switch lower {
	case "space":
		return Binding{Key: tcell.KeyRune, Rune: ' '}, nil
	case "escape":
		lower = "esc"
	case "return":
		lower = "enter"
	}

	for key, keyName := range tcell.KeyNames {
		if strings.ToLower(keyName) == lower {
			return Binding{Key: key}, nil
		}
	}

	return Binding{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

func (that Binding) Matches(ev *tcell.EventKey) bool {
	if that.Key == tcell.KeyRune {
		return ev.Key() == tcell.KeyRune && ev.Rune() == that.Rune
	}
	return ev.Key() == that.Key
}

func (that Binding) String() string {
	if that.Key == tcell.KeyRune {
		if that.Rune == ' ' {
			return "Space"
		}
		return string(that.Rune)
	}
	if name, ok := tcell.KeyNames[that.Key]; ok {
		return name
	}
	return fmt.Sprintf("Key[%d]", that.Key)
}
