package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyNames translates a Bubble Tea key message into the key names used by
// input.Bindings. Shifted keys are split into "shift" plus the base key so
// a terminal can drive the sprint modifier.
func KeyNames(msg tea.KeyMsg) []string {
	key := msg.String()

	switch key {
	case " ":
		return []string{"space"}
	case "esc":
		return []string{"escape"}
	}

	if base, ok := strings.CutPrefix(key, "shift+"); ok {
		return []string{"shift", base}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsUpper(msg.Runes[0]) {
		return []string{"shift", string(unicode.ToLower(msg.Runes[0]))}
	}

	return []string{key}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionSaves
	MenuActionDelete
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionSaves
	case "x", "delete":
		return MenuActionDelete
	}

	return MenuActionNone
}
