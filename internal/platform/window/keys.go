package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// specialKeys maps Ebiten keys to binding names that differ from Key.String.
var specialKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
	ebiten.KeySpace:      "space",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyShiftLeft:  "shift",
	ebiten.KeyShiftRight: "shift",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyTab:        "tab",
}

// KeyName returns the binding name for an Ebiten key.
func KeyName(k ebiten.Key) (string, bool) {
	if name, ok := specialKeys[k]; ok {
		return name, true
	}

	s := k.String()
	if digit, ok := strings.CutPrefix(s, "Digit"); ok && len(digit) == 1 {
		return digit, true
	}
	if len(s) == 1 {
		return strings.ToLower(s), true
	}
	return "", false
}
