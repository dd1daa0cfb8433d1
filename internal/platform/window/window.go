// Package window provides a desktop frontend built on Ebiten. Unlike a
// terminal it reports real key releases and relative mouse motion, so held
// keys and pointer look need no synthesis.
package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/input"
	"github.com/vovakirdan/chronoshift/internal/registry"
	"github.com/vovakirdan/chronoshift/internal/session"
)

// Debug font cell size in pixels.
const (
	CellW = 6
	CellH = 16
)

// Frontend implements ebiten.Game around a session.
type Frontend struct {
	session *session.Session
	screen  *core.Screen
	look    bool // capture the cursor for pointer look while active

	keys         []ebiten.Key
	lastX, lastY int
	cursorSeen   bool
}

// New creates a frontend. Options are shared with the terminal session.
func New(game registry.Game, cfg core.RuntimeConfig, opts session.Options, look bool) *Frontend {
	return &Frontend{
		session: session.New(game, cfg, opts),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		look:    look,
	}
}

// Session returns the running session.
func (f *Frontend) Session() *session.Session {
	return f.session
}

// Update feeds this frame's input and advances one tick.
func (f *Frontend) Update() error {
	f.feedKeys()
	f.feedPointer()

	f.session.Update()
	if f.session.Quit() {
		return ebiten.Termination
	}

	f.updateCursorMode()
	return nil
}

func (f *Frontend) feedKeys() {
	f.keys = inpututil.AppendJustPressedKeys(f.keys[:0])
	for _, k := range f.keys {
		if name, ok := KeyName(k); ok {
			f.session.Feed(input.KeyDown(name))
		}
	}

	f.keys = inpututil.AppendJustReleasedKeys(f.keys[:0])
	for _, k := range f.keys {
		name, ok := KeyName(k)
		if !ok {
			continue
		}
		// Both shift keys share one name; release only when neither is down.
		if name == "shift" && (ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)) {
			continue
		}
		f.session.Feed(input.KeyUp(name))
	}
}

func (f *Frontend) feedPointer() {
	x, y := ebiten.CursorPosition()
	if f.cursorSeen && (x != f.lastX || y != f.lastY) {
		f.session.Feed(input.Pointer(float64(x-f.lastX), float64(y-f.lastY)))
	}
	f.lastX, f.lastY = x, y
	f.cursorSeen = true
}

func (f *Frontend) updateCursorMode() {
	if !f.look {
		return
	}
	want := ebiten.CursorModeCaptured
	if f.session.Paused() {
		want = ebiten.CursorModeVisible
	}
	if ebiten.CursorMode() != want {
		ebiten.SetCursorMode(want)
		f.cursorSeen = false
	}
}

// Draw paints the background color and the character screen.
func (f *Frontend) Draw(dst *ebiten.Image) {
	f.session.Render(f.screen)
	c := f.screen.Background()
	dst.Fill(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})

	for y := 0; y < f.screen.Height(); y++ {
		ebitenutil.DebugPrintAt(dst, f.screen.Row(y), 0, y*CellH)
	}
}

// Layout sizes the character screen to the window.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	f.screen.Resize(max(1, outsideWidth/CellW), max(1, outsideHeight/CellH))
	return outsideWidth, outsideHeight
}

// pointerLook is implemented by games steered with the mouse.
type pointerLook interface {
	PointerLook() bool
}

// Run opens a window and runs the game until it quits or the window closes.
func Run(game registry.Game, cfg core.RuntimeConfig, opts session.Options) error {
	pl, ok := game.(pointerLook)
	look := ok && pl.PointerLook()
	f := New(game, cfg, opts, look)

	ebiten.SetWindowSize(cfg.ScreenW*CellW, cfg.ScreenH*CellH)
	ebiten.SetWindowTitle("chronoshift - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)
	if look {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	if err := ebiten.RunGame(f); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
