// Package drift implements the 2D timeline prototype: a square moved with
// the arrow keys over a background whose color is the active timeline.
package drift

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/chronoshift/internal/config"
	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/input"
	"github.com/vovakirdan/chronoshift/internal/registry"
	"github.com/vovakirdan/chronoshift/internal/save"
	"github.com/vovakirdan/chronoshift/internal/timeline"
)

// PlayerChar is the glyph used to fill the player square.
const PlayerChar = '█'

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the drift prototype.
type Game struct {
	cfg      config.DriftConfig
	runtime  core.RuntimeConfig
	bindings input.Bindings
	switcher *timeline.Switcher
	backdrop *Backdrop

	x, y    float64 // top-left corner in world units
	heading float64 // degrees, 0 = right, 90 = up
	tick    uint64
}

// New creates a new drift game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "drift"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Drift (2D)"
}

// Reset loads config, builds the timelines and centers the player.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDrift(configPath)
	if err != nil {
		cfg = config.DefaultDriftConfig()
	}
	g.cfg = cfg

	bindings, err := cfg.Input.ResolveBindings(config.DriftBindings())
	if err != nil {
		bindings = config.DriftBindings()
	}
	g.bindings = bindings

	timelines, err := config.BuildTimelines(cfg.Timelines)
	if err != nil {
		timelines, _ = config.BuildTimelines(config.DefaultDriftConfig().Timelines)
	}
	state, _ := timeline.New(timelines...)

	g.backdrop = NewBackdrop()
	g.switcher = timeline.NewSwitcher(state, g.backdrop)
	g.switcher.Sync()

	g.x = (cfg.World.Width - cfg.Player.Size) / 2
	g.y = (cfg.World.Height - cfg.Player.Size) / 2
	g.heading = 0
	g.tick = 0
}

// Step moves the player according to the held direction keys.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var dx, dy float64
	if in.Has(core.ActionMoveForward) {
		dy--
	}
	if in.Has(core.ActionMoveBackward) {
		dy++
	}
	if in.Has(core.ActionStrafeLeft) {
		dx--
	}
	if in.Has(core.ActionStrafeRight) {
		dx++
	}

	if dx != 0 || dy != 0 {
		speed := g.cfg.Player.Speed
		g.x = core.Clamp(g.x+dx*speed, 0, g.cfg.World.Width-g.cfg.Player.Size)
		g.y = core.Clamp(g.y+dy*speed, 0, g.cfg.World.Height-g.cfg.Player.Size)
		g.heading = normalizeHeading(math.Atan2(-dy, dx) * 180 / math.Pi)
	}

	return core.StepResult{State: g.State()}
}

// normalizeHeading maps degrees into (-180, 180].
func normalizeHeading(d float64) float64 {
	d = math.Mod(d, 360)
	switch {
	case d <= -180:
		d += 360
	case d > 180:
		d -= 360
	}
	return d
}

// Render draws the player square over the timeline background.
func (g *Game) Render(dst *core.Screen) {
	dst.SetBackground(g.backdrop.Color())

	w, h := dst.Width(), dst.Height()
	px := core.Scale(g.x, g.cfg.World.Width, w)
	py := core.Scale(g.y, g.cfg.World.Height, h)
	pw := max(1, int(g.cfg.Player.Size/g.cfg.World.Width*float64(w)))
	ph := max(1, int(g.cfg.Player.Size/g.cfg.World.Height*float64(h)))

	for y := py; y < py+ph; y++ {
		for x := px; x < px+pw; x++ {
			dst.SetColored(x, y, PlayerChar, core.ColorBrightWhite)
		}
	}

	if h > 2 {
		info := fmt.Sprintf("x %.0f  y %.0f  heading %.0f", g.x, g.y, g.heading)
		dst.DrawTextColored(1, h-2, info, core.ColorGray)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Timeline: g.switcher.State().Current().Name()}
}

// Timeline returns the timeline switcher.
func (g *Game) Timeline() *timeline.Switcher {
	return g.switcher
}

// Transform returns the player transform.
func (g *Game) Transform() save.Transform {
	return g
}

// Bindings returns the resolved key bindings.
func (g *Game) Bindings() input.Bindings {
	return g.bindings
}

// HoldWindows returns the terminal key-hold timings.
func (g *Game) HoldWindows() (initial, repeat time.Duration) {
	return time.Duration(g.cfg.Input.HoldInitial) * time.Millisecond,
		time.Duration(g.cfg.Input.HoldRepeat) * time.Millisecond
}

// Pose returns position [x, y] and heading [degrees].
func (g *Game) Pose() save.Pose {
	return save.Pose{
		Position: []float64{g.x, g.y},
		Heading:  []float64{g.heading},
	}
}

// CheckPose rejects a position that would put the square outside the world.
func (g *Game) CheckPose(p save.Pose) error {
	if len(p.Position) != 2 {
		return fmt.Errorf("drift: position needs 2 components, got %d", len(p.Position))
	}
	maxX := g.cfg.World.Width - g.cfg.Player.Size
	maxY := g.cfg.World.Height - g.cfg.Player.Size
	x, y := p.Position[0], p.Position[1]
	if x < 0 || x > maxX || y < 0 || y > maxY {
		return fmt.Errorf("drift: position (%v, %v) outside [0, %v]x[0, %v]", x, y, maxX, maxY)
	}
	return nil
}

// SetPose moves the player. Callers check the pose with CheckPose first.
func (g *Game) SetPose(p save.Pose) {
	if len(p.Position) == 2 {
		g.x, g.y = p.Position[0], p.Position[1]
	}
	if len(p.Heading) == 1 {
		g.heading = normalizeHeading(p.Heading[0])
	}
}

// Backdrop returns the background presenter.
func (g *Game) Backdrop() *Backdrop {
	return g.backdrop
}

func init() {
	registry.Register("drift", func() registry.Game {
		return New()
	})
}
