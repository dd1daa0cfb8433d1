// Package explore implements the 3D timeline prototype: a first-person
// walker whose surroundings are swapped between environments, drawn as a
// top-down map around the player.
package explore

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/chronoshift/internal/config"
	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/input"
	"github.com/vovakirdan/chronoshift/internal/registry"
	"github.com/vovakirdan/chronoshift/internal/save"
	"github.com/vovakirdan/chronoshift/internal/timeline"
)

// MaxPitch limits looking up and down, in degrees.
const MaxPitch = 80.0

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the explore prototype.
type Game struct {
	cfg      config.ExploreConfig
	runtime  core.RuntimeConfig
	bindings input.Bindings
	switcher *timeline.Switcher
	scene    *Scene
	npcs     []*NPC

	pos              mgl64.Vec3
	yaw, pitch, roll float64 // degrees; yaw 0 faces -Z, positive turns right
	velY             float64
	grounded         bool
	tick             uint64
}

// New creates a new explore game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "explore"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Explore (3D)"
}

// Reset loads config, builds the environments and places the player at spawn.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadExplore(configPath)
	if err != nil {
		cfg = config.DefaultExploreConfig()
	}
	g.cfg = cfg

	bindings, err := cfg.Input.ResolveBindings(config.ExploreBindings())
	if err != nil {
		bindings = config.ExploreBindings()
	}
	g.bindings = bindings

	timelines, err := config.BuildTimelines(cfg.Timelines)
	if err != nil {
		g.cfg = config.DefaultExploreConfig()
		timelines, _ = config.BuildTimelines(g.cfg.Timelines)
	}
	state, _ := timeline.New(timelines...)

	g.scene = NewScene(g.cfg.Environments)
	g.switcher = timeline.NewSwitcher(state, g.scene)
	g.switcher.Sync()

	g.npcs = nil
	for _, nc := range g.cfg.NPCs {
		g.npcs = append(g.npcs, NewNPC(nc))
	}

	spawn := g.cfg.Player.Spawn
	g.pos = mgl64.Vec3{spawn[0], spawn[1], spawn[2]}
	g.yaw, g.pitch, g.roll = 0, 0, 0
	g.velY = 0
	g.grounded = g.pos.Y() <= 0
	g.tick = 0
}

// orientation returns the yaw-only rotation used for walking.
func (g *Game) orientation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(-g.yaw), mgl64.Vec3{0, 1, 0})
}

// Forward returns the horizontal unit vector the player faces.
func (g *Game) Forward() mgl64.Vec3 {
	return g.orientation().Rotate(mgl64.Vec3{0, 0, -1})
}

// Right returns the horizontal unit vector to the player's right.
func (g *Game) Right() mgl64.Vec3 {
	return g.orientation().Rotate(mgl64.Vec3{1, 0, 0})
}

// Step applies look, walking, jumping and gravity for one tick, then moves
// the NPCs along their paths.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	dt := g.runtime.DeltaTime()
	p := g.cfg.Player

	// Look
	g.yaw = wrapDegrees(g.yaw + in.LookDX*p.MouseSensitivity)
	g.pitch = core.Clamp(g.pitch-in.LookDY*p.MouseSensitivity, -MaxPitch, MaxPitch)

	// Walk
	var fwd, side float64
	if in.Has(core.ActionMoveForward) {
		fwd++
	}
	if in.Has(core.ActionMoveBackward) {
		fwd--
	}
	if in.Has(core.ActionStrafeRight) {
		side++
	}
	if in.Has(core.ActionStrafeLeft) {
		side--
	}
	dir := g.Forward().Mul(fwd).Add(g.Right().Mul(side))
	if dir.Len() > 0 {
		speed := p.WalkSpeed
		if in.Sprint {
			speed *= p.SprintMultiplier
		}
		g.pos = g.pos.Add(dir.Normalize().Mul(speed * dt))
	}

	// Jump is edge-triggered and only from the ground
	if in.Count(core.ActionJump) > 0 && g.grounded {
		g.velY = p.JumpImpulse
		g.grounded = false
	}

	// Gravity
	if !g.grounded {
		g.velY -= p.Gravity * dt
		g.pos[1] += g.velY * dt
		if g.pos[1] <= 0 {
			g.pos[1] = 0
			g.velY = 0
			g.grounded = true
		}
	}

	for _, n := range g.npcs {
		n.Step(dt)
	}

	return core.StepResult{State: g.State()}
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// facingGlyph returns the map arrow for the current yaw.
func (g *Game) facingGlyph() rune {
	switch {
	case g.yaw >= 45 && g.yaw < 135:
		return '>'
	case g.yaw >= 135 && g.yaw < 225:
		return 'v'
	case g.yaw >= 225 && g.yaw < 315:
		return '<'
	default:
		return '^'
	}
}

// Render draws a top-down map of the visible environment centered on the player.
// One terminal cell is roughly twice as tall as wide, so x is doubled.
func (g *Game) Render(dst *core.Screen) {
	dst.SetBackground(core.RGBBlack)

	w, h := dst.Width(), dst.Height()
	cx, cy := w/2, h/2
	cpm := g.cfg.View.CellsPerMeter
	if cpm <= 0 {
		cpm = 1
	}

	for _, prop := range g.scene.Props() {
		rel := prop.Pos.Sub(g.pos)
		sx := cx + int(math.Round(rel.X()*cpm*2))
		sy := cy + int(math.Round(rel.Z()*cpm))
		dst.SetColored(sx, sy, prop.Glyph, core.ColorBrightGreen)
	}
	for _, n := range g.npcs {
		rel := n.Pos().Sub(g.pos)
		sx := cx + int(math.Round(rel.X()*cpm*2))
		sy := cy + int(math.Round(rel.Z()*cpm))
		dst.SetColored(sx, sy, n.Glyph, core.ColorBrightMagenta)
	}

	dst.SetColored(cx, cy, g.facingGlyph(), core.ColorBrightYellow)

	info := fmt.Sprintf("pos %.1f %.1f %.1f  yaw %.0f pitch %.0f", g.pos.X(), g.pos.Y(), g.pos.Z(), g.yaw, g.pitch)
	dst.DrawTextColored(1, h-2, info, core.ColorGray)
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

// PointerLook reports that the mouse steers the camera.
func (g *Game) PointerLook() bool {
	return true
}

// Pose returns position [x, y, z] and heading [yaw, pitch, roll].
func (g *Game) Pose() save.Pose {
	return save.Pose{
		Position: []float64{g.pos.X(), g.pos.Y(), g.pos.Z()},
		Heading:  []float64{g.yaw, g.pitch, g.roll},
	}
}

// CheckPose rejects a player below the ground or a pitch past MaxPitch.
func (g *Game) CheckPose(p save.Pose) error {
	if len(p.Position) != 3 || len(p.Heading) != 3 {
		return fmt.Errorf("explore: pose needs 3 position and 3 heading components, got %d/%d",
			len(p.Position), len(p.Heading))
	}
	if y := p.Position[1]; y < 0 {
		return fmt.Errorf("explore: position y %v is below the ground", y)
	}
	if pitch := p.Heading[1]; pitch < -MaxPitch || pitch > MaxPitch {
		return fmt.Errorf("explore: pitch %v outside [-%v, %v]", pitch, MaxPitch, MaxPitch)
	}
	return nil
}

// SetPose teleports the player and resets vertical motion. Callers check
// the pose with CheckPose first.
func (g *Game) SetPose(p save.Pose) {
	if len(p.Position) == 3 {
		g.pos = mgl64.Vec3{p.Position[0], p.Position[1], p.Position[2]}
	}
	if len(p.Heading) == 3 {
		g.yaw = wrapDegrees(p.Heading[0])
		g.pitch = p.Heading[1]
		g.roll = p.Heading[2]
	}
	g.velY = 0
	g.grounded = g.pos.Y() <= 0
}

// NPCs returns the patrolling characters.
func (g *Game) NPCs() []*NPC {
	return g.npcs
}

// Scene returns the environment presenter.
func (g *Game) Scene() *Scene {
	return g.scene
}

func init() {
	registry.Register("explore", func() registry.Game {
		return New()
	})
}
