package explore

import (
	"math"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/chronoshift/internal/config"
)

// ArriveDistance is how close an NPC must get before heading to the next waypoint.
const ArriveDistance = 0.1

// NPC patrols a closed loop of waypoints on the ground plane.
type NPC struct {
	Name  string
	Glyph rune
	Speed float64 // meters per second

	pos    mgl64.Vec3
	path   []mgl64.Vec3
	target int
}

// NewNPC places the NPC on its first waypoint, heading for the second.
func NewNPC(cfg config.NPCConfig) *NPC {
	glyph, _ := utf8.DecodeRuneInString(cfg.Glyph)
	if glyph == utf8.RuneError {
		glyph = '@'
	}
	n := &NPC{Name: cfg.Name, Glyph: glyph, Speed: cfg.Speed}
	for _, wp := range cfg.Path {
		n.path = append(n.path, mgl64.Vec3{wp.X, 0, wp.Z})
	}
	if len(n.path) > 0 {
		n.pos = n.path[0]
	}
	return n
}

// Pos returns the NPC position.
func (n *NPC) Pos() mgl64.Vec3 {
	return n.pos
}

// Target returns the index of the waypoint the NPC is walking to.
func (n *NPC) Target() int {
	return n.target
}

// Step walks toward the current waypoint for dt seconds. Once within
// ArriveDistance the target moves to the next waypoint, wrapping to the
// first after the last.
func (n *NPC) Step(dt float64) {
	if len(n.path) == 0 {
		return
	}
	dir := n.path[n.target].Sub(n.pos)
	dist := dir.Len()
	if dist < ArriveDistance {
		n.target = (n.target + 1) % len(n.path)
		return
	}
	n.pos = n.pos.Add(dir.Normalize().Mul(math.Min(n.Speed*dt, dist)))
}
