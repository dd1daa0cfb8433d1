package explore

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/chronoshift/internal/config"
	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/save"
)

const eps = 1e-9

func newGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.DefaultConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetShowsOnlyFirstEnvironment(t *testing.T) {
	g := newGame(t)
	s := g.Snapshot()

	if s.Timeline != "Present" {
		t.Errorf("Timeline = %s, expected Present", s.Timeline)
	}
	if !g.Scene().Visible("present") || g.Scene().Visible("past") || g.Scene().Visible("future") {
		t.Error("only the present environment should be visible")
	}
	if !s.Grounded || s.Y != 0 {
		t.Errorf("player should spawn on the ground, got y=%v grounded=%v", s.Y, s.Grounded)
	}
}

func TestSwitchCyclesEnvironments(t *testing.T) {
	g := newGame(t)
	expected := []string{"past", "future", "present"}

	for _, env := range expected {
		g.Timeline().OnSwitchCommand()
		for _, name := range []string{"present", "past", "future"} {
			if g.Scene().Visible(name) != (name == env) {
				t.Errorf("after switch to %s, Visible(%s) = %v", env, name, g.Scene().Visible(name))
			}
		}
	}
}

func TestDirectionVectors(t *testing.T) {
	g := newGame(t)

	f := g.Forward()
	if math.Abs(f.Z()+1) > eps || math.Abs(f.X()) > eps {
		t.Errorf("Forward() at yaw 0 = %v, expected (0, 0, -1)", f)
	}

	g.SetPose(save.Pose{Position: []float64{0, 0, 0}, Heading: []float64{90, 0, 0}})
	f = g.Forward()
	if math.Abs(f.X()-1) > eps || math.Abs(f.Z()) > eps {
		t.Errorf("Forward() at yaw 90 = %v, expected (1, 0, 0)", f)
	}
	r := g.Right()
	if math.Abs(r.Z()-1) > eps || math.Abs(r.X()) > eps {
		t.Errorf("Right() at yaw 90 = %v, expected (0, 0, 1)", r)
	}
}

func TestWalkAndSprint(t *testing.T) {
	g := newGame(t)
	for i := 0; i < 60; i++ {
		g.Step(frame(core.ActionMoveForward))
	}
	if z := g.Snapshot().Z; math.Abs(z+5) > 1e-6 {
		t.Errorf("after 1s walking z = %v, expected -5", z)
	}

	g = newGame(t)
	for i := 0; i < 60; i++ {
		g.Step(frame(core.ActionMoveForward, core.ActionSprint))
	}
	if z := g.Snapshot().Z; math.Abs(z+12.5) > 1e-6 {
		t.Errorf("after 1s sprinting z = %v, expected -12.5", z)
	}
}

func TestDiagonalIsNormalized(t *testing.T) {
	g := newGame(t)
	g.Step(frame(core.ActionMoveForward, core.ActionStrafeRight))
	s := g.Snapshot()

	dist := math.Hypot(s.X, s.Z)
	if math.Abs(dist-5.0/60.0) > 1e-9 {
		t.Errorf("diagonal step length = %v, expected %v", dist, 5.0/60.0)
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	g := newGame(t)
	g.Step(frame(core.ActionJump))
	if g.Snapshot().Grounded {
		t.Fatal("player should leave the ground after jump")
	}

	// A second jump mid-air is ignored.
	peak := 0.0
	for i := 0; i < 300 && !g.Snapshot().Grounded; i++ {
		g.Step(frame(core.ActionJump))
		peak = math.Max(peak, g.Snapshot().Y)
	}
	if !g.Snapshot().Grounded {
		t.Fatal("player should land again")
	}
	// v^2 / 2g = 64 / 40
	if peak > 64.0/40.0+0.1 {
		t.Errorf("peak height = %v, mid-air jump should not add height", peak)
	}
	if y := g.Snapshot().Y; y != 0 {
		t.Errorf("landed y = %v, expected 0", y)
	}
}

func TestLookClampsPitch(t *testing.T) {
	g := newGame(t)
	in := core.NewInputFrame()
	in.LookDX = 60 // 90 degrees at sensitivity 1.5
	in.LookDY = -1000
	g.Step(in)

	s := g.Snapshot()
	if math.Abs(s.Yaw-90) > eps {
		t.Errorf("yaw = %v, expected 90", s.Yaw)
	}
	if s.Pitch != MaxPitch {
		t.Errorf("pitch = %v, expected clamp at %v", s.Pitch, MaxPitch)
	}
}

func TestPoseRoundTrip(t *testing.T) {
	g := newGame(t)
	want := save.Pose{Position: []float64{1, 0, -2}, Heading: []float64{30, -10, 0}}
	g.SetPose(want)

	got := g.Transform().Pose()
	for i := range want.Position {
		if got.Position[i] != want.Position[i] {
			t.Errorf("Position[%d] = %v, expected %v", i, got.Position[i], want.Position[i])
		}
	}
	for i := range want.Heading {
		if got.Heading[i] != want.Heading[i] {
			t.Errorf("Heading[%d] = %v, expected %v", i, got.Heading[i], want.Heading[i])
		}
	}
}

func TestRenderShowsVisibleProps(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The present well sits 5m behind spawn.
	if r := screen.Get(40, 17); r != 'o' {
		t.Errorf("expected well at (40, 17), got %q", r)
	}
	if r := screen.Get(40, 12); r != '^' {
		t.Errorf("expected player arrow at center, got %q", r)
	}
	// The wanderer starts on its first waypoint at (10, 10).
	if r := screen.Get(60, 22); r != '@' {
		t.Errorf("expected npc at (60, 22), got %q", r)
	}

	g.Timeline().OnSwitchCommand()
	screen.Clear()
	g.Render(screen)
	if r := screen.Get(40, 17); r == 'o' {
		t.Error("well should be hidden in the past environment")
	}
}

func TestLoadRejectsPoseOutsideWorld(t *testing.T) {
	tests := []struct {
		name string
		pose save.Pose
	}{
		{"below ground", save.Pose{Position: []float64{1, -0.5, 2}, Heading: []float64{0, 0, 0}}},
		{"pitch too high", save.Pose{Position: []float64{1, 0, 2}, Heading: []float64{0, MaxPitch + 1, 0}}},
		{"pitch too low", save.Pose{Position: []float64{1, 0, 2}, Heading: []float64{0, -MaxPitch - 1, 0}}},
	}

	for _, tc := range tests {
		g := newGame(t)
		rec := save.NewRecord("explore", tc.pose, 1)

		err := save.Apply(rec, g.Timeline().State(), g.Transform())
		if !errors.Is(err, save.ErrCorruptData) {
			t.Errorf("%s: Apply() error = %v, expected ErrCorruptData", tc.name, err)
		}
		s := g.Snapshot()
		if s.X != 0 || s.Y != 0 || s.Z != 0 || s.Pitch != 0 || s.TimelineIndex != 0 {
			t.Errorf("%s: rejected load changed state to %+v", tc.name, s)
		}
	}

	g := newGame(t)
	rec := save.NewRecord("explore", save.Pose{Position: []float64{1, 3, 2}, Heading: []float64{30, MaxPitch, 0}}, 1)
	if err := save.Apply(rec, g.Timeline().State(), g.Transform()); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if s := g.Snapshot(); s.Y != 3 || s.Pitch != MaxPitch || s.Grounded {
		t.Errorf("Snapshot() = %+v, expected airborne at y=3 with pitch %v", s, MaxPitch)
	}
}

func TestNPCPatrolWrapsAround(t *testing.T) {
	n := NewNPC(config.NPCConfig{
		Name:  "guard",
		Glyph: "G",
		Speed: 2,
		Path:  []config.WaypointConfig{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 1, Z: 1}},
	})

	if n.Target() != 0 || n.Pos() != (mgl64.Vec3{0, 0, 0}) {
		t.Fatalf("NewNPC() target=%d pos=%v, expected first waypoint", n.Target(), n.Pos())
	}

	// Already on waypoint 0, so the first step only picks the next target.
	n.Step(0.1)
	if n.Target() != 1 {
		t.Fatalf("Target() = %d, expected 1", n.Target())
	}

	visited := []int{}
	last := n.Target()
	for i := 0; i < 1000 && len(visited) < 4; i++ {
		n.Step(0.1)
		if n.Target() != last {
			last = n.Target()
			visited = append(visited, last)
		}
	}

	expected := []int{2, 0, 1, 2}
	if len(visited) != len(expected) {
		t.Fatalf("visited targets = %v, expected %v", visited, expected)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("visited targets = %v, expected %v", visited, expected)
			break
		}
	}
}

func TestNPCMovesAtSpeed(t *testing.T) {
	n := NewNPC(config.NPCConfig{
		Name:  "guard",
		Speed: 2,
		Path:  []config.WaypointConfig{{X: 0, Z: 0}, {X: 10, Z: 0}},
	})
	n.Step(0.5)
	n.Step(0.5)
	if x := n.Pos().X(); math.Abs(x-1) > eps {
		t.Errorf("after 0.5s x = %v, expected 1", x)
	}
	if n.Glyph != '@' {
		t.Errorf("Glyph = %q, expected default @", n.Glyph)
	}
}

func TestNPCsStepWithGame(t *testing.T) {
	g := newGame(t)
	if len(g.NPCs()) != 1 {
		t.Fatalf("NPCs() has %d entries, expected 1", len(g.NPCs()))
	}
	start := g.NPCs()[0].Pos()

	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	moved := g.NPCs()[0].Pos().Sub(start).Len()
	// One tick turns toward the next waypoint, then 59 ticks at 2 m/s.
	if math.Abs(moved-2.0*59/60) > 1e-6 {
		t.Errorf("npc moved %v in 1s, expected %v", moved, 2.0*59/60)
	}
}
