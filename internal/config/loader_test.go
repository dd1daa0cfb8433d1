package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/timeline"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// Run from a directory without ./configs and with an empty HOME.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	drift, err := LoadDrift("")
	if err != nil {
		t.Fatalf("LoadDrift() failed: %v", err)
	}
	def := DefaultDriftConfig()
	if drift.Player != def.Player || drift.World != def.World {
		t.Errorf("embedded drift = %+v, expected %+v", drift, def)
	}

	explore, err := LoadExplore("")
	if err != nil {
		t.Fatalf("LoadExplore() failed: %v", err)
	}
	edef := DefaultExploreConfig()
	if len(explore.Environments) != len(edef.Environments) {
		t.Errorf("embedded explore has %d environments", len(explore.Environments))
	}
	if !reflect.DeepEqual(explore.Player, edef.Player) {
		t.Errorf("embedded explore player = %+v, expected %+v", explore.Player, edef.Player)
	}
	if !reflect.DeepEqual(explore.NPCs, edef.NPCs) {
		t.Errorf("embedded explore npcs = %+v, expected %+v", explore.NPCs, edef.NPCs)
	}
}

func TestCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drift.yaml")
	content := `timelines:
  - name: Green
    color: "#00ff00"
  - name: Black
    color: "#000000"
  - name: White
    color: "#ffffff"
player:
  size: 20
  speed: 2
input:
  bindings:
    e: switch_timeline
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadDrift(path)
	if err != nil {
		t.Fatalf("LoadDrift() failed: %v", err)
	}
	if len(cfg.Timelines) != 3 || cfg.Player.Speed != 2 {
		t.Errorf("LoadDrift() = %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.World.Width != 800 {
		t.Errorf("World.Width = %v, expected default 800", cfg.World.Width)
	}

	b, err := cfg.Input.ResolveBindings(DriftBindings())
	if err != nil {
		t.Fatalf("ResolveBindings() failed: %v", err)
	}
	if b.Keys["e"] != core.ActionSwitchTimeline {
		t.Error("custom binding for e was not applied")
	}
}

func TestCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDrift(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	empty := filepath.Join(dir, "empty.yaml")
	os.WriteFile(empty, []byte("timelines: []\n"), 0o600)
	if _, err := LoadDrift(empty); err == nil {
		t.Error("config without timelines should fail validation")
	}

	badEnv := filepath.Join(dir, "explore.yaml")
	os.WriteFile(badEnv, []byte("timelines:\n  - name: X\n    environment: nowhere\n"), 0o600)
	if _, err := LoadExplore(badEnv); err == nil {
		t.Error("timeline referencing unknown environment should fail validation")
	}
}

func TestExploreValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *ExploreConfig)
		valid  bool
	}{
		{"defaults", func(c *ExploreConfig) {}, true},
		{"shared environment", func(c *ExploreConfig) {
			c.Timelines = []TimelineConfig{
				{Name: "Dawn", Environment: "present"},
				{Name: "Dusk", Environment: "present"},
				{Name: "Past", Environment: "past"},
			}
		}, false},
		{"color timeline", func(c *ExploreConfig) {
			c.Timelines = []TimelineConfig{{Name: "Blue", Color: "#0000ff"}}
		}, false},
		{"short spawn", func(c *ExploreConfig) { c.Player.Spawn = []float64{0, 0} }, false},
		{"npc without path", func(c *ExploreConfig) { c.NPCs[0].Path = nil }, false},
		{"npc without speed", func(c *ExploreConfig) { c.NPCs[0].Speed = 0 }, false},
		{"no npcs", func(c *ExploreConfig) { c.NPCs = nil }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultExploreConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() error = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}

func TestLoadExploreRejectsSharedEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explore.yaml")
	content := `timelines:
  - name: Dawn
    environment: present
  - name: Dusk
    environment: present
  - name: Past
    environment: past
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadExplore(path); err == nil {
		t.Error("LoadExplore() should reject two timelines sharing one environment")
	}
}

func TestBuildTimelines(t *testing.T) {
	list, err := BuildTimelines(DefaultDriftConfig().Timelines)
	if err != nil {
		t.Fatalf("BuildTimelines() failed: %v", err)
	}
	if list[0].RGB() != core.RGBBlue || list[1].RGB() != core.RGBRed {
		t.Errorf("drift timelines = %v, expected blue then red", list)
	}

	tests := []struct {
		name string
		in   []TimelineConfig
	}{
		{"empty", nil},
		{"both", []TimelineConfig{{Name: "x", Color: "#000000", Environment: "e"}}},
		{"neither", []TimelineConfig{{Name: "x"}}},
		{"bad color", []TimelineConfig{{Name: "x", Color: "blue"}}},
	}
	for _, tc := range tests {
		if _, err := BuildTimelines(tc.in); err == nil {
			t.Errorf("BuildTimelines(%s) should fail", tc.name)
		}
	}

	if _, err := BuildTimelines(nil); err != timeline.ErrNoTimelines {
		t.Errorf("BuildTimelines(nil) error = %v, expected ErrNoTimelines", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"./saves.db", "./saves.db"},
		{"~/.chronoshift/saves.db", filepath.Join(home, ".chronoshift", "saves.db")},
		{DefaultPath("host_key"), filepath.Join(home, Dir, "host_key")},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error = %v", tt.in, err)
		}
		if got != tt.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
