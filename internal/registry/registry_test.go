package registry_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/chronoshift/internal/registry"

	_ "github.com/vovakirdan/chronoshift/internal/games/drift"
	_ "github.com/vovakirdan/chronoshift/internal/games/explore"
)

func TestListSortedByID(t *testing.T) {
	games := registry.List()

	expected := []registry.GameInfo{
		{ID: "drift", Title: "Drift (2D)"},
		{ID: "explore", Title: "Explore (3D)"},
	}
	if len(games) != len(expected) {
		t.Fatalf("List() returned %d games, expected %d", len(games), len(expected))
	}
	for i, want := range expected {
		if games[i] != want {
			t.Errorf("List()[%d] = %+v, expected %+v", i, games[i], want)
		}
	}
}

func TestCreate(t *testing.T) {
	a, err := registry.Create("drift")
	if err != nil {
		t.Fatalf("Create(drift) error = %v", err)
	}
	b, _ := registry.Create("drift")
	if a == b {
		t.Error("Create() should return a new instance each call")
	}
	if a.ID() != "drift" {
		t.Errorf("ID() = %q, expected drift", a.ID())
	}

	if _, err := registry.Create("snake"); !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("Create(snake) error = %v, expected ErrUnknownGame", err)
	}
	if registry.Exists("snake") {
		t.Error("Exists(snake) = true, expected false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() with a taken ID should panic")
		}
	}()
	registry.Register("drift", func() registry.Game { return nil })
}
