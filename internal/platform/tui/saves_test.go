package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chronoshift/internal/save"
	"github.com/vovakirdan/chronoshift/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	store, err := storage.Open(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func writeDriftSave(t *testing.T, store *storage.Store, slot string, index int) {
	t.Helper()
	rec := save.NewRecord("drift", save.Pose{Position: []float64{10, 20}, Heading: []float64{90}}, index)
	data, err := save.Encode(rec)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := store.Write(slot, data); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
}

func TestSavesModelShowsTimelineNames(t *testing.T) {
	store := openTestStore(t)
	writeDriftSave(t, store, "drift", 0)
	writeDriftSave(t, store, "drift", 1)

	m := NewSavesModel(store, "", 100, 30)
	if m.Slot() != "drift" {
		t.Fatalf("Slot() = %q, expected drift", m.Slot())
	}

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("table has %d rows, expected 2", len(rows))
	}
	// Newest first.
	if rows[0][1] != "Red" || rows[1][1] != "Blue" {
		t.Errorf("timeline column = [%s %s], expected [Red Blue]", rows[0][1], rows[1][1])
	}
}

func TestSavesModelClearAndSwitchGame(t *testing.T) {
	store := openTestStore(t)
	writeDriftSave(t, store, "alice/drift", 1)

	m := NewSavesModel(store, "alice/", 100, 30)
	m.embedded = true
	if len(m.saves) != 1 {
		t.Fatalf("loaded %d saves, expected 1", len(m.saves))
	}

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = model.(SavesModel)
	if len(m.saves) != 0 {
		t.Errorf("after clear %d saves remain, expected 0", len(m.saves))
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(SavesModel)
	if m.Slot() != "alice/explore" {
		t.Errorf("Slot() = %q after Tab, expected alice/explore", m.Slot())
	}

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(SavesModel)
	if !m.IsGoingBack() || cmd != nil {
		t.Error("Esc in an embedded browser should go back without quitting")
	}
}
