package timeline

import (
	"testing"

	"github.com/vovakirdan/chronoshift/internal/core"
)

type recordingPresenter struct {
	shown  map[string]int
	hidden map[string]int
	calls  []string
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{
		shown:  make(map[string]int),
		hidden: make(map[string]int),
	}
}

func (p *recordingPresenter) Show(t Timeline) {
	p.shown[t.Name()]++
	p.calls = append(p.calls, "show:"+t.Name())
}

func (p *recordingPresenter) Hide(t Timeline) {
	p.hidden[t.Name()]++
	p.calls = append(p.calls, "hide:"+t.Name())
}

func TestSwitchBlueToRed(t *testing.T) {
	s, _ := New(Color("Blue", core.RGBBlue), Color("Red", core.RGBRed))
	p := newRecordingPresenter()
	sw := NewSwitcher(s, p)

	got := sw.OnSwitchCommand()

	if s.Index() != 1 {
		t.Errorf("Index() = %d, expected 1", s.Index())
	}
	if got.Name() != "Red" {
		t.Errorf("OnSwitchCommand() = %s, expected Red", got.Name())
	}
	if p.shown["Red"] != 1 || len(p.shown) != 1 {
		t.Errorf("shown = %v, expected Red exactly once", p.shown)
	}
	if p.hidden["Blue"] != 1 || len(p.hidden) != 1 {
		t.Errorf("hidden = %v, expected Blue exactly once", p.hidden)
	}
}

func TestRapidSwitchesAreNotCoalesced(t *testing.T) {
	s, _ := New(Color("Blue", core.RGBBlue), Color("Red", core.RGBRed))
	sw := NewSwitcher(s, newRecordingPresenter())

	expected := []int{1, 0, 1}
	for i, want := range expected {
		sw.OnSwitchCommand()
		if s.Index() != want {
			t.Errorf("after switch %d Index() = %d, expected %d", i+1, s.Index(), want)
		}
	}
}

func TestSwitchHidesEveryOtherTimeline(t *testing.T) {
	s, _ := New(colors(4)...)
	p := newRecordingPresenter()
	sw := NewSwitcher(s, p)

	sw.OnSwitchCommand()

	if p.shown["B"] != 1 {
		t.Errorf("shown = %v, expected B once", p.shown)
	}
	for _, name := range []string{"A", "C", "D"} {
		if p.hidden[name] != 1 {
			t.Errorf("hidden[%s] = %d, expected 1", name, p.hidden[name])
		}
	}
	if p.hidden["B"] != 0 {
		t.Error("the active timeline must never be hidden")
	}
	if last := p.calls[len(p.calls)-1]; last != "show:B" {
		t.Errorf("last call = %s, expected show:B", last)
	}
}

func TestSyncDoesNotAdvance(t *testing.T) {
	s, _ := New(colors(3)...)
	p := newRecordingPresenter()
	sw := NewSwitcher(s, p)

	sw.Sync()

	if s.Index() != 0 {
		t.Errorf("Sync() moved Index() to %d", s.Index())
	}
	if p.shown["A"] != 1 || p.hidden["B"] != 1 || p.hidden["C"] != 1 {
		t.Errorf("Sync() calls = %v, expected show A and hide B, C", p.calls)
	}
}

// handlePresenter tracks visibility by handle, like a scene whose
// environments are shared between timelines.
type handlePresenter struct {
	visible map[string]bool
}

func (p *handlePresenter) Show(t Timeline) { p.visible[t.Handle()] = true }
func (p *handlePresenter) Hide(t Timeline) { p.visible[t.Handle()] = false }

func TestSharedHandleStaysVisible(t *testing.T) {
	s, _ := New(
		Environment("Dawn", "town"),
		Environment("Dusk", "town"),
		Environment("Past", "ruins"),
	)
	p := &handlePresenter{visible: make(map[string]bool)}
	sw := NewSwitcher(s, p)

	sw.Sync()
	if !p.visible["town"] || p.visible["ruins"] {
		t.Errorf("after Sync() visible = %v, expected only town", p.visible)
	}

	sw.OnSwitchCommand()
	if !p.visible["town"] || p.visible["ruins"] {
		t.Errorf("on Dusk visible = %v, expected only town", p.visible)
	}

	sw.OnSwitchCommand()
	if p.visible["town"] || !p.visible["ruins"] {
		t.Errorf("on Past visible = %v, expected only ruins", p.visible)
	}
}

func TestSwitcherWithoutPresenter(t *testing.T) {
	s, _ := New(colors(2)...)
	sw := NewSwitcher(s, nil)

	sw.OnSwitchCommand()
	if s.Index() != 1 {
		t.Errorf("Index() = %d, expected 1", s.Index())
	}
}
