package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantgrid/verdant/internal/content"
	"github.com/verdantgrid/verdant/internal/footprint"
	"github.com/verdantgrid/verdant/internal/typewriter"
)

func fastTiming() typewriter.Timing {
	return typewriter.Timing{
		TypeDelay:      time.Millisecond,
		EraseDelay:     time.Millisecond,
		PostTypePause:  time.Millisecond,
		PostErasePause: time.Millisecond,
		StartDelay:     time.Millisecond,
	}
}

func newTestModel(t *testing.T) model {
	t.Helper()
	m := New(Options{Timing: fastTiming()})
	m.width = 80
	m.height = 24
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func applyKey(t *testing.T, m model, msg tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return nm, cmd
}

func TestTypewriterDrivesHeroSurface(t *testing.T) {
	m := newTestModel(t)
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("Init should schedule work")
	}
	if !m.seq.State().Running {
		t.Fatalf("sequencer should be running after Init")
	}

	first := content.Default().Playlist[0]
	gen := 1
	for i := 0; i < len([]rune(first)); i++ {
		next, _ := m.Update(typeStepMsg{gen: gen})
		m = next.(model)
	}
	if m.hero.text != first {
		t.Fatalf("hero text = %q, want %q", m.hero.text, first)
	}
}

func TestStaleStepIsDropped(t *testing.T) {
	m := newTestModel(t)
	m.Init()
	next, _ := m.Update(typeStepMsg{gen: 1})
	m = next.(model)
	before := m.hero.text

	m.seq.Stop()
	next, cmd := m.Update(typeStepMsg{gen: 1})
	m = next.(model)
	if cmd != nil {
		t.Fatalf("stale step should not schedule a follow-up")
	}
	if m.hero.text == before && before != "" {
		t.Fatalf("Stop should have cleared the surface, got %q", m.hero.text)
	}
}

func TestToggleTypewriterPausesAndResumes(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	m, _ = applyKey(t, m, keyRunes("s"))
	if m.seq.State().Running {
		t.Fatalf("s should stop the running sequencer")
	}

	m, cmd := applyKey(t, m, keyRunes("s"))
	if !m.seq.State().Running {
		t.Fatalf("second s should restart the sequencer")
	}
	if cmd == nil {
		t.Fatalf("restart should schedule the next step")
	}
}

func TestReducedMotionPinsFirstTagline(t *testing.T) {
	m := New(Options{ReducedMotion: true, Timing: fastTiming()})
	m.width, m.height = 80, 24
	m.Init()

	if m.seq.State().Running {
		t.Fatalf("reduced motion must not start the typewriter")
	}
	want := content.Default().Playlist[0]
	if m.hero.text != want {
		t.Fatalf("hero text = %q, want pinned first tagline %q", m.hero.text, want)
	}
}

func TestTabCyclesSections(t *testing.T) {
	m := newTestModel(t)

	m, _ = applyKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeSection != content.SectionFeatures {
		t.Fatalf("tab from hero = %v, want features", m.activeSection)
	}

	m.activeSection = content.SectionContact
	m, _ = applyKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeSection != content.SectionHero {
		t.Fatalf("tab from contact = %v, want hero (wrap)", m.activeSection)
	}

	m, _ = applyKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activeSection != content.SectionContact {
		t.Fatalf("shift+tab from hero = %v, want contact (wrap)", m.activeSection)
	}
}

func TestNumberKeysJumpDirectly(t *testing.T) {
	m := newTestModel(t)
	m, _ = applyKey(t, m, keyRunes("4"))
	if m.activeSection != content.SectionCalculator {
		t.Fatalf("4 = %v, want calculator", m.activeSection)
	}
	if m.scroll == nil {
		t.Fatalf("section jump should start a smooth scroll")
	}
}

func TestScrollFrameLandsOnTarget(t *testing.T) {
	m := newTestModel(t)
	m, _ = applyKey(t, m, keyRunes("5"))
	target := m.scroll.To

	next, _ := m.Update(frameMsg(time.Now().Add(time.Second)))
	m = next.(model)
	if m.offset != target {
		t.Fatalf("offset after scroll = %d, want %d", m.offset, target)
	}
	if m.scroll != nil {
		t.Fatalf("finished scroll should be cleared")
	}
}

func TestEstimateSavedUpdatesStatus(t *testing.T) {
	m := newTestModel(t)
	est := footprint.Compute(footprint.Inputs{KWhPerMonth: 300})

	next, cmd := m.Update(estimateSavedMsg{est: est})
	m = next.(model)
	if m.statusErr {
		t.Fatalf("successful save flagged as error: %q", m.status)
	}
	if !strings.Contains(m.status, "saved") {
		t.Fatalf("status = %q, want save confirmation", m.status)
	}
	if cmd == nil {
		t.Fatalf("save should trigger a history reload")
	}
}

func TestSaveErrorSurfacesInStatusBar(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(estimateSavedMsg{err: errors.New("disk full")})
	m = next.(model)
	if !m.statusErr {
		t.Fatalf("failed save should set the error flag")
	}
	if !strings.Contains(m.status, "disk full") {
		t.Fatalf("status = %q, want the underlying error", m.status)
	}
}

func TestHistoryClearedEmptiesEstimates(t *testing.T) {
	m := newTestModel(t)
	m.estimates = []footprint.Estimate{footprint.Compute(footprint.Inputs{KWhPerMonth: 1})}

	next, _ := m.Update(historyClearedMsg{})
	m = next.(model)
	if len(m.estimates) != 0 {
		t.Fatalf("estimates should be empty after clear")
	}
}

func TestSlashOpensPalette(t *testing.T) {
	m := newTestModel(t)
	m, _ = applyKey(t, m, keyRunes("/"))
	if !m.palette.open {
		t.Fatalf("/ should open the jump palette")
	}

	m, _ = applyKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.palette.open {
		t.Fatalf("esc should close the palette")
	}
}

func TestPaletteEnterJumps(t *testing.T) {
	m := newTestModel(t)
	m, _ = applyKey(t, m, keyRunes("/"))
	m, _ = applyKey(t, m, keyRunes("imp"))
	m, _ = applyKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.palette.open {
		t.Fatalf("enter should close the palette")
	}
	if m.activeSection != content.SectionImpact {
		t.Fatalf("active section = %v, want impact", m.activeSection)
	}
}

func TestHelpToggleExpandsFooter(t *testing.T) {
	m := newTestModel(t)
	short := m.renderFooter()

	m, _ = applyKey(t, m, keyRunes("?"))
	if !m.helpExpanded {
		t.Fatalf("? should expand the footer help")
	}
	full := m.renderFooter()
	if !strings.Contains(full, "clear history") {
		t.Fatalf("expanded footer missing full bindings:\n%s", full)
	}
	if len(full) <= len(short) {
		t.Errorf("expanded footer should list more keys than the short one")
	}

	m, _ = applyKey(t, m, keyRunes("?"))
	if m.helpExpanded {
		t.Fatalf("second ? should collapse the help")
	}
}

func TestViewRendersWithoutSize(t *testing.T) {
	m := New(Options{Timing: fastTiming()})
	if out := m.View(); out == "" {
		t.Fatalf("zero-size view should still render a placeholder")
	}
}

func TestViewShowsHeroHeading(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, "planet") {
		t.Fatalf("view missing hero heading:\n%s", out)
	}
}
