package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantgrid/verdant/internal/anim"
	"github.com/verdantgrid/verdant/internal/content"
)

// page is the fully rendered document plus the line offset each section
// starts at. Offsets feed both the smooth scroll and active-section sync.
type page struct {
	lines   []string
	offsets [content.SectionCount]int
}

// buildPage renders every section top to bottom. Section heights depend on
// the animation clock (reveals grow the features section), so the page is
// rebuilt per frame while anything animates.
func (m *model) buildPage(now time.Time) page {
	var p page
	sections := []struct {
		id     content.SectionID
		render func(time.Time) string
	}{
		{content.SectionHero, m.renderHero},
		{content.SectionFeatures, m.renderFeatures},
		{content.SectionImpact, m.renderImpact},
		{content.SectionCalculator, m.renderCalculator},
		{content.SectionContact, m.renderContact},
	}
	for _, s := range sections {
		p.offsets[s.id] = len(p.lines)
		p.lines = append(p.lines, strings.Split(s.render(now), "\n")...)
		p.lines = append(p.lines, "")
	}
	return p
}

// viewportHeight is the body height: everything minus header, status bar
// and footer. The expanded key help takes a second footer row.
func (m *model) viewportHeight() int {
	h := m.height - 3
	if m.helpExpanded {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) contentWidth() int {
	w := m.width - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *model) maxOffset(p page) int {
	max := len(p.lines) - m.viewportHeight()
	if max < 0 {
		max = 0
	}
	return max
}

func (m *model) clampOffset() {
	if m.width == 0 {
		return
	}
	p := m.buildPage(time.Now())
	if max := m.maxOffset(p); m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// scrollToSection eases the viewport to the section's first line. With
// reduced motion it jumps there in a single frame.
func (m model) scrollToSection(id content.SectionID) (tea.Model, tea.Cmd) {
	if id < 0 || id >= content.SectionCount {
		return m, nil
	}
	now := time.Now()
	p := m.buildPage(now)
	target := p.offsets[id]
	if max := m.maxOffset(p); target > max {
		target = max
	}
	m.activeSection = id

	if m.reducedMotion {
		m.scroll = nil
		m.offset = target
		m.triggerReveals(now)
		return m, m.ensureFrameLoop()
	}
	m.scroll = &anim.Scroll{From: m.offset, To: target, Start: now, Duration: scrollDuration}
	return m, m.ensureFrameLoop()
}

// syncActiveSection recomputes which section owns the top of the viewport.
// Used after manual line scrolling, where no target section was chosen.
func (m *model) syncActiveSection() {
	p := m.buildPage(time.Now())
	anchor := m.offset + m.viewportHeight()/3
	active := content.SectionHero
	for id := content.SectionHero; id < content.SectionCount; id++ {
		if p.offsets[id] <= anchor {
			active = id
		}
	}
	m.activeSection = active
}

// triggerReveals arms the feature reveal and counter animations the first
// time their section scrolls into view. Each fires once per run.
func (m *model) triggerReveals(now time.Time) {
	p := m.buildPage(now)
	bottom := m.offset + m.viewportHeight()
	if m.featuresRevealAt.IsZero() && p.offsets[content.SectionFeatures] < bottom {
		if m.reducedMotion {
			m.featuresRevealAt = now.Add(-time.Hour) // fully revealed
		} else {
			m.featuresRevealAt = now
		}
	}
	if m.countersStartAt.IsZero() && p.offsets[content.SectionImpact] < bottom {
		if m.reducedMotion {
			m.countersStartAt = now.Add(-time.Hour)
		} else {
			m.countersStartAt = now
		}
	}
}
