package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verdantgrid/verdant/internal/anim"
	"github.com/verdantgrid/verdant/internal/content"
	"github.com/verdantgrid/verdant/internal/footprint"
)

func (m *model) section(id content.SectionID, body string) string {
	title := titleStyle.Render(fmt.Sprintf("%d · %s", int(id)+1, id.String()))
	return sectionBoxStyle.Width(m.contentWidth()).Render(title + "\n\n" + body)
}

// ---------------------------------------------------------------------------
// Hero
// ---------------------------------------------------------------------------

func (m *model) renderHero(time.Time) string {
	var b strings.Builder
	b.WriteString(heroHeadingStyle.Render(m.site.HeroHeading))
	b.WriteString("\n\n")
	b.WriteString(heroTaglineStyle.Render(m.hero.text))
	if m.hero.blink {
		b.WriteString(heroCursorStyle.Render("▌"))
	}
	b.WriteString("\n\n")
	b.WriteString(heroSubtextStyle.Render(m.site.HeroSubtext))
	return m.section(content.SectionHero, b.String())
}

// ---------------------------------------------------------------------------
// Features — cards fade in one by one once the section is first seen
// ---------------------------------------------------------------------------

func (m *model) renderFeatures(now time.Time) string {
	visible := len(m.site.Features)
	if !m.featuresRevealAt.IsZero() {
		total := revealStagger * time.Duration(len(m.site.Features))
		reveal := anim.Reveal{Items: len(m.site.Features), Stagger: 1.0 / float64(len(m.site.Features))}
		visible = reveal.Visible(anim.Progress(m.featuresRevealAt, now, total))
	} else {
		visible = 0
	}

	var rows []string
	for i, f := range m.site.Features {
		if i >= visible {
			rows = append(rows, "")
			continue
		}
		line := featureIconStyle.Render(f.Icon) + "  " +
			featureTitleStyle.Render(padRight(f.Title, 20)) +
			featureDescStyle.Render(f.Desc)
		rows = append(rows, line)
	}
	return m.section(content.SectionFeatures, strings.Join(rows, "\n"))
}

// ---------------------------------------------------------------------------
// Impact — counters ease up to their targets
// ---------------------------------------------------------------------------

func (m *model) renderImpact(now time.Time) string {
	t := 0.0
	if !m.countersStartAt.IsZero() {
		t = anim.Progress(m.countersStartAt, now, counterDuration)
	}

	var cells []string
	for _, s := range m.site.Stats {
		c := anim.Counter{Target: s.Value, Duration: counterDuration}
		value := fmt.Sprintf("%d%s", c.Value(t), s.Suffix)
		cell := statValueStyle.Render(value) + "\n" + statLabelStyle.Render(s.Label)
		cells = append(cells, lipgloss.NewStyle().MarginRight(4).Render(cell))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return m.section(content.SectionImpact, row)
}

// ---------------------------------------------------------------------------
// Calculator
// ---------------------------------------------------------------------------

func (m *model) renderCalculator(time.Time) string {
	var b strings.Builder
	b.WriteString(heroSubtextStyle.Render(m.site.CalcIntro))
	b.WriteString("\n\n")
	b.WriteString(m.calc.render(m.formMode && m.activeSection == content.SectionCalculator))

	if m.calc.result != nil {
		r := m.calc.result
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(fmt.Sprintf("≈ %.1f t CO2e / year", footprint.Tonnes(r.TotalKg))))
		b.WriteString("\n")
		b.WriteString(statLabelStyle.Render(fmt.Sprintf(
			"electricity %.0f kg · driving %.0f kg · flights %.0f kg",
			r.ElectricityKg, r.DrivingKg, r.FlightsKg)))
	}

	if len(m.estimates) > 0 {
		b.WriteString("\n\n")
		b.WriteString(inputLabelStyle.Render("Recent estimates"))
		for _, e := range m.estimates {
			b.WriteString("\n")
			b.WriteString(historyEntryStyle.Render(fmt.Sprintf(
				"  %s  %.1f t CO2e", e.CreatedAt.Local().Format("02 Jan 15:04"), footprint.Tonnes(e.TotalKg))))
		}
		b.WriteString("\n")
		b.WriteString(statLabelStyle.Render("x clears history"))
	}
	return m.section(content.SectionCalculator, b.String())
}

// ---------------------------------------------------------------------------
// Contact
// ---------------------------------------------------------------------------

func (m *model) renderContact(time.Time) string {
	var b strings.Builder
	b.WriteString(heroSubtextStyle.Render(m.site.ContactIntro))
	b.WriteString("\n\n")
	b.WriteString(m.contact.render(m.formMode && m.activeSection == content.SectionContact))
	return m.section(content.SectionContact, b.String())
}
