package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/verdantgrid/verdant/internal/content"
)

func (m *model) renderPage(now time.Time) string {
	p := m.buildPage(now)

	top := m.offset
	if max := m.maxOffset(p); top > max {
		top = max
	}
	if top < 0 {
		top = 0
	}
	end := top + m.viewportHeight()
	if end > len(p.lines) {
		end = len(p.lines)
	}
	body := strings.Join(p.lines[top:end], "\n")
	for i := end - top; i < m.viewportHeight(); i++ {
		body += "\n"
	}

	return m.renderHeader() + "\n" + body + "\n" + m.renderStatusBar() + "\n" + m.renderFooter()
}

func (m *model) renderHeader() string {
	brand := headerAppStyle.Render("⏦ " + m.site.Brand)
	var tabs []string
	for id := content.SectionHero; id < content.SectionCount; id++ {
		style := inactiveTabStyle
		if id == m.activeSection {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(id.String()))
	}
	line := brand + "  " + strings.Join(tabs, "")
	return headerBarStyle.Width(m.width).Render(line)
}

func (m *model) renderStatusBar() string {
	style := statusBarStyle
	if m.statusErr {
		style = errorBarStyle
	}
	return style.Width(m.width).Render(truncate(m.status, m.width-4))
}

func (m *model) renderFooter() string {
	bindings := m.keys.ShortHelp()
	if m.formMode {
		bindings = formKeyMap{m.keys}.ShortHelp()
	}
	if m.palette.open {
		bindings = paletteKeyMap{m.keys}.ShortHelp()
	}
	if m.helpExpanded && !m.formMode && !m.palette.open {
		var lines []string
		for _, row := range m.keys.FullHelp() {
			lines = append(lines, footerStyle.Width(m.width).Render(helpLine(row)))
		}
		return strings.Join(lines, "\n")
	}
	return footerStyle.Width(m.width).Render(helpLine(bindings))
}

func helpLine(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " · ")
}

// renderPaletteOver replaces the page with the jump palette centered in
// the window. Terminal cells cannot truly overlay, so the page hides while
// the palette is up.
func (m *model) renderPaletteOver(string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderPalette())
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
