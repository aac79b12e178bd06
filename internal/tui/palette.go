package tui

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantgrid/verdant/internal/content"
)

// paletteState is the fuzzy jump overlay: type a fragment of a section
// name, enter jumps there.
type paletteState struct {
	open    bool
	query   string
	targets []jumpTarget
	matches []scoredTarget
	cursor  int
}

type jumpTarget struct {
	section content.SectionID
	label   string
}

type scoredTarget struct {
	target jumpTarget
	score  int
}

func newPaletteState(site content.Site) paletteState {
	var targets []jumpTarget
	for id := content.SectionHero; id < content.SectionCount; id++ {
		targets = append(targets, jumpTarget{section: id, label: id.String()})
	}
	// Feature titles jump to the features section.
	for _, f := range site.Features {
		targets = append(targets, jumpTarget{section: content.SectionFeatures, label: f.Title})
	}
	targets = append(targets,
		jumpTarget{section: content.SectionCalculator, label: "Footprint estimate"},
		jumpTarget{section: content.SectionContact, label: "Get a quote"},
	)
	return paletteState{targets: targets}
}

func (p *paletteState) openWith(query string) {
	p.open = true
	p.query = query
	p.cursor = 0
	p.rebuild()
}

func (p *paletteState) close() {
	p.open = false
	p.query = ""
	p.matches = nil
	p.cursor = 0
}

// rebuild rescans the targets against the query. Subsequence score ranks
// first, edit distance to the label breaks ties so near-exact typing wins.
func (p *paletteState) rebuild() {
	q := strings.TrimSpace(p.query)
	out := make([]scoredTarget, 0, len(p.targets))
	for _, t := range p.targets {
		score, ok := fuzzyScore(t.label, q)
		if !ok {
			continue
		}
		out = append(out, scoredTarget{target: t, score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		di := levenshtein.ComputeDistance(strings.ToLower(out[i].target.label), strings.ToLower(q))
		dj := levenshtein.ComputeDistance(strings.ToLower(out[j].target.label), strings.ToLower(q))
		if di != dj {
			return di < dj
		}
		return out[i].target.label < out[j].target.label
	})
	p.matches = out
	if p.cursor >= len(p.matches) {
		p.cursor = len(p.matches) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Scoring weights: a contiguous run of matched runes beats scattered hits,
// matching from the first rune beats matching mid-label, and nothing beats
// typing the label out exactly.
const (
	bonusRun    = 4
	bonusPrefix = 8
	bonusExact  = 24
)

// fuzzyScore reports whether query is a case-insensitive subsequence of
// label, and how strong the match is. ok is always true for an empty query.
func fuzzyScore(label, query string) (score int, ok bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, true
	}
	l := strings.ToLower(strings.TrimSpace(label))
	if l == q {
		return utf8.RuneCountInString(q)*bonusRun + bonusExact, true
	}

	prev := -2 // never adjacent to the first hit
	offset := 0
	for _, r := range q {
		i := strings.IndexRune(l[offset:], r)
		if i < 0 {
			return 0, false
		}
		at := offset + i
		score++
		if at == 0 {
			score += bonusPrefix
		}
		if at == prev+1 {
			score += bonusRun
		}
		prev = at
		offset = at + utf8.RuneLen(r)
	}
	return score, true
}

func (m model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.palette.close()
		return m, nil
	case "up", "ctrl+k":
		if m.palette.cursor > 0 {
			m.palette.cursor--
		}
		return m, nil
	case "down", "ctrl+j":
		if m.palette.cursor < len(m.palette.matches)-1 {
			m.palette.cursor++
		}
		return m, nil
	case "enter":
		if len(m.palette.matches) == 0 {
			return m, nil
		}
		target := m.palette.matches[m.palette.cursor].target.section
		m.palette.close()
		return m.scrollToSection(target)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if len(m.palette.query) > 0 {
			r := []rune(m.palette.query)
			m.palette.query = string(r[:len(r)-1])
			m.palette.rebuild()
		}
	case tea.KeySpace:
		m.palette.query += " "
		m.palette.rebuild()
	case tea.KeyRunes:
		m.palette.query += string(msg.Runes)
		m.palette.rebuild()
	}
	return m, nil
}

func (m *model) renderPalette() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Jump to"))
	b.WriteString("\n")
	b.WriteString("/ " + m.palette.query + "▎")
	b.WriteString("\n\n")
	if len(m.palette.matches) == 0 {
		b.WriteString(statusStyle.Render("no matches"))
	}
	for i, sc := range m.palette.matches {
		marker := "  "
		label := sc.target.label
		line := label + statLabelStyle.Render("  → "+sc.target.section.String())
		if i == m.palette.cursor {
			marker = cursorStyle.Render("▶ ")
			line = activeTabStyle.Render(label) + statLabelStyle.Render("  → "+sc.target.section.String())
		}
		b.WriteString(marker + line + "\n")
	}
	return modalStyle.Width(46).Render(b.String())
}
