package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantgrid/verdant/internal/content"
	"github.com/verdantgrid/verdant/internal/footprint"
)

// calcState holds the footprint form: three numeric inputs, the field
// errors from the last submit and the last computed estimate.
type calcState struct {
	inputs []textinput.Model
	labels []string
	focus  int
	errs   []string
	result *footprint.Estimate
}

func newCalcState() calcState {
	labels := []string{"Electricity (kWh / month)", "Driving (km / week)", "Flights (per year)"}
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 8
		ti.Width = 12
		ti.Prompt = "> "
		ti.Cursor.Style = cursorStyle
		inputs[i] = ti
	}
	return calcState{inputs: inputs, labels: labels, errs: make([]string, len(labels))}
}

func (c *calcState) focusFirst() {
	c.focus = 0
	for i := range c.inputs {
		if i == 0 {
			c.inputs[i].Focus()
		} else {
			c.inputs[i].Blur()
		}
	}
}

func (c *calcState) blurAll() {
	for i := range c.inputs {
		c.inputs[i].Blur()
	}
}

func (c *calcState) cycle(delta int) {
	c.inputs[c.focus].Blur()
	c.focus = (c.focus + delta + len(c.inputs)) % len(c.inputs)
	c.inputs[c.focus].Focus()
}

func (c *calcState) setWidth(w int) {
	for i := range c.inputs {
		c.inputs[i].Width = w
	}
}

// parse validates the three fields. Empty fields count as zero; anything
// non-numeric or negative is a per-field error.
func (c *calcState) parse() (footprint.Inputs, bool) {
	var in footprint.Inputs
	vals := make([]float64, len(c.inputs))
	ok := true
	for i := range c.inputs {
		c.errs[i] = ""
		raw := strings.TrimSpace(c.inputs[i].Value())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.errs[i] = "not a number"
			ok = false
			continue
		}
		if v < 0 {
			c.errs[i] = "must not be negative"
			ok = false
			continue
		}
		vals[i] = v
	}
	in.KWhPerMonth = vals[0]
	in.KmPerWeek = vals[1]
	in.FlightsPerYear = vals[2]
	return in, ok
}

func (c *calcState) render(active bool) string {
	var b strings.Builder
	for i := range c.inputs {
		b.WriteString(inputLabelStyle.Render(padRight(c.labels[i], 28)))
		b.WriteString(c.inputs[i].View())
		if c.errs[i] != "" {
			b.WriteString("  ")
			b.WriteString(fieldErrStyle.Render(c.errs[i]))
		}
		b.WriteString("\n")
	}
	if active {
		b.WriteString(statLabelStyle.Render("tab next field · enter estimate · esc done"))
	} else {
		b.WriteString(statLabelStyle.Render("press i to fill in the form"))
	}
	return b.String()
}

// updateForm routes form-mode keys to whichever form the active section
// owns. Esc leaves form mode; everything else feeds the focused input.
func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.activeSection {
	case content.SectionCalculator:
		return m.updateCalcForm(msg)
	case content.SectionContact:
		return m.updateContactForm(msg)
	}
	m.formMode = false
	return m, nil
}

func (m model) updateCalcForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.formMode = false
		m.calc.blurAll()
		return m, nil
	case "tab", "down":
		m.calc.cycle(1)
		return m, nil
	case "shift+tab", "up":
		m.calc.cycle(-1)
		return m, nil
	case "enter":
		in, ok := m.calc.parse()
		if !ok {
			m.setError("fix the highlighted fields")
			return m, nil
		}
		if err := in.Validate(); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		est := footprint.Compute(in)
		m.calc.result = &est
		m.status = "estimating..."
		m.statusErr = false
		return m, saveEstimateCmd(m.store, est)
	}
	var cmd tea.Cmd
	m.calc.inputs[m.calc.focus], cmd = m.calc.inputs[m.calc.focus].Update(msg)
	return m, cmd
}
