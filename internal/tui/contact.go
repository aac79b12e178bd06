package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// contactState is the enquiry form: name, email and message. Nothing is
// sent anywhere; a valid submit just acknowledges and clears.
type contactState struct {
	inputs    []textinput.Model
	labels    []string
	focus     int
	errs      []string
	submitted bool
}

func newContactState() contactState {
	labels := []string{"Name", "Email", "Message"}
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 120
		ti.Width = 40
		ti.Prompt = "> "
		ti.Cursor.Style = cursorStyle
		inputs[i] = ti
	}
	inputs[0].Placeholder = "Ada Lovelace"
	inputs[1].Placeholder = "ada@example.com"
	inputs[2].Placeholder = "We have a 40m² flat roof facing south..."
	return contactState{inputs: inputs, labels: labels, errs: make([]string, len(labels))}
}

func (c *contactState) focusFirst() {
	c.focus = 0
	for i := range c.inputs {
		if i == 0 {
			c.inputs[i].Focus()
		} else {
			c.inputs[i].Blur()
		}
	}
}

func (c *contactState) blurAll() {
	for i := range c.inputs {
		c.inputs[i].Blur()
	}
}

func (c *contactState) cycle(delta int) {
	c.inputs[c.focus].Blur()
	c.focus = (c.focus + delta + len(c.inputs)) % len(c.inputs)
	c.inputs[c.focus].Focus()
}

func (c *contactState) setWidth(w int) {
	for i := range c.inputs {
		c.inputs[i].Width = w
	}
}

// validate fills per-field errors. Email gets a cheap shape check only.
func (c *contactState) validate() bool {
	ok := true
	name := strings.TrimSpace(c.inputs[0].Value())
	email := strings.TrimSpace(c.inputs[1].Value())
	message := strings.TrimSpace(c.inputs[2].Value())

	c.errs[0], c.errs[1], c.errs[2] = "", "", ""
	if name == "" {
		c.errs[0] = "required"
		ok = false
	}
	if email == "" {
		c.errs[1] = "required"
		ok = false
	} else if !validEmail(email) {
		c.errs[1] = "does not look like an email"
		ok = false
	}
	if message == "" {
		c.errs[2] = "required"
		ok = false
	}
	return ok
}

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func (c *contactState) reset() {
	for i := range c.inputs {
		c.inputs[i].SetValue("")
		c.errs[i] = ""
	}
}

func (c *contactState) render(active bool) string {
	var b strings.Builder
	for i := range c.inputs {
		b.WriteString(inputLabelStyle.Render(padRight(c.labels[i], 12)))
		b.WriteString(c.inputs[i].View())
		if c.errs[i] != "" {
			b.WriteString("  ")
			b.WriteString(fieldErrStyle.Render(c.errs[i]))
		}
		b.WriteString("\n")
	}
	if c.submitted {
		b.WriteString(resultStyle.Render("Thanks — we'll be in touch."))
		b.WriteString("\n")
	}
	if active {
		b.WriteString(statLabelStyle.Render("tab next field · enter send · esc done"))
	} else {
		b.WriteString(statLabelStyle.Render("press i to fill in the form"))
	}
	return b.String()
}

func (m model) updateContactForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.formMode = false
		m.contact.blurAll()
		return m, nil
	case "tab", "down":
		m.contact.cycle(1)
		return m, nil
	case "shift+tab", "up":
		m.contact.cycle(-1)
		return m, nil
	case "enter":
		if !m.contact.validate() {
			m.setError("fix the highlighted fields")
			return m, nil
		}
		m.log.Info("contact enquiry",
			"name", strings.TrimSpace(m.contact.inputs[0].Value()),
			"email", strings.TrimSpace(m.contact.inputs[1].Value()))
		m.contact.reset()
		m.contact.submitted = true
		m.contact.blurAll()
		m.formMode = false
		m.status = "message sent"
		m.statusErr = false
		return m, nil
	}
	var cmd tea.Cmd
	m.contact.inputs[m.contact.focus], cmd = m.contact.inputs[m.contact.focus].Update(msg)
	return m, cmd
}
