// Package tui is the terminal front end: one scrollable page of sections
// with the hero typewriter, animated impact counters, the footprint
// calculator and a contact form.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantgrid/verdant/internal/anim"
	"github.com/verdantgrid/verdant/internal/content"
	"github.com/verdantgrid/verdant/internal/footprint"
	"github.com/verdantgrid/verdant/internal/typewriter"
)

const (
	scrollDuration  = 400 * time.Millisecond
	counterDuration = 1200 * time.Millisecond
	revealStagger   = 250 * time.Millisecond
	historyLimit    = 5
	lineScrollStep  = 2
)

// Options wires the page model together at startup.
type Options struct {
	Site          content.Site
	Store         *footprint.Store
	Timing        typewriter.Timing
	Playlist      []string
	ReducedMotion bool
	Logger        *slog.Logger
}

type model struct {
	site          content.Site
	store         *footprint.Store
	seq           *typewriter.Sequencer
	hero          *heroSurface
	keys          keyMap
	log           *slog.Logger
	reducedMotion bool

	width  int
	height int

	offset        int
	scroll        *anim.Scroll
	activeSection content.SectionID

	featuresRevealAt time.Time
	countersStartAt  time.Time
	frameLoop        bool

	formMode     bool
	helpExpanded bool
	calc         calcState
	contact      contactState
	palette      paletteState

	estimates []footprint.Estimate

	status    string
	statusErr bool
}

// New builds the page model. The typewriter binds to the hero surface
// here; everything else stays plain data until the program starts.
func New(opts Options) model {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	site := opts.Site
	if site.Brand == "" {
		site = content.Default()
	}
	playlist := opts.Playlist
	if len(playlist) == 0 {
		playlist = site.Playlist
	}

	hero := &heroSurface{}
	seq := typewriter.New(typewriter.Options{
		Surface:  hero,
		Cursor:   hero,
		Playlist: playlist,
		Timing:   opts.Timing,
		Logger:   log,
	})

	m := model{
		site:          site,
		store:         opts.Store,
		seq:           seq,
		hero:          hero,
		keys:          newKeyMap(),
		log:           log,
		reducedMotion: opts.ReducedMotion,
		calc:          newCalcState(),
		contact:       newContactState(),
		palette:       newPaletteState(site),
		status:        "tab: next section · /: jump · q: quit",
	}
	if opts.ReducedMotion && len(playlist) > 0 {
		// No animation: pin the first tagline instead of typing it.
		hero.SetText(playlist[0])
		hero.SetBlink(false)
	}
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadEstimatesCmd(m.store)}
	if !m.reducedMotion {
		step, err := m.seq.Start()
		if err != nil {
			m.log.Warn("typewriter start", "err", err)
		}
		if c := stepCmd(step); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case typeStepMsg:
		st, ok := m.seq.Tick(msg.gen)
		if !ok {
			return m, nil
		}
		return m, stepCmd(st)
	case frameMsg:
		return m.handleFrame(time.Time(msg))
	case estimatesLoadedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("history load failed: %v", msg.err))
			return m, nil
		}
		m.estimates = msg.estimates
		return m, nil
	case estimateSavedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("save failed: %v", msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("estimated %.1f t CO2e/year — saved", footprint.Tonnes(msg.est.TotalKg))
		m.statusErr = false
		return m, loadEstimatesCmd(m.store)
	case historyClearedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("clear failed: %v", msg.err))
			return m, nil
		}
		m.estimates = nil
		m.status = "history cleared"
		m.statusErr = false
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		m.clampOffset()
		m.triggerReveals(time.Now())
		return m, m.ensureFrameLoop()
	case tea.KeyMsg:
		if m.palette.open {
			return m.updatePalette(msg)
		}
		if m.formMode {
			return m.updateForm(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	page := m.renderPage(time.Now())
	if m.palette.open {
		return m.renderPaletteOver(page)
	}
	return page
}

// handleFrame advances the transient animations and keeps the frame loop
// alive while any of them still runs.
func (m model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.scroll != nil {
		m.offset = m.scroll.At(now)
		if m.scroll.Done(now) {
			m.scroll = nil
		}
		m.syncActiveSection()
	}
	m.triggerReveals(now)

	if m.animating(now) {
		return m, frameCmd()
	}
	m.frameLoop = false
	return m, nil
}

func (m *model) animating(now time.Time) bool {
	if m.scroll != nil {
		return true
	}
	if !m.featuresRevealAt.IsZero() {
		total := revealStagger * time.Duration(len(m.site.Features)+1)
		if now.Sub(m.featuresRevealAt) < total {
			return true
		}
	}
	if !m.countersStartAt.IsZero() && now.Sub(m.countersStartAt) < counterDuration {
		return true
	}
	return false
}

// ensureFrameLoop starts the frame ticker unless one is already pending.
func (m *model) ensureFrameLoop() tea.Cmd {
	if m.frameLoop {
		return nil
	}
	m.frameLoop = true
	return frameCmd()
}

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		next := (m.activeSection + 1) % content.SectionCount
		return m.scrollToSection(next)
	case "shift+tab":
		prev := (m.activeSection - 1 + content.SectionCount) % content.SectionCount
		return m.scrollToSection(prev)
	case "1", "2", "3", "4", "5":
		return m.scrollToSection(content.SectionID(msg.String()[0] - '1'))
	case "down", "j":
		m.scroll = nil
		m.offset += lineScrollStep
		m.clampOffset()
		m.syncActiveSection()
		return m, m.ensureFrameLoop()
	case "up", "k":
		m.scroll = nil
		m.offset -= lineScrollStep
		m.clampOffset()
		m.syncActiveSection()
		return m, m.ensureFrameLoop()
	case "g", "home":
		return m.scrollToSection(content.SectionHero)
	case "G", "end":
		return m.scrollToSection(content.SectionContact)
	case "/":
		m.palette.openWith("")
		return m, nil
	case "i", "enter":
		if m.activeSection == content.SectionCalculator || m.activeSection == content.SectionContact {
			m.formMode = true
			m.focusForm()
		}
		return m, nil
	case "s":
		return m.toggleTypewriter()
	case "?":
		m.helpExpanded = !m.helpExpanded
		return m, nil
	case "x":
		if m.activeSection == content.SectionCalculator {
			m.status = "clearing history..."
			m.statusErr = false
			return m, clearHistoryCmd(m.store)
		}
		return m, nil
	}
	return m, nil
}

// toggleTypewriter stops the hero animation if it runs, restarts it
// otherwise. Restart resumes at the line the sequencer was stopped on.
func (m model) toggleTypewriter() (tea.Model, tea.Cmd) {
	if m.seq.State().Running {
		m.seq.Stop()
		m.status = "tagline paused"
		m.statusErr = false
		return m, nil
	}
	step, err := m.seq.Start()
	if err != nil {
		m.setError(fmt.Sprintf("tagline start failed: %v", err))
		return m, nil
	}
	m.status = "tagline running"
	m.statusErr = false
	return m, stepCmd(step)
}

func (m *model) setError(text string) {
	m.status = text
	m.statusErr = true
	m.log.Error(text)
}

func (m *model) focusForm() {
	switch m.activeSection {
	case content.SectionCalculator:
		m.calc.focusFirst()
	case content.SectionContact:
		m.contact.focusFirst()
	}
}

func (m *model) resizeInputs() {
	w := m.contentWidth() - 24
	if w < 16 {
		w = 16
	}
	m.calc.setWidth(w)
	m.contact.setWidth(w)
}
