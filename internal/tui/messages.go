package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantgrid/verdant/internal/footprint"
	"github.com/verdantgrid/verdant/internal/typewriter"
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

// typeStepMsg carries one scheduled typewriter step. Steps issued before a
// Stop/restart carry a stale generation and are dropped by the sequencer.
type typeStepMsg struct {
	gen int
}

// frameMsg drives the transient animations (smooth scroll, counters,
// reveals) at a fixed cadence while any of them is active.
type frameMsg time.Time

type estimateSavedMsg struct {
	est footprint.Estimate
	err error
}

type estimatesLoadedMsg struct {
	estimates []footprint.Estimate
	err       error
}

type historyClearedMsg struct {
	err error
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

const frameInterval = 33 * time.Millisecond // ~30fps

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// stepCmd schedules the sequencer's next step. A zero step schedules nothing.
func stepCmd(st typewriter.Step) tea.Cmd {
	if !st.Scheduled() {
		return nil
	}
	return tea.Tick(st.Delay, func(time.Time) tea.Msg {
		return typeStepMsg{gen: st.Gen}
	})
}

func saveEstimateCmd(store *footprint.Store, est footprint.Estimate) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return estimateSavedMsg{est: est}
		}
		err := store.Save(context.Background(), est)
		return estimateSavedMsg{est: est, err: err}
	}
}

func loadEstimatesCmd(store *footprint.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return estimatesLoadedMsg{}
		}
		estimates, err := store.Recent(context.Background(), historyLimit)
		return estimatesLoadedMsg{estimates: estimates, err: err}
	}
}

func clearHistoryCmd(store *footprint.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return historyClearedMsg{}
		}
		return historyClearedMsg{err: store.Clear(context.Background())}
	}
}
