package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantgrid/verdant/internal/config"
	"github.com/verdantgrid/verdant/internal/content"
	"github.com/verdantgrid/verdant/internal/database"
	"github.com/verdantgrid/verdant/internal/footprint"
	"github.com/verdantgrid/verdant/internal/logging"
	"github.com/verdantgrid/verdant/internal/tui"
	"github.com/verdantgrid/verdant/internal/typewriter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	closer, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	store := &footprint.Store{DB: db}

	slog.Info("starting", "db", cfg.Database.Path)

	p := tea.NewProgram(tui.New(tui.Options{
		Site:          content.Default(),
		Store:         store,
		Timing:        timingFromConfig(cfg.Typewriter),
		Playlist:      cfg.Typewriter.Playlist,
		ReducedMotion: cfg.UI.ReducedMotion,
		Logger:        slog.Default(),
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// timingFromConfig maps millisecond config fields onto the sequencer's
// timing. An all-zero config keeps the stock timings.
func timingFromConfig(c config.TypewriterConfig) typewriter.Timing {
	t := typewriter.Timing{
		TypeDelay:      time.Duration(c.TypeDelayMS) * time.Millisecond,
		EraseDelay:     time.Duration(c.EraseDelayMS) * time.Millisecond,
		PostTypePause:  time.Duration(c.PostTypePauseMS) * time.Millisecond,
		PostErasePause: time.Duration(c.PostErasePauseMS) * time.Millisecond,
		StartDelay:     time.Duration(c.StartDelayMS) * time.Millisecond,
	}
	if t == (typewriter.Timing{}) {
		return typewriter.DefaultTiming()
	}
	d := typewriter.DefaultTiming()
	if t.TypeDelay == 0 {
		t.TypeDelay = d.TypeDelay
	}
	if t.EraseDelay == 0 {
		t.EraseDelay = d.EraseDelay
	}
	if t.PostTypePause == 0 {
		t.PostTypePause = d.PostTypePause
	}
	if t.PostErasePause == 0 {
		t.PostErasePause = d.PostErasePause
	}
	if t.StartDelay == 0 {
		t.StartDelay = d.StartDelay
	}
	return t
}
