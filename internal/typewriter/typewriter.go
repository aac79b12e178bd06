// Package typewriter implements the looping type/erase animation behind the
// hero tagline. It is a plain state machine: callers schedule each step after
// the delay the machine hands back, so the render loop stays in control of
// time and cancellation stays a single operation (drop steps whose generation
// is stale).
package typewriter

import (
	"errors"
	"log/slog"
	"time"
)

// Phase describes what the sequencer is currently doing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTyping
	PhasePausedAfterTyping
	PhaseErasing
	PhasePausedAfterErasing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTyping:
		return "typing"
	case PhasePausedAfterTyping:
		return "paused_after_typing"
	case PhaseErasing:
		return "erasing"
	case PhasePausedAfterErasing:
		return "paused_after_erasing"
	default:
		return "unknown"
	}
}

var (
	// ErrAlreadyRunning is returned by Start when the cycle is in flight.
	ErrAlreadyRunning = errors.New("typewriter: already running")
	// ErrBusy is returned by TypeLine/EraseLine when an operation is in
	// flight. Overlapping calls are rejected rather than queued.
	ErrBusy = errors.New("typewriter: operation in flight")
)

// Timing holds the named step durations. The zero value means "use defaults";
// a Timing with at least one field set is taken literally, so an explicit
// zero pause is honoured.
type Timing struct {
	TypeDelay      time.Duration
	EraseDelay     time.Duration
	PostTypePause  time.Duration
	PostErasePause time.Duration
	StartDelay     time.Duration
}

// DefaultTiming returns the stock timings.
func DefaultTiming() Timing {
	return Timing{
		TypeDelay:      80 * time.Millisecond,
		EraseDelay:     30 * time.Millisecond,
		PostTypePause:  2500 * time.Millisecond,
		PostErasePause: 800 * time.Millisecond,
		StartDelay:     1500 * time.Millisecond,
	}
}

// preEraseDelay precedes the first erase step once the post-type pause has
// elapsed, so the erase does not start on the same frame the pause ends.
const preEraseDelay = 200 * time.Millisecond

// DefaultPlaylist is the fallback rotation used when no playlist is supplied.
func DefaultPlaylist() []string {
	return []string{
		"Clean energy for everyone.",
		"Your roof is a power plant.",
		"Measure it. Then shrink it.",
		"The grid goes green with you.",
	}
}

// Surface receives the whole buffer on every step. Implementations replace
// their visible text; the sequencer never appends or diffs.
type Surface interface {
	SetText(string)
}

// CursorSurface optionally shows a blinking caret next to the text. It is
// toggled once at construction and not touched afterwards.
type CursorSurface interface {
	SetBlink(bool)
}

// Step is one pending scheduled unit of work. The zero value means "nothing
// to schedule". Delay is how long the caller should wait before invoking
// Tick with Gen.
type Step struct {
	Gen   int
	Delay time.Duration
}

// Scheduled reports whether the step should actually be scheduled.
func (s Step) Scheduled() bool { return s.Gen > 0 }

// Snapshot is a read-only view of the sequencer.
type Snapshot struct {
	Running      bool
	Phase        Phase
	Line         int
	Buffer       string
	SurfaceBound bool
	CursorBound  bool
}

// Options configures a Sequencer. Surface is required; everything else has a
// usable default.
type Options struct {
	Surface  Surface
	Cursor   CursorSurface
	Playlist []string
	Timing   Timing
	Logger   *slog.Logger
}

// Sequencer drives the repeating type / pause / erase / pause cycle over a
// cyclic playlist. One instance owns one surface; there is never more than a
// single pending step, so bumping gen cancels everything outstanding.
type Sequencer struct {
	playlist []string
	timing   Timing
	surface  Surface
	cursor   CursorSurface
	log      *slog.Logger

	inert   bool
	loop    bool
	phase   Phase
	line    int
	current []rune
	buffer  []rune
	gen     int
}

// New builds a sequencer bound to a surface. A nil surface is a non-fatal
// configuration error: the instance logs once and every operation becomes a
// no-op.
func New(opts Options) *Sequencer {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	playlist := opts.Playlist
	if len(playlist) == 0 {
		playlist = DefaultPlaylist()
	}
	timing := opts.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming()
	}

	s := &Sequencer{
		playlist: playlist,
		timing:   timing,
		surface:  opts.Surface,
		cursor:   opts.Cursor,
		log:      log,
		phase:    PhaseIdle,
	}
	if s.surface == nil {
		s.inert = true
		log.Warn("typewriter: no text surface bound, sequencer disabled")
		return s
	}
	if s.cursor != nil {
		s.cursor.SetBlink(true)
	}
	return s
}

// Start begins the cycle at the current line index. It returns
// ErrAlreadyRunning when a type or erase is in flight; starting never resets
// the line index. The first character reveal is scheduled after StartDelay.
func (s *Sequencer) Start() (Step, error) {
	if s.inert {
		return Step{}, nil
	}
	if s.phase != PhaseIdle {
		return Step{}, ErrAlreadyRunning
	}
	s.loop = true
	s.phase = PhaseTyping
	s.current = []rune(s.playlist[s.line])
	s.buffer = s.buffer[:0]
	s.surface.SetText("")
	s.gen++
	return Step{Gen: s.gen, Delay: s.timing.StartDelay}, nil
}

// Stop cancels any pending step, clears the buffer and returns the sequencer
// to idle. Safe to call at any time, including when not running.
func (s *Sequencer) Stop() {
	s.gen++ // invalidates the pending step
	s.loop = false
	s.phase = PhaseIdle
	s.buffer = nil
	s.current = nil
	if s.surface != nil {
		s.surface.SetText("")
	}
}

// TypeLine reveals text one character at a time as a one-shot operation; the
// sequencer returns to idle after the full string is shown and the post-type
// pause has elapsed. Returns ErrBusy when an operation is in flight.
func (s *Sequencer) TypeLine(text string) (Step, error) {
	if s.inert {
		return Step{}, nil
	}
	if s.phase != PhaseIdle {
		return Step{}, ErrBusy
	}
	s.loop = false
	s.phase = PhaseTyping
	s.current = []rune(text)
	s.buffer = s.buffer[:0]
	s.surface.SetText("")
	s.gen++
	return Step{Gen: s.gen, Delay: s.timing.TypeDelay}, nil
}

// EraseLine removes characters from the tail of the current buffer as a
// one-shot operation, returning to idle once the buffer is empty. The first
// removal happens after a small fixed pre-erase delay. Returns ErrBusy when
// an operation is in flight.
func (s *Sequencer) EraseLine() (Step, error) {
	if s.inert {
		return Step{}, nil
	}
	if s.phase != PhaseIdle {
		return Step{}, ErrBusy
	}
	s.loop = false
	s.phase = PhaseErasing
	s.gen++
	return Step{Gen: s.gen, Delay: preEraseDelay}, nil
}

// Tick applies the step identified by gen and returns the next one. A stale
// gen (anything but the most recently issued) is dropped: ok is false and no
// state changes. ok is also false when the machine has finished a one-shot
// operation and has nothing further to schedule.
func (s *Sequencer) Tick(gen int) (Step, bool) {
	if s.inert || gen != s.gen || s.phase == PhaseIdle {
		return Step{}, false
	}

	switch s.phase {
	case PhaseTyping:
		// An empty line completes without revealing anything.
		if len(s.buffer) < len(s.current) {
			s.buffer = append(s.buffer, s.current[len(s.buffer)])
			s.surface.SetText(string(s.buffer))
		}
		if len(s.buffer) == len(s.current) {
			s.phase = PhasePausedAfterTyping
			return Step{Gen: s.gen, Delay: s.timing.PostTypePause}, true
		}
		return Step{Gen: s.gen, Delay: s.timing.TypeDelay}, true

	case PhasePausedAfterTyping:
		if !s.loop {
			s.phase = PhaseIdle
			return Step{}, false
		}
		s.phase = PhaseErasing
		return Step{Gen: s.gen, Delay: preEraseDelay}, true

	case PhaseErasing:
		if len(s.buffer) > 0 {
			s.buffer = s.buffer[:len(s.buffer)-1]
			s.surface.SetText(string(s.buffer))
		}
		if len(s.buffer) > 0 {
			return Step{Gen: s.gen, Delay: s.timing.EraseDelay}, true
		}
		if !s.loop {
			s.phase = PhaseIdle
			return Step{}, false
		}
		s.phase = PhasePausedAfterErasing
		return Step{Gen: s.gen, Delay: s.timing.PostErasePause}, true

	case PhasePausedAfterErasing:
		s.line = (s.line + 1) % len(s.playlist)
		s.current = []rune(s.playlist[s.line])
		s.phase = PhaseTyping
		return Step{Gen: s.gen, Delay: s.timing.TypeDelay}, true
	}
	return Step{}, false
}

// State returns a read-only snapshot.
func (s *Sequencer) State() Snapshot {
	return Snapshot{
		Running:      s.phase != PhaseIdle,
		Phase:        s.phase,
		Line:         s.line,
		Buffer:       string(s.buffer),
		SurfaceBound: s.surface != nil,
		CursorBound:  s.cursor != nil,
	}
}
