package tui

// heroSurface is the sequencer's render target. The sequencer replaces the
// whole text on every step; View reads it back when drawing the hero.
type heroSurface struct {
	text  string
	blink bool
}

func (h *heroSurface) SetText(s string) { h.text = s }

func (h *heroSurface) SetBlink(b bool) { h.blink = b }
