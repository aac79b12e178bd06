// Package anim holds the small interpolation helpers behind the animated
// counters, staggered reveals and smooth scrolling. Everything is expressed
// as pure functions of elapsed progress so the render loop owns time.
package anim

import "time"

// Linear is the identity easing.
func Linear(t float64) float64 { return clamp01(t) }

// EaseOutCubic decelerates toward the end of the animation.
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Progress maps elapsed time onto [0,1] for a given duration. A zero or
// negative duration is complete immediately.
func Progress(start, now time.Time, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(start)) / float64(d))
}

// Counter animates an integer from zero to Target over Duration.
type Counter struct {
	Target   int
	Duration time.Duration
}

// Value returns the displayed count at progress t, eased so the count slows
// as it approaches the target. At t>=1 it is exactly Target.
func (c Counter) Value(t float64) int {
	eased := EaseOutCubic(t)
	if eased >= 1 {
		return c.Target
	}
	return int(eased * float64(c.Target))
}

// Reveal staggers per-item appearance across a section: item i becomes
// visible once overall progress passes i's slot. Stagger is the fraction of
// the total duration separating neighbouring items.
type Reveal struct {
	Items   int
	Stagger float64
}

// Visible returns how many items are shown at progress t. All items are
// shown at t>=1 regardless of stagger.
func (r Reveal) Visible(t float64) int {
	t = clamp01(t)
	if r.Items <= 0 {
		return 0
	}
	if t >= 1 {
		return r.Items
	}
	if r.Stagger <= 0 {
		return r.Items
	}
	n := int(t/r.Stagger) + 1
	if n > r.Items {
		n = r.Items
	}
	return n
}

// Scroll interpolates a scroll offset from From to To over Duration with
// ease-out, landing exactly on To.
type Scroll struct {
	From     int
	To       int
	Start    time.Time
	Duration time.Duration
}

// At returns the offset at the given instant.
func (s Scroll) At(now time.Time) int {
	t := EaseOutCubic(Progress(s.Start, now, s.Duration))
	if t >= 1 {
		return s.To
	}
	return s.From + int(t*float64(s.To-s.From))
}

// Done reports whether the scroll has reached its target.
func (s Scroll) Done(now time.Time) bool {
	return Progress(s.Start, now, s.Duration) >= 1
}
