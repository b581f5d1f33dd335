// Package transition interpolates points, curves, colours and axis limits
// against a shared frame clock.
//
// Each Transition is driven by repeated calls carrying the current clock
// value. The progress factor is clamped to [0, 1], so any number of
// transitions with different, overlapping windows can be applied on the
// same tick without a scheduler.
package transition

// Timing describes the window of a transition on the clock.
type Timing struct {
	Start    float64
	Duration float64
	Easing   Easing
}

// Factor computes the eased progress of tm at clock value now. A
// non-positive duration snaps straight to the end state once now reaches
// the start.
func Factor(now float64, tm Timing) float64 {
	elapsed := now - tm.Start
	if tm.Duration <= 0 {
		if elapsed >= 0 {
			return 1
		}
		return 0
	}
	return tm.Easing.Ease(clamp01(elapsed / tm.Duration))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// A Transition tracks one animated change. It is either unstarted or
// started at a fixed clock origin: the clock value of the first call. The
// Timing passed on every call is measured from that origin, so a transition
// first driven late in playback still runs its whole window from there.
type Transition struct {
	started bool
	origin  float64
}

// New creates an unstarted Transition.
func New() *Transition {
	return new(Transition)
}

// Started reports whether the transition has been driven at least once.
func (t *Transition) Started() bool {
	return t.started
}

// Origin returns the clock value captured on the first call, if any.
func (t *Transition) Origin() (float64, bool) {
	return t.origin, t.started
}

// Progress returns the eased factor at now. The first call fixes the origin.
func (t *Transition) Progress(now float64, tm Timing) float64 {
	if !t.started {
		t.origin = now
		t.started = true
	}
	return Factor(now-t.origin, tm)
}

// advance is Progress plus whether the window has opened.
func (t *Transition) advance(now float64, tm Timing) (float64, bool) {
	f := t.Progress(now, tm)
	return f, now-t.origin >= tm.Start
}

// Reset returns the transition to the unstarted state.
func (t *Transition) Reset() {
	t.started = false
	t.origin = 0
}
