package transition

// A Step is one scripted transition bound to its parameters and target.
type Step interface {
	Apply(now float64)
}

// StepFunc adapts a function to a Step.
type StepFunc func(now float64)

// Apply calls f(now).
func (f StepFunc) Apply(now float64) {
	f(now)
}

// Sequence is an ordered list of steps sharing one clock.
type Sequence []Step

// Apply runs every step in declaration order, so later steps win when two
// of them write the same target on the same tick.
func (s Sequence) Apply(now float64) {
	for _, step := range s {
		step.Apply(now)
	}
}
