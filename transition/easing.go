package transition

import (
	"fmt"

	"github.com/fogleman/ease"
)

// Easing reshapes raw linear progress into the factor applied to a transition.
type Easing int

const (
	// Linear advances at a constant rate.
	Linear Easing = iota
	// Sine starts fast and settles smoothly (ease-out sine).
	Sine
)

// ParseEasing maps a configured easing name onto an Easing. An empty name
// means Linear.
func ParseEasing(name string) (Easing, error) {
	switch name {
	case "", "linear":
		return Linear, nil
	case "sine":
		return Sine, nil
	}
	return Linear, fmt.Errorf("unknown easing %q", name)
}

// Ease applies the easing curve to p, which must already be in [0, 1].
func (e Easing) Ease(p float64) float64 {
	switch e {
	case Sine:
		return ease.OutSine(p)
	case Linear:
		return ease.Linear(p)
	}
	panic(fmt.Sprintf("transition: invalid easing %d", int(e)))
}

func (e Easing) String() string {
	switch e {
	case Linear:
		return "linear"
	case Sine:
		return "sine"
	}
	return fmt.Sprintf("Easing(%d)", int(e))
}

// UnmarshalYAML lets easings be named in config files.
func (e *Easing) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseEasing(name)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
