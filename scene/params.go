package scene

import (
	"errors"
	"fmt"

	"github.com/matt-g-everett/huygens/plot"
	"github.com/matt-g-everett/huygens/transition"
)

// Params tunes the Huygens script. Times are in seconds of playback.
type Params struct {
	Samples     int               `yaml:"samples"`
	Sources     int               `yaml:"sources"`
	Radius      float64           `yaml:"radius"`
	WaveTime    float64           `yaml:"waveTime"`
	DotSize     float64           `yaml:"dotSize"`
	DotTime     float64           `yaml:"dotTime"`
	SourceTime  float64           `yaml:"sourceTime"`
	DefaultTime float64           `yaml:"defaultTime"`
	View        float64           `yaml:"view"`
	ZoomedView  float64           `yaml:"zoomedView"`
	FrontEasing transition.Easing `yaml:"frontEasing"`
	DotEasing   transition.Easing `yaml:"dotEasing"`
	WaveEasing  transition.Easing `yaml:"waveEasing"`
	Colormap    string            `yaml:"colormap"`
}

// DefaultParams returns the parameters of the original script.
func DefaultParams() Params {
	return Params{
		Samples:     100,
		Sources:     8,
		Radius:      12,
		WaveTime:    11.5,
		DotSize:     20,
		DotTime:     12.7,
		SourceTime:  17.5,
		DefaultTime: 1,
		View:        4,
		ZoomedView:  7.5,
		FrontEasing: transition.Sine,
		DotEasing:   transition.Sine,
		WaveEasing:  transition.Linear,
		Colormap:    "binary",
	}
}

// Validate checks that the script can be built from p.
func (p Params) Validate() error {
	if p.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", p.Samples)
	}
	if p.Sources < 1 {
		return fmt.Errorf("sources must be at least 1, got %d", p.Sources)
	}
	if p.View <= 0 || p.ZoomedView <= 0 {
		return errors.New("view bounds must be positive")
	}
	if _, ok := plot.Colormap(p.Colormap); !ok {
		return fmt.Errorf("unknown colormap %q", p.Colormap)
	}
	return nil
}
