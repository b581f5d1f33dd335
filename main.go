package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/matt-g-everett/huygens/display"
	"github.com/matt-g-everett/huygens/plot"
	"github.com/matt-g-everett/huygens/scene"
	"github.com/matt-g-everett/huygens/stream"
)

type app struct {
	Config Config
	Scene  *scene.Scene
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) readConfig(configPath string) {
	config, err := loadConfigOrDefault(configPath)
	if err != nil {
		log.Fatalf("Reading config %s: %v", configPath, err)
	}
	a.Config = config
}

func (a *app) openSink() stream.Sink {
	switch a.Config.Output.Mode {
	case stream.ModeGIF:
		f, err := os.Create(a.Config.Output.Path)
		if err != nil {
			log.Fatal(err)
		}
		return stream.NewGIFSink(f, a.Config.Animation.Interval(), a.Config.Animation.Repeat)
	case stream.ModePNG:
		sink, err := stream.NewPNGSink(a.Config.Output.Path)
		if err != nil {
			log.Fatal(err)
		}
		return sink
	}
	log.Fatalf("Output mode %q does not write frames", a.Config.Output.Mode)
	return nil
}

func (a *app) capture() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sink := a.openSink()
	canvas := plot.NewRaster(a.Config.Output.Width, a.Config.Output.Height)
	streamer := stream.NewStreamer(a.Config.Animation, a.Config.Output.Realtime, a.Scene, a.Scene, canvas, sink)

	log.Printf("Rendering %d frames to %s", a.Config.Animation.Frames, a.Config.Output.Path)
	err := streamer.Run(ctx)
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Done")
}

func (a *app) show() {
	w := display.NewWindow(a.Config.Animation, a.Scene, a.Config.Output.Width, a.Config.Output.Height)
	if err := w.Run("Huygens Principle"); err != nil {
		log.Fatal(err)
	}
}

func main() {
	// Parse command line parameters
	configPath := flag.String("config", defaultConfigPath, "YAML config file.")
	mode := flag.String("mode", "", "Output mode: window, gif or png.")
	out := flag.String("out", "", "Output file (gif) or directory (png).")
	flag.Parse()

	a := newApp()
	a.readConfig(*configPath)
	if *mode != "" {
		a.Config.Output.Mode = *mode
	}
	if *out != "" {
		a.Config.Output.Path = *out
	}
	if err := a.Config.Validate(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Config: %+v", a.Config)

	s, err := scene.New(a.Config.Scene, a.Config.Animation.Interval())
	if err != nil {
		log.Fatal(err)
	}
	s.SetPointScale(a.Config.Output.PointScale)
	a.Scene = s

	if a.Config.Output.Mode == stream.ModeWindow {
		a.show()
		return
	}
	a.capture()
}
