// Command sketchpad replays a script of pointer and tool events against a
// headless sketch and writes the resulting drawing as a PNG image.
//
// Usage:
//
//	sketchpad -script events.yaml [-config sketch.yaml] [-o sketch.png] [-v]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/gogpu/gg"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sketchpad/raster"
	"github.com/npillmayer/sketchpad/sketch"
	"github.com/npillmayer/sketchpad/surface"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	scriptFile := flag.String("script", "", "YAML event script")
	output := flag.String("o", "sketch.png", "output PNG file")
	seed := flag.Int64("seed", 1, "seed for random segments")
	verbose := flag.Bool("v", false, "verbose tracing")
	flag.Parse()

	if err := setupTracing(*verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *scriptFile == "" {
		fmt.Fprintln(os.Stderr, "Error: event script required (-script)")
		flag.Usage()
		os.Exit(1)
	}
	if err := run(*configFile, *scriptFile, *output, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, scriptFile, output string, seed int64) error {
	cfg := sketch.DefaultConfig()
	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return err
		}
		cfg, err = sketch.LoadConfig(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	f, err := os.Open(scriptFile)
	if err != nil {
		return err
	}
	script, err := LoadScript(f)
	f.Close()
	if err != nil {
		return err
	}
	rec := surface.NewRecorder()
	app, err := sketch.NewApp(cfg, rec)
	if err != nil {
		return err
	}
	if err := script.Replay(app, rand.New(rand.NewSource(seed))); err != nil {
		return err
	}
	out, err := os.Create(output)
	if err != nil {
		return err
	}
	w, h := app.Size()
	if err := raster.WritePNG(out, rec, int(w), int(h)); err != nil {
		out.Close()
		return err
	}
	tracing.Select("sketchpad").Infof("%d events replayed, drawing written to %s", len(script), output)
	return out.Close()
}
