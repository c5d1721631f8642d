package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/npillmayer/sketchpad/sketch"
	"github.com/npillmayer/sketchpad/spline"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrUnknownEvent is returned for script steps naming no known event.
var ErrUnknownEvent = errors.New("unknown event")

// Step is a single event of a script: an event name followed by its
// arguments, e.g. [down, 100, 250].
type Step []interface{}

// Script is a sequence of events, written as a YAML list:
//
//	- [tool, edit]
//	- [down, 100, 250]
//	- [up, 100, 250]
//	- [boundary, periodic]
//	- [resize, 1200, 900]
type Script []Step

// LoadScript reads an event script in YAML format.
func LoadScript(r io.Reader) (Script, error) {
	var script Script
	if err := yaml.NewDecoder(r).Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot read script: %w", err)
	}
	return script, nil
}

// Replay delivers the events of a script to an application, one at a time.
// It stops at the first malformed step.
func (script Script) Replay(app *sketch.App, rnd *rand.Rand) error {
	for i, step := range script {
		if err := step.deliver(app, rnd); err != nil {
			return fmt.Errorf("step #%d %v: %w", i+1, []interface{}(step), err)
		}
	}
	return nil
}

func (step Step) deliver(app *sketch.App, rnd *rand.Rand) error {
	if len(step) == 0 {
		return fmt.Errorf("%w: empty step", ErrUnknownEvent)
	}
	event := cast.ToString(step[0])
	switch event {
	case "down", "move", "up", "resize":
		x, y, err := step.ints()
		if err != nil {
			return err
		}
		switch event {
		case "down":
			app.OnPointerDown(x, y)
		case "move":
			app.OnPointerMove(x, y)
		case "up":
			app.OnPointerUp(x, y)
		case "resize":
			app.OnResize(x, y)
		}
	case "tool":
		t, err := sketch.ParseTool(step.name())
		if err != nil {
			return err
		}
		return app.OnToolSelected(t)
	case "boundary":
		b, err := spline.ParseBoundary(step.name())
		if err != nil {
			return err
		}
		app.OnBoundaryTypeSelected(b)
	case "random":
		n := 1
		if len(step) > 1 {
			var err error
			if n, err = cast.ToIntE(step[1]); err != nil {
				return err
			}
		}
		for ; n > 0; n-- {
			app.RandomSegment(rnd)
		}
	case "clear":
		app.Clear()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return nil
}

func (step Step) ints() (int, int, error) {
	if len(step) != 3 {
		return 0, 0, fmt.Errorf("event %v needs 2 arguments", step[0])
	}
	x, err := cast.ToIntE(step[1])
	if err != nil {
		return 0, 0, err
	}
	y, err := cast.ToIntE(step[2])
	return x, y, err
}

func (step Step) name() string {
	if len(step) < 2 {
		return ""
	}
	return cast.ToString(step[1])
}
