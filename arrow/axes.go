package arrow

import (
	"fmt"

	"github.com/npillmayer/sketchpad"
)

// Axes is a coordinate cross made of a vertical and a horizontal arrow,
// each with tick marks on the outer side.
type Axes struct {
	Y, X           Arrow
	YTicks, XTicks []Tick
}

// Margins of the coordinate cross within the drawing surface.
const (
	axisMargin = 50 // distance of the axes from the left and bottom border
	tipMargin  = 20 // distance of the arrow tips from the top and right border
)

// BuildAxes builds a coordinate cross for a surface of the given size, with
// default metrics.
func BuildAxes(width, height float64) (Axes, error) {
	return defaultBuilder.Axes(width, height)
}

// Axes builds a coordinate cross for a surface of the given size. The
// vertical arrow points upwards at a distance of 50 from the left border,
// the horizontal arrow points to the right at a distance of 50 from the
// bottom border. Ticks of the vertical arrow are drawn to its left, ticks of
// the horizontal arrow below it.
//
// The cross does not adapt to size changes. Callers are expected to discard
// it and build a new one.
func (b *Builder) Axes(width, height float64) (Axes, error) {
	var axes Axes
	var err error
	if axes.Y, err = b.Arrow(sketchpad.P(axisMargin, height), sketchpad.P(axisMargin, tipMargin)); err != nil {
		return Axes{}, fmt.Errorf("y-axis for %gx%g: %w", width, height, err)
	}
	if axes.X, err = b.Arrow(sketchpad.P(0, height-axisMargin), sketchpad.P(width-tipMargin, height-axisMargin)); err != nil {
		return Axes{}, fmt.Errorf("x-axis for %gx%g: %w", width, height, err)
	}
	axes.YTicks = b.Ticks(axes.Y, Left)
	axes.XTicks = b.Ticks(axes.X, Right)
	tracer().Infof("axes for %gx%g: %d+%d ticks", width, height, len(axes.YTicks), len(axes.XTicks))
	return axes, nil
}
