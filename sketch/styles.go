package sketch

import (
	"image/color"

	"github.com/npillmayer/sketchpad/surface"
)

var (
	black = color.NRGBA{A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{R: 0x1e, G: 0x5a, B: 0xdc, A: 0xff}
	// stippled fill of the clip rectangle
	shade = color.NRGBA{A: 0x20}
)

// Styles of the primitives of a sketch.
var (
	segmentStyle    = surface.Style{Stroke: black, Width: 2}
	rubberBandStyle = surface.Style{Stroke: red, Width: 2, Dash: 5}
	previewStyle    = surface.Style{Stroke: red, Width: 2, Dash: 5}
	clipRectStyle   = surface.Style{Stroke: black, Fill: shade, Width: 2}
	clippedStyle    = surface.Style{Stroke: blue, Width: 3}
	clippedMarker   = surface.Style{Stroke: blue, Fill: blue, Width: 1}
	markerStyle     = surface.Style{Stroke: black, Fill: red, Width: 1}
	curveStyle      = surface.Style{Stroke: black, Width: 2}
	polylineStyle   = surface.Style{Stroke: black, Width: 1, Dash: 3}
	axisStyle       = surface.Style{Stroke: black, Width: 1}
	tickStyle       = surface.Style{Stroke: red, Width: 1}
)
