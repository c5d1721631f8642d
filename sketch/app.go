/*
Package sketch is the application layer of an interactive drawing surface.
It receives pointer, resize and tool-selection events and drives the geometry
core: segments are clipped against a user-defined rectangle, a spline is
fitted through editable control points, and a coordinate cross is kept in
sync with the size of the surface.

Events are delivered one at a time by an external event loop. Every event is
handled to completion before the next one arrives; App is therefore not safe
for concurrent use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sketch

import (
	"fmt"
	"math/rand"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sketchpad"
	"github.com/npillmayer/sketchpad/arrow"
	"github.com/npillmayer/sketchpad/clip"
	"github.com/npillmayer/sketchpad/spline"
	"github.com/npillmayer/sketchpad/surface"
)

// tracer writes to trace with key 'sketchpad.sketch'
func tracer() tracing.Trace {
	return tracing.Select("sketchpad.sketch")
}

// Owners of axis primitives.
const (
	yAxis = 0
	xAxis = 1
)

// App is the application state of a sketch: the active tool, the user's
// segments, the clip rectangle and the spline model. Everything visible is
// drawn onto a surface.
type App struct {
	cfg      Config
	surf     surface.Surface
	width    float64
	height   float64
	tool     Tool
	handler  handler
	segments []sketchpad.Segment
	clipRect *sketchpad.Rect
	model    *spline.Model
	axes     *arrow.Builder
}

// NewApp creates an application drawing onto surf, and draws the coordinate
// cross. The configuration must be valid.
func NewApp(cfg Config, surf surface.Surface) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{
		cfg:     cfg,
		surf:    surf,
		width:   float64(cfg.Width),
		height:  float64(cfg.Height),
		handler: noTool{},
		model:   spline.NewModel(cfg.Spline.Boundary, cfg.Spline.Samples),
		axes:    cfg.arrowBuilder(),
	}
	a.model.SetTolerance(cfg.Spline.XTolerance)
	a.drawAxes()
	return a, nil
}

// Size returns the current size of the surface.
func (a *App) Size() (float64, float64) {
	return a.width, a.height
}

// Tool returns the active tool.
func (a *App) Tool() Tool {
	return a.tool
}

// State returns the state of the active tool.
func (a *App) State() State {
	return a.handler.current().state
}

// Segments returns a copy of the user's segments.
func (a *App) Segments() []sketchpad.Segment {
	return append([]sketchpad.Segment(nil), a.segments...)
}

// ClipRect returns the clip rectangle, if one is defined.
func (a *App) ClipRect() (sketchpad.Rect, bool) {
	if a.clipRect == nil {
		return sketchpad.Rect{}, false
	}
	return *a.clipRect, true
}

// Model returns the spline model.
func (a *App) Model() *spline.Model {
	return a.model
}

// --- Events ----------------------------------------------------------------

// OnPointerDown is called for a pointer press at (x,y).
func (a *App) OnPointerDown(x, y int) {
	a.handler.down(a, sketchpad.P(float64(x), float64(y)))
}

// OnPointerMove is called for pointer motion to (x,y).
func (a *App) OnPointerMove(x, y int) {
	a.handler.move(a, sketchpad.P(float64(x), float64(y)))
}

// OnPointerUp is called for a pointer release at (x,y).
func (a *App) OnPointerUp(x, y int) {
	a.handler.up(a, sketchpad.P(float64(x), float64(y)))
}

// OnToolSelected switches tools. The previous tool is unbound first, which
// discards its work in progress.
func (a *App) OnToolSelected(t Tool) error {
	if t < ToolNone || t > ToolEdit {
		return fmt.Errorf("%w: %s", ErrUnknownTool, t)
	}
	a.handler.unbind(a)
	a.tool, a.handler = t, handlerFor(t)
	tracer().Infof("tool %s selected", t)
	return nil
}

// OnBoundaryTypeSelected selects the boundary condition of the spline. An
// existing curve is re-fitted immediately.
func (a *App) OnBoundaryTypeSelected(b spline.Boundary) {
	a.model.SetBoundary(b)
	tracer().Infof("boundary condition %s selected", b)
	if a.model.Len() > 0 {
		a.drawSpline()
	}
}

// OnResize is called when the surface has changed its size. All primitives
// are scaled by the ratio of new to old size, and so are the segments, the
// clip rectangle and the control points. The coordinate cross is built anew.
func (a *App) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		tracer().Errorf("ignoring resize to %dx%d", width, height)
		return
	}
	w, h := float64(width), float64(height)
	kx, ky := w/a.width, h/a.height
	a.width, a.height = w, h
	a.surf.ScaleAll(0, 0, kx, ky)
	m := sketchpad.Scaling(sketchpad.Origin, kx, ky)
	for i, s := range a.segments {
		a.segments[i] = sketchpad.Segment{P1: m.Transform(s.P1), P2: m.Transform(s.P2)}
	}
	if a.clipRect != nil {
		r := sketchpad.R(m.Transform(sketchpad.P(a.clipRect.XMin, a.clipRect.YMin)),
			m.Transform(sketchpad.P(a.clipRect.XMax, a.clipRect.YMax)))
		a.clipRect = &r
	}
	a.model.Scale(kx, ky)
	a.handler.rescale(m)
	a.drawAxes()
	tracer().Infof("resized to %dx%d", width, height)
}

// RandomSegment adds a segment between two random points of the surface.
func (a *App) RandomSegment(rnd *rand.Rand) {
	p1 := sketchpad.P(float64(rnd.Intn(int(a.width)+1)), float64(rnd.Intn(int(a.height)+1)))
	p2 := sketchpad.P(float64(rnd.Intn(int(a.width)+1)), float64(rnd.Intn(int(a.height)+1)))
	a.addSegment(sketchpad.Segment{P1: p1, P2: p2})
}

// Clear removes all segments.
func (a *App) Clear() {
	a.surf.DeleteByTag(surface.All(surface.KindSegment))
	a.segments = a.segments[:0]
	a.drawClipped()
}

// --- Drawing ---------------------------------------------------------------

func (a *App) addSegment(s sketchpad.Segment) {
	owner := len(a.segments)
	a.segments = append(a.segments, s)
	a.surf.CreateSegment(s.P1, s.P2, segmentStyle, surface.T(surface.KindSegment, owner))
	tracer().Debugf("segment #%d %s", owner, s)
	a.drawClipped()
}

func (a *App) setClipRect(r sketchpad.Rect) {
	a.clipRect = &r
	a.surf.CreatePolygon(r.Corners(), clipRectStyle, surface.T(surface.KindClipRect, 0))
	tracer().Infof("clip rectangle %s", r)
	a.drawClipped()
}

func (a *App) removeClipRect() {
	a.surf.DeleteByTag(surface.All(surface.KindClipRect))
	a.clipRect = nil
	a.drawClipped()
}

// drawAxes discards the coordinate cross and draws a new one. If the surface
// is too small for the arrows, no cross is drawn.
func (a *App) drawAxes() {
	for _, k := range []surface.Kind{surface.KindArrow, surface.KindTick, surface.KindTickLabel} {
		a.surf.DeleteByTag(surface.All(k))
	}
	axes, err := a.axes.Axes(a.width, a.height)
	if err != nil {
		tracer().Errorf("no coordinate cross: %v", err)
		return
	}
	a.drawArrow(axes.Y, axes.YTicks, yAxis)
	a.drawArrow(axes.X, axes.XTicks, xAxis)
}

func (a *App) drawArrow(arr arrow.Arrow, ticks []arrow.Tick, owner int) {
	for _, s := range arr.Segments() {
		a.surf.CreateSegment(s.P1, s.P2, axisStyle, surface.T(surface.KindArrow, owner))
	}
	for _, tick := range ticks {
		a.surf.CreateSegment(tick.Mark.P1, tick.Mark.P2, tickStyle, surface.T(surface.KindTick, owner))
		a.surf.CreateText(tick.LabelPos, tick.Text(), surface.T(surface.KindTickLabel, owner))
	}
}

// curveOrPolyline returns the points of the spline curve, or the polyline
// through the control points as long as there are too few of them for a
// spline.
func (a *App) curveOrPolyline() ([]sketchpad.Pair, surface.Style) {
	if curve, ok := a.model.Curve(); ok {
		return curve, curveStyle
	}
	return a.model.Points(), polylineStyle
}

// drawSpline draws control point markers and the curve from scratch.
func (a *App) drawSpline() {
	a.surf.DeleteByTag(surface.All(surface.KindControlPoint))
	a.surf.DeleteByTag(surface.All(surface.KindSpline))
	if pts, style := a.curveOrPolyline(); len(pts) > 1 {
		a.surf.CreatePolyline(pts, style, surface.T(surface.KindSpline, 0))
	}
	for i, pt := range a.model.Points() {
		marker := sketchpad.Circle(pt, a.cfg.Markers.Radius, a.cfg.Markers.Sides)
		a.surf.CreatePolygon(marker, markerStyle, surface.T(surface.KindControlPoint, i))
	}
	a.drawClipped()
}

// drawClipped draws the visible parts of segments, spline and markers
// within the clip rectangle, replacing earlier ones.
func (a *App) drawClipped() {
	a.surf.DeleteByTag(surface.All(surface.KindClipped))
	if a.clipRect == nil {
		return
	}
	r := *a.clipRect
	owner := 0
	for _, res := range clip.Segments(a.segments, r) {
		if res.Visible {
			a.surf.CreateSegment(res.Segment.P1, res.Segment.P2, clippedStyle, surface.T(surface.KindClipped, owner))
		}
		owner++
	}
	if pts, _ := a.curveOrPolyline(); len(pts) > 1 {
		for _, run := range clip.Polyline(pts, r) {
			a.surf.CreatePolyline(run, clippedStyle, surface.T(surface.KindClipped, owner))
			owner++
		}
	}
	for _, pt := range a.model.Points() {
		marker := sketchpad.Circle(pt, a.cfg.Markers.Radius, a.cfg.Markers.Sides)
		for _, part := range clip.Polygon(marker, r) {
			a.surf.CreatePolygon(part, clippedMarker, surface.T(surface.KindClipped, owner))
			owner++
		}
	}
	tracer().Debugf("%d clipped primitives within %s", len(a.surf.FindByTag(surface.All(surface.KindClipped))), r)
}
