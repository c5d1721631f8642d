package sketch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/sketchpad"
	"github.com/npillmayer/sketchpad/surface"
)

// Tool is an interactive tool. Exactly one tool is active at a time.
type Tool int

// Tools.
const (
	ToolNone     Tool = iota
	ToolDrawLine      // draw a segment with two clicks
	ToolDrawRect      // define the clip rectangle by dragging
	ToolEdit          // insert and drag spline control points
)

var toolNames = [...]string{"none", "draw-line", "draw-rect", "edit"}

func (t Tool) String() string {
	if t < ToolNone || t > ToolEdit {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// ErrUnknownTool is returned for names not denoting a tool.
var ErrUnknownTool = errors.New("unknown tool")

// ParseTool finds a tool by name, e.g. "draw-line". Case is ignored.
func ParseTool(name string) (Tool, error) {
	for t, s := range toolNames {
		if strings.EqualFold(s, name) {
			return Tool(t), nil
		}
	}
	return ToolNone, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// State is the state of the active tool.
type State int

// States of tools. Every tool starts in Idle.
const (
	Idle              State = iota
	Dragging                // rubber band of a line, or a control point
	DefiningRectangle       // between press and release of the rectangle tool
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case DefiningRectangle:
		return "defining-rectangle"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// toolState is the working state of a tool. Fields not used by a tool stay
// at their zero values.
type toolState struct {
	state   State
	origin  sketchpad.Pair // first point of a line, fixed corner of a rectangle
	active  int            // index of the control point being dragged
	preview surface.ID     // rubber band or rectangle preview
}

// handler is the event handling of a tool. Handlers switch the tool state
// explicitly on every event.
type handler interface {
	down(a *App, pt sketchpad.Pair)
	move(a *App, pt sketchpad.Pair)
	up(a *App, pt sketchpad.Pair)
	// unbind removes all traces of the tool's work in progress
	unbind(a *App)
	// rescale follows a resize of the surface
	rescale(m sketchpad.AT)
	current() toolState
}

func handlerFor(t Tool) handler {
	switch t {
	case ToolDrawLine:
		return &lineTool{}
	case ToolDrawRect:
		return &rectTool{}
	case ToolEdit:
		return &editTool{}
	}
	return noTool{}
}

// --- No tool ---------------------------------------------------------------

type noTool struct{}

func (noTool) down(*App, sketchpad.Pair) {}
func (noTool) move(*App, sketchpad.Pair) {}
func (noTool) up(*App, sketchpad.Pair)   {}
func (noTool) unbind(*App)               {}
func (noTool) rescale(sketchpad.AT)      {}
func (noTool) current() toolState        { return toolState{} }

// --- Line tool -------------------------------------------------------------

// lineTool draws a segment: the first click fixes the start point, the
// second one the end point. In between a rubber band follows the pointer.
type lineTool struct {
	st toolState
}

func (t *lineTool) current() toolState { return t.st }

func (t *lineTool) rescale(m sketchpad.AT) { t.st.origin = m.Transform(t.st.origin) }

func (t *lineTool) down(a *App, pt sketchpad.Pair) {
	switch t.st.state {
	case Idle:
		t.st = toolState{state: Dragging, origin: pt}
	case Dragging:
		a.surf.DeleteByTag(surface.All(surface.KindRubberBand))
		a.addSegment(sketchpad.Segment{P1: t.st.origin, P2: pt})
		t.st = toolState{}
	}
}

func (t *lineTool) move(a *App, pt sketchpad.Pair) {
	if t.st.state != Dragging {
		return
	}
	if t.st.preview != 0 && a.surf.SetCoordinates(t.st.preview, []sketchpad.Pair{t.st.origin, pt}) == nil {
		return
	}
	t.st.preview = a.surf.CreateSegment(t.st.origin, pt, rubberBandStyle, surface.T(surface.KindRubberBand, 0))
}

func (t *lineTool) up(*App, sketchpad.Pair) {}

func (t *lineTool) unbind(a *App) {
	a.surf.DeleteByTag(surface.All(surface.KindRubberBand))
	t.st = toolState{}
}

// --- Rectangle tool --------------------------------------------------------

// rectTool defines the clip rectangle: pressing fixes one corner, dragging
// shows a preview, releasing fixes the opposite corner. Releasing without
// having spanned an area cancels the rectangle.
type rectTool struct {
	st toolState
}

func (t *rectTool) current() toolState { return t.st }

func (t *rectTool) rescale(m sketchpad.AT) { t.st.origin = m.Transform(t.st.origin) }

func (t *rectTool) down(a *App, pt sketchpad.Pair) {
	a.removeClipRect()
	if t.st.state == DefiningRectangle {
		return
	}
	t.st = toolState{state: DefiningRectangle, origin: pt}
	t.st.preview = a.surf.CreatePolygon(sketchpad.R(pt, pt).Corners(), previewStyle,
		surface.T(surface.KindRectPreview, 0))
}

func (t *rectTool) move(a *App, pt sketchpad.Pair) {
	if t.st.state != DefiningRectangle {
		return
	}
	if err := a.surf.SetCoordinates(t.st.preview, sketchpad.R(t.st.origin, pt).Corners()); err != nil {
		tracer().Errorf("rectangle preview lost: %v", err)
	}
}

func (t *rectTool) up(a *App, pt sketchpad.Pair) {
	if t.st.state != DefiningRectangle {
		return
	}
	a.surf.DeleteByTag(surface.All(surface.KindRectPreview))
	r := sketchpad.R(t.st.origin, pt)
	t.st = toolState{}
	if r.IsEmpty() {
		tracer().Debugf("rectangle without area at %s ignored", pt)
		return
	}
	a.setClipRect(r)
}

func (t *rectTool) unbind(a *App) {
	a.surf.DeleteByTag(surface.All(surface.KindRectPreview))
	a.removeClipRect()
	t.st = toolState{}
}

// --- Edit tool -------------------------------------------------------------

// editTool edits the control points of the spline. Pressing near an existing
// control point grabs it for dragging, pressing anywhere else inserts a new
// control point.
type editTool struct {
	st toolState
}

func (t *editTool) current() toolState { return t.st }

func (t *editTool) rescale(m sketchpad.AT) { t.st.origin = m.Transform(t.st.origin) }

func (t *editTool) down(a *App, pt sketchpad.Pair) {
	if i, ok := a.model.Nearest(pt, a.cfg.Markers.PickRadius); ok {
		t.st = toolState{state: Dragging, origin: pt, active: i}
		tracer().Debugf("grabbed control point #%d", i)
		return
	}
	a.model.Insert(pt)
	a.drawSpline()
}

func (t *editTool) move(a *App, pt sketchpad.Pair) {
	if t.st.state != Dragging {
		return
	}
	if a.model.Drag(t.st.active, pt) {
		a.drawSpline()
	}
}

func (t *editTool) up(*App, sketchpad.Pair) {
	t.st = toolState{}
}

func (t *editTool) unbind(*App) {
	t.st = toolState{}
}
