package sketch

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sketchpad"
	"github.com/npillmayer/sketchpad/spline"
	"github.com/npillmayer/sketchpad/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *surface.Recorder) {
	t.Helper()
	rec := surface.NewRecorder()
	app, err := NewApp(DefaultConfig(), rec)
	require.NoError(t, err)
	return app, rec
}

func coords(t *testing.T, rec *surface.Recorder, q surface.Tag) [][]sketchpad.Pair {
	t.Helper()
	var all [][]sketchpad.Pair
	for _, id := range rec.FindByTag(q) {
		pts, err := rec.Coordinates(id)
		require.NoError(t, err)
		all = append(all, pts)
	}
	return all
}

func TestNewAppDrawsAxes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, rec := newTestApp(t)
	assert.Len(t, rec.FindByTag(surface.All(surface.KindArrow)), 6)
	assert.Len(t, rec.FindByTag(surface.T(surface.KindTick, yAxis)), 13)
	assert.Len(t, rec.FindByTag(surface.T(surface.KindTick, xAxis)), 17)
	assert.Len(t, rec.FindByTag(surface.All(surface.KindTickLabel)), 30)
	_, err := NewApp(Config{}, rec)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestToolSelection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	app, _ := newTestApp(t)
	assert.Equal(t, ToolNone, app.Tool())
	tool, err := ParseTool("Draw-Line")
	require.NoError(t, err)
	require.NoError(t, app.OnToolSelected(tool))
	assert.Equal(t, ToolDrawLine, app.Tool())
	_, err = ParseTool("lasso")
	assert.True(t, errors.Is(err, ErrUnknownTool))
	assert.True(t, errors.Is(app.OnToolSelected(Tool(9)), ErrUnknownTool))
	assert.Equal(t, ToolDrawLine, app.Tool())
	// without a tool, pointer events are ignored
	require.NoError(t, app.OnToolSelected(ToolNone))
	app.OnPointerDown(10, 10)
	app.OnPointerDown(20, 20)
	assert.Empty(t, app.Segments())
}

func TestLineTool(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	app, rec := newTestApp(t)
	require.NoError(t, app.OnToolSelected(ToolDrawLine))
	app.OnPointerMove(5, 5)
	assert.Empty(t, rec.FindByTag(surface.All(surface.KindRubberBand)))
	app.OnPointerDown(10, 10)
	assert.Equal(t, Dragging, app.State())
	app.OnPointerMove(50, 50)
	app.OnPointerMove(60, 70)
	bands := coords(t, rec, surface.All(surface.KindRubberBand))
	require.Len(t, bands, 1)
	assert.Equal(t, []sketchpad.Pair{sketchpad.P(10, 10), sketchpad.P(60, 70)}, bands[0])
	app.OnPointerDown(100, 100)
	assert.Equal(t, Idle, app.State())
	assert.Empty(t, rec.FindByTag(surface.All(surface.KindRubberBand)))
	assert.Equal(t, []sketchpad.Segment{sketchpad.Seg(10, 10, 100, 100)}, app.Segments())
	assert.Len(t, rec.FindByTag(surface.All(surface.KindSegment)), 1)
	// switching tools discards a line in progress
	app.OnPointerDown(200, 200)
	app.OnPointerMove(210, 210)
	require.NoError(t, app.OnToolSelected(ToolEdit))
	assert.Empty(t, rec.FindByTag(surface.All(surface.KindRubberBand)))
	assert.Len(t, app.Segments(), 1)
}

func drawSegment(app *App, x1, y1, x2, y2 int) {
	app.OnPointerDown(x1, y1)
	app.OnPointerDown(x2, y2)
}

func TestRectToolClipsSegments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	app, rec := newTestApp(t)
	require.NoError(t, app.OnToolSelected(ToolDrawLine))
	drawSegment(app, 0, 50, 150, 50)
	drawSegment(app, 200, 0, 200, 300)
	require.NoError(t, app.OnToolSelected(ToolDrawRect))
	app.OnPointerDown(10, 10)
	assert.Equal(t, DefiningRectangle, app.State())
	app.OnPointerMove(60, 60)
	preview := coords(t, rec, surface.All(surface.KindRectPreview))
	require.Len(t, preview, 1)
	assert.Equal(t, sketchpad.R(sketchpad.P(10, 10), sketchpad.P(60, 60)).Corners(), preview[0])
	app.OnPointerUp(100, 100)
	assert.Equal(t, Idle, app.State())
	assert.Empty(t, rec.FindByTag(surface.All(surface.KindRectPreview)))
	r, ok := app.ClipRect()
	require.True(t, ok)
	assert.Equal(t, sketchpad.Rect{XMin: 10, YMin: 10, XMax: 100, YMax: 100}, r)
	assert.Len(t, rec.FindByTag(surface.All(surface.KindClipRect)), 1)
	clipped := coords(t, rec, surface.All(surface.KindClipped))
	require.Len(t, clipped, 1, "second segment is outside")
	assert.Equal(t, []sketchpad.Pair{sketchpad.P(10, 50), sketchpad.P(100, 50)}, clipped[0])
	// leaving the rectangle tool removes the rectangle and the clipped parts
	require.NoError(t, app.OnToolSelected(ToolDrawLine))
	_, ok = app.ClipRect()
	assert.False(t, ok, "unbinding the rectangle tool removes the rectangle")
	assert.Empty(t, rec.FindByTag(surface.All(surface.KindClipped)))
}

func TestRectToolWithoutArea(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	app, rec := newTestApp(t)
	require.NoError(t, app.OnToolSelected(ToolDrawRect))
	app.OnPointerDown(20, 20)
	app.OnPointerUp(20, 20)
	assert.Equal(t, Idle, app.State())
	_, ok := app.ClipRect()
	assert.False(t, ok)
	assert.Empty(t, rec.FindByTag(surface.All(surface.KindRectPreview)))
	// a new rectangle replaces the old one
	app.OnPointerDown(10, 10)
	app.OnPointerUp(30, 40)
	app.OnPointerDown(100, 100)
	app.OnPointerUp(300, 400)
	r, ok := app.ClipRect()
	require.True(t, ok)
	assert.Equal(t, 300.0, r.XMax)
	assert.Len(t, rec.FindByTag(surface.All(surface.KindClipRect)), 1)
}

func TestEditTool(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	app, rec := newTestApp(t)
	require.NoError(t, app.OnToolSelected(ToolEdit))
	app.OnPointerDown(100, 300)
	app.OnPointerUp(100, 300)
	app.OnPointerDown(200, 100)
	app.OnPointerUp(200, 100)
	curve := coords(t, rec, surface.All(surface.KindSpline))
	require.Len(t, curve, 1)
	assert.Len(t, curve[0], 2, "two points are connected by a polyline")
	app.OnPointerDown(300, 250)
	app.OnPointerUp(300, 250)
	assert.Len(t, rec.FindByTag(surface.All(surface.KindControlPoint)), 3)
	curve = coords(t, rec, surface.All(surface.KindSpline))
	require.Len(t, curve, 1)
	assert.Len(t, curve[0], spline.DefaultSamples)
	// grab the middle point and drag it
	app.OnPointerDown(202, 101)
	assert.Equal(t, Dragging, app.State())
	app.OnPointerMove(220, 150)
	assert.Equal(t, sketchpad.P(220, 150), app.Model().Point(1))
	app.OnPointerMove(310, 0)
	assert.Equal(t, sketchpad.P(220, 150), app.Model().Point(1), "drag beyond neighbour must be rejected")
	app.OnPointerUp(310, 0)
	assert.Equal(t, Idle, app.State())
	assert.Equal(t, 3, app.Model().Len())
	marker, err := rec.Coordinates(rec.FindByTag(surface.T(surface.KindControlPoint, 1))[0])
	require.NoError(t, err)
	assert.True(t, sketchpad.Centroid(marker).Near(sketchpad.P(220, 150), 1e-9))
}

func TestBoundarySelectionRefits(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	app, rec := newTestApp(t)
	app.OnBoundaryTypeSelected(spline.Clamped)
	assert.Empty(t, rec.FindByTag(surface.All(surface.KindSpline)))
	require.NoError(t, app.OnToolSelected(ToolEdit))
	for _, x := range []int{100, 200, 300, 400} {
		app.OnPointerDown(x, 300-x/2)
		app.OnPointerUp(x, 300-x/2)
	}
	before := rec.FindByTag(surface.All(surface.KindSpline))
	app.OnBoundaryTypeSelected(spline.Periodic)
	after := rec.FindByTag(surface.All(surface.KindSpline))
	require.Len(t, after, 1)
	assert.NotEqual(t, before, after)
	assert.Equal(t, spline.Periodic, app.Model().Spline().Boundary())
}

func TestClippingSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	app, rec := newTestApp(t)
	require.NoError(t, app.OnToolSelected(ToolEdit))
	for _, pt := range []sketchpad.Pair{sketchpad.P(100, 300), sketchpad.P(200, 100), sketchpad.P(300, 250), sketchpad.P(500, 50)} {
		app.OnPointerDown(int(pt.X()), int(pt.Y()))
		app.OnPointerUp(int(pt.X()), int(pt.Y()))
	}
	require.NoError(t, app.OnToolSelected(ToolDrawRect))
	app.OnPointerDown(150, 90)
	app.OnPointerUp(400, 400)
	r, ok := app.ClipRect()
	require.True(t, ok)
	ids := rec.FindByTag(surface.All(surface.KindClipped))
	require.NotEmpty(t, ids)
	markers := 0
	for _, id := range ids {
		p, err := rec.Primitive(id)
		require.NoError(t, err)
		for _, pt := range p.Points {
			assert.True(t, pt.X() >= r.XMin-1e-6 && pt.X() <= r.XMax+1e-6, "x out of clip rectangle: %s", pt)
			assert.True(t, pt.Y() >= r.YMin-1e-6 && pt.Y() <= r.YMax+1e-6, "y out of clip rectangle: %s", pt)
		}
		if p.Shape == surface.ShapePolygon {
			assert.Len(t, p.Points, 15)
			markers++
		}
	}
	assert.Equal(t, 2, markers, "two markers are completely inside")
}

func TestResize(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	app, rec := newTestApp(t)
	require.NoError(t, app.OnToolSelected(ToolDrawLine))
	drawSegment(app, 100, 100, 200, 200)
	app.OnResize(2000, 400)
	w, h := app.Size()
	assert.Equal(t, 2000.0, w)
	assert.Equal(t, 400.0, h)
	segs := coords(t, rec, surface.All(surface.KindSegment))
	require.Len(t, segs, 1)
	assert.True(t, segs[0][0].Near(sketchpad.P(200, 50), 1e-9), "have %s", segs[0][0])
	assert.True(t, segs[0][1].Near(sketchpad.P(400, 100), 1e-9), "have %s", segs[0][1])
	assert.True(t, app.Segments()[0].P2.Near(sketchpad.P(400, 100), 1e-9))
	// axes are built anew for the new size, not scaled
	shafts := coords(t, rec, surface.T(surface.KindArrow, yAxis))
	require.Len(t, shafts, 3)
	assert.Equal(t, []sketchpad.Pair{sketchpad.P(50, 400), sketchpad.P(50, 20)}, shafts[0])
	assert.Len(t, rec.FindByTag(surface.T(surface.KindTick, xAxis)), 37)
	app.OnResize(0, 400)
	w, _ = app.Size()
	assert.Equal(t, 2000.0, w, "resize to zero width is ignored")
}

func TestRandomSegmentAndClear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	app, rec := newTestApp(t)
	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		app.RandomSegment(rnd)
	}
	require.Len(t, app.Segments(), 20)
	bounds := sketchpad.Rect{XMax: 1000, YMax: 800}
	for _, s := range app.Segments() {
		assert.True(t, bounds.Contains(s.P1) && bounds.Contains(s.P2), "segment %s outside of surface", s)
	}
	require.NoError(t, app.OnToolSelected(ToolDrawRect))
	app.OnPointerDown(0, 0)
	app.OnPointerUp(500, 500)
	app.Clear()
	assert.Empty(t, app.Segments())
	assert.Empty(t, rec.FindByTag(surface.All(surface.KindSegment)))
	assert.Empty(t, rec.FindByTag(surface.All(surface.KindClipped)))
	_, ok := app.ClipRect()
	assert.True(t, ok, "clearing keeps the clip rectangle")
}
