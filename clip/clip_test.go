package clip

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sketchpad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var box = sketchpad.R(sketchpad.P(10, 10), sketchpad.P(100, 100))

func TestOutcodes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, Inside, OutcodeOf(sketchpad.P(50, 50), box))
	assert.Equal(t, Inside, OutcodeOf(sketchpad.P(10, 100), box))
	assert.Equal(t, Left, OutcodeOf(sketchpad.P(0, 50), box))
	assert.Equal(t, Right|Above, OutcodeOf(sketchpad.P(101, 101), box))
	assert.Equal(t, Left|Below, OutcodeOf(sketchpad.P(0, 0), box))
}

func TestClipInsideUnchanged(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := sketchpad.Seg(20, 30, 80, 90)
	c, ok := Segment(s, box)
	require.True(t, ok)
	assert.Equal(t, s, c)
}

func TestClipRejectSameSide(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, s := range []sketchpad.Segment{
		sketchpad.Seg(0, 0, 5, 200),     // both left
		sketchpad.Seg(120, 0, 150, 50),  // both right
		sketchpad.Seg(0, 101, 200, 300), // both above
		sketchpad.Seg(20, 0, 90, 9),     // both below
	} {
		_, ok := Segment(s, box)
		assert.False(t, ok, "expected %s to be rejected", s)
	}
}

func TestClipHorizontal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, ok := Segment(sketchpad.Seg(0, 50, 150, 50), box)
	require.True(t, ok)
	assert.True(t, c.Equal(sketchpad.Seg(10, 50, 100, 50)), "clipped = %s", c)
}

func TestClipVertical(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, ok := Segment(sketchpad.Seg(50, 150, 50, 0), box)
	require.True(t, ok)
	assert.True(t, c.Equal(sketchpad.Seg(50, 100, 50, 10)), "clipped = %s", c)
}

func TestClipCorners(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := sketchpad.R(sketchpad.P(0, 0), sketchpad.P(10, 10))
	c, ok := Segment(sketchpad.Seg(-5, 15, 15, -5), r)
	require.True(t, ok)
	assert.True(t, c.Equal(sketchpad.Seg(0, 10, 10, 0)), "clipped = %s", c)
	// passes by the corner without touching the rectangle
	_, ok = Segment(sketchpad.Seg(-5, 3, 3, -5), r)
	assert.False(t, ok)
}

func TestClipIdempotent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, s := range []sketchpad.Segment{
		sketchpad.Seg(0, 50, 150, 50),
		sketchpad.Seg(0, 0, 110, 110),
		sketchpad.Seg(5, 40, 60, 120),
		sketchpad.Seg(30, 30, 200, 60),
	} {
		once, ok := Segment(s, box)
		require.True(t, ok, "segment %s", s)
		twice, ok := Segment(once, box)
		require.True(t, ok)
		assert.True(t, once.Equal(twice), "%s clipped twice: %s != %s", s, once, twice)
	}
}

func TestClipBatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	results := Segments([]sketchpad.Segment{
		sketchpad.Seg(0, 50, 150, 50),
		sketchpad.Seg(0, 0, 5, 5),
		sketchpad.Seg(20, 20, 30, 30),
	}, box)
	require.Len(t, results, 3)
	assert.True(t, results[0].Visible)
	assert.False(t, results[1].Visible)
	assert.True(t, results[2].Visible)
	assert.Equal(t, sketchpad.Seg(20, 20, 30, 30), results[2].Segment)
}

func TestClipPolyline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// in, out through the right edge, back in, and out again
	pts := []sketchpad.Pair{
		sketchpad.P(50, 50), sketchpad.P(150, 50), sketchpad.P(150, 80),
		sketchpad.P(50, 80), sketchpad.P(50, 200),
	}
	runs := Polyline(pts, box)
	require.Len(t, runs, 2)
	assert.Equal(t, []sketchpad.Pair{sketchpad.P(50, 50), sketchpad.P(100, 50)}, runs[0])
	assert.Equal(t, []sketchpad.Pair{sketchpad.P(100, 80), sketchpad.P(50, 80), sketchpad.P(50, 100)}, runs[1])
	assert.Empty(t, Polyline(pts[1:3], box))
}

func TestClipPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := sketchpad.R(sketchpad.P(0, 0), sketchpad.P(10, 10))
	square := sketchpad.R(sketchpad.P(5, 5), sketchpad.P(15, 15)).Corners()
	contours := Polygon(square, r)
	require.Len(t, contours, 1)
	bb, ok := sketchpad.BoundingBox(contours[0])
	require.True(t, ok)
	assert.InDelta(t, 5, bb.XMin, 1e-9)
	assert.InDelta(t, 5, bb.YMin, 1e-9)
	assert.InDelta(t, 10, bb.XMax, 1e-9)
	assert.InDelta(t, 10, bb.YMax, 1e-9)
	inner := sketchpad.Circle(sketchpad.P(5, 5), 2, 15)
	assert.Equal(t, [][]sketchpad.Pair{inner}, Polygon(inner, r))
	assert.Nil(t, Polygon(sketchpad.Circle(sketchpad.P(50, 50), 2, 15), r))
}
