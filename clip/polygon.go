package clip

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/sketchpad"
)

// Polygon intersects a closed polygon with r. The result may consist of
// several contours, e.g. for a concave polygon crossing the rectangle twice.
// It is nil if the polygon is completely outside of r.
func Polygon(points []sketchpad.Pair, r sketchpad.Rect) [][]sketchpad.Pair {
	box, ok := sketchpad.BoundingBox(points)
	if !ok || len(points) < 3 {
		return nil
	}
	if r.Contains(sketchpad.P(box.XMin, box.YMin)) && r.Contains(sketchpad.P(box.XMax, box.YMax)) {
		return [][]sketchpad.Pair{append([]sketchpad.Pair(nil), points...)}
	}
	if box.XMax < r.XMin || box.XMin > r.XMax || box.YMax < r.YMin || box.YMin > r.YMax {
		return nil
	}
	subject := polyclip.Polygon{contour(points)}
	clipping := polyclip.Polygon{contour(r.Corners())}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	var contours [][]sketchpad.Pair
	for _, c := range result {
		if len(c) < 3 {
			continue
		}
		pts := make([]sketchpad.Pair, len(c))
		for i, pt := range c {
			pts[i] = sketchpad.P(pt.X, pt.Y)
		}
		contours = append(contours, pts)
	}
	tracer().Debugf("polygon of %d points clipped to %d contours", len(points), len(contours))
	return contours
}

func contour(points []sketchpad.Pair) polyclip.Contour {
	c := make(polyclip.Contour, len(points))
	for i, pt := range points {
		c[i] = polyclip.Point{X: pt.X(), Y: pt.Y()}
	}
	return c
}
