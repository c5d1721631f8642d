package clip

import "github.com/npillmayer/sketchpad"

// Polyline clips an open polyline against r. A polyline leaving and
// re-entering the rectangle is broken into several visible runs. Runs with
// less than two points are dropped.
func Polyline(points []sketchpad.Pair, r sketchpad.Rect) [][]sketchpad.Pair {
	var runs [][]sketchpad.Pair
	var run []sketchpad.Pair
	connected := false // does the current run end at points[i-1]?
	for i := 1; i < len(points); i++ {
		s, ok := Segment(sketchpad.Segment{P1: points[i-1], P2: points[i]}, r)
		if !ok {
			connected = false
			continue
		}
		if !connected || s.P1 != points[i-1] {
			if len(run) > 1 {
				runs = append(runs, run)
			}
			run = []sketchpad.Pair{s.P1}
		}
		run = append(run, s.P2)
		connected = s.P2 == points[i]
	}
	if len(run) > 1 {
		runs = append(runs, run)
	}
	tracer().Debugf("polyline of %d points clipped to %d runs", len(points), len(runs))
	return runs
}
