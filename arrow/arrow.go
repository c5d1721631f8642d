/*
Package arrow builds the glyphs of annotated coordinate axes: arrows
consisting of a shaft and two head lines, and tick marks with numeric labels
along an arrow's shaft.

All builders are stateless. They compute segments and label positions and
leave drawing them to the caller.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package arrow

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sketchpad"
)

// tracer writes to trace with key 'sketchpad.arrow'
func tracer() tracing.Trace {
	return tracing.Select("sketchpad.arrow")
}

// Arrow is a shaft from P1 to P2, with two head lines meeting at P2.
type Arrow struct {
	Shaft sketchpad.Segment
	Heads [2]sketchpad.Segment
	dir   sketchpad.Pair // unit vector in direction of the shaft
}

// Direction returns the unit vector pointing from the arrow's origin to its tip.
func (a Arrow) Direction() sketchpad.Pair {
	return a.dir
}

// Segments returns the shaft and the heads.
func (a Arrow) Segments() []sketchpad.Segment {
	return []sketchpad.Segment{a.Shaft, a.Heads[0], a.Heads[1]}
}

func (a Arrow) String() string {
	return fmt.Sprintf("<arrow %s→%s>", a.Shaft.P1, a.Shaft.P2)
}

// Tick is a tick mark on the shaft of an arrow, together with its label.
type Tick struct {
	Mark     sketchpad.Segment
	Label    int
	LabelPos sketchpad.Pair
}

// Text returns the label of the tick as a string.
func (t Tick) Text() string {
	return fmt.Sprintf("%d", t.Label)
}

// Side selects on which side of the shaft tick marks are drawn.
// The tick vector is rotated by Side·90° off the shaft direction.
type Side int

// Sides of a shaft. With y growing downwards, Right turns clockwise on
// screen, i.e. below a shaft pointing right.
const (
	Left  Side = -1
	Right Side = 1
)

// Builder holds the metrics of arrows and tick marks. The zero value is not
// useful, use NewBuilder or set every field.
type Builder struct {
	HeadLength   float64 // length of the head lines
	HeadAngle    float64 // angle between shaft and head lines, in degrees
	TickOrigin   float64 // distance of tick #0 from the shaft's origin
	TickInterval float64 // distance between ticks
	TickLength   float64 // length of a tick mark
}

// Default metrics.
const (
	DefaultHeadLength   = 20
	DefaultHeadAngle    = 30
	DefaultTickOrigin   = 50
	DefaultTickInterval = 50
	DefaultTickLength   = 5
)

// labelDistance is the distance of a tick label from the shaft, in units of
// the tick length.
const labelDistance = 3

// NewBuilder creates a builder with default metrics.
func NewBuilder() *Builder {
	return &Builder{
		HeadLength:   DefaultHeadLength,
		HeadAngle:    DefaultHeadAngle,
		TickOrigin:   DefaultTickOrigin,
		TickInterval: DefaultTickInterval,
		TickLength:   DefaultTickLength,
	}
}

var defaultBuilder = NewBuilder()

// Build constructs an arrow from p1 to p2 with default metrics.
func Build(p1, p2 sketchpad.Pair) (Arrow, error) {
	return defaultBuilder.Arrow(p1, p2)
}

// Ticks places tick marks along an arrow with default metrics, every
// interval pixels.
func Ticks(a Arrow, interval float64, side Side) []Tick {
	b := *defaultBuilder
	b.TickInterval = interval
	return b.Ticks(a, side)
}

// Arrow constructs an arrow from p1 to p2. The head lines start HeadLength
// before the tip on the shaft and are rotated by ±HeadAngle about the tip.
// If p1 = p2, no direction can be derived and sketchpad.ErrDegenerateVector
// is returned.
func (b *Builder) Arrow(p1, p2 sketchpad.Pair) (Arrow, error) {
	e, err := sketchpad.Normalize(p2 - p1)
	if err != nil {
		tracer().Errorf("cannot build arrow at %s: %v", p1, err)
		return Arrow{}, err
	}
	base := p2 - e.Scaled(b.HeadLength)
	theta := b.HeadAngle * sketchpad.Deg2Rad
	a := Arrow{
		Shaft: sketchpad.Segment{P1: p1, P2: p2},
		dir:   e,
	}
	a.Heads[0] = sketchpad.Segment{P1: base.RotatedAround(p2, theta), P2: p2}
	a.Heads[1] = sketchpad.Segment{P1: base.RotatedAround(p2, -theta), P2: p2}
	tracer().Debugf("arrow %s, heads from %s and %s", a.Shaft, a.Heads[0].P1, a.Heads[1].P1)
	return a, nil
}

// Ticks places tick marks along the shaft of an arrow. Tick #0 sits at
// TickOrigin from the shaft's origin and is not drawn, tick #i sits
// i·TickInterval further along the shaft. Ticks are numbered from 1 and
// stop well before the head: for a shaft of length l there are
// ⌊l⌋ div TickInterval − 2 ticks, if that is positive.
//
// A tick mark runs from its base point on the shaft, TickLength in the
// direction of the shaft rotated by side·90°. Its label is positioned past
// the tick's far end, at three times the tick length.
func (b *Builder) Ticks(a Arrow, side Side) []Tick {
	if a.dir == 0 || b.TickInterval <= 0 {
		return nil
	}
	n := int(math.Floor(math.Floor(a.Shaft.Length()) / b.TickInterval))
	if n < 3 {
		return nil
	}
	zero := a.Shaft.P1 + a.dir.Scaled(b.TickOrigin)
	rot := float64(side) * math.Pi / 2
	ticks := make([]Tick, 0, n-2)
	for i := 1; i < n-1; i++ {
		pt := zero + a.dir.Scaled(float64(i)*b.TickInterval)
		v := a.dir.Scaled(b.TickLength).Rotated(rot)
		ticks = append(ticks, Tick{
			Mark:     sketchpad.Segment{P1: pt, P2: pt + v},
			Label:    i,
			LabelPos: pt + v.Scaled(labelDistance),
		})
	}
	tracer().Debugf("%d ticks on %s", len(ticks), a)
	return ticks
}
