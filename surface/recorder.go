package surface

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/sketchpad"
)

// Shape is the geometric shape of a primitive.
type Shape uint8

// Shapes of primitives.
const (
	ShapeLine Shape = iota
	ShapePolyline
	ShapePolygon
	ShapeText
)

// Primitive is a primitive kept by a Recorder.
type Primitive struct {
	ID     ID
	Shape  Shape
	Tag    Tag
	Style  Style
	Points []sketchpad.Pair
	Text   string
}

func (p Primitive) String() string {
	switch p.Shape {
	case ShapeText:
		return fmt.Sprintf("#%d[%s] text %q at %s", p.ID, p.Tag, p.Text, p.Points[0])
	case ShapePolygon:
		return fmt.Sprintf("#%d[%s] polygon of %d points", p.ID, p.Tag, len(p.Points))
	case ShapePolyline:
		return fmt.Sprintf("#%d[%s] polyline of %d points", p.ID, p.Tag, len(p.Points))
	}
	return fmt.Sprintf("#%d[%s] line %s-%s", p.ID, p.Tag, p.Points[0], p.Points[1])
}

// Recorder is an in-memory surface. It records primitives without rendering
// them. Recorder implements Surface.
type Recorder struct {
	reg        *Registry
	primitives *treemap.Map // ID → *Primitive
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		reg:        NewRegistry(),
		primitives: treemap.NewWithIntComparator(),
	}
}

func (rec *Recorder) add(p *Primitive) ID {
	p.ID = rec.reg.Register(p.Tag)
	rec.primitives.Put(int(p.ID), p)
	tracer().Debugf("create %s", p)
	return p.ID
}

func (rec *Recorder) lookup(id ID) (*Primitive, error) {
	p, ok := rec.primitives.Get(int(id))
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	return p.(*Primitive), nil
}

// CreateSegment is part of interface Surface.
func (rec *Recorder) CreateSegment(p1, p2 sketchpad.Pair, style Style, tag Tag) ID {
	return rec.add(&Primitive{
		Shape:  ShapeLine,
		Tag:    tag,
		Style:  style,
		Points: []sketchpad.Pair{p1, p2},
	})
}

// CreatePolygon is part of interface Surface.
func (rec *Recorder) CreatePolygon(points []sketchpad.Pair, style Style, tag Tag) ID {
	return rec.add(&Primitive{
		Shape:  ShapePolygon,
		Tag:    tag,
		Style:  style,
		Points: append([]sketchpad.Pair(nil), points...),
	})
}

// CreatePolyline is part of interface Surface.
func (rec *Recorder) CreatePolyline(points []sketchpad.Pair, style Style, tag Tag) ID {
	return rec.add(&Primitive{
		Shape:  ShapePolyline,
		Tag:    tag,
		Style:  style,
		Points: append([]sketchpad.Pair(nil), points...),
	})
}

// CreateText is part of interface Surface.
func (rec *Recorder) CreateText(pos sketchpad.Pair, text string, tag Tag) ID {
	return rec.add(&Primitive{
		Shape:  ShapeText,
		Tag:    tag,
		Points: []sketchpad.Pair{pos},
		Text:   text,
	})
}

// SetCoordinates is part of interface Surface. The number of points has to
// match the shape of the primitive: 2 for lines, 1 for text.
func (rec *Recorder) SetCoordinates(id ID, points []sketchpad.Pair) error {
	p, err := rec.lookup(id)
	if err != nil {
		return err
	}
	switch {
	case p.Shape == ShapeLine && len(points) != 2,
		p.Shape == ShapeText && len(points) != 1:
		return fmt.Errorf("primitive #%d cannot take %d points", id, len(points))
	}
	p.Points = append(p.Points[:0], points...)
	return nil
}

// Move is part of interface Surface.
func (rec *Recorder) Move(id ID, dx, dy float64) error {
	p, err := rec.lookup(id)
	if err != nil {
		return err
	}
	p.Points = sketchpad.Translation(sketchpad.P(dx, dy)).TransformAll(p.Points)
	return nil
}

// DeleteByTag is part of interface Surface.
func (rec *Recorder) DeleteByTag(tag Tag) int {
	ids := rec.reg.Find(tag)
	for _, id := range ids {
		rec.primitives.Remove(int(id))
		rec.reg.Remove(id)
	}
	if len(ids) > 0 {
		tracer().Debugf("deleted %d primitives tagged %s", len(ids), tag)
	}
	return len(ids)
}

// Coordinates is part of interface Surface.
func (rec *Recorder) Coordinates(id ID) ([]sketchpad.Pair, error) {
	p, err := rec.lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]sketchpad.Pair(nil), p.Points...), nil
}

// FindByTag is part of interface Surface.
func (rec *Recorder) FindByTag(tag Tag) []ID {
	return rec.reg.Find(tag)
}

// BoundingBoxByTag is part of interface Surface.
func (rec *Recorder) BoundingBoxByTag(tag Tag) (sketchpad.Rect, bool) {
	var points []sketchpad.Pair
	for _, id := range rec.reg.Find(tag) {
		p, _ := rec.lookup(id)
		points = append(points, p.Points...)
	}
	return sketchpad.BoundingBox(points)
}

// ScaleAll is part of interface Surface.
func (rec *Recorder) ScaleAll(ox, oy, kx, ky float64) {
	scale := sketchpad.Scaling(sketchpad.P(ox, oy), kx, ky)
	it := rec.primitives.Iterator()
	for it.Next() {
		p := it.Value().(*Primitive)
		p.Points = scale.TransformAll(p.Points)
	}
	tracer().Debugf("scaled %d primitives by (%g,%g)", rec.primitives.Size(), kx, ky)
}

// Len returns the number of primitives.
func (rec *Recorder) Len() int {
	return rec.primitives.Size()
}

// Primitive returns a copy of primitive id.
func (rec *Recorder) Primitive(id ID) (Primitive, error) {
	p, err := rec.lookup(id)
	if err != nil {
		return Primitive{}, err
	}
	c := *p
	c.Points = append([]sketchpad.Pair(nil), p.Points...)
	return c, nil
}

// Primitives returns copies of all primitives in creation order, i.e.,
// bottom to top.
func (rec *Recorder) Primitives() []Primitive {
	prims := make([]Primitive, 0, rec.primitives.Size())
	for _, id := range rec.reg.IDs() {
		p, _ := rec.Primitive(id)
		prims = append(prims, p)
	}
	return prims
}
