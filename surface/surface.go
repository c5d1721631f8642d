/*
Package surface defines the contract between the geometry core and a drawing
surface, which renders and queries primitives by identifier.

Primitives are line segments, polylines, polygons and text labels. Every
primitive is created with a Tag, naming the kind of entity it depicts and the
logical owner (e.g., the index of a control point). Tags replace free-form string
tags: queries select primitives by kind and, optionally, by owner.

Package surface contains an in-memory implementation, Recorder, which keeps
primitives in creation order. It serves as a headless surface and as the
source for rasterizing a drawing.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package surface

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sketchpad"
)

// tracer writes to trace with key 'sketchpad.surface'
func tracer() tracing.Trace {
	return tracing.Select("sketchpad.surface")
}

// ErrUnknownID is returned for operations on a primitive which does not exist.
var ErrUnknownID = errors.New("no primitive with this ID")

// ID identifies a primitive on a surface. IDs are assigned in ascending
// order and never reused. 0 is not a valid ID.
type ID int

// Kind is the kind of entity a primitive depicts.
type Kind uint8

// Kinds of primitives.
const (
	KindNone        Kind = iota
	KindSegment          // a segment drawn by the user
	KindRubberBand       // preview of a segment while drawing
	KindClipRect         // the clip rectangle
	KindRectPreview      // preview of the clip rectangle while defining it
	KindClipped          // visible part of a clipped primitive
	KindControlPoint     // marker of a spline control point
	KindSpline           // a spline curve or polyline
	KindArrow            // shaft or head of an axis arrow
	KindTick             // tick mark on an axis
	KindTickLabel        // label of a tick mark
)

var kindNames = [...]string{"none", "segment", "rubberband", "cliprect",
	"rectpreview", "clipped", "ctrlpoint", "spline", "arrow", "tick", "ticklabel"}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// AnyOwner as the owner of a query tag matches every owner.
const AnyOwner = -1

// Tag is a primitive's kind together with its logical owner.
type Tag struct {
	Kind  Kind
	Owner int
}

// T is a quick notation for a tag.
func T(k Kind, owner int) Tag {
	return Tag{Kind: k, Owner: owner}
}

// All is a query tag matching every primitive of kind k.
func All(k Kind) Tag {
	return Tag{Kind: k, Owner: AnyOwner}
}

// Matches is a predicate: is tag t selected by query tag q?
func (t Tag) Matches(q Tag) bool {
	return t.Kind == q.Kind && (q.Owner == AnyOwner || t.Owner == q.Owner)
}

func (t Tag) String() string {
	if t.Owner == AnyOwner {
		return fmt.Sprintf("%s.*", t.Kind)
	}
	return fmt.Sprintf("%s.%d", t.Kind, t.Owner)
}

// Style determines the appearance of a primitive. A nil Fill draws outlines
// only, a Dash of 0 draws solid lines.
type Style struct {
	Stroke color.Color
	Fill   color.Color
	Width  float64
	Dash   float64
}

// Surface is implemented by drawing surfaces. All operations are called from
// a single goroutine.
type Surface interface {
	// CreateSegment draws a line from p1 to p2.
	CreateSegment(p1, p2 sketchpad.Pair, style Style, tag Tag) ID
	// CreatePolygon draws a closed polygon.
	CreatePolygon(points []sketchpad.Pair, style Style, tag Tag) ID
	// CreatePolyline draws an open polyline.
	CreatePolyline(points []sketchpad.Pair, style Style, tag Tag) ID
	// CreateText places text centered at pos.
	CreateText(pos sketchpad.Pair, text string, tag Tag) ID
	SetCoordinates(id ID, points []sketchpad.Pair) error
	Move(id ID, dx, dy float64) error
	// DeleteByTag removes all primitives matching a query tag and returns
	// how many have been removed.
	DeleteByTag(tag Tag) int
	Coordinates(id ID) ([]sketchpad.Pair, error)
	FindByTag(tag Tag) []ID
	BoundingBoxByTag(tag Tag) (sketchpad.Rect, bool)
	// ScaleAll scales the coordinates of all primitives around an origin.
	ScaleAll(ox, oy, kx, ky float64)
}
