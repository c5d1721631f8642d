/*
Package raster renders the primitives recorded on a surface.Recorder into an
image, using the software renderer of package gg.

Primitives are drawn in creation order. Tick labels are set in Go Regular.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package raster

import (
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sketchpad/surface"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer writes to trace with key 'sketchpad.raster'
func tracer() tracing.Trace {
	return tracing.Select("sketchpad.raster")
}

// LabelSize is the font size of text primitives.
const LabelSize = 11

var (
	faceOnce  sync.Once
	labelFace text.Face
	faceErr   error
)

func loadFace() (text.Face, error) {
	faceOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			faceErr = fmt.Errorf("cannot load label font: %w", err)
			return
		}
		labelFace = src.Face(LabelSize)
	})
	return labelFace, faceErr
}

// Render draws all primitives of rec onto a new white canvas of the given
// size. Clients have to Close the returned context.
func Render(rec *surface.Recorder, width, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cannot render to %dx%d canvas", width, height)
	}
	face, err := loadFace()
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFont(face)
	for _, p := range rec.Primitives() {
		if err := draw(dc, p); err != nil {
			dc.Close()
			return nil, fmt.Errorf("cannot render %s: %w", p, err)
		}
	}
	tracer().Infof("rendered %d primitives onto %dx%d canvas", rec.Len(), width, height)
	return dc, nil
}

// WritePNG renders rec and writes the image to w in PNG format.
func WritePNG(w io.Writer, rec *surface.Recorder, width, height int) error {
	dc, err := Render(rec, width, height)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

func draw(dc *gg.Context, p surface.Primitive) error {
	if len(p.Points) == 0 {
		return nil
	}
	if p.Shape == surface.ShapeText {
		setColor(dc, p.Style.Stroke)
		dc.DrawStringAnchored(p.Text, p.Points[0].X(), p.Points[0].Y(), 0.5, 0.5)
		return nil
	}
	dc.MoveTo(p.Points[0].X(), p.Points[0].Y())
	for _, pt := range p.Points[1:] {
		dc.LineTo(pt.X(), pt.Y())
	}
	if p.Shape == surface.ShapePolygon {
		dc.ClosePath()
		if p.Style.Fill != nil {
			dc.SetColor(p.Style.Fill)
			if err := dc.FillPreserve(); err != nil {
				dc.ClearPath()
				return err
			}
		}
	}
	setColor(dc, p.Style.Stroke)
	dc.SetLineWidth(lineWidth(p.Style))
	if p.Style.Dash > 0 {
		dc.SetDash(p.Style.Dash, p.Style.Dash)
	} else {
		dc.ClearDash()
	}
	return dc.Stroke()
}

func setColor(dc *gg.Context, c color.Color) {
	if c == nil {
		c = color.Black
	}
	dc.SetColor(c)
}

func lineWidth(st surface.Style) float64 {
	if st.Width <= 0 {
		return 1
	}
	return st.Width
}
