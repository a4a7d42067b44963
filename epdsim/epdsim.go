// Copyright 2025 The SSD1677 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epdsim implements a display.Drawer that renders a monochrome
// e-paper panel to a terminal using ANSI color codes.
//
// Useful to iterate on layouts without flashing a real panel, which
// takes seconds per refresh and wears the film.
package epdsim

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the simulated panel size in pixels.
	W, H int
	// Palette used to map pixels to terminal colors. Defaults to
	// ansi256.Default.
	Palette *ansi256.Palette
	// Writer receives the rendered frames. Defaults to a colorable
	// stdout.
	Writer io.Writer

	_ struct{}
}

// Dev is a monochrome panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	bounds  image.Rectangle
	palette ansi256.Palette

	pixels *image1bit.VerticalLSB
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// The panel starts white, like a freshly cleared e-paper display.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	bounds := image.Rect(0, 0, opts.W, opts.H)
	d := &Dev{
		w:       w,
		bounds:  bounds,
		palette: *p,
		pixels:  image1bit.NewVerticalLSB(bounds),
	}
	for i := range d.pixels.Pix {
		d.pixels.Pix[i] = 0xFF
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("EPDSim{%dx%d}", d.bounds.Dx(), d.bounds.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.bounds
}

// Draw implements display.Drawer. Every call renders a full frame to
// the writer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.bounds)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := src.At(x-r.Min.X+sp.X, y-r.Min.Y+sp.Y)
			d.pixels.SetBit(x, y, image1bit.BitModel.Convert(c).(image1bit.Bit))
		}
	}
	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	for y := d.bounds.Min.Y; y < d.bounds.Max.Y; y++ {
		_, _ = d.buf.WriteString("\033[0m")
		for x := d.bounds.Min.X; x < d.bounds.Max.X; x++ {
			c := color.NRGBA{A: 255}
			if d.pixels.BitAt(x, y) == image1bit.On {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
