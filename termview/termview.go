// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termview implements a display.Drawer that paints an RGB565 frame
// to the terminal (stdout) using ANSI color codes.
//
// Useful to develop screens for the SSD1351 without the hardware at hand:
// the same drawing code runs against either device.
package termview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1351/image565"
)

// Opts represents the options available for this display.
type Opts struct {
	// W, H is the emulated panel size in pixels.
	W, H int
	// Palette is the ANSI palette to quantize to. Default ansi256.Default.
	Palette *ansi256.Palette
}

// Dev is a color panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	height  int
	palette ansi256.Palette

	// Big-endian RGB565, 2 bytes per pixel, row-major.
	pixels []byte
	buf    bytes.Buffer
	drawn  bool
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return newDev(colorable.NewColorableStdout(), opts)
}

func newDev(w io.Writer, opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{
		w:       w,
		width:   opts.W,
		height:  opts.H,
		palette: *p,
		pixels:  make([]byte, 2*opts.W*opts.H),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("TermView{%dx%d}", d.width, d.height)
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Write accepts a full frame of big-endian RGB565 pixels and paints it.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.pixels) {
		return 0, errors.New("termview: invalid RGB565 stream length")
	}
	copy(d.pixels, pixels)
	return len(pixels), d.refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := image565.Model.Convert(src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)).(image565.RGB565)
			n := 2 * (y*d.width + x)
			d.pixels[n] = c.Hi()
			d.pixels[n+1] = c.Lo()
		}
	}
	return d.refresh()
}

func (d *Dev) refresh() error {
	// Minimize per-call allocations; repaint over the previous frame.
	d.buf.Reset()
	if d.drawn {
		fmt.Fprintf(&d.buf, "\033[%dA", d.height)
	}
	for y := 0; y < d.height; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < d.width; x++ {
			n := 2 * (y*d.width + x)
			c := image565.RGB565(uint16(d.pixels[n])<<8 | uint16(d.pixels[n+1]))
			r16, g16, b16, _ := c.RGBA()
			nrgba := color.NRGBA{byte(r16 >> 8), byte(g16 >> 8), byte(b16 >> 8), 255}
			_, _ = io.WriteString(&d.buf, d.palette.Block(nrgba))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
