// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1351/image565"
)

// The controller RAM is 128x128; smaller panels are centered on it.
const maxSize = 128

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{W: 128, H: 128}

// Opts defines the options for the device.
type Opts struct {
	// W is the panel width in pixels, at most 128.
	W int
	// H is the panel height in pixels, at most 128.
	H int
}

// Dev is an open handle to the display controller.
type Dev struct {
	// Communication
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinOut
	pwr gpio.PinOut

	opts Opts
	g    geometry

	// Current text style, updated by DrawText.
	style textStyle
}

// New returns a Dev object that communicates over 4-wire SPI to a SSD1351
// display controller.
//
// The SPI port is configured for 8MHz, Mode0, 8 bits per word. dc is the
// data/command line, rst the reset line and pwr the panel power enable
// line.
//
// New validates the dimensions, then power-cycles and resets the panel so
// the controller starts from a known state. No register is programmed yet:
// call Init, then On.
func New(p spi.Port, dc, rst, pwr gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.W <= 0 || opts.W > maxSize {
		return nil, fmt.Errorf("ssd1351: invalid width %d", opts.W)
	}
	if opts.H <= 0 || opts.H > maxSize {
		return nil, fmt.Errorf("ssd1351: invalid height %d", opts.H)
	}
	c, err := p.Connect(8*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	d := &Dev{
		c:   c,
		dc:  dc,
		rst: rst,
		pwr: pwr,
		opts: *opts,
		g: geometry{
			w:         opts.W,
			h:         opts.H,
			colOffset: (maxSize - opts.W) / 2,
			rowOffset: 0,
		},
		style: defaultStyle(),
	}

	eh := errorHandler{d: d}
	eh.dcOut(gpio.Low)
	// Power-cycle with the panel in reset, then release. The settle times
	// are mandatory before the controller accepts commands.
	eh.pwrOut(gpio.Low)
	eh.settle(2 * time.Millisecond)
	eh.rstOut(gpio.Low)
	eh.settle(2 * time.Millisecond)
	eh.rstOut(gpio.High)
	eh.settle(2 * time.Millisecond)
	eh.pwrOut(gpio.High)
	eh.settle(60 * time.Millisecond)
	if eh.err != nil {
		return nil, eh.err
	}
	return d, nil
}

// Init programs the controller registers: command unlock, clocking, mux
// ratio, remap, addressing bounds, start line, display offset, precharge,
// VCOMH and contrast.
//
// The display output stays disabled; call On afterwards.
func (d *Dev) Init() error {
	eh := errorHandler{d: d}
	initDisplay(&eh, &d.opts)
	return eh.err
}

// On enables the display output.
func (d *Dev) On() error {
	eh := errorHandler{d: d}
	eh.sendCommand(cmdDisplayOn)
	return eh.err
}

// Off disables the display output. RAM content is retained.
func (d *Dev) Off() error {
	eh := errorHandler{d: d}
	eh.sendCommand(cmdDisplayOff)
	return eh.err
}

// SetContrast sets the master contrast.
func (d *Dev) SetContrast(level byte) error {
	eh := errorHandler{d: d}
	eh.sendCommand(cmdContrastMaster)
	eh.sendByte(level)
	return eh.err
}

// Invert the display (color inverted vs normal).
func (d *Dev) Invert(inverted bool) error {
	cmd := cmdNormalDisplay
	if inverted {
		cmd = cmdInvertDisplay
	}
	eh := errorHandler{d: d}
	eh.sendCommand(cmd)
	return eh.err
}

// Clear fills the screen with black.
func (d *Dev) Clear() error {
	return d.FillScreen(image565.Black)
}

// FillScreen fills the visible area with c.
//
// Use image565.Encode to fill with a 24-bit RGB value.
func (d *Dev) FillScreen(c image565.RGB565) error {
	return d.FillRect(0, 0, d.opts.W, d.opts.H, c)
}

// FillRect fills a rectangle with c. The rectangle is clipped to the panel;
// a rectangle starting off panel is skipped silently.
func (d *Dev) FillRect(x, y, w, h int, c image565.RGB565) error {
	eh := errorHandler{d: d}
	fillRect(&eh, d.g, x, y, w, h, c)
	return eh.err
}

// DrawPixel sets a single pixel to c. Off-panel coordinates are skipped
// silently.
func (d *Dev) DrawPixel(x, y int, c image565.RGB565) error {
	eh := errorHandler{d: d}
	fillRect(&eh, d.g, x, y, 1, 1, c)
	return eh.err
}

// DrawImage blits a pre-encoded image: pix must hold w*h pixels, 2 bytes
// each, big-endian RGB565, row-major. No color conversion is performed and
// the buffer size is not validated against w and h.
func (d *Dev) DrawImage(pix []byte, x, y, w, h int) error {
	eh := errorHandler{d: d}
	blit(&eh, d.g, x, y, w, h, pix)
	return eh.err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.opts.W, d.opts.H)
}

// Draw implements display.Drawer.
//
// It draws synchronously; once this function returns the display is
// updated.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	var pix []byte
	if img, ok := src.(*image565.Image); ok && img.Rect.Eq(r) && sp == (image.Point{}) && img.Stride == 2*r.Dx() {
		// Exact size and encoding: no conversion needed.
		pix = img.Pix
	} else {
		buf := image565.New(image.Rectangle{Max: image.Pt(r.Dx(), r.Dy())})
		draw.Draw(buf, buf.Rect, src, sp, draw.Src)
		pix = buf.Pix
	}
	eh := errorHandler{d: d}
	blit(&eh, d.g, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), pix)
	return eh.err
}

// Halt turns off the display. It implements conn.Resource.
func (d *Dev) Halt() error {
	return d.Off()
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1351.Dev{%s, %s, %dx%d}", d.c, d.dc, d.opts.W, d.opts.H)
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
