// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image565

import (
	"image"
	"image/color"
)

// RGB565 is a 16-bit color packing 5 bits red, 6 bits green and 5 bits blue.
//
// This is the wire format of the SSD1351 in 65k color mode, transmitted
// big-endian.
type RGB565 uint16

// Handy colors.
const (
	Black RGB565 = 0x0000
	White RGB565 = 0xFFFF
)

// RGBA implements color.Color.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>11) & 0x1F
	g = uint32(c>>5) & 0x3F
	b = uint32(c) & 0x1F
	r = r * 0xFFFF / 0x1F
	g = g * 0xFFFF / 0x3F
	b = b * 0xFFFF / 0x1F
	return r, g, b, 0xFFFF
}

// Hi returns the byte sent first on the wire.
func (c RGB565) Hi() byte {
	return byte(c >> 8)
}

// Lo returns the byte sent second on the wire.
func (c RGB565) Lo() byte {
	return byte(c)
}

// Encode converts a 24-bit 0xRRGGBB value to its 5-6-5 representation.
//
// Each channel is rescaled with floor(channel*max/255), so the mapping is
// monotonic and maps 0x00 to 0 and 0xFF to the channel maximum.
func Encode(rgb uint32) RGB565 {
	r := (rgb >> 16) & 0xFF
	g := (rgb >> 8) & 0xFF
	b := rgb & 0xFF
	return RGB565(r*0x1F/0xFF<<11 | g*0x3F/0xFF<<5 | b*0x1F/0xFF)
}

func toRGB565(c color.Color) color.Color {
	if c565, ok := c.(RGB565); ok {
		return c565
	}
	r, g, b, _ := c.RGBA()
	return Encode(uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(b>>8))
}

// Model converts arbitrary colors to RGB565.
var Model = color.ModelFunc(toRGB565)

// Image is an in-memory RGB565 image.
//
// Pixels are stored row-major, 2 bytes per pixel, big-endian, matching the
// byte stream expected by the SSD1351 write RAM command.
type Image struct {
	// Pix holds the pixel data.
	Pix []byte
	// Stride is the distance in bytes between two vertically adjacent pixels.
	Stride int
	// Rect is the image bounds.
	Rect image.Rectangle
}

// New returns an initialized (all black) Image with the specified bounds.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model {
	return Model
}

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *Image) At(x, y int) color.Color {
	return i.RGB565At(x, y)
}

// RGB565At returns the pixel at (x, y) without a color conversion.
func (i *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return Black
	}
	n := i.PixOffset(x, y)
	return RGB565(uint16(i.Pix[n])<<8 | uint16(i.Pix[n+1]))
}

// Set implements draw.Image.
func (i *Image) Set(x, y int, c color.Color) {
	i.SetRGB565(x, y, Model.Convert(c).(RGB565))
}

// SetRGB565 sets the pixel at (x, y) without a color conversion.
func (i *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return
	}
	n := i.PixOffset(x, y)
	i.Pix[n] = c.Hi()
	i.Pix[n+1] = c.Lo()
}

// PixOffset returns the index into Pix of the first byte of the pixel at
// (x, y).
func (i *Image) PixOffset(x, y int) int {
	return (y-i.Rect.Min.Y)*i.Stride + (x-i.Rect.Min.X)*2
}
