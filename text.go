// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

import (
	"periph.io/x/devices/v3/ssd1351/font"
	"periph.io/x/devices/v3/ssd1351/image565"
)

// Align is the horizontal alignment of text within its box.
type Align int

// Possible alignments. AlignNone behaves like AlignLeft.
const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Default style applied on first use.
const (
	defaultColor      = image565.White
	defaultBackground = image565.RGB565(0x4471)
)

// TextOpts is a style and placement patch for DrawText.
//
// Nil pointer fields leave the corresponding style element as resolved by
// the previous DrawText call; the resolved style persists on the Dev.
type TextOpts struct {
	// X, Y is the top-left corner of the text box on the panel.
	X, Y int
	// W, H is the requested box size in pixels. Zero means size to the
	// text; the box always grows to fit the rendered string.
	W, H int
	// Font overrides the current font.
	Font *font.Font
	// Color overrides the font color.
	Color *image565.RGB565
	// Background overrides the background color.
	Background *image565.RGB565
	// Align overrides the horizontal alignment.
	Align *Align
}

// textStyle is a fully resolved text style.
type textStyle struct {
	font       *font.Font
	color      image565.RGB565
	background image565.RGB565
	align      Align
}

func defaultStyle() textStyle {
	return textStyle{
		color:      defaultColor,
		background: defaultBackground,
		align:      AlignCenter,
	}
}

// mergeStyle applies the set fields of patch on top of prev.
func mergeStyle(prev textStyle, patch *TextOpts) textStyle {
	s := prev
	if patch == nil {
		return s
	}
	if patch.Font != nil {
		s.font = patch.Font
	}
	if patch.Color != nil {
		s.color = *patch.Color
	}
	if patch.Background != nil {
		s.background = *patch.Background
	}
	if patch.Align != nil {
		s.align = *patch.Align
	}
	return s
}

// textArea is the off-screen composition buffer for one DrawText call:
// a w*h RGB565 frame placed at (x, y) on the panel.
type textArea struct {
	x, y int
	w, h int
	pix  []byte
}

// newTextArea returns an area filled with the background color.
func newTextArea(x, y, w, h int, background image565.RGB565) *textArea {
	a := &textArea{x: x, y: y, w: w, h: h, pix: solidPattern(w*h, background)}
	return a
}

func (a *textArea) setPixel(x, y int, c image565.RGB565) {
	if x < 0 || y < 0 || x >= a.w || y >= a.h {
		return
	}
	i := 2 * (y*a.w + x)
	a.pix[i] = c.Hi()
	a.pix[i+1] = c.Lo()
}

// drawGlyph unpacks the column-major glyph bitmap into the area at
// (x0, y0): set bits take the font color, clear bits keep the background.
func drawGlyph(a *textArea, g font.Glyph, height, x0, y0 int, c image565.RGB565) {
	for x := 0; x < g.Width; x++ {
		for y := 0; y < height; y++ {
			if g.Bit(x, y) {
				a.setPixel(x0+x, y0+y, c)
			}
		}
	}
}

// composeText lays out text in a box of at least w by h pixels at panel
// position (x, y) and returns the composed area.
//
// The box grows to the measured text width and the font height when
// smaller; glyphs are centered vertically and placed horizontally per the
// style's alignment. The composition is deterministic: identical inputs
// produce byte-identical buffers.
func composeText(text string, style textStyle, x, y, w, h int) *textArea {
	f := style.font
	tw := f.Measure(text)
	if w < tw {
		w = tw
	}
	if h < f.Height() {
		h = f.Height()
	}
	a := newTextArea(x, y, w, h, style.background)

	gy := (h - f.Height()) >> 1
	gx := 0
	switch style.align {
	case AlignRight:
		gx = w - tw
	case AlignCenter:
		gx = (w - tw) / 2
	}
	for _, r := range text {
		g, ok := f.Glyph(r)
		if !ok {
			continue
		}
		drawGlyph(a, g, f.Height(), gx, gy, style.color)
		gx += g.Width + 1
	}
	return a
}

// DrawText renders text into an off-screen area and streams it to the
// panel in a single write.
//
// opts may be nil to reuse the previous placement defaults (origin 0,0,
// box sized to the text) and style. On first use the style defaults to the
// built-in 5x7 font, white on teal, centered.
func (d *Dev) DrawText(text string, opts *TextOpts) error {
	style := mergeStyle(d.style, opts)
	if style.font == nil {
		style.font = font.Builtin()
	}
	d.style = style

	var x, y, w, h int
	if opts != nil {
		x, y, w, h = opts.X, opts.Y, opts.W, opts.H
	}
	a := composeText(text, style, x, y, w, h)

	eh := errorHandler{d: d}
	blit(&eh, d.g, a.x, a.y, a.w, a.h, a.pix)
	return eh.err
}
