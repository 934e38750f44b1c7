// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

import (
	"errors"
	"fmt"
)

// Descriptor layout:
//
//	byte 0-1  reserved (orientation/id in the generator output)
//	byte 2-3  first character code, little-endian
//	byte 4-5  last character code, little-endian
//	byte 6    glyph height in pixels (shared by all glyphs)
//	byte 7    reserved
//	byte 8+   glyph records, 4 bytes per character code:
//	          width byte followed by a 24-bit little-endian offset of the
//	          glyph bitmap, relative to the start of the descriptor.
//
// Bitmaps are column-major: each column occupies ceil(height/8) bytes, bit 0
// of the first byte is the top pixel of the column.
const (
	headerLen = 8
	recordLen = 4
)

// Font is an immutable bitmap font descriptor.
type Font struct {
	data   []byte
	first  rune
	last   rune
	height int
	// Bytes per bitmap column.
	bpc int
}

// Glyph is the bitmap and width of one character.
type Glyph struct {
	// Width in pixels. The height is shared by all glyphs of a Font.
	Width int

	bitmap []byte
	bpc    int
}

// Bit reports whether the pixel at (x, y) of the glyph is set.
func (g Glyph) Bit(x, y int) bool {
	return g.bitmap[x*g.bpc+y/8]&(1<<(y%8)) != 0
}

// Parse validates data as a font descriptor and returns a Font reading from
// it.
//
// The returned Font keeps a reference to data; it must not be modified
// afterwards.
func Parse(data []byte) (*Font, error) {
	if len(data) < headerLen {
		return nil, errors.New("font: descriptor too short")
	}
	first := rune(uint16(data[2]) | uint16(data[3])<<8)
	last := rune(uint16(data[4]) | uint16(data[5])<<8)
	height := int(data[6])
	if last < first {
		return nil, fmt.Errorf("font: invalid character range %d..%d", first, last)
	}
	if height == 0 {
		return nil, errors.New("font: zero glyph height")
	}
	n := int(last-first) + 1
	if headerLen+recordLen*n > len(data) {
		return nil, fmt.Errorf("font: glyph table for %d characters exceeds %d byte descriptor", n, len(data))
	}
	f := &Font{
		data:   data,
		first:  first,
		last:   last,
		height: height,
		bpc:    (height + 7) / 8,
	}
	for i := 0; i < n; i++ {
		width, offset := f.record(i)
		if offset+width*f.bpc > len(data) {
			return nil, fmt.Errorf("font: bitmap of character %q out of range", first+rune(i))
		}
	}
	return f, nil
}

// record returns the width and bitmap offset of the i-th glyph record.
func (f *Font) record(i int) (width, offset int) {
	idx := headerLen + recordLen*i
	width = int(f.data[idx])
	offset = int(f.data[idx+1]) | int(f.data[idx+2])<<8 | int(f.data[idx+3])<<16
	return
}

// Height returns the glyph height in pixels.
func (f *Font) Height() int {
	return f.height
}

// Glyph returns the glyph for r.
//
// When r is not covered by the font the glyph for '?' is substituted; ok is
// false when neither is covered.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if r < f.first || r > f.last {
		if r == '?' || '?' < f.first || '?' > f.last {
			return Glyph{}, false
		}
		return f.Glyph('?')
	}
	width, offset := f.record(int(r - f.first))
	return Glyph{
		Width:  width,
		bitmap: f.data[offset : offset+width*f.bpc],
		bpc:    f.bpc,
	}, true
}

// Measure returns the width in pixels of s: the sum of its glyph widths with
// one pixel of spacing between consecutive glyphs.
//
// Runes without a glyph (after '?' substitution) do not contribute.
func (f *Font) Measure(s string) int {
	w := 0
	n := 0
	for _, r := range s {
		g, ok := f.Glyph(r)
		if !ok {
			continue
		}
		w += g.Width + 1
		n++
	}
	if n > 0 {
		// No spacing after the last glyph.
		w--
	}
	return w
}
