// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font reads packed bitmap fonts for pixel displays.
//
// The descriptor format is the one produced by the common GLCD font
// generators: an 8 byte header holding the covered character range and the
// glyph height, a table of 4 byte per-character records (width plus bitmap
// offset), and column-major 1-bit glyph bitmaps. See Parse for the exact
// layout.
//
// Builtin returns a ready to use 5x7 ASCII font.
package font
