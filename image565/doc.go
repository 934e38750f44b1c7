// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image565 provides the 16-bit 5-6-5 color format used by the
// SSD1351 in 65k color mode.
//
// RGB565 is the pixel type, with Encode converting 24-bit 0xRRGGBB values.
// Image stores pixels row-major, 2 bytes per pixel, big-endian, so its Pix
// slice can be streamed to the controller as-is.
package image565
