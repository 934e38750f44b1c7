// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1351 controls a SSD1351 color OLED display via SPI.
//
// The SSD1351 is a 16-bit color (5-6-5) OLED controller supporting up to
// 128x128 pixels. It is found on boards such as the Waveshare 1.5inch RGB
// OLED and the MikroElektronika OLED C click.
//
// The driver uses 4-wire SPI: the chip select line is handled by the SPI
// port, while the data/command line, the reset line and the power enable
// line are driven through GPIO. Narrower panels are centered on the 128
// column RAM, so a 96 pixel wide display starts at RAM column 16.
//
// Pixel data is streamed as 2 bytes per pixel, big-endian, 5 bits red,
// 6 bits green, 5 bits blue. See the image565 subpackage for the color
// model and for converting 24-bit RGB values.
//
// Besides rectangle fills, single pixels and raw image blits, the driver
// renders text from packed bitmap fonts (see the font subpackage) into an
// off-screen area that is streamed in a single write.
//
// # Datasheet
//
// https://developer.mbed.org/media/uploads/GregC/ssd1351-revision_1.3.pdf
package ssd1351
