// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termview_test

import (
	"image"
	"log"

	"periph.io/x/devices/v3/ssd1351/image565"
	"periph.io/x/devices/v3/ssd1351/termview"
)

func Example() {
	d := termview.New(&termview.Opts{W: 32, H: 16})
	img := image565.New(d.Bounds())
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			img.SetRGB565(x, y, image565.Encode(uint32(x*8)<<16|uint32(y*16)<<8))
		}
	}
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
	_ = d.Halt()
}
