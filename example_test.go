// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351_test

import (
	"image"
	"log"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1351"
	"periph.io/x/devices/v3/ssd1351/image565"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	dc := gpioreg.ByName("GPIO25")
	rst := gpioreg.ByName("GPIO27")
	pwr := gpioreg.ByName("GPIO18")

	dev, err := ssd1351.New(p, dc, rst, pwr, &ssd1351.DefaultOpts)
	if err != nil {
		log.Fatalf("failed to initialize display: %s", err)
	}
	if err := dev.Init(); err != nil {
		log.Fatal(err)
	}
	if err := dev.On(); err != nil {
		log.Fatal(err)
	}

	if err := dev.FillScreen(image565.Encode(0x0A0A2A)); err != nil {
		log.Fatal(err)
	}
	red := image565.Encode(0xFF0000)
	if err := dev.DrawText("Hello!", &ssd1351.TextOpts{X: 0, Y: 56, W: 128, Color: &red}); err != nil {
		log.Fatal(err)
	}

	_ = dev.Halt()
}

// Example_render draws an anti-aliased scene off-screen and sends it to
// the panel in one write.
func Example_render() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	dev, err := ssd1351.New(p, gpioreg.ByName("GPIO25"), gpioreg.ByName("GPIO27"), gpioreg.ByName("GPIO18"), &ssd1351.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Init(); err != nil {
		log.Fatal(err)
	}
	if err := dev.On(); err != nil {
		log.Fatal(err)
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	ctx := gg.NewContext(128, 128)
	ctx.SetRGB(0, 0, 0.2)
	ctx.Clear()
	ctx.SetRGB(1, 0.8, 0)
	ctx.DrawCircle(64, 48, 30)
	ctx.Stroke()
	ctx.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 14}))
	ctx.SetRGB(1, 1, 1)
	ctx.DrawStringAnchored("ssd1351", 64, 100, 0.5, 0.5)

	if err := dev.Draw(dev.Bounds(), ctx.Image(), image.Point{}); err != nil {
		log.Fatal(err)
	}
}
