// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/devices/v3/ssd1351/image565"
)

func newTestDev(t *testing.T, opts *Opts) (*Dev, *spitest.Record) {
	t.Helper()
	rec := &spitest.Record{}
	dev, err := New(rec, &gpiotest.Pin{N: "dc"}, &gpiotest.Pin{N: "rst"}, &gpiotest.Pin{N: "pwr"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	// Drop whatever the bring-up recorded; the tests below each start from
	// a clean operation log.
	rec.Ops = nil
	return dev, rec
}

func TestNewErrors(t *testing.T) {
	for _, opts := range []Opts{
		{W: 0, H: 128},
		{W: 128, H: 0},
		{W: 129, H: 128},
		{W: 128, H: 129},
		{W: -1, H: -1},
	} {
		rec := &spitest.Record{}
		if _, err := New(rec, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &opts); err == nil {
			t.Errorf("New(%dx%d) succeeded, want error", opts.W, opts.H)
		}
	}
}

func TestInitWire(t *testing.T) {
	dev, rec := newTestDev(t, &Opts{W: 96, H: 96})
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	want := []conntest.IO{
		{W: []byte{0xFD}}, {W: []byte{0x12}},
		{W: []byte{0xFD}}, {W: []byte{0xB1}},
		{W: []byte{0xAE}},
		{W: []byte{0xB3}}, {W: []byte{0xF1}},
		{W: []byte{0xCA}}, {W: []byte{95}},
		{W: []byte{0xA0}}, {W: []byte{96}},
		{W: []byte{0x15}}, {W: []byte{0, 95}},
		{W: []byte{0x75}}, {W: []byte{0, 95}},
		{W: []byte{0xA1}}, {W: []byte{0x80}},
		{W: []byte{0xA2}}, {W: []byte{96}},
		{W: []byte{0xB1}}, {W: []byte{0x32}},
		{W: []byte{0xBE}}, {W: []byte{0x05}},
		{W: []byte{0xA6}},
		{W: []byte{0xC1}}, {W: []byte{0x8A, 0x51, 0x8A}},
		{W: []byte{0xC7}}, {W: []byte{0xCF}},
		{W: []byte{0xB4}}, {W: []byte{0xA0, 0xB5, 0x55}},
		{W: []byte{0xB6}}, {W: []byte{0x01}},
	}
	if diff := cmp.Diff(want, rec.Ops, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Init() wire difference (-want +got):\n%s", diff)
	}
}

func TestFillScreen(t *testing.T) {
	// A 96 pixel wide panel is centered on the 128 column RAM: columns
	// 16..111.
	dev, rec := newTestDev(t, &Opts{W: 96, H: 96})
	if err := dev.FillScreen(0x4471); err != nil {
		t.Fatal(err)
	}
	want := []conntest.IO{
		{W: []byte{0x15}}, {W: []byte{16, 111}},
		{W: []byte{0x75}}, {W: []byte{0, 95}},
		{W: []byte{0x5C}},
		{W: bytes.Repeat([]byte{0x44, 0x71}, 96*96)},
	}
	if diff := cmp.Diff(want, rec.Ops, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("FillScreen() wire difference (-want +got):\n%s", diff)
	}
}

func TestClear(t *testing.T) {
	dev, rec := newTestDev(t, &DefaultOpts)
	if err := dev.Clear(); err != nil {
		t.Fatal(err)
	}
	last := rec.Ops[len(rec.Ops)-1]
	if len(last.W) != 2*128*128 {
		t.Fatalf("pixel payload = %d bytes, want %d", len(last.W), 2*128*128)
	}
	for i, b := range last.W {
		if b != 0 {
			t.Fatalf("payload byte %d = %#02x, want 0", i, b)
		}
	}
}

func TestDrawPixel(t *testing.T) {
	dev, rec := newTestDev(t, &DefaultOpts)
	if err := dev.DrawPixel(2, 3, image565.White); err != nil {
		t.Fatal(err)
	}
	want := []conntest.IO{
		{W: []byte{0x15}}, {W: []byte{2, 2}},
		{W: []byte{0x75}}, {W: []byte{3, 3}},
		{W: []byte{0x5C}},
		{W: []byte{0xFF, 0xFF}},
	}
	if diff := cmp.Diff(want, rec.Ops, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("DrawPixel() wire difference (-want +got):\n%s", diff)
	}
}

func TestOffPanelSkipped(t *testing.T) {
	dev, rec := newTestDev(t, &Opts{W: 96, H: 96})
	if err := dev.FillRect(96, 0, 4, 4, image565.White); err != nil {
		t.Fatal(err)
	}
	if err := dev.DrawPixel(-1, 0, image565.White); err != nil {
		t.Fatal(err)
	}
	if err := dev.DrawPixel(0, 96, image565.White); err != nil {
		t.Fatal(err)
	}
	if len(rec.Ops) != 0 {
		t.Errorf("off panel operations sent %d transactions, want none", len(rec.Ops))
	}
}

func TestLastWriteWins(t *testing.T) {
	// A fill followed by a pixel write in the same area must issue both
	// streams in order; the controller applies the later one.
	dev, rec := newTestDev(t, &DefaultOpts)
	if err := dev.FillRect(0, 0, 4, 4, 0x4471); err != nil {
		t.Fatal(err)
	}
	if err := dev.DrawPixel(1, 1, image565.White); err != nil {
		t.Fatal(err)
	}
	if len(rec.Ops) != 12 {
		t.Fatalf("recorded %d transactions, want 12", len(rec.Ops))
	}
	fill := rec.Ops[5]
	pixel := rec.Ops[11]
	if len(fill.W) != 2*4*4 {
		t.Errorf("fill payload = %d bytes, want 32", len(fill.W))
	}
	if diff := cmp.Diff([]byte{0xFF, 0xFF}, pixel.W); diff != "" {
		t.Errorf("pixel payload difference (-want +got):\n%s", diff)
	}
}

func TestDrawImage(t *testing.T) {
	dev, rec := newTestDev(t, &DefaultOpts)
	pix := bytes.Repeat([]byte{0xF8, 0x00}, 2*2)
	if err := dev.DrawImage(pix, 10, 20, 2, 2); err != nil {
		t.Fatal(err)
	}
	want := []conntest.IO{
		{W: []byte{0x15}}, {W: []byte{10, 11}},
		{W: []byte{0x75}}, {W: []byte{20, 21}},
		{W: []byte{0x5C}},
		{W: pix},
	}
	if diff := cmp.Diff(want, rec.Ops, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("DrawImage() wire difference (-want +got):\n%s", diff)
	}
}

func TestDraw(t *testing.T) {
	// An 8 pixel wide panel starts at RAM column (128-8)/2 = 60.
	dev, rec := newTestDev(t, &Opts{W: 8, H: 8})
	src := &image.Uniform{color.NRGBA{R: 0xFF, A: 0xFF}}
	if err := dev.Draw(dev.Bounds(), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	want := []conntest.IO{
		{W: []byte{0x15}}, {W: []byte{60, 67}},
		{W: []byte{0x75}}, {W: []byte{0, 7}},
		{W: []byte{0x5C}},
		{W: bytes.Repeat([]byte{0xF8, 0x00}, 8*8)},
	}
	if diff := cmp.Diff(want, rec.Ops, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Draw() wire difference (-want +got):\n%s", diff)
	}
}

func TestDrawFastPath(t *testing.T) {
	dev, rec := newTestDev(t, &Opts{W: 8, H: 8})
	src := image565.New(dev.Bounds())
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}
	if err := dev.Draw(dev.Bounds(), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	last := rec.Ops[len(rec.Ops)-1]
	if diff := cmp.Diff(src.Pix, last.W); diff != "" {
		t.Errorf("pre-encoded pixels altered on the way out (-want +got):\n%s", diff)
	}
}

func TestDrawText(t *testing.T) {
	dev, rec := newTestDev(t, &DefaultOpts)
	if err := dev.DrawText("Hi", nil); err != nil {
		t.Fatal(err)
	}
	// Built-in font: "Hi" is 11x7 pixels.
	want := []conntest.IO{
		{W: []byte{0x15}}, {W: []byte{0, 10}},
		{W: []byte{0x75}}, {W: []byte{0, 6}},
		{W: []byte{0x5C}},
	}
	if diff := cmp.Diff(want, rec.Ops[:5], cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("DrawText() window difference (-want +got):\n%s", diff)
	}
	payload := rec.Ops[5].W
	if len(payload) != 2*11*7 {
		t.Fatalf("payload = %d bytes, want %d", len(payload), 2*11*7)
	}
	// Default style is white on teal; nothing else may appear.
	fg, bg := false, false
	for i := 0; i < len(payload); i += 2 {
		switch c := image565.RGB565(uint16(payload[i])<<8 | uint16(payload[i+1])); c {
		case image565.White:
			fg = true
		case 0x4471:
			bg = true
		default:
			t.Fatalf("pixel %d = %#04x, want white or teal", i/2, c)
		}
	}
	if !fg || !bg {
		t.Errorf("payload has foreground=%t background=%t, want both", fg, bg)
	}
}

func TestDrawTextStylePersists(t *testing.T) {
	dev, rec := newTestDev(t, &DefaultOpts)
	red := image565.Encode(0xFF0000)
	black := image565.Black
	if err := dev.DrawText("A", &TextOpts{Color: &red, Background: &black}); err != nil {
		t.Fatal(err)
	}
	rec.Ops = nil
	// No style in opts: the previous red on black sticks.
	if err := dev.DrawText("A", &TextOpts{X: 4, Y: 4}); err != nil {
		t.Fatal(err)
	}
	payload := rec.Ops[len(rec.Ops)-1].W
	for i := 0; i < len(payload); i += 2 {
		c := image565.RGB565(uint16(payload[i])<<8 | uint16(payload[i+1]))
		if c != red && c != black {
			t.Fatalf("pixel %d = %#04x, want red or black", i/2, c)
		}
	}
}

func TestOnOffContrastInvert(t *testing.T) {
	dev, rec := newTestDev(t, &DefaultOpts)
	for _, tc := range []struct {
		name string
		fn   func() error
		want []conntest.IO
	}{
		{"On", dev.On, []conntest.IO{{W: []byte{0xAF}}}},
		{"Off", dev.Off, []conntest.IO{{W: []byte{0xAE}}}},
		{"Halt", dev.Halt, []conntest.IO{{W: []byte{0xAE}}}},
		{"SetContrast", func() error { return dev.SetContrast(0x80) }, []conntest.IO{{W: []byte{0xC7}}, {W: []byte{0x80}}}},
		{"Invert", func() error { return dev.Invert(true) }, []conntest.IO{{W: []byte{0xA7}}}},
		{"Revert", func() error { return dev.Invert(false) }, []conntest.IO{{W: []byte{0xA6}}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec.Ops = nil
			if err := tc.fn(); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, rec.Ops, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("wire difference (-want +got):\n%s", diff)
			}
		})
	}
}

func TestString(t *testing.T) {
	dev, _ := newTestDev(t, &DefaultOpts)
	if s := dev.String(); s == "" {
		t.Error("String() is empty")
	}
}
