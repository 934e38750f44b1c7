// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

import "periph.io/x/devices/v3/ssd1351/image565"

type controller interface {
	sendCommand(byte)
	sendData([]byte)
	sendByte(byte)
}

// geometry is the fixed addressing layout of a panel: its size and the RAM
// offset at which it starts. Narrow panels are centered on the 128 column
// RAM.
type geometry struct {
	w, h      int
	colOffset int
	rowOffset int
}

// initDisplay plays the register program bringing the controller into a
// known, addressable state.
//
// The sequence is strictly ordered and must not be interrupted: a partial
// program leaves the controller in an undefined visual state.
func initDisplay(ctrl controller, opts *Opts) {
	ctrl.sendCommand(cmdCommandLock)
	ctrl.sendByte(0x12) // Unlock the MCU interface
	ctrl.sendCommand(cmdCommandLock)
	ctrl.sendByte(0xB1) // Make commands A2,B1,B3,BB,BE,C1 accessible
	ctrl.sendCommand(cmdDisplayOff)
	ctrl.sendCommand(cmdClockDiv)
	ctrl.sendByte(0xF1) // 7:4 oscillator frequency, 3:0 divide ratio
	ctrl.sendCommand(cmdMuxRatio)
	ctrl.sendByte(byte(opts.W - 1))
	ctrl.sendCommand(cmdSetRemap)
	ctrl.sendByte(byte(opts.W))
	ctrl.sendCommand(cmdSetColumn)
	ctrl.sendData([]byte{0x00, byte(opts.W - 1)})
	ctrl.sendCommand(cmdSetRow)
	ctrl.sendData([]byte{0x00, byte(opts.H - 1)})
	ctrl.sendCommand(cmdStartLine)
	ctrl.sendByte(0x80)
	ctrl.sendCommand(cmdDisplayOffset)
	ctrl.sendByte(byte(opts.W))
	ctrl.sendCommand(cmdPrecharge)
	ctrl.sendByte(0x32)
	ctrl.sendCommand(cmdVCOMH)
	ctrl.sendByte(0x05)
	ctrl.sendCommand(cmdNormalDisplay)
	ctrl.sendCommand(cmdContrastABC)
	ctrl.sendData([]byte{0x8A, 0x51, 0x8A})
	ctrl.sendCommand(cmdContrastMaster)
	ctrl.sendByte(0xCF)
	ctrl.sendCommand(cmdSetVSL)
	ctrl.sendData([]byte{0xA0, 0xB5, 0x55})
	ctrl.sendCommand(cmdPrecharge2)
	ctrl.sendByte(0x01)
}

// setAddressWindow clips the rectangle to the panel, applies the RAM
// offsets and programs the column/row window followed by the write RAM
// command, arming the controller for w*h*2 bytes of pixel data.
//
// Returns the clipped width and height. ok is false when the rectangle
// starts off panel; nothing is sent in that case.
func setAddressWindow(ctrl controller, g geometry, x, y, w, h int) (int, int, bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0, 0, false
	}
	if x+w > g.w {
		w = g.w - x - 1
	}
	if y+h > g.h {
		h = g.h - y - 1
	}
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	cx := x + g.colOffset
	cy := y + g.rowOffset
	ctrl.sendCommand(cmdSetColumn)
	ctrl.sendData([]byte{byte(cx), byte(cx + w - 1)})
	ctrl.sendCommand(cmdSetRow)
	ctrl.sendData([]byte{byte(cy), byte(cy + h - 1)})
	ctrl.sendCommand(cmdWriteRAM)
	return w, h, true
}

// solidPattern builds a buffer of n pixels all set to c.
func solidPattern(n int, c image565.RGB565) []byte {
	hi, lo := c.Hi(), c.Lo()
	buf := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		buf[2*i] = hi
		buf[2*i+1] = lo
	}
	return buf
}

// fillRect streams a solid rectangle. Off-panel rectangles are skipped
// silently, partially covered ones are clipped.
func fillRect(ctrl controller, g geometry, x, y, w, h int, c image565.RGB565) {
	w, h, ok := setAddressWindow(ctrl, g, x, y, w, h)
	if !ok {
		return
	}
	ctrl.sendData(solidPattern(w*h, c))
}

// blit streams a row-major big-endian RGB565 buffer of w*h pixels at (x, y).
//
// When the window gets clipped the buffer rows are cropped so the byte count
// always matches the programmed window.
func blit(ctrl controller, g geometry, x, y, w, h int, pix []byte) {
	cw, ch, ok := setAddressWindow(ctrl, g, x, y, w, h)
	if !ok {
		return
	}
	if cw == w && ch == h {
		ctrl.sendData(pix)
		return
	}
	out := make([]byte, 2*cw*ch)
	for row := 0; row < ch; row++ {
		copy(out[2*cw*row:2*cw*(row+1)], pix[2*w*row:2*w*row+2*cw])
	}
	ctrl.sendData(out)
}
