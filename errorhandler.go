// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler wraps the GPIO and SPI accesses of a command program and
// latches the first error. Later calls become no-ops, so register programs
// can be written without per-write error checks.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.dc.Out(l)
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

func (eh *errorHandler) pwrOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.pwr.Out(l)
}

func (eh *errorHandler) cTx(w []byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.c.Tx(w, nil)
}

// settle waits for the hardware to settle. Mandatory after power and reset
// transitions before the controller is presumed ready.
func (eh *errorHandler) settle(d time.Duration) {
	if eh.err != nil {
		return
	}
	time.Sleep(d)
}

func (eh *errorHandler) sendCommand(cmd byte) {
	eh.dcOut(gpio.Low)
	eh.cTx([]byte{cmd})
}

func (eh *errorHandler) sendData(data []byte) {
	eh.dcOut(gpio.High)
	eh.cTx(data)
}

func (eh *errorHandler) sendByte(data byte) {
	eh.sendData([]byte{data})
}
