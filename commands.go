// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

// Command opcodes from the SSD1351 datasheet (rev 1.3, section 9).
const (
	cmdSetColumn      byte = 0x15
	cmdSetRow         byte = 0x75
	cmdWriteRAM       byte = 0x5C
	cmdReadRAM        byte = 0x5D
	cmdHorizScroll    byte = 0x96
	cmdStopScroll     byte = 0x9E
	cmdStartScroll    byte = 0x9F
	cmdSetRemap       byte = 0xA0
	cmdStartLine      byte = 0xA1
	cmdDisplayOffset  byte = 0xA2
	cmdDisplayAllOff  byte = 0xA4
	cmdDisplayAllOn   byte = 0xA5
	cmdNormalDisplay  byte = 0xA6
	cmdInvertDisplay  byte = 0xA7
	cmdFunctionSelect byte = 0xAB
	cmdDisplayOff     byte = 0xAE
	cmdDisplayOn      byte = 0xAF
	cmdPrecharge      byte = 0xB1
	cmdDisplayEnhance byte = 0xB2
	cmdClockDiv       byte = 0xB3
	cmdSetVSL         byte = 0xB4
	cmdSetGPIO        byte = 0xB5
	cmdPrecharge2     byte = 0xB6
	cmdSetGray        byte = 0xB8
	cmdUseLUT         byte = 0xB9
	cmdPrechargeLevel byte = 0xBB
	cmdVCOMH          byte = 0xBE
	cmdComScanInc     byte = 0xC0
	cmdContrastABC    byte = 0xC1
	cmdContrastMaster byte = 0xC7
	cmdComScanDec     byte = 0xC8
	cmdMuxRatio       byte = 0xCA
	cmdCommandLock    byte = 0xFD
)
