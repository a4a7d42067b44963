// Copyright 2025 The SSD1677 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

// Commands
const (
	driverOutputControl            byte = 0x01
	gateDrivingVoltageControl      byte = 0x03
	sourceDrivingVoltageControl    byte = 0x04
	boosterSoftStartControl        byte = 0x0C
	deepSleepMode                  byte = 0x10
	dataEntryModeSetting           byte = 0x11
	swReset                        byte = 0x12
	tempSensorSelect               byte = 0x18
	masterActivation               byte = 0x20
	displayUpdateControl1          byte = 0x21
	displayUpdateControl2          byte = 0x22
	writeRAMBW                     byte = 0x24
	writeRAMRed                    byte = 0x26
	borderWaveformControl          byte = 0x3C
	setRAMXAddressStartEndPosition byte = 0x44
	setRAMYAddressStartEndPosition byte = 0x45
	autoWriteRedRAMPattern         byte = 0x46
	autoWriteBWRAMPattern          byte = 0x47
	setRAMXAddressCounter          byte = 0x4E
	setRAMYAddressCounter          byte = 0x4F
	nop                            byte = 0x7F
)

// tempSensorInternal selects the controller's built-in temperature
// sensor for waveform compensation.
const tempSensorInternal byte = 0x80

// powerOnFill is the RAM pattern loaded during initialization.
const powerOnFill byte = 0xF7

// UpdateMode selects the display-update waveform passed to the
// controller's update sequence.
type UpdateMode byte

const (
	// UpdateSlow performs a full flashing refresh. It takes longer but
	// leaves a clean image.
	UpdateSlow UpdateMode = 0xF7
	// UpdateFast refreshes quickly and can struggle to clear pixels,
	// leaving ghosting behind.
	UpdateFast UpdateMode = 0xFF
)

type controller interface {
	sendCommand(byte)
	sendData([]byte)
	sendByte(byte)
	readBusy()
}

// initDisplay issues the initialization sequence from chapter 9 of the
// SSD1677 datasheet: fill both RAM planes, configure the gate driver
// and addressing for the panel size, then load the waveform LUT from
// OTP.
func initDisplay(ctrl controller, cfg Config) {
	dims := cfg.Dimensions()

	ctrl.sendCommand(autoWriteBWRAMPattern)
	ctrl.sendByte(powerOnFill)
	ctrl.readBusy()

	ctrl.sendCommand(autoWriteRedRAMPattern)
	ctrl.sendByte(powerOnFill)
	ctrl.readBusy()

	// Gate driver output, sized to the panel rows.
	ctrl.sendCommand(driverOutputControl)
	ctrl.sendData([]byte{byte((dims.Rows - 1) % 256), byte((dims.Rows - 1) / 256), 0x02})

	// X increment, Y increment, counter advances along X.
	ctrl.sendCommand(dataEntryModeSetting)
	ctrl.sendByte(0x03)

	setWindow(ctrl, 0, dims.Cols-1, 0, dims.Rows-1)

	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendByte(0x01)

	ctrl.sendCommand(tempSensorSelect)
	ctrl.sendByte(tempSensorInternal)

	// Load the waveform LUT from OTP.
	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendByte(0xFF)
	ctrl.sendCommand(masterActivation)
	ctrl.readBusy()
}

// updateDisplay streams the full framebuffer into the black/white RAM
// and triggers a refresh with the given waveform.
func updateDisplay(ctrl controller, buf []byte, mode UpdateMode) {
	setCursor(ctrl, 0, 0)

	ctrl.sendCommand(writeRAMBW)
	ctrl.sendData(buf)

	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendByte(byte(mode))
	ctrl.sendCommand(masterActivation)
	ctrl.readBusy()
}

// setWindow sets the RAM address window. Start and end values are
// 10-bit; the upper bits of the high byte are discarded.
func setWindow(ctrl controller, xStart, xEnd, yStart, yEnd int) {
	ctrl.sendCommand(setRAMXAddressStartEndPosition)
	ctrl.sendData([]byte{byte(xStart), byte(xStart >> 8), byte(xEnd), byte(xEnd>>8) & 0x3F})

	ctrl.sendCommand(setRAMYAddressStartEndPosition)
	ctrl.sendData([]byte{byte(yStart), byte(yStart >> 8), byte(yEnd), byte(yEnd>>8) & 0x3F})
}

// setCursor positions the RAM address counters.
func setCursor(ctrl controller, x, y int) {
	ctrl.sendCommand(setRAMXAddressCounter)
	ctrl.sendData([]byte{byte(x), byte(x >> 8)})

	ctrl.sendCommand(setRAMYAddressCounter)
	ctrl.sendData([]byte{byte(y), byte(y >> 8)})
}

// sleepDisplay puts the controller in deep sleep with RAM retained.
func sleepDisplay(ctrl controller) {
	ctrl.sendCommand(deepSleepMode)
	ctrl.sendByte(0x01)
}
