// Copyright 2025 The SSD1677 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// state tracks the initialization lifecycle of the controller.
type state uint8

const (
	stateUninitialized state = iota
	stateResetting
	stateInitializing
	stateReady
	stateFaulted
)

func (s state) String() string {
	switch s {
	case stateResetting:
		return "resetting"
	case stateInitializing:
		return "initializing"
	case stateReady:
		return "ready"
	case stateFaulted:
		return "faulted"
	default:
		return "uninitialized"
	}
}

// Display drives an SSD1677 panel through a DisplayInterface.
//
// The framebuffer is owned by the caller and borrowed by the Display
// for its entire lifetime: the Display must not outlive the buffer and
// the buffer must not be mutated through another path while the
// Display holds it. One bit per pixel, MSB first; a set bit is white.
//
// A Display starts uninitialized. Call Reset to bring it to the ready
// state before drawing. It is not safe for concurrent use.
type Display struct {
	iface DisplayInterface
	buf   []byte
	cfg   Config
	state state
}

// New creates a Display from an interface, a caller-owned framebuffer
// and a configuration. It fails with a *ConfigError when the buffer
// length does not match the configured panel size (rows*cols/8).
func New(iface DisplayInterface, buf []byte, cfg Config) (*Display, error) {
	if len(buf) != cfg.BufferSize() {
		return nil, &ConfigError{Reason: fmt.Sprintf(
			"buffer length %d does not fit a %dx%d panel (want %d)",
			len(buf), cfg.dims.Rows, cfg.dims.Cols, cfg.BufferSize())}
	}
	return &Display{
		iface: iface,
		buf:   buf,
		cfg:   cfg,
	}, nil
}

// errorHandler carries the first error through a command sequence.
type errorHandler struct {
	iface DisplayInterface
	err   error
}

func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.iface.SendCommand(cmd)
}

func (eh *errorHandler) sendData(data []byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.iface.SendData(data)
}

func (eh *errorHandler) sendByte(data byte) {
	eh.sendData([]byte{data})
}

func (eh *errorHandler) readBusy() {
	if eh.err != nil {
		return
	}
	eh.err = eh.iface.WaitUntilIdle()
}

// Reset performs a hardware reset followed by a software reset and the
// full initialization sequence. It may be called from any state and is
// the only way to leave the faulted state; it also wakes the
// controller from deep sleep.
func (d *Display) Reset() error {
	d.state = stateResetting
	if err := d.iface.Reset(); err != nil {
		d.state = stateFaulted
		return err
	}

	eh := &errorHandler{iface: d.iface}
	eh.sendCommand(swReset)
	eh.readBusy()
	if eh.err != nil {
		d.state = stateFaulted
		return eh.err
	}

	d.state = stateInitializing
	initDisplay(eh, d.cfg)
	if eh.err != nil {
		d.state = stateFaulted
		return eh.err
	}

	d.state = stateReady
	return nil
}

// setBit writes one framebuffer bit. Reports false when (x, y) is out
// of bounds.
func (d *Display) setBit(x, y int, b image1bit.Bit) bool {
	offset, mask, ok := pixelIndex(x, y, d.cfg.dims, d.cfg.rotation)
	if !ok {
		return false
	}
	if b == image1bit.On {
		d.buf[offset] |= mask
	} else {
		d.buf[offset] &^= mask
	}
	return true
}

// SetPixel sets the pixel at (x, y) to the given color, image1bit.On
// being white. Coordinates are logical, after rotation. Out-of-bounds
// coordinates return an *OutOfBoundsError and leave the buffer
// untouched; they are never silently dropped.
//
// With AutoUpdate enabled every call performs a full fast refresh,
// which is slow. For bulk drawing leave AutoUpdate off and call Update
// once.
func (d *Display) SetPixel(x, y int, c image1bit.Bit) error {
	if d.state != stateReady {
		return &NotReadyError{State: d.state.String()}
	}
	if !d.setBit(x, y, c) {
		return &OutOfBoundsError{X: x, Y: y}
	}
	if d.cfg.autoUpdate {
		return d.Update(UpdateFast)
	}
	return nil
}

// Update streams the entire framebuffer to the controller RAM and
// triggers a refresh, blocking until the busy line clears. This is the
// only operation that produces a visible change on the panel.
//
// There is no partial success: on a transport error or busy timeout
// the panel content is undefined, the Display moves to the faulted
// state and Reset must be called before further use.
func (d *Display) Update(mode UpdateMode) error {
	if d.state != stateReady {
		return &NotReadyError{State: d.state.String()}
	}
	eh := &errorHandler{iface: d.iface}
	updateDisplay(eh, d.buf, mode)
	if eh.err != nil {
		d.state = stateFaulted
		return eh.err
	}
	return nil
}

// Clear fills the framebuffer with a single color. With AutoUpdate
// enabled it also performs a slow refresh; otherwise the change stays
// buffer-local until Update is called.
func (d *Display) Clear(c image1bit.Bit) error {
	if d.state != stateReady {
		return &NotReadyError{State: d.state.String()}
	}
	fill := byte(0x00)
	if c == image1bit.On {
		fill = 0xFF
	}
	for i := range d.buf {
		d.buf[i] = fill
	}
	if d.cfg.autoUpdate {
		return d.Update(UpdateSlow)
	}
	return nil
}

// Sleep puts the controller into deep sleep with RAM retained. It can
// be woken up by calling Reset again.
func (d *Display) Sleep() error {
	if d.state != stateReady {
		return &NotReadyError{State: d.state.String()}
	}
	eh := &errorHandler{iface: d.iface}
	sleepDisplay(eh)
	if eh.err != nil {
		d.state = stateFaulted
		return eh.err
	}
	d.state = stateUninitialized
	return nil
}

// Rows returns the number of rows the panel has.
func (d *Display) Rows() int {
	return d.cfg.dims.Rows
}

// Cols returns the number of columns the panel has.
func (d *Display) Cols() int {
	return d.cfg.dims.Cols
}

// Rotation returns the rotation the display was configured with.
func (d *Display) Rotation() Rotation {
	return d.cfg.rotation
}

// ColorModel returns a 1-bit color model.
func (d *Display) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the logical, rotation-adjusted bounds of the display.
func (d *Display) Bounds() image.Rectangle {
	w, h := logicalSize(d.cfg.dims, d.cfg.rotation)
	return image.Rect(0, 0, w, h)
}

// Draw rasterizes src into the framebuffer and performs a single slow
// refresh, regardless of the AutoUpdate setting.
func (d *Display) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.state != stateReady {
		return &NotReadyError{State: d.state.String()}
	}
	r = r.Intersect(d.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := src.At(x-r.Min.X+sp.X, y-r.Min.Y+sp.Y)
			d.setBit(x, y, image1bit.BitModel.Convert(c).(image1bit.Bit))
		}
	}
	return d.Update(UpdateSlow)
}

// Halt clears the display to white.
func (d *Display) Halt() error {
	if d.state != stateReady {
		return &NotReadyError{State: d.state.String()}
	}
	for i := range d.buf {
		d.buf[i] = 0xFF
	}
	return d.Update(UpdateSlow)
}

// String returns a string containing configuration information.
func (d *Display) String() string {
	return fmt.Sprintf("ssd1677.Display{%dx%d, %s}", d.cfg.dims.Cols, d.cfg.dims.Rows, d.cfg.rotation)
}

var _ display.Drawer = &Display{}
