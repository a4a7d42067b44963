// Copyright 2025 The SSD1677 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/rpi"
)

// resetHold is the reset line hold time from box 2 in chapter 9.1 of
// the SSD1677 datasheet.
const resetHold = 10 * time.Millisecond

// spiChunk is the default Linux spidev per-transfer limit.
const spiChunk = 4096

// DisplayInterface is the hardware capability consumed by Display. It
// abstracts the synchronous bus, the command/data discrimination line,
// the reset line and the busy line.
//
// Implementations form a small closed set of wiring variants;
// Interface4Pin covers the 4-wire SPI mode.
type DisplayInterface interface {
	// SendCommand sends a single command byte with the data/command
	// line in command state.
	SendCommand(cmd byte) error
	// SendData sends payload bytes for the preceding command with the
	// data/command line in data state.
	SendData(data []byte) error
	// Reset pulses the hardware reset line with the controller's hold
	// times.
	Reset() error
	// WaitUntilIdle polls the busy line until the controller reports
	// idle. It returns a *BusyTimeoutError once the poll budget is
	// exhausted; it never blocks forever.
	WaitUntilIdle() error
}

// InterfaceOpts holds the timing options of an interface.
type InterfaceOpts struct {
	// BusyTimeout bounds a single busy wait. A full refresh can take
	// several seconds on large panels.
	BusyTimeout time.Duration
	// BusyPollInterval is the delay between busy line reads.
	BusyPollInterval time.Duration
}

// DefaultInterfaceOpts are the options used when nil is passed to the
// interface constructors.
var DefaultInterfaceOpts = InterfaceOpts{
	BusyTimeout:      30 * time.Second,
	BusyPollInterval: 10 * time.Millisecond,
}

// Interface4Pin drives the controller in 4-wire SPI mode: the SPI bus
// plus data/command, reset and busy lines. Chip select is handled by
// the SPI port.
type Interface4Pin struct {
	c    conn.Conn
	dc   gpio.PinOut
	rst  gpio.PinOut
	busy gpio.PinIn
	opts InterfaceOpts
}

// NewInterface4Pin connects to the controller over the given SPI port
// and GPIO pins. opts may be nil for defaults.
func NewInterface4Pin(p spi.Port, dc, rst gpio.PinOut, busy gpio.PinIn, opts *InterfaceOpts) (*Interface4Pin, error) {
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	if err := busy.In(gpio.Float, gpio.NoEdge); err != nil {
		return nil, err
	}

	o := DefaultInterfaceOpts
	if opts != nil {
		o = *opts
	}
	if o.BusyTimeout <= 0 {
		o.BusyTimeout = DefaultInterfaceOpts.BusyTimeout
	}
	if o.BusyPollInterval <= 0 {
		o.BusyPollInterval = DefaultInterfaceOpts.BusyPollInterval
	}

	return &Interface4Pin{
		c:    c,
		dc:   dc,
		rst:  rst,
		busy: busy,
		opts: o,
	}, nil
}

// NewHat connects using the default Waveshare e-paper Hat pins on a
// Raspberry Pi.
func NewHat(p spi.Port, opts *InterfaceOpts) (*Interface4Pin, error) {
	dc := rpi.P1_22
	rst := rpi.P1_11
	busy := rpi.P1_18
	return NewInterface4Pin(p, dc, rst, busy, opts)
}

// SendCommand implements DisplayInterface.
func (i *Interface4Pin) SendCommand(cmd byte) error {
	if err := i.dc.Out(gpio.Low); err != nil {
		return &TransportError{Op: "command", Err: err}
	}
	if err := i.c.Tx([]byte{cmd}, nil); err != nil {
		return &TransportError{Op: "command", Err: err}
	}
	return nil
}

// SendData implements DisplayInterface. Transfers larger than the
// spidev limit are split into chunks.
func (i *Interface4Pin) SendData(data []byte) error {
	if err := i.dc.Out(gpio.High); err != nil {
		return &TransportError{Op: "data", Err: err}
	}
	for len(data) > 0 {
		n := len(data)
		if n > spiChunk {
			n = spiChunk
		}
		if err := i.c.Tx(data[:n], nil); err != nil {
			return &TransportError{Op: "data", Err: err}
		}
		data = data[n:]
	}
	return nil
}

// Reset implements DisplayInterface.
func (i *Interface4Pin) Reset() error {
	if err := i.rst.Out(gpio.Low); err != nil {
		return &TransportError{Op: "reset", Err: err}
	}
	time.Sleep(resetHold)
	if err := i.rst.Out(gpio.High); err != nil {
		return &TransportError{Op: "reset", Err: err}
	}
	time.Sleep(resetHold)
	return nil
}

// WaitUntilIdle implements DisplayInterface.
func (i *Interface4Pin) WaitUntilIdle() error {
	return waitIdle(func() bool { return i.busy.Read() == gpio.High }, time.Sleep, i.opts)
}

// waitIdle polls busy until it reports false. The budget is expressed
// as a poll count so a stuck busy line fails deterministically instead
// of hanging.
func waitIdle(busy func() bool, sleep func(time.Duration), opts InterfaceOpts) error {
	polls := int(opts.BusyTimeout / opts.BusyPollInterval)
	if polls < 1 {
		polls = 1
	}
	for n := 0; n < polls; n++ {
		if !busy() {
			return nil
		}
		sleep(opts.BusyPollInterval)
	}
	return &BusyTimeoutError{Timeout: opts.BusyTimeout}
}

var _ DisplayInterface = &Interface4Pin{}
