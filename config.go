// Copyright 2025 The SSD1677 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import "fmt"

// Controller limits from the SSD1677 datasheet.
const (
	// MaxGateOutputs is the maximum number of gate lines (rows).
	MaxGateOutputs = 680
	// MaxSourceOutputs is the maximum number of source lines (columns).
	MaxSourceOutputs = 960
)

// Dimensions describes the native size of the attached panel.
type Dimensions struct {
	// Rows is the number of gate lines. Must not exceed MaxGateOutputs.
	Rows int
	// Cols is the number of source lines. Must be divisible by 8 and
	// must not exceed MaxSourceOutputs.
	Cols int
}

// Rotation is the logical rotation applied to drawing operations,
// relative to the panel's native orientation. It is fixed for the
// lifetime of a Display.
type Rotation uint8

// Supported rotations, clockwise.
const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Config is an immutable display configuration. Construct it with
// NewBuilder.
type Config struct {
	dims       Dimensions
	rotation   Rotation
	autoUpdate bool
}

// Dimensions returns the configured panel dimensions.
func (c Config) Dimensions() Dimensions {
	return c.dims
}

// Rotation returns the configured rotation.
func (c Config) Rotation() Rotation {
	return c.rotation
}

// AutoUpdate reports whether every pixel write triggers a hardware
// refresh.
func (c Config) AutoUpdate() bool {
	return c.autoUpdate
}

// BufferSize returns the framebuffer length in bytes required for the
// configured dimensions, at one bit per pixel.
func (c Config) BufferSize() int {
	return c.dims.Rows * c.dims.Cols / 8
}

// Builder constructs a validated Config. Dimensions are mandatory;
// rotation defaults to Rotate0 and automatic updates are off by
// default.
type Builder struct {
	dims       Dimensions
	hasDims    bool
	rotation   Rotation
	autoUpdate bool
}

// NewBuilder returns a Builder with default settings.
func NewBuilder() *Builder {
	return &Builder{}
}

// Dimensions sets the panel dimensions. There is no default; Build
// fails when the dimensions were never set.
func (b *Builder) Dimensions(d Dimensions) *Builder {
	b.dims = d
	b.hasDims = true
	return b
}

// Rotation sets the logical display rotation.
func (b *Builder) Rotation(r Rotation) *Builder {
	b.rotation = r
	return b
}

// AutoUpdate controls whether every pixel write immediately refreshes
// the panel. Convenient, but slow; for bulk drawing leave it off and
// call Update once.
func (b *Builder) AutoUpdate(enabled bool) *Builder {
	b.autoUpdate = enabled
	return b
}

// Build validates the accumulated settings and returns the resulting
// Config. It returns a *ConfigError when the dimensions are missing,
// zero, not byte-aligned or exceed the controller maximums.
func (b *Builder) Build() (Config, error) {
	if !b.hasDims {
		return Config{}, &ConfigError{Reason: "dimensions not set"}
	}
	if b.dims.Rows <= 0 || b.dims.Cols <= 0 {
		return Config{}, &ConfigError{Reason: fmt.Sprintf("dimensions %dx%d must be positive", b.dims.Rows, b.dims.Cols)}
	}
	if b.dims.Cols%8 != 0 {
		return Config{}, &ConfigError{Reason: fmt.Sprintf("columns %d must be divisible by 8", b.dims.Cols)}
	}
	if b.dims.Rows > MaxGateOutputs {
		return Config{}, &ConfigError{Reason: fmt.Sprintf("rows %d exceed the %d gate outputs", b.dims.Rows, MaxGateOutputs)}
	}
	if b.dims.Cols > MaxSourceOutputs {
		return Config{}, &ConfigError{Reason: fmt.Sprintf("columns %d exceed the %d source outputs", b.dims.Cols, MaxSourceOutputs)}
	}
	if b.rotation > Rotate270 {
		return Config{}, &ConfigError{Reason: fmt.Sprintf("unknown rotation %d", b.rotation)}
	}
	return Config{
		dims:       b.dims,
		rotation:   b.rotation,
		autoUpdate: b.autoUpdate,
	}, nil
}
