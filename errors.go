// Copyright 2025 The SSD1677 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"fmt"
	"time"
)

// ConfigError reports an invalid display configuration. It is returned
// at build or construction time, never during drawing.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "ssd1677: invalid configuration: " + e.Reason
}

// BusyTimeoutError reports that the busy line did not clear within the
// allotted poll budget during a reset or update.
type BusyTimeoutError struct {
	Timeout time.Duration
}

func (e *BusyTimeoutError) Error() string {
	return fmt.Sprintf("ssd1677: busy line did not clear within %s", e.Timeout)
}

// TransportError wraps a bus-level failure from the underlying
// interface.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ssd1677: %s transfer failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotReadyError reports an operation attempted while the display is
// not in the Ready state. Call Reset before drawing.
type NotReadyError struct {
	State string
}

func (e *NotReadyError) Error() string {
	return "ssd1677: display is not ready (state: " + e.State + ")"
}

// OutOfBoundsError reports a pixel coordinate outside the logical
// display bounds.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("ssd1677: pixel (%d, %d) is out of bounds", e.X, e.Y)
}
