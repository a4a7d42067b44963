// Copyright 2025 The SSD1677 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

// logicalSize returns the drawable width and height after rotation.
func logicalSize(d Dimensions, r Rotation) (int, int) {
	if r == Rotate90 || r == Rotate270 {
		return d.Rows, d.Cols
	}
	return d.Cols, d.Rows
}

// pixelIndex maps a logical coordinate to the byte offset and bit mask
// of the corresponding framebuffer bit. Packing is MSB first: the
// leftmost pixel of a native row occupies bit 7 of the row's first
// byte, matching the controller's RAM layout.
//
// The mapping is a bijection onto the buffer's bit positions for every
// rotation. ok is false when (x, y) falls outside the logical bounds.
func pixelIndex(x, y int, d Dimensions, r Rotation) (offset int, mask byte, ok bool) {
	w, h := logicalSize(d, r)
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, false
	}

	var px, py int
	switch r {
	case Rotate90:
		px, py = d.Cols-1-y, x
	case Rotate180:
		px, py = d.Cols-1-x, d.Rows-1-y
	case Rotate270:
		px, py = y, d.Rows-1-x
	default:
		px, py = x, y
	}

	index := py*d.Cols + px
	return index / 8, 0x80 >> (index % 8), true
}
