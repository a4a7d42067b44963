// Copyright 2025 The SSD1677 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import "testing"

// bitPosition flattens an (offset, mask) pair into a single bit index.
func bitPosition(t *testing.T, offset int, mask byte) int {
	t.Helper()
	for bit := 0; bit < 8; bit++ {
		if mask == 0x80>>bit {
			return offset*8 + bit
		}
	}
	t.Fatalf("mask %#02x is not a single bit", mask)
	return -1
}

func TestPixelIndexBijection(t *testing.T) {
	dims := Dimensions{Rows: 16, Cols: 24}
	bits := dims.Rows * dims.Cols

	for _, r := range []Rotation{Rotate0, Rotate90, Rotate180, Rotate270} {
		t.Run(r.String(), func(t *testing.T) {
			w, h := logicalSize(dims, r)
			if w*h != bits {
				t.Fatalf("logicalSize() = %dx%d, want %d pixels", w, h, bits)
			}

			seen := make(map[int]bool, bits)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					offset, mask, ok := pixelIndex(x, y, dims, r)
					if !ok {
						t.Fatalf("pixelIndex(%d, %d) unexpectedly out of bounds", x, y)
					}
					if offset < 0 || offset >= bits/8 {
						t.Fatalf("pixelIndex(%d, %d) offset %d outside buffer", x, y, offset)
					}
					pos := bitPosition(t, offset, mask)
					if seen[pos] {
						t.Fatalf("pixelIndex(%d, %d) aliases bit %d", x, y, pos)
					}
					seen[pos] = true
				}
			}
			if len(seen) != bits {
				t.Errorf("covered %d bits, want %d", len(seen), bits)
			}
		})
	}
}

func TestPixelIndexRotate180Involution(t *testing.T) {
	dims := Dimensions{Rows: 12, Cols: 16}

	for y := 0; y < dims.Rows; y++ {
		for x := 0; x < dims.Cols; x++ {
			// Rotating a coordinate by 180° and mapping it with
			// Rotate180 must land on the Rotate0 mapping.
			rx, ry := dims.Cols-1-x, dims.Rows-1-y

			wantOffset, wantMask, ok := pixelIndex(x, y, dims, Rotate0)
			if !ok {
				t.Fatalf("pixelIndex(%d, %d, Rotate0) out of bounds", x, y)
			}
			gotOffset, gotMask, ok := pixelIndex(rx, ry, dims, Rotate180)
			if !ok {
				t.Fatalf("pixelIndex(%d, %d, Rotate180) out of bounds", rx, ry)
			}

			if gotOffset != wantOffset || gotMask != wantMask {
				t.Errorf("pixelIndex(%d, %d, Rotate180) = (%d, %#02x), want (%d, %#02x)",
					rx, ry, gotOffset, gotMask, wantOffset, wantMask)
			}
		}
	}
}

func TestPixelIndexOutOfBounds(t *testing.T) {
	dims := Dimensions{Rows: 16, Cols: 24}

	for _, tc := range []struct {
		name     string
		x, y     int
		rotation Rotation
	}{
		{name: "negative x", x: -1, y: 0},
		{name: "negative y", x: 0, y: -1},
		{name: "x at cols", x: 24, y: 0},
		{name: "y at rows", x: 0, y: 16},
		{name: "rotated x at rows", x: 16, y: 0, rotation: Rotate90},
		{name: "rotated y at cols", x: 0, y: 24, rotation: Rotate270},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, ok := pixelIndex(tc.x, tc.y, dims, tc.rotation); ok {
				t.Errorf("pixelIndex(%d, %d, %v) = ok, want out of bounds", tc.x, tc.y, tc.rotation)
			}
		})
	}
}

func TestPixelIndexScenario(t *testing.T) {
	// 480x800 panel, no rotation: one framebuffer row is 100 bytes.
	dims := Dimensions{Rows: 480, Cols: 800}

	for _, tc := range []struct {
		x, y       int
		wantOffset int
		wantMask   byte
	}{
		{x: 0, y: 0, wantOffset: 0, wantMask: 0x80},
		{x: 799, y: 0, wantOffset: 99, wantMask: 0x01},
		{x: 0, y: 1, wantOffset: 100, wantMask: 0x80},
		{x: 7, y: 0, wantOffset: 0, wantMask: 0x01},
		{x: 8, y: 0, wantOffset: 1, wantMask: 0x80},
	} {
		offset, mask, ok := pixelIndex(tc.x, tc.y, dims, Rotate0)
		if !ok {
			t.Errorf("pixelIndex(%d, %d) out of bounds", tc.x, tc.y)
			continue
		}
		if offset != tc.wantOffset || mask != tc.wantMask {
			t.Errorf("pixelIndex(%d, %d) = (%d, %#02x), want (%d, %#02x)",
				tc.x, tc.y, offset, mask, tc.wantOffset, tc.wantMask)
		}
	}
}
