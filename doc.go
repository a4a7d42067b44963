// Copyright 2025 The SSD1677 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1677 controls e-paper panels driven by the Solomon
// Systech SSD1677 controller over 4-wire SPI.
//
// The SSD1677 drives monochrome Active Matrix Electrophoretic Displays
// of up to 960x680 pixels, with integrated gate/source drivers, SRAM,
// waveform LUT storage and a temperature sensor. Panels built on it
// include the Good Display / Waveshare 4.2" and 7.5" modules.
//
// The driver is split in three tiers: Interface4Pin talks to the
// controller directly, Config/Builder describe the attached panel, and
// Display draws pixels into a caller-owned framebuffer and transfers
// it to the panel. Display implements display.Drawer, so any
// image.Image rasterized by another library can be sent to the panel
// with Draw.
//
// Datasheet:
// https://www.good-display.com/companyfile/101.html
package ssd1677
