// seehuhn.de/go/xycolor - colour conversion for lighting devices
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package xycolor

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/xycolor/srgb"
)

// XYResult is the result of converting one colour to a chromaticity.
// If Err is non-nil, the other fields are zero.
type XYResult struct {
	RGB        srgb.RGB // the parsed input colour
	XY         vec.Vec2
	Brightness Brightness
	Err        error
}

// XYPoint is a chromaticity together with a brightness.
type XYPoint struct {
	XY         vec.Vec2
	Brightness Brightness
}

// HexResult is the result of converting one chromaticity to a hex colour.
// If Err is non-nil, Hex is empty.
type HexResult struct {
	Hex string
	Err error
}

// HexesToXY applies [Converter.HexToXY] to every element of hexes.
// The parsed colours are returned alongside the chromaticities.
// Errors are reported per element and do not affect the other elements.
func (c *Converter) HexesToXY(hexes []string) []XYResult {
	res := make([]XYResult, len(hexes))
	for i, hex := range hexes {
		rgb, err := srgb.ParseHex(hex)
		if err != nil {
			res[i].Err = &FormatError{Input: hex, Err: err}
			continue
		}
		xy, b, err := c.RGBToXY(rgb)
		if err != nil {
			res[i].Err = err
			continue
		}
		res[i] = XYResult{RGB: rgb, XY: xy, Brightness: b}
	}
	return res
}

// XYsToHex applies [Converter.XYToHex] to every element of points.
// Errors are reported per element and do not affect the other elements.
func (c *Converter) XYsToHex(points []XYPoint) []HexResult {
	res := make([]HexResult, len(points))
	for i, p := range points {
		hex, err := c.XYToHex(p.XY, p.Brightness)
		res[i] = HexResult{Hex: hex, Err: err}
	}
	return res
}
