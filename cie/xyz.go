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

// Package cie converts between CIE 1931 XYZ tristimulus values and
// xy chromaticity coordinates plus luminance.
//
// Chromaticities are represented as [vec.Vec2] values, with the X field
// holding x and the Y field holding y.
//
// Black has no chromaticity.  The functions in this package represent
// undefined chromaticities by NaN coordinates, which propagate through
// all further computations.  Use [Undefined] to check for this case.
package cie

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// XYZ is a colour in the CIE 1931 XYZ colour space.
// The Y component is the relative luminance.
type XYZ struct {
	X, Y, Z float64
}

// Chromaticity returns the xy chromaticity coordinates and the luminance
// of the colour.
//
// If X+Y+Z is zero, both chromaticity coordinates are NaN.
func (c XYZ) Chromaticity() (xy vec.Vec2, luminance float64) {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return vec.Vec2{X: math.NaN(), Y: math.NaN()}, c.Y
	}
	return vec.Vec2{X: c.X / sum, Y: c.Y / sum}, c.Y
}

// FromChromaticity returns the XYZ colour with chromaticity xy and
// luminance Y.  The luminance is normally in the range [0, 1].
//
// If xy.Y is zero, all components of the result are NaN.
func FromChromaticity(xy vec.Vec2, Y float64) XYZ {
	if xy.Y == 0 {
		nan := math.NaN()
		return XYZ{X: nan, Y: nan, Z: nan}
	}
	z := 1 - xy.X - xy.Y
	scale := Y / xy.Y
	return XYZ{
		X: scale * xy.X,
		Y: Y,
		Z: scale * z,
	}
}

// Undefined reports whether xy is an undefined chromaticity,
// as returned by [XYZ.Chromaticity] for black.
func Undefined(xy vec.Vec2) bool {
	return math.IsNaN(xy.X) || math.IsNaN(xy.Y)
}

// IsNaN reports whether any component of c is NaN.
func (c XYZ) IsNaN() bool {
	return math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z)
}

// WhitePointD65 is the chromaticity of the CIE standard illuminant D65.
var WhitePointD65 = vec.Vec2{X: 0.3127, Y: 0.3290}
