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

// Package srgb implements the sRGB transfer function and the conversion
// between linear sRGB and CIE 1931 XYZ for the D65 white point.
//
// Colours are represented by the [RGB] type.  Depending on context, the
// channel values are either gamma encoded (as stored in images and hex
// colour codes) or linear light intensities.  [Linearize] and [Delinearize]
// convert between the two.
package srgb

import (
	"math"

	"golang.org/x/image/math/f64"

	"seehuhn.de/go/xycolor/cie"
)

// RGB is a colour with red, green and blue components in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// Linear applies [Linearize] to all three channels.
func (c RGB) Linear() RGB {
	return RGB{Linearize(c.R), Linearize(c.G), Linearize(c.B)}
}

// Encoded applies [Delinearize] to all three channels.
func (c RGB) Encoded() RGB {
	return RGB{Delinearize(c.R), Delinearize(c.G), Delinearize(c.B)}
}

// Linearize converts a gamma encoded sRGB channel value to a linear light
// intensity.  Negative values are treated as zero.
func Linearize(c float64) float64 {
	c = max(c, 0)
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// Delinearize converts a linear light intensity to a gamma encoded sRGB
// channel value.  The result is clamped to the range [0, 1].
func Delinearize(c float64) float64 {
	c = max(c, 0)
	var v float64
	if c <= 0.0031308 {
		v = 12.92 * c
	} else {
		v = 1.055*math.Pow(c, 1/2.4) - 0.055
	}
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// These are the sRGB primaries with the D65 white point.
// The two matrices are inverse to each other, up to rounding.
var (
	toXYZ = f64.Mat3{
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	}
	fromXYZ = f64.Mat3{
		3.2406255, -1.5372080, -0.4986268,
		-0.9689307, 1.8757561, 0.0415175,
		0.0557101, -0.2040211, 1.0569959,
	}
)

// ToXYZ converts a linear sRGB colour to CIE 1931 XYZ.
func ToXYZ(lin RGB) cie.XYZ {
	v := apply(&toXYZ, f64.Vec3{lin.R, lin.G, lin.B})
	return cie.XYZ{X: v[0], Y: v[1], Z: v[2]}
}

// FromXYZ converts a CIE 1931 XYZ colour to linear sRGB.
//
// Colours outside the sRGB gamut give channel values outside [0, 1].
// These are not clamped here; [Delinearize] takes care of this.
func FromXYZ(c cie.XYZ) RGB {
	v := apply(&fromXYZ, f64.Vec3{c.X, c.Y, c.Z})
	return RGB{R: v[0], G: v[1], B: v[2]}
}

// apply computes the matrix-vector product m·v.
// The matrix is stored in row-major order.
func apply(m *f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}
