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

	"seehuhn.de/go/xycolor/cie"
	"seehuhn.de/go/xycolor/gamut"
	"seehuhn.de/go/xycolor/srgb"
)

// Converter converts colours for one type of device.
//
// A Converter holds no mutable state and can be used concurrently from
// several goroutines.
type Converter struct {
	gamut gamut.Gamut
}

// New returns a converter which constrains chromaticities to g.
// If g is the zero value, [gamut.Full] is used.
func New(g gamut.Gamut) *Converter {
	if g.IsZero() {
		g = gamut.Full
	}
	return &Converter{gamut: g}
}

// ForModel returns a converter for the given device model.
// Unknown models use [gamut.Full], so that no colours are lost.
func ForModel(model string) *Converter {
	return New(gamut.Lookup(model))
}

// FromVertices returns a converter for the gamut with the given three
// vertices.
func FromVertices(vertices []vec.Vec2) (*Converter, error) {
	g, err := gamut.FromVertices(vertices)
	if err != nil {
		return nil, err
	}
	return New(g), nil
}

// Default returns a converter which accepts every valid chromaticity.
func Default() *Converter {
	return New(gamut.Full)
}

// Gamut returns the gamut used by the converter.
func (c *Converter) Gamut() gamut.Gamut {
	return c.gamut
}

// HexToXY converts a colour given as six hexadecimal digits to a
// chromaticity inside the converter's gamut and a brightness.
//
// Malformed input gives a [*FormatError].  Black ("000000") has no
// chromaticity and gives [ErrUndefinedChromaticity].
func (c *Converter) HexToXY(hex string) (vec.Vec2, Brightness, error) {
	rgb, err := srgb.ParseHex(hex)
	if err != nil {
		return vec.Vec2{}, 0, &FormatError{Input: hex, Err: err}
	}
	return c.RGBToXY(rgb)
}

// RGBToXY converts a gamma encoded sRGB colour to a chromaticity inside
// the converter's gamut and a brightness.
func (c *Converter) RGBToXY(rgb srgb.RGB) (vec.Vec2, Brightness, error) {
	return c.XYZToXY(srgb.ToXYZ(rgb.Linear()))
}

// XYZToXY converts a CIE XYZ colour to a chromaticity inside the
// converter's gamut.  The brightness is the Y component of xyz.
//
// Only the chromaticity is moved into the gamut.  The brightness is
// returned unchanged.
func (c *Converter) XYZToXY(xyz cie.XYZ) (vec.Vec2, Brightness, error) {
	xy, Y := xyz.Chromaticity()
	if cie.Undefined(xy) {
		return vec.Vec2{}, 0, ErrUndefinedChromaticity
	}
	return c.gamut.Constrain(xy), Brightness(Y), nil
}

// XYToRGB converts a chromaticity and brightness to a gamma encoded sRGB
// colour.  Channels which fall outside the sRGB gamut are clamped to
// [0, 1].
//
// The chromaticity is used as given, without reference to the
// converter's gamut.
func (c *Converter) XYToRGB(xy vec.Vec2, b Brightness) (srgb.RGB, error) {
	if err := b.check(); err != nil {
		return srgb.RGB{}, err
	}
	if cie.Undefined(xy) || xy.Y == 0 {
		return srgb.RGB{}, ErrUndefinedChromaticity
	}
	xyz := cie.FromChromaticity(xy, float64(b))
	return srgb.FromXYZ(xyz).Encoded(), nil
}

// XYToHex converts a chromaticity and brightness to six lower case
// hexadecimal digits.  [MaxBrightness] corresponds to the luminance of
// sRGB white.
func (c *Converter) XYToHex(xy vec.Vec2, b Brightness) (string, error) {
	rgb, err := c.XYToRGB(xy, b)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}
