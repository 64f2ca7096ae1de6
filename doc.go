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

// Package xycolor converts between sRGB colours and the CIE xy
// chromaticity plus brightness values used by lighting devices.
//
// A [Converter] is bound to the colour gamut of one device type.  All
// chromaticities returned by a converter are inside this gamut: colours
// the device cannot reproduce are mapped to the nearest point on the
// boundary of the gamut.
//
// A converter for a known device model is obtained as follows:
//
//	conv := xycolor.ForModel("LCT001")
//	xy, bri, err := conv.HexToXY("ff8800")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	... send xy.X, xy.Y and bri to the device ...
//
// The reverse direction maps a chromaticity and brightness back to a hex
// colour code:
//
//	hex, err := conv.XYToHex(vec.Vec2{X: 0.5337, Y: 0.4145}, xycolor.Percent(40))
//
// Brightness values are always normalised to the range [0, 1].  Use
// [Percent] to convert percentages.
//
// Black has no chromaticity.  Converting black, or a chromaticity with
// y = 0, fails with [ErrUndefinedChromaticity].
//
// The building blocks of the conversion are available in the subpackages
// [seehuhn.de/go/xycolor/srgb] (transfer function and RGB/XYZ matrices),
// [seehuhn.de/go/xycolor/cie] (XYZ and xy chromaticity) and
// [seehuhn.de/go/xycolor/gamut] (gamuts and the device model table).
package xycolor
