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

import "fmt"

// Brightness is the relative luminance of a colour, i.e. the Y component
// of CIE XYZ.  Valid values are in the range [0, 1].
//
// Values greater than one are not interpreted as percentages.
// Use [Percent] to convert a percentage.
type Brightness float64

// MaxBrightness is the brightness of sRGB white.
const MaxBrightness Brightness = 1

// Percent converts a brightness given in percent to a [Brightness].
func Percent(p float64) Brightness {
	return Brightness(p / 100)
}

// Percent returns the brightness in percent.
func (b Brightness) Percent() float64 {
	return float64(b) * 100
}

// check returns an error if b is outside the range [0, 1].
func (b Brightness) check() error {
	if !(b >= 0 && b <= 1) {
		return fmt.Errorf("%w: %g", ErrBrightnessRange, float64(b))
	}
	return nil
}
