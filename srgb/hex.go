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

package srgb

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
)

// Errors returned by [ParseHex].
var (
	ErrHexLength = errors.New("hex colour must have exactly six digits")
	ErrHexDigit  = errors.New("invalid hex digit")
)

// ParseHex decodes a colour given as six hexadecimal digits, for example
// "336699".  Upper and lower case digits are accepted.  The channel
// values of the result are the byte values divided by 255.
func ParseHex(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, ErrHexLength
	}
	var buf [3]byte
	_, err := hex.Decode(buf[:], []byte(s))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %v", ErrHexDigit, err)
	}
	return FromBytes(buf), nil
}

// FromBytes converts 8-bit channel values to an RGB colour.
func FromBytes(b [3]byte) RGB {
	return RGB{
		R: float64(b[0]) / 255,
		G: float64(b[1]) / 255,
		B: float64(b[2]) / 255,
	}
}

// Bytes converts the colour to 8-bit channel values.
// Channel values are rounded to the nearest multiple of 1/255, with ties
// going to even, and clamped to the range [0, 255].
func (c RGB) Bytes() [3]byte {
	return [3]byte{toByte(c.R), toByte(c.G), toByte(c.B)}
}

// Hex formats the colour as six lower case hexadecimal digits.
func (c RGB) Hex() string {
	b := c.Bytes()
	return hex.EncodeToString(b[:])
}

func toByte(x float64) byte {
	if math.IsNaN(x) {
		return 0
	}
	return byte(clamp(math.RoundToEven(x*255), 0, 255))
}
