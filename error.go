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
	"errors"
	"strconv"
)

var (
	// ErrUndefinedChromaticity is returned when a colour has no
	// chromaticity (black), or when a chromaticity with y = 0 is
	// converted to RGB.
	ErrUndefinedChromaticity = errors.New("chromaticity is undefined")

	// ErrBrightnessRange is returned for brightness values outside [0, 1].
	ErrBrightnessRange = errors.New("brightness outside the range [0, 1]")
)

// FormatError is returned when a hex colour code cannot be decoded.
type FormatError struct {
	Input string
	Err   error
}

func (err *FormatError) Error() string {
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return "invalid hex colour " + strconv.Quote(err.Input) + tail
}

func (err *FormatError) Unwrap() error {
	return err.Err
}
