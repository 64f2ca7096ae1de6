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

package cie

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func TestChromaticity(t *testing.T) {
	testCases := []struct {
		in     XYZ
		wantXY [2]float64
		wantY  float64
	}{
		{XYZ{0.4124, 0.2126, 0.0193}, [2]float64{0.6400744994567747, 0.32997051063169336}, 0.2126},
		{XYZ{0.3576, 0.7152, 0.1192}, [2]float64{0.3, 0.6}, 0.7152},
		{XYZ{0.9505, 1, 1.089}, [2]float64{0.31272, 0.32900}, 1},
		{XYZ{1, 1, 1}, [2]float64{1.0 / 3, 1.0 / 3}, 1},
	}

	opt := cmpopts.EquateApprox(0, 1e-5)
	for _, tc := range testCases {
		xy, Y := tc.in.Chromaticity()
		got := [2]float64{xy.X, xy.Y}
		if d := cmp.Diff(tc.wantXY, got, opt); d != "" {
			t.Errorf("%v: chromaticity mismatch (-want +got):\n%s", tc.in, d)
		}
		if Y != tc.wantY {
			t.Errorf("%v: luminance %g, want %g", tc.in, Y, tc.wantY)
		}
	}
}

func TestBlack(t *testing.T) {
	xy, Y := XYZ{}.Chromaticity()
	if !Undefined(xy) {
		t.Errorf("black has chromaticity %v", xy)
	}
	if Y != 0 {
		t.Errorf("black has luminance %g", Y)
	}
}

func TestZeroY(t *testing.T) {
	c := FromChromaticity(vec.Vec2{X: 0.5, Y: 0}, 0.7)
	if !c.IsNaN() {
		t.Errorf("got %v, want NaN", c)
	}
	if !math.IsNaN(c.Y) {
		t.Error("luminance should be NaN too")
	}
}

func TestFromChromaticity(t *testing.T) {
	got := FromChromaticity(vec.Vec2{X: 0.3, Y: 0.6}, 0.7152)
	want := XYZ{0.3576, 0.7152, 0.1192}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	testCases := []XYZ{
		{0.4124, 0.2126, 0.0193},
		{0.1805, 0.0722, 0.9505},
		{0.2, 0.1, 0.3},
		{0.95, 1, 1.09},
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	for _, in := range testCases {
		xy, Y := in.Chromaticity()
		out := FromChromaticity(xy, Y)
		if d := cmp.Diff(in, out, opt); d != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", d)
		}
	}
}

func TestWhitePoint(t *testing.T) {
	white := FromChromaticity(WhitePointD65, 1)
	if math.Abs(white.X-0.9505) > 1e-3 || math.Abs(white.Z-1.089) > 1e-3 {
		t.Errorf("unexpected D65 white %v", white)
	}
}
