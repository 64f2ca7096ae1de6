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

// Package gamut implements triangular colour gamuts in the CIE 1931 xy
// chromaticity plane.
//
// A [Gamut] describes the set of chromaticities a lighting device can
// reproduce.  Points outside the gamut can be mapped to the nearest
// reproducible chromaticity using [Gamut.Constrain].
//
// The presets [A], [B] and [C] describe the three gamut types used by
// common lighting hardware, and [Full] covers every valid chromaticity.
// [Lookup] maps device model identifiers to one of these.
package gamut

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Gamut is a triangle in the xy chromaticity plane.
//
// The zero value is not a valid gamut; use [New], [FromVertices] or one of
// the presets.  Gamut values are immutable and can be shared freely.
type Gamut struct {
	v [3]vec.Vec2
}

// Errors returned when constructing a gamut.
var (
	ErrVertexCount = errors.New("gamut: need exactly three vertices")
	ErrVertexRange = errors.New("gamut: vertex outside the unit square")
	ErrDegenerate  = errors.New("gamut: vertices are collinear")
)

// minArea is the smallest triangle area accepted by New.
const minArea = 1e-9

// New returns the gamut with vertices v1, v2 and v3.
//
// All coordinates must be in the range [0, 1] and the three vertices
// must not be collinear.  The vertices may be given in either orientation.
func New(v1, v2, v3 vec.Vec2) (Gamut, error) {
	g := Gamut{v: [3]vec.Vec2{v1, v2, v3}}
	for i, p := range g.v {
		if !inUnit(p.X) || !inUnit(p.Y) {
			return Gamut{}, fmt.Errorf("%w: vertex %d is (%g, %g)",
				ErrVertexRange, i, p.X, p.Y)
		}
	}
	if g.Area() < minArea {
		return Gamut{}, ErrDegenerate
	}
	return g, nil
}

// FromVertices returns the gamut with the given vertices.
// The slice must have length three.
func FromVertices(vertices []vec.Vec2) (Gamut, error) {
	if len(vertices) != 3 {
		return Gamut{}, fmt.Errorf("%w, got %d", ErrVertexCount, len(vertices))
	}
	return New(vertices[0], vertices[1], vertices[2])
}

// must is used for the presets, which are known to be valid.
func must(g Gamut, err error) Gamut {
	if err != nil {
		panic(err)
	}
	return g
}

// Vertices returns the corners of the gamut, in the order they were given.
func (g Gamut) Vertices() [3]vec.Vec2 {
	return g.v
}

// Area returns the area of the gamut triangle in the xy plane.
func (g Gamut) Area() float64 {
	return math.Abs(g.orientation()) / 2
}

// IsZero reports whether g is the zero value.
func (g Gamut) IsZero() bool {
	return g == Gamut{}
}

// String formats the gamut as a list of vertices.
func (g Gamut) String() string {
	return fmt.Sprintf("[(%g, %g) (%g, %g) (%g, %g)]",
		g.v[0].X, g.v[0].Y, g.v[1].X, g.v[1].Y, g.v[2].X, g.v[2].Y)
}

// orientation returns twice the signed area of the triangle.
// The result is positive if the vertices are in counter-clockwise order.
func (g Gamut) orientation() float64 {
	return cross(g.v[1].Sub(g.v[0]), g.v[2].Sub(g.v[0]))
}

func inUnit(x float64) bool {
	return x >= 0 && x <= 1
}

// cross returns the z-component of the cross product of a and b.
// The vec package has no 2-D cross product.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
