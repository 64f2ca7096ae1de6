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

package gamut

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// tolerance is the distance outside an edge up to which a point still
// counts as being on the boundary.
const tolerance = 1e-12

// Contains reports whether p lies inside the gamut or on its boundary.
// Points with NaN coordinates are never contained.
func (g Gamut) Contains(p vec.Vec2) bool {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return false
	}

	sign := 1.0
	if g.orientation() < 0 {
		sign = -1
	}
	for i := range 3 {
		a := g.v[i]
		edge := g.v[(i+1)%3].Sub(a)
		// signed distance of p from the edge, positive on the inside
		d := sign * cross(edge, p.Sub(a)) / edge.Length()
		if d < -tolerance {
			return false
		}
	}
	return true
}

// Constrain maps p to the nearest chromaticity inside the gamut.
//
// If p is inside the gamut or on its boundary, p is returned unchanged.
// Otherwise the result is the point on the boundary of the triangle which
// is closest to p in the Euclidean metric of the xy plane.  If p has NaN
// coordinates, the result is NaN as well.
func (g Gamut) Constrain(p vec.Vec2) vec.Vec2 {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return vec.Vec2{X: math.NaN(), Y: math.NaN()}
	}
	if g.Contains(p) {
		return p
	}
	return g.Nearest(p)
}

// Nearest returns the point on the boundary of the gamut which is closest
// to p.  Unlike [Gamut.Constrain], this also moves points from the
// interior of the gamut onto the boundary.
//
// If two edges are equally close, the first one in vertex order is used.
// Since the edges of a triangle only meet at the vertices, this only
// makes a difference when the nearest point is a shared vertex.
func (g Gamut) Nearest(p vec.Vec2) vec.Vec2 {
	var best vec.Vec2
	bestDist := math.Inf(1)
	for i := range 3 {
		q := closestOnSegment(g.v[i], g.v[(i+1)%3], p)
		d := q.Sub(p).Length()
		if d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}

// closestOnSegment returns the point on the line segment from a to b
// which is closest to p.
func closestOnSegment(a, b, p vec.Vec2) vec.Vec2 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}

	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a.Add(ab.Mul(t))
}
