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
	"golang.org/x/exp/slices"

	"seehuhn.de/go/geom/vec"
)

// Preset gamuts.
var (
	// A is the gamut of older colour light strips and table lamps.
	A = must(New(
		vec.Vec2{X: 0.704, Y: 0.296},
		vec.Vec2{X: 0.2151, Y: 0.7106},
		vec.Vec2{X: 0.138, Y: 0.08},
	))

	// B is the gamut of first generation colour bulbs.
	B = must(New(
		vec.Vec2{X: 0.675, Y: 0.322},
		vec.Vec2{X: 0.409, Y: 0.518},
		vec.Vec2{X: 0.167, Y: 0.04},
	))

	// C is the gamut of newer colour bulbs and light strips.
	C = must(New(
		vec.Vec2{X: 0.6915, Y: 0.3038},
		vec.Vec2{X: 0.17, Y: 0.7},
		vec.Vec2{X: 0.1532, Y: 0.0475},
	))

	// Full contains every point with x, y >= 0 and x+y <= 1.
	// This is used for devices which are not listed in the model table.
	Full = must(New(
		vec.Vec2{X: 1, Y: 0},
		vec.Vec2{X: 0, Y: 1},
		vec.Vec2{X: 0, Y: 0},
	))
)

// models maps device model identifiers to gamuts.
// The single letter keys allow to select a gamut type by name.
var models = map[string]Gamut{
	"LST001": A,
	"LLC005": A,
	"LLC006": A,
	"LLC007": A,
	"LLC010": A,
	"LLC011": A,
	"LLC012": A,
	"LLC013": A,
	"LLC014": A,
	"A":      A,

	"LCT001": B,
	"LCT002": B,
	"LCT003": B,
	"LCT007": B,
	"LLM001": B,
	"B":      B,

	"LCT010": C,
	"LCT011": C,
	"LCT012": C,
	"LCT014": C,
	"LCT015": C,
	"LCT016": C,
	"LLC020": C,
	"LST002": C,
	"C":      C,
}

// Lookup returns the gamut for the given device model.
// Unknown models are mapped to [Full], so that unknown devices are
// never restricted.
func Lookup(model string) Gamut {
	g, ok := models[model]
	if !ok {
		return Full
	}
	return g
}

// Known returns the gamut for the given device model, and a flag
// which indicates whether the model is listed in the table.
// If the flag is false, the returned gamut is [Full].
func Known(model string) (Gamut, bool) {
	g, ok := models[model]
	if !ok {
		return Full, false
	}
	return g, true
}

// Models returns the sorted list of all model identifiers known to [Lookup].
func Models() []string {
	keys := make([]string, 0, len(models))
	for key := range models {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
