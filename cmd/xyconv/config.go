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

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/xycolor/gamut"
)

// config holds user defined gamuts, read from a TOML file like
//
//	[gamut.desklamp]
//	vertices = [[0.68, 0.31], [0.16, 0.70], [0.15, 0.05]]
type config struct {
	Gamut map[string]gamutEntry
}

type gamutEntry struct {
	Vertices [][]float64
}

func loadConfig(fname string) (*config, error) {
	conf := &config{}
	_, err := toml.DecodeFile(fname, conf)
	if err != nil {
		return nil, err
	}
	return conf, conf.validate()
}

func decodeConfig(data string) (*config, error) {
	conf := &config{}
	_, err := toml.Decode(data, conf)
	if err != nil {
		return nil, err
	}
	return conf, conf.validate()
}

func (conf *config) validate() error {
	for name, entry := range conf.Gamut {
		if name == "" {
			return errors.New("illegal config: empty gamut name")
		}
		if _, err := entry.gamut(); err != nil {
			return fmt.Errorf("illegal config: gamut %q: %w", name, err)
		}
	}
	return nil
}

// lookup returns the user defined gamut with the given name.
func (conf *config) lookup(name string) (gamut.Gamut, bool) {
	if conf == nil {
		return gamut.Gamut{}, false
	}
	entry, ok := conf.Gamut[name]
	if !ok {
		return gamut.Gamut{}, false
	}
	g, err := entry.gamut()
	if err != nil {
		return gamut.Gamut{}, false
	}
	return g, true
}

func (entry gamutEntry) gamut() (gamut.Gamut, error) {
	vertices := make([]vec.Vec2, len(entry.Vertices))
	for i, v := range entry.Vertices {
		if len(v) != 2 {
			return gamut.Gamut{}, fmt.Errorf("vertex %d: expected [x, y], got %v", i, v)
		}
		vertices[i] = vec.Vec2{X: v[0], Y: v[1]}
	}
	return gamut.FromVertices(vertices)
}

// parseFloats parses a comma separated list of n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: expected %d comma separated numbers", s, n)
	}
	res := make([]float64, n)
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

// parseGamut parses a gamut given as "x1,y1,x2,y2,x3,y3".
func parseGamut(s string) (gamut.Gamut, error) {
	v, err := parseFloats(s, 6)
	if err != nil {
		return gamut.Gamut{}, err
	}
	return gamut.New(
		vec.Vec2{X: v[0], Y: v[1]},
		vec.Vec2{X: v[2], Y: v[3]},
		vec.Vec2{X: v[4], Y: v[5]},
	)
}
