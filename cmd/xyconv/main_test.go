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
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/xycolor/gamut"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "red, gamut B",
			args: []string{"-model", "LCT001", "-precision", "4", "ff0000"},
			want: "ff0000\t0.6401 0.33 0.2126\n",
		},
		{
			name: "green, gamut B, with hash",
			args: []string{"-model", "B", "#00ff00"},
			want: "00ff00\t0.409 0.518 0.7152\n",
		},
		{
			name: "explicit gamut",
			args: []string{"-gamut", "0.675,0.322,0.409,0.518,0.167,0.04", "00ff00"},
			want: "00ff00\t0.409 0.518 0.7152\n",
		},
		{
			name: "several colours",
			args: []string{"-precision", "2", "ff0000", "ffffff"},
			want: "ff0000\t0.64 0.33 0.21\nffffff\t0.31 0.33 1\n",
		},
		{
			name: "xy to hex",
			args: []string{"-xy", "0.3127,0.3290"},
			want: "ffffff\n",
		},
		{
			name: "xy to hex, percent",
			args: []string{"-xy", "0.3127, 0.3290", "-percent", "50"},
			want: "bcbcbc\n",
		},
		{
			name: "xy to hex, brightness",
			args: []string{"-xy", "0.3127,0.3290", "-brightness", "0.5"},
			want: "bcbcbc\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := run(tc.args, buf, false)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, buf.String()); d != "" {
				t.Errorf("output mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	testCases := [][]string{
		{"000000"},
		{"ff0000", "nothex"},
		{"-xy", "0.3,0"},
		{"-xy", "0.3"},
		{"-xy", "0.3,0.3", "-brightness", "2"},
		{"-xy", "0.3,0.3", "ff0000"},
		{"-xy", "0.3,0.3", "-brightness", "0.5", "-percent", "50"},
		{"-xy", "0.3,0.3", "-percent", "150"},
		{"-gamut", "0,0,1,1,0.5,0.5", "ff0000"},
		{"-config", "/does/not/exist.toml", "ff0000"},
		{"-no-such-flag"},
	}
	for _, args := range testCases {
		buf := &bytes.Buffer{}
		err := run(args, buf, false)
		if err == nil {
			t.Errorf("%q: expected an error", args)
		}
	}
}

func TestRunUsage(t *testing.T) {
	err := run(nil, &bytes.Buffer{}, false)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("got %v, want flag.ErrHelp", err)
	}
}

func TestList(t *testing.T) {
	buf := &bytes.Buffer{}
	err := run([]string{"-list"}, buf, false)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(gamut.Models()) {
		t.Errorf("got %d lines, want %d", len(lines), len(gamut.Models()))
	}
	if !strings.HasPrefix(lines[0], "A\t") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestSwatch(t *testing.T) {
	buf := &bytes.Buffer{}
	err := run([]string{"ff8800"}, buf, true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[48;2;255;136;0m") {
		t.Errorf("no swatch in %q", buf.String())
	}
}

const testConfig = `
[gamut.desklamp]
vertices = [[0.675, 0.322], [0.409, 0.518], [0.167, 0.04]]

[gamut.LCT001]
vertices = [[1.0, 0.0], [0.0, 1.0], [0.0, 0.0]]
`

func TestConfig(t *testing.T) {
	conf, err := decodeConfig(testConfig)
	if err != nil {
		t.Fatal(err)
	}
	g, ok := conf.lookup("desklamp")
	if !ok || g != gamut.B {
		t.Errorf("desklamp: got %s, %t", g, ok)
	}
	if _, ok := conf.lookup("missing"); ok {
		t.Error("found a gamut which is not in the file")
	}

	fname := filepath.Join(t.TempDir(), "gamuts.toml")
	err = os.WriteFile(fname, []byte(testConfig), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	// entries in the configuration file override the built-in table
	buf := &bytes.Buffer{}
	err = run([]string{"-config", fname, "-model", "LCT001", "00ff00"}, buf, false)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff("00ff00\t0.3 0.6 0.7152\n", buf.String()); d != "" {
		t.Errorf("output mismatch (-want +got):\n%s", d)
	}

	buf.Reset()
	err = run([]string{"-config", fname, "-model", "desklamp", "00ff00"}, buf, false)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff("00ff00\t0.409 0.518 0.7152\n", buf.String()); d != "" {
		t.Errorf("output mismatch (-want +got):\n%s", d)
	}
}

func TestConfigErrors(t *testing.T) {
	testCases := []string{
		"[gamut.bad]\nvertices = [[0.1, 0.2], [0.3, 0.4]]\n",
		"[gamut.bad]\nvertices = [[0.1, 0.2, 0.3], [0.3, 0.4], [0.5, 0.1]]\n",
		"[gamut.bad]\nvertices = [[0, 0], [0.5, 0.5], [1, 1]]\n",
		"[gamut.bad\n",
	}
	for _, data := range testCases {
		_, err := decodeConfig(data)
		if err == nil {
			t.Errorf("%q: expected an error", data)
		}
	}
}
