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

// Xyconv converts hex colour codes to the xy chromaticity and brightness
// values understood by lighting devices, and back.
//
// Usage:
//
//	xyconv [options] hex ...
//	xyconv [options] -xy x,y [-brightness B | -percent P]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/xycolor"
	"seehuhn.de/go/xycolor/gamut"
	"seehuhn.de/go/xycolor/internal/float"
	"seehuhn.de/go/xycolor/srgb"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("xyconv: ")

	swatch := term.IsTerminal(int(os.Stdout.Fd()))
	err := run(os.Args[1:], os.Stdout, swatch)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

type options struct {
	model      string
	gamut      string
	config     string
	xy         string
	brightness float64
	percent    float64
	precision  int
	list       bool
}

func run(args []string, out io.Writer, swatch bool) error {
	opt := &options{}
	flags := flag.NewFlagSet("xyconv", flag.ContinueOnError)
	flags.StringVar(&opt.model, "model", "", "device model or gamut name (A, B, C)")
	flags.StringVar(&opt.gamut, "gamut", "", "explicit gamut as `x1,y1,x2,y2,x3,y3`")
	flags.StringVar(&opt.config, "config", "", "TOML `file` with additional gamuts")
	flags.StringVar(&opt.xy, "xy", "", "convert the chromaticity `x,y` to hex")
	flags.Float64Var(&opt.brightness, "brightness", 1, "brightness for -xy, in the range [0, 1]")
	flags.Float64Var(&opt.percent, "percent", -1, "brightness for -xy, in percent")
	flags.IntVar(&opt.precision, "precision", 6, "number of decimal places")
	flags.BoolVar(&opt.list, "list", false, "list the known device models")
	flags.Usage = func() {
		w := flags.Output()
		fmt.Fprintln(w, "Usage: xyconv [options] hex ...")
		fmt.Fprintln(w, "       xyconv [options] -xy x,y [-brightness B | -percent P]")
		fmt.Fprintln(w)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	if opt.list {
		for _, model := range gamut.Models() {
			fmt.Fprintf(out, "%s\t%s\n", model, gamut.Lookup(model))
		}
		return nil
	}

	var conf *config
	if opt.config != "" {
		var err error
		conf, err = loadConfig(opt.config)
		if err != nil {
			return err
		}
	}

	g, err := selectGamut(opt, conf)
	if err != nil {
		return err
	}
	conv := xycolor.New(g)

	if opt.xy != "" {
		if flags.NArg() > 0 {
			return errors.New("-xy cannot be combined with hex arguments")
		}
		set := map[string]bool{}
		flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if set["brightness"] && set["percent"] {
			return errors.New("-brightness and -percent cannot be combined")
		}
		return fromXY(conv, opt, out, swatch)
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return flag.ErrHelp
	}
	hexes := make([]string, flags.NArg())
	for i, arg := range flags.Args() {
		hexes[i] = strings.TrimPrefix(arg, "#")
	}

	var failed int
	for i, res := range conv.HexesToXY(hexes) {
		if res.Err != nil {
			log.Print(res.Err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s\t%s %s %s",
			hexes[i],
			float.Format(res.XY.X, opt.precision),
			float.Format(res.XY.Y, opt.precision),
			float.Format(float64(res.Brightness), opt.precision))
		if swatch {
			fmt.Fprint(out, " ", ansiSwatch(res.RGB))
		}
		fmt.Fprintln(out)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d colours could not be converted", failed, len(hexes))
	}
	return nil
}

// selectGamut chooses the gamut from the command line options.
// An explicit -gamut takes precedence over -model.  Model names are
// looked up in the configuration file first, then in the built-in table.
func selectGamut(opt *options, conf *config) (gamut.Gamut, error) {
	if opt.gamut != "" {
		return parseGamut(opt.gamut)
	}
	if opt.model == "" {
		return gamut.Full, nil
	}
	if g, ok := conf.lookup(opt.model); ok {
		return g, nil
	}
	g, ok := gamut.Known(opt.model)
	if !ok {
		log.Printf("unknown model %q, using the full gamut", opt.model)
	}
	return g, nil
}

func fromXY(conv *xycolor.Converter, opt *options, out io.Writer, swatch bool) error {
	v, err := parseFloats(opt.xy, 2)
	if err != nil {
		return err
	}
	xy := vec.Vec2{X: v[0], Y: v[1]}

	b := xycolor.Brightness(opt.brightness)
	if opt.percent >= 0 {
		b = xycolor.Percent(opt.percent)
	}

	rgb, err := conv.XYToRGB(xy, b)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rgb.Hex())
	if swatch {
		fmt.Fprint(out, " ", ansiSwatch(rgb))
	}
	fmt.Fprintln(out)
	return nil
}

// ansiSwatch returns a small block of colour c, using 24-bit ANSI
// escape sequences.
func ansiSwatch(c srgb.RGB) string {
	b := c.Bytes()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", b[0], b[1], b[2])
}
