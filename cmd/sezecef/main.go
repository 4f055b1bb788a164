// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	m "github.com/mkhts/sezecef"
	"golang.org/x/exp/slices"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// Returned by parseArgs when the usage line should be shown instead of a result
var errUsage = errors.New("usage")

// Names of the positional arguments, in order
var argNames = [...]string{"o_lat_deg", "o_lon_deg", "o_hae_km", "s_km", "e_km", "z_km"}

// Run the command and return the exit status
func run(argv []string, stdout, stderr io.Writer) int {
	m.DbgOut = stderr

	// Parse command line arguments
	args, err := parseArgs(argv, stderr)
	if errors.Is(err, errUsage) {
		fmt.Fprintln(stdout, m.UsageLine)
		return 0
	}
	if err != nil {
		m.PrintE(err)
		return 1
	}

	// Run the main application
	if err := runApplication(args, stdout); err != nil {
		m.PrintE(err)
		return 1
	}
	return 0
}

// Main application processing
func runApplication(args cmdOpt, stdout io.Writer) error {

	// Prepare output file
	out, err := prepareOutput(args, stdout)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer closeOutput(out)

	base := m.NewPosLLHDeg(args.lat, args.lon, args.hae)
	origin := base.ToXYZ()
	m.PrintD(1, "origin(llh, xyz): %s, %s\n", base, &origin)
	if m.DBG_ >= 2 {
		m.PrintA("--- R_y ---\n")
		m.PrintMat(m.RotY(base.Lat).Dense())
		m.PrintA("--- R_z ---\n")
		m.PrintMat(m.RotZ(base.Lon).Dense())
	}

	var res [3]float64
	if args.reverse {
		// ECEF -> SEZ
		xyz := m.NewPosXYZ(args.vec[0], args.vec[1], args.vec[2])
		sez := xyz.ToSEZ(*base)
		m.PrintD(1, "az, el, range: %.6f %.6f %.6f\n", m.ToDeg(sez.Azimuth()), m.ToDeg(sez.Elevation()), sez.Range())
		res = [3]float64{sez.S, sez.E, sez.Z}
	} else {
		// SEZ -> ECEF
		xyz := m.SezToEcef(args.lat, args.lon, args.hae, *m.NewPosSEZ(args.vec[0], args.vec[1], args.vec[2]))
		llh := xyz.ToLLH()
		m.PrintD(1, "target(llh): %s\n", &llh)
		res = [3]float64{xyz.X, xyz.Y, xyz.Z}
	}

	return printResult(out, res)
}

// Write one component per line
func printResult(w io.Writer, res [3]float64) error {
	for _, v := range res {
		if _, err := fmt.Fprintln(w, m.FormatFloat(v)); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// Prepare output file
func prepareOutput(args cmdOpt, stdout io.Writer) (io.WriteCloser, error) {

	// Use stdout if no output file is specified
	if len(args.outFn) == 0 {
		return &nopCloser{stdout}, nil
	}

	// Create output file
	f, err := os.Create(args.outFn)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// Close output file
func closeOutput(out io.WriteCloser) {
	if out != nil {
		out.Close()
	}
}

// nopCloser - WriteCloser that ignores close operations
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Structure to hold command line argument information
type cmdOpt struct {
	lat, lon, hae float64
	vec           [3]float64
	outFn         string
	reverse       bool
}

// Parse command line arguments
func parseArgs(argv []string, stderr io.Writer) (a cmdOpt, err error) {
	fs := flag.NewFlagSet("sezecef", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		m.PrintA("\n[Usage]\n\t%s [Options] o_lat_deg o_lon_deg o_hae_km s_km e_km z_km\n\n[Options]\n", fs.Name())
		fs.PrintDefaults()
	}
	fs.StringVar(&a.outFn, "o", "", "Output file path. If not specified, output to stdout.")
	fs.BoolVar(&a.reverse, "r", false, "Reverse conversion. The last three arguments are an ECEF position x_km y_km z_km and its SEZ components are printed.")
	var dbg int
	fs.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display), 2(detailed display)")

	opts, vals, ok := splitArgs(fs, argv)
	if !ok {
		// Option missing its value
		return a, errUsage
	}
	if err = fs.Parse(opts); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return a, errUsage
		}
		return a, err
	}
	vals = append(fs.Args(), vals...)
	if len(vals) != len(argNames) {
		return a, errUsage
	}

	var v [len(argNames)]float64
	for i, s := range vals {
		v[i], err = parseNumber(s)
		if err != nil {
			return a, fmt.Errorf("failed to parse %s: %w", argNames[i], err)
		}
	}
	a.lat, a.lon, a.hae = v[0], v[1], v[2]
	a.vec = [3]float64{v[3], v[4], v[5]}
	m.DBG_ = dbg
	return a, nil
}

// Separate options from positional values.
// Numbers (negative ones included) and dash tokens that name no option are values.
// ok is false when an option that takes a value is the last token.
func splitArgs(fs *flag.FlagSet, argv []string) (opts, vals []string, ok bool) {
	if i := slices.Index(argv, "--"); i >= 0 {
		vals = slices.Clone(argv[i+1:])
		argv = argv[:i]
	}
	var pos []string
	for i := 0; i < len(argv); i++ {
		s := argv[i]
		name, hasValue := optionName(s)
		if name == "" {
			pos = append(pos, s)
			continue
		}
		f := fs.Lookup(name)
		if f == nil && name != "h" && name != "help" {
			pos = append(pos, s)
			continue
		}
		opts = append(opts, s)
		if f == nil || hasValue || isBoolFlag(f) {
			continue
		}
		if i+1 >= len(argv) {
			return opts, append(pos, vals...), false
		}
		i++
		opts = append(opts, argv[i])
	}
	return opts, append(pos, vals...), true
}

// Name of the option s spells, or "" if s is a value
func optionName(s string) (name string, hasValue bool) {
	if len(s) < 2 || s[0] != '-' {
		return "", false
	}
	if _, err := parseNumber(s); err == nil {
		return "", false
	}
	name = strings.TrimPrefix(s[1:], "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], true
	}
	return name, false
}

// Like strconv.ParseFloat, but out of range values become +-Inf and a signed nan is accepted
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	if u := strings.TrimLeft(s, "+-"); len(s)-len(u) == 1 && strings.EqualFold(u, "nan") {
		return math.NaN(), nil
	}
	return v, err
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
