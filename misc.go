// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package sezecef

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func ToDeg(rad float64) float64 {
	return rad * 180.0 / PI
}

func ToRad(deg float64) float64 {
	return deg * PI / 180.0
}

// ------------------------------------
// Output format
// ------------------------------------

// Shortest representation that reads back to the same value.
// Fixed notation with at least one decimal for exponents in [-4, 16), otherwise exponent notation.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	es := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(es[strings.IndexByte(es, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return es
	}
	fs := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(fs, '.') {
		fs += ".0"
	}
	return fs
}

// ------------------------------------
// Debug print function
// ------------------------------------

// Destination of debug output
var DbgOut io.Writer = os.Stderr

func PrintMat(X mat.Matrix) {
	r, c := X.Dims()
	fmt.Fprintf(DbgOut, "(%d x %d)\n", r, c)
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	fmt.Fprintf(DbgOut, "%v\n", fa)
}

func PrintA(format string, a ...any) {
	fmt.Fprintf(DbgOut, format, a...)
}

func PrintAIf(cond bool, format string, a ...any) {
	if cond {
		PrintA(format, a...)
	}
}

// Debug display level
var DBG_ int

// Debug display
func PrintD(v int, format string, a ...any) {
	PrintAIf(DBG_ >= v, format, a...)
}

func PrintE(err error) {
	fmt.Fprintf(DbgOut, "err=%s\n", err.Error())
}
