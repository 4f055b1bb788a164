// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package sezecef

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{6378.1363, "6378.1363"},
		{-2, "-2.0"},
		{1548.306243074109, "1548.306243074109"},
		{-1.9999999999996092, "-1.9999999999996092"},
		{0.0001, "0.0001"},
		{1.5e-05, "1.5e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{-2.5e20, "-2.5e+20"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, math.Pi, ToRad(180), 1e-15)
	assert.InDelta(t, 42.0, ToDeg(ToRad(42)), 1e-12)
}

func TestPrintD(t *testing.T) {
	var buf bytes.Buffer
	out, lvl := DbgOut, DBG_
	DbgOut = &buf
	t.Cleanup(func() { DbgOut, DBG_ = out, lvl })

	DBG_ = 1
	PrintD(1, "shown %d\n", 1)
	PrintD(2, "hidden\n")
	PrintE(errors.New("boom"))
	PrintMat(RotZ(0).Dense())

	assert.Contains(t, buf.String(), "shown 1")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "err=boom")
	assert.Contains(t, buf.String(), "(3 x 3)")
}
