// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package sezecef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var testAngles = [][2]float64{
	{0, 0},
	{42, -71},
	{-33.8688, 151.2093},
	{90, 10},
	{-90, -170},
	{12.5, 725},
}

func TestRot_Orthonormal(t *testing.T) {
	eye := mat.NewDiagDense(3, []float64{1, 1, 1})
	for _, a := range testAngles {
		for _, r := range []Mat3{RotY(ToRad(a[0])), RotZ(ToRad(a[1])), SezToXyzRot(ToRad(a[0]), ToRad(a[1]))} {
			d := r.Dense()
			var p mat.Dense
			p.Mul(d, d.T())
			assert.True(t, mat.EqualApprox(&p, eye, 1e-12), "R R^T != I at %v", a)
			assert.InDelta(t, 1, mat.Det(d), 1e-12)
		}
	}
}

func TestMat3_AgreesWithGonum(t *testing.T) {
	for _, a := range testAngles {
		lat, lon := ToRad(a[0]), ToRad(a[1])
		ry, rz := RotY(lat), RotZ(lon)

		var want mat.Dense
		want.Mul(rz.Dense(), ry.Dense())
		assert.True(t, mat.EqualApprox(&want, SezToXyzRot(lat, lon).Dense(), 1e-14))

		v := [3]float64{1.5, -2, 3.25}
		var wantV mat.VecDense
		wantV.MulVec(&want, mat.NewVecDense(3, v[:]))
		got := SezToXyzRot(lat, lon).MulVec(v)
		assert.True(t, floats.EqualApprox(wantV.RawVector().Data, got[:], 1e-12))

		assert.True(t, mat.Equal(ry.Dense().T(), ry.T().Dense()))
	}
}

func TestMat3_MulVecComponents(t *testing.T) {
	a := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	assert.Equal(t, [3]float64{14, 32, 50}, a.MulVec([3]float64{1, 2, 3}))
	assert.Equal(t, [3]float64{3, 6, 9}, a.MulVec([3]float64{0, 0, 1}))
	assert.Equal(t, Mat3{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, a.T())
	assert.Equal(t, Mat3{{30, 36, 42}, {66, 81, 96}, {102, 126, 150}}, a.Mul(a))
}
