// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package sezecef

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Fixed size 3x3 matrix, row major
type Mat3 [3][3]float64

// Rotation taking SEZ axes to ECEF axes at latitude phi (R_y in the SEZ frame).
// The sin/cos swap already accounts for the co-latitude.
func RotY(phi float64) Mat3 {
	s, c := math.Sincos(phi)
	return Mat3{
		{s, 0, c},
		{0, 1, 0},
		{-c, 0, s},
	}
}

// Rotation about the ECEF z-axis by longitude theta
func RotZ(theta float64) Mat3 {
	s, c := math.Sincos(theta)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// R_z(lon) R_y(lat)
func SezToXyzRot(lat, lon float64) Mat3 {
	return RotZ(lon).Mul(RotY(lat))
}

func (a Mat3) MulVec(v [3]float64) [3]float64 {
	return [3]float64{
		a[0][0]*v[0] + a[0][1]*v[1] + a[0][2]*v[2],
		a[1][0]*v[0] + a[1][1]*v[1] + a[1][2]*v[2],
		a[2][0]*v[0] + a[2][1]*v[1] + a[2][2]*v[2],
	}
}

func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return m
}

// Transpose (the inverse for a rotation)
func (a Mat3) T() Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = a[j][i]
		}
	}
	return m
}

// Copy into a gonum matrix, for printing
func (a Mat3) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	})
}
