// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package sezecef

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//-------------------------------------------------------------------
// PosLLH
//-------------------------------------------------------------------

// Geodetic position. Lat and Lon are held in radians, Hei in km above the ellipsoid.
type PosLLH struct {
	Lat float64
	Lon float64
	Hei float64
}

func NewPosLLH(lat, lon, hei float64) *PosLLH {
	return &PosLLH{
		Lat: lat,
		Lon: lon,
		Hei: hei,
	}
}

// Create from latitude and longitude in degrees
func NewPosLLHDeg(latDeg, lonDeg, hei float64) *PosLLH {
	return NewPosLLH(ToRad(latDeg), ToRad(lonDeg), hei)
}

func (llh *PosLLH) ToXYZ() PosXYZ {
	// Radii of curvature
	sinl := math.Sin(llh.Lat)
	denom := math.Sqrt(1 - ee2*(sinl*sinl))
	c := Re / denom // Radius of curvature in the prime vertical
	s := Re * (1 - ee2) / denom

	// Conversion to Cartesian coordinates
	return PosXYZ{
		X: (c + llh.Hei) * math.Cos(llh.Lat) * math.Cos(llh.Lon),
		Y: (c + llh.Hei) * math.Cos(llh.Lat) * math.Sin(llh.Lon),
		Z: (s + llh.Hei) * sinl,
	}
}

// Convert to string (degrees)
func (llh *PosLLH) String() string {
	return fmt.Sprintf("%.8f %.8f %.6f", ToDeg(llh.Lat), ToDeg(llh.Lon), llh.Hei)
}

// GeodeticToECEF converts an observer location given in degrees and km to ECEF [km].
func GeodeticToECEF(latDeg, lonDeg, haeKm float64) PosXYZ {
	return NewPosLLHDeg(latDeg, lonDeg, haeKm).ToXYZ()
}

//-------------------------------------------------------------------
// PosXYZ
//-------------------------------------------------------------------

// ECEF vector [km]. Either an absolute position or a relative offset.
type PosXYZ struct {
	X float64
	Y float64
	Z float64
}

func NewPosXYZ(x, y, z float64) *PosXYZ {
	return &PosXYZ{
		X: x,
		Y: y,
		Z: z,
	}
}

func (pos *PosXYZ) Add(d PosXYZ) PosXYZ {
	return PosXYZ{
		X: pos.X + d.X,
		Y: pos.Y + d.Y,
		Z: pos.Z + d.Z,
	}
}

func (pos *PosXYZ) Sub(d PosXYZ) PosXYZ {
	return PosXYZ{
		X: pos.X - d.X,
		Y: pos.Y - d.Y,
		Z: pos.Z - d.Z,
	}
}

func (pos *PosXYZ) Norm() float64 {
	return floats.Norm([]float64{pos.X, pos.Y, pos.Z}, 2)
}

func (pos *PosXYZ) ToLLH() PosLLH {
	// In case of origin
	if pos.X == 0 && pos.Y == 0 && pos.Z == 0 {
		return PosLLH{Lat: 0, Lon: 0, Hei: -Re}
	}

	// Ellipsoid parameters
	a := Re                   // Semi-major axis
	b := a * math.Sqrt(1-ee2) // Semi-minor axis

	// Parameters for coordinate transformation
	h := a*a - b*b
	p := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y)
	t := math.Atan2(pos.Z*a, p*b)
	sint := math.Sin(t)
	cost := math.Cos(t)

	// Conversion to latitude and longitude
	lat := math.Atan2(pos.Z+h/b*sint*sint*sint, p-h/a*cost*cost*cost)
	lon := math.Atan2(pos.Y, pos.X)
	sinl := math.Sin(lat)
	n := a / math.Sqrt(1-ee2*(sinl*sinl)) // Radius of curvature in the prime vertical
	var hei float64
	if cosl := math.Cos(lat); math.Abs(cosl) > 1e-10 {
		hei = p/cosl - n
	} else {
		// Near the poles
		hei = math.Abs(pos.Z)/math.Abs(sinl) - n*(1-ee2)
	}
	return PosLLH{Lat: lat, Lon: lon, Hei: hei}
}

// Express the absolute position in the SEZ frame of the observer at base
func (pos *PosXYZ) ToSEZ(base PosLLH) PosSEZ {
	// Relative position from the observer
	d := pos.Sub(base.ToXYZ())

	// Inverse rotation is the transpose
	v := SezToXyzRot(base.Lat, base.Lon).T().MulVec([3]float64{d.X, d.Y, d.Z})
	return PosSEZ{S: v[0], E: v[1], Z: v[2]}
}

func (pos *PosXYZ) String() string {
	return fmt.Sprintf("%.6f %.6f %.6f", pos.X, pos.Y, pos.Z)
}

//-------------------------------------------------------------------
// PosSEZ
//-------------------------------------------------------------------

// Topocentric South-East-Zenith vector [km] relative to an observer.
type PosSEZ struct {
	S float64
	E float64
	Z float64
}

func NewPosSEZ(s, e, z float64) *PosSEZ {
	return &PosSEZ{
		S: s,
		E: e,
		Z: z,
	}
}

// Rotate into ECEF axes. The result is still relative to the observer.
func (sez *PosSEZ) ToXYZRel(base PosLLH) PosXYZ {
	v := RotY(base.Lat).MulVec([3]float64{sez.S, sez.E, sez.Z})
	v = RotZ(base.Lon).MulVec(v)
	return PosXYZ{X: v[0], Y: v[1], Z: v[2]}
}

// Absolute ECEF position of the point at this offset from the observer at base
func (sez *PosSEZ) ToXYZ(base PosLLH) PosXYZ {
	origin := base.ToXYZ()
	return origin.Add(sez.ToXYZRel(base))
}

func (sez *PosSEZ) Norm() float64 {
	return floats.Norm([]float64{sez.S, sez.E, sez.Z}, 2)
}

// Range is the same as the norm
func (sez *PosSEZ) Range() float64 {
	return sez.Norm()
}

func (sez *PosSEZ) Elevation() float64 {
	return math.Atan2(sez.Z, math.Sqrt(sez.S*sez.S+sez.E*sez.E))
}

// Azimuth measured clockwise from north, in [0, 2pi)
func (sez *PosSEZ) Azimuth() float64 {
	az := math.Atan2(sez.E, -sez.S)
	if az < 0 {
		az += 2 * PI
	}
	return az
}

// SezToEcefRotation rotates a SEZ offset seen from (latDeg, lonDeg) into ECEF axes.
func SezToEcefRotation(latDeg, lonDeg float64, sez PosSEZ) PosXYZ {
	return sez.ToXYZRel(*NewPosLLHDeg(latDeg, lonDeg, 0))
}

// SezToEcef returns the absolute ECEF position [km] of the point at SEZ offset sez
// from an observer at geodetic (latDeg, lonDeg, haeKm).
func SezToEcef(latDeg, lonDeg, haeKm float64, sez PosSEZ) PosXYZ {
	origin := GeodeticToECEF(latDeg, lonDeg, haeKm)
	rel := SezToEcefRotation(latDeg, lonDeg, sez)
	return origin.Add(rel)
}
